// Package analytics turns a flat order list into dashboard-ready summaries.
// Every function is pure: no hidden state, no mutation of its input, and
// identical output for identical input, so the dashboard can recompute on
// every render.
//
// Calendar bucketing is done in UTC. The storefront's clients may sit in any
// timezone; pinning the day boundary keeps the series stable wherever the
// service runs.
package analytics

import (
	"time"

	"github.com/purebliss/purebliss-api/models"
)

// RevenueCountingStatuses are the statuses whose orders count toward revenue:
// everything except pending and cancelled.
var RevenueCountingStatuses = []models.OrderStatus{
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

// Palette maps each status to the chart color used for it. Supplied as
// configuration so the category→color mapping stays stable across renders.
type Palette map[models.OrderStatus]string

// DefaultPalette is the dashboard's standard status coloring.
var DefaultPalette = Palette{
	models.StatusPending:        "#EAB308",
	models.StatusConfirmed:      "#3B82F6",
	models.StatusPreparing:      "#8B5CF6",
	models.StatusOutForDelivery: "#F97316",
	models.StatusDelivered:      "#10B981",
	models.StatusCancelled:      "#EF4444",
}

// RevenueStats summarises the revenue-counting subset of an order list.
// Amounts are in major currency units.
type RevenueStats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// DailyPoint is one day of the revenue series, date formatted as 2006-01-02.
type DailyPoint struct {
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"orderCount"`
}

// StatusSlice is one wedge of the status distribution chart.
type StatusSlice struct {
	Status models.OrderStatus `json:"status"`
	Count  int                `json:"count"`
	Color  string             `json:"color"`
}

// StatusRevenue is one bar of the revenue-by-status chart.
type StatusRevenue struct {
	Status  models.OrderStatus `json:"status"`
	Revenue float64            `json:"revenue"`
	Count   int                `json:"count"`
}

func countsTowardRevenue(status models.OrderStatus) bool {
	for _, s := range RevenueCountingStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// CountByStatus counts orders per status. Every member of the enumeration is
// present in the result, with zero for statuses absent from the input, so the
// dashboard counters render a stable set of tiles.
func CountByStatus(orders []models.Order) map[models.OrderStatus]int {
	counts := make(map[models.OrderStatus]int, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		counts[status] = 0
	}
	for _, order := range orders {
		if _, known := counts[order.Status]; known {
			counts[order.Status]++
		}
	}
	return counts
}

// Revenue computes total revenue, order count and average order value over
// the revenue-counting orders. The average is zero, not NaN, for an empty
// subset.
func Revenue(orders []models.Order) RevenueStats {
	var stats RevenueStats
	for _, order := range orders {
		if !countsTowardRevenue(order.Status) {
			continue
		}
		stats.TotalRevenue += float64(order.TotalCents) / 100
		stats.TotalOrders++
	}
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}
	return stats
}

// RevenueByStatus breaks revenue down per revenue-counting status, one bar
// per status in enumeration order, zero-revenue bars included so the chart's
// categories stay put.
func RevenueByStatus(orders []models.Order) []StatusRevenue {
	bars := make([]StatusRevenue, 0, len(RevenueCountingStatuses))
	for _, status := range RevenueCountingStatuses {
		bar := StatusRevenue{Status: status}
		for _, order := range orders {
			if order.Status != status {
				continue
			}
			bar.Revenue += float64(order.TotalCents) / 100
			bar.Count++
		}
		bars = append(bars, bar)
	}
	return bars
}

// DailySeries emits one point per calendar day for the last days days, oldest
// first and inclusive of today, restricted to revenue-counting orders. Day
// matching compares UTC calendar dates of order creation.
func DailySeries(orders []models.Order, days int, now time.Time) []DailyPoint {
	if days <= 0 {
		return []DailyPoint{}
	}

	today := now.UTC().Truncate(24 * time.Hour)
	series := make([]DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		point := DailyPoint{Date: day.Format("2006-01-02")}
		for _, order := range orders {
			if !countsTowardRevenue(order.Status) {
				continue
			}
			if order.CreatedAt.UTC().Format("2006-01-02") != point.Date {
				continue
			}
			point.Revenue += float64(order.TotalCents) / 100
			point.OrderCount++
		}
		series = append(series, point)
	}
	return series
}

// StatusDistribution is CountByStatus minus the zero-count entries, decorated
// with the palette color per status, in enumeration order. It feeds the donut
// chart, which has no use for empty wedges.
func StatusDistribution(orders []models.Order, palette Palette) []StatusSlice {
	counts := CountByStatus(orders)
	slices := make([]StatusSlice, 0, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		if counts[status] == 0 {
			continue
		}
		slices = append(slices, StatusSlice{
			Status: status,
			Count:  counts[status],
			Color:  palette[status],
		})
	}
	return slices
}
