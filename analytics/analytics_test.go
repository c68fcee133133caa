package analytics

import (
	"testing"
	"time"

	"github.com/purebliss/purebliss-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func orderWith(status models.OrderStatus, totalCents int64, createdAt time.Time) models.Order {
	return models.Order{
		Model:      gorm.Model{CreatedAt: createdAt},
		TotalCents: totalCents,
		Status:     status,
	}
}

func sampleOrders(now time.Time) []models.Order {
	return []models.Order{
		orderWith(models.StatusPending, 500, now),
		orderWith(models.StatusConfirmed, 1000, now),
		orderWith(models.StatusDelivered, 2000, now),
	}
}

func TestCountByStatusIncludesZeroCounts(t *testing.T) {
	counts := CountByStatus(sampleOrders(time.Now()))

	require.Len(t, counts, len(models.OrderStatuses))
	assert.Equal(t, 1, counts[models.StatusPending])
	assert.Equal(t, 1, counts[models.StatusConfirmed])
	assert.Equal(t, 1, counts[models.StatusDelivered])
	assert.Equal(t, 0, counts[models.StatusPreparing])
	assert.Equal(t, 0, counts[models.StatusOutForDelivery])
	assert.Equal(t, 0, counts[models.StatusCancelled])
}

func TestCountByStatusEmptyInput(t *testing.T) {
	counts := CountByStatus(nil)
	require.Len(t, counts, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		assert.Zero(t, counts[status])
	}
}

func TestRevenueExcludesPendingAndCancelled(t *testing.T) {
	orders := sampleOrders(time.Now())
	orders = append(orders, orderWith(models.StatusCancelled, 9999, time.Now()))

	stats := Revenue(orders)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.InDelta(t, 30.0, stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 15.0, stats.AvgOrderValue, 1e-9)
}

func TestRevenueAvgIsZeroWithoutQualifyingOrders(t *testing.T) {
	orders := []models.Order{
		orderWith(models.StatusPending, 1000, time.Now()),
		orderWith(models.StatusCancelled, 2000, time.Now()),
	}

	stats := Revenue(orders)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.AvgOrderValue)

	stats = Revenue(nil)
	assert.Zero(t, stats.AvgOrderValue)
}

func TestRevenueByStatusOneBarPerRevenueStatus(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderWith(models.StatusConfirmed, 1000, now),
		orderWith(models.StatusConfirmed, 500, now),
		orderWith(models.StatusDelivered, 2000, now),
		orderWith(models.StatusPending, 9000, now),
		orderWith(models.StatusCancelled, 7000, now),
	}

	bars := RevenueByStatus(orders)
	require.Len(t, bars, len(RevenueCountingStatuses))

	assert.Equal(t, models.StatusConfirmed, bars[0].Status)
	assert.InDelta(t, 15.0, bars[0].Revenue, 1e-9)
	assert.Equal(t, 2, bars[0].Count)

	// Empty revenue statuses keep their bar so the chart categories stay put.
	assert.Equal(t, models.StatusPreparing, bars[1].Status)
	assert.Zero(t, bars[1].Revenue)
	assert.Zero(t, bars[1].Count)
	assert.Equal(t, models.StatusOutForDelivery, bars[2].Status)
	assert.Zero(t, bars[2].Count)

	assert.Equal(t, models.StatusDelivered, bars[3].Status)
	assert.InDelta(t, 20.0, bars[3].Revenue, 1e-9)
	assert.Equal(t, 1, bars[3].Count)

	// Pending and cancelled never get a bar.
	for _, bar := range bars {
		assert.NotEqual(t, models.StatusPending, bar.Status)
		assert.NotEqual(t, models.StatusCancelled, bar.Status)
	}
}

func TestDailySeriesBucketsByUTCDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	orders := []models.Order{
		orderWith(models.StatusDelivered, 1000, now),
		orderWith(models.StatusConfirmed, 2000, now.AddDate(0, 0, -1)),
		orderWith(models.StatusPending, 5000, now),                            // not revenue
		orderWith(models.StatusDelivered, 3000, now.AddDate(0, 0, -8)),        // outside window
		orderWith(models.StatusDelivered, 700, now.Add(-16*time.Hour)),        // previous UTC day
		orderWith(models.StatusPreparing, 400, now.AddDate(0, 0, -6)),         // oldest day in window
		orderWith(models.StatusCancelled, 9000, now.AddDate(0, 0, -1)),        // not revenue
	}

	series := DailySeries(orders, 7, now)
	require.Len(t, series, 7)

	assert.Equal(t, "2025-03-04", series[0].Date)
	assert.Equal(t, "2025-03-10", series[6].Date)

	// Oldest first.
	assert.InDelta(t, 4.0, series[0].Revenue, 1e-9)
	assert.Equal(t, 1, series[0].OrderCount)

	// Yesterday: the confirmed order plus the one placed 16h before now.
	assert.InDelta(t, 27.0, series[5].Revenue, 1e-9)
	assert.Equal(t, 2, series[5].OrderCount)

	// Today: delivered only; the pending order never counts.
	assert.InDelta(t, 10.0, series[6].Revenue, 1e-9)
	assert.Equal(t, 1, series[6].OrderCount)
}

func TestDailySeriesZeroDays(t *testing.T) {
	assert.Empty(t, DailySeries(sampleOrders(time.Now()), 0, time.Now()))
}

func TestStatusDistributionOmitsZeroCounts(t *testing.T) {
	slices := StatusDistribution(sampleOrders(time.Now()), DefaultPalette)

	require.Len(t, slices, 3)
	assert.Equal(t, models.StatusPending, slices[0].Status)
	assert.Equal(t, DefaultPalette[models.StatusPending], slices[0].Color)
	assert.Equal(t, models.StatusConfirmed, slices[1].Status)
	assert.Equal(t, models.StatusDelivered, slices[2].Status)
	for _, s := range slices {
		assert.Equal(t, 1, s.Count)
		assert.NotEmpty(t, s.Color)
	}
}

func TestStatusDistributionStableColorMapping(t *testing.T) {
	palette := Palette{models.StatusPending: "#ABCDEF"}
	orders := []models.Order{orderWith(models.StatusPending, 100, time.Now())}

	first := StatusDistribution(orders, palette)
	second := StatusDistribution(orders, palette)
	assert.Equal(t, first, second)
	assert.Equal(t, "#ABCDEF", first[0].Color)
}

func TestAggregatorsAreIdempotentAndNonMutating(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := sampleOrders(now)
	snapshot := append([]models.Order(nil), orders...)

	assert.Equal(t, CountByStatus(orders), CountByStatus(orders))
	assert.Equal(t, Revenue(orders), Revenue(orders))
	assert.Equal(t, RevenueByStatus(orders), RevenueByStatus(orders))
	assert.Equal(t, DailySeries(orders, 7, now), DailySeries(orders, 7, now))
	assert.Equal(t, StatusDistribution(orders, DefaultPalette), StatusDistribution(orders, DefaultPalette))

	assert.Equal(t, snapshot, orders)
}
