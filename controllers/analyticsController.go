package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/purebliss/purebliss-api/analytics"
	"github.com/purebliss/purebliss-api/initializers"
	"github.com/purebliss/purebliss-api/models"
)

// GetAnalytics recomputes the dashboard aggregates from the full order list.
// Everything here is derived data; nothing is persisted.
func GetAnalytics(palette analytics.Palette) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		days, err := strconv.Atoi(ctx.DefaultQuery("days", "7"))
		if err != nil || days < 1 {
			days = 7
		}

		var orders []models.Order
		if result := initializers.DB.Find(&orders); result.Error != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
			return
		}

		var dessertCount int64
		initializers.DB.Model(&models.Dessert{}).Count(&dessertCount)

		ctx.JSON(http.StatusOK, gin.H{
			"revenue":            analytics.Revenue(orders),
			"revenueByStatus":    analytics.RevenueByStatus(orders),
			"countByStatus":      analytics.CountByStatus(orders),
			"statusDistribution": analytics.StatusDistribution(orders, palette),
			"dailySeries":        analytics.DailySeries(orders, days, time.Now()),
			"totalDesserts":      dessertCount,
		})
	}
}
