package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/purebliss/purebliss-api/analytics"
	"github.com/purebliss/purebliss-api/controllers"
	"github.com/purebliss/purebliss-api/middlewares"
	"github.com/purebliss/purebliss-api/notify"
)

func AdminRoutes(server *gin.Engine, mailer *notify.Dispatcher, palette analytics.Palette) {
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/desserts", controllers.CreateDessert)
		admin.PUT("/desserts/:id", controllers.UpdateDessert)
		admin.DELETE("/desserts/:id", controllers.DeleteDessert)
		admin.POST("/desserts/:id/image", controllers.UploadDessertImage)
		admin.GET("/orders", controllers.GetOrders)
		admin.PATCH("/orders/:orderId/status", controllers.UpdateOrderStatus(mailer))
		admin.GET("/analytics", controllers.GetAnalytics(palette))
	}
}
