package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/purebliss/purebliss-api/cart"
	"github.com/purebliss/purebliss-api/checkout"
	"github.com/purebliss/purebliss-api/controllers"
	"github.com/purebliss/purebliss-api/notify"
)

func OrderRoutes(server *gin.Engine, carts *cart.Registry, pricing checkout.Config, mailer *notify.Dispatcher) {
	server.POST("/checkout", controllers.Checkout(carts, pricing, mailer))
	server.GET("/orders/:ref", controllers.GetOrderByRef)
}
