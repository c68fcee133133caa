package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/purebliss/purebliss-api/cart"
	"github.com/purebliss/purebliss-api/checkout"
	"github.com/purebliss/purebliss-api/controllers"
)

func CartRoutes(server *gin.Engine, carts *cart.Registry, pricing checkout.Config) {
	server.GET("/cart", controllers.GetCart(carts, pricing))
	server.POST("/cart/items", controllers.AddCartItem(carts, pricing))
	server.PATCH("/cart/items/:id", controllers.UpdateCartItem(carts, pricing))
	server.DELETE("/cart/items/:id", controllers.RemoveCartItem(carts, pricing))
	server.DELETE("/cart", controllers.ClearCart(carts, pricing))
}
