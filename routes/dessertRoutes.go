package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/purebliss/purebliss-api/controllers"
)

func DessertRoutes(server *gin.Engine) {
	server.GET("/desserts", controllers.GetDesserts)
	server.GET("/desserts/:id", controllers.GetDessert)
}
