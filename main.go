package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/purebliss/purebliss-api/analytics"
	"github.com/purebliss/purebliss-api/cart"
	"github.com/purebliss/purebliss-api/checkout"
	"github.com/purebliss/purebliss-api/initializers"
	"github.com/purebliss/purebliss-api/notify"
	"github.com/purebliss/purebliss-api/routes"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	pricing := checkout.Config{
		TaxRate:               initializers.GetenvFloat("TAX_RATE", checkout.DefaultConfig.TaxRate),
		FreeShippingThreshold: initializers.GetenvFloat("FREE_SHIPPING_THRESHOLD", checkout.DefaultConfig.FreeShippingThreshold),
		FlatShippingFee:       initializers.GetenvFloat("FLAT_SHIPPING_FEE", checkout.DefaultConfig.FlatShippingFee),
	}

	carts := cart.NewRegistry()
	defer carts.Close()

	mailer := notify.NewDispatcher(
		initializers.MustGetenv("NOTIFY_FUNCTIONS_URL"),
		initializers.MustGetenv("NOTIFY_API_KEY"),
	)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://www.purebliss.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Cart-Session"},
		ExposeHeaders:    []string{"Content-Length", "X-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.DessertRoutes(server)
	routes.CartRoutes(server, carts, pricing)
	routes.OrderRoutes(server, carts, pricing, mailer)
	routes.AdminRoutes(server, mailer, analytics.DefaultPalette)
	server.Run()
}
