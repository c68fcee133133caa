package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the PureBliss Desserts API ❤️.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account

DESSERTS
- GET "/desserts" - List desserts
- GET "/desserts/{id}" - Get dessert by ID

CART
- GET "/cart" - View the session cart
- POST "/cart/items" - Add a dessert to the cart
- PATCH "/cart/items/{id}" - Change a line's quantity
- DELETE "/cart/items/{id}" - Remove a line
- DELETE "/cart" - Clear the cart

ORDERS
- POST "/checkout" - Place an order
- GET "/orders/{ref}" - Look an order up by transaction reference

ADMIN (requires admin token)
- POST "/admin/desserts" - Create dessert
- PUT "/admin/desserts/{id}" - Update dessert
- DELETE "/admin/desserts/{id}" - Delete dessert
- POST "/admin/desserts/{id}/image" - Upload dessert image
- GET "/admin/orders" - List all orders
- PATCH "/admin/orders/{orderId}/status" - Update order status
- GET "/admin/analytics" - Dashboard aggregates`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
