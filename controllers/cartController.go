package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/purebliss/purebliss-api/cart"
	"github.com/purebliss/purebliss-api/checkout"
	"github.com/purebliss/purebliss-api/initializers"
	"github.com/purebliss/purebliss-api/models"
	"gorm.io/gorm"
)

const cartSessionHeader = "X-Cart-Session"

// cartSession returns the caller's session id, minting one when the request
// carries none. The id is echoed back on every cart response so the client
// can persist it for the rest of the browsing session.
func cartSession(ctx *gin.Context) string {
	sessionID := ctx.GetHeader(cartSessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	ctx.Header(cartSessionHeader, sessionID)
	return sessionID
}

// cartView renders a cart state plus its running totals. Monetary amounts
// leave minor units here, at the presentation boundary, and nowhere earlier.
func cartView(sessionID string, state cart.State, pricing checkout.Config) gin.H {
	totals := pricing.QuoteCents(state.SubtotalCents())
	return gin.H{
		"sessionId": sessionID,
		"items":     state.Lines,
		"itemCount": state.ItemCount(),
		"summary":   totals,
	}
}

type addCartItemBody struct {
	DessertID uint `json:"dessertId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// AddCartItem puts a dessert in the session's cart, merging into an existing
// line when one is present. The store does not check stock: in_stock only
// disables the storefront's add button, it reserves nothing.
func AddCartItem(carts *cart.Registry, pricing checkout.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body addCartItemBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			log.Println("Bind error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
			return
		}
		if body.Quantity <= 0 {
			body.Quantity = 1
		}

		var dessert models.Dessert
		if err := initializers.DB.First(&dessert, body.DessertID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Dessert not found")
			} else {
				log.Println("Database error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch dessert")
			}
			return
		}

		sessionID := cartSession(ctx)
		state := carts.Dispatch(sessionID, cart.AddItem{Line: cart.Line{
			DessertID:  dessert.ID,
			Name:       dessert.Name,
			PriceCents: dessert.PriceCents,
			PackOf:     dessert.PackOf,
			ImageURL:   dessert.ImageURL,
			Quantity:   body.Quantity,
		}})

		sendJSONResponse(ctx, http.StatusOK, cartView(sessionID, state, pricing))
	}
}

type updateCartItemBody struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets a line's quantity. Zero or below removes the line,
// exactly as an explicit remove would.
func UpdateCartItem(carts *cart.Registry, pricing checkout.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dessertId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid dessert ID")
			return
		}

		var body updateCartItemBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
			return
		}

		sessionID := cartSession(ctx)
		state := carts.Dispatch(sessionID, cart.UpdateQuantity{
			DessertID: uint(dessertId),
			Quantity:  body.Quantity,
		})

		sendJSONResponse(ctx, http.StatusOK, cartView(sessionID, state, pricing))
	}
}

// RemoveCartItem deletes a line; removing an absent line is a no-op.
func RemoveCartItem(carts *cart.Registry, pricing checkout.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dessertId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid dessert ID")
			return
		}

		sessionID := cartSession(ctx)
		state := carts.Dispatch(sessionID, cart.RemoveItem{DessertID: uint(dessertId)})

		sendJSONResponse(ctx, http.StatusOK, cartView(sessionID, state, pricing))
	}
}

// ClearCart empties the session's cart.
func ClearCart(carts *cart.Registry, pricing checkout.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sessionID := cartSession(ctx)
		state := carts.Dispatch(sessionID, cart.Clear{})
		sendJSONResponse(ctx, http.StatusOK, cartView(sessionID, state, pricing))
	}
}

// GetCart returns the session's cart with its summary.
func GetCart(carts *cart.Registry, pricing checkout.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sessionID := cartSession(ctx)
		state := carts.Get(sessionID)
		sendJSONResponse(ctx, http.StatusOK, cartView(sessionID, state, pricing))
	}
}
