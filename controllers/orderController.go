package controllers

import (
	"context"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gin-gonic/gin"
	"github.com/purebliss/purebliss-api/cart"
	"github.com/purebliss/purebliss-api/checkout"
	"github.com/purebliss/purebliss-api/initializers"
	"github.com/purebliss/purebliss-api/models"
	"github.com/purebliss/purebliss-api/notify"
	"github.com/purebliss/purebliss-api/utils"
)

const (
	orderCreateTimeout = 5 * time.Second
	orderCreateRetries = 2
)

type checkoutBody struct {
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	City                string `json:"city"`
	ZipCode             string `json:"zipCode"`
	SpecialInstructions string `json:"specialInstructions"`
	DeliveryDate        string `json:"deliveryDate"`
}

// validateCheckout returns the names of required fields that are missing or
// blank. Special instructions are the only optional field.
func validateCheckout(body checkoutBody) []string {
	required := map[string]string{
		"firstName":    body.FirstName,
		"lastName":     body.LastName,
		"email":        body.Email,
		"phone":        body.Phone,
		"address":      body.Address,
		"city":         body.City,
		"zipCode":      body.ZipCode,
		"deliveryDate": body.DeliveryDate,
	}
	var missing []string
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// parsePagination reads page/limit query parameters, clamping both to at
// least one so a hostile query string can not produce a negative offset or a
// division by zero in the page math.
func parsePagination(ctx *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset = (page - 1) * limit
	return page, limit, offset
}

// orderCreator persists a fully-built order. The indirection lets tests
// exercise the checkout flow without a database behind it.
type orderCreator func(ctx context.Context, order *models.Order) error

// createOrderWithRetry persists the order and its items in one transaction.
// Creation is the only step whose failure loses user-entered data, so it gets
// a bounded retry with exponential backoff before the customer sees an error.
func createOrderWithRetry(ctx context.Context, order *models.Order) error {
	operation := func() error {
		tx := initializers.DB.WithContext(ctx).Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		if err := tx.Create(order).Error; err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit().Error
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), orderCreateRetries), ctx)
	return backoff.Retry(operation, policy)
}

// Checkout turns the session's cart into an order. The order insert must
// succeed before the customer sees a confirmation; the notification emails
// are dispatched afterwards without being awaited.
func Checkout(carts *cart.Registry, pricing checkout.Config, mailer *notify.Dispatcher) gin.HandlerFunc {
	return checkoutWith(carts, pricing, mailer, createOrderWithRetry)
}

func checkoutWith(carts *cart.Registry, pricing checkout.Config, mailer *notify.Dispatcher, create orderCreator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body checkoutBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			log.Printf("JSON binding error: %v", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
			return
		}

		if missing := validateCheckout(body); len(missing) > 0 {
			sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
				"message": "Missing required fields",
				"fields":  missing,
			})
			return
		}

		sessionID := ctx.GetHeader(cartSessionHeader)
		state := carts.Get(sessionID)
		if len(state.Lines) == 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
			return
		}

		totals := pricing.QuoteCents(state.SubtotalCents())

		order := models.Order{
			TransactionRef:      utils.GenerateTransactionRef(),
			FirstName:           body.FirstName,
			LastName:            body.LastName,
			Email:               body.Email,
			Phone:               body.Phone,
			Address:             body.Address,
			City:                body.City,
			ZipCode:             body.ZipCode,
			SpecialInstructions: body.SpecialInstructions,
			TotalCents:          totals.TotalCents(),
			DeliveryDate:        body.DeliveryDate,
			Status:              models.StatusPending,
		}
		for _, line := range state.Lines {
			order.OrderItems = append(order.OrderItems, models.OrderItem{
				DessertID:  line.DessertID,
				Name:       line.Name,
				PriceCents: line.PriceCents,
				PackOf:     line.PackOf,
				Quantity:   line.Quantity,
			})
		}

		createCtx, cancel := context.WithTimeout(ctx.Request.Context(), orderCreateTimeout)
		defer cancel()
		if err := create(createCtx, &order); err != nil {
			log.Printf("Order creation failed: %v", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order. Please try again.")
			return
		}

		// The cart only empties once the order is committed; a failed
		// checkout leaves it intact for the retry.
		carts.Drop(sessionID)

		confirmation := notify.OrderConfirmation{
			To:              order.Email,
			CustomerName:    order.FirstName,
			OrderID:         strconv.Itoa(int(order.ID)),
			TransactionRef:  order.TransactionRef,
			Subtotal:        totals.Subtotal,
			Tax:             totals.Tax,
			Shipping:        totals.Shipping,
			Total:           totals.Total,
			DeliveryDate:    order.DeliveryDate,
			CustomerAddress: order.Address,
			CustomerPhone:   order.Phone,
		}
		for _, line := range state.Lines {
			confirmation.OrderItems = append(confirmation.OrderItems, notify.EmailLine{
				Name:     line.Name,
				Quantity: line.Quantity,
				Price:    float64(line.PriceCents) / 100,
				PackOf:   line.PackOf,
			})
		}
		alert := notify.AdminNotification{
			OrderID:       strconv.Itoa(int(order.ID)),
			CustomerName:  order.FirstName,
			CustomerEmail: order.Email,
			Total:         totals.Total,
			ItemCount:     state.ItemCount(),
			DeliveryDate:  order.DeliveryDate,
		}

		// Fire and forget: the handler does not wait, and email failures
		// never reach the customer.
		go mailer.DispatchOrderEmails(context.Background(), confirmation, alert)

		sendJSONResponse(ctx, http.StatusCreated, gin.H{
			"message":        "Order created successfully.",
			"order":          order,
			"transactionRef": order.TransactionRef,
			"summary":        totals,
		})
	}
}

// GetOrderByRef looks an order up by its transaction reference, for the
// customer's order-tracking page.
func GetOrderByRef(ctx *gin.Context) {
	ref := ctx.Param("ref")

	var order models.Order
	result := initializers.DB.Preload("OrderItems").Where("transaction_ref = ?", ref).First(&order)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// GetOrders lists all orders for the admin dashboard, newest first.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, limit, offset := parsePagination(ctx, 15)

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("OrderItems")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	query = query.Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if status := ctx.Query("status"); status != "" {
		countQuery = countQuery.Where("status = ?", status)
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// UpdateOrderStatus sets an order's status to any member of the enumeration.
// Transitions are deliberately unconstrained; the admin is trusted to move
// orders backwards or cancel delivered ones. The customer is told about the
// change best-effort.
func UpdateOrderStatus(mailer *notify.Dispatcher) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var orderStatusData struct {
			Status models.OrderStatus `json:"status"`
		}
		if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
			return
		}

		if !models.IsValidOrderStatus(orderStatusData.Status) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
			return
		}

		orderId, err := strconv.Atoi(ctx.Param("orderId"))
		if err != nil {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
			return
		}

		var order models.Order
		if result := initializers.DB.First(&order, orderId); result.Error != nil {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			return
		}

		if result := initializers.DB.Model(&order).Update("status", orderStatusData.Status); result.Error != nil {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to update order status")
			return
		}

		go mailer.SendStatusUpdate(context.Background(), notify.StatusUpdate{
			To:           order.Email,
			CustomerName: order.FirstName,
			OrderID:      strconv.Itoa(int(order.ID)),
			NewStatus:    string(orderStatusData.Status),
		})

		ctx.JSON(http.StatusOK, gin.H{
			"message": "Order status updated successfully.",
		})
	}
}
