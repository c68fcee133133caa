// Package notify forwards order notifications to the hosted email functions.
// Delivery is best-effort: failures are logged and reported in the Result,
// never returned as errors, so a broken mailer can not fail a checkout.
package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	orderConfirmationFn = "send-order-confirmation"
	adminNotificationFn = "send-admin-notification"
	statusUpdateFn      = "send-status-update"

	requestTimeout = 10 * time.Second
)

// EmailLine is one purchased item as rendered in the confirmation email.
type EmailLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	PackOf   int     `json:"pack_of"`
}

// OrderConfirmation is the customer-facing confirmation payload. Monetary
// fields are in major currency units.
type OrderConfirmation struct {
	To              string      `json:"to"`
	CustomerName    string      `json:"customerName"`
	OrderID         string      `json:"orderId"`
	TransactionRef  string      `json:"transactionRef"`
	OrderItems      []EmailLine `json:"orderItems"`
	Subtotal        float64     `json:"subtotal"`
	Tax             float64     `json:"tax"`
	Shipping        float64     `json:"shipping"`
	Total           float64     `json:"total"`
	DeliveryDate    string      `json:"deliveryDate"`
	CustomerAddress string      `json:"customerAddress"`
	CustomerPhone   string      `json:"customerPhone"`
}

// AdminNotification is the internal new-order alert payload.
type AdminNotification struct {
	OrderID       string  `json:"orderId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Total         float64 `json:"total"`
	ItemCount     int     `json:"itemCount"`
	DeliveryDate  string  `json:"deliveryDate"`
}

// StatusUpdate tells a customer their order moved to a new status.
type StatusUpdate struct {
	To            string `json:"to"`
	CustomerName  string `json:"customerName"`
	OrderID       string `json:"orderId"`
	NewStatus     string `json:"newStatus"`
	StatusMessage string `json:"statusMessage"`
}

// Result is the outcome of one notification call, consumed for logging only.
type Result struct {
	Success bool
	Err     error
}

// Dispatcher invokes the named remote functions over HTTPS with JSON bodies.
type Dispatcher struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

func NewDispatcher(baseURL, apiKey string) *Dispatcher {
	return &Dispatcher{
		client:  resty.New().SetTimeout(requestTimeout),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// invoke posts the payload to one remote function and folds every failure
// mode (transport error, non-2xx, error field in the body) into the Result.
func (d *Dispatcher) invoke(ctx context.Context, function string, payload any) Result {
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}

	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+d.apiKey).
		SetBody(payload).
		SetResult(&body).
		Post(d.baseURL + "/" + function)

	if err != nil {
		log.Printf("Email function %s failed: %v", function, err)
		return Result{Err: err}
	}
	if resp.IsError() {
		err := fmt.Errorf("email function %s returned status %d: %s", function, resp.StatusCode(), resp.String())
		log.Println(err)
		return Result{Err: err}
	}
	if body.Error != "" {
		err := fmt.Errorf("email function %s reported: %s", function, body.Error)
		log.Println(err)
		return Result{Err: err}
	}

	log.Printf("Email sent successfully via %s", function)
	return Result{Success: true}
}

func (d *Dispatcher) SendOrderConfirmation(ctx context.Context, data OrderConfirmation) Result {
	return d.invoke(ctx, orderConfirmationFn, data)
}

func (d *Dispatcher) SendAdminNotification(ctx context.Context, data AdminNotification) Result {
	return d.invoke(ctx, adminNotificationFn, data)
}

func (d *Dispatcher) SendStatusUpdate(ctx context.Context, data StatusUpdate) Result {
	if data.StatusMessage == "" {
		data.StatusMessage = StatusMessage(data.NewStatus)
	}
	return d.invoke(ctx, statusUpdateFn, data)
}

// DispatchOrderEmails sends the customer confirmation and the admin alert.
// The calls are independent: a failure in either is logged and does not
// prevent the other, and neither outcome reaches the placing customer.
func (d *Dispatcher) DispatchOrderEmails(ctx context.Context, confirmation OrderConfirmation, alert AdminNotification) (Result, Result) {
	customer := d.SendOrderConfirmation(ctx, confirmation)
	if !customer.Success {
		log.Printf("Failed to send customer confirmation for order %s: %v", confirmation.OrderID, customer.Err)
	}
	admin := d.SendAdminNotification(ctx, alert)
	if !admin.Success {
		log.Printf("Failed to send admin notification for order %s: %v", alert.OrderID, admin.Err)
	}
	return customer, admin
}

var statusMessages = map[string]string{
	"pending":          "Your order has been received and is being processed.",
	"confirmed":        "Your order has been confirmed and is being prepared.",
	"preparing":        "Your delicious treats are being freshly prepared!",
	"out_for_delivery": "Your order is on its way! Our delivery team will contact you soon.",
	"delivered":        "Your order has been successfully delivered. Enjoy your treats!",
	"cancelled":        "Your order has been cancelled. If you have any questions, please contact us.",
}

// StatusMessage returns the customer-friendly text for a status.
func StatusMessage(status string) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return "Your order status has been updated to: " + status
}
