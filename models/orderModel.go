package models

import "gorm.io/gorm"

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// OrderStatuses lists every status in display order. Transitions are
// admin-driven and unconstrained: any status may follow any other.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// IsValidOrderStatus reports whether s is a member of the fixed enumeration.
func IsValidOrderStatus(s OrderStatus) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Order struct {
	gorm.Model
	TransactionRef      string      `json:"transactionRef" gorm:"size:64;uniqueIndex"`
	FirstName           string      `json:"firstName"`
	LastName            string      `json:"lastName"`
	Email               string      `json:"email"`
	Phone               string      `json:"phone"`
	Address             string      `json:"address"`
	City                string      `json:"city"`
	ZipCode             string      `json:"zipCode"`
	SpecialInstructions string      `json:"specialInstructions"`
	TotalCents          int64       `json:"totalCents"`
	DeliveryDate        string      `json:"deliveryDate"`
	Status              OrderStatus `json:"status"`
	OrderItems          []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID    int    `json:"orderId"`
	DessertID  uint   `json:"dessertId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	PackOf     int    `json:"packOf"`
	Quantity   int    `json:"quantity"`
}
