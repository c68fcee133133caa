// Package checkout derives the final chargeable amount from a cart subtotal.
package checkout

import "math"

// Config carries the pricing constants. A single tax rate is applied
// everywhere; the rate, the free-shipping threshold and the flat fee are
// configuration, never literals at call sites.
type Config struct {
	TaxRate               float64
	FreeShippingThreshold float64
	FlatShippingFee       float64
}

// DefaultConfig matches the storefront's advertised pricing: 8% tax, flat
// 5.99 shipping waived above a 50.00 subtotal.
var DefaultConfig = Config{
	TaxRate:               0.08,
	FreeShippingThreshold: 50,
	FlatShippingFee:       5.99,
}

// Totals is a monetary breakdown in major currency units. The components are
// unrounded; rounding to minor units happens exactly once, in TotalCents, at
// the point the total is persisted or transmitted.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Quote computes tax and shipping for a subtotal in major units.
func (c Config) Quote(subtotal float64) Totals {
	if subtotal <= 0 {
		return Totals{}
	}
	tax := subtotal * c.TaxRate
	shipping := c.FlatShippingFee
	if subtotal > c.FreeShippingThreshold {
		shipping = 0
	}
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}

// QuoteCents is Quote for a subtotal held in minor units, as the cart stores
// it.
func (c Config) QuoteCents(subtotalCents int64) Totals {
	return c.Quote(float64(subtotalCents) / 100)
}

// TotalCents rounds the grand total to minor units. This is the single
// rounding step in the checkout path.
func (t Totals) TotalCents() int64 {
	return int64(math.Round(t.Total * 100))
}
