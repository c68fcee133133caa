package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	cfg := Config{TaxRate: 0.08, FreeShippingThreshold: 50, FlatShippingFee: 5.99}

	tests := []struct {
		name       string
		subtotal   float64
		wantTax    float64
		wantShip   float64
		wantTotal  float64
		totalCents int64
	}{
		{
			name:       "below free shipping threshold",
			subtotal:   40,
			wantTax:    3.2,
			wantShip:   5.99,
			wantTotal:  49.19,
			totalCents: 4919,
		},
		{
			name:       "above free shipping threshold",
			subtotal:   60,
			wantTax:    4.8,
			wantShip:   0,
			wantTotal:  64.8,
			totalCents: 6480,
		},
		{
			name:     "empty cart",
			subtotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := cfg.Quote(tt.subtotal)
			assert.InDelta(t, tt.subtotal, totals.Subtotal, 1e-9)
			assert.InDelta(t, tt.wantTax, totals.Tax, 1e-9)
			assert.InDelta(t, tt.wantShip, totals.Shipping, 1e-9)
			assert.InDelta(t, tt.wantTotal, totals.Total, 1e-9)
			assert.Equal(t, tt.totalCents, totals.TotalCents())
		})
	}
}

func TestQuoteExactlyAtThresholdStillPaysShipping(t *testing.T) {
	cfg := Config{TaxRate: 0.08, FreeShippingThreshold: 50, FlatShippingFee: 5.99}
	totals := cfg.Quote(50)
	assert.InDelta(t, 5.99, totals.Shipping, 1e-9)
}

func TestQuoteCentsConvertsFromMinorUnits(t *testing.T) {
	cfg := DefaultConfig
	totals := cfg.QuoteCents(4000)
	assert.InDelta(t, 40, totals.Subtotal, 1e-9)
	assert.Equal(t, int64(4919), totals.TotalCents())
}

func TestTotalCentsRoundsOnce(t *testing.T) {
	// 10.99 * 1.08 + 5.99 = 17.8592: intermediate components stay unrounded
	// and only the final total lands on a cent.
	cfg := Config{TaxRate: 0.08, FreeShippingThreshold: 50, FlatShippingFee: 5.99}
	totals := cfg.Quote(10.99)
	assert.InDelta(t, 0.8792, totals.Tax, 1e-9)
	assert.Equal(t, int64(1786), totals.TotalCents())
}

func TestQuoteNegativeSubtotalIsZero(t *testing.T) {
	totals := DefaultConfig.Quote(-5)
	assert.Equal(t, Totals{}, totals)
	assert.Zero(t, totals.TotalCents())
}
