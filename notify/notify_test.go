package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	Path string
	Body map[string]any
}

// fakeFunctions stands in for the hosted email functions, recording every
// invocation and failing the paths told to fail.
func fakeFunctions(t *testing.T, failPaths map[string]int, calls *[]recordedCall) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		*calls = append(*calls, recordedCall{Path: r.URL.Path, Body: body})

		if status, ok := failPaths[r.URL.Path]; ok {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
}

func confirmationFixture() OrderConfirmation {
	return OrderConfirmation{
		To:             "alice@example.com",
		CustomerName:   "Alice",
		OrderID:        "42",
		TransactionRef: "PB-TEST",
		OrderItems: []EmailLine{
			{Name: "Brownie Box", Quantity: 2, Price: 12, PackOf: 4},
		},
		Subtotal:        24,
		Tax:             1.92,
		Shipping:        5.99,
		Total:           31.91,
		DeliveryDate:    "2025-03-14",
		CustomerAddress: "1 Sugar Lane",
		CustomerPhone:   "555-0101",
	}
}

func alertFixture() AdminNotification {
	return AdminNotification{
		OrderID:       "42",
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		Total:         31.91,
		ItemCount:     2,
		DeliveryDate:  "2025-03-14",
	}
}

func TestDispatchOrderEmailsBothSucceed(t *testing.T) {
	var calls []recordedCall
	srv := fakeFunctions(t, nil, &calls)
	defer srv.Close()

	d := NewDispatcher(srv.URL, "test-key")
	customer, admin := d.DispatchOrderEmails(context.Background(), confirmationFixture(), alertFixture())

	assert.True(t, customer.Success)
	assert.True(t, admin.Success)
	require.Len(t, calls, 2)
	assert.Equal(t, "/send-order-confirmation", calls[0].Path)
	assert.Equal(t, "/send-admin-notification", calls[1].Path)
	assert.Equal(t, "alice@example.com", calls[0].Body["to"])
	assert.Equal(t, "PB-TEST", calls[0].Body["transactionRef"])
	assert.EqualValues(t, 2, calls[1].Body["itemCount"])
}

func TestAdminFailureDoesNotBlockCustomerEmail(t *testing.T) {
	var calls []recordedCall
	srv := fakeFunctions(t, map[string]int{"/send-admin-notification": http.StatusInternalServerError}, &calls)
	defer srv.Close()

	d := NewDispatcher(srv.URL, "test-key")
	customer, admin := d.DispatchOrderEmails(context.Background(), confirmationFixture(), alertFixture())

	assert.True(t, customer.Success)
	assert.False(t, admin.Success)
	assert.Error(t, admin.Err)

	// Both functions were attempted despite the failure.
	require.Len(t, calls, 2)
}

func TestCustomerFailureDoesNotBlockAdminEmail(t *testing.T) {
	var calls []recordedCall
	srv := fakeFunctions(t, map[string]int{"/send-order-confirmation": http.StatusBadGateway}, &calls)
	defer srv.Close()

	d := NewDispatcher(srv.URL, "test-key")
	customer, admin := d.DispatchOrderEmails(context.Background(), confirmationFixture(), alertFixture())

	assert.False(t, customer.Success)
	assert.Error(t, customer.Err)
	assert.True(t, admin.Success)
	require.Len(t, calls, 2)
}

func TestErrorFieldInBodyIsSoftFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "smtp relay down"})
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, "test-key")
	result := d.SendOrderConfirmation(context.Background(), confirmationFixture())

	assert.False(t, result.Success)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "smtp relay down")
}

func TestUnreachableEndpointIsSoftFailure(t *testing.T) {
	d := NewDispatcher("http://127.0.0.1:1", "test-key")
	result := d.SendAdminNotification(context.Background(), alertFixture())

	assert.False(t, result.Success)
	assert.Error(t, result.Err)
}

func TestStatusUpdateFillsDefaultMessage(t *testing.T) {
	var calls []recordedCall
	srv := fakeFunctions(t, nil, &calls)
	defer srv.Close()

	d := NewDispatcher(srv.URL, "test-key")
	result := d.SendStatusUpdate(context.Background(), StatusUpdate{
		To:           "alice@example.com",
		CustomerName: "Alice",
		OrderID:      "42",
		NewStatus:    "out_for_delivery",
	})

	assert.True(t, result.Success)
	require.Len(t, calls, 1)
	assert.Equal(t, "/send-status-update", calls[0].Path)
	assert.Equal(t, StatusMessage("out_for_delivery"), calls[0].Body["statusMessage"])
}

func TestStatusMessageFallsBackForUnknownStatus(t *testing.T) {
	assert.Equal(t, "Your order status has been updated to: archived", StatusMessage("archived"))
}
