package database

import (
	"encoding/json"
	"testing"
	"time"

	"divineastro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "customer_name", SnakeCase("customerName"))
	assert.Equal(t, "profile_image_url", SnakeCase("profileImageUrl"))
	assert.Equal(t, "id", SnakeCase("id"))
	assert.Equal(t, "created_at", SnakeCase("createdAt"))
}

func TestCamelCase(t *testing.T) {
	assert.Equal(t, "customerName", CamelCase("customer_name"))
	assert.Equal(t, "id", CamelCase("id"))
	assert.Equal(t, "createdAt", CamelCase("created_at"))
}

func TestCasingRoundTrip(t *testing.T) {
	in := models.Order{
		ID:              "ord-1",
		CustomerName:    "Priya Sharma",
		CustomerEmail:   "priya@example.com",
		CustomerPhone:   "9876543210",
		ShippingAddress: "12 MG Road, Pune",
		Items:           `[{"productId":"p1","quantity":2}]`,
		TotalAmount:     "4500",
		PaymentStatus:   "pending",
		CreatedAt:       time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	snake, err := MarshalSnake(in)
	require.NoError(t, err)

	// The wire form must carry snake_case keys only.
	var wire map[string]any
	require.NoError(t, json.Unmarshal(snake, &wire))
	assert.Contains(t, wire, "customer_name")
	assert.Contains(t, wire, "shipping_address")
	assert.NotContains(t, wire, "customerName")

	var out models.Order
	require.NoError(t, UnmarshalCamel(snake, &out))
	assert.Equal(t, in, out)
}

func TestUnmarshalCamelNestedArrays(t *testing.T) {
	wire := []byte(`[{"customer_name":"A","total_amount":"10"},{"customer_name":"B","total_amount":"20"}]`)
	var out []models.Order
	require.NoError(t, UnmarshalCamel(wire, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].CustomerName)
	assert.Equal(t, "20", out[1].TotalAmount)
}
