package order

import (
	"context"
	"strings"
	"testing"

	"divineastro/database/repository"
	"divineastro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderDefaults(t *testing.T) {
	svc := &DefaultOrderService{Repo: repository.NewFailoverOrderRepo(nil)}

	created, err := svc.CreateOrder(context.Background(), models.OrderInput{
		CustomerName:    "Priya Sharma",
		CustomerEmail:   "priya@example.com",
		CustomerPhone:   "9876543210",
		ShippingAddress: "12 MG Road, Pune",
		Items:           `[{"productId":"p1","quantity":1}]`,
		TotalAmount:     "45000",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "pending", created.PaymentStatus)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", got.CustomerName)
}

func TestCreatePaymentOrder(t *testing.T) {
	svc := &DefaultOrderService{}

	po := svc.CreatePaymentOrder(models.PaymentOrderInput{Amount: 450})
	assert.True(t, strings.HasPrefix(po.ID, "order_"))
	assert.Equal(t, 45000.0, po.Amount, "gateway amount should be in paise")
	assert.Equal(t, "INR", po.Currency)
	assert.Equal(t, "created", po.Status)

	usd := svc.CreatePaymentOrder(models.PaymentOrderInput{Amount: 10, Currency: "USD"})
	assert.Equal(t, "USD", usd.Currency)
}

func TestVerifyPayment(t *testing.T) {
	svc := &DefaultOrderService{}
	assert.True(t, svc.VerifyPayment(models.PaymentVerification{
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "sig",
	}))
}
