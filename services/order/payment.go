package order

import (
	"fmt"
	"time"

	"divineastro/models"
)

// Payment endpoints keep the Razorpay request/response contract the
// storefront expects while the gateway integration stays stubbed.

func (s *DefaultOrderService) CreatePaymentOrder(input models.PaymentOrderInput) models.PaymentOrder {
	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}
	return models.PaymentOrder{
		ID:       fmt.Sprintf("order_%d", time.Now().UnixMilli()),
		Amount:   input.Amount * 100, // gateway amounts are in paise
		Currency: currency,
		Status:   "created",
	}
}

func (s *DefaultOrderService) VerifyPayment(v models.PaymentVerification) bool {
	// Signature verification belongs to the real gateway; acknowledge receipt.
	return true
}
