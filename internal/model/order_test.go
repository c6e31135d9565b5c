package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []OrderStatus{
		StatusPending, StatusProcessing, StatusCompleted, StatusCanceled, StatusReturned,
	} {
		assert.True(t, ValidStatus(s), "expected %s to be valid", s)
	}

	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus("comleted"))
	assert.False(t, ValidStatus(""))
}

func TestPaymentMethodFromSelector(t *testing.T) {
	assert.Equal(t, PaymentCard, PaymentMethodFromSelector(1))
	assert.Equal(t, PaymentWallet, PaymentMethodFromSelector(2))
	assert.Equal(t, PaymentSBP, PaymentMethodFromSelector(3))
	assert.Equal(t, PaymentUnknown, PaymentMethodFromSelector(4))
	assert.Equal(t, PaymentUnknown, PaymentMethodFromSelector(0))
	assert.Equal(t, PaymentUnknown, PaymentMethodFromSelector(-1))
}

func TestOrderItem_Subtotal(t *testing.T) {
	item := OrderItem{
		Quantity: 2,
		Price:    decimal.RequireFromString("50.00"),
	}

	assert.True(t, item.Subtotal().Equal(decimal.NewFromInt(100)))
}
