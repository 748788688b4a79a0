package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/checkout-service/internal/pkg/money"
)

var testTime = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func TestNewPurchase(t *testing.T) {
	total, err := money.New(10998, 100)
	require.NoError(t, err)

	p, err := NewPurchase("pu1", "c1", total, "credit_card", testTime)
	require.NoError(t, err)

	assert.Equal(t, "pu1", p.ID())
	assert.Equal(t, "c1", p.CartID())
	assert.Equal(t, "credit_card", p.PaymentMethod())
	assert.True(t, p.Total().Equals(total))
	assert.Equal(t, testTime, p.CreatedAt())
}

func TestNewPurchase_EmptyPaymentMethod(t *testing.T) {
	total, err := money.New(100, 1)
	require.NoError(t, err)

	_, err = NewPurchase("pu1", "c1", total, "", testTime)
	assert.ErrorIs(t, err, ErrEmptyPaymentMethod)
}

func TestPurchase_TotalIsCopied(t *testing.T) {
	total, err := money.New(500, 100)
	require.NoError(t, err)

	p, err := NewPurchase("pu1", "c1", total, "pix", testTime)
	require.NoError(t, err)

	// Mutating the returned total must not touch the record.
	got := p.Total()
	got = got.Add(got)
	assert.False(t, p.Total().Equals(got))

	want, err := money.New(500, 100)
	require.NoError(t, err)
	assert.True(t, p.Total().Equals(want))
}
