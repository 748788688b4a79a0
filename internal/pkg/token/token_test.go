package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/checkout-service/internal/pkg/clock"
)

func TestManager_IssueAndVerify(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC))
	mgr := NewManager([]byte("test-secret"), time.Hour, clk)

	signed, err := mgr.Issue("user-1", "Alice", true)
	require.NoError(t, err)

	claims, err := mgr.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.True(t, claims.Admin)
}

func TestManager_VerifyExpired(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC))
	mgr := NewManager([]byte("test-secret"), time.Hour, clk)

	signed, err := mgr.Issue("user-1", "Alice", false)
	require.NoError(t, err)

	clk.Advance(2 * time.Hour)

	_, err = mgr.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyWrongSecret(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC))
	mgr := NewManager([]byte("test-secret"), time.Hour, clk)
	other := NewManager([]byte("other-secret"), time.Hour, clk)

	signed, err := mgr.Issue("user-1", "Alice", false)
	require.NoError(t, err)

	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyGarbage(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	mgr := NewManager([]byte("test-secret"), time.Hour, clk)

	_, err := mgr.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
