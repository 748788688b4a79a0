package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u, err := NewUser("u1", "Alice", "alice@example.com", "hash", false, testTime)
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID())
		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "alice@example.com", u.Email())
		assert.False(t, u.Admin())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewUser("u1", "", "alice@example.com", "hash", false, testTime)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("empty email rejected", func(t *testing.T) {
		_, err := NewUser("u1", "Alice", "", "hash", false, testTime)
		assert.ErrorIs(t, err, ErrEmptyEmail)
	})

	t.Run("empty password rejected", func(t *testing.T) {
		_, err := NewUser("u1", "Alice", "alice@example.com", "", false, testTime)
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})
}

func TestUser_Setters(t *testing.T) {
	u, err := NewUser("u1", "Alice", "alice@example.com", "hash", false, testTime)
	require.NoError(t, err)

	later := testTime.Add(time.Hour)

	require.NoError(t, u.SetName("Alicia", later))
	assert.Equal(t, "Alicia", u.Name())
	assert.Equal(t, later, u.UpdatedAt())

	require.NoError(t, u.SetEmail("alicia@example.com", later))
	assert.Equal(t, "alicia@example.com", u.Email())

	assert.ErrorIs(t, u.SetName("", later), ErrEmptyName)
	assert.ErrorIs(t, u.SetEmail("", later), ErrEmptyEmail)
	assert.ErrorIs(t, u.SetPasswordHash("", later), ErrEmptyPassword)

	u.SetAdmin(true, later)
	assert.True(t, u.Admin())
}
