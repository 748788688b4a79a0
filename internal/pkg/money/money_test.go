package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := New(4999, 100)
		require.NoError(t, err)
		assert.Equal(t, "49.99", m.String())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := New(100, 0)
		assert.Error(t, err)
	})

	t.Run("negative denominator returns error", func(t *testing.T) {
		_, err := New(100, -1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})

	t.Run("negative numerator allowed", func(t *testing.T) {
		m, err := New(-100, 1)
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestParse(t *testing.T) {
	t.Run("decimal string", func(t *testing.T) {
		m, err := Parse("49.99")
		require.NoError(t, err)
		num, err := m.Numerator()
		require.NoError(t, err)
		denom, err := m.Denominator()
		require.NoError(t, err)
		assert.Equal(t, int64(4999), num)
		assert.Equal(t, int64(100), denom)
	})

	t.Run("integer string", func(t *testing.T) {
		m, err := Parse("10")
		require.NoError(t, err)
		assert.Equal(t, "10.00", m.String())
	})

	t.Run("garbage returns error", func(t *testing.T) {
		_, err := Parse("ten dollars")
		assert.Error(t, err)
	})
}

func TestMoney_Add(t *testing.T) {
	m1, _ := New(100, 1)
	m2, _ := New(50, 1)

	result := m1.Add(m2)
	assert.Equal(t, "150.00", result.String())
}

func TestMoney_MultiplyInt(t *testing.T) {
	m, _ := New(4999, 100) // 49.99

	result := m.MultiplyInt(3)
	assert.Equal(t, "149.97", result.String())
}

// Order totals must not drift the way float accumulation does:
// 49.99*2 + 10.00*1 must be exactly 109.98.
func TestMoney_ExactTotal(t *testing.T) {
	unitA, err := Parse("49.99")
	require.NoError(t, err)
	unitB, err := Parse("10.00")
	require.NoError(t, err)

	total := Zero().Add(unitA.MultiplyInt(2)).Add(unitB.MultiplyInt(1))

	expected, err := Parse("109.98")
	require.NoError(t, err)
	assert.True(t, total.Equals(expected))
	assert.Equal(t, "109.98", total.String())
}

func TestMoney_Comparisons(t *testing.T) {
	m1, _ := New(100, 1)
	m2, _ := New(200, 1)
	m3, _ := New(200, 2) // equals m1 after normalization

	assert.True(t, m1.LessThan(m2))
	assert.True(t, m2.GreaterThan(m1))
	assert.True(t, m1.Equals(m3))
	assert.False(t, m1.IsZero())
	assert.True(t, Zero().IsZero())
}

func TestMoney_Copy(t *testing.T) {
	m1, _ := New(100, 1)
	m2 := m1.Copy()

	m2 = m2.Add(m1)
	assert.Equal(t, "100.00", m1.String())
	assert.Equal(t, "200.00", m2.String())
}
