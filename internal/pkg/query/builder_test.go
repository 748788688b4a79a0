package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("carts").
		Select("cart_id", "user_id", "is_open").
		Build()

	assert.Equal(t, "SELECT cart_id, user_id, is_open FROM carts", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("carts").Build()

	assert.Equal(t, "SELECT * FROM carts", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("carts").
		Select("cart_id").
		Where(Eq("user_id", "u1")).
		Build()

	assert.Equal(t, "SELECT cart_id FROM carts WHERE user_id = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "u1",
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("carts").
		Select("cart_id").
		Where(Eq("user_id", "u1")).
		Where(Eq("is_open", true)).
		Build()

	assert.Equal(t, "SELECT cart_id FROM carts WHERE user_id = @p0 AND is_open = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "u1",
		"p1": true,
	}, stmt.Params)
}

func TestBuilder_RangeConditions(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Gte("price_numerator", int64(1000))).
		Where(Lte("price_numerator", int64(5000))).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE price_numerator >= @p0 AND price_numerator <= @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": int64(1000),
		"p1": int64(5000),
	}, stmt.Params)
}

func TestBuilder_InCondition(t *testing.T) {
	stmt := From("purchases").
		Select("purchase_id").
		Where(In("cart_id", []string{"c1", "c2"})).
		Build()

	assert.Equal(t, "SELECT purchase_id FROM purchases WHERE cart_id IN UNNEST(@p0)", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": []string{"c1", "c2"},
	}, stmt.Params)
}

func TestBuilder_LikeCondition(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Like("name", "shirt")).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE name LIKE @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "%shirt%",
	}, stmt.Params)
}

func TestBuilder_OrderBy(t *testing.T) {
	stmt := From("purchases").
		Select("purchase_id").
		OrderBy("created_at", Desc).
		Build()

	assert.Equal(t, "SELECT purchase_id FROM purchases ORDER BY created_at DESC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_Paginate(t *testing.T) {
	offset := int64(20)
	limit := int64(10)
	page, err := NewPage(&offset, &limit)
	require.NoError(t, err)

	stmt := From("purchases").
		Select("purchase_id").
		Paginate(page).
		Build()

	assert.Equal(t, "SELECT purchase_id FROM purchases LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit":  int64(10),
		"offset": int64(20),
	}, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("carts").Select("cart_id")
	withWhere := base.Where(Eq("is_open", true))

	assert.Equal(t, "SELECT cart_id FROM carts", base.Build().SQL)
	assert.NotEqual(t, base.Build().SQL, withWhere.Build().SQL)
}

func TestNewPage(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		page, err := NewPage(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), page.Offset)
		assert.Equal(t, DefaultLimit, page.Limit)
	})

	t.Run("limit capped", func(t *testing.T) {
		limit := int64(9999)
		page, err := NewPage(nil, &limit)
		require.NoError(t, err)
		assert.Equal(t, MaxLimit, page.Limit)
	})

	t.Run("negative offset rejected", func(t *testing.T) {
		offset := int64(-1)
		_, err := NewPage(&offset, nil)
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		limit := int64(-5)
		_, err := NewPage(nil, &limit)
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("zero limit allowed", func(t *testing.T) {
		limit := int64(0)
		page, err := NewPage(nil, &limit)
		require.NoError(t, err)
		assert.Equal(t, int64(0), page.Limit)
	})
}
