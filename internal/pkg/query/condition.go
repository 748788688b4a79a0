package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations generate SQL fragments and parameter maps using
// Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, ...).
	SQL(paramIndex int) (string, map[string]interface{})
}

type binaryCondition struct {
	field    string
	operator string
	value    interface{}
}

func (c *binaryCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s %s @%s", c.field, c.operator, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// Eq creates an equality condition.
// Example: Eq("size", "M") generates "size = @p0".
func Eq(field string, value interface{}) Condition {
	return &binaryCondition{field: field, operator: "=", value: value}
}

// Gte creates a greater-than-or-equal condition, used for price floors.
func Gte(field string, value interface{}) Condition {
	return &binaryCondition{field: field, operator: ">=", value: value}
}

// Lte creates a less-than-or-equal condition, used for price ceilings.
func Lte(field string, value interface{}) Condition {
	return &binaryCondition{field: field, operator: "<=", value: value}
}

type likeCondition struct {
	field  string
	substr string
}

func (c *likeCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s LIKE @%s", c.field, paramName)
	return sql, map[string]interface{}{paramName: "%" + c.substr + "%"}
}

// Like creates a substring-match condition.
// Example: Like("name", "shirt") generates "name LIKE @p0" with the
// parameter wrapped in wildcards.
func Like(field, substr string) Condition {
	return &likeCondition{field: field, substr: substr}
}

type inCondition struct {
	field  string
	values []string
}

func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s IN UNNEST(@%s)", c.field, paramName)
	return sql, map[string]interface{}{paramName: c.values}
}

// In creates a membership condition over a string array parameter.
// Example: In("cart_id", ids) generates "cart_id IN UNNEST(@p0)".
func In(field string, values []string) Condition {
	return &inCondition{field: field, values: values}
}
