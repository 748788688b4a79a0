package list_users

import (
	"context"

	"github.com/light-bringer/checkout-service/internal/app/account/contracts"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// Request contains optional pagination parameters.
type Request struct {
	Offset *int64
	Limit  *int64
}

// Query handles the list users query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list users query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a page of users.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.UserDTO, error) {
	page, err := query.NewPage(req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}
	return q.readModel.ListUsers(ctx, page)
}
