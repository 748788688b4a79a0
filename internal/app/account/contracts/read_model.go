package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// UserDTO is a data transfer object for user queries.
// The password hash never leaves the repository layer.
type UserDTO struct {
	UserID    string
	Name      string
	Email     string
	Admin     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReadModel defines the interface for user queries.
// Read models bypass the domain layer; they serve display data only.
type ReadModel interface {
	// GetUserByID retrieves a user DTO by ID.
	GetUserByID(ctx context.Context, userID string) (*UserDTO, error)

	// ListUsers retrieves a page of users ordered by creation time.
	ListUsers(ctx context.Context, page query.Page) ([]*UserDTO, error)
}
