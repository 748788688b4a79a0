package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/account/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// UserRepository defines the interface for user persistence.
// Repositories return mutations, they don't apply them; the usecase
// collects them into a commit plan. Reads take a committer.Reader so
// the same method works against a single-use read and inside a
// read-write transaction.
type UserRepository interface {
	// InsertMut creates a mutation for inserting a new user.
	InsertMut(user *domain.User) *spanner.Mutation

	// UpdateMut creates a mutation replacing the user's row.
	UpdateMut(user *domain.User) *spanner.Mutation

	// DeleteMut creates a mutation deleting the user's row.
	DeleteMut(userID string) *spanner.Mutation

	// GetByID retrieves a user by ID, reconstructing the domain aggregate.
	GetByID(ctx context.Context, r committer.Reader, userID string) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound when no user has that email.
	GetByEmail(ctx context.Context, r committer.Reader, email string) (*domain.User, error)

	// Exists checks if a user exists.
	Exists(ctx context.Context, r committer.Reader, userID string) (bool, error)
}
