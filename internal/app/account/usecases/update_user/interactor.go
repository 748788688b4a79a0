package update_user

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/checkout-service/internal/app/account/contracts"
	"github.com/light-bringer/checkout-service/internal/app/account/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/clock"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// Request contains the user ID and the fields to change. Nil fields
// are left untouched.
type Request struct {
	UserID   string
	Name     *string
	Email    *string
	Password *string
	Admin    *bool
}

// Interactor handles the update user use case.
type Interactor struct {
	users     contracts.UserRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new update user interactor.
func NewInteractor(users contracts.UserRepository, cmt *committer.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		users:     users,
		committer: cmt,
		clock:     clk,
	}
}

// Execute applies the requested field changes. An email change
// re-checks uniqueness inside the same transaction as the write.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	var hash string
	if req.Password != nil {
		if *req.Password == "" {
			return domain.ErrEmptyPassword
		}
		h, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		hash = string(h)
	}

	return i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		user, err := i.users.GetByID(ctx, txn, req.UserID)
		if err != nil {
			return err
		}

		now := i.clock.Now()

		if req.Email != nil && *req.Email != user.Email() {
			other, err := i.users.GetByEmail(ctx, txn, *req.Email)
			if err == nil && other.ID() != user.ID() {
				return domain.ErrUserConflict
			}
			if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
				return err
			}
			if err := user.SetEmail(*req.Email, now); err != nil {
				return err
			}
		}

		if req.Name != nil {
			if err := user.SetName(*req.Name, now); err != nil {
				return err
			}
		}

		if req.Password != nil {
			if err := user.SetPasswordHash(hash, now); err != nil {
				return err
			}
		}

		if req.Admin != nil {
			user.SetAdmin(*req.Admin, now)
		}

		plan := committer.NewPlan()
		plan.Add(i.users.UpdateMut(user))
		return txn.BufferWrite(plan.Mutations())
	})
}
