package register_user

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/checkout-service/internal/app/account/contracts"
	"github.com/light-bringer/checkout-service/internal/app/account/domain"
	cartcontracts "github.com/light-bringer/checkout-service/internal/app/cart/contracts"
	cartdomain "github.com/light-bringer/checkout-service/internal/app/cart/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/clock"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// Request contains the data needed to register a user.
type Request struct {
	Name     string
	Email    string
	Password string
	Admin    bool
}

// Result reports what registration created. Every account starts life
// with an open cart, committed in the same plan as the user row.
type Result struct {
	UserID string
	CartID string
}

// Interactor handles the register user use case.
type Interactor struct {
	users     contracts.UserRepository
	carts     cartcontracts.CartRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new register user interactor.
func NewInteractor(
	users contracts.UserRepository,
	carts cartcontracts.CartRepository,
	cmt *committer.Committer,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		users:     users,
		carts:     carts,
		committer: cmt,
		clock:     clk,
	}
}

// Execute registers a user and opens their first cart atomically.
// The email uniqueness check runs inside the same read-write
// transaction as the insert, so two concurrent registrations with the
// same email cannot both succeed.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if req.Password == "" {
		return nil, domain.ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := i.clock.Now()

	user, err := domain.NewUser(uuid.New().String(), req.Name, req.Email, string(hash), req.Admin, now)
	if err != nil {
		return nil, err
	}

	cart := cartdomain.NewCart(uuid.New().String(), user.ID(), now)

	err = i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		_, err := i.users.GetByEmail(ctx, txn, req.Email)
		if err == nil {
			return domain.ErrUserConflict
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		plan := committer.NewPlan()
		plan.Add(i.users.InsertMut(user))
		plan.Add(i.carts.InsertMut(cart))
		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return nil, err
	}

	return &Result{UserID: user.ID(), CartID: cart.ID()}, nil
}
