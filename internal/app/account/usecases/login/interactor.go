package login

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/checkout-service/internal/app/account/contracts"
	"github.com/light-bringer/checkout-service/internal/app/account/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
	"github.com/light-bringer/checkout-service/internal/pkg/token"
)

// Request contains the credentials to verify.
type Request struct {
	Email    string
	Password string
}

// Result contains the issued token and the identity it names.
type Result struct {
	Token  string
	UserID string
	Name   string
	Admin  bool
}

// Interactor handles the login use case.
type Interactor struct {
	users     contracts.UserRepository
	committer *committer.Committer
	tokens    *token.Manager
}

// NewInteractor creates a new login interactor.
func NewInteractor(users contracts.UserRepository, cmt *committer.Committer, tokens *token.Manager) *Interactor {
	return &Interactor{
		users:     users,
		committer: cmt,
		tokens:    tokens,
	}
}

// Execute verifies the credentials and issues a signed token.
// An unknown email and a wrong password both come back as
// ErrInvalidCredentials; the response never says which half failed.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	user, err := i.users.GetByEmail(ctx, i.committer.Single(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := i.tokens.Issue(user.ID(), user.Name(), user.Admin())
	if err != nil {
		return nil, err
	}

	return &Result{
		Token:  signed,
		UserID: user.ID(),
		Name:   user.Name(),
		Admin:  user.Admin(),
	}, nil
}
