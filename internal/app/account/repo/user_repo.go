package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/checkout-service/internal/app/account/contracts"
	"github.com/light-bringer/checkout-service/internal/app/account/domain"
	"github.com/light-bringer/checkout-service/internal/models/m_user"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// UserRepo implements UserRepository for Spanner.
type UserRepo struct {
	model *m_user.Model
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo() contracts.UserRepository {
	return &UserRepo{
		model: m_user.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new user.
func (r *UserRepo) InsertMut(user *domain.User) *spanner.Mutation {
	return r.model.InsertMut(r.domainToData(user))
}

// UpdateMut creates a mutation replacing the user's row.
func (r *UserRepo) UpdateMut(user *domain.User) *spanner.Mutation {
	return r.model.UpdateMut(r.domainToData(user))
}

// DeleteMut creates a mutation deleting the user's row.
func (r *UserRepo) DeleteMut(userID string) *spanner.Mutation {
	return r.model.DeleteMut(userID)
}

// GetByID retrieves a user by ID, reconstructing the domain aggregate.
func (r *UserRepo) GetByID(ctx context.Context, rd committer.Reader, userID string) (*domain.User, error) {
	row, err := rd.ReadRow(ctx, m_user.TableName, spanner.Key{userID}, m_user.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	var data m_user.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}

	return r.dataToDomain(&data), nil
}

// GetByEmail retrieves a user by email address.
func (r *UserRepo) GetByEmail(ctx context.Context, rd committer.Reader, email string) (*domain.User, error) {
	stmt := query.From(m_user.TableName).
		Select(m_user.AllColumns...).
		Where(query.Eq(m_user.Email, email)).
		Limit(1).
		Build()

	iter := rd.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user by email: %w", err)
	}

	var data m_user.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}

	return r.dataToDomain(&data), nil
}

// Exists checks if a user exists.
func (r *UserRepo) Exists(ctx context.Context, rd committer.Reader, userID string) (bool, error) {
	_, err := rd.ReadRow(ctx, m_user.TableName, spanner.Key{userID}, []string{m_user.UserID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return true, nil
}

func (r *UserRepo) domainToData(user *domain.User) *m_user.Data {
	return &m_user.Data{
		UserID:       user.ID(),
		Name:         user.Name(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		Admin:        user.Admin(),
		CreatedAt:    user.CreatedAt(),
		UpdatedAt:    user.UpdatedAt(),
	}
}

func (r *UserRepo) dataToDomain(data *m_user.Data) *domain.User {
	return domain.ReconstructUser(
		data.UserID,
		data.Name,
		data.Email,
		data.PasswordHash,
		data.Admin,
		data.CreatedAt,
		data.UpdatedAt,
	)
}
