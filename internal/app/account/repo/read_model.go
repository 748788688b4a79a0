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
	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// ReadModelImpl implements the account ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetUserByID retrieves a user DTO by ID.
func (rm *ReadModelImpl) GetUserByID(ctx context.Context, userID string) (*contracts.UserDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_user.TableName, spanner.Key{userID}, m_user.AllColumns)
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

	return dataToDTO(&data), nil
}

// ListUsers retrieves a page of users ordered by creation time.
func (rm *ReadModelImpl) ListUsers(ctx context.Context, page query.Page) ([]*contracts.UserDTO, error) {
	stmt := query.From(m_user.TableName).
		Select(m_user.AllColumns...).
		OrderBy(m_user.CreatedAt, query.Asc).
		Paginate(page).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	users := make([]*contracts.UserDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users: %w", err)
		}

		var data m_user.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse user: %w", err)
		}
		users = append(users, dataToDTO(&data))
	}

	return users, nil
}

func dataToDTO(data *m_user.Data) *contracts.UserDTO {
	return &contracts.UserDTO{
		UserID:    data.UserID,
		Name:      data.Name,
		Email:     data.Email,
		Admin:     data.Admin,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
