package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/checkout-service/internal/app/catalog/contracts"
	"github.com/light-bringer/checkout-service/internal/app/catalog/domain"
	"github.com/light-bringer/checkout-service/internal/models/m_product"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	model *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo() contracts.ProductRepository {
	return &ProductRepo{
		model: m_product.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	data, err := r.domainToData(product)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation replacing the product's row.
func (r *ProductRepo) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	data, err := r.domainToData(product)
	if err != nil {
		return nil, err
	}
	return r.model.UpdateMut(data), nil
}

// DeleteMut creates a mutation deleting the product's row.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, rd committer.Reader, productID string) (*domain.Product, error) {
	row, err := rd.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return r.dataToDomain(&data)
}

// Exists checks if a product exists.
func (r *ProductRepo) Exists(ctx context.Context, rd committer.Reader, productID string) (bool, error) {
	_, err := rd.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{m_product.ProductID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return true, nil
}

// UnitPrice reads just the product's current price.
func (r *ProductRepo) UnitPrice(ctx context.Context, rd committer.Reader, productID string) (*money.Money, error) {
	row, err := rd.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
		m_product.PriceNumerator,
		m_product.PriceDenominator,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product price: %w", err)
	}

	var num, denom int64
	if err := row.Columns(&num, &denom); err != nil {
		return nil, fmt.Errorf("failed to parse product price: %w", err)
	}

	price, err := money.New(num, denom)
	if err != nil {
		return nil, fmt.Errorf("invalid stored price: %w", err)
	}
	return price, nil
}

func (r *ProductRepo) domainToData(product *domain.Product) (*m_product.Data, error) {
	price := product.Price()
	num, err := price.Numerator()
	if err != nil {
		return nil, fmt.Errorf("price exceeds storage capacity: %w", err)
	}
	denom, err := price.Denominator()
	if err != nil {
		return nil, fmt.Errorf("price exceeds storage capacity: %w", err)
	}

	return &m_product.Data{
		ProductID:        product.ID(),
		Name:             product.Name(),
		Color:            product.Color(),
		ProductType:      product.Type(),
		Fit:              string(product.Fit()),
		Material:         product.Material(),
		Size:             string(product.Size()),
		PriceNumerator:   num,
		PriceDenominator: denom,
		CreatedAt:        product.CreatedAt(),
		UpdatedAt:        product.UpdatedAt(),
	}, nil
}

func (r *ProductRepo) dataToDomain(data *m_product.Data) (*domain.Product, error) {
	price, err := money.New(data.PriceNumerator, data.PriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid stored price: %w", err)
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Name,
		data.Color,
		data.ProductType,
		domain.Fit(data.Fit),
		data.Material,
		domain.Size(data.Size),
		price,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}
