package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/checkout-service/internal/app/catalog/contracts"
	"github.com/light-bringer/checkout-service/internal/app/catalog/domain"
	"github.com/light-bringer/checkout-service/internal/models/m_product"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// ReadModelImpl implements the catalog ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProductByID retrieves a product DTO by ID.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.AllColumns)
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

	return dataToDTO(&data)
}

// ListProducts retrieves a filtered page of products. Attribute filters
// run in SQL; price bounds are applied here against the exact rational
// price, so a row is never excluded by float rounding.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter, page query.Page) ([]*contracts.ProductDTO, error) {
	b := query.From(m_product.TableName).
		Select(m_product.AllColumns...).
		OrderBy(m_product.CreatedAt, query.Asc).
		Paginate(page)

	if filter != nil {
		if filter.Name != "" {
			b = b.Where(query.Like(m_product.Name, filter.Name))
		}
		if filter.Color != "" {
			b = b.Where(query.Eq(m_product.Color, filter.Color))
		}
		if filter.Type != "" {
			b = b.Where(query.Eq(m_product.ProductType, filter.Type))
		}
		if filter.Material != "" {
			b = b.Where(query.Eq(m_product.Material, filter.Material))
		}
		if filter.Fit != "" {
			b = b.Where(query.Eq(m_product.Fit, filter.Fit))
		}
		if filter.Size != "" {
			b = b.Where(query.Eq(m_product.Size, filter.Size))
		}
	}

	iter := rm.client.Single().Query(ctx, b.Build())
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		price, err := money.New(data.PriceNumerator, data.PriceDenominator)
		if err != nil {
			return nil, fmt.Errorf("invalid stored price: %w", err)
		}
		if filter != nil {
			if filter.MinPrice != nil && price.LessThan(filter.MinPrice) {
				continue
			}
			if filter.MaxPrice != nil && price.GreaterThan(filter.MaxPrice) {
				continue
			}
		}

		dto, err := dataToDTO(&data)
		if err != nil {
			return nil, err
		}
		products = append(products, dto)
	}

	return products, nil
}

func dataToDTO(data *m_product.Data) (*contracts.ProductDTO, error) {
	price, err := money.New(data.PriceNumerator, data.PriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid stored price: %w", err)
	}

	return &contracts.ProductDTO{
		ProductID: data.ProductID,
		Name:      data.Name,
		Color:     data.Color,
		Type:      data.ProductType,
		Fit:       data.Fit,
		Material:  data.Material,
		Size:      data.Size,
		Price:     price.Float64(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
