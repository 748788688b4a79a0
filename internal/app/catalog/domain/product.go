package domain

import (
	"time"

	"github.com/light-bringer/checkout-service/internal/pkg/money"
)

// Fit is the cut descriptor of a garment.
type Fit string

const (
	FitFit       Fit = "Fit"
	FitSlim      Fit = "Slim"
	FitSlimFit   Fit = "SlimFit"
	FitRegular   Fit = "Regular"
	FitOversized Fit = "Oversized"
	FitBaggy     Fit = "Baggy"
	FitReta      Fit = "Reta"
)

// Size is the garment size descriptor.
type Size string

const (
	SizePP Size = "PP"
	SizeP  Size = "P"
	SizeM  Size = "M"
	SizeG  Size = "G"
	SizeGG Size = "GG"
)

// ValidFit reports whether f is one of the enumerated fit descriptors.
func ValidFit(f Fit) bool {
	switch f {
	case FitFit, FitSlim, FitSlimFit, FitRegular, FitOversized, FitBaggy, FitReta:
		return true
	}
	return false
}

// ValidSize reports whether s is one of the enumerated size descriptors.
func ValidSize(s Size) bool {
	switch s {
	case SizePP, SizeP, SizeM, SizeG, SizeGG:
		return true
	}
	return false
}

// Product is the aggregate root for the catalog. Carts and purchases
// reference products by id only; the unit price read at purchase time
// is what gets snapshotted into the order total.
type Product struct {
	id        string
	name      string
	color     string
	ptype     string
	fit       Fit
	material  string
	size      Size
	price     *money.Money
	createdAt time.Time
	updatedAt time.Time
}

// NewProduct creates a new Product aggregate.
func NewProduct(id, name, color, ptype string, fit Fit, material string, size Size, price *money.Money, now time.Time) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if color == "" {
		return nil, ErrEmptyColor
	}
	if ptype == "" {
		return nil, ErrEmptyType
	}
	if material == "" {
		return nil, ErrEmptyMaterial
	}
	if !ValidFit(fit) {
		return nil, ErrInvalidFit
	}
	if !ValidSize(size) {
		return nil, ErrInvalidSize
	}
	if price == nil || price.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Product{
		id:        id,
		name:      name,
		color:     color,
		ptype:     ptype,
		fit:       fit,
		material:  material,
		size:      size,
		price:     price.Copy(),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructProduct reconstitutes a Product from the database.
func ReconstructProduct(id, name, color, ptype string, fit Fit, material string, size Size, price *money.Money, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:        id,
		name:      name,
		color:     color,
		ptype:     ptype,
		fit:       fit,
		material:  material,
		size:      size,
		price:     price,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Getters
func (p *Product) ID() string           { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Color() string        { return p.color }
func (p *Product) Type() string         { return p.ptype }
func (p *Product) Fit() Fit             { return p.fit }
func (p *Product) Material() string     { return p.material }
func (p *Product) Size() Size           { return p.size }
func (p *Product) Price() *money.Money  { return p.price.Copy() }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// SetName updates the product name.
func (p *Product) SetName(name string, now time.Time) error {
	if name == "" {
		return ErrEmptyName
	}
	p.name = name
	p.updatedAt = now
	return nil
}

// SetColor updates the color.
func (p *Product) SetColor(color string, now time.Time) error {
	if color == "" {
		return ErrEmptyColor
	}
	p.color = color
	p.updatedAt = now
	return nil
}

// SetType updates the type/category.
func (p *Product) SetType(ptype string, now time.Time) error {
	if ptype == "" {
		return ErrEmptyType
	}
	p.ptype = ptype
	p.updatedAt = now
	return nil
}

// SetFit updates the fit descriptor.
func (p *Product) SetFit(fit Fit, now time.Time) error {
	if !ValidFit(fit) {
		return ErrInvalidFit
	}
	p.fit = fit
	p.updatedAt = now
	return nil
}

// SetMaterial updates the material.
func (p *Product) SetMaterial(material string, now time.Time) error {
	if material == "" {
		return ErrEmptyMaterial
	}
	p.material = material
	p.updatedAt = now
	return nil
}

// SetSize updates the size descriptor.
func (p *Product) SetSize(size Size, now time.Time) error {
	if !ValidSize(size) {
		return ErrInvalidSize
	}
	p.size = size
	p.updatedAt = now
	return nil
}

// SetPrice updates the unit price.
func (p *Product) SetPrice(price *money.Money, now time.Time) error {
	if price == nil || price.IsNegative() {
		return ErrNegativePrice
	}
	p.price = price.Copy()
	p.updatedAt = now
	return nil
}
