package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"gmumarket/internal/domain/entity"
)

// ProductFilter narrows a public listing query. Zero-valued fields are
// omitted from the request entirely.
type ProductFilter struct {
	Category  string
	Condition string
	Status    string
	Search    string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
}

// ProductUpdate is a partial update. Nil fields are left untouched
// server-side.
type ProductUpdate struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Condition   *string          `json:"condition,omitempty"`
	Status      *string          `json:"status,omitempty"`
	Image       *string          `json:"image,omitempty"`
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// ListMine returns the listings owned by the authenticated seller; the
	// server infers the owner from the bearer token.
	ListMine(ctx context.Context) ([]*entity.Product, error)
	// Create submits a new listing and returns the canonical record with
	// the server-assigned id.
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, id string, patch ProductUpdate) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}
