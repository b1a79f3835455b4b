package entity

import (
	"github.com/shopspring/decimal"
)

// Product categories accepted by the marketplace.
const (
	CategoryTextbooks   = "textbooks"
	CategoryElectronics = "electronics"
	CategoryFurniture   = "furniture"
	CategoryClothing    = "clothing"
	CategorySupplies    = "supplies"
	CategorySports      = "sports"
	CategoryOther       = "other"
)

// Product conditions.
const (
	ConditionNew     = "new"
	ConditionLikeNew = "like_new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
	ConditionUsed    = "used"
)

// Listing statuses.
const (
	StatusActive = "active"
	StatusDraft  = "draft"
	StatusSold   = "sold"
)

// Product is a marketplace listing as the server represents it. ID is
// assigned by the server on create and immutable afterwards. Price arrives
// as either a JSON number or a quoted decimal string; decimal.Decimal
// accepts both and keeps the value fixed-point.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Condition   string          `json:"condition"`
	Status      string          `json:"status"`
	Image       string          `json:"image,omitempty"`
	Views       int             `json:"views,omitempty"`
}

// DisplayPrice renders the price for the listings table, e.g. "$19.99".
func (p *Product) DisplayPrice() string {
	return "$" + p.Price.StringFixed(2)
}
