package entity

import (
	"github.com/shopspring/decimal"
)

// User is a marketplace account. Username is an immutable handle;
// ActiveListings, TotalSales and SellerRating are computed server-side.
// SellerRating is nil while the seller has no rating yet.
type User struct {
	ID             string           `json:"id"`
	Username       string           `json:"username"`
	FullName       string           `json:"full_name"`
	Email          string           `json:"email"`
	Bio            string           `json:"bio,omitempty"`
	Location       string           `json:"location,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	ActiveListings int              `json:"active_listings"`
	TotalSales     int              `json:"total_sales"`
	SellerRating   *decimal.Decimal `json:"seller_rating"`
}
