package utils

import (
	"net/url"

	"github.com/shopspring/decimal"
)

// Query accumulates URL query parameters, dropping any parameter without
// a value so absent filters never reach the wire.
type Query struct {
	values url.Values
}

func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

func (q *Query) Set(key, value string) {
	if value != "" {
		q.values.Set(key, value)
	}
}

func (q *Query) SetDecimal(key string, value *decimal.Decimal) {
	if value != nil {
		q.values.Set(key, value.String())
	}
}

// Encode returns the encoded query string without a leading "?", or ""
// when no parameters were set.
func (q *Query) Encode() string {
	return q.values.Encode()
}
