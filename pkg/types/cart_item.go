package types

import "github.com/shopspring/decimal"

// CartItem is one line of a cart, keyed by the stable product identifier.
// A quantity below 1 never persists; the sync client removes the line
// instead.
type CartItem struct {
	ID       string          `json:"id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"required,min=1"`
	Image    string          `json:"image,omitempty"`
}

// LineTotal returns price multiplied by quantity.
func (c CartItem) LineTotal() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// ItemsTotal sums the line totals of the given items.
func ItemsTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
