package domain

import "fmt"

// Product is a plain value. Two listings are the same product when name and
// price match; only same products can have their stock merged.
type Product struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// Equal reports whether two listings are the same product.
func (p Product) Equal(other Product) bool {
	return p.Name == other.Name && p.PriceCents == other.PriceCents
}

// Less orders products by price.
func (p Product) Less(other Product) bool { return p.PriceCents < other.PriceCents }

// Merge combines the stock of two listings of the same product.
func (p Product) Merge(other Product) (Product, error) {
	if !p.Equal(other) {
		return Product{}, ErrProductMismatch
	}
	p.Quantity += other.Quantity
	return p, nil
}

func (p Product) String() string {
	return fmt.Sprintf("%s - $%d.%02d (%d in stock)", p.Name, p.PriceCents/100, p.PriceCents%100, p.Quantity)
}
