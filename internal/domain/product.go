package domain

import "time"

// Product represents a product in the catalog
type Product struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Price        float64   `json:"price" db:"price"`
	Availability bool      `json:"availability" db:"availability"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// NewProduct returns a product ready to be persisted. New products are
// always available.
func NewProduct(name string, price float64) *Product {
	return &Product{
		Name:         name,
		Price:        price,
		Availability: true,
	}
}

// Replace overwrites every mutable field.
func (p *Product) Replace(name string, price float64, availability bool) {
	p.Name = name
	p.Price = price
	p.Availability = availability
}
