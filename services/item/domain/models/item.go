package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Item is the core aggregate for this bounded context.
// The ID is assigned once at construction and never regenerated.
type Item struct {
	ID       uuid.UUID
	Name     ItemName
	Count    int
	Price    float64
	Category Category
}

// NewItem constructs a valid Item aggregate with a server-generated identifier.
// UUIDv7 identifiers are time-ordered, so newly created items sort by creation
// order across the collection.
func NewItem(name ItemName, count int, price float64, category Category) (*Item, error) {
	if count < 0 {
		return nil, fmt.Errorf("item count must not be negative (got %d)", count)
	}
	if price <= 0 {
		return nil, fmt.Errorf("item price must be greater than zero (got %v)", price)
	}
	if _, err := ParseCategory(category.String()); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate item id: %w", err)
	}

	return &Item{
		ID:       id,
		Name:     name,
		Count:    count,
		Price:    price,
		Category: category,
	}, nil
}
