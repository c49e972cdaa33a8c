package model

import (
	"fmt"
	"strings"
)

// CargoItem represents one line item of cargo. The ID is the document key in
// the cargo collection. Price and weight are stored per unit; totals are
// derived, never persisted.
type CargoItem struct {
	ID          string  `json:"itemId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"price"`
	UnitWeight  float64 `json:"weight"`
}

// NewCargoItem returns a cargo item with default quantities. Decoding a
// stored document over it leaves the defaults in place for absent fields.
func NewCargoItem() *CargoItem {
	return &CargoItem{Quantity: 1}
}

// Key returns the document key.
func (c *CargoItem) Key() string { return c.ID }

// SetKey assigns the document key.
func (c *CargoItem) SetKey(key string) { c.ID = key }

// TotalPrice returns the unit price multiplied by quantity.
func (c *CargoItem) TotalPrice() float64 {
	return c.UnitPrice * float64(c.Quantity)
}

// TotalWeight returns the unit weight multiplied by quantity.
func (c *CargoItem) TotalWeight() float64 {
	return c.UnitWeight * float64(c.Quantity)
}

// Validate checks the fields a cargo item must carry before it is persisted.
func (c *CargoItem) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if c.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	if c.UnitPrice < 0 || c.UnitWeight < 0 {
		return fmt.Errorf("price and weight must not be negative")
	}
	return nil
}
