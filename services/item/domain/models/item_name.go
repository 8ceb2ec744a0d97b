package models

import (
	"fmt"
	"unicode/utf8"
)

// ItemName is a value object representing a valid item name.
// Length is measured in characters, not bytes, so multibyte names
// get the same 1 to 8 budget as ASCII ones.
type ItemName string

const (
	minItemNameLength = 1
	maxItemNameLength = 8
)

// NewItemName constructs a valid ItemName or returns an error if constraints are violated.
func NewItemName(s string) (ItemName, error) {
	length := utf8.RuneCountInString(s)
	if length < minItemNameLength {
		return "", fmt.Errorf("item name must be at least %d character", minItemNameLength)
	}
	if length > maxItemNameLength {
		return "", fmt.Errorf("item name must not exceed %d characters", maxItemNameLength)
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
