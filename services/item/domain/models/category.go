package models

import "fmt"

// Category is the closed set of labels an item can belong to.
type Category string

const (
	CategoryTools       Category = "tools"
	CategoryConsumables Category = "consumables"
)

// Categories lists every valid category label.
func Categories() []Category {
	return []Category{CategoryTools, CategoryConsumables}
}

// ParseCategory converts a raw label into a Category.
// An unrecognized label is rejected, never silently dropped.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: tools, consumables)", s)
}

// String returns the underlying label.
func (c Category) String() string {
	return string(c)
}
