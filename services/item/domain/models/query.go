package models

import "strings"

// QueryArguments is an ephemeral multi-field filter for item reads.
// A nil field means "don't filter on this field". A filter with every field
// nil is a caller error and must be rejected before any read is attempted.
type QueryArguments struct {
	Name     *string   `json:"name"`
	Count    *int      `json:"count"`
	Price    *float64  `json:"price"`
	Category *Category `json:"category"`
}

// IsEmpty reports whether no filter field is set.
func (q QueryArguments) IsEmpty() bool {
	return q.Name == nil && q.Count == nil && q.Price == nil && q.Category == nil
}

// Matches reports whether item satisfies the filter: every set field must
// equal the stored value. Name is compared case-insensitively; unset fields
// constrain nothing.
func (q QueryArguments) Matches(item *Item) bool {
	if q.Name != nil && !strings.EqualFold(*q.Name, item.Name.String()) {
		return false
	}
	if q.Count != nil && *q.Count != item.Count {
		return false
	}
	if q.Price != nil && *q.Price != item.Price {
		return false
	}
	if q.Category != nil && *q.Category != item.Category {
		return false
	}
	return true
}
