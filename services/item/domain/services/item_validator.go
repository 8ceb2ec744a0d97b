// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/inventory/services/item/domain/models"
)

// ValidateName enforces business rules for ItemName beyond the structural
// constraints enforced by the ItemName constructor (length 1–8).
//
// Business rules:
//   - No control characters (Unicode category Cc)
//   - Must not be only whitespace characters
func ValidateName(name models.ItemName) error {
	onlySpace := true
	for _, r := range name.String() {
		if unicode.IsControl(r) {
			return fmt.Errorf("item name must not contain control characters")
		}
		if !unicode.IsSpace(r) {
			onlySpace = false
		}
	}
	if onlySpace {
		return fmt.Errorf("item name must not be only whitespace")
	}
	return nil
}

// ValidateItem performs invariant checks on a fully-constructed Item aggregate
// before it is persisted. It assumes the Item was built via models.NewItem or
// merged from an existing record, and re-checks every field constraint so an
// update can never relax the rules that held at creation.
func ValidateItem(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if item.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if _, err := models.NewItemName(item.Name.String()); err != nil {
		return err
	}

	if err := ValidateName(item.Name); err != nil {
		return err
	}

	if item.Count < 0 {
		return fmt.Errorf("item count must not be negative (got %d)", item.Count)
	}

	if item.Price <= 0 {
		return fmt.Errorf("item price must be greater than zero (got %v)", item.Price)
	}

	if _, err := models.ParseCategory(item.Category.String()); err != nil {
		return err
	}

	return nil
}
