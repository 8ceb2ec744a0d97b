package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/inventory/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Implementations never retry and never merge partial updates — callers
// supply the complete record on Update.
type ItemRepository interface {
	// Create persists a new Item. Returns ErrItemAlreadyExists on a
	// duplicate identifier and ErrDBOperationFailed when the store does
	// not acknowledge the insert.
	Create(ctx context.Context, item *models.Item) error

	// ReadAll returns every stored item in store iteration order.
	// An empty collection yields an empty slice, never an error.
	ReadAll(ctx context.Context) ([]*models.Item, error)

	// Read returns the item with the given id, or ErrItemNotFound.
	Read(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// Query scans every stored item and returns those matching args, in
	// scan order. Callers must reject empty filters before calling.
	Query(ctx context.Context, args models.QueryArguments) ([]*models.Item, error)

	// Update re-serializes the entire record and overwrites the stored
	// document. Reports whether an existing document was modified.
	Update(ctx context.Context, item *models.Item) (bool, error)

	// Delete removes the item with the given id and returns the number of
	// documents removed (0 or 1). Deleting an absent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
