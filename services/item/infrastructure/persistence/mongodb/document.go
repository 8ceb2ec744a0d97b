package mongodb

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/inventory/services/item/domain/models"
)

// itemDocument is the persisted shape of an Item. MongoDB uses `_id` as its
// primary index key, so the domain identifier is stored there in string form.
// This struct is the sole translation point between the `id` and `_id`
// naming conventions; nothing else in the repository touches raw documents.
type itemDocument struct {
	ID       string  `bson:"_id"`
	Name     string  `bson:"name"`
	Count    int     `bson:"count"`
	Price    float64 `bson:"price"`
	Category string  `bson:"category"`
}

// newItemDocument converts a domain Item into its storage form: the UUID is
// stringified into `_id`, all other fields are carried unchanged.
func newItemDocument(item *models.Item) itemDocument {
	return itemDocument{
		ID:       item.ID.String(),
		Name:     item.Name.String(),
		Count:    item.Count,
		Price:    item.Price,
		Category: item.Category.String(),
	}
}

// toModel converts a storage document back into a domain Item, parsing `_id`
// back into the identifier type. Round-tripping any valid Item through
// newItemDocument and toModel yields an equal Item.
func (d itemDocument) toModel() (*models.Item, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("parse stored item id %q: %w", d.ID, err)
	}
	return &models.Item{
		ID:       id,
		Name:     models.ItemName(d.Name),
		Count:    d.Count,
		Price:    d.Price,
		Category: models.Category(d.Category),
	}, nil
}
