package handlers

import (
	"github.com/google/uuid"

	"github.com/ghuser/inventory/services/item/domain/models"
)

// ItemResponse is the wire representation of an item. The identifier is
// exposed as `id`; the `_id` storage key never leaves the persistence layer.
type ItemResponse struct {
	ID       uuid.UUID `json:"id"       example:"0190e1a4-7d13-7cf0-9b3a-2f1a64b8e001"`
	Name     string    `json:"name"     example:"Hammer"`
	Count    int       `json:"count"    example:"20"`
	Price    float64   `json:"price"    example:"9.99"`
	Category string    `json:"category" example:"tools"`
}

func newItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:       item.ID,
		Name:     item.Name.String(),
		Count:    item.Count,
		Price:    item.Price,
		Category: item.Category.String(),
	}
}

func newItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = newItemResponse(item)
	}
	return out
}
