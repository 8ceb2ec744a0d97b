package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for item lifecycle events.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// ItemCreatedEvent is published after a new Item is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     uuid.UUID `json:"item_id"`
	Name       string    `json:"name"`
	Count      int       `json:"count"`
	Price      float64   `json:"price"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemUpdatedEvent is published after an existing Item is overwritten.
// Carries the full post-update record, not a field delta.
type ItemUpdatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	Name       string    `json:"name"`
	Count      int       `json:"count"`
	Price      float64   `json:"price"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published after an Item is removed from the collection.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
