package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	itemdomain "github.com/ghuser/inventory/services/item/domain"
	domainevents "github.com/ghuser/inventory/services/item/domain/events"
	"github.com/ghuser/inventory/services/item/domain/models"
	"github.com/ghuser/inventory/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/inventory/services/item/domain/services"
)

// EventPublisher is the slice of the event bus the service needs.
// events.EventBus satisfies it; tests supply a stub.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// UpdateItem carries the optional fields of a partial update. A nil field
// means "leave unchanged". Category is intentionally absent: it is
// immutable after creation.
type UpdateItem struct {
	Name  *string
	Count *int
	Price *float64
}

// IsEmpty reports whether no field is set.
func (u UpdateItem) IsEmpty() bool {
	return u.Name == nil && u.Count == nil && u.Price == nil
}

// ItemService orchestrates the item lifecycle: it validates against domain
// rules, drives the repository, and publishes lifecycle events after each
// successful write. Partial updates are merged into the full record here —
// the repository always receives a complete Item.
type ItemService struct {
	repo repositories.ItemRepository
	bus  EventPublisher
}

// NewItemService returns an ItemService wired with the given repository and
// event publisher. bus may be nil, in which case no events are published.
func NewItemService(repo repositories.ItemRepository, bus EventPublisher) *ItemService {
	return &ItemService{repo: repo, bus: bus}
}

// Create validates the payload, persists a new Item with a server-generated
// identifier, and publishes ItemCreatedEvent.
func (s *ItemService) Create(ctx context.Context, name string, count int, price float64, category string) (*models.Item, error) {
	cat, err := models.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	itemName, err := models.NewItemName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	item, err := models.NewItem(itemName, count, price, cat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	if err := s.publish(ctx, domainevents.TopicItemCreated, domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Count:      item.Count,
		Price:      item.Price,
		Category:   item.Category.String(),
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	return item, nil
}

// ReadAll returns every stored item.
func (s *ItemService) ReadAll(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return items, nil
}

// GetByID returns the item with the given id, or ErrItemNotFound.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.repo.Read(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Query returns all items matching args. A filter with no fields set is
// rejected with ErrNoArguments before any read is attempted.
func (s *ItemService) Query(ctx context.Context, args models.QueryArguments) ([]*models.Item, error) {
	if args.IsEmpty() {
		return nil, fmt.Errorf("%w in query URL", itemdomain.ErrNoArguments)
	}
	items, err := s.repo.Query(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	return items, nil
}

// Update merges the supplied field changes into the stored record, re-checks
// every field constraint, and overwrites the full document. An update with no
// fields set fails with ErrNoArguments before the existing record is read.
// Publishes ItemUpdatedEvent on success.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, changes UpdateItem) (*models.Item, error) {
	if changes.IsEmpty() {
		return nil, fmt.Errorf("%w in update URL", itemdomain.ErrNoArguments)
	}

	item, err := s.repo.Read(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if changes.Name != nil {
		name, err := models.NewItemName(*changes.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
		}
		item.Name = name
	}
	if changes.Count != nil {
		item.Count = *changes.Count
	}
	if changes.Price != nil {
		item.Price = *changes.Price
	}

	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("%w: failed updating id=%s", itemdomain.ErrDBOperationFailed, id)
	}

	if err := s.publish(ctx, domainevents.TopicItemUpdated, domainevents.ItemUpdatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Count:      item.Count,
		Price:      item.Price,
		Category:   item.Category.String(),
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	return item, nil
}

// Delete removes the item with the given id. A zero deleted count maps to
// ErrItemNotFound. Publishes ItemDeletedEvent on success.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: id=%s", itemdomain.ErrItemNotFound, id)
	}

	return s.publish(ctx, domainevents.TopicItemDeleted, domainevents.ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     id,
		OccurredAt: time.Now().UTC(),
	})
}

// publish marshals event and sends it to topic with the standard metadata
// envelope. A nil bus is a no-op.
func (s *ItemService) publish(ctx context.Context, topic string, event any) error {
	if s.bus == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_version", "1")
	if err := s.bus.Publish(ctx, topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}
