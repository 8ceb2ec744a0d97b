package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	itemdomain "github.com/ghuser/inventory/services/item/domain"
	domainevents "github.com/ghuser/inventory/services/item/domain/events"
	"github.com/ghuser/inventory/services/item/domain/models"
)

// memoryRepo is an in-memory ItemRepository for service tests.
type memoryRepo struct {
	items map[uuid.UUID]models.Item

	readCalls  int
	queryCalls int

	// failUpdate makes Update report no matched document.
	failUpdate bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[uuid.UUID]models.Item)}
}

func (m *memoryRepo) Create(_ context.Context, item *models.Item) error {
	if _, ok := m.items[item.ID]; ok {
		return itemdomain.ErrItemAlreadyExists
	}
	m.items[item.ID] = *item
	return nil
}

func (m *memoryRepo) ReadAll(_ context.Context) ([]*models.Item, error) {
	out := make([]*models.Item, 0, len(m.items))
	for _, item := range m.items {
		item := item
		out = append(out, &item)
	}
	return out, nil
}

func (m *memoryRepo) Read(_ context.Context, id uuid.UUID) (*models.Item, error) {
	m.readCalls++
	item, ok := m.items[id]
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	return &item, nil
}

func (m *memoryRepo) Query(_ context.Context, args models.QueryArguments) ([]*models.Item, error) {
	m.queryCalls++
	out := make([]*models.Item, 0)
	for _, item := range m.items {
		item := item
		if args.Matches(&item) {
			out = append(out, &item)
		}
	}
	return out, nil
}

func (m *memoryRepo) Update(_ context.Context, item *models.Item) (bool, error) {
	if m.failUpdate {
		return false, nil
	}
	if _, ok := m.items[item.ID]; !ok {
		return false, nil
	}
	m.items[item.ID] = *item
	return true, nil
}

func (m *memoryRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := m.items[id]; !ok {
		return 0, nil
	}
	delete(m.items, id)
	return 1, nil
}

// stubPublisher records every published topic.
type stubPublisher struct {
	topics []string
}

func (p *stubPublisher) Publish(_ context.Context, topic string, _ ...*message.Message) error {
	p.topics = append(p.topics, topic)
	return nil
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns the created item", func(t *testing.T) {
		repo := newMemoryRepo()
		pub := &stubPublisher{}
		svc := NewItemService(repo, pub)

		item, err := svc.Create(ctx, "Hammer", 20, 9.99, "tools")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == uuid.Nil {
			t.Fatal("expected generated id")
		}

		stored, err := svc.GetByID(ctx, item.ID)
		if err != nil {
			t.Fatalf("reading back: %v", err)
		}
		if *stored != *item {
			t.Fatalf("stored item differs: got %+v, want %+v", stored, item)
		}
	})

	t.Run("publishes item.created", func(t *testing.T) {
		repo := newMemoryRepo()
		pub := &stubPublisher{}
		svc := NewItemService(repo, pub)

		if _, err := svc.Create(ctx, "Hammer", 20, 9.99, "tools"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pub.topics) != 1 || pub.topics[0] != domainevents.TopicItemCreated {
			t.Fatalf("expected [%s], got %v", domainevents.TopicItemCreated, pub.topics)
		}
	})

	t.Run("nil bus is a no-op", func(t *testing.T) {
		svc := NewItemService(newMemoryRepo(), nil)
		if _, err := svc.Create(ctx, "Hammer", 20, 9.99, "tools"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejections map to ErrInvalidItem", func(t *testing.T) {
		tests := []struct {
			name     string
			itemName string
			count    int
			price    float64
			category string
		}{
			{"unknown category", "Hammer", 20, 9.99, "powertools"},
			{"empty name", "", 20, 9.99, "tools"},
			{"name too long", "Screwdriver", 20, 9.99, "tools"},
			{"negative count", "Hammer", -1, 9.99, "tools"},
			{"zero price", "Hammer", 20, 0, "tools"},
			{"whitespace name", "   ", 20, 9.99, "tools"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewItemService(newMemoryRepo(), &stubPublisher{})
				_, err := svc.Create(ctx, tt.itemName, tt.count, tt.price, tt.category)
				if !errors.Is(err, itemdomain.ErrInvalidItem) {
					t.Fatalf("expected ErrInvalidItem, got %v", err)
				}
			})
		}
	})

	t.Run("count zero and smallest price are accepted", func(t *testing.T) {
		svc := NewItemService(newMemoryRepo(), &stubPublisher{})
		if _, err := svc.Create(ctx, "Hammer", 0, 0.01, "consumables"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestItemService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newMemoryRepo(), &stubPublisher{})

	t.Run("missing item maps to ErrItemNotFound", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.New())
		if !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestItemService_Query(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*ItemService, *memoryRepo) {
		t.Helper()
		repo := newMemoryRepo()
		svc := NewItemService(repo, &stubPublisher{})
		fixtures := []struct {
			name     string
			count    int
			price    float64
			category string
		}{
			{"Hammer", 20, 9.99, "tools"},
			{"Pliers", 20, 5.99, "tools"},
			{"Nails", 100, 1.99, "consumables"},
		}
		for _, f := range fixtures {
			if _, err := svc.Create(ctx, f.name, f.count, f.price, f.category); err != nil {
				t.Fatalf("seeding %s: %v", f.name, err)
			}
		}
		return svc, repo
	}

	t.Run("empty filter is rejected before any read", func(t *testing.T) {
		svc, repo := seed(t)
		_, err := svc.Query(ctx, models.QueryArguments{})
		if !errors.Is(err, itemdomain.ErrNoArguments) {
			t.Fatalf("expected ErrNoArguments, got %v", err)
		}
		if repo.queryCalls != 0 {
			t.Fatalf("expected no repository calls, got %d", repo.queryCalls)
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		svc, _ := seed(t)
		cat := models.CategoryTools
		items, err := svc.Query(ctx, models.QueryArguments{Category: &cat})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
	})

	t.Run("name matches case-insensitively", func(t *testing.T) {
		svc, _ := seed(t)
		items, err := svc.Query(ctx, models.QueryArguments{Name: strPtr("hammer")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		svc, _ := seed(t)
		items, err := svc.Query(ctx, models.QueryArguments{Name: strPtr("Wrench")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected 0 items, got %d", len(items))
		}
	})
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*ItemService, *memoryRepo, *stubPublisher, *models.Item) {
		t.Helper()
		repo := newMemoryRepo()
		pub := &stubPublisher{}
		svc := NewItemService(repo, pub)
		item, err := svc.Create(ctx, "Hammer", 20, 9.99, "tools")
		if err != nil {
			t.Fatalf("seeding: %v", err)
		}
		pub.topics = nil
		return svc, repo, pub, item
	}

	t.Run("empty update is rejected before the record is read", func(t *testing.T) {
		svc, repo, _, item := setup(t)
		_, err := svc.Update(ctx, item.ID, UpdateItem{})
		if !errors.Is(err, itemdomain.ErrNoArguments) {
			t.Fatalf("expected ErrNoArguments, got %v", err)
		}
		if repo.readCalls != 0 {
			t.Fatalf("expected no reads, got %d", repo.readCalls)
		}
	})

	t.Run("merges changed fields and keeps the rest", func(t *testing.T) {
		svc, _, pub, item := setup(t)
		updated, err := svc.Update(ctx, item.ID, UpdateItem{Count: intPtr(23)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Count != 23 {
			t.Errorf("Count: got %d, want 23", updated.Count)
		}
		if updated.Name != item.Name || updated.Price != item.Price || updated.Category != item.Category {
			t.Errorf("unchanged fields drifted: got %+v, want base of %+v", updated, item)
		}
		if updated.ID != item.ID {
			t.Errorf("ID changed: got %v, want %v", updated.ID, item.ID)
		}
		if len(pub.topics) != 1 || pub.topics[0] != domainevents.TopicItemUpdated {
			t.Fatalf("expected [%s], got %v", domainevents.TopicItemUpdated, pub.topics)
		}
	})

	t.Run("updates several fields at once", func(t *testing.T) {
		svc, _, _, item := setup(t)
		updated, err := svc.Update(ctx, item.ID, UpdateItem{
			Name:  strPtr("Mallet"),
			Price: floatPtr(12.50),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name.String() != "Mallet" {
			t.Errorf("Name: got %q, want %q", updated.Name.String(), "Mallet")
		}
		if updated.Price != 12.50 {
			t.Errorf("Price: got %v, want 12.50", updated.Price)
		}
	})

	t.Run("invalid merged state maps to ErrInvalidItem", func(t *testing.T) {
		svc, _, _, item := setup(t)
		_, err := svc.Update(ctx, item.ID, UpdateItem{Price: floatPtr(0)})
		if !errors.Is(err, itemdomain.ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	t.Run("missing item maps to ErrItemNotFound", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		_, err := svc.Update(ctx, uuid.New(), UpdateItem{Count: intPtr(1)})
		if !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("unmatched write maps to ErrDBOperationFailed", func(t *testing.T) {
		svc, repo, _, item := setup(t)
		repo.failUpdate = true
		_, err := svc.Update(ctx, item.ID, UpdateItem{Count: intPtr(1)})
		if !errors.Is(err, itemdomain.ErrDBOperationFailed) {
			t.Fatalf("expected ErrDBOperationFailed, got %v", err)
		}
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the item and publishes item.deleted", func(t *testing.T) {
		repo := newMemoryRepo()
		pub := &stubPublisher{}
		svc := NewItemService(repo, pub)
		item, err := svc.Create(ctx, "Hammer", 20, 9.99, "tools")
		if err != nil {
			t.Fatalf("seeding: %v", err)
		}
		pub.topics = nil

		if err := svc.Delete(ctx, item.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.GetByID(ctx, item.ID); !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected item gone, got %v", err)
		}
		if len(pub.topics) != 1 || pub.topics[0] != domainevents.TopicItemDeleted {
			t.Fatalf("expected [%s], got %v", domainevents.TopicItemDeleted, pub.topics)
		}
	})

	t.Run("missing item maps to ErrItemNotFound", func(t *testing.T) {
		svc := NewItemService(newMemoryRepo(), &stubPublisher{})
		err := svc.Delete(ctx, uuid.New())
		if !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}
