package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestItemCreatedEvent_JSONRoundTrip(t *testing.T) {
	original := ItemCreatedEvent{
		EventID:    uuid.MustParse("0198d2f0-0000-7000-8000-000000000001"),
		Version:    1,
		ItemID:     uuid.MustParse("0198d2f0-0000-7000-8000-000000000002"),
		Name:       "Hammer",
		Count:      20,
		Price:      9.99,
		Category:   "tools",
		OccurredAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded ItemCreatedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.Version != original.Version {
		t.Errorf("Version: got %d, want %d", decoded.Version, original.Version)
	}
	if decoded.ItemID != original.ItemID {
		t.Errorf("ItemID: got %v, want %v", decoded.ItemID, original.ItemID)
	}
	if decoded.Name != original.Name {
		t.Errorf("Name: got %q, want %q", decoded.Name, original.Name)
	}
	if decoded.Count != original.Count {
		t.Errorf("Count: got %d, want %d", decoded.Count, original.Count)
	}
	if decoded.Price != original.Price {
		t.Errorf("Price: got %v, want %v", decoded.Price, original.Price)
	}
	if decoded.Category != original.Category {
		t.Errorf("Category: got %q, want %q", decoded.Category, original.Category)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestItemEvents_JSONFieldNames(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		data, err := json.Marshal(ItemCreatedEvent{})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		assertKeys(t, data, []string{
			"event_id", "version", "item_id", "name", "count", "price", "category", "occurred_at",
		})
	})

	t.Run("deleted", func(t *testing.T) {
		data, err := json.Marshal(ItemDeletedEvent{})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		assertKeys(t, data, []string{"event_id", "version", "item_id", "occurred_at"})
	})
}

func assertKeys(t *testing.T, data []byte, keys []string) {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal into map: %v", err)
	}
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			t.Errorf("missing JSON key %q", k)
		}
	}
	if len(m) != len(keys) {
		t.Errorf("expected %d keys, got %d (%v)", len(keys), len(m), m)
	}
}

func TestTopics(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{TopicItemCreated, "item.created"},
		{TopicItemUpdated, "item.updated"},
		{TopicItemDeleted, "item.deleted"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("topic: got %q, want %q", tt.got, tt.want)
		}
	}
}
