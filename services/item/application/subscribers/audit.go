// Package subscribers wires event-bus consumers for the item bounded context.
// The audit subscriber gives every lifecycle event a structured log line and
// a Prometheus counter sample; it is the read side of the bus the service
// publishes to.
package subscribers

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ghuser/inventory/pkg/app"
	itemEvents "github.com/ghuser/inventory/services/item/domain/events"
)

var itemEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "inventory_item_events_total",
		Help: "Item lifecycle events observed on the event bus, by topic.",
	},
	[]string{"topic"},
)

// auditTopics is the set of topics the audit subscriber consumes.
var auditTopics = []string{
	itemEvents.TopicItemCreated,
	itemEvents.TopicItemUpdated,
	itemEvents.TopicItemDeleted,
}

// RegisterAudit subscribes the audit handler to every item lifecycle topic.
// Handlers are idempotent — the EventBus retries up to 3× on failure.
// Subscriber errors are drained in the background so the channels never block.
func RegisterAudit(ctx context.Context, a *app.Application) error {
	for _, topic := range auditTopics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handleItemEvent(a, topic))
		if err != nil {
			return err
		}

		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", auditTopics)
	return nil
}

// handleItemEvent returns the audit handler for one topic: log the event's
// envelope fields and bump the per-topic counter.
func handleItemEvent(a *app.Application, topic string) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var envelope struct {
			EventID string `json:"event_id"`
			ItemID  string `json:"item_id"`
		}
		if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
			return err
		}

		itemEventsTotal.WithLabelValues(topic).Inc()
		a.Logger.InfoContext(ctx, "item event",
			"topic", topic,
			"event_id", envelope.EventID,
			"item_id", envelope.ItemID,
		)
		return nil
	}
}
