package usecase

import (
	"encoding/json"
	"log/slog"

	"github.com/swiftment/payment-service/internal/domain"
)

// publishJSON emits an event best-effort after commit; the persisted
// purchase/withdrawal row is the source of truth.
func publishJSON(publisher domain.PublisherPort, topic, key string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal event", "topic", topic, "error", err.Error())
		return
	}
	if err := publisher.Publish(topic, domain.Message{Key: []byte(key), Value: payload}); err != nil {
		slog.Error("failed to publish event", "topic", topic, "error", err.Error())
	}
}
