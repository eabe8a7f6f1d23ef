// Package kafka publishes customer-visible tracking events to the message
// broker. Publishing happens after the owning transaction committed and a
// broker failure never fails the command: the event row is already durable
// and the error is logged instead.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"exportflow/internal/core/domain/model/tracking"

	segmentio "github.com/segmentio/kafka-go"
)

// Writer is the subset of segmentio kafka.Writer used by the publisher.
// Keeping it an interface makes the publisher testable without a broker.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...segmentio.Message) error
	Close() error
}

// trackingMessage is the wire payload for one tracking event.
type trackingMessage struct {
	EventID     string    `json:"event_id"`
	ShipmentID  string    `json:"shipment_id"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// TrackingPublisher writes tracking events to one Kafka topic, keyed by
// shipment so events for the same shipment stay ordered within a partition.
type TrackingPublisher struct {
	writer Writer
	logger *slog.Logger
}

// NewTrackingPublisher creates a publisher writing to the given broker and
// topic.
func NewTrackingPublisher(brokerURL, topic string, logger *slog.Logger) *TrackingPublisher {
	w := &segmentio.Writer{
		Addr:     segmentio.TCP(brokerURL),
		Topic:    topic,
		Balancer: &segmentio.LeastBytes{},
	}
	return &TrackingPublisher{writer: w, logger: logger}
}

// NewTrackingPublisherWithWriter allows injecting a test writer.
func NewTrackingPublisherWithWriter(w Writer, logger *slog.Logger) *TrackingPublisher {
	return &TrackingPublisher{writer: w, logger: logger}
}

// Publish writes one tracking event, keyed by shipment ID. Broker errors are
// logged and swallowed: the event is already persisted and downstream
// consumers recover through the tracking query.
func (p *TrackingPublisher) Publish(ctx context.Context, event *tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(trackingMessage{
		EventID:     event.ID().String(),
		ShipmentID:  event.ShipmentID().String(),
		Status:      event.Status(),
		Description: event.Description(),
		Location:    event.Location(),
		OccurredAt:  event.OccurredAt(),
	})
	if err != nil {
		return err
	}

	msg := segmentio.Message{
		Key:   []byte(event.ShipmentID().String()),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("tracking event publish failed",
			"shipment_id", event.ShipmentID().String(),
			"status", event.Status(),
			"error", err)
		return nil
	}

	return nil
}

// Close shuts down the underlying writer.
func (p *TrackingPublisher) Close() error {
	return p.writer.Close()
}
