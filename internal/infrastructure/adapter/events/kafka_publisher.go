package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	eventport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/event"
)

// Config represents kafka producer settings
type Config struct {
	Brokers []string `mapstructure:"kafka_brokers"`
	Topic   string   `mapstructure:"kafka_topic"`
}

// KafkaPublisher implements the booking event publisher port using kafka-go.
// Messages are keyed by booking ID so a booking's lifecycle stays ordered
// within one partition.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger coreport.Logger
}

// NewKafkaPublisher creates a kafka-backed booking event publisher
func NewKafkaPublisher(cfg Config, logger coreport.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// PublishBookingEvent emits a booking lifecycle event
func (p *KafkaPublisher) PublishBookingEvent(ctx context.Context, evt eventport.BookingEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.BookingID),
		Value: payload,
		Time:  evt.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to write booking event: %w", err)
	}

	p.logger.Debug("Booking event published", map[string]any{
		"event_type": evt.Type,
		"booking_id": evt.BookingID,
	})
	return nil
}

// Close flushes and closes the underlying writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

var _ eventport.Publisher = (*KafkaPublisher)(nil)
