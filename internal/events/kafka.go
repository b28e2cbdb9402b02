package events

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaPublisher writes audit events to a Kafka topic, keyed by team id so
// events for one team stay ordered within a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// Publish implements Publisher.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	if event.EmittedAt.IsZero() {
		event.EmittedAt = time.Now().UTC()
	}

	serialized, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TeamID),
		Value: serialized,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("published audit event",
		zap.String("type", event.Type),
		zap.String("team_id", event.TeamID),
		zap.Int64("user_id", event.UserID))

	return nil
}

// Close implements Publisher.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
