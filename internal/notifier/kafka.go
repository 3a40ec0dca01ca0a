package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"hoteladmin/pkg/logger"
)

const publishTimeout = 5 * time.Second

// EventProducer mirrors every broadcast onto a Kafka topic for downstream
// consumers. Same contract as the websocket hub: fire-and-forget, failures
// are logged and never surfaced to the request path.
type EventProducer struct {
	writer *kafka.Writer
	log    *logger.Logger
}

func NewEventProducer(brokers []string, topic string, log *logger.Logger) *EventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // hash by event name keeps per-event ordering
		RequiredAcks: kafka.RequireOne,
		Compression:  kafka.Snappy,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("Kafka producer error", "message", msg, "args", args)
		}),
	}

	log.Info("Kafka event producer initialized", "topic", topic, "brokers", brokers)
	return &EventProducer{
		writer: writer,
		log:    log,
	}
}

func (p *EventProducer) Broadcast(event string, payload any) {
	value, err := json.Marshal(Event{
		ID:        uuid.NewString(),
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		p.log.Error("Failed to encode event for Kafka", "event", event, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event),
		Value: value,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		p.log.Error("Failed to publish event to Kafka", "event", event, "error", err)
	}
}

func (p *EventProducer) Close() error {
	return p.writer.Close()
}
