package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/network-os/internal/config"
)

const (
	TopicContactEvents = "contact.events"
	TopicImportEvents  = "import.events"
)

const (
	EventContactCreated  = "contact.created"
	EventImportCompleted = "import.completed"
)

type ContactEventPayload struct {
	EventType string    `json:"event_type"`
	ContactID string    `json:"contact_id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

type ImportEventPayload struct {
	EventType    string    `json:"event_type"`
	CreatedCount int       `json:"created_count"`
	SkippedCount int       `json:"skipped_count"`
	FailedCount  int       `json:"failed_count"`
	Timestamp    time.Time `json:"timestamp"`
}

type KafkaProducerClient struct {
	ContactEventsWriter *kafka.Writer
	ImportEventsWriter  *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contactWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContactEvents,
		Balancer: &kafka.LeastBytes{},
	}

	importWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicImportEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ContactEventsWriter: contactWriter,
		ImportEventsWriter:  importWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishContactCreated(ctx context.Context, payload ContactEventPayload) error {
	payload.EventType = EventContactCreated
	payload.Timestamp = time.Now().UTC()
	return publishJSON(ctx, c.ContactEventsWriter, payload.ContactID, payload)
}

func (c *KafkaProducerClient) PublishImportCompleted(ctx context.Context, payload ImportEventPayload) error {
	payload.EventType = EventImportCompleted
	payload.Timestamp = time.Now().UTC()
	return publishJSON(ctx, c.ImportEventsWriter, EventImportCompleted, payload)
}

func publishJSON(ctx context.Context, writer *kafka.Writer, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ContactEventsWriter != nil {
		c.ContactEventsWriter.Close()
	}
	if c.ImportEventsWriter != nil {
		c.ImportEventsWriter.Close()
	}
}
