package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"giftly/internal/shared/config"
	"giftly/pkg/logger"
)

const (
	EventGiftUpserted    = "gift.upserted"
	EventBookmarkAdded   = "bookmark.added"
	EventBookmarkRemoved = "bookmark.removed"
)

// CatalogEvent is the wire format for catalog and bookmark changes.
// Consumers partition by slug, so all events for one gift stay ordered.
type CatalogEvent struct {
	Type       string    `json:"type"`
	Slug       string    `json:"slug"`
	UserID     string    `json:"user_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Producer interface {
	PublishGiftUpserted(ctx context.Context, slug string) error
	PublishBookmarkAdded(ctx context.Context, userID, slug string) error
	PublishBookmarkRemoved(ctx context.Context, userID, slug string) error
	HealthCheck(ctx context.Context) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// NewProducer connects a sync producer to the configured brokers. When
// kafka is disabled it returns a producer whose publishes are no-ops,
// so callers never branch on broker availability.
func NewProducer(cfg config.KafkaConfig, log *logger.Logger) (Producer, error) {
	if !cfg.Enabled {
		return &disabledProducer{}, nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash partitioner keys events by slug for per-gift ordering
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    cfg.Topic,
		log:      log,
	}, nil
}

func (p *kafkaProducer) PublishGiftUpserted(ctx context.Context, slug string) error {
	return p.publish(CatalogEvent{Type: EventGiftUpserted, Slug: slug})
}

func (p *kafkaProducer) PublishBookmarkAdded(ctx context.Context, userID, slug string) error {
	return p.publish(CatalogEvent{Type: EventBookmarkAdded, Slug: slug, UserID: userID})
}

func (p *kafkaProducer) PublishBookmarkRemoved(ctx context.Context, userID, slug string) error {
	return p.publish(CatalogEvent{Type: EventBookmarkRemoved, Slug: slug, UserID: userID})
}

func (p *kafkaProducer) publish(event CatalogEvent) error {
	event.OccurredAt = time.Now().UTC()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Slug),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("producer"), Value: []byte("giftly-api")},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send catalog event: %w", err)
	}

	p.log.Debug("catalog event published",
		"type", event.Type,
		"slug", event.Slug,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *kafkaProducer) HealthCheck(ctx context.Context) error {
	if p.producer == nil {
		return fmt.Errorf("kafka producer is nil")
	}
	if p.topic == "" {
		return fmt.Errorf("kafka topic not configured")
	}
	return nil
}

func (p *kafkaProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close kafka producer: %w", err)
		}
	}
	return nil
}

type disabledProducer struct{}

func (disabledProducer) PublishGiftUpserted(ctx context.Context, slug string) error { return nil }
func (disabledProducer) PublishBookmarkAdded(ctx context.Context, userID, slug string) error {
	return nil
}
func (disabledProducer) PublishBookmarkRemoved(ctx context.Context, userID, slug string) error {
	return nil
}
func (disabledProducer) HealthCheck(ctx context.Context) error { return nil }
func (disabledProducer) Close() error                          { return nil }
