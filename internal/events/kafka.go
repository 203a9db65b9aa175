package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/twmb/franz-go/pkg/kgo"
)

// kafkaPublisher implements Publisher on top of a franz-go client.
type kafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger zerolog.Logger
}

// NewKafkaPublisher creates a publisher that produces order events to the
// given topic. Callers should Close it on shutdown to flush in-flight records.
func NewKafkaPublisher(brokers []string, topic string, logger zerolog.Logger) (Publisher, error) {
	logger = logger.With().Str("component", "kafka-publisher").Logger()

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerBatchMaxBytes(1<<20),
		kgo.ProduceRequestTimeout(10*time.Second),
	)
	if err != nil {
		logger.Error().Err(err).Strs("brokers", brokers).Msg("failed to create kafka client")
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}

	logger.Info().
		Strs("brokers", brokers).
		Str("topic", topic).
		Msg("kafka publisher initialised")

	return &kafkaPublisher{
		client: client,
		topic:  topic,
		logger: logger,
	}, nil
}

// OrderCompleted publishes an order.completed record keyed by user ID so
// events for one user stay ordered within a partition.
func (p *kafkaPublisher) OrderCompleted(ctx context.Context, order *model.Order) error {
	event := OrderCompletedEvent{
		OrderID:    order.ID.String(),
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice,
		ItemCount:  len(order.Items),
		PromoCode:  order.PromoCode,
		CreatedAt:  order.CreatedAt.UTC().Format(time.RFC3339),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(order.UserID),
		Value: value,
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		p.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to produce order event")
		return fmt.Errorf("failed to produce order event: %w", err)
	}

	p.logger.Debug().
		Str("order_id", order.ID.String()).
		Str("topic", p.topic).
		Msg("order event published")

	return nil
}

// Close flushes buffered records and shuts the client down.
func (p *kafkaPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.client.Flush(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("failed to flush kafka client")
	}
	p.client.Close()

	p.logger.Info().Msg("kafka publisher closed")

	return nil
}
