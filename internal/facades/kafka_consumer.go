package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-exchange-rates/internal/config"
	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=kafka_consumer.go -destination=mock_kafka_consumer_test.go -package=facades

// KafkaReader is the subset of *kafka.Reader used to consume.
type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// EventHandler processes one delivered envelope. It never requests redelivery.
type EventHandler interface {
	HandleEvent(ctx context.Context, event models.Event)
}

// NewKafkaReader builds a consumer group reader for topic with explicit commits.
func NewKafkaReader(cfg config.Kafka, topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.BrokerList(),
		GroupID:  cfg.GroupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		Dialer: &kafka.Dialer{
			ClientID: cfg.ClientID,
		},
	})
}

// KafkaConsumerFacade feeds Kafka messages to an EventHandler one at a time.
type KafkaConsumerFacade struct {
	reader  KafkaReader
	handler EventHandler
}

func NewKafkaConsumerFacade(reader KafkaReader, handler EventHandler) *KafkaConsumerFacade {
	return &KafkaConsumerFacade{reader: reader, handler: handler}
}

// Consume blocks until ctx is cancelled or the reader fails.
// Every fetched message is committed after handling, whatever the outcome.
func (f *KafkaConsumerFacade) Consume(ctx context.Context) error {
	for {
		msg, err := f.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("failed to fetch message: %w", err)
		}

		var event models.Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Log.Errorw("failed to decode event envelope",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "error", err)
		} else {
			f.handler.HandleEvent(ctx, event)
		}

		if err := f.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to commit offset %d: %w", msg.Offset, err)
		}
	}
}
