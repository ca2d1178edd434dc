package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
)

//go:generate mockgen -source=publisher.go -destination=mock_publisher_test.go -package=services

// EventBroker delivers one payload to a topic and waits for the acknowledgement.
type EventBroker interface {
	Publish(ctx context.Context, topic string, data []byte) (string, error)
}

// PublisherService publishes whole batches as single broker messages.
type PublisherService struct {
	broker EventBroker
}

func NewPublisherService(broker EventBroker) *PublisherService {
	return &PublisherService{broker: broker}
}

// Publish serializes batch as one JSON array and sends it as exactly one message.
func (svc *PublisherService) Publish(ctx context.Context, topic string, batch any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(batch); err != nil {
		return fmt.Errorf("%w: failed to serialize batch: %w", ErrPublish, err)
	}

	data := bytes.TrimRight(buf.Bytes(), "\n")
	if len(data) == 0 || data[0] != '[' {
		return fmt.Errorf("%w: batch must serialize to a JSON array", ErrPublish)
	}

	messageID, err := svc.broker.Publish(ctx, topic, data)
	if err != nil {
		logger.Log.Errorw("failed to publish batch", "topic", topic, "error", err)
		return fmt.Errorf("%w: %w", ErrPublish, err)
	}

	logger.Log.Infow("batch published", "topic", topic, "message_id", messageID, "bytes", len(data))
	return nil
}
