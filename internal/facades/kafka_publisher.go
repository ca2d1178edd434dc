package facades

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-exchange-rates/internal/config"
	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=kafka_publisher.go -destination=mock_kafka_publisher_test.go -package=facades

// KafkaWriter is the subset of *kafka.Writer used to publish.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewKafkaWriter builds a synchronous writer that waits for all in-sync replicas.
// The topic is set per message.
func NewKafkaWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.BrokerList()...),
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireAll,
		Async:                  false,
		AllowAutoTopicCreation: true,
		Transport: &kafka.Transport{
			ClientID: cfg.ClientID,
		},
	}
}

// KafkaPublisherFacade wraps raw payloads into event envelopes and writes them to Kafka.
type KafkaPublisherFacade struct {
	writer KafkaWriter
	source string
	now    func() time.Time
}

// NewKafkaPublisherFacade creates a publisher. source is recorded in the envelope attributes.
func NewKafkaPublisherFacade(writer KafkaWriter, source string) *KafkaPublisherFacade {
	return &KafkaPublisherFacade{writer: writer, source: source, now: time.Now}
}

// Publish sends data as one message to topic and returns the generated message ID.
// data is base64 encoded into the envelope; callers hand over plain bytes.
func (f *KafkaPublisherFacade) Publish(ctx context.Context, topic string, data []byte) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(data)
	event := models.Event{
		Data:        &encoded,
		Attributes:  map[string]string{"source": f.source},
		MessageID:   uuid.NewString(),
		PublishTime: f.now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return "", err
	}

	err = f.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(event.MessageID),
		Value: value,
	})

	logger.Log.Infow("kafka publish",
		"topic", topic,
		"message_id", event.MessageID,
		"bytes", len(data),
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return event.MessageID, nil
}
