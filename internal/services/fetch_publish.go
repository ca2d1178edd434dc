package services

import (
	"context"

	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

//go:generate mockgen -source=fetch_publish.go -destination=mock_fetch_publish_test.go -package=services

// RatesFetcher retrieves the upstream quote array.
type RatesFetcher interface {
	Fetch(ctx context.Context) (models.RawBatch, error)
}

// BatchPublisher publishes a whole batch to a topic.
type BatchPublisher interface {
	Publish(ctx context.Context, topic string, batch any) error
}

// FetchPublishService runs one fetch-and-publish cycle.
type FetchPublishService struct {
	fetcher   RatesFetcher
	publisher BatchPublisher
	topic     string
}

func NewFetchPublishService(fetcher RatesFetcher, publisher BatchPublisher, topic string) *FetchPublishService {
	return &FetchPublishService{fetcher: fetcher, publisher: publisher, topic: topic}
}

// Run fetches the quotes and publishes them as one message. It returns the number of records sent.
func (svc *FetchPublishService) Run(ctx context.Context) (int, error) {
	batch, err := svc.fetcher.Fetch(ctx)
	if err != nil {
		logger.Log.Errorw("fetch failed", "error", err)
		return 0, err
	}

	if err := svc.publisher.Publish(ctx, svc.topic, batch); err != nil {
		return 0, err
	}

	logger.Log.Infow("exchange rates published", "topic", svc.topic, "count", len(batch))
	return len(batch), nil
}
