package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

// ExchangeRateCacheRepository remembers dedup keys already persisted to the warehouse.
// Only positive answers are cached; a miss always falls through to the warehouse.
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for remembered keys
}

// NewExchangeRateCacheRepository creates a new repository instance with the given TTL
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func dedupKey(table models.TableRef, loadTS, currency string) string {
	return fmt.Sprintf("exchange_rate:%s:%s:%s", table.String(), currency, loadTS)
}

// Exists reports whether the pair was marked as persisted.
func (r *ExchangeRateCacheRepository) Exists(ctx context.Context, table models.TableRef, loadTS, currency string) (bool, error) {
	key := dedupKey(table, loadTS, currency)

	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow("dedup cache lookup",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Save marks the pair as persisted.
func (r *ExchangeRateCacheRepository) Save(ctx context.Context, table models.TableRef, loadTS, currency string) error {
	key := dedupKey(table, loadTS, currency)

	err := r.client.Set(ctx, key, "1", r.exp).Err()

	logger.Log.Infow("dedup cache save",
		"key", key,
		"ttl", r.exp,
		"result", "ok",
		"error", err,
	)

	return err
}
