package services

import (
	"context"

	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

//go:generate mockgen -source=dedup.go -destination=mock_dedup_test.go -package=services

// ExchangeRateDedupReader counts stored rows by dedup key.
type ExchangeRateDedupReader interface {
	ExistsByDedupKey(ctx context.Context, table models.TableRef, loadTS, currency string) (bool, error)
}

// ExchangeRateDedupCache remembers dedup keys known to be stored.
type ExchangeRateDedupCache interface {
	Exists(ctx context.Context, table models.TableRef, loadTS, currency string) (bool, error)
	Save(ctx context.Context, table models.TableRef, loadTS, currency string) error
}

// DedupService answers whether a (load_ts, currency) pair is already persisted.
// The check is not atomic with the insert that follows it.
type DedupService struct {
	reader ExchangeRateDedupReader
	cache  ExchangeRateDedupCache
}

// NewDedupService creates a new service instance. cache may be nil.
func NewDedupService(reader ExchangeRateDedupReader, cache ExchangeRateDedupCache) *DedupService {
	return &DedupService{reader: reader, cache: cache}
}

// IsDuplicate consults the cache first, then the warehouse. Warehouse errors propagate.
func (svc *DedupService) IsDuplicate(ctx context.Context, table models.TableRef, loadTS, currency string) (bool, error) {
	if svc.cache != nil {
		hit, err := svc.cache.Exists(ctx, table, loadTS, currency)
		if err != nil {
			logger.Log.Errorw("dedup cache lookup failed", "table", table.String(), "currency", currency, "load_ts", loadTS, "error", err)
		} else if hit {
			return true, nil
		}
	}

	exists, err := svc.reader.ExistsByDedupKey(ctx, table, loadTS, currency)
	if err != nil {
		return false, err
	}

	if exists {
		svc.Remember(ctx, table, loadTS, currency)
	}
	return exists, nil
}

// Remember records the pair in the cache. Failures are only logged.
func (svc *DedupService) Remember(ctx context.Context, table models.TableRef, loadTS, currency string) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Save(ctx, table, loadTS, currency); err != nil {
		logger.Log.Errorw("dedup cache update failed", "table", table.String(), "currency", currency, "load_ts", loadTS, "error", err)
	}
}
