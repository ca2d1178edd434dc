package services

import (
	"context"

	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

//go:generate mockgen -source=exchange_rate.go -destination=mock_exchange_rate_test.go -package=services

// ListLimit caps the number of rows returned by List.
const ListLimit = 100

// ExchangeRateLister reads stored rows as column maps.
type ExchangeRateLister interface {
	List(ctx context.Context, table models.TableRef, limit int) ([]map[string]any, error)
}

// ExchangeRateService backs the query API.
type ExchangeRateService struct {
	table  models.TableRef
	lister ExchangeRateLister
	writer RateInserter
}

// NewExchangeRateService creates a new service instance
func NewExchangeRateService(table models.TableRef, lister ExchangeRateLister, writer RateInserter) *ExchangeRateService {
	return &ExchangeRateService{table: table, lister: lister, writer: writer}
}

// List returns at most ListLimit stored rows.
func (svc *ExchangeRateService) List(ctx context.Context) ([]map[string]any, error) {
	rows, err := svc.lister.List(ctx, svc.table, ListLimit)
	if err != nil {
		logger.Log.Errorw("failed to list exchange rates", "table", svc.table.String(), "error", err)
		return nil, err
	}
	return rows, nil
}

// Create appends rate without a dedup check.
func (svc *ExchangeRateService) Create(ctx context.Context, rate models.ExchangeRate) error {
	return svc.writer.Insert(ctx, svc.table, rate)
}
