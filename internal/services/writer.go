package services

import (
	"context"

	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

//go:generate mockgen -source=writer.go -destination=mock_writer_test.go -package=services

// ExchangeRateRowWriter appends rows and reports rejected ones.
type ExchangeRateRowWriter interface {
	InsertRows(ctx context.Context, table models.TableRef, rates []models.ExchangeRate) ([]models.RowError, error)
}

// WriterService appends single exchange rate rows.
type WriterService struct {
	writer ExchangeRateRowWriter
}

func NewWriterService(writer ExchangeRateRowWriter) *WriterService {
	return &WriterService{writer: writer}
}

// Insert appends rate as one row. Rejected rows surface as *InsertError, other errors as is.
func (svc *WriterService) Insert(ctx context.Context, table models.TableRef, rate models.ExchangeRate) error {
	rowErrs, err := svc.writer.InsertRows(ctx, table, []models.ExchangeRate{rate})
	if err != nil {
		logger.Log.Errorw("warehouse insert failed", "table", table.String(), "error", err)
		return err
	}
	if len(rowErrs) > 0 {
		insertErr := &InsertError{Errors: rowErrs}
		logger.Log.Errorw("warehouse rejected row", "table", table.String(), "error", insertErr)
		return insertErr
	}
	return nil
}
