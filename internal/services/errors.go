package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

var (
	// ErrPublish is returned when the broker did not accept a batch.
	ErrPublish = errors.New("failed to publish exchange rates")
	// ErrInsert is matched by InsertError.
	ErrInsert = errors.New("failed to insert exchange rate")
	// ErrDecode marks broker payloads that could not be decoded. Such messages are dropped.
	ErrDecode = errors.New("failed to decode event data")
)

// InsertError enumerates the rows rejected by the warehouse.
type InsertError struct {
	Errors []models.RowError
}

func (e *InsertError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, re := range e.Errors {
		parts = append(parts, fmt.Sprintf("row %d: %s: %s", re.Index, re.Reason, re.Message))
	}
	return fmt.Sprintf("%s: %s", ErrInsert, strings.Join(parts, "; "))
}

func (e *InsertError) Is(target error) bool {
	return target == ErrInsert
}
