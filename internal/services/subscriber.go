package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

//go:generate mockgen -source=subscriber.go -destination=mock_subscriber_test.go -package=services

// Deduplicator checks and records dedup keys.
type Deduplicator interface {
	IsDuplicate(ctx context.Context, table models.TableRef, loadTS, currency string) (bool, error)
	Remember(ctx context.Context, table models.TableRef, loadTS, currency string)
}

// RateInserter appends a single row.
type RateInserter interface {
	Insert(ctx context.Context, table models.TableRef, rate models.ExchangeRate) error
}

// SubscriberService persists the records carried by broker events.
type SubscriberService struct {
	table  models.TableRef
	dedup  Deduplicator
	writer RateInserter
}

func NewSubscriberService(table models.TableRef, dedup Deduplicator, writer RateInserter) *SubscriberService {
	return &SubscriberService{table: table, dedup: dedup, writer: writer}
}

// HandleEvent processes one delivered event. Errors are logged, never returned:
// the broker is not asked to redeliver. Processing stops at the first failing record;
// records before it stay written.
func (svc *SubscriberService) HandleEvent(ctx context.Context, event models.Event) {
	if event.Data == nil {
		logger.Log.Errorw("no data in event", "message_id", event.MessageID)
		return
	}

	items, err := decodeEventData(*event.Data)
	if err != nil {
		logger.Log.Errorw("failed to decode event", "message_id", event.MessageID, "error", err)
		return
	}

	written, skipped, err := svc.persist(ctx, items)
	if err != nil {
		logger.Log.Errorw("failed to process event",
			"message_id", event.MessageID,
			"records", len(items),
			"written", written,
			"skipped", skipped,
			"error", err,
		)
		return
	}

	logger.Log.Infow("event processed",
		"message_id", event.MessageID,
		"records", len(items),
		"written", written,
		"skipped", skipped,
	)
}

func (svc *SubscriberService) persist(ctx context.Context, items []any) (written, skipped int, err error) {
	for i, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			return written, skipped, fmt.Errorf("record %d: expected an object, got %s", i, jsonKind(item))
		}

		rate := TransformRecord(models.RawRateRecord(raw))

		dup, err := svc.dedup.IsDuplicate(ctx, svc.table, rate.LoadTS, rate.Currency)
		if err != nil {
			return written, skipped, fmt.Errorf("record %d: dedup check: %w", i, err)
		}
		if dup {
			logger.Log.Infow("duplicate record skipped", "currency", rate.Currency, "load_ts", rate.LoadTS)
			skipped++
			continue
		}

		if err := svc.writer.Insert(ctx, svc.table, rate); err != nil {
			return written, skipped, fmt.Errorf("record %d: %w", i, err)
		}
		svc.dedup.Remember(ctx, svc.table, rate.LoadTS, rate.Currency)
		written++
	}
	return written, skipped, nil
}

// decodeEventData turns base64 of a UTF-8 JSON array into its elements.
func decodeEventData(data string) ([]any, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %w", ErrDecode, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: payload is not valid UTF-8", ErrDecode)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", ErrDecode, err)
	}

	items, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list, got %s", ErrDecode, jsonKind(parsed))
	}
	return items, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
