package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

var (
	// ErrRetrieval is returned when the rates API could not be reached or answered with a non-2xx status.
	ErrRetrieval = errors.New("failed to retrieve exchange rates")
	// ErrFormat is returned when the rates API answered with something other than a JSON array.
	ErrFormat = errors.New("unexpected exchange rates payload")
)

const (
	maxEchoedBody = 256
	// maxResponseBody caps what is read from the rates API.
	maxResponseBody int64 = 10 << 20
)

// RatesAPIFacade fetches raw quotes from the upstream rates API.
type RatesAPIFacade struct {
	client  *http.Client
	url     string
	maxBody int64
}

// NewRatesAPIFacade creates a fetcher. The client timeout bounds every call.
func NewRatesAPIFacade(client *http.Client, url string) *RatesAPIFacade {
	return &RatesAPIFacade{client: client, url: url, maxBody: maxResponseBody}
}

// Fetch performs a single GET and returns the top-level array untouched.
func (f *RatesAPIFacade) Fetch(ctx context.Context) (models.RawBatch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrRetrieval, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("rates api request failed", "url", f.url, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrRetrieval, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("rates api returned unexpected status", "url", f.url, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrRetrieval, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrRetrieval, err)
	}
	if int64(len(body)) > f.maxBody {
		logger.Log.Errorw("rates api response too large", "url", f.url, "limit", f.maxBody)
		return nil, fmt.Errorf("%w: response body exceeds %d bytes", ErrRetrieval, f.maxBody)
	}

	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: invalid JSON: %s", ErrFormat, truncate(body))
	}
	if body[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array, got %s", ErrFormat, truncate(body))
	}

	var batch models.RawBatch
	if err := json.Unmarshal(body, &batch); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	logger.Log.Infow("fetched exchange rates", "url", f.url, "count", len(batch))

	return batch, nil
}

func truncate(b []byte) string {
	if len(b) > maxEchoedBody {
		return string(b[:maxEchoedBody]) + "..."
	}
	return string(b)
}
