package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

// maxPushBody caps push envelopes; a batch of quotes stays well below it.
const maxPushBody int64 = 10 << 20

//go:generate mockgen -source=push.go -destination=mock_push_test.go -package=handlers

// EventHandler processes one delivered envelope.
type EventHandler interface {
	HandleEvent(ctx context.Context, event models.Event)
}

// NewPushHandler returns an HTTP handler for broker push deliveries.
// Every delivery is acknowledged with 204, including ones that could not be parsed.
func NewPushHandler(svc EventHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxPushBody)

		var req models.PushRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode push request", "error", err)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		svc.HandleEvent(r.Context(), req.Message)
		w.WriteHeader(http.StatusNoContent)
	}
}
