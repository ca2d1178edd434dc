package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

//go:generate mockgen -source=fetch_publish.go -destination=mock_fetch_publish_test.go -package=handlers

// FetchPublishRunner runs one fetch-and-publish cycle.
type FetchPublishRunner interface {
	Run(ctx context.Context) (int, error)
}

// NewFetchPublishHandler returns an HTTP handler triggering one fetch-and-publish cycle.
func NewFetchPublishHandler(svc FetchPublishRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.Run(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, models.FetchPublishErrorResponse{
				Error:  "execution failed",
				Detail: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, models.FetchPublishResponse{
			Message: "exchange rates published successfully",
			Count:   count,
		})
	}
}
