package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

// NewHealthHandler returns a liveness probe handler.
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} models.StatusResponse "Service is running"
// @Router / [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.StatusResponse{Status: "running"})
	}
}
