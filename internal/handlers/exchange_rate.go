package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
	"github.com/sbilibin2017/gw-exchange-rates/internal/services"
)

// maxRequestBody caps POST bodies; a single row is a few hundred bytes.
const maxRequestBody int64 = 1 << 20

//go:generate mockgen -source=exchange_rate.go -destination=mock_exchange_rate_test.go -package=handlers

// ExchangeRateReader defines the interface that the service must implement.
type ExchangeRateReader interface {
	List(ctx context.Context) ([]map[string]any, error)
}

// ExchangeRateWriter defines the interface that the service must implement.
type ExchangeRateWriter interface {
	Create(ctx context.Context, rate models.ExchangeRate) error
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// NewListExchangeRatesHandler returns an HTTP handler listing stored exchange rates.
// @Summary List exchange rates
// @Description Returns up to 100 stored exchange rate rows
// @Tags exchange-rates
// @Produce json
// @Success 200 {array} models.ExchangeRate "Stored rows"
// @Failure 500 {object} models.ExchangeRateErrorResponse "Internal server error"
// @Router /exchange-rates [get]
func NewListExchangeRatesHandler(svc ExchangeRateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, models.ExchangeRateErrorResponse{
				Detail: "internal server error",
			})
			return
		}

		writeJSON(w, http.StatusOK, rows)
	}
}

// NewCreateExchangeRateHandler returns an HTTP handler inserting one exchange rate.
// @Summary Insert exchange rate
// @Description Appends one row to the exchange rates table. No duplicate check is made.
// @Tags exchange-rates
// @Accept json
// @Produce json
// @Param request body models.CreateExchangeRateRequest true "Exchange rate"
// @Success 201 {object} models.CreateExchangeRateResponse "Record inserted successfully"
// @Failure 413 {object} models.ExchangeRateErrorResponse "Request body too large"
// @Failure 422 {object} models.ExchangeRateErrorResponse "Invalid request body"
// @Failure 500 {object} models.ExchangeRateErrorResponse "Insert failed"
// @Router /exchange-rates [post]
func NewCreateExchangeRateHandler(svc ExchangeRateWriter, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

		var req models.CreateExchangeRateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, models.ExchangeRateErrorResponse{
					Detail: "request body too large",
				})
				return
			}
			writeJSON(w, http.StatusUnprocessableEntity, models.ExchangeRateErrorResponse{
				Detail: "invalid request body",
				Errors: []string{err.Error()},
			})
			return
		}

		if err := validate.Struct(req); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, models.ExchangeRateErrorResponse{
				Detail: "invalid request body",
				Errors: validationMessages(err),
			})
			return
		}

		loadTS, err := ParseLoadTS(*req.LoadTS)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, models.ExchangeRateErrorResponse{
				Detail: "invalid request body",
				Errors: []string{"load_ts: " + err.Error()},
			})
			return
		}

		rate := models.ExchangeRate{
			BuyRate:      *req.BuyRate,
			SellRate:     *req.SellRate,
			ClosingRate:  *req.ClosingRate,
			ExchangeName: *req.ExchangeName,
			Currency:     *req.Currency,
			LoadTS:       FormatLoadTS(loadTS),
		}

		if err := svc.Create(r.Context(), rate); err != nil {
			if errors.Is(err, services.ErrInsert) {
				logger.Log.Errorw("exchange rate rejected", "currency", rate.Currency, "error", err)
				writeJSON(w, http.StatusInternalServerError, models.ExchangeRateErrorResponse{
					Detail: "failed to insert exchange rate",
				})
				return
			}
			logger.Log.Errorw("exchange rate insert failed", "currency", rate.Currency, "error", err)
			writeJSON(w, http.StatusInternalServerError, models.ExchangeRateErrorResponse{
				Detail: "internal server error",
			})
			return
		}

		writeJSON(w, http.StatusCreated, models.CreateExchangeRateResponse{
			Message: "record inserted successfully",
		})
	}
}
