package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-exchange-rates/docs"
	"github.com/sbilibin2017/gw-exchange-rates/internal/middlewares"
)

// ExchangeRateService is what the query API needs from the service layer.
type ExchangeRateService interface {
	ExchangeRateReader
	ExchangeRateWriter
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	return r
}

// NewAPIRouter builds the query API routes. swaggerURL points to the generated doc.json.
func NewAPIRouter(svc ExchangeRateService, swaggerURL string) http.Handler {
	r := newRouter()
	r.Get("/", NewHealthHandler())
	r.Get("/exchange-rates", NewListExchangeRatesHandler(svc))
	r.Post("/exchange-rates", NewCreateExchangeRateHandler(svc, NewValidator()))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))
	return r
}

// NewFetcherRouter builds the HTTP trigger of the fetch-and-publish job.
func NewFetcherRouter(svc FetchPublishRunner) http.Handler {
	r := newRouter()
	trigger := NewFetchPublishHandler(svc)
	r.Get("/", trigger)
	r.Post("/", trigger)
	return r
}

// NewPersisterRouter builds the push endpoint and liveness probe of the subscribe-and-persist job.
func NewPersisterRouter(svc EventHandler) http.Handler {
	r := newRouter()
	r.Get("/", NewHealthHandler())
	r.Post("/pubsub/push", NewPushHandler(svc))
	return r
}
