package models

import "encoding/json"

// RawRateRecord is a single quote object as published by the upstream API.
// Keys are provider specific (compra, venta, ultimoCierre, nombre, moneda, fechaActualizacion).
type RawRateRecord map[string]any

// RawBatch is the upstream response array, kept byte-for-byte for publishing.
type RawBatch []json.RawMessage

// ExchangeRate represents a single row of the exchange rates warehouse table
// swagger:model ExchangeRate
type ExchangeRate struct {
	BuyRate      float64 `json:"buy_rate" db:"buy_rate" example:"1015.5"`            // BuyRate is the purchase price.
	SellRate     float64 `json:"sell_rate" db:"sell_rate" example:"1035.5"`          // SellRate is the sale price.
	ClosingRate  float64 `json:"closing_rate" db:"closing_rate" example:"1025"`      // ClosingRate is the last official closing price.
	ExchangeName string  `json:"exchange_name" db:"exchange_name" example:"Blue"`    // ExchangeName identifies the quoting house.
	Currency     string  `json:"currency" db:"currency" example:"USD"`               // Currency is the currency code.
	LoadTS       string  `json:"load_ts" db:"load_ts" example:"2024-01-01T00:00:00"` // LoadTS is when the quote was generated upstream.
}

// RowError describes why a single row was rejected by the warehouse.
type RowError struct {
	Index   int    `json:"index"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// CreateExchangeRateRequest represents the JSON body for inserting an exchange rate
// swagger:model CreateExchangeRateRequest
type CreateExchangeRateRequest struct {
	// required: true
	BuyRate *float64 `json:"buy_rate" validate:"required" example:"1015.5"`
	// required: true
	SellRate *float64 `json:"sell_rate" validate:"required" example:"1035.5"`
	// required: true
	ClosingRate *float64 `json:"closing_rate" validate:"required" example:"1025"`
	// required: true
	ExchangeName *string `json:"exchange_name" validate:"required" example:"Blue"`
	// required: true
	Currency *string `json:"currency" validate:"required" example:"USD"`
	// required: true
	LoadTS *string `json:"load_ts" validate:"required,loadts" example:"2024-01-01T00:00:00Z"`
}

// CreateExchangeRateResponse represents a successful insert response
// swagger:model CreateExchangeRateResponse
type CreateExchangeRateResponse struct {
	// example: record inserted successfully
	Message string `json:"message"`
}

// ExchangeRateErrorResponse represents an error response of the exchange rates API
// swagger:model ExchangeRateErrorResponse
type ExchangeRateErrorResponse struct {
	// example: internal server error
	Detail string `json:"detail"`
	// Errors lists invalid request fields, if any
	Errors []string `json:"errors,omitempty"`
}

// StatusResponse is returned by liveness probes
// swagger:model StatusResponse
type StatusResponse struct {
	// example: running
	Status string `json:"status"`
}
