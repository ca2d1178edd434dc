package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

// Upstream field names.
const (
	fieldBuyRate      = "compra"
	fieldSellRate     = "venta"
	fieldClosingRate  = "ultimoCierre"
	fieldExchangeName = "nombre"
	fieldCurrency     = "moneda"
	fieldLoadTS       = "fechaActualizacion"
)

// TransformRecord maps an upstream quote onto a warehouse row.
// It never fails: missing or unusable numbers become 0, missing strings become "".
func TransformRecord(raw models.RawRateRecord) models.ExchangeRate {
	return models.ExchangeRate{
		BuyRate:      numberField(raw, fieldBuyRate),
		SellRate:     numberField(raw, fieldSellRate),
		ClosingRate:  numberField(raw, fieldClosingRate),
		ExchangeName: stringField(raw, fieldExchangeName),
		Currency:     stringField(raw, fieldCurrency),
		LoadTS:       stringField(raw, fieldLoadTS),
	}
}

func numberField(raw models.RawRateRecord, key string) float64 {
	switch v := raw[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}

func stringField(raw models.RawRateRecord, key string) string {
	switch v := raw[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
