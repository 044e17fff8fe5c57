// Package normalize maps raw market records of inconsistent shape onto types.Market.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/komsit37/sportstrader/pkg/st/coalesce"
	"github.com/komsit37/sportstrader/pkg/st/types"
)

// Candidate keys per canonical field, in priority order.
var (
	IDKeys        = []string{"id", "ticker"}
	TitleKeys     = []string{"title", "name", "question", "market_title"}
	SportKeys     = []string{"sport", "category", "league"}
	PriceKeys     = []string{"last_price", "price", "lastPrice", "last_trade_price", "lastTradePrice"}
	ChangePctKeys = []string{"change_pct", "changePct", "price_change_pct", "priceChangePct", "change"}
	VolumeKeys    = []string{"volume", "volume_24h", "volume24hr"}
)

const (
	DefaultTitle = "Untitled market"
	DefaultSport = "Other"
)

var thousand = decimal.NewFromInt(1000)

// Normalize converts raw records into markets, keeping length and order.
// An empty input yields SampleMarkets.
func Normalize(raw []types.RawMarketRecord) []types.Market {
	if len(raw) == 0 {
		return SampleMarkets()
	}
	out := make([]types.Market, 0, len(raw))
	for i, r := range raw {
		out = append(out, Market(r, i))
	}
	return out
}

// Market normalizes a single record found at position idx of its list.
func Market(r types.RawMarketRecord, idx int) types.Market {
	return types.Market{
		ID:            coalesce.String(r, IDKeys, "market-"+strconv.Itoa(idx+1)),
		Title:         coalesce.String(r, TitleKeys, DefaultTitle),
		VolumeDisplay: FormatVolume(coalesce.Coalesce(r, VolumeKeys, nil)),
		Price:         coalesce.Number(r, PriceKeys, 0),
		ChangePct:     coalesce.Number(r, ChangePctKeys, 0),
		Sport:         coalesce.String(r, SportKeys, DefaultSport),
	}
}

// FormatVolume renders a raw volume for display.
// Numbers become "$<thousands>k Vol." with en-US grouping, strings pass through,
// anything else renders empty.
func FormatVolume(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	n, ok := numeric(v)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return ""
	}
	k := decimal.NewFromFloat(n).Div(thousand).Round(0).IntPart()
	return message.NewPrinter(language.AmericanEnglish).Sprintf("$%dk Vol.", k)
}

func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	return 0, false
}
