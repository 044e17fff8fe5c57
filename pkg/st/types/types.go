package types

import "encoding/json"

// RawMarketRecord is a market as received from a remote service. Its shape is not guaranteed.
type RawMarketRecord map[string]any

// Market is the canonical, fully-defaulted market record rendered by every screen.
type Market struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	VolumeDisplay string  `json:"volumeDisplay"`
	Price         float64 `json:"price"`
	ChangePct     float64 `json:"changePct"`
	Sport         string  `json:"sport"`
}

// FilterConfig is the decoded sport filter configuration.
// Sports keeps the order of the filters_by_sports object in the source document.
type FilterConfig struct {
	Sports []SportFilter
}

// SportFilter is a single filters_by_sports entry. Rules are kept undecoded.
type SportFilter struct {
	Name  string
	Rules json.RawMessage
}

// Position is a holding in a market.
type Position struct {
	MarketID string
	Quantity float64
	AvgCost  float64
}

// Portfolio is the user's cash and positions.
type Portfolio struct {
	Cash      float64
	Positions []Position
}
