// Package payload decodes raw remote payloads into a closed set of typed results.
//
// Every decoder returns one of MarketList, FilterConfig or Empty, or a decode error.
// Callers switch on the concrete type instead of probing the raw shape themselves.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/komsit37/sportstrader/pkg/st/types"
)

var (
	// ErrMalformed reports a body that is not valid JSON.
	ErrMalformed = errors.New("malformed payload")
	// ErrUnexpectedShape reports valid JSON of a shape the decoder does not accept.
	ErrUnexpectedShape = errors.New("unexpected payload shape")
)

// SportsKey holds the per-sport filter rules in a filter config document.
const SportsKey = "filters_by_sports"

// Payload is the sum of decoded payload kinds.
type Payload interface {
	isPayload()
}

// MarketList is a list of raw market records.
type MarketList struct {
	Records []types.RawMarketRecord
}

// FilterConfig is a decoded sport filter configuration.
type FilterConfig struct {
	Config types.FilterConfig
}

// Empty means no data was received.
type Empty struct{}

func (MarketList) isPayload()   {}
func (FilterConfig) isPayload() {}
func (Empty) isPayload()        {}

// DecodeMarkets accepts a top-level array of records or an object with a "markets" array.
func DecodeMarkets(data []byte) (Payload, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}
	root := gjson.ParseBytes(data)
	switch {
	case root.IsArray():
		return MarketList{Records: records(root)}, nil
	case root.IsObject():
		list := root.Get("markets")
		if list.IsArray() {
			return MarketList{Records: records(list)}, nil
		}
		return nil, fmt.Errorf("%w: object without markets array", ErrUnexpectedShape)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedShape, root.Type)
	}
}

// DecodeFilterConfig accepts an object optionally holding filters_by_sports.
func DecodeFilterConfig(data []byte) (Payload, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedShape, root.Type)
	}
	return FilterConfig{Config: filterConfig(root.Get(SportsKey))}, nil
}

// Records returns the market records carried by p, or nil for any other kind.
func Records(p Payload) []types.RawMarketRecord {
	if l, ok := p.(MarketList); ok {
		return l.Records
	}
	return nil
}

// Config returns the filter config carried by p, or nil for any other kind.
func Config(p Payload) *types.FilterConfig {
	if c, ok := p.(FilterConfig); ok {
		cfg := c.Config
		return &cfg
	}
	return nil
}

func records(list gjson.Result) []types.RawMarketRecord {
	out := make([]types.RawMarketRecord, 0)
	list.ForEach(func(_, v gjson.Result) bool {
		rec := types.RawMarketRecord{}
		if m, ok := v.Value().(map[string]any); ok {
			rec = m
		}
		out = append(out, rec)
		return true
	})
	return out
}

func filterConfig(sports gjson.Result) types.FilterConfig {
	var cfg types.FilterConfig
	if !sports.IsObject() {
		return cfg
	}
	seen := map[string]struct{}{}
	sports.ForEach(func(k, v gjson.Result) bool {
		name := k.String()
		if _, dup := seen[name]; dup {
			return true
		}
		seen[name] = struct{}{}
		cfg.Sports = append(cfg.Sports, types.SportFilter{Name: name, Rules: json.RawMessage(v.Raw)})
		return true
	})
	return cfg
}
