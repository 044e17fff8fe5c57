// Package coalesce resolves values from loosely-shaped records.
package coalesce

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Coalesce returns the first value among keys that is present in record and is neither nil
// nor the empty string. It returns fallback when no key qualifies.
func Coalesce(record map[string]any, keys []string, fallback any) any {
	for _, k := range keys {
		v, ok := record[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		return v
	}
	return fallback
}

// String coalesces keys and converts the winner to a string.
// Values with no string form (maps, slices) yield fallback.
func String(record map[string]any, keys []string, fallback string) string {
	v := Coalesce(record, keys, nil)
	if v == nil {
		return fallback
	}
	s, err := cast.ToStringE(v)
	if err != nil || s == "" {
		return fallback
	}
	return s
}

// ToNumber converts value to a finite float64, or returns fallback.
func ToNumber(value any, fallback float64) float64 {
	switch v := value.(type) {
	case nil:
		return fallback
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return fallback
		}
		value = v
	}
	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// Number coalesces keys and converts the winner with ToNumber.
func Number(record map[string]any, keys []string, fallback float64) float64 {
	return ToNumber(Coalesce(record, keys, nil), fallback)
}
