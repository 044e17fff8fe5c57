// Package detail resolves the market shown by the market detail screen from its route parameters.
package detail

import (
	"errors"
	"fmt"

	"github.com/komsit37/sportstrader/pkg/st/normalize"
	"github.com/komsit37/sportstrader/pkg/st/types"
)

var (
	// ErrMissingID is returned when the route carries no market id.
	ErrMissingID = errors.New("market id is required")
	// ErrNotFound is returned when the id matches no known market and the route carries no title.
	ErrNotFound = errors.New("market not found")
)

// Params are the route parameters of the detail screen. Pointer fields are optional.
type Params struct {
	ID            string
	Title         string
	Sport         string
	VolumeDisplay string
	Price         *float64
	ChangePct     *float64
}

// Resolve returns the market for p.
//
// A market found by id is returned with any fields present in p laid over it.
// An unknown id is accepted only when p carries a title; missing fields then take the
// canonical defaults, never values from another market.
func Resolve(p Params, markets []types.Market) (types.Market, error) {
	if p.ID == "" {
		return types.Market{}, ErrMissingID
	}
	var (
		m     types.Market
		found bool
	)
	for _, c := range markets {
		if c.ID == p.ID {
			m, found = c, true
			break
		}
	}
	if !found {
		if p.Title == "" {
			return types.Market{}, fmt.Errorf("%w: %s", ErrNotFound, p.ID)
		}
		m = types.Market{ID: p.ID, Sport: normalize.DefaultSport}
	}

	if p.Title != "" {
		m.Title = p.Title
	}
	if p.Sport != "" {
		m.Sport = p.Sport
	}
	if p.VolumeDisplay != "" {
		m.VolumeDisplay = p.VolumeDisplay
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.ChangePct != nil {
		m.ChangePct = *p.ChangePct
	}
	return m, nil
}
