// Package screen holds the per-screen view state and the reducer that updates it.
package screen

import (
	"github.com/komsit37/sportstrader/pkg/st/normalize"
	"github.com/komsit37/sportstrader/pkg/st/sports"
	"github.com/komsit37/sportstrader/pkg/st/types"
)

// Name identifies a screen.
type Name string

const (
	Home      Name = "home"
	Markets   Name = "markets"
	Portfolio Name = "portfolio"
	Detail    Name = "detail"
)

// State is owned by a single screen and only changed through Reduce.
type State struct {
	Screen        Name
	SelectedSport string
	Raw           []types.RawMarketRecord
	Filters       *types.FilterConfig
	// Set when the corresponding fetch failed; the screen keeps rendering placeholder data.
	MarketsErr error
	FiltersErr error
}

// Initial returns the state of a freshly mounted screen.
func Initial(screen Name) State {
	return State{Screen: screen, SelectedSport: sports.All}
}

// Event is something that happened to a screen.
type Event interface {
	isEvent()
}

// Kind names the payload a fetch was for.
type Kind string

const (
	KindMarkets Kind = "markets"
	KindFilters Kind = "filters"
)

type (
	// MarketsLoaded carries freshly fetched raw market records.
	MarketsLoaded struct{ Records []types.RawMarketRecord }
	// FiltersLoaded carries a freshly fetched filter config.
	FiltersLoaded struct{ Config *types.FilterConfig }
	// FetchFailed reports a failed fetch.
	FetchFailed struct {
		Kind Kind
		Err  error
	}
	// SportSelected is a user tap on a sport chip.
	SportSelected struct{ Sport string }
)

func (MarketsLoaded) isEvent() {}
func (FiltersLoaded) isEvent() {}
func (FetchFailed) isEvent()   {}
func (SportSelected) isEvent() {}

// Reduce returns the state that follows s after e. It never mutates s.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case MarketsLoaded:
		s.Raw = append([]types.RawMarketRecord(nil), ev.Records...)
		s.MarketsErr = nil
	case FiltersLoaded:
		s.Filters = ev.Config
		s.FiltersErr = nil
	case FetchFailed:
		switch ev.Kind {
		case KindMarkets:
			s.MarketsErr = ev.Err
		case KindFilters:
			s.FiltersErr = ev.Err
		}
	case SportSelected:
		if ev.Sport != "" {
			s.SelectedSport = ev.Sport
		}
	}
	return s
}

// VisibleMarkets returns the canonical markets for s, narrowed to the selected sport.
func VisibleMarkets(s State) []types.Market {
	return sports.FilterBySport(normalize.Normalize(s.Raw), s.SelectedSport)
}

// AllMarkets returns the canonical markets for s regardless of the selected sport.
func AllMarkets(s State) []types.Market {
	return normalize.Normalize(s.Raw)
}

// SportOptions returns the values a sport picker offers for s.
func SportOptions(s State) []string {
	return sports.Options(s.Filters)
}
