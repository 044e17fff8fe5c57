package detail

import (
	"errors"
	"testing"

	"github.com/komsit37/sportstrader/pkg/st/normalize"
	"github.com/komsit37/sportstrader/pkg/st/types"
)

func ptr(v float64) *float64 { return &v }

func TestResolve(t *testing.T) {
	markets := normalize.SampleMarkets()

	t.Run("missing id", func(t *testing.T) {
		if _, err := Resolve(Params{Title: "x"}, markets); !errors.Is(err, ErrMissingID) {
			t.Errorf("err = %v, want ErrMissingID", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		got, err := Resolve(Params{ID: "ufc-main-ko"}, markets)
		if err != nil {
			t.Fatal(err)
		}
		if got != markets[2] {
			t.Errorf("got %+v, want %+v", got, markets[2])
		}
	})

	t.Run("params overlay found market", func(t *testing.T) {
		got, err := Resolve(Params{ID: "ufc-main-ko", Price: ptr(0), Title: "Renamed"}, markets)
		if err != nil {
			t.Fatal(err)
		}
		if got.Price != 0 || got.Title != "Renamed" || got.Sport != "MMA" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("unknown id with title", func(t *testing.T) {
		got, err := Resolve(Params{ID: "new", Title: "New market", ChangePct: ptr(1.5)}, markets)
		if err != nil {
			t.Fatal(err)
		}
		want := types.Market{ID: "new", Title: "New market", ChangePct: 1.5, Sport: "Other"}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("unknown id without title", func(t *testing.T) {
		if _, err := Resolve(Params{ID: "nope"}, markets); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
