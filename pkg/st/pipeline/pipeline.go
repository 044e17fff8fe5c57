package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/komsit37/sportstrader/pkg/st/chart"
	"github.com/komsit37/sportstrader/pkg/st/columns"
	"github.com/komsit37/sportstrader/pkg/st/detail"
	"github.com/komsit37/sportstrader/pkg/st/filter"
	"github.com/komsit37/sportstrader/pkg/st/portfolio"
	"github.com/komsit37/sportstrader/pkg/st/render"
	"github.com/komsit37/sportstrader/pkg/st/screen"
	"github.com/komsit37/sportstrader/pkg/st/source"
	"github.com/komsit37/sportstrader/pkg/st/sports"
	"github.com/komsit37/sportstrader/pkg/st/theme"
	"github.com/komsit37/sportstrader/pkg/st/types"
)

// SportPicker lists the selectable sports. It loads like any screen but has no market list.
const SportPicker screen.Name = "sports"

// Number of followed markets on the home screen.
const homeFollowed = 2

// Points in the detail chart.
const chartPoints = 24

type Runner struct {
	Source   source.Source
	Renderer render.Renderer
	Writer   io.Writer
	Logger   *slog.Logger
}

type ExecuteOptions struct {
	Screen screen.Name
	// Sport is selected after loading. Empty keeps "all".
	Sport       string
	Filter      filter.Filter
	Columns     []string
	Detail      detail.Params
	Portfolio   *types.Portfolio
	Color       bool
	PrettyJSON  bool
	MaxColWidth int
	Theme       theme.Theme
}

func (r *Runner) Execute(ctx context.Context, opts ExecuteOptions) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sess := screen.NewSession(r.Source, screen.WithLogger(logger))
	defer sess.Unmount()
	st := sess.Load(ctx, screen.Initial(opts.Screen))
	if err := ctx.Err(); err != nil {
		return err
	}
	if opts.Sport != "" {
		st = screen.Reduce(st, screen.SportSelected{Sport: opts.Sport})
	}
	if st.Filters != nil && !sports.Known(st.Filters, st.SelectedSport) {
		logger.Info("sport not in filter list", "sport", st.SelectedSport)
	}

	view, err := r.view(st, opts)
	if err != nil {
		return err
	}
	return r.Renderer.Render(r.Writer, view, render.RenderOptions{
		Color:       opts.Color,
		PrettyJSON:  opts.PrettyJSON,
		MaxColWidth: opts.MaxColWidth,
		Theme:       opts.Theme,
	})
}

func (r *Runner) view(st screen.State, opts ExecuteOptions) (render.View, error) {
	cols := columns.Compute(opts.Columns)
	pf := portfolio.Sample()
	if opts.Portfolio != nil {
		pf = *opts.Portfolio
	}

	switch st.Screen {
	case screen.Home:
		all := screen.AllMarkets(st)
		sum := portfolio.Summarize(pf, all)
		followed := all
		if len(followed) > homeFollowed {
			followed = followed[:homeFollowed]
		}
		return render.View{
			Portfolio: &sum,
			Sections: []render.Section{
				{Title: "Markets you follow", Columns: cols, Markets: filter.Apply(opts.Filter, followed)},
				{Title: "Trending", Columns: cols, Markets: filter.Apply(opts.Filter, screen.VisibleMarkets(st))},
			},
		}, nil

	case screen.Markets:
		return render.View{
			Sections: []render.Section{
				{Title: marketsTitle(st.SelectedSport), Columns: cols, Markets: filter.Apply(opts.Filter, screen.VisibleMarkets(st))},
			},
		}, nil

	case screen.Portfolio:
		sum := portfolio.Summarize(pf, screen.AllMarkets(st))
		return render.View{Portfolio: &sum}, nil

	case screen.Detail:
		m, err := detail.Resolve(opts.Detail, screen.AllMarkets(st))
		if err != nil {
			return render.View{}, err
		}
		return render.View{Detail: &render.Detail{Market: m, Series: chart.Series(m, chartPoints)}}, nil

	case SportPicker:
		return render.View{Sports: &render.Sports{Options: screen.SportOptions(st), Selected: st.SelectedSport}}, nil

	default:
		return render.View{}, fmt.Errorf("unknown screen %q", st.Screen)
	}
}

func marketsTitle(sport string) string {
	if sport == "" || sport == sports.All {
		return "Markets"
	}
	return "Markets: " + sport
}
