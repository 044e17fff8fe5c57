package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/komsit37/sportstrader/pkg/st/columns"
	"github.com/komsit37/sportstrader/pkg/st/config"
	"github.com/komsit37/sportstrader/pkg/st/detail"
	"github.com/komsit37/sportstrader/pkg/st/filter"
	"github.com/komsit37/sportstrader/pkg/st/pipeline"
	"github.com/komsit37/sportstrader/pkg/st/render"
	"github.com/komsit37/sportstrader/pkg/st/screen"
	"github.com/komsit37/sportstrader/pkg/st/source"
)

type app struct {
	v       *viper.Viper
	cfgPath string
	pretty  bool
	out     io.Writer
	errOut  io.Writer

	cfg    config.Config
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: config.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:          "st",
		Short:        "Browse sports prediction markets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (yaml)")
	pf.String(config.KeyMarketsURL, "", "markets endpoint; empty skips the markets fetch (env ST_MARKETS_URL)")
	pf.String(config.KeyFiltersURL, source.DefaultFiltersURL, "filters endpoint (env ST_FILTERS_URL)")
	pf.String(config.KeyTheme, "dark", "color theme: light or dark (env ST_THEME)")
	pf.String(config.KeyLogLevel, "warn", "log level: debug, info, warn or error (env ST_LOG_LEVEL)")
	pf.Duration(config.KeyTimeout, 0, "request timeout; 0 means none (env ST_TIMEOUT)")
	pf.String(config.KeyFormat, "table", "output format: table, json or ids")
	pf.StringSlice(config.KeyColumns, nil, "columns to show: "+joinAvailable())
	pf.StringSlice(config.KeyColumnSets, nil, "column sets to show: default, price, all")
	pf.Int(config.KeyMaxColWidth, 0, "max column width; 0 sizes from the terminal")
	pf.Bool(config.KeyNoColor, false, "disable colors")
	pf.String(config.KeyFile, "", "read markets and filters from a local yaml/json file or directory")
	pf.BoolVar(&a.pretty, "pretty", false, "indent json output")
	for _, key := range []string{
		config.KeyMarketsURL, config.KeyFiltersURL, config.KeyTheme, config.KeyLogLevel,
		config.KeyTimeout, config.KeyFormat, config.KeyColumns, config.KeyColumnSets,
		config.KeyMaxColWidth, config.KeyNoColor, config.KeyFile,
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		a.homeCmd(),
		a.marketsCmd(),
		a.portfolioCmd(),
		a.marketCmd(),
		a.sportsCmd(),
	)
	return root
}

func (a *app) setup() error {
	if err := config.ReadFile(a.v, a.cfgPath); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return nil
}

func (a *app) homeCmd() *cobra.Command {
	var match string
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Portfolio snapshot, followed markets and trending markets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.Parse(match)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), pipeline.ExecuteOptions{Screen: screen.Home, Filter: f})
		},
	}
	cmd.Flags().StringVar(&match, "match", "", "title filter: a,b (exact), glob, /regex/ or substring")
	return cmd
}

func (a *app) marketsCmd() *cobra.Command {
	var sport, match string
	cmd := &cobra.Command{
		Use:   "markets",
		Short: "List markets, optionally narrowed to one sport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.Parse(match)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), pipeline.ExecuteOptions{Screen: screen.Markets, Sport: sport, Filter: f})
		},
	}
	cmd.Flags().StringVar(&sport, "sport", "", `sport to show; "all" shows every market`)
	cmd.Flags().StringVar(&match, "match", "", "title filter: a,b (exact), glob, /regex/ or substring")
	return cmd
}

func (a *app) portfolioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio",
		Short: "Show positions and total value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), pipeline.ExecuteOptions{Screen: screen.Portfolio})
		},
	}
}

func (a *app) marketCmd() *cobra.Command {
	var (
		p             detail.Params
		price, change float64
	)
	cmd := &cobra.Command{
		Use:   "market <id>",
		Short: "Show one market with its price chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.ID = args[0]
			if cmd.Flags().Changed("price") {
				p.Price = &price
			}
			if cmd.Flags().Changed("change") {
				p.ChangePct = &change
			}
			return a.run(cmd.Context(), pipeline.ExecuteOptions{Screen: screen.Detail, Detail: p})
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&p.Title, "title", "", "title; required when the id is not among the loaded markets")
	fl.StringVar(&p.Sport, "sport", "", "sport override")
	fl.StringVar(&p.VolumeDisplay, "volume", "", "volume label override")
	fl.Float64Var(&price, "price", 0, "price override")
	fl.Float64Var(&change, "change", 0, "change percentage override")
	return cmd
}

func (a *app) sportsCmd() *cobra.Command {
	var sport string
	cmd := &cobra.Command{
		Use:   "sports",
		Short: "List the selectable sports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), pipeline.ExecuteOptions{Screen: pipeline.SportPicker, Sport: sport})
		},
	}
	cmd.Flags().StringVar(&sport, "sport", "", "sport to mark as selected")
	return cmd
}

func (a *app) run(ctx context.Context, opts pipeline.ExecuteOptions) error {
	cols, err := a.columns()
	if err != nil {
		return err
	}
	r, err := render.ForFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	opts.Columns = cols
	opts.Color = !a.cfg.NoColor
	opts.PrettyJSON = a.pretty
	opts.MaxColWidth = a.maxColWidth()
	opts.Theme = a.cfg.Theme

	runner := &pipeline.Runner{
		Source:   a.source(),
		Renderer: r,
		Writer:   a.out,
		Logger:   a.logger,
	}
	return runner.Execute(ctx, opts)
}

func (a *app) source() source.Source {
	if a.cfg.File != "" {
		return source.FileSource{Path: a.cfg.File}
	}
	return source.NewHTTPSource(a.cfg.MarketsURL, a.cfg.FiltersURL,
		source.WithTimeout(a.cfg.Timeout),
		source.WithLogger(a.logger),
	)
}

// columns expands --column-sets, then appends --columns.
func (a *app) columns() ([]string, error) {
	cols, err := columns.ExpandSets(a.cfg.ColumnSets)
	if err != nil {
		return nil, err
	}
	cols = columns.Compute(append(cols, a.cfg.Columns...))
	if err := columns.Validate(cols); err != nil {
		return nil, err
	}
	return cols, nil
}

func (a *app) maxColWidth() int {
	if a.cfg.MaxColWidth > 0 {
		return a.cfg.MaxColWidth
	}
	// Leave room for the numeric columns next to the title.
	if w := detectTerminalWidth(); w > 0 {
		return clamp(w/2, 16, 60)
	}
	return 40
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func joinAvailable() string {
	return strings.Join(columns.Available(), ", ")
}
