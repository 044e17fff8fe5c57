package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/komsit37/sportstrader/pkg/st/chart"
	"github.com/komsit37/sportstrader/pkg/st/columns"
	"github.com/komsit37/sportstrader/pkg/st/portfolio"
	"github.com/komsit37/sportstrader/pkg/st/theme"
)

type TableRenderer struct{}

func NewTableRenderer() *TableRenderer { return &TableRenderer{} }

func (r *TableRenderer) Render(w io.Writer, v View, opts RenderOptions) error {
	th := opts.Theme
	if th.Name == "" {
		th = theme.Dark()
	}
	if !opts.Color {
		th = th.Plain()
	}
	maxWidth := opts.MaxColWidth
	if maxWidth <= 0 {
		maxWidth = 40
	}

	blocks := 0
	gap := func() {
		if blocks > 0 {
			fmt.Fprintln(w)
		}
		blocks++
	}

	if v.Portfolio != nil {
		gap()
		r.portfolio(w, *v.Portfolio, th, maxWidth)
	}
	if v.Detail != nil {
		gap()
		r.detail(w, *v.Detail, th)
	}
	if v.Sports != nil {
		gap()
		r.sports(w, *v.Sports, th)
	}
	for _, s := range v.Sections {
		gap()
		r.section(w, s, th, maxWidth)
	}
	return nil
}

func (r *TableRenderer) newWriter(w io.Writer, th theme.Theme) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(th.Table)
	return tw
}

func (r *TableRenderer) section(w io.Writer, s Section, th theme.Theme, maxWidth int) {
	cols := s.Columns
	if len(cols) == 0 {
		cols = columns.Compute(nil)
	}
	if strings.TrimSpace(s.Title) != "" {
		fmt.Fprintln(w, th.Title(strings.ToUpper(s.Title)))
	}

	tw := r.newWriter(w, th)
	hdr := make(table.Row, len(cols))
	for i, c := range cols {
		hdr[i] = strings.ToUpper(c)
	}
	tw.AppendHeader(hdr)

	cfgs := make([]table.ColumnConfig, 0, len(cols))
	for i, c := range cols {
		cfg := table.ColumnConfig{Number: i + 1, WidthMax: maxWidth}
		switch c {
		case "price", "chg%", "volume":
			cfg.Align = text.AlignRight
			cfg.AlignHeader = text.AlignRight
		}
		cfgs = append(cfgs, cfg)
	}
	tw.SetColumnConfigs(cfgs)

	for _, m := range s.Markets {
		row := make(table.Row, len(cols))
		for i, c := range cols {
			val := columns.RenderValue(c, m)
			if c == "price" || c == "chg%" {
				val = th.Change(m.ChangePct, val)
			}
			row[i] = val
		}
		tw.AppendRow(row)
	}
	if len(s.Markets) == 0 {
		fmt.Fprintln(w, th.Dim("no markets"))
		return
	}
	tw.Render()
}

func (r *TableRenderer) portfolio(w io.Writer, s portfolio.Summary, th theme.Theme, maxWidth int) {
	fmt.Fprintln(w, th.Title("PORTFOLIO"))
	fmt.Fprintf(w, "%s  %s\n", Money(s.Value), th.Change(s.DayChange.InexactFloat64(),
		fmt.Sprintf("%s (%s%%)", SignedMoney(s.DayChange), signed(s.DayChangePct))))
	fmt.Fprintln(w, th.Dim("Cash "+Money(s.Cash)))
	if len(s.Lines) == 0 {
		return
	}

	tw := r.newWriter(w, th)
	tw.AppendHeader(table.Row{"MARKET", "QTY", "AVG", "MARK", "VALUE", "P&L"})
	cfgs := []table.ColumnConfig{{Number: 1, WidthMax: maxWidth}}
	for n := 2; n <= 6; n++ {
		cfgs = append(cfgs, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignHeader: text.AlignRight})
	}
	tw.SetColumnConfigs(cfgs)
	for _, l := range s.Lines {
		name := l.Market.Title
		if !l.Found {
			name = l.Position.MarketID + " " + th.Dim("(unavailable)")
		}
		tw.AppendRow(table.Row{
			name,
			columns.FormatPrice(l.Position.Quantity),
			columns.FormatPrice(l.Position.AvgCost),
			columns.FormatPrice(l.Mark.InexactFloat64()),
			Money(l.MarketValue),
			th.Change(l.PnL.InexactFloat64(), SignedMoney(l.PnL)),
		})
	}
	tw.Render()
}

func (r *TableRenderer) detail(w io.Writer, d Detail, th theme.Theme) {
	m := d.Market
	fmt.Fprintln(w, th.Title(strings.ToUpper(m.Title)))
	tw := r.newWriter(w, th)
	tw.AppendRows([]table.Row{
		{"ID", m.ID},
		{"Sport", m.Sport},
		{"Price", columns.FormatPrice(m.Price)},
		{"Change", th.Change(m.ChangePct, columns.FormatChange(m.ChangePct))},
		{"Volume", m.VolumeDisplay},
	})
	if len(d.Series) > 0 {
		tw.AppendRow(table.Row{"Chart", th.Change(m.ChangePct, chart.Sparkline(d.Series))})
	}
	tw.Render()
}

func (r *TableRenderer) sports(w io.Writer, s Sports, th theme.Theme) {
	fmt.Fprintln(w, th.Title("SPORTS"))
	for _, o := range s.Options {
		if strings.EqualFold(o, s.Selected) {
			fmt.Fprintln(w, th.Title("• "+o))
			continue
		}
		fmt.Fprintln(w, "  "+o)
	}
}

// Money formats d as US dollars with grouping, e.g. "$13,130.00".
func Money(d decimal.Decimal) string {
	return message.NewPrinter(language.AmericanEnglish).Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

// SignedMoney is Money with an explicit sign, e.g. "+$100.00" or "-$4.50".
func SignedMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + Money(d.Abs())
	}
	return "+" + Money(d)
}

func signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.StringFixed(2)
	}
	return "+" + d.StringFixed(2)
}
