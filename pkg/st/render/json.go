package render

import (
	"encoding/json"
	"io"

	"github.com/komsit37/sportstrader/pkg/st/types"
)

// jsonModel is the output shape for JSONRenderer.
type jsonModel struct {
	Portfolio *jsonPortfolio `json:"portfolio,omitempty"`
	Market    *jsonDetail    `json:"market,omitempty"`
	Sports    *jsonSports    `json:"sports,omitempty"`
	Sections  []jsonSection  `json:"sections,omitempty"`
}

type jsonSection struct {
	Title   string         `json:"title"`
	Columns []string       `json:"columns"`
	Markets []types.Market `json:"markets"`
}

type jsonDetail struct {
	types.Market
	Series []float64 `json:"series"`
}

type jsonSports struct {
	Options  []string `json:"options"`
	Selected string   `json:"selected"`
}

type jsonPortfolio struct {
	Cash         string         `json:"cash"`
	Value        string         `json:"value"`
	DayChange    string         `json:"dayChange"`
	DayChangePct string         `json:"dayChangePct"`
	Positions    []jsonPosition `json:"positions"`
}

type jsonPosition struct {
	MarketID    string  `json:"marketId"`
	Title       string  `json:"title,omitempty"`
	Quantity    float64 `json:"quantity"`
	AvgCost     float64 `json:"avgCost"`
	Mark        string  `json:"mark"`
	MarketValue string  `json:"marketValue"`
	PnL         string  `json:"pnl"`
}

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Render(w io.Writer, v View, opts RenderOptions) error {
	var out jsonModel
	if p := v.Portfolio; p != nil {
		jp := &jsonPortfolio{
			Cash:         p.Cash.StringFixed(2),
			Value:        p.Value.StringFixed(2),
			DayChange:    p.DayChange.StringFixed(2),
			DayChangePct: p.DayChangePct.StringFixed(2),
			Positions:    make([]jsonPosition, 0, len(p.Lines)),
		}
		for _, l := range p.Lines {
			jp.Positions = append(jp.Positions, jsonPosition{
				MarketID:    l.Position.MarketID,
				Title:       l.Market.Title,
				Quantity:    l.Position.Quantity,
				AvgCost:     l.Position.AvgCost,
				Mark:        l.Mark.StringFixed(2),
				MarketValue: l.MarketValue.StringFixed(2),
				PnL:         l.PnL.StringFixed(2),
			})
		}
		out.Portfolio = jp
	}
	if d := v.Detail; d != nil {
		out.Market = &jsonDetail{Market: d.Market, Series: d.Series}
	}
	if s := v.Sports; s != nil {
		out.Sports = &jsonSports{Options: s.Options, Selected: s.Selected}
	}
	for _, s := range v.Sections {
		markets := s.Markets
		if markets == nil {
			markets = []types.Market{}
		}
		out.Sections = append(out.Sections, jsonSection{Title: s.Title, Columns: s.Columns, Markets: markets})
	}

	enc := json.NewEncoder(w)
	if opts.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
