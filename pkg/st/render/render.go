package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/komsit37/sportstrader/pkg/st/portfolio"
	"github.com/komsit37/sportstrader/pkg/st/theme"
	"github.com/komsit37/sportstrader/pkg/st/types"
)

// Renderer renders a screen view to an output writer.
type Renderer interface {
	Render(w io.Writer, v View, opts RenderOptions) error
}

// View is everything a screen shows. Nil or empty parts are skipped.
type View struct {
	Portfolio *portfolio.Summary
	Detail    *Detail
	Sports    *Sports
	Sections  []Section
}

// Section is a titled list of markets.
type Section struct {
	Title   string
	Columns []string
	Markets []types.Market
}

// Detail is a single market with its price history.
type Detail struct {
	Market types.Market
	Series []float64
}

// Sports is the sport picker: every option and the current selection.
type Sports struct {
	Options  []string
	Selected string
}

type RenderOptions struct {
	Color       bool
	PrettyJSON  bool
	MaxColWidth int
	Theme       theme.Theme
}

// ForFormat returns the renderer for a --format value.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "table":
		return NewTableRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "ids":
		return NewIDsRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown format %q: expected table, json or ids", format)
	}
}
