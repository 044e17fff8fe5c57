package render

import (
	"fmt"
	"io"
	"strings"
)

// idsRenderer prints every market id in a single comma-separated line.
type idsRenderer struct{}

func NewIDsRenderer() Renderer {
	return idsRenderer{}
}

func (idsRenderer) Render(w io.Writer, v View, _ RenderOptions) error {
	ids := make([]string, 0)
	seen := map[string]struct{}{}
	add := func(id string) {
		id = strings.TrimSpace(id)
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if v.Detail != nil {
		add(v.Detail.Market.ID)
	}
	if v.Portfolio != nil {
		for _, l := range v.Portfolio.Lines {
			add(l.Position.MarketID)
		}
	}
	for _, s := range v.Sections {
		for _, m := range s.Markets {
			add(m.ID)
		}
	}
	_, err := fmt.Fprintln(w, strings.Join(ids, ","))
	return err
}
