// Package sports derives selectable sports and narrows markets by sport.
package sports

import (
	"strings"

	"github.com/komsit37/sportstrader/pkg/st/types"
)

const (
	// All selects every market.
	All = "all"
	// Sentinel is the filter-config key that stands for "no specific sport".
	Sentinel = "All sports"
)

// ExtractSports returns the distinct sport names of cfg in source order, without the sentinel.
func ExtractSports(cfg *types.FilterConfig) []string {
	out := []string{}
	if cfg == nil {
		return out
	}
	seen := map[string]struct{}{}
	for _, s := range cfg.Sports {
		if s.Name == Sentinel {
			continue
		}
		if _, ok := seen[s.Name]; ok {
			continue
		}
		seen[s.Name] = struct{}{}
		out = append(out, s.Name)
	}
	return out
}

// FilterBySport keeps markets whose sport equals selected, ignoring case.
// Selecting All returns markets unchanged.
func FilterBySport(markets []types.Market, selected string) []types.Market {
	if selected == All {
		return markets
	}
	out := make([]types.Market, 0, len(markets))
	for _, m := range markets {
		if m.Sport == "" {
			continue
		}
		if strings.EqualFold(m.Sport, selected) {
			out = append(out, m)
		}
	}
	return out
}

// Options returns the selectable values for a sport picker: All followed by the extracted sports.
func Options(cfg *types.FilterConfig) []string {
	return append([]string{All}, ExtractSports(cfg)...)
}

// Known reports whether selected is one of the options derived from cfg, ignoring case.
func Known(cfg *types.FilterConfig, selected string) bool {
	for _, o := range Options(cfg) {
		if strings.EqualFold(o, selected) {
			return true
		}
	}
	return false
}
