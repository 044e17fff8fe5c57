package columns

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/komsit37/sportstrader/pkg/st/types"
)

// Resolver converts a market into the display value of one column.
type Resolver func(m types.Market) string

// Registry maps column keys to resolvers.
var Registry = map[string]Resolver{}

func init() {
	Registry["id"] = func(m types.Market) string { return m.ID }
	Registry["title"] = func(m types.Market) string { return m.Title }
	Registry["sport"] = func(m types.Market) string { return m.Sport }
	Registry["price"] = func(m types.Market) string { return FormatPrice(m.Price) }
	Registry["chg%"] = func(m types.Market) string { return FormatChange(m.ChangePct) }
	Registry["volume"] = func(m types.Market) string { return m.VolumeDisplay }
}

// Compute determines the final column order: explicit columns as given (deduplicated),
// otherwise the default set.
func Compute(explicit []string) []string {
	if len(explicit) == 0 {
		return append([]string(nil), Sets["default"]...)
	}
	seen := map[string]struct{}{}
	out := make([]string, 0, len(explicit))
	for _, k := range explicit {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Validate reports the first column that has no resolver.
func Validate(cols []string) error {
	for _, c := range cols {
		if _, ok := Registry[c]; !ok {
			return &UnknownColumnError{Name: c, Available: Available()}
		}
	}
	return nil
}

// Available returns the registered column keys, sorted.
func Available() []string {
	keys := make([]string, 0, len(Registry))
	for k := range Registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RenderValue calls the resolver for the given column.
func RenderValue(col string, m types.Market) string {
	if r, ok := Registry[col]; ok {
		return r(m)
	}
	return ""
}

// FormatPrice prints a price with two decimals and en-US grouping.
func FormatPrice(v float64) string {
	return message.NewPrinter(language.AmericanEnglish).Sprintf("%.2f", v)
}

// FormatChange prints a signed percentage, e.g. "+3.40%".
func FormatChange(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// UnknownColumnError reports a column name with no resolver.
type UnknownColumnError struct {
	Name      string
	Available []string
}

func (e *UnknownColumnError) Error() string {
	return "unknown column: " + e.Name + "; available: " + strings.Join(e.Available, ", ")
}
