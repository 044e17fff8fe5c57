package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/komsit37/sportstrader/pkg/st/types"
)

// Filter matches a market title.
type Filter interface {
	Match(title string) bool
}

// Parse builds a filter from an expression:
// - Comma-separated exact titles: "Chiefs win,Celtics win"
// - Glob: "*Super Bowl*"
// - Regex: "/^NBA/"
// - Anything else: case-insensitive substring
func Parse(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Always(true), nil
	}
	if strings.HasPrefix(expr, "/") && strings.HasSuffix(expr, "/") && len(expr) > 2 {
		re, err := regexp.Compile(expr[1 : len(expr)-1])
		if err != nil {
			return nil, fmt.Errorf("parse filter %q: %w", expr, err)
		}
		return Regex{re: re}, nil
	}
	if strings.Contains(expr, ",") {
		set := map[string]struct{}{}
		for _, p := range strings.Split(expr, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			set[p] = struct{}{}
		}
		return ExactSet{set: set}, nil
	}
	if strings.ContainsAny(expr, "*?") {
		return newGlob(expr), nil
	}
	return SubstrCI{needle: expr}, nil
}

// Apply keeps the markets whose title matches f, preserving order.
func Apply(f Filter, markets []types.Market) []types.Market {
	if f == nil {
		return markets
	}
	if a, ok := f.(Always); ok && bool(a) {
		return markets
	}
	out := make([]types.Market, 0, len(markets))
	for _, m := range markets {
		if f.Match(m.Title) {
			out = append(out, m)
		}
	}
	return out
}

type Always bool

func (a Always) Match(string) bool { return bool(a) }

type ExactSet struct{ set map[string]struct{} }

func (e ExactSet) Match(title string) bool {
	_, ok := e.set[title]
	return ok
}

// Glob matches whole titles case-insensitively. "*" and "?" also match "/", which
// titles like "KO/TKO" contain.
type Glob struct {
	pattern string
	re      *regexp.Regexp
}

func newGlob(pattern string) Glob {
	var b strings.Builder
	b.WriteString("(?is)^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return Glob{pattern: pattern, re: regexp.MustCompile(b.String())}
}

func (g Glob) Match(title string) bool { return g.re.MatchString(title) }

type Regex struct{ re *regexp.Regexp }

func (r Regex) Match(title string) bool { return r.re.MatchString(title) }

// String provides a human-readable representation useful for logs/errors.
func (g Glob) String() string  { return fmt.Sprintf("glob:%s", g.pattern) }
func (r Regex) String() string { return fmt.Sprintf("regex:%s", r.re) }

// SubstrCI matches if title contains needle, case-insensitively.
type SubstrCI struct{ needle string }

func (s SubstrCI) Match(title string) bool {
	if s.needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(s.needle))
}

func (s SubstrCI) String() string { return fmt.Sprintf("substr-ci:%s", s.needle) }
