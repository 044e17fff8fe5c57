// Package theme holds the cosmetic light and dark palettes used for terminal output.
package theme

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Theme is a table style plus the colors used for semantic values.
type Theme struct {
	Name   string
	Table  table.Style
	Up     text.Colors
	Down   text.Colors
	Accent text.Colors
	Muted  text.Colors
}

// Light is tuned for light terminal backgrounds.
func Light() Theme {
	st := table.StyleLight
	st.Options.DrawBorder = false
	st.Options.SeparateRows = false
	st.Options.SeparateColumns = false
	st.Format.Header = text.FormatUpper
	return Theme{
		Name:   "light",
		Table:  st,
		Up:     text.Colors{text.FgGreen},
		Down:   text.Colors{text.FgRed},
		Accent: text.Colors{text.FgMagenta, text.Bold},
		Muted:  text.Colors{text.FgHiBlack},
	}
}

// Dark is tuned for dark terminal backgrounds.
func Dark() Theme {
	st := table.StyleColoredDark
	st.Options.DrawBorder = false
	st.Options.SeparateRows = false
	st.Options.SeparateColumns = false
	return Theme{
		Name:   "dark",
		Table:  st,
		Up:     text.Colors{text.FgHiGreen},
		Down:   text.Colors{text.FgHiRed},
		Accent: text.Colors{text.FgHiMagenta, text.Bold},
		Muted:  text.Colors{text.FgWhite},
	}
}

// Parse returns the theme with the given name.
func Parse(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark":
		return Dark(), nil
	case "light":
		return Light(), nil
	default:
		return Theme{}, &UnknownThemeError{Name: name}
	}
}

// Plain returns t without any color.
func (t Theme) Plain() Theme {
	st := table.StyleLight
	st.Options = t.Table.Options
	st.Format.Header = text.FormatUpper
	t.Table = st
	t.Up, t.Down, t.Accent, t.Muted = nil, nil, nil, nil
	return t
}

// Change colors s by the sign of v.
func (t Theme) Change(v float64, s string) string {
	switch {
	case v > 0:
		return paint(t.Up, s)
	case v < 0:
		return paint(t.Down, s)
	default:
		return s
	}
}

// Title renders a section title.
func (t Theme) Title(s string) string {
	return paint(t.Accent, s)
}

// Dim renders secondary text.
func (t Theme) Dim(s string) string {
	return paint(t.Muted, s)
}

func paint(c text.Colors, s string) string {
	if len(c) == 0 {
		return s
	}
	return c.Sprint(s)
}

// UnknownThemeError reports an unsupported theme name.
type UnknownThemeError struct {
	Name string
}

func (e *UnknownThemeError) Error() string {
	return "unknown theme: " + e.Name + "; available: light, dark"
}
