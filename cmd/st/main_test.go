package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const board = `
markets:
  - ticker: KC
    name: Chiefs win
    last_price: 42
    change_pct: 3.4
    volume: 1250000
    sport: Football
  - ticker: UFC1
    question: Main event ends by KO
    category: MMA
    price: "57"
filters_by_sports:
  All sports: {}
  Football: {}
  MMA: {}
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte(board), 0o644); err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append([]string{"--file", path, "--no-color", "--max-col-width", "80"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestMarketsCommand(t *testing.T) {
	out, _, err := execute(t, "markets", "--sport", "mma")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Main event ends by KO") || strings.Contains(out, "Chiefs win") {
		t.Errorf("output:\n%s", out)
	}
}

func TestMarketsCommandIDs(t *testing.T) {
	out, _, err := execute(t, "--format", "ids", "markets")
	if err != nil {
		t.Fatal(err)
	}
	if out != "KC,UFC1\n" {
		t.Errorf("got %q", out)
	}
}

func TestSportsCommand(t *testing.T) {
	out, _, err := execute(t, "sports")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"• all", "  Football", "  MMA"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "All sports") {
		t.Errorf("sentinel leaked:\n%s", out)
	}
}

func TestMarketCommand(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "market", "KC", "--price", "0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"id":"KC"`) || !strings.Contains(out, `"price":0`) || !strings.Contains(out, `"volumeDisplay":"$1,250k Vol."`) {
		t.Errorf("got %s", out)
	}

	if _, _, err := execute(t, "market", "nope"); err == nil {
		t.Error("expected error for unknown market without title")
	}
}

func TestPortfolioCommand(t *testing.T) {
	out, _, err := execute(t, "portfolio")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "PORTFOLIO") || !strings.Contains(out, "(unavailable)") {
		t.Errorf("output:\n%s", out)
	}
}

func TestInvalidFlags(t *testing.T) {
	for name, args := range map[string][]string{
		"format":     {"--format", "csv", "markets"},
		"column":     {"--columns", "bogus", "markets"},
		"column set": {"--column-sets", "bogus", "markets"},
		"theme":      {"--theme", "neon", "markets"},
		"match":      {"markets", "--match", "/([/"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, _, err := execute(t, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
