package filter

import (
	"testing"

	"github.com/komsit37/sportstrader/pkg/st/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		expr  string
		title string
		want  bool
	}{
		{"", "anything", true},
		{"chiefs", "Chiefs win the Super Bowl", true},
		{"celtics", "Chiefs win the Super Bowl", false},
		{"*Super Bowl", "Chiefs win the Super Bowl", true},
		{"Chiefs?win*", "Chiefs win the Super Bowl", true},
		{"chiefs*", "Chiefs win the Super Bowl", true},
		{"*KO/TKO", "Main event ends by KO/TKO", true},
		{"*(KO)*", "Main event ends by KO/TKO", false},
		{"/^NBA/", "NBA: Celtics", true},
		{"/^NBA/", "WNBA: Liberty", false},
		{"Bitcoin, Ether", "Ether", true},
		{"Bitcoin, Ether", "ether", false},
	}
	for _, tt := range tests {
		t.Run(tt.expr+"|"+tt.title, func(t *testing.T) {
			f, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.expr, err)
			}
			if got := f.Match(tt.title); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestParseBadRegex(t *testing.T) {
	if _, err := Parse("/([/"); err == nil {
		t.Error("expected error for invalid regex")
	}
}

func TestApply(t *testing.T) {
	ms := []types.Market{{ID: "1", Title: "Chiefs win"}, {ID: "2", Title: "Celtics win"}, {ID: "3", Title: "chiefs cover"}}
	f, _ := Parse("chiefs")
	got := Apply(f, ms)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("Apply() = %+v", got)
	}
	if all := Apply(nil, ms); len(all) != 3 {
		t.Errorf("Apply(nil) = %+v", all)
	}
}
