package columns

import (
	"errors"
	"reflect"
	"testing"

	"github.com/komsit37/sportstrader/pkg/st/types"
)

func TestCompute(t *testing.T) {
	if got := Compute(nil); !reflect.DeepEqual(got, Sets["default"]) {
		t.Errorf("Compute(nil) = %v", got)
	}
	got := Compute([]string{"price", " title", "price", ""})
	if want := []string{"price", "title"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Compute() = %v, want %v", got, want)
	}
	got[0] = "mutated"
	if Sets["default"][0] == "mutated" {
		t.Error("Compute(nil) returned the shared default set")
	}
}

func TestExpandSets(t *testing.T) {
	got, err := ExpandSets([]string{"price", "all"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"price", "chg%", "id", "title", "sport", "volume"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandSets() = %v, want %v", got, want)
	}

	_, err = ExpandSets([]string{"nope"})
	var use *UnknownSetError
	if !errors.As(err, &use) || use.Name != "nope" {
		t.Errorf("err = %v, want UnknownSetError", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Sets["all"]); err != nil {
		t.Errorf("Validate(all) = %v", err)
	}
	var uce *UnknownColumnError
	if err := Validate([]string{"title", "pe"}); !errors.As(err, &uce) || uce.Name != "pe" {
		t.Errorf("err = %v, want UnknownColumnError for pe", err)
	}
}

func TestRenderValue(t *testing.T) {
	m := types.Market{ID: "BTC", Title: "Bitcoin", VolumeDisplay: "$5k Vol.", Price: 42000, ChangePct: -1.25, Sport: "Crypto"}
	tests := map[string]string{
		"id":      "BTC",
		"title":   "Bitcoin",
		"sport":   "Crypto",
		"price":   "42,000.00",
		"chg%":    "-1.25%",
		"volume":  "$5k Vol.",
		"unknown": "",
	}
	for col, want := range tests {
		if got := RenderValue(col, m); got != want {
			t.Errorf("RenderValue(%q) = %q, want %q", col, got, want)
		}
	}
	if got := FormatChange(3.4); got != "+3.40%" {
		t.Errorf("FormatChange(3.4) = %q", got)
	}
}
