package payload

import (
	"errors"
	"testing"
)

func TestDecodeMarkets(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
		wantErr error
	}{
		{"top-level array", `[{"id":"a"},{"id":"b"}]`, 2, nil},
		{"markets field", `{"markets":[{"id":"a"}],"cursor":"x"}`, 1, nil},
		{"empty array", `[]`, 0, nil},
		{"non-object elements", `[1,"x",null,{"id":"a"}]`, 4, nil},
		{"object without markets", `{"data":[]}`, 0, ErrUnexpectedShape},
		{"markets not array", `{"markets":{"id":"a"}}`, 0, ErrUnexpectedShape},
		{"scalar", `42`, 0, ErrUnexpectedShape},
		{"malformed", `[{"id":`, 0, ErrMalformed},
		{"empty body", ``, 0, ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodeMarkets([]byte(tt.body))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			list, ok := p.(MarketList)
			if !ok {
				t.Fatalf("payload = %T, want MarketList", p)
			}
			if len(list.Records) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(list.Records), tt.wantLen)
			}
		})
	}
}

func TestDecodeMarketsRecordValues(t *testing.T) {
	p, err := DecodeMarkets([]byte(`[{"ticker":"BTC","last_price":42000,"tags":["x"]},7]`))
	if err != nil {
		t.Fatal(err)
	}
	recs := Records(p)
	if recs[0]["ticker"] != "BTC" {
		t.Errorf("ticker = %v", recs[0]["ticker"])
	}
	if recs[0]["last_price"] != 42000.0 {
		t.Errorf("last_price = %v (%T)", recs[0]["last_price"], recs[0]["last_price"])
	}
	if len(recs[1]) != 0 {
		t.Errorf("non-object element decoded to %v, want empty record", recs[1])
	}
}

func TestDecodeFilterConfigKeepsOrder(t *testing.T) {
	body := `{"filters_by_sports":{"All sports":{},"Football":{"leagues":["NFL"]},"MMA":{},"Basketball":{}}}`
	p, err := DecodeFilterConfig([]byte(body))
	if err != nil {
		t.Fatal(err)
	}
	cfg := Config(p)
	if cfg == nil {
		t.Fatalf("payload = %T, want FilterConfig", p)
	}
	want := []string{"All sports", "Football", "MMA", "Basketball"}
	if len(cfg.Sports) != len(want) {
		t.Fatalf("sports = %v", cfg.Sports)
	}
	for i, s := range cfg.Sports {
		if s.Name != want[i] {
			t.Errorf("sports[%d] = %q, want %q", i, s.Name, want[i])
		}
	}
	if string(cfg.Sports[1].Rules) != `{"leagues":["NFL"]}` {
		t.Errorf("rules = %s", cfg.Sports[1].Rules)
	}
}

func TestDecodeFilterConfigShapes(t *testing.T) {
	p, err := DecodeFilterConfig([]byte(`{"other":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg := Config(p); cfg == nil || len(cfg.Sports) != 0 {
		t.Errorf("config = %+v, want empty FilterConfig", cfg)
	}

	p, err = DecodeFilterConfig([]byte(`{"filters_by_sports":["Football"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg := Config(p); cfg == nil || len(cfg.Sports) != 0 {
		t.Errorf("config = %+v, want empty FilterConfig", cfg)
	}

	if _, err := DecodeFilterConfig([]byte(`[]`)); !errors.Is(err, ErrUnexpectedShape) {
		t.Errorf("err = %v, want ErrUnexpectedShape", err)
	}
	if _, err := DecodeFilterConfig([]byte(`{`)); !errors.Is(err, ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed", err)
	}
}

func TestAccessorsOnOtherKinds(t *testing.T) {
	if Records(Empty{}) != nil {
		t.Error("Records(Empty) should be nil")
	}
	if Config(MarketList{}) != nil {
		t.Error("Config(MarketList) should be nil")
	}
	if Records(nil) != nil || Config(nil) != nil {
		t.Error("accessors should tolerate nil payloads")
	}
}
