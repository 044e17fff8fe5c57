package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/komsit37/sportstrader/pkg/st/payload"
)

func TestHTTPSourceMarkets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("requests must be unauthenticated")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"markets":[{"ticker":"BTC"},{"ticker":"ETH"}]}`))
	}))
	defer server.Close()

	src := NewHTTPSource(server.URL, server.URL)
	p, err := src.Markets(context.Background())
	if err != nil {
		t.Fatalf("Markets failed: %v", err)
	}
	recs := payload.Records(p)
	if len(recs) != 2 || recs[1]["ticker"] != "ETH" {
		t.Errorf("records = %v", recs)
	}
}

func TestHTTPSourceMarketsDisabled(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	src := NewHTTPSource("", server.URL)
	p, err := src.Markets(context.Background())
	if err != nil {
		t.Fatalf("Markets failed: %v", err)
	}
	if _, ok := p.(payload.Empty); !ok {
		t.Errorf("payload = %T, want Empty", p)
	}
	if calls.Load() != 0 {
		t.Errorf("calls = %d, want 0", calls.Load())
	}
}

func TestHTTPSourceFiltersDefaultURL(t *testing.T) {
	src := NewHTTPSource("", "")
	if src.filtersURL != DefaultFiltersURL {
		t.Errorf("filtersURL = %q, want %q", src.filtersURL, DefaultFiltersURL)
	}
}

func TestHTTPSourceFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/filters" {
			t.Errorf("path = %s, want /filters", r.URL.Path)
		}
		w.Write([]byte(`{"filters_by_sports":{"All sports":{},"Football":{},"MMA":{}}}`))
	}))
	defer server.Close()

	src := NewHTTPSource("", server.URL+"/filters")
	p, err := src.Filters(context.Background())
	if err != nil {
		t.Fatalf("Filters failed: %v", err)
	}
	cfg := payload.Config(p)
	if cfg == nil || len(cfg.Sports) != 3 || cfg.Sports[2].Name != "MMA" {
		t.Errorf("config = %+v", cfg)
	}
}

func TestHTTPSourceErrors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := NewHTTPSource(server.URL, "").Markets(context.Background())
		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("err = %v, want *StatusError", err)
		}
		if se.StatusCode != http.StatusBadGateway {
			t.Errorf("StatusCode = %d", se.StatusCode)
		}
	})

	t.Run("shape", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":"nope"}`))
		}))
		defer server.Close()

		_, err := NewHTTPSource(server.URL, "").Markets(context.Background())
		if !errors.Is(err, payload.ErrUnexpectedShape) {
			t.Errorf("err = %v, want ErrUnexpectedShape", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"filters_by_sports":`))
		}))
		defer server.Close()

		_, err := NewHTTPSource("", server.URL).Filters(context.Background())
		if !errors.Is(err, payload.ErrMalformed) {
			t.Errorf("err = %v, want ErrMalformed", err)
		}
	})

	t.Run("transport", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		if _, err := NewHTTPSource(url, "").Markets(context.Background()); err == nil {
			t.Error("expected transport error")
		}
	})

	t.Run("canceled", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewHTTPSource(server.URL, "").Markets(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	})
}
