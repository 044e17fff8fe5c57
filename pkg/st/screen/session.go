package screen

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/komsit37/sportstrader/pkg/st/payload"
	"github.com/komsit37/sportstrader/pkg/st/source"
)

// Session runs the fetches of one mounted screen.
type Session struct {
	src    source.Source
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for failed fetches.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session reading from src.
func NewSession(src source.Source, opts ...SessionOption) *Session {
	s := &Session{src: src, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount starts the markets and filters fetches and returns their events.
// The channel is closed once both fetches have finished. Mounting again cancels the previous mount.
// Results that arrive after cancellation are dropped without an event or a log entry.
func (s *Session) Mount(ctx context.Context) <-chan Event {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	events := make(chan Event, 2)
	go func() {
		defer close(events)
		var wg conc.WaitGroup
		wg.Go(func() { s.fetch(ctx, events, KindMarkets, s.src.Markets) })
		wg.Go(func() { s.fetch(ctx, events, KindFilters, s.src.Filters) })
		wg.Wait()
	}()
	return events
}

// Unmount cancels in-flight fetches.
func (s *Session) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Load mounts, applies every resulting event to st and returns the final state.
func (s *Session) Load(ctx context.Context, st State) State {
	for e := range s.Mount(ctx) {
		st = Reduce(st, e)
	}
	return st
}

func (s *Session) fetch(ctx context.Context, events chan<- Event, kind Kind, fn func(context.Context) (payload.Payload, error)) {
	p, err := fn(ctx)
	if errors.Is(ctx.Err(), context.Canceled) {
		return
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.logger.Warn("fetch failed", "kind", string(kind), "err", err)
		events <- FetchFailed{Kind: kind, Err: err}
		return
	}
	switch v := p.(type) {
	case payload.MarketList:
		events <- MarketsLoaded{Records: v.Records}
	case payload.FilterConfig:
		cfg := v.Config
		events <- FiltersLoaded{Config: &cfg}
	}
}
