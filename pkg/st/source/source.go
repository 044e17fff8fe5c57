package source

import (
	"context"

	"github.com/komsit37/sportstrader/pkg/st/payload"
)

// Source loads the two independent payloads a screen needs.
// Implementations return payload.Empty when a payload is not configured.
type Source interface {
	Markets(ctx context.Context) (payload.Payload, error)
	Filters(ctx context.Context) (payload.Payload, error)
}
