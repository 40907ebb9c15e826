package ports

import "context"

// ListingCache caches serialised listing result pages. It is purely an
// optimisation: implementations swallow backend errors and report misses,
// and every caller must work with a nil cache.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
	// Invalidate drops all cached pages; called after any listing mutation.
	Invalidate(ctx context.Context)
}
