package shared

import (
	"context"
	"time"
)

// StoreContext bounds a single store call. A non-positive timeout only adds
// cancellation.
func StoreContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
