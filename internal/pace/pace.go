package pace

import (
	"context"
	"fmt"
	"time"
)

// Sleeper blocks for a courtesy delay between upstream requests.
// It is injected into the pipeline so runs can be tested without wall-clock waits.
type Sleeper func(ctx context.Context, d time.Duration) error

// Wait is the production Sleeper: it blocks for d or until the context is
// cancelled, whichever comes first.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("pacing wait: %w", ctx.Err())
	case <-time.After(d):
		return nil
	}
}

// None returns immediately without waiting.
func None(_ context.Context, _ time.Duration) error {
	return nil
}
