package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pushpay/pkg/apperror"
)

// DefaultAcquireTimeout bounds how long a mutating call waits for another
// in-flight call on the same ledger.
const DefaultAcquireTimeout = 5 * time.Second

type inFlightKey struct{ g *guard }

// guard admits one mutating call per ledger at a time. The context passed
// down from an admitted call is marked, so a call that re-enters the ledger
// with it is rejected immediately instead of waiting on itself.
type guard struct {
	sem     chan struct{}
	timeout time.Duration
}

func newGuard(timeout time.Duration) *guard {
	if timeout <= 0 {
		timeout = DefaultAcquireTimeout
	}
	return &guard{sem: make(chan struct{}, 1), timeout: timeout}
}

// enter admits the caller. The returned release func must be called exactly
// once, normally via defer.
func (g *guard) enter(ctx context.Context) (context.Context, func(), error) {
	if g.held(ctx) {
		return nil, nil, apperror.ErrReentrancy()
	}

	select {
	case g.sem <- struct{}{}:
	default:
		waitCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()
		select {
		case g.sem <- struct{}{}:
		case <-waitCtx.Done():
			if errors.Is(waitCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
				// Still held after the timeout: most likely a re-entrant call
				// that dropped the in-flight context.
				return nil, nil, apperror.ErrReentrancy()
			}
			return nil, nil, fmt.Errorf("waiting for ledger: %w", ctx.Err())
		}
	}

	return context.WithValue(ctx, inFlightKey{g}, true), func() { <-g.sem }, nil
}

func (g *guard) held(ctx context.Context) bool {
	v, _ := ctx.Value(inFlightKey{g}).(bool)
	return v
}
