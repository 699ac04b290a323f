package save

import (
	"context"
	"sync"

	"github.com/ewozniak/clipvault"
	"golang.org/x/time/rate"
)

var _ clipvault.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out fetches to the same domain using token buckets,
// one limiter per domain with a burst of 1. Queue processing is sequential,
// so this only introduces pauses between consecutive same-domain items.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// per domain.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
