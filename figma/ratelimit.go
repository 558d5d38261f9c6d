package figma

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRequestsPerMinute bounds outbound API calls per client.
const DefaultRequestsPerMinute = 15

// RateLimitError reports a request that was rejected by rate limiting,
// either locally before it was sent or upstream with HTTP 429. RetryAfter
// hints when the caller may try again; zero means no hint was available.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
	}
	return "rate limited"
}

// RateLimiter enforces a per-minute request budget. It fails fast instead of
// queuing: a caller over budget gets a *RateLimitError with the wait the
// bucket would have imposed. The underlying token bucket is safe for
// concurrent use.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perMinute requests per minute,
// with a burst of the full budget.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = DefaultRequestsPerMinute
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
	}
}

// Allow consumes one request slot, or returns a *RateLimitError without
// blocking when none is available.
func (l *RateLimiter) Allow() error {
	r := l.limiter.Reserve()
	if !r.OK() {
		return &RateLimitError{RetryAfter: time.Minute}
	}
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return &RateLimitError{RetryAfter: delay}
	}
	return nil
}
