package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/microfund/go-microfund/internal/logger"
)

// clientLimiter pairs a token bucket with its last access time so idle
// entries can be evicted.
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// rateLimiter applies a per-client token bucket to the authentication
// endpoints. Clients are keyed by remote IP because signup and signin run
// before any identity is established.
type rateLimiter struct {
	ratePerMinute int
	burst         int

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh chan struct{}
}

// newRateLimiter creates a limiter allowing ratePerMinute requests per
// client with the given burst, and starts a background goroutine that
// evicts entries idle for longer than cleanupInterval.
func newRateLimiter(ratePerMinute, burst int, cleanupInterval time.Duration) *rateLimiter {
	rl := &rateLimiter{
		ratePerMinute: ratePerMinute,
		burst:         burst,
		limiters:      make(map[string]*clientLimiter),
		stopCh:        make(chan struct{}),
	}

	go rl.cleanupLoop(cleanupInterval)

	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *rateLimiter) Stop() {
	close(rl.stopCh)
}

// middleware rejects over-limit requests with HTTP 429 and a Retry-After
// header.
func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := rl.getOrCreate(clientKey(r))

		if !limiter.Allow() {
			log := logger.FromRequest(r)
			log.Warn().Str("remote_addr", r.RemoteAddr).Msg("rate limit exceeded")

			retryAfter := int(time.Minute.Seconds()) / max(rl.ratePerMinute, 1)
			w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
			writeError(w, "Too many requests, please try again later", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *rateLimiter) getOrCreate(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cl, ok := rl.limiters[key]; ok {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	limiter := rate.NewLimiter(rate.Limit(float64(rl.ratePerMinute)/60.0), rl.burst)
	rl.limiters[key] = &clientLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	return limiter
}

func (rl *rateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			rl.cleanup(interval)
		}
	}
}

func (rl *rateLimiter) cleanup(maxIdle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for key, cl := range rl.limiters {
		if cl.lastAccess.Before(cutoff) {
			delete(rl.limiters, key)
		}
	}
}

// clientKey derives the limiter key from the request's remote address,
// stripping the ephemeral port so reconnecting clients share a bucket.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
