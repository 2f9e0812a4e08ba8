package llmgateway

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// RetryDelays is the default non-rate-limit retry ladder, per spec.md
// §4.3 / §6 (LLM_RETRY_DELAYS).
var RetryDelays = []time.Duration{3 * time.Second, 7 * time.Second, 15 * time.Second, 30 * time.Second}

// DefaultRecoveryInterval is how long the gateway waits after a rate
// limit before probing the primary model again (LLM_RECOVERY_INTERVAL_SECONDS).
const DefaultRecoveryInterval = 30 * time.Minute

// DefaultTimeout is the default per-call hard timeout (LLM_TIMEOUT_SECONDS).
const DefaultTimeout = 60 * time.Second

// Gateway is the single, process-wide point through which all LLM calls
// flow (C3). It formalizes the "process-wide LLM gateway singleton"
// pattern flagged in spec.md §9: state is advisory cache, not truth, and
// is safe to share across goroutines within one worker process.
type Gateway struct {
	primary  Provider
	fallback Provider

	recoveryInterval time.Duration
	retryDelays      []time.Duration
	timeout          time.Duration

	mu               sync.Mutex
	lastRateLimitSet bool
	lastRateLimit    time.Time
}

// Option configures a Gateway at construction time.
type Option func(*Gateway)

// WithRecoveryInterval overrides DefaultRecoveryInterval.
func WithRecoveryInterval(d time.Duration) Option {
	return func(g *Gateway) { g.recoveryInterval = d }
}

// WithRetryDelays overrides RetryDelays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(g *Gateway) { g.retryDelays = delays }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.timeout = d }
}

// New builds a Gateway over a primary and fallback Provider. Both must be
// non-nil; quality requirements are identical across models (spec.md §4.3).
func New(primary, fallback Provider, opts ...Option) *Gateway {
	g := &Gateway{
		primary:          primary,
		fallback:         fallback,
		recoveryInterval: DefaultRecoveryInterval,
		retryDelays:      RetryDelays,
		timeout:          DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// selectProvider implements the model-selection rule of spec.md §4.3:
// if last_rate_limit_time is unset, use primary; if elapsed since it is
// >= RECOVERY_INTERVAL, probe primary (caller marks recovered on
// success); else use fallback.
func (g *Gateway) selectProvider() (provider Provider, probing bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.lastRateLimitSet {
		return g.primary, false
	}
	if time.Since(g.lastRateLimit) >= g.recoveryInterval {
		return g.primary, true
	}
	return g.fallback, false
}

// markRateLimited records a rate limit observation and immediately shifts
// subsequent calls to the fallback model.
func (g *Gateway) markRateLimited(at time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastRateLimitSet = true
	g.lastRateLimit = at
}

// markRecovered clears the rate-limit marker after a successful probe of
// the primary model.
func (g *Gateway) markRecovered() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastRateLimitSet = false
}

// Complete issues one logical LLM call: it selects a model per the
// recovery policy, retries transient failures on the back-off ladder,
// and immediately fails over to the fallback model on rate limit
// detection (spec.md §4.3). A caller-supplied ctx deadline shorter than
// the gateway's configured timeout wins.
func (g *Gateway) Complete(ctx context.Context, req Request) (Response, error) {
	provider, probing := g.selectProvider()

	resp, err := g.callWithTimeout(ctx, provider, req)
	if err == nil {
		if probing {
			g.markRecovered()
			slog.Info("llmgateway: primary model recovered", "model", provider.Name())
		}
		return resp, nil
	}

	if isRateLimitError(err) {
		now := time.Now()
		g.markRateLimited(now)
		slog.Warn("llmgateway: rate limit detected, switching to fallback",
			"model", provider.Name(), "rate_limited_at", now)
		// Immediate retry on fallback, not consuming the caller's
		// back-off budget (spec.md §4.3).
		provider = g.fallback
		resp, err = g.callWithTimeout(ctx, provider, req)
		if err == nil {
			return resp, nil
		}
		if isRateLimitError(err) {
			// Fallback is also rate limited; fall through to the
			// standard retry ladder on the fallback model.
			g.markRateLimited(time.Now())
		}
	}

	return g.retryLadder(ctx, provider, req, err)
}

// retryLadder retries a non-rate-limit error up to len(retryDelays)
// additional attempts with the configured delays, per spec.md §4.3.
// firstErr is the error from the attempt already made before this call.
func (g *Gateway) retryLadder(ctx context.Context, provider Provider, req Request, firstErr error) (Response, error) {
	lastErr := firstErr
	for _, delay := range g.retryDelays {
		if lastErr != nil && isRateLimitError(lastErr) {
			g.markRateLimited(time.Now())
			provider = g.fallback
		}

		select {
		case <-ctx.Done():
			return Response{}, ctx.Err()
		case <-time.After(delay):
		}

		resp, err := g.callWithTimeout(ctx, provider, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	return Response{}, fmt.Errorf("%w: %v", ErrRetriesExhausted, lastErr)
}

func (g *Gateway) callWithTimeout(ctx context.Context, provider Provider, req Request) (Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return provider.Complete(callCtx, req)
}
