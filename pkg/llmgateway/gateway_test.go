package llmgateway

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name  string
	calls int32
	fn    func(call int32) (Response, error)
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Complete(ctx context.Context, req Request) (Response, error) {
	call := atomic.AddInt32(&f.calls, 1)
	return f.fn(call)
}

func TestGatewayUsesPrimaryByDefault(t *testing.T) {
	primary := &fakeProvider{name: "primary", fn: func(int32) (Response, error) {
		return Response{Text: "ok", Model: "primary"}, nil
	}}
	fallback := &fakeProvider{name: "fallback", fn: func(int32) (Response, error) {
		return Response{}, errors.New("should not be called")
	}}

	gw := New(primary, fallback)
	resp, err := gw.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "primary", resp.Model)
	assert.EqualValues(t, 0, fallback.calls)
}

func TestGatewaySwitchesToFallbackOnRateLimit(t *testing.T) {
	primary := &fakeProvider{name: "primary", fn: func(int32) (Response, error) {
		return Response{}, errors.New("429 Too Many Requests")
	}}
	fallback := &fakeProvider{name: "fallback", fn: func(int32) (Response, error) {
		return Response{Text: "ok", Model: "fallback"}, nil
	}}

	gw := New(primary, fallback, WithRetryDelays(nil))
	resp, err := gw.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "fallback", resp.Model)
	assert.EqualValues(t, 1, primary.calls)
}

func TestGatewayStaysOnFallbackWithinRecoveryWindow(t *testing.T) {
	primary := &fakeProvider{name: "primary", fn: func(int32) (Response, error) {
		return Response{}, errors.New("rate limit exceeded")
	}}
	fallback := &fakeProvider{name: "fallback", fn: func(int32) (Response, error) {
		return Response{Text: "ok", Model: "fallback"}, nil
	}}

	gw := New(primary, fallback, WithRecoveryInterval(30*time.Minute), WithRetryDelays(nil))

	// First call trips the rate limit marker and falls back.
	_, err := gw.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, primary.calls)

	// Second call, still within the recovery window, should go straight
	// to fallback without touching primary again.
	_, err = gw.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, primary.calls, "primary should not be probed again inside the recovery window")
	assert.EqualValues(t, 2, fallback.calls)
}

func TestGatewayProbesPrimaryAfterRecoveryInterval(t *testing.T) {
	primary := &fakeProvider{name: "primary", fn: func(int32) (Response, error) {
		return Response{Text: "recovered", Model: "primary"}, nil
	}}
	fallback := &fakeProvider{name: "fallback"}

	gw := New(primary, fallback, WithRecoveryInterval(1*time.Millisecond), WithRetryDelays(nil))
	gw.markRateLimited(time.Now().Add(-1 * time.Hour))

	resp, err := gw.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "primary", resp.Model)

	gw.mu.Lock()
	stillSet := gw.lastRateLimitSet
	gw.mu.Unlock()
	assert.False(t, stillSet, "successful probe should clear the rate limit marker")
}

func TestGatewayRetriesNonRateLimitErrorsThenFails(t *testing.T) {
	primary := &fakeProvider{name: "primary", fn: func(call int32) (Response, error) {
		return Response{}, errors.New("upstream 500")
	}}
	fallback := &fakeProvider{name: "fallback"}

	gw := New(primary, fallback, WithRetryDelays([]time.Duration{time.Millisecond, time.Millisecond}))
	_, err := gw.Complete(context.Background(), Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.EqualValues(t, 3, primary.calls, "initial attempt plus 2 retries")
}

func TestGatewayRetrySucceedsPartway(t *testing.T) {
	primary := &fakeProvider{name: "primary", fn: func(call int32) (Response, error) {
		if call < 3 {
			return Response{}, errors.New("temporary glitch")
		}
		return Response{Text: "ok", Model: "primary"}, nil
	}}
	fallback := &fakeProvider{name: "fallback"}

	gw := New(primary, fallback, WithRetryDelays([]time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}))
	resp, err := gw.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
}
