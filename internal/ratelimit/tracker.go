// Package ratelimit implements process-local tracking of the API's
// X-RateLimit-* response headers and cooperative pre-request gating. The
// server is the source of truth for quotas; the tracker only smooths out
// obviously-exhausted bursts by pausing before spending a request that would
// certainly be rejected.
package ratelimit

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/fivetwenty-io/vercel-client/internal/constants"
)

// State is the most recently observed rate-limit window.
type State struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// Exceeded reports whether the window's quota is spent. The server may report
// a negative remaining count, so this is a <= 0 check.
func (s State) Exceeded() bool {
	return s.Remaining <= 0
}

// TimeUntilReset returns the duration until the window resets, clamped to 0
// when the reset time has already passed.
func (s State) TimeUntilReset(now time.Time) time.Duration {
	duration := s.Reset.Sub(now)
	if duration < 0 {
		return 0
	}

	return duration
}

// Tracker holds the last observed rate-limit state for one client instance.
// Reads and writes are serialized, but distinct requests are not serialized
// against each other: two concurrent callers can both observe remaining > 0,
// both proceed, and both be rejected by the server. That race is accepted;
// the tracker is a best-effort throttle, not admission control.
type Tracker struct {
	mu    sync.Mutex
	state State
	known bool

	// now and after are swappable for tests.
	now   func() time.Time
	after func(d time.Duration) <-chan time.Time
}

// NewTracker creates an empty tracker; state is unknown until the first
// response carrying all three rate-limit headers arrives.
func NewTracker() *Tracker {
	return &Tracker{
		now:   time.Now,
		after: time.After,
	}
}

// Update replaces the stored state from response headers. The replacement is
// all-or-nothing: if any of the three headers is missing or unparsable the
// call is a no-op and the last known state is kept, since the server is
// allowed to omit them on some responses.
func (t *Tracker) Update(header http.Header) {
	limitStr := header.Get(constants.HeaderRateLimitLimit)
	remainingStr := header.Get(constants.HeaderRateLimitRemaining)
	resetStr := header.Get(constants.HeaderRateLimitReset)

	if limitStr == "" || remainingStr == "" || resetStr == "" {
		return
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return
	}

	remaining, err := strconv.Atoi(remainingStr)
	if err != nil {
		return
	}

	resetUnix, err := strconv.ParseInt(resetStr, 10, 64)
	if err != nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = State{
		Limit:     limit,
		Remaining: remaining,
		Reset:     time.Unix(resetUnix, 0),
	}
	t.known = true
}

// State returns the stored state. The second return is false until the first
// successful Update.
func (t *Tracker) State() (State, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state, t.known
}

// Wait blocks until the rate-limit window resets if the tracker knows the
// quota is exhausted. It returns immediately when no state is stored, the
// quota has headroom, or the reset time has passed. The wait is single-shot:
// it does not re-check after waking, since the next real response refreshes
// the state.
//
// Returns an error only if the context is cancelled while waiting.
func (t *Tracker) Wait(ctx context.Context) error {
	t.mu.Lock()

	if !t.known || !t.state.Exceeded() {
		t.mu.Unlock()

		return nil
	}

	sleep := t.state.TimeUntilReset(t.now())
	t.mu.Unlock()

	if sleep <= 0 {
		return nil
	}

	select {
	case <-t.after(sleep):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
