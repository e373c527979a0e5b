package dedupe

import (
	"context"
	"log/slog"
	"time"

	"membership-backoffice/internal/pkg/clock"
	"membership-backoffice/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

// ErrDuplicateRequest is returned when an identical key was accepted within
// the debounce window. Callers should treat it as "already being handled",
// not as a failure of the underlying operation.
var ErrDuplicateRequest = errs.New("duplicate request")

// DebounceStore remembers when a key was last accepted, with TTL semantics
// so the in-memory default can be swapped for a shared store (e.g. Redis)
// when running more than one instance.
type DebounceStore interface {
	LastAccepted(ctx context.Context, key string) (time.Time, bool, error)
	MarkAccepted(ctx context.Context, key string, at time.Time, ttl time.Duration) error
}

type Windows struct {
	// Debounce rejects identical keys arriving within this interval.
	Debounce time.Duration
	// DebounceTTL bounds how long last-accepted marks are kept.
	DebounceTTL time.Duration
}

func DefaultWindows() Windows {
	return Windows{
		Debounce:    2 * time.Second,
		DebounceTTL: 10 * time.Second,
	}
}

// Suppressor funnels requests sharing a key into at most one in-flight
// operation per process and rejects rapid re-submits of a settled one.
// It offers no cross-process guarantee unless backed by a shared
// DebounceStore, and even then coalescing stays process-local.
type Suppressor struct {
	store DebounceStore
	clock clock.Clock
	win   Windows
	group singleflight.Group
}

func NewSuppressor(store DebounceStore, clk clock.Clock, win Windows) *Suppressor {
	return &Suppressor{
		store: store,
		clock: clk,
		win:   win,
	}
}

// Submit runs op under key. Concurrent submissions for the same key attach
// to the in-flight run and receive its result; attaching wins over the
// debounce reject so a simultaneous burst yields one execution and
// identical results. Once the run settles it is no longer attachable:
// a re-submit within the debounce window of the last accepted run is
// rejected with ErrDuplicateRequest.
func (s *Suppressor) Submit(ctx context.Context, key string, op func(ctx context.Context) (any, error)) (any, error) {
	ch := s.group.DoChan(key, func() (any, error) {
		now := s.clock.Now()
		if last, ok, err := s.store.LastAccepted(ctx, key); err != nil {
			slog.Warn("debounce store read failed", "key", key, "error", err.Error())
		} else if ok && now.Sub(last) < s.win.Debounce {
			// Rejections do not refresh the mark: the window runs from
			// the last accepted submission.
			return nil, ErrDuplicateRequest
		}
		if err := s.store.MarkAccepted(ctx, key, now, s.win.DebounceTTL); err != nil {
			slog.Warn("debounce store write failed", "key", key, "error", err.Error())
		}
		return op(ctx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
