package query

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultDebounce = 300 * time.Millisecond

// SearchFunc runs a search for a term against the backing store or gateway.
type SearchFunc func(ctx context.Context, term string) ([]any, error)

// Debouncer collapses bursts of search calls into a single invocation once
// the input has been quiet for the configured delay. Only the most recent
// term is searched.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Search schedules fn(term) after the quiet period, replacing any pending
// schedule. Results are handed to deliver; a failing fn degrades to an empty
// result set instead of propagating.
func (d *Debouncer) Search(ctx context.Context, term string, fn SearchFunc, deliver func([]any)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		results, err := fn(ctx, term)
		if err != nil {
			zap.S().Debugw("search failed", "term", term, "error", err)
			results = []any{}
		}
		deliver(results)
	})
}

// Cancel drops any pending search without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
