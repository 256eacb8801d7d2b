// Package progress provides a lightweight tracker that keeps aggregated
// counters (requests total, pending, granted, pruned) for a single
// resolution run. The tracker instance lives in the run context – every
// component that receives the context can update the counters via the Delta
// helper without requiring a global registry.

package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the resolver.
// The fields are signed and therefore can be either positive (increment) or
// negative (decrement).
type Delta struct {
	Total   int
	Pending int
	Granted int
	Pruned  int
}

// Progress keeps aggregated request counters for one resolution run. It is
// safe for concurrent use.
type Progress struct {
	// Identification – informative only, filled when the run starts.
	SessionID string
	StartedAt time.Time

	// Counters – modified via Update().
	TotalRequests   int
	PendingRequests int
	GrantedCount    int
	PrunedCount     int

	sync.Mutex
	onChange func(Progress)
}

// Update applies the supplied delta to the tracker. If an onChange callback
// has been registered it is invoked with a copy of the updated tracker
// outside the critical section so that slow callbacks never block the
// resolution loop.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.Lock()
	p.TotalRequests += d.Total
	p.PendingRequests += d.Pending
	p.GrantedCount += d.Granted
	p.PrunedCount += d.Pruned
	snapshot := *p
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return *p
}

// OnChange registers a callback that is invoked after every Update. Passing
// nil disables the callback; only one callback can be active.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both.
func WithNewTracker(ctx context.Context, sessionID string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		SessionID: sessionID,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot; the boolean is false when
// the context carries no tracker.
func GetSnapshot(ctx context.Context) (Progress, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Progress{}, false
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
