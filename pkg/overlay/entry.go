// Package overlay provides the presentation host for a single floating
// overlay anchored to a triggering view.
//
// A [Host] owns at most one active presentation at a time, tracks the
// container bounds and safe-area insets it was given, and recomputes the
// overlay's placement through the placement engine on every change. The
// host never measures anything itself; frames, bounds, insets, and the
// overlay's content size all arrive from the embedding UI layer.
package overlay

import (
	"sync/atomic"

	"github.com/go-drift/popover/pkg/geometry"
)

// nextEntryID is an atomic counter for unique entry IDs.
var nextEntryID uint64

// Entry is the handle for one active presentation. It is returned by
// [Host.Present] and stays valid after dismissal; all methods on a
// dismissed entry are safe no-ops.
type Entry struct {
	// Content is the opaque content value the embedding UI layer renders.
	// The host never inspects it.
	Content any

	// Persistent prevents barrier taps from dismissing this entry.
	// The barrier still absorbs the tap either way.
	Persistent bool

	// OnDismiss is called once when the entry leaves the host, whether
	// through Dismiss, a barrier tap, or replacement by a newer
	// presentation. It receives the dismissed entry so a handler shared
	// across presentations can tell them apart.
	OnDismiss func(*Entry)

	// internal - host is set on Present and cleared on dismissal; the
	// geometry fields are guarded by the owning host's mutex
	host        atomic.Pointer[Host]
	sourceFrame geometry.Rect
	contentSize geometry.Size
	id          uint64
}

// newEntry creates an Entry with a unique ID.
func newEntry(content any) *Entry {
	e := &Entry{Content: content}
	e.id = atomic.AddUint64(&nextEntryID, 1)
	return e
}

// ID returns the entry's unique identifier, usable as a stable key by the
// embedding UI layer.
func (e *Entry) ID() uint64 {
	return e.id
}

// Active reports whether the entry is still presented by its host.
func (e *Entry) Active() bool {
	h := e.host.Load()
	if h == nil {
		return false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current == e
}

// Dismiss removes this entry from its host.
// Safe to call if never presented or already dismissed (no-op).
func (e *Entry) Dismiss() {
	h := e.host.Load()
	if h == nil {
		return
	}
	h.dismissEntry(e)
}
