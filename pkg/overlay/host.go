package overlay

import (
	"sync"

	"github.com/go-drift/popover/pkg/errors"
	"github.com/go-drift/popover/pkg/geometry"
	"github.com/go-drift/popover/pkg/placement"
)

// PresentOptions configures [Host.Present].
type PresentOptions struct {
	// SourceFrame is the triggering view's frame in the same coordinate
	// space as the host's bounds.
	SourceFrame geometry.Rect

	// Persistent prevents barrier taps from dismissing the presentation.
	// The barrier still absorbs the tap.
	Persistent bool

	// OnDismiss is called once when the presentation ends, regardless of
	// what ended it. It receives the dismissed entry.
	OnDismiss func(*Entry)
}

// Placement is the host's resolved layout for the active presentation.
type Placement struct {
	// Center is where the embedding UI layer should center the overlay.
	Center geometry.Offset

	// Size is the overlay size to render. It equals the measured content
	// size except that a content taller than the bounds is capped to the
	// bounds height.
	Size geometry.Size

	// ScrollEnabled is true when the content was taller than the bounds,
	// so the overlay should scroll internally.
	ScrollEnabled bool

	// Report is the overflow report for the measured (uncapped) size.
	Report placement.Report
}

// Host owns the single active overlay presentation.
//
// Overlays are conceptually application-wide, so an application typically
// creates one Host near its root and passes it down explicitly. The zero
// value is not usable; call [NewHost].
//
// All methods are safe for concurrent use. Trigger callbacks, layout
// callbacks, and platform inset events may land on different goroutines.
type Host struct {
	mu             sync.RWMutex
	bounds         geometry.Rect
	insets         geometry.EdgeInsets
	margin         float64
	current        *Entry
	listeners      map[int]func()
	nextListenerID int
}

// NewHost creates a Host with no active presentation and the default
// horizontal margin.
func NewHost() *Host {
	return &Host{
		margin:    placement.DefaultMargin,
		listeners: make(map[int]func()),
	}
}

// Present makes content the active presentation, replacing any current one.
// The replaced presentation's OnDismiss fires before listeners are notified.
//
// The returned Entry dismisses the presentation via [Entry.Dismiss].
func (h *Host) Present(content any, opts PresentOptions) *Entry {
	entry := newEntry(content)
	entry.Persistent = opts.Persistent
	entry.OnDismiss = opts.OnDismiss
	entry.sourceFrame = opts.SourceFrame

	h.mu.Lock()
	replaced := h.current
	if replaced != nil {
		replaced.host.Store(nil)
	}
	h.current = entry
	entry.host.Store(h)
	h.mu.Unlock()

	if replaced != nil && replaced.OnDismiss != nil {
		replaced.OnDismiss(replaced)
	}
	h.notifyListeners()
	return entry
}

// Dismiss removes the active presentation, if any.
func (h *Host) Dismiss() {
	h.mu.RLock()
	entry := h.current
	h.mu.RUnlock()
	if entry != nil {
		h.dismissEntry(entry)
	}
}

// HandleBarrierTap processes a tap on the barrier behind the overlay.
// It dismisses the active presentation unless it is persistent. The tap is
// absorbed either way; it never reaches the content behind the barrier.
func (h *Host) HandleBarrierTap() {
	h.mu.RLock()
	entry := h.current
	h.mu.RUnlock()
	if entry == nil || entry.Persistent {
		return
	}
	h.dismissEntry(entry)
}

// Current returns the active entry, if any.
func (h *Host) Current() (*Entry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current, h.current != nil
}

// SetBounds updates the container bounds. The embedding UI layer calls this
// on every viewport change (rotation, window resize, multitasking).
func (h *Host) SetBounds(bounds geometry.Rect) {
	h.mu.Lock()
	changed := h.bounds != bounds
	h.bounds = bounds
	h.mu.Unlock()
	if changed {
		h.notifyListeners()
	}
}

// SetSafeAreaInsets updates the safe-area insets deducted from the bounds.
func (h *Host) SetSafeAreaInsets(insets geometry.EdgeInsets) {
	h.mu.Lock()
	changed := h.insets != insets
	h.insets = insets
	h.mu.Unlock()
	if changed {
		h.notifyListeners()
	}
}

// SetMargin updates the horizontal margin used by placement.
func (h *Host) SetMargin(margin float64) {
	h.mu.Lock()
	changed := h.margin != margin
	h.margin = margin
	h.mu.Unlock()
	if changed {
		h.notifyListeners()
	}
}

// SetContentSize records the measured size of the active overlay's content.
// Called by the presenting component once content has been laid out, and
// again whenever the measurement changes. A no-op without an active
// presentation.
func (h *Host) SetContentSize(size geometry.Size) {
	h.mu.Lock()
	if h.current == nil || h.current.contentSize == size {
		h.mu.Unlock()
		return
	}
	h.current.contentSize = size
	h.mu.Unlock()
	h.notifyListeners()
}

// SetSourceFrame updates the active presentation's anchor frame, for anchors
// that move while the overlay is up. A no-op without an active presentation.
func (h *Host) SetSourceFrame(frame geometry.Rect) {
	h.mu.Lock()
	if h.current == nil || h.current.sourceFrame == frame {
		h.mu.Unlock()
		return
	}
	h.current.sourceFrame = frame
	h.mu.Unlock()
	h.notifyListeners()
}

// ContentBounds returns the container bounds with safe-area insets applied.
// This is the rectangle placement keeps the overlay within.
func (h *Host) ContentBounds() geometry.Rect {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.insets.Deflate(h.bounds)
}

// Placement resolves the active presentation's layout. The second return is
// false when nothing is presented.
//
// A content taller than the bounds is capped to the bounds height with
// ScrollEnabled set, and placement runs against the capped size so the
// overlay lands fully inside the vertical range.
func (h *Host) Placement() (Placement, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.current == nil {
		return Placement{}, false
	}

	bounds := h.insets.Deflate(h.bounds)
	measured := h.current.contentSize
	report := placement.OverflowWithMargin(measured, bounds, h.margin)

	effective := measured
	if report.Vertical {
		effective.Height = bounds.Height()
	}

	center := placement.PlaceWithMargin(h.current.sourceFrame, effective, bounds, h.margin)
	return Placement{
		Center:        center,
		Size:          effective,
		ScrollEnabled: report.Vertical,
		Report:        report,
	}, true
}

// AddListener registers a callback invoked after every change that can
// affect placement or presentation state. Returns a function that removes
// the listener.
func (h *Host) AddListener(listener func()) func() {
	h.mu.Lock()
	id := h.nextListenerID
	h.nextListenerID++
	h.listeners[id] = listener
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

// dismissEntry removes entry if it is still the active presentation.
func (h *Host) dismissEntry(entry *Entry) {
	h.mu.Lock()
	if h.current != entry {
		h.mu.Unlock()
		return
	}
	h.current = nil
	entry.host.Store(nil)
	h.mu.Unlock()

	if entry.OnDismiss != nil {
		entry.OnDismiss(entry)
	}
	h.notifyListeners()
}

// notifyListeners invokes listeners outside the lock. A panicking listener
// is reported and does not stop the others.
func (h *Host) notifyListeners() {
	h.mu.RLock()
	listeners := make([]func(), 0, len(h.listeners))
	for _, l := range h.listeners {
		listeners = append(listeners, l)
	}
	h.mu.RUnlock()

	for _, l := range listeners {
		func() {
			defer errors.Recover("overlay.notifyListeners")
			l()
		}()
	}
}
