// Package menu drives popover presentations from trigger views.
//
// A [Controller] belongs to one trigger (a button, a long-pressed row) and
// talks to an [overlay.Host]. It remembers whether its menu is up, forwards
// the measured content size and anchor movements to the host, and closes
// other open menus when it shows, so at most one menu is visible at a time
// even across hosts.
package menu

import (
	goerrors "errors"
	"sync"

	"github.com/go-drift/popover/pkg/errors"
	"github.com/go-drift/popover/pkg/geometry"
	"github.com/go-drift/popover/pkg/overlay"
)

// errNoHost signals a controller constructed without a host.
var errNoHost = goerrors.New("controller has no host")

// controllerRegistry tracks controllers with a visible menu so a newly
// opened menu can close the others.
var controllerRegistry = struct {
	items map[*Controller]struct{}
	mu    sync.Mutex
}{
	items: make(map[*Controller]struct{}),
}

func registerController(c *Controller) {
	controllerRegistry.mu.Lock()
	controllerRegistry.items[c] = struct{}{}
	controllerRegistry.mu.Unlock()
}

func unregisterController(c *Controller) {
	controllerRegistry.mu.Lock()
	delete(controllerRegistry.items, c)
	controllerRegistry.mu.Unlock()
}

// snapshotControllers returns the currently showing controllers, minus keep.
func snapshotControllers(keep *Controller) []*Controller {
	controllerRegistry.mu.Lock()
	defer controllerRegistry.mu.Unlock()
	out := make([]*Controller, 0, len(controllerRegistry.items))
	for c := range controllerRegistry.items {
		if c != keep {
			out = append(out, c)
		}
	}
	return out
}

// CloseAll hides every currently showing menu. Call this when the user taps
// outside any trigger or navigates away.
func CloseAll() {
	for _, c := range snapshotControllers(nil) {
		c.Hide()
	}
}

// Controller drives a single trigger's popover menu.
//
// Configure the exported fields before the first Show; they are not
// synchronized afterwards.
type Controller struct {
	// Persistent prevents barrier taps from dismissing the menu.
	Persistent bool

	// OnShow is called after the menu becomes visible.
	OnShow func()

	// OnHide is called after the menu is dismissed, whatever dismissed it.
	OnHide func()

	host *overlay.Host

	mu    sync.Mutex
	entry *overlay.Entry
}

// NewController creates a Controller presenting through host.
func NewController(host *overlay.Host) *Controller {
	return &Controller{host: host}
}

// ShowFrom presents content anchored to sourceFrame, closing any other open
// menu first. Showing while already visible re-presents with the new anchor
// and content.
func (c *Controller) ShowFrom(sourceFrame geometry.Rect, content any) {
	if c.host == nil {
		errors.Report(&errors.PopoverError{Op: "menu.ShowFrom", Kind: errors.KindPresent, Err: errNoHost})
		return
	}

	for _, other := range snapshotControllers(c) {
		other.Hide()
	}

	// Present outside c.mu: replacing this controller's own entry fires its
	// OnDismiss, which takes c.mu.
	entry := c.host.Present(content, overlay.PresentOptions{
		SourceFrame: sourceFrame,
		Persistent:  c.Persistent,
		OnDismiss:   c.entryDismissed,
	})

	// A host listener may have dismissed the entry during Present. Its
	// OnDismiss already fired against an empty controller and was ignored,
	// so only a still-active entry may be tracked; storing a dead one
	// would wedge IsShowing and make Hide a permanent no-op.
	c.mu.Lock()
	shown := entry.Active()
	if shown {
		c.entry = entry
	}
	c.mu.Unlock()

	if !shown {
		return
	}
	registerController(c)
	if c.OnShow != nil {
		c.OnShow()
	}
}

// Toggle shows the menu if hidden and hides it if visible.
func (c *Controller) Toggle(sourceFrame geometry.Rect, content any) {
	if c.IsShowing() {
		c.Hide()
		return
	}
	c.ShowFrom(sourceFrame, content)
}

// Hide dismisses the menu. Safe to call when not showing.
func (c *Controller) Hide() {
	c.mu.Lock()
	entry := c.entry
	c.mu.Unlock()
	if entry != nil {
		entry.Dismiss()
	}
}

// IsShowing reports whether this controller's menu is visible.
func (c *Controller) IsShowing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entry != nil
}

// SetContentSize forwards the measured content size to the host while the
// menu is visible. The presenting component calls this after layout and on
// every re-measure.
func (c *Controller) SetContentSize(size geometry.Size) {
	if c.IsShowing() {
		c.host.SetContentSize(size)
	}
}

// SetSourceFrame forwards an anchor frame change to the host while the menu
// is visible, for triggers that move under the open menu.
func (c *Controller) SetSourceFrame(frame geometry.Rect) {
	if c.IsShowing() {
		c.host.SetSourceFrame(frame)
	}
}

// entryDismissed clears tracking when our entry leaves the host.
func (c *Controller) entryDismissed(entry *overlay.Entry) {
	c.mu.Lock()
	if c.entry != entry {
		c.mu.Unlock()
		return
	}
	c.entry = nil
	c.mu.Unlock()

	unregisterController(c)
	if c.OnHide != nil {
		c.OnHide()
	}
}
