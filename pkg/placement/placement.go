// Package placement computes where an anchored overlay goes and whether it
// fits.
//
// The engine is a pair of pure functions. [Place] maps an anchor frame, an
// overlay size, and container bounds to the overlay's center point. [Overflow]
// reports whether the overlay exceeds the bounds on either axis. Both accept
// any geometry, never fail, and keep no state; identical arguments always
// produce identical results, so calls need no coordination across goroutines.
//
// The anchor frame and the bounds must share one coordinate space. The engine
// assumes this and does not verify it.
package placement

import (
	"github.com/go-drift/popover/pkg/errors"
	"github.com/go-drift/popover/pkg/geometry"
)

// DefaultMargin is the horizontal clearance, in pixels, reserved when the
// overlay snaps to the trailing edge of the bounds. It is shared between
// placement and overflow checks.
const DefaultMargin = 10.0

// Report describes which axes an overlay overflows its bounds on.
// Overflow is advisory: the engine still returns a placement point, and
// consumers decide whether to cap, scroll, or ignore.
type Report struct {
	// Horizontal is true when the overlay width plus margin clearance on
	// both sides exceeds the bounds width.
	Horizontal bool
	// Vertical is true when the overlay height exceeds the bounds height.
	Vertical bool
}

// Any returns true if either axis overflows.
func (r Report) Any() bool {
	return r.Horizontal || r.Vertical
}

// Place computes the overlay center point using [DefaultMargin].
// See [PlaceWithMargin].
func Place(source geometry.Rect, overlay geometry.Size, bounds geometry.Rect) geometry.Offset {
	return PlaceWithMargin(source, overlay, bounds, DefaultMargin)
}

// PlaceWithMargin computes the center point for an overlay of the given size
// anchored to source, keeping the overlay inside bounds on a best-effort
// basis.
//
// Vertically the overlay prefers to open below the anchor, hanging from the
// anchor's top edge. If it cannot end above the bounds' bottom it opens
// upward instead, ending at the anchor's bottom edge. If neither fits, its
// top is pinned to the bounds' top and the bottom may overflow; a pinned
// position beats one that jumps around as sizes change.
//
// Horizontally the overlay's leading edge always aligns with the anchor's
// leading edge and the overlay grows rightward. Only when that would cross
// the trailing edge (less margin) does it snap left until its right edge
// sits margin pixels inside the bounds. Anchoring to the leading edge keeps
// the overlay visually attached to its trigger on any container width.
//
// A zero overlay size, as supplied before the first content measurement, is
// valid input and yields the anchor-aligned point for a zero-size box.
//
// When the overlay cannot fit the bounds on some axis, the condition is
// reported through [errors.ReportLayout]; the returned point is not affected.
func PlaceWithMargin(source geometry.Rect, overlay geometry.Size, bounds geometry.Rect, margin float64) geometry.Offset {
	var center geometry.Offset

	switch {
	case source.Top+overlay.Height <= bounds.Bottom:
		// Opens below, hanging from the anchor's top edge.
		center.Y = source.Top + overlay.Height/2
	case overlay.Height <= source.Bottom-bounds.Top:
		// Opens upward, ending at the anchor's bottom edge. Room is
		// measured from the anchor's bottom edge, not its top.
		center.Y = source.Bottom - overlay.Height/2
	default:
		center.Y = bounds.Top + overlay.Height/2
	}

	if source.Left+overlay.Width+margin <= bounds.Right {
		center.X = source.Left + overlay.Width/2
	} else {
		center.X = bounds.Right - overlay.Width/2 - margin
	}

	reportOverflow("placement.PlaceWithMargin", overlay, bounds, margin)

	return center
}

// Overflow reports overflow using [DefaultMargin].
// See [OverflowWithMargin].
func Overflow(overlay geometry.Size, bounds geometry.Rect) Report {
	return OverflowWithMargin(overlay, bounds, DefaultMargin)
}

// OverflowWithMargin reports whether an overlay of the given size fits the
// bounds. The margin is doubled on the horizontal check because clearance is
// reserved on both sides; no margin applies vertically. Exact fit is not
// overflow.
func OverflowWithMargin(overlay geometry.Size, bounds geometry.Rect, margin float64) Report {
	return Report{
		Horizontal: overlay.Width+2*margin > bounds.Width(),
		Vertical:   overlay.Height > bounds.Height(),
	}
}

// reportOverflow emits advisory diagnostics for each overflowing axis.
func reportOverflow(op string, overlay geometry.Size, bounds geometry.Rect, margin float64) {
	report := OverflowWithMargin(overlay, bounds, margin)
	if report.Horizontal {
		errors.ReportLayout(&errors.LayoutWarning{
			Op:        op,
			Axis:      errors.AxisHorizontal,
			Required:  overlay.Width + 2*margin,
			Available: bounds.Width(),
			Margin:    margin,
		})
	}
	if report.Vertical {
		errors.ReportLayout(&errors.LayoutWarning{
			Op:        op,
			Axis:      errors.AxisVertical,
			Required:  overlay.Height,
			Available: bounds.Height(),
		})
	}
}
