// Package transition maps show/hide progress to the overlay's visual state.
//
// The package owns no clock. The embedding UI layer drives progress from
// whatever animation facility it has (a ticker, a display link, a test
// loop) and reads back opacity and scale per frame. This keeps the mapping
// deterministic and testable.
package transition

import "github.com/go-drift/popover/pkg/geometry"

// Phase represents the current state of a transition.
//
// The phase follows this state machine:
//
//	              BeginShow()
//	Hidden ──────────────────────► Shown
//	   ▲                             │
//	   │          BeginHide()        │
//	   └─────────────────────────────┘
//
// While animating, phase is PhaseShowing or PhaseHiding. When settled,
// phase is PhaseHidden (progress 0) or PhaseShown (progress 1).
type Phase int

const (
	// PhaseHidden means the overlay is fully off screen.
	PhaseHidden Phase = iota
	// PhaseShowing means the overlay is animating in.
	PhaseShowing
	// PhaseHiding means the overlay is animating out.
	PhaseHiding
	// PhaseShown means the overlay is fully visible.
	PhaseShown
)

func (p Phase) String() string {
	switch p {
	case PhaseShowing:
		return "showing"
	case PhaseHiding:
		return "hiding"
	case PhaseShown:
		return "shown"
	default:
		return "hidden"
	}
}

// Frame is the visual state for one animation frame.
type Frame struct {
	// Opacity is the overlay opacity (0-1).
	Opacity float64
	// Scale is the overlay scale factor around [Origin].
	Scale float64
}

// Transition tracks one overlay's show/hide animation state.
// The zero value is a hidden transition with default easing and scale.
type Transition struct {
	// Curve transforms linear progress. Nil means [PopCurve].
	Curve func(float64) float64

	// InitialScale is the scale at progress 0. Zero means 0.9.
	InitialScale float64

	phase    Phase
	progress float64
}

// Phase returns the current phase.
func (tr *Transition) Phase() Phase {
	return tr.phase
}

// Progress returns the raw (uneased) progress toward shown, in [0, 1].
func (tr *Transition) Progress() float64 {
	return tr.progress
}

// BeginShow starts animating toward shown. Starting from a partially hidden
// state continues from the current progress rather than jumping to zero.
func (tr *Transition) BeginShow() {
	if tr.phase == PhaseShown {
		return
	}
	tr.phase = PhaseShowing
	tr.settle()
}

// BeginHide starts animating toward hidden.
func (tr *Transition) BeginHide() {
	if tr.phase == PhaseHidden {
		return
	}
	tr.phase = PhaseHiding
	tr.settle()
}

// SetProgress records the externally driven progress toward shown, clamped
// to [0, 1]. Reaching an endpoint settles the phase.
func (tr *Transition) SetProgress(t float64) {
	tr.progress = clampUnit(t)
	tr.settle()
}

// settle collapses animating phases that reached their endpoint.
func (tr *Transition) settle() {
	switch {
	case tr.phase == PhaseShowing && tr.progress >= 1:
		tr.phase = PhaseShown
	case tr.phase == PhaseHiding && tr.progress <= 0:
		tr.phase = PhaseHidden
	}
}

// Frame returns the visual state at the current progress.
func (tr *Transition) Frame() Frame {
	curve := tr.Curve
	if curve == nil {
		curve = PopCurve
	}
	initial := tr.InitialScale
	if initial == 0 {
		initial = 0.9
	}

	eased := curve(tr.progress)
	return Frame{
		Opacity: eased,
		Scale:   initial + (1-initial)*eased,
	}
}

// Origin returns the transform origin for the scale animation: the anchor's
// center expressed as a fraction of the overlay rect, clamped to [0, 1] on
// each axis. Growing out of the trigger keeps the overlay visually attached
// to it during the animation.
func Origin(center geometry.Offset, size geometry.Size, anchor geometry.Rect) geometry.Offset {
	if size.Width <= 0 || size.Height <= 0 {
		return geometry.Offset{X: 0.5, Y: 0.5}
	}
	left := center.X - size.Width/2
	top := center.Y - size.Height/2
	anchorCenter := anchor.Center()
	return geometry.Offset{
		X: clampUnit((anchorCenter.X - left) / size.Width),
		Y: clampUnit((anchorCenter.Y - top) / size.Height),
	}
}
