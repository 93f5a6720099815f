// SPDX-License-Identifier: Unlicense OR MIT

/*
Package slide implements a drag-to-dismiss behavior for a single UI
element, the slider.

The user drags the slider towards an edge of its container to hide
it. On release the slider either animates out of view or snaps back,
and listeners receive the completion percent along the way, for
example to fade a backdrop.

The package does not draw anything. The host toolkit supplies the
slider geometry through Layout, forwards pointer events to Event, and
calls Tick with the frame time for as long as it reports an animation
in progress. The slider moves the element through its View.

A Slider is not safe for concurrent use; it is meant to be driven
from the goroutine that handles input and frames.
*/
package slide

import (
	"time"

	"github.com/chewxy/math32"

	"gioui.org/x/slide/f32"
	"gioui.org/x/slide/gesture"
	"gioui.org/x/slide/io/event"
	"gioui.org/x/slide/io/pointer"
	"gioui.org/x/slide/unit"
)

// View is the element moved by a Slider.
type View interface {
	// SetTranslation moves the element by off relative to its laid
	// out position.
	SetTranslation(off f32.Point)
	// Click performs the element's default click action.
	Click()
}

// SoftInput controls the soft keyboard of the host.
type SoftInput interface {
	HideSoftInput()
	ShowSoftInput()
}

// Geometry describes the laid out slider. All rectangles are in the
// coordinate space of pointer event positions.
type Geometry struct {
	// Bounds of the slider, without translation.
	Bounds f32.Rectangle
	// Container is the bounds of the slider's container.
	Container f32.Rectangle
	// Metric converts dp values such as the touch slop to pixels.
	Metric unit.Metric
}

// Slider adds drag-to-dismiss behavior to a View.
type Slider struct {
	cfg  Config
	view View
	soft SoftInput
	n    notifier

	geo  Geometry
	disp *gesture.Dispatcher
	// pending is the state to apply once the slider is laid out.
	pending State
	offset  f32.Point
	// last is the direction that last moved the slider.
	last gesture.Direction
	// pressed and pid identify the pointer that owns the gesture.
	pressed bool
	pid     pointer.ID
	// clickable is cleared for gestures that started during an
	// animation.
	clickable bool
}

// New returns a Slider for v. The slider does not handle gestures
// until its geometry is known through Layout.
func New(cfg Config, v View) *Slider {
	s := &Slider{cfg: cfg, view: v, pending: cfg.startState}
	s.n = notifier{s: s, state: Shown}
	for _, l := range cfg.listeners {
		s.n.add(l)
	}
	s.last, _ = cfg.directions.Primary()
	return s
}

// Config returns the configuration of s.
func (s *Slider) Config() Config {
	return s.cfg
}

// SetConfig replaces the configuration of s. Running animations stop,
// the current state is kept, and slide lengths are computed again on
// the next Layout. Listeners registered on s are kept.
func (s *Slider) SetConfig(cfg Config) {
	if s.disp != nil {
		s.disp.Stop()
		s.disp = nil
	}
	s.pressed = false
	s.clickable = false
	s.pending = s.n.state
	s.cfg = cfg
	if !cfg.directions.Has(s.last) {
		s.last, _ = cfg.directions.Primary()
	}
}

// SetSoftInput sets the keyboard hidden when the slider is hidden
// and shown again when it is shown, if HideKeyboard is configured.
func (s *Slider) SetSoftInput(si SoftInput) {
	s.soft = si
}

// AddListener registers l.
func (s *Slider) AddListener(l *Listener) {
	s.n.add(l)
}

// RemoveListener unregisters l.
func (s *Slider) RemoveListener(l *Listener) {
	s.n.remove(l)
}

// Layout records the slider geometry and computes the slide length of
// every enabled direction. Only the first call after New or SetConfig
// has an effect.
func (s *Slider) Layout(g Geometry) {
	if s.disp != nil {
		return
	}
	s.geo = g
	p := gesture.Params{
		AutoComplete: s.cfg.autoComplete,
		Slop:         g.Metric.DpF(s.cfg.touchSlop),
		Duration:     s.cfg.duration,
		Curve:        s.cfg.curve,
		Logger:       s.cfg.Logger(),
	}
	s.disp = gesture.NewDispatcher(s.cfg.directions, p, s.length, &s.n)
	s.cfg.Logger().Debug("slide layout", "bounds", g.Bounds, "container", g.Container, "directions", s.cfg.directions)
	switch s.pending {
	case Hidden:
		s.HideImmediately()
	case Shown:
		s.ShowImmediately()
	}
}

// length resolves the slide target of d against the current geometry.
func (s *Slider) length(d gesture.Direction) float32 {
	b, c := s.geo.Bounds, s.geo.Container
	var l float32
	switch s.cfg.target {
	case TargetSelf:
		if d.Axis() == gesture.AxisY {
			l = b.Dy()
		} else {
			l = b.Dx()
		}
	case TargetParent:
		switch d {
		case gesture.Up:
			l = b.Min.Y - c.Min.Y
		case gesture.Down:
			l = c.Max.Y - b.Max.Y
		case gesture.Left:
			l = b.Min.X - c.Min.X
		case gesture.Right:
			l = c.Max.X - b.Max.X
		}
	case TargetSpecify:
		l = s.cfg.length
	}
	return math32.Max(l, 0)
}

// Length returns the slide length of d, or zero before Layout.
func (s *Slider) Length(d gesture.Direction) float32 {
	if s.disp == nil {
		return 0
	}
	return s.disp.Consumer(d).Length()
}

// Event handles an input event and reports whether it was consumed.
// Unconsumed events may be handled by outer widgets such as
// scrollable containers. A tap is reported to the View as a click.
func (s *Slider) Event(e event.Event) bool {
	pe, ok := e.(pointer.Event)
	if !ok {
		return false
	}
	if !s.cfg.gestures {
		if pe.Kind == pointer.Release {
			s.view.Click()
		}
		return true
	}
	if s.disp == nil {
		if pe.Kind == pointer.Release {
			s.view.Click()
		}
		return false
	}
	switch pe.Kind {
	case pointer.Press:
		if s.pressed && pe.PointerID != s.pid {
			return false
		}
		if pe.Source == pointer.Mouse && !pe.Buttons.Contain(pointer.ButtonPrimary) {
			return false
		}
		s.pressed = true
		s.pid = pe.PointerID
		s.clickable = !s.disp.Animating()
		if s.clickable && !s.touchable(pe.Position) {
			return false
		}
	case pointer.Release, pointer.Cancel:
		if !s.pressed || pe.PointerID != s.pid {
			return false
		}
		consumed := s.disp.Event(pe, s.offset)
		if pe.Kind == pointer.Release && !consumed && s.clickable {
			s.view.Click()
		}
		s.pressed = false
		s.clickable = false
		return consumed
	}
	return s.disp.Event(pe, s.offset)
}

// touchable reports whether a press at pos may start a slide.
func (s *Slider) touchable(pos f32.Point) bool {
	if s.cfg.touchableArea == 0 {
		return true
	}
	r := s.geo.Bounds.Add(s.offset)
	if !r.Contains(pos) {
		return false
	}
	area := s.geo.Metric.DpF(s.cfg.touchableArea)
	for _, d := range s.cfg.directions.Slice() {
		// Distance from the edge that trails when moving towards d.
		var dist float32
		switch d {
		case gesture.Up:
			dist = r.Max.Y - pos.Y
		case gesture.Down:
			dist = pos.Y - r.Min.Y
		case gesture.Left:
			dist = r.Max.X - pos.X
		case gesture.Right:
			dist = pos.X - r.Min.X
		}
		if dist <= area {
			return true
		}
	}
	return false
}

// Tick advances a running animation to now. It reports whether
// another frame is needed.
func (s *Slider) Tick(now time.Time) bool {
	if s.disp == nil {
		return false
	}
	return s.disp.Tick(now)
}

// Animating reports whether a slide animation is in progress.
func (s *Slider) Animating() bool {
	return s.disp != nil && s.disp.Animating()
}

// GestureState reports the state of the current gesture.
func (s *Slider) GestureState() gesture.State {
	if s.disp == nil {
		return gesture.StateIdle
	}
	return s.disp.State()
}

// Offset returns the current translation of the slider.
func (s *Slider) Offset() f32.Point {
	return s.offset
}

func (s *Slider) setOffset(d gesture.Direction, v float32) {
	if d.Axis() == gesture.AxisY {
		s.offset.Y = v
	} else {
		s.offset.X = v
	}
	s.last = d
	s.view.SetTranslation(s.offset)
	for _, v := range s.cfg.also {
		v.SetTranslation(s.offset)
	}
}

// State returns the derived visibility state.
func (s *Slider) State() State {
	return s.n.state
}

// Visible reports whether the slider is shown.
func (s *Slider) Visible() bool {
	return s.n.state == Shown
}

// Show animates the slider into view.
func (s *Slider) Show() {
	s.show(false)
}

// Hide animates the slider out of view.
func (s *Slider) Hide() {
	s.hide(false)
}

// ShowImmediately shows the slider without animation.
func (s *Slider) ShowImmediately() {
	s.show(true)
}

// HideImmediately hides the slider without animation.
func (s *Slider) HideImmediately() {
	s.hide(true)
}

// Toggle shows a hidden slider and hides a shown one, with
// animation.
func (s *Slider) Toggle() {
	if s.Visible() {
		s.Hide()
	} else {
		s.Show()
	}
}

// ToggleImmediately is like Toggle without animation.
func (s *Slider) ToggleImmediately() {
	if s.Visible() {
		s.HideImmediately()
	} else {
		s.ShowImmediately()
	}
}

func (s *Slider) show(immediately bool) {
	if s.disp == nil {
		s.pending = Shown
		return
	}
	// Return along the direction the slider last moved in.
	d := s.last
	if immediately {
		s.disp.Jump(d, 0)
		return
	}
	s.disp.Animate(d, d.Axis().Component(s.offset), 0, false)
}

func (s *Slider) hide(immediately bool) {
	if s.disp == nil {
		s.pending = Hidden
		return
	}
	d := s.last
	to := d.Sign() * s.disp.Consumer(d).Length()
	if immediately {
		s.disp.Jump(d, to)
		return
	}
	s.disp.Animate(d, d.Axis().Component(s.offset), to, true)
}
