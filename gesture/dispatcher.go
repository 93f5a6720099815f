// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"fmt"
	"log/slog"
	"time"

	"gioui.org/x/slide/f32"
	"gioui.org/x/slide/io/pointer"
)

// Dispatcher routes the pointer events of one slider to the Consumer
// of each enabled direction. The first consumer to accept a move wins
// the gesture and receives every later event of it; the others are
// not consulted again until the next press.
type Dispatcher struct {
	enabled   Directions
	consumers [numDirections]*Consumer
	log       *slog.Logger

	pressed bool
	pid     pointer.ID
	// refused is set for gestures that start while an animation
	// runs.
	refused bool
	// active is the index of the winning consumer, or -1.
	active int
}

// NewDispatcher returns a dispatcher for the enabled directions. The
// slide length of each direction is given by length; the other fields
// of p are shared by all consumers.
func NewDispatcher(enabled Directions, p Params, length func(Direction) float32, sink Sink) *Dispatcher {
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	d := &Dispatcher{enabled: enabled, log: p.Logger, active: -1}
	for _, dir := range enabled.Slice() {
		cp := p
		cp.Length = length(dir)
		c := NewConsumer(dir, cp, sink)
		c.preempt = d.preempt
		d.consumers[dir] = c
	}
	return d
}

// Enabled returns the enabled directions.
func (d *Dispatcher) Enabled() Directions {
	return d.enabled
}

// Consumer returns the consumer for dir. It panics if dir is not
// enabled.
func (d *Dispatcher) Consumer(dir Direction) *Consumer {
	if !d.enabled.Has(dir) {
		panic(fmt.Sprintf("gesture: direction %v is not enabled (enabled: %v)", dir, d.enabled))
	}
	return d.consumers[dir]
}

// Winner returns the direction that won the current gesture, if any.
func (d *Dispatcher) Winner() (Direction, bool) {
	if d.active < 0 {
		return 0, false
	}
	return Direction(d.active), true
}

// Event handles a pointer event for a slider currently translated by
// offset, and reports whether the event was consumed. Unconsumed
// events are left to outer handlers such as scrollable containers, and
// an unconsumed Release is a tap.
func (d *Dispatcher) Event(e pointer.Event, offset f32.Point) bool {
	switch e.Kind {
	case pointer.Press:
		if d.pressed && e.PointerID != d.pid {
			return false
		}
		d.pressed = true
		d.pid = e.PointerID
		d.active = -1
		d.refused = d.Animating()
		if d.refused {
			d.log.Debug("slide gesture refused while animating", "pos", e.Position)
			return false
		}
		for _, c := range d.consumers {
			if c != nil {
				c.Press(e.Position, c.dir.Axis().val(offset))
			}
		}
		return true
	case pointer.Move, pointer.Drag:
		if !d.tracking(e) {
			return false
		}
		if d.active >= 0 {
			return d.consumers[d.active].Move(e.Position)
		}
		for i, c := range d.consumers {
			if c != nil && c.Move(e.Position) {
				d.active = i
				d.log.Debug("slide gesture won", "dir", c.dir)
				return true
			}
		}
		return false
	case pointer.Release, pointer.Cancel:
		if !d.pressed || e.PointerID != d.pid {
			return false
		}
		c := d.winner()
		if d.refused || c == nil {
			d.end()
			return false
		}
		handled := true
		if e.Kind == pointer.Cancel {
			c.Cancel()
		} else {
			handled = c.Release(e.Position)
		}
		d.end()
		return handled
	}
	return false
}

func (d *Dispatcher) tracking(e pointer.Event) bool {
	return d.pressed && !d.refused && e.PointerID == d.pid
}

func (d *Dispatcher) winner() *Consumer {
	if d.active < 0 {
		return nil
	}
	return d.consumers[d.active]
}

func (d *Dispatcher) end() {
	for _, c := range d.consumers {
		if c != nil {
			c.dragging = false
		}
	}
	d.pressed = false
	d.refused = false
	d.active = -1
}

// Animate animates the slider along dir from from to to, stopping
// any animation of another direction first. It panics if dir is not
// enabled.
func (d *Dispatcher) Animate(dir Direction, from, to float32, complete bool) {
	d.Consumer(dir).Animate(from, to, complete)
}

// Jump moves the slider along dir to v without animation, stopping
// any running animation.
func (d *Dispatcher) Jump(dir Direction, v float32) {
	d.Stop()
	d.Consumer(dir).Jump(v)
}

func (d *Dispatcher) preempt(dir Direction) {
	for _, c := range d.consumers {
		if c != nil && c.dir != dir {
			c.Stop()
		}
	}
}

// Stop cancels every running animation.
func (d *Dispatcher) Stop() {
	for _, c := range d.consumers {
		if c != nil {
			c.Stop()
		}
	}
}

// Animating reports whether any direction is animating.
func (d *Dispatcher) Animating() bool {
	for _, c := range d.consumers {
		if c != nil && c.Animating() {
			return true
		}
	}
	return false
}

// Tick advances the running animation to now and reports whether
// another frame is needed.
func (d *Dispatcher) Tick(now time.Time) bool {
	running := false
	for _, c := range d.consumers {
		if c != nil && c.Tick(now) {
			running = true
		}
	}
	return running
}

// State reports the state of the slider's gesture.
func (d *Dispatcher) State() State {
	switch {
	case d.Animating():
		return StateFlinging
	case d.pressed && !d.refused:
		return StateDragging
	default:
		return StateIdle
	}
}
