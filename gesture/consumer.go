// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"log/slog"
	"time"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"

	"gioui.org/x/slide/anim"
	"gioui.org/x/slide/f32"
)

// Consumer tracks a slide gesture along one Direction. It is
// normally driven by a Dispatcher.
type Consumer struct {
	dir   Direction
	p     Params
	sink  Sink
	tween anim.Tween
	// preempt is called before the tween starts so that no other
	// direction animates the same slider.
	preempt func(Direction)

	dragging bool
	origin   f32.Point
	// ref is the position the travel direction was last decided at.
	ref          f32.Point
	originOffset float32
	offset       float32
	// outward reports whether the pointer last travelled towards
	// the hidden side.
	outward bool
	// moved is set once a move of the gesture was accepted.
	moved      bool
	completing bool
}

// NewConsumer returns a consumer for dir reporting to sink.
func NewConsumer(dir Direction, p Params, sink Sink) *Consumer {
	c := &Consumer{dir: dir, p: p, sink: sink}
	if c.p.Logger == nil {
		c.p.Logger = slog.Default()
	}
	c.tween = anim.Tween{
		Duration: p.Duration,
		Curve:    p.Curve,
		OnUpdate: func(v float32) {
			c.offset = v
			c.sink.Offset(c.dir, v)
			c.sink.Percent(c.dir, Percent(v, c.p.Length))
		},
		OnEnd: func() {
			if !c.completing {
				return
			}
			c.completing = false
			c.sink.SlideToEnd(c.dir)
		},
	}
	return c
}

// Direction returns the direction of c.
func (c *Consumer) Direction() Direction {
	return c.dir
}

// Length returns the slide length in pixels.
func (c *Consumer) Length() float32 {
	return c.p.Length
}

// Offset returns the live offset of the slider along the axis of c.
func (c *Consumer) Offset() float32 {
	return c.offset
}

// Press starts a gesture at pos with the slider at offset. The
// direction of the gesture is not known yet, so Press always
// reports true.
func (c *Consumer) Press(pos f32.Point, offset float32) bool {
	c.dragging = true
	c.origin = pos
	c.ref = pos
	c.originOffset = offset
	c.offset = offset
	c.outward = false
	c.moved = false
	c.p.Logger.Debug("slide press", "dir", c.dir, "pos", pos, "offset", offset)
	return true
}

// Move follows the pointer to pos. It reports false if the resulting
// offset is not on the hidden side of the direction, leaving the
// slider where it is so that another handler may claim the gesture.
func (c *Consumer) Move(pos f32.Point) bool {
	if !c.dragging {
		return false
	}
	axis := c.dir.Axis()
	moveTo := c.originOffset + axis.val(pos) - axis.val(c.origin)
	c.travel(pos)
	if !c.dir.outward(moveTo) {
		return false
	}
	percent := Percent(moveTo, c.p.Length)
	c.p.Logger.Debug("slide move", "dir", c.dir, "offset", moveTo, "length", c.p.Length, "percent", percent)
	c.offset = moveTo
	c.moved = true
	c.sink.Offset(c.dir, moveTo)
	c.sink.Percent(c.dir, percent)
	return true
}

// travel updates the travel direction when the pointer has moved at
// least the touch slop since it was last updated.
func (c *Consumer) travel(pos f32.Point) {
	axis := c.dir.Axis()
	d := axis.val(pos) - axis.val(c.ref)
	if d == 0 || abs(d) < c.p.Slop {
		return
	}
	c.outward = d*c.dir.Sign() > 0
	c.ref = pos
}

// Release ends the gesture at pos. A release within the touch slop of
// the press, with no accepted move, is a tap: Release reports false
// and nothing animates. Otherwise the slider animates to its hidden
// offset if the net displacement is on the hidden side, exceeds the
// auto complete percent and the pointer last travelled outwards. It
// animates back to zero if not.
func (c *Consumer) Release(pos f32.Point) bool {
	if !c.dragging {
		return false
	}
	c.dragging = false
	delta := pos.Sub(c.origin)
	if !c.moved && abs(delta.X) < c.p.Slop && abs(delta.Y) < c.p.Slop {
		c.p.Logger.Debug("slide tap", "dir", c.dir, "pos", pos)
		return false
	}
	axis := c.dir.Axis()
	moveTo := c.originOffset + axis.val(pos) - axis.val(c.origin)
	percent := Percent(moveTo, c.p.Length)
	complete := c.outward && c.dir.outward(moveTo) && percent > c.p.AutoComplete
	c.p.Logger.Debug("slide release", "dir", c.dir, "percent", percent, "outward", c.outward, "complete", complete)
	var to float32
	if complete {
		to = c.dir.Sign() * c.p.Length
	}
	c.Animate(c.offset, to, complete)
	return true
}

// Cancel aborts the gesture and returns the slider to zero.
func (c *Consumer) Cancel() {
	if !c.dragging {
		return
	}
	c.dragging = false
	if c.offset != 0 {
		c.Animate(c.offset, 0, false)
	}
}

// Animate moves the slider from from to to. If complete is set, the
// sink receives SlideToEnd when the animation finishes.
func (c *Consumer) Animate(from, to float32, complete bool) {
	if c.preempt != nil {
		c.preempt(c.dir)
	}
	c.tween.Cancel()
	c.completing = complete
	if from == to {
		c.Jump(to)
		if complete {
			c.completing = false
			c.sink.SlideToEnd(c.dir)
		}
		return
	}
	c.p.Logger.Debug("slide animate", "dir", c.dir, "from", from, "to", to)
	c.tween.Start(from, to)
}

// Jump moves the slider to v without animation.
func (c *Consumer) Jump(v float32) {
	c.tween.Cancel()
	c.offset = v
	c.sink.Offset(c.dir, v)
	c.sink.Percent(c.dir, Percent(v, c.p.Length))
}

// Stop cancels a running animation, leaving the slider where it is.
func (c *Consumer) Stop() {
	c.tween.Cancel()
	c.completing = false
}

// Animating reports whether an animation is in progress.
func (c *Consumer) Animating() bool {
	return c.tween.Active()
}

// Target returns the offset of the current or last animation.
func (c *Consumer) Target() float32 {
	return c.tween.Target()
}

// Tick advances a running animation to now and reports whether it is
// still running.
func (c *Consumer) Tick(now time.Time) bool {
	return c.tween.Tick(now)
}

// State reports the state of c.
func (c *Consumer) State() State {
	switch {
	case c.tween.Active():
		return StateFlinging
	case c.dragging:
		return StateDragging
	default:
		return StateIdle
	}
}

func abs(v float32) float32 {
	return math32.Abs(v)
}

func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
