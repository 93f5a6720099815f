// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim drives a single float value from one offset to another
over a fixed duration.

A Tween does not own a clock. The host calls Tick with the frame
time for as long as Tick reports the tween is active, the same way a
fling is driven frame by frame.
*/
package anim

import (
	"time"

	"github.com/chewxy/math32"
)

// Tween interpolates a value between two offsets. The zero value is
// an idle, linear tween with zero duration.
type Tween struct {
	// Duration of a full run.
	Duration time.Duration
	// Curve eases the interpolation. Nil means Linear.
	Curve Curve
	// OnUpdate is called with every interpolated value.
	OnUpdate func(v float32)
	// OnEnd is called once when a run reaches its target. It is not
	// called for runs stopped by Cancel or preempted by Start.
	OnEnd func()

	from, to float32
	value    float32
	active   bool
	// started is false until the first Tick of a run anchors t0.
	started bool
	t0      time.Time
}

// Start runs the tween from from to to, preempting any run in
// progress. The first value is delivered at the next Tick.
func (t *Tween) Start(from, to float32) {
	t.from, t.to = from, to
	t.value = from
	t.active = true
	t.started = false
}

// Cancel stops a run in progress, leaving the value where the last
// tick put it. Cancel on an idle tween does nothing.
func (t *Tween) Cancel() {
	t.active = false
	t.started = false
}

// Active reports whether a run is in progress.
func (t *Tween) Active() bool {
	return t.active
}

// Target returns the offset of the current or last run.
func (t *Tween) Target() float32 {
	return t.to
}

// Value returns the last interpolated value.
func (t *Tween) Value() float32 {
	return t.value
}

// Tick advances the tween to now and reports whether it is still
// active afterwards.
func (t *Tween) Tick(now time.Time) bool {
	if !t.active {
		return false
	}
	if !t.started {
		t.started = true
		t.t0 = now
	}
	elapsed := now.Sub(t.t0)
	if elapsed >= t.Duration {
		t.value = t.to
		t.active = false
		t.started = false
		t.update(t.to)
		// OnUpdate may have started a new run.
		if !t.active && t.OnEnd != nil {
			t.OnEnd()
		}
		return t.active
	}
	frac := float32(elapsed) / float32(t.Duration)
	curve := t.Curve
	if curve == nil {
		curve = Linear
	}
	f := math32.Min(math32.Max(curve(frac), 0), 1)
	t.value = t.from + (t.to-t.from)*f
	t.update(t.value)
	return t.active
}

func (t *Tween) update(v float32) {
	if t.OnUpdate != nil {
		t.OnUpdate(v)
	}
}
