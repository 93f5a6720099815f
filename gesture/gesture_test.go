// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/x/slide/anim"
	"gioui.org/x/slide/f32"
	"gioui.org/x/slide/io/pointer"
)

type call struct {
	dir   Direction
	kind  string
	value float32
}

type recordingSink struct {
	calls []call
}

func (s *recordingSink) Offset(d Direction, v float32) {
	s.calls = append(s.calls, call{d, "offset", v})
}

func (s *recordingSink) Percent(d Direction, p float32) {
	s.calls = append(s.calls, call{d, "percent", p})
}

func (s *recordingSink) SlideToEnd(d Direction) {
	s.calls = append(s.calls, call{d, "end", 0})
}

func (s *recordingSink) count(kind string) int {
	n := 0
	for _, c := range s.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func (s *recordingSink) last(kind string) (call, bool) {
	for i := len(s.calls) - 1; i >= 0; i-- {
		if s.calls[i].kind == kind {
			return s.calls[i], true
		}
	}
	return call{}, false
}

var testParams = Params{
	AutoComplete: 40,
	Slop:         8,
	Duration:     100 * time.Millisecond,
	Curve:        anim.Linear,
}

func fixedLength(l float32) func(Direction) float32 {
	return func(Direction) float32 { return l }
}

func newTestDispatcher(enabled Directions) (*Dispatcher, *recordingSink) {
	sink := new(recordingSink)
	return NewDispatcher(enabled, testParams, fixedLength(200), sink), sink
}

func press(x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Source: pointer.Touch, Position: f32.Pt(x, y)}
}

func move(x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Move, Source: pointer.Touch, Position: f32.Pt(x, y)}
}

func release(x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Release, Source: pointer.Touch, Position: f32.Pt(x, y)}
}

func finish(d *Dispatcher) {
	t0 := time.Unix(0, 0)
	d.Tick(t0)
	d.Tick(t0.Add(time.Second))
}

func TestPercent(t *testing.T) {
	const length = 200
	for o := float32(-250); o <= 250; o += 12.5 {
		p := Percent(o, length)
		assert.True(t, p >= 0 && p <= 100, "percent(%v) = %v", o, p)
		if abs(o) <= length {
			assert.InDelta(t, abs(o)*100/length, p, 1e-4)
		}
	}
	assert.Equal(t, float32(0), Percent(50, 0))
	assert.Equal(t, float32(100), Percent(-200, 200))
}

func TestDragDown(t *testing.T) {
	d, sink := newTestDispatcher(Down.Set())
	require.True(t, d.Event(press(0, 100), f32.Point{}))
	require.True(t, d.Event(move(0, 140), f32.Point{}))

	off, _ := sink.last("offset")
	assert.Equal(t, call{Down, "offset", 40}, off)
	pct, _ := sink.last("percent")
	assert.Equal(t, float32(20), pct.value)
	assert.Equal(t, float32(40), d.Consumer(Down).Offset())
	assert.Equal(t, StateDragging, d.State())
}

func TestTap(t *testing.T) {
	d, sink := newTestDispatcher(Down.Set())
	require.True(t, d.Event(press(0, 100), f32.Point{}))
	d.Event(move(0, 103), f32.Point{})
	assert.False(t, d.Event(release(0, 100), f32.Point{}))
	assert.False(t, d.Animating())
	assert.Equal(t, StateIdle, d.State())
	assert.Zero(t, sink.count("end"))
}

func TestReleaseDecision(t *testing.T) {
	for _, tc := range []struct {
		name     string
		moves    []float32
		complete bool
		target   float32
	}{
		{"past threshold", []float32{190}, true, 200},
		{"below threshold", []float32{160}, false, 0},
		{"jitter keeps travel", []float32{190, 185}, true, 200},
		{"travelling back", []float32{190, 180}, false, 0},
		{"ending behind the origin", []float32{190, 0, 10}, false, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, sink := newTestDispatcher(Down.Set())
			d.Event(press(0, 100), f32.Point{})
			var y float32
			for _, y = range tc.moves {
				d.Event(move(0, y), f32.Point{})
			}
			require.True(t, d.Event(release(0, y), f32.Point{}))
			require.True(t, d.Animating())
			assert.Equal(t, tc.target, d.Consumer(Down).Target())

			finish(d)
			assert.False(t, d.Animating())
			off, _ := sink.last("offset")
			assert.Equal(t, tc.target, off.value)
			if tc.complete {
				assert.Equal(t, 1, sink.count("end"))
			} else {
				assert.Zero(t, sink.count("end"))
			}
		})
	}
}

func TestDragUpCompletesNegative(t *testing.T) {
	d, sink := newTestDispatcher(Up.Set())
	d.Event(press(0, 300), f32.Point{})
	require.True(t, d.Event(move(0, 150), f32.Point{}))
	require.True(t, d.Event(release(0, 150), f32.Point{}))
	assert.Equal(t, float32(-200), d.Consumer(Up).Target())
	finish(d)
	pct, _ := sink.last("percent")
	assert.Equal(t, float32(100), pct.value)
	assert.Equal(t, 1, sink.count("end"))
}

func TestWrongDirection(t *testing.T) {
	d, sink := newTestDispatcher(Down.Set())
	d.Event(press(0, 100), f32.Point{})
	assert.False(t, d.Event(move(0, 60), f32.Point{}))
	assert.Empty(t, sink.calls)
	_, won := d.Winner()
	assert.False(t, won)
	assert.False(t, d.Event(release(0, 60), f32.Point{}))
}

func TestDirectionExclusivity(t *testing.T) {
	d, sink := newTestDispatcher(Vertical | Horizontal)
	d.Event(press(100, 100), f32.Point{})
	require.True(t, d.Event(move(100, 60), f32.Point{}))
	w, ok := d.Winner()
	require.True(t, ok)
	assert.Equal(t, Up, w)

	// Moving down past the origin is not handled by Up and must not
	// reach Down.
	assert.False(t, d.Event(move(100, 140), f32.Point{}))
	assert.True(t, d.Event(move(100, 20), f32.Point{}))
	d.Event(release(100, 20), f32.Point{})
	for _, c := range sink.calls {
		assert.Equal(t, Up, c.dir, "call %v", c)
	}
}

func TestPrecedence(t *testing.T) {
	d, _ := newTestDispatcher(Vertical | Horizontal)
	d.Event(press(100, 100), f32.Point{})
	// A diagonal move is claimed by the first direction in precedence
	// order that accepts it.
	require.True(t, d.Event(move(140, 140), f32.Point{}))
	w, _ := d.Winner()
	assert.Equal(t, Down, w)
}

func TestRefuseWhileAnimating(t *testing.T) {
	d, _ := newTestDispatcher(Down.Set())
	d.Event(press(0, 100), f32.Point{})
	d.Event(move(0, 190), f32.Point{})
	d.Event(release(0, 190), f32.Point{})
	require.True(t, d.Animating())

	off := f32.Pt(0, 90)
	assert.False(t, d.Event(press(0, 150), off))
	assert.False(t, d.Event(move(0, 170), off))
	assert.Equal(t, StateFlinging, d.State())
	finish(d)
	// Still the refused gesture.
	assert.False(t, d.Event(move(0, 180), off))
	assert.False(t, d.Event(release(0, 180), off))

	assert.True(t, d.Event(press(0, 150), f32.Pt(0, 200)))
}

func TestSecondPointerIgnored(t *testing.T) {
	d, _ := newTestDispatcher(Down.Set())
	d.Event(press(0, 100), f32.Point{})
	other := press(50, 50)
	other.PointerID = 1
	assert.False(t, d.Event(other, f32.Point{}))
	m := move(0, 150)
	m.PointerID = 1
	assert.False(t, d.Event(m, f32.Point{}))
	assert.True(t, d.Event(move(0, 150), f32.Point{}))
}

func TestDragBackToOrigin(t *testing.T) {
	d, sink := newTestDispatcher(Down.Set())
	d.Event(press(0, 100), f32.Point{})
	require.True(t, d.Event(move(0, 150), f32.Point{}))
	assert.False(t, d.Event(move(0, 99), f32.Point{}))

	// Within the slop of the press, but the slider moved.
	require.True(t, d.Event(release(0, 100), f32.Point{}))
	require.True(t, d.Animating())
	assert.Equal(t, float32(0), d.Consumer(Down).Target())
	finish(d)
	off, _ := sink.last("offset")
	assert.Equal(t, float32(0), off.value)
	assert.Zero(t, sink.count("end"))
}

func TestCancelSnapsBack(t *testing.T) {
	d, sink := newTestDispatcher(Down.Set())
	d.Event(press(0, 100), f32.Point{})
	d.Event(move(0, 190), f32.Point{})
	assert.True(t, d.Event(pointer.Event{Kind: pointer.Cancel}, f32.Point{}))
	assert.Equal(t, float32(0), d.Consumer(Down).Target())
	finish(d)
	assert.Zero(t, sink.count("end"))
}

func TestPressStartsFromOffset(t *testing.T) {
	d, sink := newTestDispatcher(Down.Set())
	d.Event(press(0, 100), f32.Pt(0, 50))
	require.True(t, d.Event(move(0, 110), f32.Pt(0, 50)))
	off, _ := sink.last("offset")
	assert.Equal(t, float32(60), off.value)
}

func TestSingleAnimation(t *testing.T) {
	d, sink := newTestDispatcher(Vertical)
	d.Animate(Up, 0, -200, true)
	require.True(t, d.Consumer(Up).Animating())
	d.Animate(Down, 0, 200, false)
	assert.False(t, d.Consumer(Up).Animating())
	assert.True(t, d.Consumer(Down).Animating())
	finish(d)
	assert.Zero(t, sink.count("end"))
}

func TestUnknownDirectionPanics(t *testing.T) {
	d, _ := newTestDispatcher(Vertical)
	assert.Panics(t, func() { d.Consumer(Left) })
	assert.Panics(t, func() { d.Animate(Right, 0, 10, false) })
}

func TestZeroLength(t *testing.T) {
	sink := new(recordingSink)
	d := NewDispatcher(Down.Set(), testParams, fixedLength(0), sink)
	d.Event(press(0, 100), f32.Point{})
	require.True(t, d.Event(move(0, 150), f32.Point{}))
	pct, _ := sink.last("percent")
	assert.Equal(t, float32(0), pct.value)
}

func TestParseDirections(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Directions
	}{
		{"down", Down.Set()},
		{"Up|Left", Of(Up, Left)},
		{"vertical", Vertical},
		{"Horizontal|up", Horizontal | Up.Set()},
	} {
		got, err := ParseDirections(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.in)
	}
	_, err := ParseDirections("sideways")
	assert.Error(t, err)

	assert.Equal(t, "Vertical", Vertical.String())
	assert.Equal(t, "Up|Right", Of(Up, Right).String())
	assert.True(t, Of(Up, Right).Valid())
	assert.False(t, Directions(0).Valid())
}
