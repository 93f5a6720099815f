// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements the drag-to-dismiss pointer gesture.

A Consumer turns one axis of a pointer event stream into live slide
offsets and a complete-or-cancel decision on release. A Dispatcher
owns one Consumer per enabled Direction and decides which of them
wins a gesture once the pointer starts moving.
*/
package gesture

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gioui.org/x/slide/anim"
	"gioui.org/x/slide/f32"
	"gioui.org/x/slide/unit"
)

// Direction is the edge of its container a slider leaves through
// when it is hidden.
type Direction uint8

// Directions is a set of Direction values.
type Directions uint8

// Axis is the axis a Direction moves along.
type Axis uint8

// State is the state of a Consumer or Dispatcher.
type State uint8

const (
	Up Direction = iota
	Down
	Left
	Right

	numDirections = 4
)

const (
	// Vertical allows sliding both up and down.
	Vertical = Directions(1<<Up | 1<<Down)
	// Horizontal allows sliding both left and right.
	Horizontal = Directions(1<<Left | 1<<Right)
)

const (
	AxisX Axis = iota
	AxisY
)

const (
	// StateIdle is the default state.
	StateIdle State = iota
	// StateDragging is reported between a press and its release.
	StateDragging
	// StateFlinging is reported while an animation runs.
	StateFlinging
)

// DefaultTouchSlop is the distance a pointer must travel before a move
// counts as intentional.
var DefaultTouchSlop = unit.Dp(16)

// Sink receives the side effects of a slide gesture. All calls are
// made from the goroutine delivering events and ticks.
type Sink interface {
	// Offset moves the slider to v along the axis of d.
	Offset(d Direction, v float32)
	// Percent reports the completion of the hide gesture, in [0, 100].
	Percent(d Direction, percent float32)
	// SlideToEnd reports that a completing animation reached its end.
	SlideToEnd(d Direction)
}

// Params configures a Consumer.
type Params struct {
	// Length is the slide length in pixels.
	Length float32
	// AutoComplete is the percent a release must exceed to
	// complete the slide.
	AutoComplete float32
	// Slop is the touch slop in pixels.
	Slop float32
	// Duration and Curve configure the release animation.
	Duration time.Duration
	Curve    anim.Curve
	Logger   *slog.Logger
}

// Set returns the set containing only d.
func (d Direction) Set() Directions {
	return 1 << d
}

// Axis returns the axis d moves along.
func (d Direction) Axis() Axis {
	switch d {
	case Up, Down:
		return AxisY
	case Left, Right:
		return AxisX
	default:
		panic("invalid Direction")
	}
}

// Sign is the sign of an offset that moves the slider out
// through d: -1 for Up and Left, 1 for Down and Right.
func (d Direction) Sign() float32 {
	switch d {
	case Up, Left:
		return -1
	case Down, Right:
		return 1
	default:
		panic("invalid Direction")
	}
}

// outward reports whether offset v lies on the hidden side of d.
func (d Direction) outward(v float32) bool {
	return v*d.Sign() > 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		panic("invalid Direction")
	}
}

// Of returns the set of the given directions.
func Of(dirs ...Direction) Directions {
	var s Directions
	for _, d := range dirs {
		s |= d.Set()
	}
	return s
}

// Has reports whether d is in the set.
func (s Directions) Has(d Direction) bool {
	return d < numDirections && s&d.Set() != 0
}

// Slice returns the directions in s in precedence order.
func (s Directions) Slice() []Direction {
	var dirs []Direction
	for d := Up; d < numDirections; d++ {
		if s.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Primary returns the first direction of s in precedence order.
func (s Directions) Primary() (Direction, bool) {
	for d := Up; d < numDirections; d++ {
		if s.Has(d) {
			return d, true
		}
	}
	return 0, false
}

// Valid reports whether s is non-empty and contains only known
// directions.
func (s Directions) Valid() bool {
	return s != 0 && s&^(Vertical|Horizontal) == 0
}

func (s Directions) String() string {
	switch s {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	}
	var names []string
	for _, d := range s.Slice() {
		names = append(names, d.String())
	}
	return strings.Join(names, "|")
}

// ParseDirections parses a set in the form produced by
// Directions.String, case insensitively.
func ParseDirections(s string) (Directions, error) {
	var set Directions
	for _, name := range strings.Split(s, "|") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "up":
			set |= Up.Set()
		case "down":
			set |= Down.Set()
		case "left":
			set |= Left.Set()
		case "right":
			set |= Right.Set()
		case "vertical":
			set |= Vertical
		case "horizontal":
			set |= Horizontal
		default:
			return 0, fmt.Errorf("gesture: unknown direction %q", name)
		}
	}
	return set, nil
}

// Percent converts an offset to the completion percent of a slide of
// the given length, clamped to [0, 100]. A zero length yields 0.
func Percent(offset, length float32) float32 {
	if length <= 0 {
		return 0
	}
	return clamp(abs(offset)*100/length, 0, 100)
}

func (a Axis) val(p f32.Point) float32 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// Component returns the component of p along a.
func (a Axis) Component(p f32.Point) float32 {
	return a.val(p)
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "AxisX"
	case AxisY:
		return "AxisY"
	default:
		panic("invalid Axis")
	}
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateDragging:
		return "StateDragging"
	case StateFlinging:
		return "StateFlinging"
	default:
		panic("unreachable")
	}
}
