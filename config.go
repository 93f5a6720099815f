// SPDX-License-Identifier: Unlicense OR MIT

package slide

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"gioui.org/x/slide/anim"
	"gioui.org/x/slide/gesture"
	"gioui.org/x/slide/unit"
)

// Target selects how far a slider travels before it is hidden.
type Target uint8

// State is the derived visibility state of a slider.
type State uint8

const (
	// TargetSelf slides the slider by its own height or width.
	TargetSelf Target = iota
	// TargetParent slides the slider up to the edge of its
	// container.
	TargetParent
	// TargetSpecify slides the slider by a fixed distance.
	TargetSpecify
)

const (
	// Shown is the state of a slider that is fully visible.
	Shown State = iota
	// Hidden is the state of a slider that slid out completely.
	Hidden
)

// Default configuration values.
const (
	DefaultAutoComplete = 40
	DefaultDuration     = 300 * time.Millisecond
)

// Config is the immutable configuration of a Slider. Use a Builder to
// create one.
type Config struct {
	directions    gesture.Directions
	target        Target
	length        float32
	autoComplete  float32
	duration      time.Duration
	curve         anim.Curve
	gestures      bool
	hideKeyboard  bool
	startState    State
	touchSlop     unit.Dp
	touchableArea unit.Dp
	debug         bool
	logger        *slog.Logger
	listeners     []*Listener
	// also are moved together with the slider.
	also []View
}

// Builder constructs a Config. Builder methods return the builder
// for chaining; errors are reported by Build.
type Builder struct {
	cfg Config
	// restored is set when a saved Bundle was restored, and stops
	// later calls from overriding the restored values.
	restored bool
	err      error
}

// NewBuilder returns a Builder with the default configuration: slide
// down by the slider's own height, complete past 40%, animate for
// 300ms with a decelerating curve.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{
		directions:   gesture.Down.Set(),
		target:       TargetSelf,
		autoComplete: DefaultAutoComplete,
		duration:     DefaultDuration,
		curve:        anim.Decelerate,
		gestures:     true,
		startState:   Shown,
		touchSlop:    gesture.DefaultTouchSlop,
	}}
}

// Directions sets the directions the slider can be dismissed in.
func (b *Builder) Directions(d gesture.Directions) *Builder {
	if !b.restored {
		b.cfg.directions = d
	}
	return b
}

// SlideToSelf slides the slider by its own extent.
func (b *Builder) SlideToSelf() *Builder {
	b.cfg.target = TargetSelf
	return b
}

// SlideToParent slides the slider to the edge of its container.
func (b *Builder) SlideToParent() *Builder {
	b.cfg.target = TargetParent
	return b
}

// SlideTo slides the slider by px pixels.
func (b *Builder) SlideTo(px float32) *Builder {
	b.cfg.target = TargetSpecify
	b.cfg.length = px
	return b
}

// AutoComplete sets the percent past which a release completes the
// slide.
func (b *Builder) AutoComplete(percent float32) *Builder {
	b.cfg.autoComplete = percent
	return b
}

// Duration sets the duration of slide animations.
func (b *Builder) Duration(d time.Duration) *Builder {
	if !b.restored {
		b.cfg.duration = d
	}
	return b
}

// Curve sets the easing of slide animations.
func (b *Builder) Curve(c anim.Curve) *Builder {
	b.cfg.curve = c
	return b
}

// Gestures turns dragging on or off. A slider with gestures off
// treats every touch as a click.
func (b *Builder) Gestures(enabled bool) *Builder {
	b.cfg.gestures = enabled
	return b
}

// HideKeyboard sets whether the soft keyboard is hidden when the
// slider is hidden, and shown again when the slider is shown.
func (b *Builder) HideKeyboard(hide bool) *Builder {
	if !b.restored {
		b.cfg.hideKeyboard = hide
	}
	return b
}

// StartState sets the state applied once the slider is laid out.
func (b *Builder) StartState(s State) *Builder {
	if !b.restored {
		b.cfg.startState = s
	}
	return b
}

// TouchSlop sets the distance a pointer travels before a move is
// treated as a drag.
func (b *Builder) TouchSlop(slop unit.Dp) *Builder {
	b.cfg.touchSlop = slop
	return b
}

// TouchableArea restricts presses to the given distance from the
// trailing edge of the slider. Zero makes the whole slider touchable.
func (b *Builder) TouchableArea(area unit.Dp) *Builder {
	b.cfg.touchableArea = area
	return b
}

// Debug enables logging of every listener notification.
func (b *Builder) Debug(debug bool) *Builder {
	b.cfg.debug = debug
	return b
}

// Logger sets the logger. The default is slog.Default().
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.cfg.logger = l
	return b
}

// Listeners adds listeners registered when the Slider is created.
func (b *Builder) Listeners(ls ...*Listener) *Builder {
	b.cfg.listeners = append(b.cfg.listeners, ls...)
	return b
}

// AlsoSlides adds views that receive every translation of the
// slider, such as a toolbar attached to it.
func (b *Builder) AlsoSlides(vs ...View) *Builder {
	b.cfg.also = append(b.cfg.also, vs...)
	return b
}

// Build validates and returns the configuration.
func (b *Builder) Build() (Config, error) {
	if b.err != nil {
		return Config{}, b.err
	}
	c := b.cfg
	switch {
	case !c.directions.Valid():
		return Config{}, fmt.Errorf("slide: invalid directions %#x", uint8(c.directions))
	case c.autoComplete < 0 || c.autoComplete > 100:
		return Config{}, fmt.Errorf("slide: auto complete percent %v out of range [0,100]", c.autoComplete)
	case c.duration < 0:
		return Config{}, fmt.Errorf("slide: negative duration %v", c.duration)
	case c.target == TargetSpecify && c.length < 0:
		return Config{}, fmt.Errorf("slide: negative slide length %v", c.length)
	case c.touchSlop < 0 || c.touchableArea < 0:
		return Config{}, errors.New("slide: negative touch slop or touchable area")
	}
	if c.curve == nil {
		c.curve = anim.Linear
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.listeners = slices.Clone(c.listeners)
	c.also = slices.Clone(c.also)
	return c, nil
}

// Edit returns a Builder initialized from c.
func (c Config) Edit() *Builder {
	c.listeners = slices.Clone(c.listeners)
	c.also = slices.Clone(c.also)
	return &Builder{cfg: c}
}

// Directions returns the directions the slider can be dismissed in.
func (c Config) Directions() gesture.Directions { return c.directions }

// Target returns how the slide length is resolved.
func (c Config) Target() Target { return c.target }

// AutoComplete returns the percent past which a release completes.
func (c Config) AutoComplete() float32 { return c.autoComplete }

// Duration returns the duration of slide animations.
func (c Config) Duration() time.Duration { return c.duration }

// Curve returns the easing of slide animations.
func (c Config) Curve() anim.Curve { return c.curve }

// GesturesEnabled reports whether dragging is on.
func (c Config) GesturesEnabled() bool { return c.gestures }

// HideKeyboard reports whether the soft keyboard follows the slider.
func (c Config) HideKeyboard() bool { return c.hideKeyboard }

// StartState returns the state applied on the first layout.
func (c Config) StartState() State { return c.startState }

// TouchSlop returns the distance before a move counts as a drag.
func (c Config) TouchSlop() unit.Dp { return c.touchSlop }

// TouchableArea returns the depth of the touchable band, or zero.
func (c Config) TouchableArea() unit.Dp { return c.touchableArea }

// Debug reports whether listener notifications are logged.
func (c Config) Debug() bool { return c.debug }

// Length returns the fixed slide length of a TargetSpecify
// configuration.
func (c Config) Length() float32 { return c.length }

// Logger returns the configured logger.
func (c Config) Logger() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

func (t Target) String() string {
	switch t {
	case TargetSelf:
		return "TargetSelf"
	case TargetParent:
		return "TargetParent"
	case TargetSpecify:
		return "TargetSpecify"
	default:
		panic("invalid Target")
	}
}

func (s State) String() string {
	switch s {
	case Shown:
		return "Shown"
	case Hidden:
		return "Hidden"
	default:
		panic("invalid State")
	}
}

// ParseState parses "shown" or "hidden", case insensitively.
func ParseState(s string) (State, error) {
	switch strings.ToLower(s) {
	case "shown":
		return Shown, nil
	case "hidden":
		return Hidden, nil
	default:
		return 0, fmt.Errorf("slide: unknown state %q", s)
	}
}
