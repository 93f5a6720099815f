// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads slider simulation scenarios from YAML files.
// Environment variables take precedence over the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"gioui.org/x/slide"
	"gioui.org/x/slide/anim"
	"gioui.org/x/slide/f32"
	"gioui.org/x/slide/gesture"
	"gioui.org/x/slide/io/pointer"
	"gioui.org/x/slide/unit"
)

// EnvDebug overrides Options.Debug when set to a boolean value.
const EnvDebug = "SLIDESIM_DEBUG"

// Scenario is a slider setup and the input replayed against it.
type Scenario struct {
	Options  Options  `yaml:"options"`
	Geometry Geometry `yaml:"geometry"`
	Steps    []Step   `yaml:"steps"`
}

// Options mirrors the slide.Builder parameters. Zero values select the
// builder defaults.
type Options struct {
	// Directions is a set such as "down" or "up|left".
	Directions string `yaml:"directions"`
	// Target is "self", "parent" or "specify".
	Target string `yaml:"target"`
	// Length is the slide length in pixels of the "specify" target.
	Length        float32  `yaml:"length"`
	AutoComplete  *float32 `yaml:"auto_complete"`
	DurationMS    *int64   `yaml:"duration_ms"`
	Curve         string   `yaml:"curve"`
	Gestures      *bool    `yaml:"gestures"`
	HideKeyboard  bool     `yaml:"hide_keyboard"`
	StartState    string   `yaml:"start_state"`
	TouchSlop     *float32 `yaml:"touch_slop_dp"`
	TouchableArea float32  `yaml:"touchable_area_dp"`
	Debug         bool     `yaml:"debug"`
}

// Geometry is the laid out slider. Rectangles are [minX, minY, maxX,
// maxY] in pixels.
type Geometry struct {
	Bounds    [4]float32 `yaml:"bounds"`
	Container [4]float32 `yaml:"container"`
	PxPerDp   float32    `yaml:"px_per_dp"`
}

// Step is a pointer event or a call on the slider, happening At
// milliseconds after the start of the scenario.
type Step struct {
	At int64 `yaml:"at"`
	// Kind is a pointer event kind: "press", "move", "drag",
	// "release" or "cancel". It is empty for calls.
	Kind    string  `yaml:"kind"`
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	Pointer int     `yaml:"pointer"`
	// Call is "show", "hide", "toggle", or one of those suffixed by
	// "_now" for the immediate variants.
	Call string `yaml:"call"`
}

// Load reads the scenario at path and applies environment overrides.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML scenario and applies environment overrides.
func Parse(data []byte) (*Scenario, error) {
	sc := new(Scenario)
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		sc.Options.Debug = debug
	}
	for i, s := range sc.Steps {
		if (s.Kind == "") == (s.Call == "") {
			return nil, fmt.Errorf("step %d: exactly one of kind and call must be set", i)
		}
		if i > 0 && s.At < sc.Steps[i-1].At {
			return nil, fmt.Errorf("step %d: time %dms is before the previous step", i, s.At)
		}
	}
	return sc, nil
}

// Builder returns a slide.Builder configured from o.
func (o Options) Builder() (*slide.Builder, error) {
	b := slide.NewBuilder()
	if err := o.Apply(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Apply sets the options of o on b. Options restored into b from a
// saved bundle are not overridden.
func (o Options) Apply(b *slide.Builder) error {
	if o.Directions != "" {
		dirs, err := gesture.ParseDirections(o.Directions)
		if err != nil {
			return err
		}
		b.Directions(dirs)
	}
	switch strings.ToLower(o.Target) {
	case "", "self":
		b.SlideToSelf()
	case "parent":
		b.SlideToParent()
	case "specify":
		b.SlideTo(o.Length)
	default:
		return fmt.Errorf("unknown target %q", o.Target)
	}
	if o.AutoComplete != nil {
		b.AutoComplete(*o.AutoComplete)
	}
	if o.DurationMS != nil {
		b.Duration(time.Duration(*o.DurationMS) * time.Millisecond)
	}
	if o.Curve != "" {
		c, ok := anim.CurveByName(o.Curve)
		if !ok {
			return fmt.Errorf("unknown curve %q", o.Curve)
		}
		b.Curve(c)
	}
	if o.Gestures != nil {
		b.Gestures(*o.Gestures)
	}
	if o.StartState != "" {
		st, err := slide.ParseState(o.StartState)
		if err != nil {
			return err
		}
		b.StartState(st)
	}
	if o.TouchSlop != nil {
		b.TouchSlop(unit.Dp(*o.TouchSlop))
	}
	b.HideKeyboard(o.HideKeyboard).
		TouchableArea(unit.Dp(o.TouchableArea)).
		Debug(o.Debug)
	return nil
}

// Slide returns g as slide.Geometry.
func (g Geometry) Slide() slide.Geometry {
	return slide.Geometry{
		Bounds:    rect(g.Bounds),
		Container: rect(g.Container),
		Metric:    unit.Metric{PxPerDp: g.PxPerDp},
	}
}

func rect(r [4]float32) f32.Rectangle {
	return f32.Rect(r[0], r[1], r[2], r[3])
}

// Event returns the pointer event of a step with a Kind.
func (s Step) Event() (pointer.Event, error) {
	var k pointer.Kind
	switch strings.ToLower(s.Kind) {
	case "press":
		k = pointer.Press
	case "move":
		k = pointer.Move
	case "drag":
		k = pointer.Drag
	case "release":
		k = pointer.Release
	case "cancel":
		k = pointer.Cancel
	default:
		return pointer.Event{}, fmt.Errorf("unknown event kind %q", s.Kind)
	}
	return pointer.Event{
		Kind:      k,
		Source:    pointer.Touch,
		PointerID: pointer.ID(s.Pointer),
		Time:      s.Time(),
		Position:  f32.Pt(s.X, s.Y),
	}, nil
}

// Time returns the offset of s from the start of the scenario.
func (s Step) Time() time.Duration {
	return time.Duration(s.At) * time.Millisecond
}
