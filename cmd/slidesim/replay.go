// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"log/slog"
	"time"

	"gioui.org/x/slide"
	"gioui.org/x/slide/f32"
	"gioui.org/x/slide/gesture"
	"gioui.org/x/slide/internal/config"
)

// maxFrames bounds the frames run after the last step.
const maxFrames = 10000

type view struct {
	log *slog.Logger
}

func (v view) SetTranslation(off f32.Point) {
	v.log.Debug("translate", "offset", off)
}

func (v view) Click() {
	v.log.Info("click")
}

type keyboard struct {
	log *slog.Logger
}

func (k keyboard) HideSoftInput() { k.log.Info("hide soft input") }
func (k keyboard) ShowSoftInput() { k.log.Info("show soft input") }

// clock drives slider animations in frames of a fixed interval.
type clock struct {
	s     *slide.Slider
	epoch time.Time
	frame time.Duration
	now   time.Duration
}

// advance runs the frames due before t.
func (c *clock) advance(t time.Duration) {
	for c.s.Animating() && c.now+c.frame <= t {
		c.now += c.frame
		c.s.Tick(c.epoch.Add(c.now))
	}
	if t > c.now {
		c.now = t
	}
}

// settle runs frames until no animation is left.
func (c *clock) settle() error {
	for i := 0; c.s.Animating(); i++ {
		if i == maxFrames {
			return fmt.Errorf("animation still running after %d frames", maxFrames)
		}
		c.now += c.frame
		c.s.Tick(c.epoch.Add(c.now))
	}
	return nil
}

// replay runs the steps of sc against a new slider. Parameters in saved
// take precedence over the scenario options.
func replay(sc *config.Scenario, saved slide.Bundle, log *slog.Logger, frame time.Duration) (*slide.Slider, error) {
	b := slide.NewBuilder().Logger(log).Restore(saved)
	if err := sc.Options.Apply(b); err != nil {
		return nil, err
	}
	b.Listeners(&slide.Listener{
		Slide: func(percent float32, dir gesture.Direction) {
			log.Info("slide", "percent", percent, "dir", dir)
		},
		VisibilityChanged: func(v slide.Visibility) {
			log.Info("visibility", "value", v)
		},
		SlideToEnd: func() {
			log.Info("slide to end")
		},
	})
	cfg, err := b.Build()
	if err != nil {
		return nil, err
	}
	s := slide.New(cfg, view{log: log})
	s.SetSoftInput(keyboard{log: log})
	s.Layout(sc.Geometry.Slide())

	c := &clock{s: s, epoch: time.Unix(0, 0), frame: frame}
	for i, st := range sc.Steps {
		c.advance(st.Time())
		if st.Call != "" {
			if err := call(s, st.Call); err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			log.Info("call", "at", st.Time(), "name", st.Call)
			continue
		}
		e, err := st.Event()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		consumed := s.Event(e)
		log.Info("event", "at", st.Time(), "kind", e.Kind, "pos", e.Position, "consumed", consumed)
	}
	if err := c.settle(); err != nil {
		return nil, err
	}
	return s, nil
}

func call(s *slide.Slider, name string) error {
	switch name {
	case "show":
		s.Show()
	case "hide":
		s.Hide()
	case "toggle":
		s.Toggle()
	case "show_now":
		s.ShowImmediately()
	case "hide_now":
		s.HideImmediately()
	case "toggle_now":
		s.ToggleImmediately()
	default:
		return fmt.Errorf("unknown call %q", name)
	}
	return nil
}
