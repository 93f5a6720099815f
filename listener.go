// SPDX-License-Identifier: Unlicense OR MIT

package slide

import (
	"log/slog"

	"github.com/chewxy/math32"
	"golang.org/x/exp/slices"

	"gioui.org/x/slide/gesture"
)

// Visibility of a slider as seen by listeners.
type Visibility uint8

const (
	// Visible is reported when a slider becomes fully shown.
	Visible Visibility = iota
	// Gone is reported when a slider becomes fully hidden.
	Gone
)

// Listener receives slider notifications. Every field is optional.
// Listeners are registered and removed by pointer identity.
type Listener struct {
	// Slide is called with the completion percent of the hide
	// gesture: 0 is fully shown, 100 is fully hidden.
	Slide func(percent float32, dir gesture.Direction)
	// VisibilityChanged is called when the slider becomes fully
	// shown or fully hidden.
	VisibilityChanged func(v Visibility)
	// SlideToEnd is called when a completing slide animation
	// reaches its end.
	SlideToEnd func()
}

// notifier fans gesture side effects out to the slider and its
// listeners, and derives the slider State from visibility changes.
type notifier struct {
	s         *Slider
	listeners []*Listener
	state     State
}

func (n *notifier) add(l *Listener) {
	n.listeners = append(n.listeners, l)
}

func (n *notifier) remove(l *Listener) {
	if i := slices.Index(n.listeners, l); i >= 0 {
		n.listeners = slices.Delete(n.listeners, i, i+1)
	}
}

func (n *notifier) logger() *slog.Logger {
	return n.s.cfg.Logger()
}

// Offset implements gesture.Sink.
func (n *notifier) Offset(d gesture.Direction, v float32) {
	n.s.setOffset(d, v)
}

// Percent implements gesture.Sink.
func (n *notifier) Percent(d gesture.Direction, percent float32) {
	p := math32.Min(math32.Max(percent, 0), 100)
	for i, l := range n.listeners {
		if l == nil {
			n.skip(i, "Slide")
			continue
		}
		if l.Slide != nil {
			l.Slide(p, d)
			n.value(i, "Slide", p)
		}
	}
	switch {
	case p == 100 && n.state != Hidden:
		n.visibilityChanged(Gone)
	case p == 0 && n.state != Shown:
		n.visibilityChanged(Visible)
	}
}

// SlideToEnd implements gesture.Sink.
func (n *notifier) SlideToEnd(d gesture.Direction) {
	for i, l := range n.listeners {
		if l == nil {
			n.skip(i, "SlideToEnd")
			continue
		}
		if l.SlideToEnd != nil {
			l.SlideToEnd()
			n.value(i, "SlideToEnd", d)
		}
	}
}

func (n *notifier) visibilityChanged(v Visibility) {
	switch v {
	case Visible:
		n.state = Shown
	case Gone:
		n.state = Hidden
	}
	for i, l := range n.listeners {
		if l == nil {
			n.skip(i, "VisibilityChanged")
			continue
		}
		if l.VisibilityChanged != nil {
			l.VisibilityChanged(v)
			n.value(i, "VisibilityChanged", v)
		}
	}
	if !n.s.cfg.hideKeyboard || n.s.soft == nil {
		return
	}
	switch v {
	case Gone:
		n.s.soft.HideSoftInput()
	case Visible:
		n.s.soft.ShowSoftInput()
	}
}

func (n *notifier) value(listener int, method string, v any) {
	if n.s.cfg.debug {
		n.logger().Debug("slide listener notified", "listener", listener, "method", method, "value", v)
	}
}

func (n *notifier) skip(listener int, method string) {
	n.logger().Warn("slide listener is nil, skipping notification", "listener", listener, "method", method)
}

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "Visible"
	case Gone:
		return "Gone"
	default:
		panic("invalid Visibility")
	}
}
