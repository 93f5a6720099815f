// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the marker type for input events routed to
// a slider.
package event

// Event is the marker interface for events. Handlers ignore
// events of types they don't recognize.
type Event interface {
	ImplementsEvent()
}
