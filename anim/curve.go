// SPDX-License-Identifier: Unlicense OR MIT

package anim

import "github.com/chewxy/math32"

// Curve maps the elapsed fraction of an animation, in [0, 1], to the
// fraction of the distance covered. A Curve must map 0 to 0 and 1 to 1.
type Curve func(t float32) float32

// Linear covers the distance at a constant rate.
func Linear(t float32) float32 {
	return t
}

// Decelerate starts fast and slows down towards the end. It is the
// default curve of a slider fling.
func Decelerate(t float32) float32 {
	u := 1 - t
	return 1 - u*u
}

// Accelerate starts slow and speeds up towards the end.
func Accelerate(t float32) float32 {
	return t * t
}

// AccelerateDecelerate starts and ends slowly, and is fastest in the
// middle.
func AccelerateDecelerate(t float32) float32 {
	return math32.Cos((t+1)*math32.Pi)/2 + .5
}

// CurveByName returns the curve for one of "linear", "decelerate",
// "accelerate" or "accelerate-decelerate".
func CurveByName(name string) (Curve, bool) {
	switch name {
	case "linear":
		return Linear, true
	case "decelerate", "":
		return Decelerate, true
	case "accelerate":
		return Accelerate, true
	case "accelerate-decelerate":
		return AccelerateDecelerate, true
	default:
		return nil, false
	}
}
