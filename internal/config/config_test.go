// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/x/slide"
	"gioui.org/x/slide/f32"
	"gioui.org/x/slide/gesture"
	"gioui.org/x/slide/io/pointer"
	"gioui.org/x/slide/unit"
)

const scenario = `
options:
  directions: up|down
  target: parent
  auto_complete: 30
  duration_ms: 250
  curve: linear
  start_state: hidden
  touch_slop_dp: 4
  touchable_area_dp: 12
geometry:
  bounds: [0, 100, 100, 300]
  container: [0, 0, 100, 600]
  px_per_dp: 2
steps:
  - {at: 0, kind: press, x: 50, y: 150}
  - {at: 16, kind: move, x: 50, y: 200, pointer: 1}
  - {at: 500, call: show}
`

func TestLoad(t *testing.T) {
	t.Setenv(EnvDebug, "")
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, sc.Steps, 3)
	assert.Equal(t, "show", sc.Steps[2].Call)
	assert.Equal(t, 500*time.Millisecond, sc.Steps[2].Time())

	e, err := sc.Steps[1].Event()
	require.NoError(t, err)
	assert.Equal(t, pointer.Event{
		Kind:      pointer.Move,
		Source:    pointer.Touch,
		PointerID: 1,
		Time:      16 * time.Millisecond,
		Position:  f32.Pt(50, 200),
	}, e)

	g := sc.Geometry.Slide()
	assert.Equal(t, f32.Rect(0, 100, 100, 300), g.Bounds)
	assert.Equal(t, unit.Metric{PxPerDp: 2}, g.Metric)

	b, err := sc.Options.Builder()
	require.NoError(t, err)
	cfg, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, gesture.Vertical, cfg.Directions())
	assert.Equal(t, slide.TargetParent, cfg.Target())
	assert.Equal(t, float32(30), cfg.AutoComplete())
	assert.Equal(t, 250*time.Millisecond, cfg.Duration())
	assert.Equal(t, slide.Hidden, cfg.StartState())
	assert.Equal(t, unit.Dp(4), cfg.TouchSlop())
	assert.Equal(t, unit.Dp(12), cfg.TouchableArea())
	assert.True(t, cfg.GesturesEnabled())
	assert.False(t, cfg.Debug())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDebugOverride(t *testing.T) {
	t.Setenv(EnvDebug, "true")
	sc, err := Parse([]byte("options: {debug: false}"))
	require.NoError(t, err)
	assert.True(t, sc.Options.Debug)

	t.Setenv(EnvDebug, "maybe")
	_, err = Parse([]byte("options: {}"))
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	t.Setenv(EnvDebug, "")
	for name, doc := range map[string]string{
		"kind and call": "steps: [{kind: press, call: hide}]",
		"neither":       "steps: [{at: 3}]",
		"unordered":     "steps: [{at: 10, kind: press}, {at: 5, kind: release}]",
		"syntax":        "steps: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestBuilderErrors(t *testing.T) {
	for name, o := range map[string]Options{
		"directions": {Directions: "sideways"},
		"target":     {Target: "moon"},
		"curve":      {Curve: "bouncy"},
		"state":      {StartState: "half"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := o.Builder()
			assert.Error(t, err)
		})
	}
}

func TestStepEventKinds(t *testing.T) {
	for kind, want := range map[string]pointer.Kind{
		"press":   pointer.Press,
		"Move":    pointer.Move,
		"drag":    pointer.Drag,
		"release": pointer.Release,
		"cancel":  pointer.Cancel,
	} {
		e, err := Step{Kind: kind}.Event()
		require.NoError(t, err)
		assert.Equal(t, want, e.Kind)
	}
	_, err := Step{Kind: "scroll"}.Event()
	assert.Error(t, err)
}
