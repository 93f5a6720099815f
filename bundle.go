// SPDX-License-Identifier: Unlicense OR MIT

package slide

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"

	"gioui.org/x/slide/gesture"
	"gioui.org/x/slide/unit"
)

// Bundle is a flat record of saved slider parameters, for hosts that
// persist UI state across restarts.
type Bundle map[string]any

// Bundle keys.
const (
	KeyStateSaved    = "slide_state_saved"
	KeyDirection     = "slide_start_direction"
	KeyState         = "slide_state"
	KeyDuration      = "slide_auto_slide_duration"
	KeyHideSoftInput = "slide_hide_soft_input"
	KeyDebug         = "slide_debug"
	KeyTouchableArea = "slide_touchable_area"
)

// Save stores the parameters and the current state of s in b.
func (s *Slider) Save(b Bundle) {
	b[KeyStateSaved] = true
	b[KeyDirection] = s.cfg.directions.String()
	b[KeyState] = s.n.state.String()
	b[KeyDuration] = s.cfg.duration.Milliseconds()
	b[KeyHideSoftInput] = s.cfg.hideKeyboard
	b[KeyDebug] = s.cfg.debug
	b[KeyTouchableArea] = float64(s.cfg.touchableArea)
}

// Restore applies the parameters saved in b. Keys missing from b
// keep their current values. If b was written by Slider.Save, later
// calls to Directions, Duration, HideKeyboard and StartState are
// ignored so that defaults passed after a restore don't override the
// saved values.
func (b *Builder) Restore(saved Bundle) *Builder {
	if saved == nil || b.err != nil {
		return b
	}
	if err := b.restore(saved); err != nil {
		b.err = fmt.Errorf("slide: restore: %w", err)
	}
	return b
}

func (b *Builder) restore(saved Bundle) error {
	marker, _, err := saved.GetBool(KeyStateSaved)
	if err != nil {
		return err
	}
	if v, ok, err := saved.GetString(KeyDirection); err != nil {
		return err
	} else if ok {
		dirs, err := gesture.ParseDirections(v)
		if err != nil {
			return err
		}
		b.cfg.directions = dirs
	}
	if v, ok, err := saved.GetString(KeyState); err != nil {
		return err
	} else if ok {
		st, err := ParseState(v)
		if err != nil {
			return err
		}
		b.cfg.startState = st
	}
	if v, ok, err := saved.GetInt(KeyDuration); err != nil {
		return err
	} else if ok {
		b.cfg.duration = time.Duration(v) * time.Millisecond
	}
	if v, ok, err := saved.GetBool(KeyHideSoftInput); err != nil {
		return err
	} else if ok {
		b.cfg.hideKeyboard = v
	}
	if v, ok, err := saved.GetBool(KeyDebug); err != nil {
		return err
	} else if ok {
		b.cfg.debug = v
	}
	if v, ok, err := saved.GetFloat(KeyTouchableArea); err != nil {
		return err
	} else if ok {
		b.cfg.touchableArea = unit.Dp(v)
	}
	b.restored = marker
	return nil
}

// GetBool returns the boolean stored at key.
func (b Bundle) GetBool(key string) (v, ok bool, err error) {
	raw, ok := b[key]
	if !ok {
		return false, false, nil
	}
	v, ok = raw.(bool)
	if !ok {
		return false, false, fmt.Errorf("key %s: %T is not a bool", key, raw)
	}
	return v, true, nil
}

// GetString returns the string stored at key.
func (b Bundle) GetString(key string) (string, bool, error) {
	raw, ok := b[key]
	if !ok {
		return "", false, nil
	}
	v, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("key %s: %T is not a string", key, raw)
	}
	return v, true, nil
}

// GetInt returns the integer stored at key.
func (b Bundle) GetInt(key string) (int64, bool, error) {
	raw, ok := b[key]
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case int64:
		return v, true, nil
	case int:
		return int64(v), true, nil
	case int32:
		return int64(v), true, nil
	default:
		return 0, false, fmt.Errorf("key %s: %T is not an integer", key, raw)
	}
}

// GetFloat returns the number stored at key.
func (b Bundle) GetFloat(key string) (float64, bool, error) {
	raw, ok := b[key]
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	default:
		return 0, false, fmt.Errorf("key %s: %T is not a number", key, raw)
	}
}

// Encode writes b to w in TOML.
func (b Bundle) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(map[string]any(b))
}

// DecodeBundle reads a Bundle written by Encode.
func DecodeBundle(r io.Reader) (Bundle, error) {
	m := make(map[string]any)
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("slide: decode bundle: %w", err)
	}
	return Bundle(m), nil
}
