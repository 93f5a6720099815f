// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	for _, tc := range []struct {
		typ Kind
		res string
	}{
		{Cancel, "Cancel"},
		{Press, "Press"},
		{Release, "Release"},
		{Move, "Move"},
		{Drag, "Drag"},
		{Press | Release, "Press|Release"},
		{Move | Drag, "Move|Drag"},
		{Cancel | Press | Drag, "Cancel|Press|Drag"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.typ.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}

func TestButtons(t *testing.T) {
	b := ButtonPrimary | ButtonTertiary
	if want, got := "ButtonPrimary|ButtonTertiary", b.String(); want != got {
		t.Errorf("got %q; want %q", got, want)
	}
	if !b.Contain(ButtonPrimary) || b.Contain(ButtonPrimary|ButtonSecondary) {
		t.Errorf("%v: unexpected Contain result", b)
	}
}
