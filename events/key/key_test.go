// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeRunes(t *testing.T) {
	assert.Equal(t, 'A', CodeA.Rune())
	assert.Equal(t, 'Z', CodeZ.Rune())
	assert.Equal(t, '0', CodeDigit0.Rune())
	assert.Equal(t, '9', CodeDigit9.Rune())
	assert.Equal(t, rune(0), CodeEscape.Rune())

	assert.True(t, CodeQ.IsLetter())
	assert.False(t, CodeQ.IsDigit())
	assert.True(t, CodeDigit5.IsDigit())
	assert.False(t, CodeEnter.IsLetter())
}

func TestCodeStrings(t *testing.T) {
	assert.Equal(t, "A", CodeA.String())
	assert.Equal(t, "7", CodeDigit7.String())
	assert.Equal(t, "Escape", CodeEscape.String())
	assert.Equal(t, "PageDown", CodePageDown.String())
	assert.Equal(t, "F1", CodeF1.String())
	assert.Equal(t, "F12", CodeF12.String())
	assert.Equal(t, "ArrowLeft", CodeArrowLeft.String())
}

func TestModifiers(t *testing.T) {
	m := Ctrl | Shift
	assert.True(t, m.HasCtrl())
	assert.True(t, m.HasShift())
	assert.False(t, m.HasAlt())
	assert.False(t, m.HasSuper())
	assert.True(t, m.Has(Ctrl))
	assert.False(t, m.Has(Ctrl|Alt))

	assert.Equal(t, "", Modifiers(0).String())
	assert.Equal(t, "Ctrl+Shift", m.String())
	assert.Equal(t, "Ctrl+Shift+Alt+Super", (Ctrl | Shift | Alt | Super).String())
	assert.Equal(t, "Alt", Alt.String())
}
