// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurelj/tao/events/key"
)

func TestAcceleratorLabel(t *testing.T) {
	tests := []struct {
		accel Accelerator
		want  string
	}{
		{Accelerator{key.Ctrl | key.Shift, key.CodeA}, "Ctrl+Shift+A"},
		{Accelerator{key.Ctrl, key.CodeC}, "Ctrl+C"},
		{Accelerator{0, key.CodeDigit7}, "7"},
		{Accelerator{key.Alt, key.CodeEscape}, "Alt+Esc"},
		{Accelerator{key.Shift, key.CodeDelete}, "Shift+Del"},
		{Accelerator{key.Ctrl, key.CodeInsert}, "Ctrl+Ins"},
		{Accelerator{0, key.CodePageUp}, "PgUp"},
		{Accelerator{0, key.CodePageDown}, "PgDn"},
		{Accelerator{0, key.CodeArrowLeft}, "Left"},
		{Accelerator{0, key.CodeArrowRight}, "Right"},
		{Accelerator{0, key.CodeArrowUp}, "Up"},
		{Accelerator{0, key.CodeArrowDown}, "Down"},
		// no short name: falls back to the canonical key name
		{Accelerator{key.Ctrl, key.CodeEnter}, "Ctrl+Enter"},
		{Accelerator{0, key.CodeF5}, "F5"},
		// full modifier set, fixed order
		{Accelerator{key.Ctrl | key.Shift | key.Alt | key.Super, key.CodeZ}, "Ctrl+Shift+Alt+Windows+Z"},
		{Accelerator{key.Super, key.CodeD}, "Windows+D"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.accel.Label())
	}
}
