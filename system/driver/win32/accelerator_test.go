// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurelj/tao/events/key"
	"github.com/aurelj/tao/menu"
)

func TestVirtFlags(t *testing.T) {
	tests := []struct {
		mods key.Modifiers
		want byte
	}{
		{0, fVirtkey},
		{key.Ctrl, fVirtkey | fControl},
		{key.Shift, fVirtkey | fShift},
		{key.Alt, fVirtkey | fAlt},
		{key.Ctrl | key.Shift | key.Alt, fVirtkey | fControl | fShift | fAlt},
		// the Windows key has no ACCEL representation
		{key.Super, fVirtkey},
		{key.Ctrl | key.Super, fVirtkey | fControl},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, virtFlags(tt.mods), "mods %v", tt.mods)
	}
}

func TestModifiersRoundTrip(t *testing.T) {
	// every encodable modifier combination survives encode+decode
	combos := []key.Modifiers{
		0, key.Ctrl, key.Shift, key.Alt,
		key.Ctrl | key.Shift, key.Ctrl | key.Alt, key.Shift | key.Alt,
		key.Ctrl | key.Shift | key.Alt,
	}
	for _, mods := range combos {
		a := Accel{Virt: virtFlags(mods)}
		assert.Equal(t, mods, a.Modifiers(), "mods %v", mods)
	}
}

func TestFoldScanMods(t *testing.T) {
	// plain key: nothing folded in
	vk, virt := foldScanMods(0x001B, fVirtkey)
	assert.Equal(t, uint16(0x1B), vk)
	assert.Equal(t, byte(fVirtkey), virt)

	// shifted symbol: VkKeyScan high byte 0x01 folds fShift in
	vk, virt = foldScanMods(0x0131, fVirtkey|fControl)
	assert.Equal(t, uint16(0x31), vk)
	assert.Equal(t, byte(fVirtkey|fControl|fShift), virt)

	// control and alt shift-states fold the same way
	_, virt = foldScanMods(0x0241, fVirtkey)
	assert.Equal(t, byte(fVirtkey|fControl), virt)
	_, virt = foldScanMods(0x0441, fVirtkey)
	assert.Equal(t, byte(fVirtkey|fAlt), virt)
}

func TestConvertAcceleratorNamedKey(t *testing.T) {
	a, ok := convertAccelerator(9, menu.Accelerator{Modifiers: key.Ctrl, Key: key.CodeEscape})
	assert.True(t, ok)
	assert.Equal(t, Accel{Virt: fVirtkey | fControl, Key: vkEscape, Cmd: 9}, a)
}

func TestConvertAcceleratorFunctionKey(t *testing.T) {
	a, ok := convertAccelerator(3, menu.Accelerator{Key: key.CodeF5})
	assert.True(t, ok)
	assert.Equal(t, Accel{Virt: fVirtkey, Key: vkF1 + 4, Cmd: 3}, a)
}

func TestConvertAcceleratorUnknownKey(t *testing.T) {
	_, ok := convertAccelerator(9, menu.Accelerator{Key: key.CodeUnknown})
	assert.False(t, ok)
}

func TestConvertAcceleratorLetter(t *testing.T) {
	// depends on the current keyboard layout only inasmuch as 'a' must
	// exist on it
	a, ok := convertAccelerator(1, menu.Accelerator{Modifiers: key.Ctrl | key.Shift, Key: key.CodeA})
	assert.True(t, ok)
	assert.Equal(t, uint16(1), a.Cmd)
	assert.True(t, a.Modifiers().Has(key.Ctrl|key.Shift))
}
