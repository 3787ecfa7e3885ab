// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"unicode"

	"github.com/aurelj/tao/events/key"
)

// Virtual-key codes for the named keys.
const (
	vkBack   = 0x08
	vkTab    = 0x09
	vkReturn = 0x0D
	vkEscape = 0x1B
	vkSpace  = 0x20
	vkPrior  = 0x21 // page up
	vkNext   = 0x22 // page down
	vkEnd    = 0x23
	vkHome   = 0x24
	vkLeft   = 0x25
	vkUp     = 0x26
	vkRight  = 0x27
	vkDown   = 0x28
	vkInsert = 0x2D
	vkDelete = 0x2E
	vkF1     = 0x70
)

var namedKeyVKs = map[key.Codes]uint16{
	key.CodeSpace:      vkSpace,
	key.CodeEnter:      vkReturn,
	key.CodeTab:        vkTab,
	key.CodeBackspace:  vkBack,
	key.CodeEscape:     vkEscape,
	key.CodeDelete:     vkDelete,
	key.CodeInsert:     vkInsert,
	key.CodeHome:       vkHome,
	key.CodeEnd:        vkEnd,
	key.CodePageUp:     vkPrior,
	key.CodePageDown:   vkNext,
	key.CodeArrowLeft:  vkLeft,
	key.CodeArrowRight: vkRight,
	key.CodeArrowUp:    vkUp,
	key.CodeArrowDown:  vkDown,
}

// keyToVK resolves a logical key to a virtual-key code. For letters and
// digits the result comes from VkKeyScanW on the current keyboard
// layout, so the high byte may carry implicit modifier state that the
// accelerator translation folds in. Named keys resolve through a fixed
// table with a clean high byte. ok is false when the key has no mapping.
func keyToVK(c key.Codes) (vk uint16, ok bool) {
	if v, ok := namedKeyVKs[c]; ok {
		return v, true
	}
	if c >= key.CodeF1 && c <= key.CodeF12 {
		return vkF1 + uint16(c-key.CodeF1), true
	}
	if r := c.Rune(); r != 0 {
		// Scan the typed character: lowercase for letters, so the scan
		// reflects the unshifted key.
		if c.IsLetter() {
			r = unicode.ToLower(r)
		}
		ret, _, _ := procVkKeyScanW.Call(uintptr(r))
		if int16(uint16(ret)) == -1 {
			return 0, false
		}
		return uint16(ret), true
	}
	return 0, false
}
