// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the logical keyboard keys and modifier sets used
// by menu accelerators. Codes name physical-independent logical keys;
// platform drivers translate them to native virtual-key codes.
package key

import "fmt"

// Codes is the logical key in an accelerator: a letter, a digit, or one
// of the named keys. The zero value is CodeUnknown.
type Codes int32

const (
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	CodeDigit0
	CodeDigit1
	CodeDigit2
	CodeDigit3
	CodeDigit4
	CodeDigit5
	CodeDigit6
	CodeDigit7
	CodeDigit8
	CodeDigit9

	CodeSpace
	CodeEnter
	CodeTab
	CodeBackspace
	CodeEscape
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown

	CodeArrowLeft
	CodeArrowRight
	CodeArrowUp
	CodeArrowDown

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

// IsLetter reports whether the code is one of CodeA..CodeZ.
func (c Codes) IsLetter() bool {
	return c >= CodeA && c <= CodeZ
}

// IsDigit reports whether the code is one of CodeDigit0..CodeDigit9.
func (c Codes) IsDigit() bool {
	return c >= CodeDigit0 && c <= CodeDigit9
}

// Rune returns the character for letter and digit codes: 'A'..'Z' and
// '0'..'9'. It returns 0 for every other code.
func (c Codes) Rune() rune {
	switch {
	case c.IsLetter():
		return 'A' + rune(c-CodeA)
	case c.IsDigit():
		return '0' + rune(c-CodeDigit0)
	}
	return 0
}

var codeNames = map[Codes]string{
	CodeUnknown:    "Unknown",
	CodeSpace:      "Space",
	CodeEnter:      "Enter",
	CodeTab:        "Tab",
	CodeBackspace:  "Backspace",
	CodeEscape:     "Escape",
	CodeDelete:     "Delete",
	CodeInsert:     "Insert",
	CodeHome:       "Home",
	CodeEnd:        "End",
	CodePageUp:     "PageUp",
	CodePageDown:   "PageDown",
	CodeArrowLeft:  "ArrowLeft",
	CodeArrowRight: "ArrowRight",
	CodeArrowUp:    "ArrowUp",
	CodeArrowDown:  "ArrowDown",
}

// String returns the canonical name of the key, e.g. "A", "5", "Escape",
// "F11".
func (c Codes) String() string {
	switch {
	case c.IsLetter() || c.IsDigit():
		return string(c.Rune())
	case c >= CodeF1 && c <= CodeF12:
		return fmt.Sprintf("F%d", int(c-CodeF1)+1)
	}
	if n, ok := codeNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Codes(%d)", int32(c))
}
