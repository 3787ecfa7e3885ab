// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menu

import (
	"strings"

	"github.com/aurelj/tao/events/key"
)

// Accelerator is a modifier+key combination that triggers a menu item
// without navigating the menu.
type Accelerator struct {
	Modifiers key.Modifiers
	Key       key.Codes
}

// Label renders the accelerator the way it is shown next to a menu item
// title: modifiers in the fixed Ctrl, Shift, Alt, Windows order, then the
// key's display form. Letters and digits render verbatim; named keys use
// the usual short names (these match LibreOffice); anything else falls
// back to the key's canonical name. The label is purely cosmetic and is
// produced even when the key has no native translation.
func (a Accelerator) Label() string {
	var s strings.Builder
	if a.Modifiers.HasCtrl() {
		s.WriteString("Ctrl+")
	}
	if a.Modifiers.HasShift() {
		s.WriteString("Shift+")
	}
	if a.Modifiers.HasAlt() {
		s.WriteString("Alt+")
	}
	if a.Modifiers.HasSuper() {
		s.WriteString("Windows+")
	}
	s.WriteString(keyLabel(a.Key))
	return s.String()
}

var shortKeyNames = map[key.Codes]string{
	key.CodeEscape:     "Esc",
	key.CodeDelete:     "Del",
	key.CodeInsert:     "Ins",
	key.CodePageUp:     "PgUp",
	key.CodePageDown:   "PgDn",
	key.CodeArrowLeft:  "Left",
	key.CodeArrowRight: "Right",
	key.CodeArrowUp:    "Up",
	key.CodeArrowDown:  "Down",
}

func keyLabel(c key.Codes) string {
	if c.IsLetter() || c.IsDigit() {
		return string(c.Rune())
	}
	if n, ok := shortKeyNames[c]; ok {
		return n
	}
	return c.String()
}
