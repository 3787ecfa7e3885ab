// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "strings"

// Modifiers is a bitset of the modifier keys held as part of an
// accelerator.
type Modifiers uint8

const (
	// Ctrl is the control key.
	Ctrl Modifiers = 1 << iota

	// Shift is the shift key.
	Shift

	// Alt is the alt key (option on macOS).
	Alt

	// Super is the platform key: the Windows key, or command on macOS.
	Super
)

// Has reports whether every modifier in mods is set in m.
func (m Modifiers) Has(mods Modifiers) bool {
	return m&mods == mods
}

// HasCtrl reports whether the control key is set.
func (m Modifiers) HasCtrl() bool { return m.Has(Ctrl) }

// HasShift reports whether the shift key is set.
func (m Modifiers) HasShift() bool { return m.Has(Shift) }

// HasAlt reports whether the alt key is set.
func (m Modifiers) HasAlt() bool { return m.Has(Alt) }

// HasSuper reports whether the platform key is set.
func (m Modifiers) HasSuper() bool { return m.Has(Super) }

// String lists the set modifiers in the fixed Ctrl, Shift, Alt, Super
// order, joined with "+". The empty set renders as "".
func (m Modifiers) String() string {
	if m == 0 {
		return ""
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasSuper() {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}
