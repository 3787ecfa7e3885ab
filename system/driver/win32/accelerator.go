// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"log/slog"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/aurelj/tao/events/key"
	"github.com/aurelj/tao/menu"
)

// virtFlags composes the ACCEL flag byte from an accelerator's modifier
// set. The Windows accelerator table has no flag for the Windows key, so
// Super does not encode; fVirtkey is always set because entries store
// virtual-key codes, not characters.
func virtFlags(mods key.Modifiers) byte {
	v := byte(fVirtkey)
	if mods.HasCtrl() {
		v |= fControl
	}
	if mods.HasAlt() {
		v |= fAlt
	}
	if mods.HasShift() {
		v |= fShift
	}
	return v
}

// foldScanMods splits a VkKeyScanW result into its virtual-key code and
// the flags with the scan's implicit shift-state byte OR'ed in. A key
// that only types with shift held (a shifted symbol) must carry fShift
// in its accelerator entry even if the caller did not ask for it.
func foldScanMods(scan uint16, virt byte) (vk uint16, flags byte) {
	mod := scan >> 8
	if mod&0x01 != 0 {
		virt |= fShift
	}
	if mod&0x02 != 0 {
		virt |= fControl
	}
	if mod&0x04 != 0 {
		virt |= fAlt
	}
	return scan & 0x00ff, virt
}

// Modifiers decodes the entry's flag byte back into the portable
// modifier set. Implicit modifiers folded in from the keyboard layout
// are indistinguishable from requested ones, which is the point: the
// entry fires on what the user actually holds.
func (a Accel) Modifiers() key.Modifiers {
	var m key.Modifiers
	if a.Virt&fControl != 0 {
		m |= key.Ctrl
	}
	if a.Virt&fShift != 0 {
		m |= key.Shift
	}
	if a.Virt&fAlt != 0 {
		m |= key.Alt
	}
	return m
}

// convertAccelerator translates an accelerator into a native table entry
// bound to the given command ID. ok is false when the logical key has no
// virtual-key mapping; the caller omits the entry and keeps the item,
// since a menu item without a working hotkey is still a menu item.
func convertAccelerator(id menu.ID, a menu.Accelerator) (Accel, bool) {
	scan, ok := keyToVK(a.Key)
	if !ok {
		slog.Error("win32: no virtual-key code for accelerator key", "key", a.Key)
		return Accel{}, false
	}
	vk, virt := foldScanMods(scan, virtFlags(a.Modifiers))
	return Accel{Virt: virt, Key: vk, Cmd: uint16(id)}, true
}

// accelTables tracks the accelerator table installed for each window, so
// the host message loop can fetch it for TranslateAccelerator and so
// re-attaching a menu replaces rather than leaks the old table.
var accelTables = struct {
	mu sync.Mutex
	m  map[windows.Handle]windows.Handle
}{m: map[windows.Handle]windows.Handle{}}

// registerAccel builds a native accelerator table from entries and
// installs it for hwnd, destroying any previous table.
func registerAccel(hwnd windows.Handle, entries []Accel) {
	h, _, _ := procCreateAcceleratorTable.Call(
		uintptr(unsafe.Pointer(&entries[0])), uintptr(len(entries)))
	if h == 0 {
		slog.Error("win32: CreateAcceleratorTable failed", "entries", len(entries))
		return
	}
	accelTables.mu.Lock()
	old := accelTables.m[hwnd]
	accelTables.m[hwnd] = windows.Handle(h)
	accelTables.mu.Unlock()
	if old != 0 {
		procDestroyAcceleratorTable.Call(uintptr(old))
	}
}

// AcceleratorHandle returns the accelerator table installed for hwnd by
// [Attach], or 0 if there is none. Message loops pass it to
// TranslateAccelerator so registered hotkeys reach the menu dispatch as
// WM_COMMAND.
func AcceleratorHandle(hwnd windows.Handle) windows.Handle {
	accelTables.mu.Lock()
	defer accelTables.mu.Unlock()
	return accelTables.m[hwnd]
}

// dropAccel destroys and forgets the table for hwnd, if any. Called once
// from the subclass teardown path.
func dropAccel(hwnd windows.Handle) {
	accelTables.mu.Lock()
	h := accelTables.m[hwnd]
	delete(accelTables.m, hwnd)
	accelTables.mu.Unlock()
	if h != 0 {
		procDestroyAcceleratorTable.Call(uintptr(h))
	}
}
