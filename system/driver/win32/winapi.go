// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	comctl32 = windows.NewLazySystemDLL("comctl32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")

	procCreateMenu              = user32.NewProc("CreateMenu")
	procCreatePopupMenu         = user32.NewProc("CreatePopupMenu")
	procAppendMenuW             = user32.NewProc("AppendMenuW")
	procEnableMenuItem          = user32.NewProc("EnableMenuItem")
	procCheckMenuItem           = user32.NewProc("CheckMenuItem")
	procSetMenuItemInfoW        = user32.NewProc("SetMenuItemInfoW")
	procSetMenu                 = user32.NewProc("SetMenu")
	procShowWindow              = user32.NewProc("ShowWindow")
	procSendInput               = user32.NewProc("SendInput")
	procVkKeyScanW              = user32.NewProc("VkKeyScanW")
	procCreateAcceleratorTable  = user32.NewProc("CreateAcceleratorTableW")
	procDestroyAcceleratorTable = user32.NewProc("DestroyAcceleratorTable")

	procSetWindowSubclass = comctl32.NewProc("SetWindowSubclass")
	procDefSubclassProc   = comctl32.NewProc("DefSubclassProc")

	procCreateBitmap = gdi32.NewProc("CreateBitmap")
)

// Window messages handled by the menu subclass.
const (
	wmDestroy = 0x0002
	wmCommand = 0x0111
)

// AppendMenuW flags.
const (
	mfString    = 0x0000
	mfGrayed    = 0x0001
	mfDisabled  = 0x0002
	mfChecked   = 0x0008
	mfPopup     = 0x0010
	mfSeparator = 0x0800

	mfEnabled   = 0x0000
	mfUnchecked = 0x0000
	mfByCommand = 0x0000
)

// MENUITEMINFOW field masks.
const (
	miimString = 0x0040
	miimBitmap = 0x0080
)

// ShowWindow commands.
const (
	swHide     = 0
	swMinimize = 6
)

// SendInput keyboard events.
const (
	inputKeyboard  = 1
	keyeventfKeyup = 0x0002

	vkControl = 0x11
)

// Accel is one native accelerator table entry (the Win32 ACCEL
// structure). Virt always carries fVirtkey plus the modifier flags.
type Accel struct {
	Virt byte
	Key  uint16
	Cmd  uint16
}

// Accel.Virt flags.
const (
	fVirtkey = 0x01
	fShift   = 0x04
	fControl = 0x08
	fAlt     = 0x10
)

// menuItemInfo is MENUITEMINFOW.
type menuItemInfo struct {
	size         uint32
	mask         uint32
	typ          uint32
	state        uint32
	id           uint32
	subMenu      windows.Handle
	bmpChecked   windows.Handle
	bmpUnchecked windows.Handle
	itemData     uintptr
	typeData     *uint16
	cch          uint32
	bmpItem      windows.Handle
}

// keybdInput is KEYBDINPUT.
type keybdInput struct {
	vk        uint16
	scan      uint16
	flags     uint32
	time      uint32
	extraInfo uintptr
}

// input is INPUT restricted to the keyboard arm of the union, padded to
// the full union size (MOUSEINPUT is the largest member).
type input struct {
	typ uint32
	_   uint32
	ki  keybdInput
	_   [8]byte
}
