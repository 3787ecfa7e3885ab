// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// editCommand is a built-in clipboard action carried out by typing its
// shortcut into the focused control.
type editCommand int32

const (
	editCut editCommand = iota
	editCopy
	editPaste
	editSelectAll
)

func (c editCommand) vk() uint16 {
	switch c {
	case editCut:
		return 'X'
	case editCopy:
		return 'C'
	case editPaste:
		return 'V'
	case editSelectAll:
		return 'A'
	}
	return 0
}

// executor performs the built-in actions that touch the host system
// directly. Dispatch goes through this interface so its routing can be
// tested without injecting input or hiding windows.
type executor interface {
	// ExecuteEdit performs a clipboard built-in (cut/copy/paste/select
	// all) against whatever control has focus.
	ExecuteEdit(cmd editCommand)

	// ShowWindow applies a window-visibility command (swHide,
	// swMinimize) to hwnd.
	ShowWindow(hwnd windows.Handle, cmd uintptr)
}

// systemExecutor is the real thing.
type systemExecutor struct{}

// editInputs builds the synthetic key sequence for cmd: Ctrl down, key
// down, key up, Ctrl up. The order is load-bearing; releasing Ctrl
// before the key can leave the focused control with a stuck modifier.
func editInputs(cmd editCommand) [4]input {
	k := cmd.vk()
	var in [4]input
	in[0].typ = inputKeyboard
	in[0].ki.vk = vkControl
	in[1].typ = inputKeyboard
	in[1].ki.vk = k
	in[2].typ = inputKeyboard
	in[2].ki.vk = k
	in[2].ki.flags = keyeventfKeyup
	in[3].typ = inputKeyboard
	in[3].ki.vk = vkControl
	in[3].ki.flags = keyeventfKeyup
	return in
}

// ExecuteEdit types the command's shortcut into the host input stream.
// There is no direct menu-level API for these on Windows, so this does
// what the user would have done by hand.
func (systemExecutor) ExecuteEdit(cmd editCommand) {
	in := editInputs(cmd)
	procSendInput.Call(uintptr(len(in)),
		uintptr(unsafe.Pointer(&in[0])), unsafe.Sizeof(in[0]))
}

func (systemExecutor) ShowWindow(hwnd windows.Handle, cmd uintptr) {
	procShowWindow.Call(uintptr(hwnd), cmd)
}
