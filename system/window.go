// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system carries the window abstractions shared between the
// portable API and the platform drivers under system/driver.
package system

// WindowID identifies a window within the process. It is opaque to
// applications: drivers mint it from the native handle and echo it back
// in events so the application can route them. The zero value NoWindow
// means "no particular window" (application-scoped events).
type WindowID uintptr

// NoWindow is the WindowID carried by events that do not pertain to a
// specific window.
const NoWindow WindowID = 0

// IsValid reports whether the ID names an actual window.
func (w WindowID) IsValid() bool { return w != NoWindow }

// RawWindowHandle is a sum type over the native window handle kinds the
// drivers understand. Each driver pattern-matches for its own kind and
// reports an unsupported-handle error for the rest, so a caller can pass
// any handle through without pre-sorting by platform.
type RawWindowHandle interface {
	isRawWindowHandle()
}

// Win32Handle is the raw handle kind the Windows driver accepts.
type Win32Handle struct {
	// HWND is the native window handle.
	HWND uintptr

	// HInstance is the module instance the window class was registered
	// with. It is informational here; the menu subsystem does not need it.
	HInstance uintptr
}

func (Win32Handle) isRawWindowHandle() {}

// XlibHandle is the raw handle kind X11 drivers accept. The Windows
// driver reports it as unsupported.
type XlibHandle struct {
	// Window is the X11 window XID.
	Window uintptr

	// Display is the Xlib Display pointer.
	Display uintptr
}

func (XlibHandle) isRawWindowHandle() {}
