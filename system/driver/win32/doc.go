// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package win32 is the Windows driver for the menu subsystem. It builds
// native menu bars and popup menus, translates portable accelerators
// into Win32 accelerator tables, and subclasses attached windows to
// route WM_COMMAND notifications into application [events].
//
// Everything here runs on the window's UI message thread; menus are not
// safe for concurrent mutation. A [Menu] owns its native handle only
// until [Attach]; from then on the window's destroy sequence releases
// both the menu and the per-window dispatch state.
//
// All files except this one build only on Windows.
package win32
