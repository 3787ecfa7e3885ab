// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package menu holds the platform-independent vocabulary of the menu
// subsystem: item identifiers, built-in item kinds, accelerators and the
// process-wide identifier registry. Platform drivers (see
// system/driver/win32) provide the actual menu builders on top of these
// types.
package menu

// ID identifies a custom menu item. IDs are caller-chosen 16-bit values,
// unique among custom items across the process. They must avoid the
// reserved built-in block (5001-5008 on Windows) and the host system's
// own reserved command ranges; the subsystem does not detect collisions.
type ID uint16

// Origin is the logical place a menu is mounted, echoed back in every
// menu event so applications can tell a menu-bar selection from a
// context-menu one.
type Origin int32

const (
	// Menubar is a window-scoped menu bar.
	Menubar Origin = iota

	// Context is an application-scoped popup (context) menu.
	Context
)

func (o Origin) String() string {
	switch o {
	case Menubar:
		return "Menubar"
	case Context:
		return "Context"
	}
	return "Origin(?)"
}

// ItemKind enumerates the built-in menu items. Kinds a platform has no
// native implementation for are accepted by the builders and produce no
// visible entry; that is deliberate forward compatibility, not an error.
type ItemKind int32

const (
	Separator ItemKind = iota
	Cut
	Copy
	Paste
	SelectAll
	Hide
	CloseWindow
	Quit
	Minimize

	// The remaining kinds have no Windows implementation today and are
	// no-ops there.
	About
	Services
	HideOthers
	ShowAll
	Undo
	Redo
	EnterFullScreen
	Zoom
)

var itemKindNames = map[ItemKind]string{
	Separator:       "Separator",
	Cut:             "Cut",
	Copy:            "Copy",
	Paste:           "Paste",
	SelectAll:       "SelectAll",
	Hide:            "Hide",
	CloseWindow:     "CloseWindow",
	Quit:            "Quit",
	Minimize:        "Minimize",
	About:           "About",
	Services:        "Services",
	HideOthers:      "HideOthers",
	ShowAll:         "ShowAll",
	Undo:            "Undo",
	Redo:            "Redo",
	EnterFullScreen: "EnterFullScreen",
	Zoom:            "Zoom",
}

func (k ItemKind) String() string {
	if n, ok := itemKindNames[k]; ok {
		return n
	}
	return "ItemKind(?)"
}
