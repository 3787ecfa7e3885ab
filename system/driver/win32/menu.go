// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/aurelj/tao/menu"
)

// Command IDs reserved for the built-in items. The block sits above the
// system-defined command ranges and below typical application IDs;
// custom item IDs must avoid it.
const (
	cutID       = 5001
	copyID      = 5002
	pasteID     = 5003
	selectAllID = 5004
	hideID      = 5005
	closeID     = 5006
	quitID      = 5007
	minimizeID  = 5008
)

// Labels for the built-in items, in the stock Windows phrasing. The
// part after the tab renders right-aligned as the hotkey hint.
var nativeItemLabels = map[menu.ItemKind]string{
	menu.Cut:         "&Cut\tCtrl+X",
	menu.Copy:        "&Copy\tCtrl+C",
	menu.Paste:       "&Paste\tCtrl+V",
	menu.SelectAll:   "&Select all\tCtrl+A",
	menu.Hide:        "&Hide\tCtrl+H",
	menu.CloseWindow: "&Close\tAlt+F4",
	menu.Quit:        "&Quit",
	menu.Minimize:    "&Minimize",
}

var nativeItemIDs = map[menu.ItemKind]uintptr{
	menu.Cut:         cutID,
	menu.Copy:        copyID,
	menu.Paste:       pasteID,
	menu.SelectAll:   selectAllID,
	menu.Hide:        hideID,
	menu.CloseWindow: closeID,
	menu.Quit:        quitID,
	menu.Minimize:    minimizeID,
}

// Menu owns a native menu handle under construction plus the union of
// every accelerator registered on it and on every submenu merged into
// it. The handle is exclusively owned until [Attach]; afterwards the
// window's destroy sequence releases it, which is why Menu has no
// destructor of its own.
type Menu struct {
	hmenu    windows.Handle
	accels   map[menu.ID]Accel
	registry *menu.Registry
}

// NewMenu creates an empty menu suitable for use as a window's menu bar.
// Items added via AddItem register their IDs in reg; a nil reg uses
// [menu.DefaultRegistry]. The same registry must be given to the
// [Handler] that dispatches for this menu.
func NewMenu(reg *menu.Registry) (*Menu, error) {
	h, _, err := procCreateMenu.Call()
	if h == 0 {
		return nil, fmt.Errorf("win32: CreateMenu: %w", err)
	}
	return newMenu(windows.Handle(h), reg), nil
}

// NewPopupMenu creates an empty popup-style menu, used for submenus and
// context menus.
func NewPopupMenu(reg *menu.Registry) (*Menu, error) {
	h, _, err := procCreatePopupMenu.Call()
	if h == 0 {
		return nil, fmt.Errorf("win32: CreatePopupMenu: %w", err)
	}
	return newMenu(windows.Handle(h), reg), nil
}

func newMenu(h windows.Handle, reg *menu.Registry) *Menu {
	if reg == nil {
		reg = menu.DefaultRegistry()
	}
	return &Menu{hmenu: h, accels: map[menu.ID]Accel{}, registry: reg}
}

// Handle returns the native menu handle.
func (m *Menu) Handle() windows.Handle {
	return m.hmenu
}

// AcceleratorTable returns the merged native accelerator entries of this
// menu and everything merged into it, or nil if none were registered.
// Callers use nil to skip installing a host accelerator table entirely.
func (m *Menu) AcceleratorTable() []Accel {
	if len(m.accels) == 0 {
		return nil
	}
	out := make([]Accel, 0, len(m.accels))
	for _, a := range m.accels {
		out = append(out, a)
	}
	return out
}

// AddItem appends a custom item. If accel is non-nil the title gains a
// formatted hotkey suffix, and when the key translates to a virtual-key
// code an accelerator entry is stored under id (translation failure
// only loses the hotkey, never the item). The id is recorded in the
// registry so dispatch can recognize it; the caller must keep ids
// unique across live items, as duplicates are not detected and make
// native dispatch ambiguous.
func (m *Menu) AddItem(id menu.ID, title string, accel *menu.Accelerator, enabled, selected bool) (*ItemAttributes, error) {
	flags := uintptr(mfString)
	if !enabled {
		flags |= mfGrayed
	}
	if selected {
		flags |= mfChecked
	}

	annotated := title
	if accel != nil {
		annotated += "\t" + accel.Label()
	}
	wtitle, err := windows.UTF16PtrFromString(annotated)
	if err != nil {
		return nil, fmt.Errorf("win32: menu item title: %w", err)
	}

	ret, _, err := procAppendMenuW.Call(uintptr(m.hmenu), flags, uintptr(id),
		uintptr(unsafe.Pointer(wtitle)))
	if ret == 0 {
		return nil, fmt.Errorf("win32: AppendMenuW: %w", err)
	}

	if accel != nil {
		if a, ok := convertAccelerator(id, *accel); ok {
			m.accels[id] = a
		}
	}
	m.registry.Add(id)
	return &ItemAttributes{id: id, hmenu: m.hmenu}, nil
}

// AddSubmenu appends sub as a nested popup titled title. The submenu's
// accelerators move into this menu (last merge wins on a duplicate ID),
// leaving sub's own table empty: only the root menu's merged table gets
// installed on the window. A disabled submenu renders grayed but stays
// structurally present.
func (m *Menu) AddSubmenu(title string, enabled bool, sub *Menu) error {
	for id, a := range sub.accels {
		m.accels[id] = a
	}
	sub.accels = map[menu.ID]Accel{}

	flags := uintptr(mfPopup)
	if !enabled {
		flags |= mfDisabled
	}
	wtitle, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("win32: submenu title: %w", err)
	}
	ret, _, err := procAppendMenuW.Call(uintptr(m.hmenu), flags,
		uintptr(sub.hmenu), uintptr(unsafe.Pointer(wtitle)))
	if ret == 0 {
		return fmt.Errorf("win32: AppendMenuW: %w", err)
	}
	return nil
}

// AddNativeItem appends one of the built-in kinds with its reserved
// command ID and stock label. Kinds with no Windows implementation are
// accepted and skipped so cross-platform menu definitions need no
// per-platform filtering.
func (m *Menu) AddNativeItem(kind menu.ItemKind) error {
	if kind == menu.Separator {
		ret, _, err := procAppendMenuW.Call(uintptr(m.hmenu), mfSeparator, 0, 0)
		if ret == 0 {
			return fmt.Errorf("win32: AppendMenuW: %w", err)
		}
		return nil
	}

	label, ok := nativeItemLabels[kind]
	if !ok {
		return nil
	}
	wlabel, err := windows.UTF16PtrFromString(label)
	if err != nil {
		return fmt.Errorf("win32: native item label: %w", err)
	}
	ret, _, err := procAppendMenuW.Call(uintptr(m.hmenu), mfString,
		nativeItemIDs[kind], uintptr(unsafe.Pointer(wlabel)))
	if ret == 0 {
		return fmt.Errorf("win32: AppendMenuW: %w", err)
	}
	return nil
}

// ItemAttributes mutates the visual state of one custom item. All
// setters call straight into the native menu; there is no shadow state
// to fall out of sync.
type ItemAttributes struct {
	id    menu.ID
	hmenu windows.Handle
}

// ID returns the item's command identifier.
func (it *ItemAttributes) ID() menu.ID {
	return it.id
}

// SetEnabled enables or grays the item.
func (it *ItemAttributes) SetEnabled(enabled bool) {
	state := uintptr(mfEnabled)
	if !enabled {
		state = mfDisabled
	}
	procEnableMenuItem.Call(uintptr(it.hmenu), uintptr(it.id), mfByCommand|state)
}

// SetSelected sets or clears the item's check mark.
func (it *ItemAttributes) SetSelected(selected bool) {
	state := uintptr(mfUnchecked)
	if selected {
		state = mfChecked
	}
	procCheckMenuItem.Call(uintptr(it.hmenu), uintptr(it.id), mfByCommand|state)
}

// SetTitle replaces the item's title text. Any hotkey suffix must be
// re-supplied by the caller (title + "\t" + label), matching how AddItem
// composed it.
func (it *ItemAttributes) SetTitle(title string) error {
	wtitle, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("win32: menu item title: %w", err)
	}
	info := menuItemInfo{
		mask:     miimString,
		typeData: wtitle,
	}
	info.size = uint32(unsafe.Sizeof(info))
	ret, _, err := procSetMenuItemInfoW.Call(uintptr(it.hmenu), uintptr(it.id),
		0, uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return fmt.Errorf("win32: SetMenuItemInfoW: %w", err)
	}
	return nil
}

// SetIcon decodes icon and installs it as the item's 16x16 bitmap.
func (it *ItemAttributes) SetIcon(icon []byte) error {
	bmp, err := menuBitmap(icon)
	if err != nil {
		return err
	}
	info := menuItemInfo{
		mask:    miimBitmap,
		bmpItem: bmp,
	}
	info.size = uint32(unsafe.Sizeof(info))
	ret, _, err := procSetMenuItemInfoW.Call(uintptr(it.hmenu), uintptr(it.id),
		0, uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return fmt.Errorf("win32: SetMenuItemInfoW: %w", err)
	}
	return nil
}
