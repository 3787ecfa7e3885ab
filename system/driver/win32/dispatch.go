// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/windows"

	"github.com/aurelj/tao/events"
	"github.com/aurelj/tao/menu"
	"github.com/aurelj/tao/system"
)

// menuSubclassID distinguishes this subsystem's window subclass from any
// other subclasses installed on the same window.
const menuSubclassID = 4568

// ErrUnsupportedHandle is returned by [Attach] when the raw window
// handle is not a [system.Win32Handle]. No menu is installed in that
// case.
var ErrUnsupportedHandle = errors.New("win32: unsupported window handle kind")

// Handler is the per-window dispatch state: it turns WM_COMMAND
// notifications into application events. Once attached it is owned by
// the window's subclass storage and lives until the window's destroy
// notification; callers must not retain it past Attach.
type Handler struct {
	send     func(events.Event)
	origin   menu.Origin
	window   system.WindowID
	registry *menu.Registry
	exec     executor
}

// NewHandler returns a dispatch handler emitting through send. The
// origin and window values are echoed in every menu event. reg must be
// the registry the window's menus were built with; nil uses
// [menu.DefaultRegistry]. send is registered once and invoked for every
// dispatched event on the UI message thread, so it must not block.
func NewHandler(send func(events.Event), origin menu.Origin, window system.WindowID, reg *menu.Registry) *Handler {
	if reg == nil {
		reg = menu.DefaultRegistry()
	}
	return &Handler{
		send:     send,
		origin:   origin,
		window:   window,
		registry: reg,
		exec:     systemExecutor{},
	}
}

// handlers is the arena that owns attached handlers. The subclass
// refData carries only an arena cookie across the native boundary, never
// a pointer, so teardown is a map delete: reclaiming twice is impossible
// by construction and the GC handles the memory.
var handlers = struct {
	mu   sync.Mutex
	next uintptr
	m    map[uintptr]*Handler
}{m: map[uintptr]*Handler{}}

func putHandler(h *Handler) uintptr {
	handlers.mu.Lock()
	defer handlers.mu.Unlock()
	handlers.next++
	handlers.m[handlers.next] = h
	return handlers.next
}

func getHandler(cookie uintptr) *Handler {
	handlers.mu.Lock()
	defer handlers.mu.Unlock()
	return handlers.m[cookie]
}

func delHandler(cookie uintptr) {
	handlers.mu.Lock()
	defer handlers.mu.Unlock()
	delete(handlers.m, cookie)
}

// subclassCallback returns the shared native-callable subclass
// procedure. NewCallback allocations are permanent, so there is exactly
// one for the whole process.
var subclassCallback = sync.OnceValue(func() uintptr {
	return windows.NewCallback(subclassProc)
})

// Attach installs menu m on the window: the dispatch handler becomes the
// window's subclass state, the menu bar is set, and, if the menu has any
// accelerators, the merged table is installed for the host loop to pick
// up via [AcceleratorHandle]. It returns the native menu handle, or
// [ErrUnsupportedHandle] if handle is not the Win32 kind.
func Attach(m *Menu, handle system.RawWindowHandle, h *Handler) (windows.Handle, error) {
	w32, ok := handle.(system.Win32Handle)
	if !ok {
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedHandle, handle)
	}
	hwnd := windows.Handle(w32.HWND)

	cookie := putHandler(h)
	ret, _, err := procSetWindowSubclass.Call(uintptr(hwnd),
		subclassCallback(), menuSubclassID, cookie)
	if ret == 0 {
		delHandler(cookie)
		return 0, fmt.Errorf("win32: SetWindowSubclass: %w", err)
	}

	procSetMenu.Call(uintptr(hwnd), uintptr(m.hmenu))

	if entries := m.AcceleratorTable(); len(entries) > 0 {
		registerAccel(hwnd, entries)
	}
	return m.hmenu, nil
}

// subclassProc sees every message sent to an attached window. It owns
// WM_COMMAND; everything else goes to the default subclass handler, with
// WM_DESTROY additionally releasing the per-window dispatch state on its
// way through.
func subclassProc(hwnd, msg, wParam, lParam, id, refData uintptr) uintptr {
	h := getHandler(refData)

	if msg == wmDestroy {
		delHandler(refData)
		dropAccel(windows.Handle(hwnd))
	}

	if msg == wmCommand && h != nil {
		h.command(windows.Handle(hwnd), wParam)
		return 0
	}
	ret, _, _ := procDefSubclassProc.Call(hwnd, msg, wParam, lParam)
	return ret
}

// command routes one WM_COMMAND. Reserved built-in IDs are matched
// first; otherwise the low word is a candidate custom ID checked against
// the registry. Anything else is a host-generated command this
// subsystem does not own, dropped without comment.
func (h *Handler) command(hwnd windows.Handle, wParam uintptr) {
	switch wParam {
	case cutID:
		h.exec.ExecuteEdit(editCut)
	case copyID:
		h.exec.ExecuteEdit(editCopy)
	case pasteID:
		h.exec.ExecuteEdit(editPaste)
	case selectAllID:
		h.exec.ExecuteEdit(editSelectAll)
	case hideID:
		h.exec.ShowWindow(hwnd, swHide)
	case minimizeID:
		h.exec.ShowWindow(hwnd, swMinimize)
	case closeID:
		h.send(events.WindowClose{Window: system.WindowID(hwnd)})
	case quitID:
		h.send(events.LoopExit{})
	default:
		cand := menu.ID(wParam & 0xffff)
		if h.registry.Contains(cand) {
			h.send(events.Menu{ID: cand, Origin: h.origin, Window: h.window})
		}
	}
}
