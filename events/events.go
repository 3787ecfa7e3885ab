// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the application-level events the menu subsystem
// emits, and the queue an event loop drains them from. Platform drivers
// never block on emission: they call a send callback, which typically
// forwards to [Queue.Send].
package events

import (
	"fmt"

	"github.com/aurelj/tao/menu"
	"github.com/aurelj/tao/system"
)

// Event is a tagged application event. The concrete types are [Menu],
// [WindowClose] and [LoopExit].
type Event interface {
	// WindowID returns the window the event pertains to, or
	// system.NoWindow for application-scoped events.
	WindowID() system.WindowID

	fmt.Stringer
}

// Menu reports that a custom menu item was selected, whether by mouse or
// by accelerator.
type Menu struct {
	// ID is the item's command identifier as registered via AddItem.
	ID menu.ID

	// Origin tells a menu-bar selection apart from a context-menu one.
	Origin menu.Origin

	// Window is the owning window, or system.NoWindow for menus not
	// bound to one.
	Window system.WindowID
}

func (e Menu) WindowID() system.WindowID { return e.Window }

func (e Menu) String() string {
	return fmt.Sprintf("Menu(%d, %v)", e.ID, e.Origin)
}

// WindowClose reports that the built-in close item asked for the window
// to be closed. The application decides whether to actually close it.
type WindowClose struct {
	Window system.WindowID
}

func (e WindowClose) WindowID() system.WindowID { return e.Window }

func (e WindowClose) String() string { return "WindowClose" }

// LoopExit reports that the built-in quit item asked for the event loop
// to terminate.
type LoopExit struct{}

func (LoopExit) WindowID() system.WindowID { return system.NoWindow }

func (LoopExit) String() string { return "LoopExit" }
