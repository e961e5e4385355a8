// Package backend abstracts the terminal the runtime draws to.
package backend

import "github.com/gdamore/tcell/v2"

// Style is the visual style of a cell.
type Style = tcell.Style

// Color is a terminal color.
type Color = tcell.Color

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return tcell.StyleDefault
}

// Cell is a single rune and its style.
type Cell struct {
	Rune  rune
	Style Style
}

// Backend is a terminal surface that can be drawn to and polled for input.
type Backend interface {
	Init() error
	Fini()
	Size() (width, height int)
	SetContent(x, y int, mainc rune, combc []rune, style Style)
	Show()
	HideCursor()
	// PollEvent blocks for the next event and returns nil once the
	// backend has been finalized.
	PollEvent() Event
}

// Event is input delivered by a Backend.
type Event interface {
	isEvent()
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key   tcell.Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyEvent) isEvent() {}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// InterruptEvent wakes a blocked poller without carrying input.
type InterruptEvent struct{}

func (InterruptEvent) isEvent() {}
