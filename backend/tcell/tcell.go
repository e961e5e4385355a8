// Package tcell implements backend.Backend on top of gdamore/tcell.
package tcell

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-store/backend"
)

// Backend draws to a tcell screen.
type Backend struct {
	screen tcell.Screen
}

var (
	_ backend.Backend   = (*Backend)(nil)
	_ backend.RowWriter = (*Backend)(nil)
)

// New opens the controlling terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing screen, such as a simulation screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init initializes the screen.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	b.screen.Clear()
	return nil
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the screen size in cells.
func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

// SetContent writes one cell.
func (b *Backend) SetContent(x, y int, mainc rune, combc []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, combc, style)
}

// SetRow writes a run of cells starting at (startX, y).
func (b *Backend) SetRow(y int, startX int, cells []backend.Cell) {
	for i, cell := range cells {
		b.screen.SetContent(startX+i, y, cell.Rune, nil, cell.Style)
	}
}

// Show flushes pending writes to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// HideCursor hides the text cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// PollEvent waits for the next key, resize, or interrupt.
// Other tcell events are skipped.
func (b *Backend) PollEvent() backend.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			mod := e.Modifiers()
			return backend.KeyEvent{
				Key:   e.Key(),
				Rune:  e.Rune(),
				Alt:   mod&tcell.ModAlt != 0,
				Ctrl:  mod&tcell.ModCtrl != 0,
				Shift: mod&tcell.ModShift != 0,
			}
		case *tcell.EventResize:
			w, h := e.Size()
			return backend.ResizeEvent{Width: w, Height: h}
		case *tcell.EventInterrupt:
			return backend.InterruptEvent{}
		}
	}
}
