// Package widgets provides reusable widgets for terminal UIs.
package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-store/runtime"
)

// Alignment controls horizontal text placement.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Base provides common functionality for widgets.
// Embed this in widget structs to get default implementations.
type Base struct {
	bounds      runtime.Rect
	needsRender bool
}

// Measure asks for all the space offered.
func (b *Base) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.MaxSize()
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	if b == nil {
		return
	}
	if b.bounds != bounds {
		b.bounds = bounds
		b.needsRender = true
	}
}

// Bounds returns the widget's assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	if b == nil {
		return runtime.Rect{}
	}
	return b.bounds
}

// HandleMessage returns Unhandled by default.
func (b *Base) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// NeedsRender reports whether the widget needs to re-render.
func (b *Base) NeedsRender() bool {
	if b == nil {
		return false
	}
	return b.needsRender
}

// MarkRendered clears the render-needed flag.
func (b *Base) MarkRendered() {
	if b == nil {
		return
	}
	b.needsRender = false
}

// truncateString truncates a string to fit within maxWidth columns.
// Adds "..." if truncated.
func truncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// alignedX returns the column text should start at inside bounds.
func alignedX(bounds runtime.Rect, text string, align Alignment) int {
	w := runewidth.StringWidth(text)
	switch align {
	case AlignCenter:
		return bounds.X + (bounds.Width-w)/2
	case AlignRight:
		return bounds.X + bounds.Width - w
	default:
		return bounds.X
	}
}
