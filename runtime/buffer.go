package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-store/backend"
)

// Cell represents a single character cell in the buffer.
type Cell = backend.Cell

// Buffer is a 2D grid of cells that widgets render into.
// Cells that change are tracked so the app only flushes what moved.
type Buffer struct {
	cells  []Cell
	dirty  []bool
	width  int
	height int

	dirtyCount int
	dirtyRect  Rect
}

// NewBuffer creates a buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	w, h = max(0, w), max(0, h)
	b := &Buffer{
		cells:  make([]Cell, w*h),
		dirty:  make([]bool, w*h),
		width:  w,
		height: h,
	}
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Style: backend.DefaultStyle()}
	}
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize changes the buffer dimensions, keeping the overlapping content.
// The whole buffer is marked dirty.
func (b *Buffer) Resize(w, h int) {
	w, h = max(0, w), max(0, h)
	if w == b.width && h == b.height {
		return
	}
	next := NewBuffer(w, h)
	for y := 0; y < min(h, b.height); y++ {
		copy(next.cells[y*w:y*w+min(w, b.width)], b.cells[y*b.width:])
	}
	*b = *next
	b.MarkAllDirty()
}

// Clear fills the buffer with spaces in the default style.
func (b *Buffer) Clear() {
	b.Fill(Rect{0, 0, b.width, b.height}, ' ', backend.DefaultStyle())
}

// Get returns the cell at (x, y), or a blank cell when out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune at (x, y). Out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.put(y*b.width+x, x, y, Cell{Rune: r, Style: s})
}

// SetString writes s starting at (x, y), clipped to the buffer, and
// returns the number of columns it advanced. Wide runes take two columns.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) int {
	px := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if px >= b.width {
			break
		}
		b.Set(px, y, r, style)
		if w == 2 {
			b.Set(px+1, y, ' ', style)
		}
		px += w
	}
	return px - x
}

// Fill fills r with ch in style s.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	x0 := max(0, r.X)
	y0 := max(0, r.Y)
	x1 := min(b.width, r.X+r.Width)
	y1 := min(b.height, r.Y+r.Height)

	cell := Cell{Rune: ch, Style: s}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.put(y*b.width+x, x, y, cell)
		}
	}
}

func (b *Buffer) put(idx, x, y int, cell Cell) {
	if b.cells[idx] == cell {
		return
	}
	b.cells[idx] = cell
	if b.dirty[idx] {
		return
	}
	b.dirty[idx] = true
	if b.dirtyCount == 0 {
		b.dirtyRect = Rect{X: x, Y: y, Width: 1, Height: 1}
	} else {
		b.dirtyRect = union(b.dirtyRect, x, y)
	}
	b.dirtyCount++
}

func union(r Rect, x, y int) Rect {
	x0 := min(r.X, x)
	y0 := min(r.Y, y)
	x1 := max(r.X+r.Width, x+1)
	y1 := max(r.Y+r.Height, y+1)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// MarkAllDirty forces the next flush to write every cell.
func (b *Buffer) MarkAllDirty() {
	for i := range b.dirty {
		b.dirty[i] = true
	}
	b.dirtyCount = len(b.dirty)
	b.dirtyRect = Rect{0, 0, b.width, b.height}
}

// ClearDirty resets dirty tracking after a flush.
func (b *Buffer) ClearDirty() {
	clear(b.dirty)
	b.dirtyCount = 0
	b.dirtyRect = Rect{}
}

// IsDirty reports whether any cell changed since the last flush.
func (b *Buffer) IsDirty() bool {
	return b.dirtyCount > 0
}

// DirtyCount returns the number of changed cells.
func (b *Buffer) DirtyCount() int {
	return b.dirtyCount
}

// DirtyRect returns the bounding box of changed cells.
func (b *Buffer) DirtyRect() Rect {
	return b.dirtyRect
}

// ForEachDirtySpan calls fn for each horizontal run of dirty cells.
// endX is exclusive.
func (b *Buffer) ForEachDirtySpan(fn func(y, startX, endX int)) {
	if fn == nil || b.dirtyCount == 0 {
		return
	}
	r := b.dirtyRect
	for y := r.Y; y < r.Y+r.Height; y++ {
		start := -1
		for x := r.X; x < r.X+r.Width; x++ {
			if b.dirty[y*b.width+x] {
				if start < 0 {
					start = x
				}
				continue
			}
			if start >= 0 {
				fn(y, start, x)
				start = -1
			}
		}
		if start >= 0 {
			fn(y, start, r.X+r.Width)
		}
	}
}

// Cells returns the row-major cell slice.
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// RenderContext is passed to widgets while rendering.
type RenderContext struct {
	Buffer  *Buffer
	Focused bool
	Bounds  Rect
}

// Sub creates a context for a child widget.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	return RenderContext{
		Buffer:  ctx.Buffer,
		Focused: ctx.Focused,
		Bounds:  bounds,
	}
}

// Clear fills the context bounds with spaces in style.
func (ctx RenderContext) Clear(style backend.Style) {
	if ctx.Buffer == nil {
		return
	}
	ctx.Buffer.Fill(ctx.Bounds, ' ', style)
}
