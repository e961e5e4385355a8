// Package scroll tracks which rows of tall content are visible.
package scroll

// Viewport is a vertical window over content that may be taller than
// the space it is drawn in. The offset is always kept in range.
type Viewport struct {
	offset   int
	content  int
	view     int
	onChange func(offset int)
}

// SetContentHeight updates the content height and clamps the offset.
func (v *Viewport) SetContentHeight(h int) {
	if v == nil {
		return
	}
	v.content = max(0, h)
	v.SetOffset(v.offset)
}

// ContentHeight returns the content height.
func (v *Viewport) ContentHeight() int {
	if v == nil {
		return 0
	}
	return v.content
}

// SetViewHeight updates the visible height and clamps the offset.
func (v *Viewport) SetViewHeight(h int) {
	if v == nil {
		return
	}
	v.view = max(0, h)
	v.SetOffset(v.offset)
}

// ViewHeight returns the visible height.
func (v *Viewport) ViewHeight() int {
	if v == nil {
		return 0
	}
	return v.view
}

// Offset returns the first visible row.
func (v *Viewport) Offset() int {
	if v == nil {
		return 0
	}
	return v.offset
}

// MaxOffset returns the largest offset that still fills the view.
func (v *Viewport) MaxOffset() int {
	if v == nil {
		return 0
	}
	return max(0, v.content-v.view)
}

// Scrollable reports whether the content overflows the view.
func (v *Viewport) Scrollable() bool {
	return v.MaxOffset() > 0
}

// SetOnChange sets a callback for offset updates.
func (v *Viewport) SetOnChange(fn func(offset int)) {
	if v == nil {
		return
	}
	v.onChange = fn
}

// SetOffset moves the first visible row to y, clamped.
func (v *Viewport) SetOffset(y int) {
	if v == nil {
		return
	}
	next := min(max(0, y), v.MaxOffset())
	if next == v.offset {
		return
	}
	v.offset = next
	if v.onChange != nil {
		v.onChange(v.offset)
	}
}

// ScrollBy moves the offset by dy rows.
func (v *Viewport) ScrollBy(dy int) {
	if v == nil {
		return
	}
	v.SetOffset(v.offset + dy)
}

// PageBy moves the offset by whole views.
func (v *Viewport) PageBy(pages int) {
	if v == nil {
		return
	}
	v.ScrollBy(pages * max(1, v.view))
}

// ScrollToStart shows the first row.
func (v *Viewport) ScrollToStart() {
	v.SetOffset(0)
}

// ScrollToEnd shows the last row.
func (v *Viewport) ScrollToEnd() {
	if v == nil {
		return
	}
	v.SetOffset(v.MaxOffset())
}

// Visible returns the half-open range of visible content rows.
func (v *Viewport) Visible() (start, end int) {
	if v == nil {
		return 0, 0
	}
	return v.offset, min(v.content, v.offset+v.view)
}
