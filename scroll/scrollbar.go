package scroll

import (
	"github.com/odvcencio/furry-store/backend"
	"github.com/odvcencio/furry-store/runtime"
)

// Scrollbar draws a vertical scrollbar for a Viewport.
type Scrollbar struct {
	Track backend.Style
	Thumb backend.Style
	Chars ScrollbarChars
}

// ScrollbarChars defines characters used to render the scrollbar.
type ScrollbarChars struct {
	Track rune
	Thumb rune
}

// DefaultScrollbarChars returns ASCII defaults.
func DefaultScrollbarChars() ScrollbarChars {
	return ScrollbarChars{Track: '|', Thumb: '#'}
}

// NewScrollbar returns a scrollbar with default characters and styles.
func NewScrollbar() Scrollbar {
	style := backend.DefaultStyle()
	return Scrollbar{Track: style, Thumb: style.Reverse(true), Chars: DefaultScrollbarChars()}
}

// Thumb returns the thumb's first row and length within a track of
// height rows.
func Thumb(v *Viewport, height int) (pos, size int) {
	if v == nil || height <= 0 || v.ContentHeight() == 0 {
		return 0, 0
	}
	size = min(height, max(1, height*v.ViewHeight()/v.ContentHeight()))
	if maxOffset := v.MaxOffset(); maxOffset > 0 {
		pos = v.Offset() * (height - size) / maxOffset
	}
	return pos, size
}

// Render draws the scrollbar in column x from row y, height rows tall.
// Nothing is drawn when the content fits.
func (s Scrollbar) Render(buf *runtime.Buffer, x, y, height int, v *Viewport) {
	if buf == nil || !v.Scrollable() {
		return
	}
	pos, size := Thumb(v, height)
	for i := 0; i < height; i++ {
		if i >= pos && i < pos+size {
			buf.Set(x, y+i, s.Chars.Thumb, s.Thumb)
			continue
		}
		buf.Set(x, y+i, s.Chars.Track, s.Track)
	}
}
