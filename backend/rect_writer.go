package backend

// RectWriter writes a whole rectangle of cells in a single call.
// cells is row-major and holds width*height entries.
type RectWriter interface {
	SetRect(x, y, width, height int, cells []Cell)
}
