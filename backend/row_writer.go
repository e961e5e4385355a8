package backend

// RowWriter writes a run of cells on one row in a single call.
// The runtime uses it when most of a row is dirty.
type RowWriter interface {
	SetRow(y int, startX int, cells []Cell)
}
