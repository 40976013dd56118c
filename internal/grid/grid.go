// Package grid provides pure geometry helpers for the rectangular play area.
package grid

// Size describes the play area in cells.
type Size struct {
	Rows int
	Cols int
}

// Contains reports whether the cell (x, y) lies inside the play area,
// x being the column and y the row.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.Cols && y >= 0 && y < s.Rows
}

// Center returns the cell closest to the middle of the play area.
func (s Size) Center() (x, y int) {
	return s.Cols / 2, s.Rows / 2
}

// Area returns the number of cells in the play area.
func (s Size) Area() int {
	return s.Rows * s.Cols
}
