package litho

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/constraints"
)

// A ThicknessGrid stores a wall thickness for every sample of a panel.
type ThicknessGrid = Grid[float64]

// A PointGrid stores one shell of a panel as projected 3D points.
type PointGrid = Grid[model3d.Coord3D]

// A Grid is a rectangular, row-major array.
//
// For panel grids the row index increases along the height axis and the
// column index increases along the angular axis.
type Grid[T any] struct {
	Rows int
	Cols int
	Data []T
}

// NewGrid creates a zero-valued grid.
func NewGrid[T any](rows, cols int) *Grid[T] {
	return &Grid[T]{
		Rows: rows,
		Cols: cols,
		Data: make([]T, rows*cols),
	}
}

// NewGridData wraps row-major data in a grid.
func NewGridData[T any](rows, cols int, data []T) (*Grid[T], error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, preconditionf("grid data has length %d, not %dx%d", len(data), rows, cols)
	}
	return &Grid[T]{Rows: rows, Cols: cols, Data: data}, nil
}

// At gets the value at the given row and column.
func (g *Grid[T]) At(row, col int) T {
	return g.Data[row*g.Cols+col]
}

// Set stores a value at the given row and column.
func (g *Grid[T]) Set(row, col int, value T) {
	g.Data[row*g.Cols+col] = value
}

// SameShape checks if two grids have equal dimensions.
func SameShape[T, U any](g1 *Grid[T], g2 *Grid[U]) bool {
	return g1.Rows == g2.Rows && g1.Cols == g2.Cols
}

// ThicknessFromBrightness maps normalized brightness values in [0, 1] to
// thickness values, where black becomes maxThick and white becomes minThick.
//
// Values outside of [0, 1] are clamped.
func ThicknessFromBrightness[F constraints.Float](brightness *Grid[F], minThick, maxThick F) *Grid[F] {
	res := NewGrid[F](brightness.Rows, brightness.Cols)
	for i, b := range brightness.Data {
		if b < 0 {
			b = 0
		} else if b > 1 {
			b = 1
		}
		res.Data[i] = maxThick - b*(maxThick-minThick)
	}
	return res
}

// ValidateThickness checks that a thickness grid can be turned into a
// closed panel mesh.
func ValidateThickness(t *ThicknessGrid) error {
	if t.Rows < 2 || t.Cols < 2 {
		return preconditionf("thickness grid must be at least 2x2, got %dx%d", t.Rows, t.Cols)
	}
	if len(t.Data) != t.Rows*t.Cols {
		return preconditionf("thickness grid has %d values for %dx%d", len(t.Data), t.Rows, t.Cols)
	}
	for i, x := range t.Data {
		if !(x > 0) || math.IsInf(x, 0) {
			return preconditionf("thickness at row %d col %d is %f", i/t.Cols, i%t.Cols, x)
		}
	}
	return nil
}
