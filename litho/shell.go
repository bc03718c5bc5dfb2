package litho

import (
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

// ShellTriangleCount computes the number of triangles ShellMesh produces for
// grids of the given shape.
func ShellTriangleCount(rows, cols int) int {
	return 2 * ((rows-1)*(cols-1)*2 + (cols-1)*2 + (rows-1)*2)
}

// ShellMesh closes the solid between an inner (back) and an outer (front)
// point grid.
//
// Both grids must have the same shape, at least 2x2. Columns must advance
// in the direction of increasing theta and rows in the direction of
// increasing height, as produced by a Projector, so that the triangles face
// outward.
//
// The result contains the front surface, the back surface, and four edge
// strips joining the two shells along row 0, the last row, column 0, and the
// last column. Every edge is shared by exactly two triangles.
func ShellMesh(inner, outer *PointGrid) (*Mesh, error) {
	if !SameShape(inner, outer) {
		return nil, preconditionf("shell grids differ in shape: %dx%d and %dx%d",
			inner.Rows, inner.Cols, outer.Rows, outer.Cols)
	}
	rows, cols := inner.Rows, inner.Cols
	if rows < 2 || cols < 2 {
		return nil, preconditionf("shell grids must be at least 2x2, got %dx%d", rows, cols)
	}
	if len(inner.Data) != rows*cols || len(outer.Data) != rows*cols {
		return nil, preconditionf("shell grid data does not match %dx%d", rows, cols)
	}

	tris := make([]model3d.Triangle, ShellTriangleCount(rows, cols))

	surfaceSize := (rows - 1) * (cols - 1) * 2
	rowSize := (cols - 1) * 2
	essentials.ConcurrentMap(0, rows-1, func(r int) {
		front := tris[r*rowSize : (r+1)*rowSize]
		back := tris[surfaceSize+r*rowSize : surfaceSize+(r+1)*rowSize]
		for c := 0; c < cols-1; c++ {
			i := c * 2
			setQuad(front, i, outer.At(r, c), outer.At(r, c+1), outer.At(r+1, c), outer.At(r+1, c+1))
			setQuad(back, i, inner.At(r, c), inner.At(r+1, c), inner.At(r, c+1), inner.At(r+1, c+1))
		}
	})

	idx := surfaceSize * 2
	last := rows - 1
	for c := 0; c < cols-1; c++ {
		setQuad(tris, idx, inner.At(0, c), inner.At(0, c+1), outer.At(0, c), outer.At(0, c+1))
		idx += 2
	}
	for c := 0; c < cols-1; c++ {
		setQuad(tris, idx, inner.At(last, c), outer.At(last, c), inner.At(last, c+1),
			outer.At(last, c+1))
		idx += 2
	}

	last = cols - 1
	for r := 0; r < rows-1; r++ {
		setQuad(tris, idx, inner.At(r, 0), outer.At(r, 0), inner.At(r+1, 0), outer.At(r+1, 0))
		idx += 2
	}
	for r := 0; r < rows-1; r++ {
		setQuad(tris, idx, inner.At(r, last), inner.At(r+1, last), outer.At(r, last),
			outer.At(r+1, last))
		idx += 2
	}

	return &Mesh{Triangles: tris}, nil
}
