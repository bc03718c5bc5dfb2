package litho

import (
	"github.com/unixpickle/model3d/model3d"
)

// A Mesh is an ordered list of triangles.
//
// The winding of each triangle encodes its outward side: the normal
// (t[1]-t[0]) x (t[2]-t[0]) points out of the solid.
type Mesh struct {
	Triangles []model3d.Triangle
}

// NewMesh creates an empty mesh with room for capacity triangles.
func NewMesh(capacity int) *Mesh {
	return &Mesh{Triangles: make([]model3d.Triangle, 0, capacity)}
}

// NumTriangles gets the number of triangles added so far.
func (m *Mesh) NumTriangles() int {
	return len(m.Triangles)
}

// Add appends a triangle to the mesh.
func (m *Mesh) Add(t model3d.Triangle) {
	m.Triangles = append(m.Triangles, t)
}

// AddQuad adds the two triangles of a planar or near-planar quad.
//
// The corners are p00, p00+u, p00+v and p00+u+v for some edge directions u
// and v, and the resulting triangles face along u x v.
func (m *Mesh) AddQuad(p00, p10, p01, p11 model3d.Coord3D) {
	m.Triangles = append(
		m.Triangles,
		model3d.Triangle{p00, p10, p01},
		model3d.Triangle{p10, p11, p01},
	)
}

// setQuad is like AddQuad, but writes into a pre-sized buffer at index i.
func setQuad(tris []model3d.Triangle, i int, p00, p10, p01, p11 model3d.Coord3D) {
	tris[i] = model3d.Triangle{p00, p10, p01}
	tris[i+1] = model3d.Triangle{p10, p11, p01}
}

// Model converts m into a model3d mesh, for rendering or collision checks.
func (m *Mesh) Model() *model3d.Mesh {
	tris := make([]*model3d.Triangle, len(m.Triangles))
	for i := range m.Triangles {
		t := m.Triangles[i]
		tris[i] = &t
	}
	return model3d.NewMeshTriangles(tris)
}

// Min gets the minimum corner of the bounding box.
func (m *Mesh) Min() model3d.Coord3D {
	if len(m.Triangles) == 0 {
		return model3d.Coord3D{}
	}
	res := m.Triangles[0][0]
	for _, t := range m.Triangles {
		for _, c := range t {
			res = res.Min(c)
		}
	}
	return res
}

// Max gets the maximum corner of the bounding box.
func (m *Mesh) Max() model3d.Coord3D {
	if len(m.Triangles) == 0 {
		return model3d.Coord3D{}
	}
	res := m.Triangles[0][0]
	for _, t := range m.Triangles {
		for _, c := range t {
			res = res.Max(c)
		}
	}
	return res
}
