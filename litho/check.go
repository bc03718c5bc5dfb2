package litho

import (
	"github.com/unixpickle/model3d/model3d"
)

type edgeKey [2]model3d.Coord3D

func newEdgeKey(p1, p2 model3d.Coord3D) (key edgeKey, forward bool) {
	a1, a2 := p1.Array(), p2.Array()
	for i := range a1 {
		if a1[i] < a2[i] {
			return edgeKey{p1, p2}, true
		} else if a1[i] > a2[i] {
			return edgeKey{p2, p1}, false
		}
	}
	return edgeKey{p1, p2}, true
}

type edgeUse struct {
	Count   int
	Balance int
}

// An EdgeReport summarizes how the edges of a triangle soup are shared.
type EdgeReport struct {
	// Edges is the number of distinct undirected edges.
	Edges int

	// Boundary is the number of edges used by only one triangle.
	Boundary int

	// NonManifold is the number of edges used by more than two triangles.
	NonManifold int

	// Inconsistent is the number of edges used by exactly two triangles
	// which traverse it in the same direction.
	Inconsistent int

	// Degenerate is the number of triangles with a repeated vertex.
	Degenerate int
}

// CheckClosure analyzes the edges of a list of triangles, matching vertices
// exactly.
func CheckClosure(tris []model3d.Triangle) *EdgeReport {
	uses := map[edgeKey]*edgeUse{}
	res := &EdgeReport{}
	for _, t := range tris {
		if t[0] == t[1] || t[1] == t[2] || t[2] == t[0] {
			res.Degenerate++
		}
		for i := 0; i < 3; i++ {
			key, forward := newEdgeKey(t[i], t[(i+1)%3])
			use, ok := uses[key]
			if !ok {
				use = &edgeUse{}
				uses[key] = use
			}
			use.Count++
			if forward {
				use.Balance++
			} else {
				use.Balance--
			}
		}
	}
	res.Edges = len(uses)
	for _, use := range uses {
		switch {
		case use.Count == 1:
			res.Boundary++
		case use.Count > 2:
			res.NonManifold++
		case use.Balance != 0:
			res.Inconsistent++
		}
	}
	return res
}

// Watertight checks if every edge is shared by exactly two triangles with
// opposite winding.
func (e *EdgeReport) Watertight() bool {
	return e.Boundary == 0 && e.NonManifold == 0 && e.Inconsistent == 0 && e.Degenerate == 0
}

// SignedVolume computes the volume enclosed by a closed mesh, which is
// positive when the triangles face outward.
func SignedVolume(tris []model3d.Triangle) float64 {
	var res float64
	for _, t := range tris {
		res += t[0].Dot(t[1].Cross(t[2]))
	}
	return res / 6
}
