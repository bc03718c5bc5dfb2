package litho

import (
	"fmt"
	"math"

	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// A ProfilePoint is a vertex of a cross-section in the half-plane of a
// cylinder.
type ProfilePoint struct {
	Radius float64
	Height float64
}

// A Profile is a closed polygon in the (radius, height) plane. The last
// vertex connects back to the first.
type Profile []ProfilePoint

// SignedArea computes the area of the polygon, which is positive when the
// vertices go counter-clockwise with radius along the horizontal axis and
// height along the vertical axis.
func (p Profile) SignedArea() float64 {
	var res float64
	for i, c := range p {
		next := p[(i+1)%len(p)]
		res += c.Radius*next.Height - next.Radius*c.Height
	}
	return res / 2
}

// Validate checks that p is a simple polygon with positive area and
// strictly positive radii.
func (p Profile) Validate() error {
	if len(p) < 3 {
		return preconditionf("profile needs at least 3 vertices, got %d", len(p))
	}
	for i, c := range p {
		if !(c.Radius > 0) || math.IsInf(c.Radius, 0) || math.IsNaN(c.Height) ||
			math.IsInf(c.Height, 0) {
			return preconditionf("profile vertex %d is invalid: %v", i, c)
		}
		if c == p[(i+1)%len(p)] {
			return preconditionf("profile vertex %d is repeated", i)
		}
	}
	if p.SignedArea() == 0 {
		return preconditionf("profile has zero area")
	}
	n := len(p)
	for i := 0; i < n; i++ {
		a1, a2 := p[i].coord(), p[(i+1)%n].coord()
		for j := i + 1; j < n; j++ {
			b1, b2 := p[j].coord(), p[(j+1)%n].coord()
			if j == i+1 || (i == 0 && j == n-1) {
				// Adjacent edges share a vertex, but must not fold back.
				var d1, d2 model2d.Coord
				if j == i+1 {
					d1, d2 = a1.Sub(a2), b2.Sub(b1)
				} else {
					d1, d2 = a2.Sub(a1), b1.Sub(b2)
				}
				if cross2(d1, d2) == 0 && d1.Dot(d2) > 0 {
					return preconditionf("profile edges %d and %d overlap", i, j)
				}
				continue
			}
			if segmentsIntersect(a1, a2, b1, b2) {
				return preconditionf("profile edges %d and %d intersect", i, j)
			}
		}
	}
	return nil
}

// Oriented returns a counter-clockwise copy of p which starts on the same
// vertex.
func (p Profile) Oriented() Profile {
	res := append(Profile{}, p...)
	if res.SignedArea() < 0 {
		for i, j := 1, len(res)-1; i < j; i, j = i+1, j-1 {
			res[i], res[j] = res[j], res[i]
		}
	}
	return res
}

// FanTriangulable checks if a triangle fan from the first vertex covers p
// without overlapping, i.e. if p is star-shaped with respect to its first
// vertex in the sense needed by FanCaps.
//
// The profile must already be valid.
func (p Profile) FanTriangulable() bool {
	o := p.Oriented()
	origin := o[0].coord()
	for i := 1; i+1 < len(o); i++ {
		if cross2(o[i].coord().Sub(origin), o[i+1].coord().Sub(origin)) <= 0 {
			return false
		}
	}
	return true
}

func (p ProfilePoint) coord() model2d.Coord {
	return model2d.XY(p.Radius, p.Height)
}

func (p ProfilePoint) at(theta float64) CylCoord {
	return CylCoord{Radius: p.Radius, Theta: theta, Height: p.Height}
}

// CapStyle determines how the angular ends of a profile sweep are closed.
type CapStyle int

const (
	// FanCaps triangulates each end as a fan from the first profile
	// vertex. This requires Profile.FanTriangulable().
	FanCaps CapStyle = iota

	// EarClipCaps triangulates each end with ear clipping, which works
	// for any simple polygon. Every profile vertex is used, so the caps
	// match the swept walls edge for edge.
	EarClipCaps
)

func (c CapStyle) String() string {
	switch c {
	case FanCaps:
		return "fan"
	case EarClipCaps:
		return "ear-clip"
	default:
		return fmt.Sprintf("CapStyle(%d)", int(c))
	}
}

// ParseCapStyle parses the output of CapStyle.String().
func ParseCapStyle(s string) (CapStyle, error) {
	switch s {
	case "fan":
		return FanCaps, nil
	case "ear-clip":
		return EarClipCaps, nil
	}
	return 0, fmt.Errorf("unknown cap style: %q", s)
}

// SweepTriangleCount gets the number of triangles AddProfileSweep emits.
func SweepTriangleCount(numVertices, steps int, start, end float64) int {
	n := numVertices * steps * 2
	if end-start < 2*math.Pi {
		n += (numVertices - 2) * 2
	}
	return n
}

// AddProfileSweep revolves a closed profile from angle start to angle end in
// the given number of steps, and adds the resulting solid to m.
//
// If the sweep covers less than a full turn, both ends are closed according
// to caps. For FanCaps, a profile which is not fan triangulable from its
// first vertex is rejected, since the caps would overlap themselves.
func AddProfileSweep(m *Mesh, proj Projector, profile Profile, start, end float64, steps int,
	caps CapStyle) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	span := end - start
	if !(span > 0) || span > 2*math.Pi {
		return preconditionf("invalid sweep angles %f to %f", start, end)
	}
	open := span < 2*math.Pi
	if steps < 1 || (!open && steps < 3) {
		return preconditionf("invalid number of sweep steps: %d", steps)
	}
	profile = profile.Oriented()
	var capTris [][3]ProfilePoint
	if open {
		var err error
		capTris, err = capTriangles(profile, caps)
		if err != nil {
			return err
		}
	}

	thetas := AngleSpan(start, end, steps)
	rings := make([][]model3d.Coord3D, len(thetas))
	for i, theta := range thetas {
		if i == steps && !open {
			rings[i] = rings[0]
			break
		}
		ring := make([]model3d.Coord3D, len(profile))
		for j, p := range profile {
			ring[j] = proj.Project(p.at(theta))
		}
		rings[i] = ring
	}

	n := len(profile)
	for i := 0; i < steps; i++ {
		r1, r2 := rings[i], rings[i+1]
		for j := 0; j < n; j++ {
			k := (j + 1) % n
			m.AddQuad(r1[j], r2[j], r1[k], r2[k])
		}
	}

	if open {
		for _, t := range capTris {
			m.Add(model3d.Triangle{
				proj.Project(t[0].at(start)),
				proj.Project(t[1].at(start)),
				proj.Project(t[2].at(start)),
			})
			m.Add(model3d.Triangle{
				proj.Project(t[0].at(end)),
				proj.Project(t[2].at(end)),
				proj.Project(t[1].at(end)),
			})
		}
	}
	return nil
}

// capTriangles triangulates a counter-clockwise profile into
// counter-clockwise triangles.
//
// Every profile vertex is a corner of some triangle, and no vertex lies
// inside a triangle's edge, so there are exactly len(profile)-2 triangles.
func capTriangles(profile Profile, caps CapStyle) ([][3]ProfilePoint, error) {
	switch caps {
	case FanCaps:
		if !profile.FanTriangulable() {
			return nil, preconditionf("profile is not star-shaped from its first vertex")
		}
		res := make([][3]ProfilePoint, 0, len(profile)-2)
		for i := 1; i+1 < len(profile); i++ {
			res = append(res, [3]ProfilePoint{profile[0], profile[i], profile[i+1]})
		}
		return res, nil
	case EarClipCaps:
		coords := make([]model2d.Coord, len(profile))
		for i, p := range profile {
			coords[i] = p.coord()
		}
		var res [][3]ProfilePoint
		for _, t := range model2d.Triangulate(coords) {
			area := cross2(t[1].Sub(t[0]), t[2].Sub(t[0]))
			if area == 0 {
				continue
			} else if area < 0 {
				t[1], t[2] = t[2], t[1]
			}
			for _, split := range splitAtVertices(t, coords) {
				var tri [3]ProfilePoint
				for j, c := range split {
					tri[j] = ProfilePoint{Radius: c.X, Height: c.Y}
				}
				res = append(res, tri)
			}
		}
		if len(res) != len(profile)-2 {
			return nil, preconditionf("ear clipping produced %d triangles for %d vertices",
				len(res), len(profile))
		}
		return res, nil
	default:
		return nil, preconditionf("unknown cap style: %v", caps)
	}
}

// splitAtVertices splits a counter-clockwise triangle wherever one of
// vertices lies inside one of its edges, so that the result has no
// T-junctions with the polygon's boundary.
func splitAtVertices(t [3]model2d.Coord, vertices []model2d.Coord) [][3]model2d.Coord {
	for i := 0; i < 3; i++ {
		a, b, c := t[i], t[(i+1)%3], t[(i+2)%3]
		for _, v := range vertices {
			if onEdgeInterior(a, b, v) {
				return append(
					splitAtVertices([3]model2d.Coord{a, v, c}, vertices),
					splitAtVertices([3]model2d.Coord{v, b, c}, vertices)...,
				)
			}
		}
	}
	return [][3]model2d.Coord{t}
}

func onEdgeInterior(a, b, v model2d.Coord) bool {
	if v == a || v == b {
		return false
	}
	d := b.Sub(a)
	lengthSq := d.Dot(d)
	if math.Abs(cross2(d, v.Sub(a))) > 1e-9*lengthSq {
		return false
	}
	dot := d.Dot(v.Sub(a))
	return dot > 0 && dot < lengthSq
}

func cross2(a, b model2d.Coord) float64 {
	return a.X*b.Y - a.Y*b.X
}

func segmentsIntersect(a1, a2, b1, b2 model2d.Coord) bool {
	d1 := cross2(b2.Sub(b1), a1.Sub(b1))
	d2 := cross2(b2.Sub(b1), a2.Sub(b1))
	d3 := cross2(a2.Sub(a1), b1.Sub(a1))
	d4 := cross2(a2.Sub(a1), b2.Sub(a1))
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	onSegment := func(p, q, r model2d.Coord) bool {
		return math.Min(p.X, q.X) <= r.X && r.X <= math.Max(p.X, q.X) &&
			math.Min(p.Y, q.Y) <= r.Y && r.Y <= math.Max(p.Y, q.Y)
	}
	return (d1 == 0 && onSegment(b1, b2, a1)) || (d2 == 0 && onSegment(b1, b2, a2)) ||
		(d3 == 0 && onSegment(a1, a2, b1)) || (d4 == 0 && onSegment(a1, a2, b2))
}
