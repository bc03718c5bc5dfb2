package litho

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// An ArcTubeSection is a solid cylindrical shell between two radii and two
// heights, spanning an angular range which may leave a gap.
type ArcTubeSection struct {
	InnerRadius float64
	OuterRadius float64
	ZStart      float64
	ZEnd        float64
	AngleStart  float64
	AngleEnd    float64
}

// IsOpenArc checks if the section leaves an angular gap, in which case it
// needs end caps to be closed.
func (a *ArcTubeSection) IsOpenArc() bool {
	return a.AngleEnd-a.AngleStart < 2*math.Pi
}

// TriangleCount gets the number of triangles AddArcTube emits for the
// section.
func (a *ArcTubeSection) TriangleCount(steps int) int {
	n := steps * 8
	if a.IsOpenArc() {
		n += 4
	}
	return n
}

// Validate checks the radii, heights and angles of a, and that steps is
// enough to close it.
func (a *ArcTubeSection) Validate(steps int) error {
	if !(a.InnerRadius > 0) || !(a.OuterRadius > a.InnerRadius) || math.IsInf(a.OuterRadius, 0) {
		return preconditionf("invalid arc tube radii %f to %f", a.InnerRadius, a.OuterRadius)
	}
	if !(a.ZEnd > a.ZStart) {
		return preconditionf("invalid arc tube heights %f to %f", a.ZStart, a.ZEnd)
	}
	span := a.AngleEnd - a.AngleStart
	if !(span > 0) || span > 2*math.Pi {
		return preconditionf("invalid arc tube angles %f to %f", a.AngleStart, a.AngleEnd)
	}
	if a.IsOpenArc() {
		if steps < 1 {
			return preconditionf("open arc tube needs at least 1 step, got %d", steps)
		}
	} else if steps < 3 {
		return preconditionf("closed arc tube needs at least 3 steps, got %d", steps)
	}
	return nil
}

// AddArcTube adds a closed solid for the section to m.
//
// Each of the steps angular segments gets an outer wall, an inner wall, a
// top cap and a bottom cap. Open arcs are also closed at both angular ends.
//
// The section is closed on its own. When sections are stacked, the caps
// where they meet coincide and are intentionally left in place.
func AddArcTube(m *Mesh, proj Projector, a *ArcTubeSection, steps int) error {
	if err := a.Validate(steps); err != nil {
		return err
	}

	thetas := AngleSpan(a.AngleStart, a.AngleEnd, steps)
	ring := func(radius, z float64) []model3d.Coord3D {
		res := make([]model3d.Coord3D, len(thetas))
		for i, theta := range thetas {
			res[i] = proj.Project(CylCoord{Radius: radius, Theta: theta, Height: z})
		}
		if !a.IsOpenArc() {
			// Avoid a seam from sin(2*pi) != sin(0).
			res[steps] = res[0]
		}
		return res
	}
	innerLow := ring(a.InnerRadius, a.ZStart)
	innerHigh := ring(a.InnerRadius, a.ZEnd)
	outerLow := ring(a.OuterRadius, a.ZStart)
	outerHigh := ring(a.OuterRadius, a.ZEnd)

	for i := 0; i < steps; i++ {
		j := i + 1
		m.AddQuad(outerLow[i], outerLow[j], outerHigh[i], outerHigh[j])
		m.AddQuad(innerLow[i], innerHigh[i], innerLow[j], innerHigh[j])
		m.AddQuad(innerHigh[i], outerHigh[i], innerHigh[j], outerHigh[j])
		m.AddQuad(innerLow[i], innerLow[j], outerLow[i], outerLow[j])
	}

	if a.IsOpenArc() {
		m.AddQuad(innerLow[0], outerLow[0], innerHigh[0], outerHigh[0])
		m.AddQuad(innerLow[steps], innerHigh[steps], outerLow[steps], outerHigh[steps])
	}
	return nil
}
