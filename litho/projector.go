package litho

import (
	"fmt"
	"math"

	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/floats"
)

// A CylCoord is a point in cylindrical coordinates.
//
// Theta is measured in radians around the cylinder axis, and Height is
// measured along it.
type CylCoord struct {
	Radius float64
	Theta  float64
	Height float64
}

// UpAxis selects which Cartesian axis a Projector uses as the cylinder axis.
type UpAxis int

const (
	// UpY maps a CylCoord to (r*sin(theta), h, r*cos(theta)).
	UpY UpAxis = iota

	// UpZ maps a CylCoord to (r*sin(theta), -r*cos(theta), h), which is UpY
	// rotated by 90 degrees around the X axis.
	UpZ
)

func (u UpAxis) String() string {
	switch u {
	case UpY:
		return "y"
	case UpZ:
		return "z"
	default:
		return fmt.Sprintf("UpAxis(%d)", int(u))
	}
}

// ParseUpAxis parses the output of UpAxis.String().
func ParseUpAxis(s string) (UpAxis, error) {
	switch s {
	case "y", "Y":
		return UpY, nil
	case "z", "Z":
		return UpZ, nil
	}
	return 0, fmt.Errorf("unknown up axis: %q", s)
}

// A Projector maps cylindrical coordinates to Cartesian points.
//
// For both axes, the frame (theta, height, radius) is right-handed: the
// cross product of the increasing-theta direction with the increasing-height
// direction points away from the axis. Every builder in this package relies
// on this to pick its triangle winding.
type Projector struct {
	Up UpAxis
}

func (p Projector) Project(c CylCoord) model3d.Coord3D {
	sin, cos := math.Sincos(c.Theta)
	x, depth := c.Radius*sin, c.Radius*cos
	if p.Up == UpZ {
		return model3d.XYZ(x, -depth, c.Height)
	}
	return model3d.XYZ(x, c.Height, depth)
}

// AngleSpan returns steps+1 evenly spaced angles from start to end,
// inclusive.
func AngleSpan(start, end float64, steps int) []float64 {
	return floats.Span(make([]float64, steps+1), start, end)
}

// HeightSpan returns samples evenly spaced heights from 0 to height,
// inclusive.
func HeightSpan(height float64, samples int) []float64 {
	return floats.Span(make([]float64, samples), 0, height)
}
