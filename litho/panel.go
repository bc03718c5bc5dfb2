package litho

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// PanelConfig describes the physical shape of a curved panel.
type PanelConfig struct {
	// ArcWidth is the width of the panel along its curve, in mm.
	ArcWidth float64

	// PixelResolution is the size of one grid sample, in mm.
	PixelResolution float64

	// MinThickness and MaxThickness bound the wall thickness, in mm.
	// The lightest parts of an image get MinThickness.
	MinThickness float64
	MaxThickness float64

	// SweepAngle is the total angle of the curve, in degrees.
	// Larger angles make the panel more stable when standing, at the
	// cost of distorting the image more.
	SweepAngle float64

	// BorderWidth is the width of the solid frame around the image, in mm.
	BorderWidth float64

	Up UpAxis
}

// DefaultPanelConfig creates an 8 inch wide panel with a 120 degree curve.
func DefaultPanelConfig() *PanelConfig {
	return &PanelConfig{
		ArcWidth:        203.2,
		PixelResolution: 0.2,
		MinThickness:    0.6,
		MaxThickness:    3.0,
		SweepAngle:      120,
		BorderWidth:     3,
		Up:              UpY,
	}
}

// Validate checks that p describes a buildable panel.
func (p *PanelConfig) Validate() error {
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"arc width", p.ArcWidth},
		{"pixel resolution", p.PixelResolution},
		{"min thickness", p.MinThickness},
		{"max thickness", p.MaxThickness},
		{"sweep angle", p.SweepAngle},
	} {
		if !(field.value > 0) || math.IsInf(field.value, 0) {
			return preconditionf("%s must be positive, got %f", field.name, field.value)
		}
	}
	if p.MaxThickness < p.MinThickness {
		return preconditionf("max thickness %f is below min thickness %f", p.MaxThickness,
			p.MinThickness)
	}
	if p.SweepAngle > 360 {
		return preconditionf("sweep angle %f exceeds 360 degrees", p.SweepAngle)
	}
	if p.BorderWidth < 0 {
		return preconditionf("border width must not be negative, got %f", p.BorderWidth)
	}
	return nil
}

// SweepRadians gets the sweep angle in radians.
func (p *PanelConfig) SweepRadians() float64 {
	return p.SweepAngle * math.Pi / 180
}

// Radius gets the radius of the back of the panel, chosen so that the
// curve spans ArcWidth.
func (p *PanelConfig) Radius() float64 {
	return p.ArcWidth / p.SweepRadians()
}

// TotalHeight gets the height of a panel including its top and bottom
// border, given the height of the image area.
func (p *PanelConfig) TotalHeight(panelHeight float64) float64 {
	return panelHeight + 2*p.BorderWidth
}

// ProjectPanel computes the back and front shells of a panel.
//
// The back shell lies at a constant radius, and each point of the front
// shell is pushed outward by the corresponding thickness.
func ProjectPanel(p *PanelConfig, thickness *ThicknessGrid, panelHeight float64) (inner,
	outer *PointGrid, err error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	if err := ValidateThickness(thickness); err != nil {
		return nil, nil, err
	}
	if !(panelHeight > 0) {
		return nil, nil, preconditionf("panel height must be positive, got %f", panelHeight)
	}

	half := p.SweepRadians() / 2
	thetas := AngleSpan(-half, half, thickness.Cols-1)
	ys := HeightSpan(p.TotalHeight(panelHeight), thickness.Rows)
	radius := p.Radius()
	proj := Projector{Up: p.Up}

	inner = NewGrid[model3d.Coord3D](thickness.Rows, thickness.Cols)
	outer = NewGrid[model3d.Coord3D](thickness.Rows, thickness.Cols)
	for row, y := range ys {
		for col, theta := range thetas {
			c := CylCoord{Radius: radius, Theta: theta, Height: y}
			inner.Set(row, col, proj.Project(c))
			c.Radius += thickness.At(row, col)
			outer.Set(row, col, proj.Project(c))
		}
	}
	return inner, outer, nil
}

// BuildPanel creates a closed panel mesh from a thickness grid.
func BuildPanel(p *PanelConfig, thickness *ThicknessGrid, panelHeight float64) (*Mesh, error) {
	inner, outer, err := ProjectPanel(p, thickness, panelHeight)
	if err != nil {
		return nil, err
	}
	return ShellMesh(inner, outer)
}
