package litho

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestProjectorUpY(t *testing.T) {
	p := Projector{Up: UpY}
	actual := p.Project(CylCoord{Radius: 2, Theta: math.Pi / 2, Height: 3})
	if actual.Dist(model3d.XYZ(2, 3, 0)) > 1e-12 {
		t.Errorf("unexpected point: %v", actual)
	}
	actual = p.Project(CylCoord{Radius: 2, Theta: 0, Height: -1})
	if actual.Dist(model3d.XYZ(0, -1, 2)) > 1e-12 {
		t.Errorf("unexpected point: %v", actual)
	}
}

func TestProjectorHandedness(t *testing.T) {
	for _, up := range []UpAxis{UpY, UpZ} {
		p := Projector{Up: up}
		for _, theta := range []float64{-2, -0.3, 0, 1, 2.5} {
			c := CylCoord{Radius: 5, Theta: theta, Height: 1}
			origin := p.Project(c)
			dTheta := p.Project(CylCoord{Radius: 5, Theta: theta + 1e-4, Height: 1}).Sub(origin)
			dHeight := p.Project(CylCoord{Radius: 5, Theta: theta, Height: 1 + 1e-4}).Sub(origin)
			dRadius := p.Project(CylCoord{Radius: 5 + 1e-4, Theta: theta, Height: 1}).Sub(origin)
			if dTheta.Cross(dHeight).Normalize().Dot(dRadius.Normalize()) < 1-1e-6 {
				t.Errorf("up %v theta %f: frame is not right-handed", up, theta)
			}
		}
	}
}

func TestProjectorUpZRotation(t *testing.T) {
	// UpZ is UpY rotated by 90 degrees around the X axis.
	for _, c := range []CylCoord{{1, 0.5, 2}, {3, -1, 0}, {0.5, 3, -4}} {
		y := Projector{Up: UpY}.Project(c)
		expected := model3d.XYZ(y.X, -y.Z, y.Y)
		actual := Projector{Up: UpZ}.Project(c)
		if actual.Dist(expected) > 1e-12 {
			t.Errorf("expected %v but got %v", expected, actual)
		}
	}
}

func TestAngleSpan(t *testing.T) {
	span := AngleSpan(-1, 1, 4)
	expected := []float64{-1, -0.5, 0, 0.5, 1}
	if len(span) != len(expected) {
		t.Fatalf("expected %d angles but got %d", len(expected), len(span))
	}
	for i, x := range expected {
		if math.Abs(span[i]-x) > 1e-12 {
			t.Errorf("angle %d: expected %f but got %f", i, x, span[i])
		}
	}
	if h := HeightSpan(6, 4); h[0] != 0 || h[3] != 6 || math.Abs(h[1]-2) > 1e-12 {
		t.Errorf("unexpected heights: %v", h)
	}
}
