package litho

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestArcTubeClosedRing(t *testing.T) {
	section := &ArcTubeSection{
		InnerRadius: 2,
		OuterRadius: 3,
		ZStart:      1,
		ZEnd:        4,
		AngleStart:  0,
		AngleEnd:    2 * math.Pi,
	}
	if section.IsOpenArc() {
		t.Fatal("full ring should not be open")
	}
	mesh := NewMesh(0)
	if err := AddArcTube(mesh, Projector{Up: UpZ}, section, 100); err != nil {
		t.Fatal(err)
	}
	if n := mesh.NumTriangles(); n != 800 || n != section.TriangleCount(100) {
		t.Fatalf("expected 800 triangles but got %d", n)
	}
	mustWatertight(t, mesh.Triangles)

	expected := math.Pi * (9 - 4) * 3
	if actual := SignedVolume(mesh.Triangles); math.Abs(actual-expected)/expected > 1e-2 {
		t.Errorf("expected volume %f but got %f", expected, actual)
	}
}

func TestArcTubeOpenArc(t *testing.T) {
	closed := &ArcTubeSection{
		InnerRadius: 1,
		OuterRadius: 1.5,
		ZStart:      0,
		ZEnd:        2,
		AngleStart:  0,
		AngleEnd:    2 * math.Pi,
	}
	open := *closed
	open.AngleEnd = math.Pi
	if !open.IsOpenArc() {
		t.Fatal("half ring should be open")
	}

	for _, up := range []UpAxis{UpY, UpZ} {
		closedMesh := NewMesh(0)
		openMesh := NewMesh(0)
		if err := AddArcTube(closedMesh, Projector{Up: up}, closed, 60); err != nil {
			t.Fatal(err)
		}
		if err := AddArcTube(openMesh, Projector{Up: up}, &open, 60); err != nil {
			t.Fatal(err)
		}
		if n := openMesh.NumTriangles() - closedMesh.NumTriangles(); n != 4 {
			t.Errorf("expected 4 end cap triangles but got %d", n)
		}
		if n := openMesh.NumTriangles(); n != open.TriangleCount(60) {
			t.Errorf("expected %d triangles but got %d", open.TriangleCount(60), n)
		}
		mustWatertight(t, openMesh.Triangles)
		if vol := SignedVolume(openMesh.Triangles); vol <= 0 {
			t.Errorf("triangles should face outward, but volume is %f", vol)
		}
	}
}

func TestArcTubeInvalid(t *testing.T) {
	sections := []*ArcTubeSection{
		{InnerRadius: 0, OuterRadius: 1, ZStart: 0, ZEnd: 1, AngleStart: 0, AngleEnd: 1},
		{InnerRadius: 2, OuterRadius: 1, ZStart: 0, ZEnd: 1, AngleStart: 0, AngleEnd: 1},
		{InnerRadius: 1, OuterRadius: 2, ZStart: 1, ZEnd: 1, AngleStart: 0, AngleEnd: 1},
		{InnerRadius: 1, OuterRadius: 2, ZStart: 0, ZEnd: 1, AngleStart: 1, AngleEnd: 1},
		{InnerRadius: 1, OuterRadius: 2, ZStart: 0, ZEnd: 1, AngleStart: 0, AngleEnd: 7},
	}
	for i, s := range sections {
		mesh := NewMesh(0)
		if err := AddArcTube(mesh, Projector{}, s, 10); !errors.Is(err, ErrPrecondition) {
			t.Errorf("section %d: expected precondition error, got %v", i, err)
		}
		if mesh.NumTriangles() != 0 {
			t.Errorf("section %d: triangles were added", i)
		}
	}
}
