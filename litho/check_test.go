package litho

import (
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestCheckClosure(t *testing.T) {
	tetra := []model3d.Triangle{
		{model3d.XYZ(0, 0, 0), model3d.XYZ(0, 1, 0), model3d.XYZ(1, 0, 0)},
		{model3d.XYZ(0, 0, 0), model3d.XYZ(1, 0, 0), model3d.XYZ(0, 0, 1)},
		{model3d.XYZ(0, 0, 0), model3d.XYZ(0, 0, 1), model3d.XYZ(0, 1, 0)},
		{model3d.XYZ(1, 0, 0), model3d.XYZ(0, 1, 0), model3d.XYZ(0, 0, 1)},
	}
	report := CheckClosure(tetra)
	if !report.Watertight() || report.Edges != 6 {
		t.Fatalf("unexpected report: %+v", *report)
	}
	if vol := SignedVolume(tetra); vol < 1.0/6-1e-12 || vol > 1.0/6+1e-12 {
		t.Errorf("unexpected volume: %f", vol)
	}

	flipped := append([]model3d.Triangle{}, tetra...)
	flipped[3][1], flipped[3][2] = flipped[3][2], flipped[3][1]
	if report := CheckClosure(flipped); report.Inconsistent != 3 {
		t.Errorf("unexpected report: %+v", *report)
	}

	if report := CheckClosure(tetra[:3]); report.Boundary != 3 {
		t.Errorf("unexpected report: %+v", *report)
	}
}
