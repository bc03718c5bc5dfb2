package litho

import (
	"log"
	"math"
)

// TowerConfig describes a mounting tower with a base that holds a curved
// panel, and two openings for routing a cable through the tower.
//
// All lengths are in mm and all angles are in degrees.
type TowerConfig struct {
	// LithoWidth and SweepAngle describe the panel held by the base.
	LithoWidth float64
	SweepAngle float64

	TowerHeight float64
	TowerRadius float64

	// WallThickness is the thickness of the tower tube.
	WallThickness float64

	// SlotWidth is the width of the channel the panel stands in, and
	// WallHeight is the height of the channel walls above the floor.
	SlotWidth     float64
	WallHeight    float64
	BaseThickness float64

	// HoleBottomLip is the height of the solid ring below the knot hole,
	// and HoleHeight is the height of the knot hole itself.
	HoleBottomLip float64
	HoleHeight    float64

	// TopSlotHeight is the height of the cable slot below the top rim.
	TopSlotHeight float64
	TopRimHeight  float64

	// HoleWidth is the angular width of both openings, which are centered
	// on the side of the tower facing away from the panel.
	HoleWidth float64

	// TubeSteps and BaseSteps are the angular resolutions of the tower
	// sections and of the base.
	TubeSteps int
	BaseSteps int

	Caps CapStyle
	Up   UpAxis

	// Verbose enables logging of each part as it is built.
	Verbose bool
}

// DefaultTowerConfig creates a tower which fits DefaultPanelConfig().
func DefaultTowerConfig() *TowerConfig {
	return &TowerConfig{
		LithoWidth:    203.2,
		SweepAngle:    120,
		TowerHeight:   150,
		TowerRadius:   25,
		WallThickness: 2.5,
		SlotWidth:     3.8,
		WallHeight:    12,
		BaseThickness: 3,
		HoleBottomLip: 3,
		HoleHeight:    9,
		TopSlotHeight: 10,
		TopRimHeight:  4,
		HoleWidth:     35,
		TubeSteps:     60,
		BaseSteps:     200,
		Caps:          EarClipCaps,
		Up:            UpZ,
	}
}

// LithoRadius gets the radius of the back of the held panel.
func (t *TowerConfig) LithoRadius() float64 {
	return t.LithoWidth / (t.SweepAngle * math.Pi / 180)
}

// Validate checks every dimension of t, including that each section and
// the base profile can be built, so BuildTower never fails partway.
func (t *TowerConfig) Validate() error {
	if !(t.LithoWidth > 0) || !(t.SweepAngle > 0) || t.SweepAngle > 360 {
		return preconditionf("invalid panel width %f or sweep angle %f", t.LithoWidth,
			t.SweepAngle)
	}
	if !(t.TowerRadius > t.WallThickness) || !(t.WallThickness > 0) {
		return preconditionf("invalid tower radius %f for wall thickness %f", t.TowerRadius,
			t.WallThickness)
	}
	if !(t.HoleWidth > 0) || !(t.HoleWidth < 360) {
		return preconditionf("invalid hole width: %f", t.HoleWidth)
	}
	if t.TubeSteps < 3 || t.BaseSteps < 1 {
		return preconditionf("invalid steps: tube %d, base %d", t.TubeSteps, t.BaseSteps)
	}
	if !(t.SlotWidth > 0) || !(t.WallHeight > 0) || !(t.BaseThickness > 0) {
		return preconditionf("invalid base slot width %f, wall height %f, or thickness %f",
			t.SlotWidth, t.WallHeight, t.BaseThickness)
	}
	// The channel's inner wall must clear the floor's inner edge.
	if !(t.LithoRadius()-t.SlotWidth/2-2 > t.TowerRadius-2) {
		return preconditionf("panel radius %f is too small for tower radius %f",
			t.LithoRadius(), t.TowerRadius)
	}
	heights := t.sectionHeights()
	for i := 1; i < len(heights); i++ {
		if !(heights[i] > heights[i-1]) {
			return preconditionf("tower section heights must increase, got %v", heights[:])
		}
	}
	for _, s := range t.Sections() {
		if err := s.Validate(t.TubeSteps); err != nil {
			return err
		}
	}
	profile := t.BaseProfile()
	if err := profile.Validate(); err != nil {
		return err
	}
	if t.Caps == FanCaps && !profile.FanTriangulable() {
		return preconditionf("base profile is not star-shaped from its first vertex; " +
			"use ear-clip caps")
	}
	return nil
}

func (t *TowerConfig) sectionHeights() [6]float64 {
	holeTop := t.HoleBottomLip + t.HoleHeight
	slotTop := t.TowerHeight - t.TopRimHeight
	slotBottom := slotTop - t.TopSlotHeight
	return [6]float64{0, t.HoleBottomLip, holeTop, slotBottom, slotTop, t.TowerHeight}
}

// Sections gets the stacked tube sections of the tower, from bottom to top:
// a solid lip, the knot hole, the trunk, the top entry slot, and the top
// rim.
func (t *TowerConfig) Sections() []*ArcTubeSection {
	halfHole := t.HoleWidth * math.Pi / 360
	openStart := math.Pi + halfHole
	openEnd := openStart + 2*math.Pi - 2*halfHole

	h := t.sectionHeights()
	inner, outer := t.TowerRadius-t.WallThickness, t.TowerRadius
	res := make([]*ArcTubeSection, 5)
	for i := range res {
		res[i] = &ArcTubeSection{
			InnerRadius: inner,
			OuterRadius: outer,
			ZStart:      h[i],
			ZEnd:        h[i+1],
			AngleStart:  0,
			AngleEnd:    2 * math.Pi,
		}
		if i%2 == 1 {
			res[i].AngleStart = openStart
			res[i].AngleEnd = openEnd
		}
	}
	return res
}

// BaseProfile gets the cross-section of the base: a floor running from the
// tower to beyond the panel, with a channel for the panel between two
// walls.
func (t *TowerConfig) BaseProfile() Profile {
	rLitho := t.LithoRadius()
	floorStart := t.TowerRadius - 2
	slotIn := rLitho - t.SlotWidth/2
	slotOut := rLitho + t.SlotWidth/2
	outerWall := slotOut + 2
	innerWall := slotIn - 2

	floor := t.BaseThickness
	wall := t.BaseThickness + t.WallHeight
	return Profile{
		{floorStart, 0},
		{outerWall, 0},
		{outerWall, wall},
		{slotOut, wall},
		{slotOut, floor},
		{slotIn, floor},
		{slotIn, wall},
		{innerWall, wall},
		{innerWall, floor},
		{floorStart, floor},
	}
}

// BaseAngles gets the angular range of the base, which matches the panel.
func (t *TowerConfig) BaseAngles() (start, end float64) {
	half := t.SweepAngle * math.Pi / 360
	return -half, half
}

// TriangleCount gets the number of triangles BuildTower produces.
func (t *TowerConfig) TriangleCount() int {
	var n int
	for _, s := range t.Sections() {
		n += s.TriangleCount(t.TubeSteps)
	}
	start, end := t.BaseAngles()
	return n + SweepTriangleCount(len(t.BaseProfile()), t.BaseSteps, start, end)
}

// BuildTower creates a mesh for the tower and its base.
//
// Each part of the result is closed on its own, but parts are not merged,
// so stacked sections leave coincident faces where they meet.
func BuildTower(t *TowerConfig) (*Mesh, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	proj := Projector{Up: t.Up}
	mesh := NewMesh(t.TriangleCount())

	names := []string{"bottom lip", "knot hole", "trunk", "top entry slot", "top rim"}
	for i, section := range t.Sections() {
		if t.Verbose {
			log.Printf("Generating %s (z=%.1f to %.1f)...", names[i], section.ZStart,
				section.ZEnd)
		}
		if err := AddArcTube(mesh, proj, section, t.TubeSteps); err != nil {
			return nil, err
		}
	}

	if t.Verbose {
		log.Println("Generating base...")
	}
	start, end := t.BaseAngles()
	err := AddProfileSweep(mesh, proj, t.BaseProfile(), start, end, t.BaseSteps, t.Caps)
	if err != nil {
		return nil, err
	}
	return mesh, nil
}
