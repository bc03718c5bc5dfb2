package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/curved-litho/litho"
	"github.com/unixpickle/essentials"
)

func main() {
	config := litho.DefaultTowerConfig()
	var caps string
	var up string
	var normals string
	var previewPath string
	flag.Float64Var(&config.LithoWidth, "litho-width", config.LithoWidth,
		"width of the held panel along its curve (mm)")
	flag.Float64Var(&config.SweepAngle, "angle", config.SweepAngle,
		"angle of the held panel's curve (degrees)")
	flag.Float64Var(&config.TowerHeight, "height", config.TowerHeight, "height of the tower (mm)")
	flag.Float64Var(&config.TowerRadius, "radius", config.TowerRadius, "outer radius of the tower (mm)")
	flag.Float64Var(&config.WallThickness, "wall-thickness", config.WallThickness,
		"thickness of the tower tube (mm)")
	flag.Float64Var(&config.SlotWidth, "slot-width", config.SlotWidth,
		"width of the channel holding the panel (mm)")
	flag.Float64Var(&config.WallHeight, "wall-height", config.WallHeight,
		"height of the channel walls (mm)")
	flag.Float64Var(&config.BaseThickness, "base-thickness", config.BaseThickness,
		"thickness of the base floor (mm)")
	flag.Float64Var(&config.HoleBottomLip, "hole-lip", config.HoleBottomLip,
		"height of the solid ring below the knot hole (mm)")
	flag.Float64Var(&config.HoleHeight, "hole-height", config.HoleHeight,
		"height of the knot hole (mm)")
	flag.Float64Var(&config.TopSlotHeight, "top-slot-height", config.TopSlotHeight,
		"height of the cable slot at the top (mm)")
	flag.Float64Var(&config.TopRimHeight, "top-rim-height", config.TopRimHeight,
		"height of the solid rim above the cable slot (mm)")
	flag.Float64Var(&config.HoleWidth, "hole-width", config.HoleWidth,
		"angular width of the openings (degrees)")
	flag.IntVar(&config.TubeSteps, "tube-steps", config.TubeSteps,
		"angular resolution of the tower")
	flag.IntVar(&config.BaseSteps, "base-steps", config.BaseSteps,
		"angular resolution of the base")
	flag.StringVar(&caps, "caps", config.Caps.String(), "base end triangulation (fan or ear-clip)")
	flag.StringVar(&up, "up", config.Up.String(), "axis of the tower (y or z)")
	flag.StringVar(&normals, "normals", litho.ZeroNormals.String(),
		"facet normals to store (zero or winding)")
	flag.StringVar(&previewPath, "preview", "", "optional path to save a rendering of the tower")
	flag.BoolVar(&config.Verbose, "verbose", false, "log each part of the tower")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: panel_tower [flags] <output.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	outputPath := args[0]

	var err error
	config.Caps, err = litho.ParseCapStyle(caps)
	essentials.Must(err)
	config.Up, err = litho.ParseUpAxis(up)
	essentials.Must(err)
	normalMode, err := litho.ParseNormalMode(normals)
	essentials.Must(err)

	log.Println("Creating tower...")
	mesh, err := litho.BuildTower(config)
	essentials.Must(err)
	log.Printf(" => %d triangles", mesh.NumTriangles())

	log.Println("Writing output...")
	essentials.Must(litho.SaveSTL(outputPath, mesh, normalMode))

	if previewPath != "" {
		log.Println("Rendering preview...")
		essentials.Must(litho.SavePreview(previewPath, mesh, config.Up, 2, 400))
	}
}
