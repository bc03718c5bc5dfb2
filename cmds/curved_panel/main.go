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
	config := litho.DefaultPanelConfig()
	var up string
	var normals string
	var previewPath string
	flag.Float64Var(&config.ArcWidth, "width", config.ArcWidth, "width of the panel along its curve (mm)")
	flag.Float64Var(&config.PixelResolution, "resolution", config.PixelResolution,
		"size of one image sample (mm)")
	flag.Float64Var(&config.MinThickness, "min-thickness", config.MinThickness,
		"thickness of the lightest parts (mm)")
	flag.Float64Var(&config.MaxThickness, "max-thickness", config.MaxThickness,
		"thickness of the darkest parts (mm)")
	flag.Float64Var(&config.SweepAngle, "angle", config.SweepAngle,
		"angle of the curve (degrees)")
	flag.Float64Var(&config.BorderWidth, "border", config.BorderWidth,
		"width of the frame around the image (mm)")
	flag.StringVar(&up, "up", config.Up.String(), "axis of the cylinder (y or z)")
	flag.StringVar(&normals, "normals", litho.ZeroNormals.String(),
		"facet normals to store (zero or winding)")
	flag.StringVar(&previewPath, "preview", "", "optional path to save a rendering of the panel")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: curved_panel [flags] <input_image> <output.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	var err error
	config.Up, err = litho.ParseUpAxis(up)
	essentials.Must(err)
	normalMode, err := litho.ParseNormalMode(normals)
	essentials.Must(err)

	log.Println("Loading image...")
	thickness, height, err := litho.ImageThickness(config, inputPath)
	essentials.Must(err)
	log.Printf(" => %dx%d samples, %.1fx%.1f mm", thickness.Cols, thickness.Rows,
		config.ArcWidth, height)

	log.Println("Creating mesh...")
	mesh, err := litho.BuildPanel(config, thickness, height)
	essentials.Must(err)
	log.Printf(" => radius %.2f mm, %d triangles", config.Radius(), mesh.NumTriangles())

	log.Println("Writing output...")
	essentials.Must(litho.SaveSTL(outputPath, mesh, normalMode))

	if previewPath != "" {
		log.Println("Rendering preview...")
		essentials.Must(litho.SavePreview(previewPath, mesh, config.Up, 2, 400))
	}
}
