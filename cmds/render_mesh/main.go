package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/curved-litho/litho"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

func main() {
	var gridSize int
	var imageSize int
	var up string
	flag.IntVar(&gridSize, "grid-size", 3, "grid size (used for rows and columns)")
	flag.IntVar(&imageSize, "image-size", 300, "size of each image in the grid")
	flag.StringVar(&up, "up", "z", "rotation axis for GIF outputs (y or z)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: render_mesh [flags] <input.stl> <output.png|output.gif>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	upAxis, err := litho.ParseUpAxis(up)
	essentials.Must(err)

	log.Println("Loading mesh...")
	tris, err := litho.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)

	log.Println("Rendering...")
	essentials.Must(litho.SavePreview(outputPath, litho.NewMeshSTL(tris), upAxis, gridSize,
		imageSize))
}
