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
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_info [flags] <input.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading mesh...")
	f, err := os.Open(inputPath)
	essentials.Must(err)
	count, err := litho.ReadSTLCount(f)
	f.Close()
	essentials.Must(err)
	tris, err := litho.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)
	mesh := litho.NewMeshSTL(tris)

	info, err := os.Stat(inputPath)
	essentials.Must(err)
	expectedSize := litho.EncodedSize(int(count))

	fmt.Println("Header triangle count:", count)
	fmt.Println("Number of triangles:", mesh.NumTriangles())
	if info.Size() != expectedSize {
		fmt.Printf("File size: %d (expected %d for a binary file)\n", info.Size(), expectedSize)
	} else {
		fmt.Println("File size:", info.Size())
	}
	fmt.Println("Min:", mesh.Min())
	fmt.Println("Max:", mesh.Max())

	report := litho.CheckClosure(mesh.Triangles)
	fmt.Println("Edges:", report.Edges)
	fmt.Println("Boundary edges:", report.Boundary)
	fmt.Println("Non-manifold edges:", report.NonManifold)
	fmt.Println("Inconsistent edges:", report.Inconsistent)
	fmt.Println("Degenerate triangles:", report.Degenerate)
	fmt.Println("Watertight:", report.Watertight())
	fmt.Printf("Signed volume: %f\n", litho.SignedVolume(mesh.Triangles))
	fmt.Println("Needs repair (model3d):", mesh.Model().NeedsRepair())
}
