package litho

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
)

// SavePreview renders m to an image file.
//
// A path ending in .gif produces an animation rotating around the given up
// axis. Any other path produces a PNG grid of gridSize x gridSize random
// views.
func SavePreview(path string, m *Mesh, up UpAxis, gridSize, imageSize int) error {
	object := render3d.Objectify(model3d.MeshToCollider(m.Model()), nil)
	var err error
	if strings.ToLower(filepath.Ext(path)) == ".gif" {
		axis, camera := model3d.Z(1), model3d.YZ(-1, 0.1).Normalize()
		if up == UpY {
			axis, camera = model3d.Y(1), model3d.YZ(0.1, -1).Normalize()
		}
		err = render3d.SaveRotatingGIF(path, object, axis, camera, imageSize, 20, 10, nil)
	} else {
		err = render3d.SaveRandomGrid(path, object, gridSize, gridSize, imageSize, nil)
	}
	if err != nil {
		return errors.Wrap(err, "save preview")
	}
	return nil
}

// NewMeshSTL creates a Mesh from triangles read with model3d.ReadSTL.
func NewMeshSTL(tris []*model3d.Triangle) *Mesh {
	res := NewMesh(len(tris))
	for _, t := range tris {
		res.Add(*t)
	}
	return res
}
