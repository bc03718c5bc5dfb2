package litho

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

const (
	stlHeaderSize = 80
	stlRecordSize = 50
)

// NormalMode determines which normal is stored for each STL facet.
type NormalMode int

const (
	// ZeroNormals stores zero vectors, leaving readers to derive normals
	// from the vertex order.
	ZeroNormals NormalMode = iota

	// WindingNormals stores the unit normal implied by the vertex order.
	// Degenerate triangles still get a zero vector.
	WindingNormals
)

func (n NormalMode) String() string {
	switch n {
	case ZeroNormals:
		return "zero"
	case WindingNormals:
		return "winding"
	default:
		return fmt.Sprintf("NormalMode(%d)", int(n))
	}
}

// ParseNormalMode parses the output of NormalMode.String().
func ParseNormalMode(s string) (NormalMode, error) {
	switch s {
	case "zero":
		return ZeroNormals, nil
	case "winding":
		return WindingNormals, nil
	}
	return 0, fmt.Errorf("unknown normal mode: %q", s)
}

// EncodedSize gets the size in bytes of a binary STL file with the given
// number of triangles.
func EncodedSize(numTriangles int) int64 {
	return stlHeaderSize + 4 + stlRecordSize*int64(numTriangles)
}

// WriteSTL encodes the triangles of m, in order, as a binary STL file.
//
// The header is zero-filled, and every triangle stores its own three
// vertices with 32-bit precision.
func WriteSTL(w io.Writer, m *Mesh, mode NormalMode) error {
	if uint64(len(m.Triangles)) > math.MaxUint32 {
		return errors.Errorf("write stl: too many triangles (%d)", len(m.Triangles))
	}
	bw := bufio.NewWriter(w)

	var header [stlHeaderSize + 4]byte
	binary.LittleEndian.PutUint32(header[stlHeaderSize:], uint32(len(m.Triangles)))
	if _, err := bw.Write(header[:]); err != nil {
		return errors.Wrap(err, "write stl")
	}

	var record [stlRecordSize]byte
	for i := range m.Triangles {
		t := &m.Triangles[i]
		var normal model3d.Coord3D
		if mode == WindingNormals {
			normal = facetNormal(t)
		}
		putCoord(record[0:], normal)
		for j, c := range t {
			putCoord(record[12*(j+1):], c)
		}
		if _, err := bw.Write(record[:]); err != nil {
			return errors.Wrap(err, "write stl")
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write stl")
	}
	return nil
}

// SaveSTL writes m to a binary STL file.
//
// The file is only created once all of its contents have been written
// successfully, so failed writes never leave a truncated file behind.
func SaveSTL(path string, m *Mesh, mode NormalMode) error {
	return Save(path, m, func(w io.Writer, m *Mesh) error {
		return WriteSTL(w, m, mode)
	})
}

// ReadSTLCount reads the triangle count from the header of a binary STL
// file.
func ReadSTLCount(r io.Reader) (uint32, error) {
	var header [stlHeaderSize + 4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, errors.Wrap(err, "read stl header")
	}
	return binary.LittleEndian.Uint32(header[stlHeaderSize:]), nil
}

func putCoord(b []byte, c model3d.Coord3D) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(c.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(c.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(c.Z)))
}

func facetNormal(t *model3d.Triangle) model3d.Coord3D {
	if t.Area() == 0 {
		return model3d.Coord3D{}
	}
	return t.Normal()
}
