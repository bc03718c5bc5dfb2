package litho

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

func TestWriteSTLRoundTrip(t *testing.T) {
	mesh := testPanel(t, rand.New(rand.NewSource(5)), 7, 11)
	var buf bytes.Buffer
	if err := WriteSTL(&buf, mesh, ZeroNormals); err != nil {
		t.Fatal(err)
	}
	if size := int64(buf.Len()); size != EncodedSize(mesh.NumTriangles()) ||
		size != 84+50*int64(mesh.NumTriangles()) {
		t.Fatalf("unexpected file size %d for %d triangles", size, mesh.NumTriangles())
	}
	if !bytes.Equal(buf.Bytes()[:80], make([]byte, 80)) {
		t.Error("header should be zero filled")
	}

	count, err := ReadSTLCount(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	} else if int(count) != mesh.NumTriangles() {
		t.Fatalf("expected count %d but got %d", mesh.NumTriangles(), count)
	}

	tris, err := model3d.ReadSTL(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) != mesh.NumTriangles() {
		t.Fatalf("expected %d triangles but read %d", mesh.NumTriangles(), len(tris))
	}
	for i, tri := range tris {
		for j, c := range tri {
			expected := float32Coord(mesh.Triangles[i][j])
			if c != expected {
				t.Fatalf("triangle %d vertex %d: expected %v but got %v", i, j, expected, c)
			}
		}
	}
	for i := 0; i < mesh.NumTriangles(); i++ {
		record := buf.Bytes()[84+50*i:]
		if !bytes.Equal(record[:12], make([]byte, 12)) || record[48] != 0 || record[49] != 0 {
			t.Fatalf("triangle %d: normal and attribute should be zero", i)
		}
	}
}

func TestWriteSTLWindingNormals(t *testing.T) {
	mesh := NewMesh(2)
	mesh.Add(model3d.Triangle{model3d.XYZ(0, 0, 0), model3d.XYZ(1, 0, 0), model3d.XYZ(0, 1, 0)})
	mesh.Add(model3d.Triangle{model3d.XYZ(0, 0, 0), model3d.XYZ(1, 0, 0), model3d.XYZ(2, 0, 0)})
	var buf bytes.Buffer
	if err := WriteSTL(&buf, mesh, WindingNormals); err != nil {
		t.Fatal(err)
	}
	normals := make([]float32, 0, 6)
	for i := 0; i < 2; i++ {
		record := buf.Bytes()[84+50*i:]
		for j := 0; j < 3; j++ {
			bits := binary.LittleEndian.Uint32(record[4*j:])
			normals = append(normals, math.Float32frombits(bits))
		}
	}
	expected := []float32{0, 0, 1, 0, 0, 0}
	for i, x := range expected {
		if normals[i] != x {
			t.Fatalf("expected normals %v but got %v", expected, normals)
		}
	}
}

func TestWriteSTLError(t *testing.T) {
	mesh := testPanel(t, rand.New(rand.NewSource(6)), 3, 3)
	for _, limit := range []int{0, 50, 1000} {
		err := WriteSTL(&failingWriter{limit: limit}, mesh, ZeroNormals)
		if err == nil {
			t.Errorf("limit %d: expected error", limit)
		} else if !errors.Is(err, errWriteFailed) {
			t.Errorf("limit %d: unexpected error: %v", limit, err)
		}
	}
}

func TestSaveSTL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panel.stl")
	mesh := testPanel(t, rand.New(rand.NewSource(7)), 4, 4)
	if err := SaveSTL(path, mesh, ZeroNormals); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != EncodedSize(mesh.NumTriangles()) {
		t.Errorf("unexpected file size: %d", info.Size())
	}
	tris, err := Load(path, model3d.ReadSTL)
	if err != nil {
		t.Fatal(err)
	} else if len(tris) != mesh.NumTriangles() {
		t.Errorf("expected %d triangles but got %d", mesh.NumTriangles(), len(tris))
	}
	mustWatertight(t, NewMeshSTL(tris).Triangles)
	mustOnlyFiles(t, dir, "panel.stl")
}

func TestSaveFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panel.stl")
	mesh := testPanel(t, rand.New(rand.NewSource(8)), 4, 4)
	err := Save(path, mesh, func(w io.Writer, m *Mesh) error {
		return WriteSTL(io.MultiWriter(w, &failingWriter{limit: 100}), m, ZeroNormals)
	})
	if !errors.Is(err, errWriteFailed) {
		t.Fatalf("unexpected error: %v", err)
	}
	mustOnlyFiles(t, dir)

	// A failed write must not clobber an existing file either.
	if err := SaveSTL(path, mesh, ZeroNormals); err != nil {
		t.Fatal(err)
	}
	err = Save(path, mesh, func(w io.Writer, m *Mesh) error {
		return errWriteFailed
	})
	if !errors.Is(err, errWriteFailed) {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(path); err != nil {
		t.Fatal(err)
	} else if info.Size() != EncodedSize(mesh.NumTriangles()) {
		t.Errorf("existing file was modified")
	}
	mustOnlyFiles(t, dir, "panel.stl")
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.stl"), model3d.ReadSTL)
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

var errWriteFailed = errors.New("write failed")

type failingWriter struct {
	limit   int
	written int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.written+len(p) > f.limit {
		n := f.limit - f.written
		f.written = f.limit
		return n, errWriteFailed
	}
	f.written += len(p)
	return len(p), nil
}

func float32Coord(c model3d.Coord3D) model3d.Coord3D {
	return model3d.XYZ(float64(float32(c.X)), float64(float32(c.Y)), float64(float32(c.Z)))
}

func mustOnlyFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(names) {
		t.Fatalf("expected files %v but found %d entries", names, len(entries))
	}
	for i, e := range entries {
		if e.Name() != names[i] {
			t.Fatalf("expected files %v but found %s", names, e.Name())
		}
	}
}
