package litho

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Save writes obj to a file at path using the encoder f.
//
// The data is staged in a temporary file next to path, which replaces path
// only after f and the file close both succeed.
func Save[T any](path string, obj T, f func(w io.Writer, obj T) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "save")
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()
	if err := f(tmp, obj); err != nil {
		tmp.Close()
		return errors.Wrap(err, "save")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "save")
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return errors.Wrap(err, "save")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrap(err, "save")
	}
	return nil
}

// Load reads an object from a file at path using the decoder f.
//
// If the file does not exist, the returned error wraps ErrResourceNotFound.
func Load[T any](path string, f func(r io.Reader) (T, error)) (T, error) {
	var zero T
	r, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, errors.Wrapf(ErrResourceNotFound, "load %s", path)
		}
		return zero, errors.Wrap(err, "load")
	}
	defer r.Close()
	obj, err := f(r)
	if err != nil {
		return zero, errors.Wrap(err, "load")
	}
	return obj, nil
}
