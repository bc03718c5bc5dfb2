package litho

import "github.com/pkg/errors"

var (
	// ErrResourceNotFound is returned when an input resource, such as the
	// source image for a thickness grid, does not exist.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrPrecondition is returned when an input cannot produce a valid
	// closed mesh. It is always returned before any triangles are built.
	ErrPrecondition = errors.New("precondition violated")
)

func preconditionf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrPrecondition, format, args...)
}
