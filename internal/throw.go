package internal

import "github.com/pkg/errors"

// Input problems are returned as ordinary errors. Broken internal invariants
// (a Laurent polynomial outgrowing its storage, a workspace sized for a
// different polygon) are not something a caller can act on, so they panic with
// an InternalError and the public API recovers them into an error.

var (
	// ErrInvalidPolygon covers too few vertices, repeated adjacent vertices and
	// malformed or unclosed edge lists.
	ErrInvalidPolygon = errors.New("invalid polygon")
	// ErrCoincidentQuery is returned when the query point equals a vertex.
	ErrCoincidentQuery = errors.New("query point coincides with a vertex")
	// ErrSingularSystem is returned when the blending weights cannot be
	// normalized.
	ErrSingularSystem = errors.New("singular weight system")
)

// InternalError marks a panic raised by fatalf, as opposed to a runtime panic.
type InternalError struct {
	error
}

// Panic with an InternalError.
func fatalf(format string, args ...interface{}) {
	panic(InternalError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if internalError, ok := r.(InternalError); ok {
			return errors.Wrap(internalError, "cubicmvc internal error")
		}
		panic(r)
	}
	return nil
}
