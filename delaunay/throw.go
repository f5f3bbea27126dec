package delaunay

import "github.com/pkg/errors"

// Threading errors up and down the sweep and the flip loop would add noise to
// code that can only fail on a broken internal invariant. Instead, we use
// panics, and the public API recovers to convert to an error.

// TriangulateError is the panic value raised by fatalf. Any other panic is a
// real bug and keeps unwinding.
type TriangulateError struct {
	err error
}

func (e TriangulateError) Error() string {
	return e.err.Error()
}

func (e TriangulateError) Unwrap() error {
	return e.err
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.err
		}
		panic(r)
	}
	return nil
}
