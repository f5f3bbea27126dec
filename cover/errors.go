package cover

import "github.com/pkg/errors"

// ErrInvalidInput is the root of every request validation failure. Use
// errors.Is to test for it.
var ErrInvalidInput = errors.New("invalid covering input")

var (
	ErrInvalidCount  = errors.Wrap(ErrInvalidInput, "shape count must not be negative")
	ErrInvalidCanvas = errors.Wrap(ErrInvalidInput, "canvas width and height must be positive and finite")
	ErrInvalidKind   = errors.Wrap(ErrInvalidInput, "unknown covering kind")
)
