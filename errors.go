package quiver

import "errors"

// Contract violations are unrecoverable and surface as panics carrying an
// error that wraps one of these sentinels. Match with errors.Is after
// recovering, or use Maybe to convert a violation into a returned error.
var (
	// ErrDimensionMismatch reports operand lengths or shapes that disagree.
	ErrDimensionMismatch = errors.New("quiver: dimension mismatch")
	// ErrDivisionByZero reports a zero divisor element.
	ErrDivisionByZero = errors.New("quiver: division by zero")
	// ErrZeroVector reports an operation undefined for zero magnitude.
	ErrZeroVector = errors.New("quiver: zero vector")
	// ErrEmptyInput reports a construction undefined for empty input.
	ErrEmptyInput = errors.New("quiver: empty input")
)

// isContract reports whether err wraps one of the sentinel errors.
func isContract(err error) bool {
	return errors.Is(err, ErrDimensionMismatch) ||
		errors.Is(err, ErrDivisionByZero) ||
		errors.Is(err, ErrZeroVector) ||
		errors.Is(err, ErrEmptyInput)
}
