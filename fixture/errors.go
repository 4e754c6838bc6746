package fixture

import "errors"

var (
	// ErrInvalidInput is returned when a required query parameter is missing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDecode is returned when a query parameter is not valid UTF-8 text.
	ErrDecode = errors.New("decode error")
)

// ErrorKind returns the failure kind of err, or an empty string if err
// does not wrap one of the known kinds.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return ErrInvalidInput.Error()
	case errors.Is(err, ErrDecode):
		return ErrDecode.Error()
	default:
		return ""
	}
}
