package roster

import "fmt"

// ValidationError marks input problems that abort the whole build. The HTTP
// layer maps these to a 400 response verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
