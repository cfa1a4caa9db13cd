package expansion

import "fmt"

// ValidationError means operator input or a target was rejected before any
// command was issued for it.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func validationErrorf(msg string, args ...interface{}) ValidationError {
	return ValidationError{Message: fmt.Sprintf(msg, args...)}
}
