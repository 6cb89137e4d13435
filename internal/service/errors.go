package service

// ValidationError rejects a submission with missing or malformed
// required fields. Never retried; mapped to 400 at the handler boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(msg string) error {
	return &ValidationError{Message: msg}
}
