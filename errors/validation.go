package errors

const (
	ValidationFailedErrorCode = 600_001
)

// ValidationFailedError indicates a submitted form has invalid fields
var ValidationFailedError = new(ValidationFailedErrorCode, "ValidationFailed", "Some fields are invalid: %s")
