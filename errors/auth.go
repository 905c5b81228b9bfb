package errors

const (
	UnauthorizedErrorCode       = 400_001
	InvalidCredentialsErrorCode = 400_002
)

var UnauthorizedError = new(UnauthorizedErrorCode, "Unauthorized", "Unauthorized")

// InvalidCredentialsError indicates the email and password pair does not match any admin
var InvalidCredentialsError = new(InvalidCredentialsErrorCode, "InvalidCredentials", "Invalid email or password")

// UnauthorizedAccessError indicates a valid login by an account that may not use the dashboard
var UnauthorizedAccessError = new(UnauthorizedErrorCode, "Unauthorized", "Unauthorized access.")
