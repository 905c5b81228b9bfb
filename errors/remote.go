package errors

const (
	RemoteRequestFailedErrorCode = 500_001
	RemoteUnreachableErrorCode   = 500_002
)

// RemoteRequestFailedError carries the message the admin API answered with
var RemoteRequestFailedError = new(RemoteRequestFailedErrorCode, "RemoteRequestFailed", "%s")

// RemoteUnreachableError indicates the admin API could not be reached at all
var RemoteUnreachableError = new(RemoteUnreachableErrorCode, "RemoteUnreachable", "An error occurred. Please try again.")
