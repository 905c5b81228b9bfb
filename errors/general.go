package errors

const (
	UnknownErrorCode       = 100_001
	InvalidRequestBodyCode = 100_002
)

var UnknownError = new(UnknownErrorCode, "UnknownError", "unexpected error: %s")

// InvalidRequestBodyError indicates the request body could not be decoded
var InvalidRequestBodyError = new(InvalidRequestBodyCode, "InvalidRequestBody", "invalid request body: %s")
