package errors

import (
	"context"
	goerrors "errors"
)

const genericUserMessage = "An error occurred. Please try again."

// UserMessage collapses err into the plain text shown to the dashboard user.
func UserMessage(err error) string {

	if err == nil {
		return ""
	}

	if goerrors.Is(err, context.Canceled) || goerrors.Is(err, context.DeadlineExceeded) {
		return genericUserMessage
	}

	asserted, ok := TryAssertError(err)
	if !ok || asserted.Code == UnknownErrorCode || asserted.Message == "" {
		return genericUserMessage
	}

	return asserted.Message
}
