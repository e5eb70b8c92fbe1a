package errors

import (
	"errors"
)

// As is a wrapper around errors.As for our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool { return GetCode(err) == CodeAlreadyExists }

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

// IsAborted checks if an error is an aborted error
func IsAborted(err error) bool { return GetCode(err) == CodeAborted }

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }
