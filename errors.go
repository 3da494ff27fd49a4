package wulai

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of failure reported by [Client].
type ErrorCode string

const (
	CodeInvalidRequest     ErrorCode = "SDK_INVALID_REQUEST"
	CodeInvalidAction      ErrorCode = "SDK_INVALID_ACTION"
	CodeInvalidParams      ErrorCode = "SDK_INVALID_PARAMS"
	CodeInvalidCredential  ErrorCode = "SDK_INVALID_CREDENTIAL"
	CodeMethodNotAllowed   ErrorCode = "SDK_METHOD_NOT_ALLOW"
	CodeInvalidAPIVersion  ErrorCode = "SDK_INVALID_API_VERSION"
	CodeHTTPError          ErrorCode = "SDK_HTTP_ERROR"
	CodeServerUnreachable  ErrorCode = "SDK_SERVER_UNREACHABLE"
	CodeUnknownServerError ErrorCode = "SDK_UNKNOWN_SERVER_ERROR"
	CodeResponseDecode     ErrorCode = "SDK_RESPONSE_DECODE_ERROR"
)

var defaultMessages = map[ErrorCode]string{
	CodeInvalidRequest:     "the request is not a valid Request",
	CodeInvalidAction:      "the action is incorrect, please check it",
	CodeInvalidParams:      "the param is incorrect, please check it",
	CodeInvalidCredential:  "the secret or pubkey is incorrect, please check it",
	CodeMethodNotAllowed:   "method not allowed, please check it",
	CodeInvalidAPIVersion:  "invalid api version, please check it",
	CodeHTTPError:          "http request error",
	CodeServerUnreachable:  "unable to reach the server",
	CodeUnknownServerError: "unknown server error",
	CodeResponseDecode:     "failed to decode response body",
}

// Sentinel errors for use with [errors.Is]. Matching is done on the code
// only, so any [*Error] with the same code matches.
var (
	ErrInvalidRequest     = &Error{Code: CodeInvalidRequest}
	ErrInvalidAction      = &Error{Code: CodeInvalidAction}
	ErrInvalidParams      = &Error{Code: CodeInvalidParams}
	ErrInvalidCredential  = &Error{Code: CodeInvalidCredential}
	ErrMethodNotAllowed   = &Error{Code: CodeMethodNotAllowed}
	ErrInvalidAPIVersion  = &Error{Code: CodeInvalidAPIVersion}
	ErrHTTP               = &Error{Code: CodeHTTPError}
	ErrServerUnreachable  = &Error{Code: CodeServerUnreachable}
	ErrUnknownServerError = &Error{Code: CodeUnknownServerError}
	ErrResponseDecode     = &Error{Code: CodeResponseDecode}
)

// Error is the only error type returned by [Client.Dispatch] and the typed
// endpoint methods.
type Error struct {
	// Code is the failure kind.
	Code ErrorCode
	// Message is the server supplied message when there is one, otherwise a
	// default description of Code.
	Message string
	// StatusCode is the HTTP status of the response, or 0 when no response
	// was received.
	StatusCode int
	// Err is the underlying cause, if any.
	Err error
}

func newError(code ErrorCode, msg string) *Error {
	if msg == "" {
		msg = defaultMessages[code]
	}

	return &Error{Code: code, Message: msg}
}

func wrapError(code ErrorCode, err error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = defaultMessages[e.Code]
	}

	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, msg)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Code, msg)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an [*Error] with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Code == t.Code
}

// IsServerError reports whether the failure was raised by the platform
// rather than detected by the client.
func (e *Error) IsServerError() bool {
	return (e.Code == CodeMethodNotAllowed && e.StatusCode != 0) || e.Code == CodeUnknownServerError
}

// ErrorCodeOf returns the code of err if it is an [*Error], or "" otherwise.
func ErrorCodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ""
}
