package wulai

// RetryPolicy decides whether a failed attempt is retried. It is consulted
// only while the request still has retry budget left, and never once the
// request context is done.
type RetryPolicy func(err *Error) bool

// DefaultRetryPolicy retries every failure, including rejected parameters
// and credentials, until the retry budget of the request is spent.
//
// Supply [TransientRetryPolicy] or a custom function via [WithRetryPolicy]
// to override this behaviour.
func DefaultRetryPolicy(_ *Error) bool {
	return true
}

// TransientRetryPolicy retries only failures that a later attempt may not
// repeat: unreachable server, transport I/O errors and unknown server
// errors. Rejected parameters, credentials and methods are returned at once.
func TransientRetryPolicy(err *Error) bool {
	switch err.Code {
	case CodeServerUnreachable, CodeHTTPError, CodeUnknownServerError:
		return true
	default:
		return false
	}
}
