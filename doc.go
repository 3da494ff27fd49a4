// Package wulai provides an HTTP client for the Wulai conversational bot
// platform.
//
// The client wraps [github.com/go-resty/resty/v2] with request signing,
// bounded retries, configurable connection pooling, and pluggable logging.
//
// # Basic Usage
//
//	c, err := wulai.New("my-pubkey", "my-secret",
//	    wulai.WithRetryCount(2),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.GetBotResponse(ctx, "user-1", wulai.TextBody("hello"), "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Endpoints without a typed method are reached through [NewRequest] and
// [Client.Dispatch], which return the raw [Payload]; [Decode] turns a payload
// into a typed model.
//
//	req, err := wulai.NewRequest("/user/create", map[string]any{"user_id": "u1"}, wulai.CallOptions{})
//	payload, err := c.Dispatch(ctx, req)
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; the
// resulting options are validated by [New]. An unsupported API version is
// reported as an [*Error] with code [CodeInvalidAPIVersion].
//
// # Retry Behaviour
//
// A request is attempted at most 1+RetryCount times. Every attempt carries a
// fresh signature. [DefaultRetryPolicy] retries every failure, including
// rejected parameters and credentials; [TransientRetryPolicy] only retries
// unreachable servers, transport errors and unknown server errors. Supply a
// custom function via [WithRetryPolicy] to override this behaviour.
//
// The timeout bounds each attempt, not the whole call. Between attempts the
// client waits [WithRetryWaitTime] (100ms by default), doubling each time up
// to [WithRetryMaxWaitTime] (1s by default), so a call that exhausts its
// retries takes up to (1+RetryCount)*timeout plus the sum of these waits.
// Waiting stops as soon as the context is done.
//
// # Errors
//
// Every error returned by [Client.Dispatch] and the typed methods is an
// [*Error]. Use [errors.Is] with the sentinel values or [ErrorCodeOf]:
//
//	if errors.Is(err, wulai.ErrInvalidCredential) {
//	    // check pubkey and secret
//	}
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library; a *logrus.Logger can be used as is.
// The default [NoopLogger] discards all log output. Debug output is enabled
// per client with [WithDebug]. Ensure your implementation redacts the
// Api-Auth headers before persisting logs.
package wulai
