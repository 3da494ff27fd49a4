package wulai

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Payload is a decoded JSON object as returned by the platform.
type Payload map[string]any

// CallOptions are the per-call settings of a [Request].
type CallOptions struct {
	// Method is the HTTP method. Empty means POST.
	Method string `validate:"omitempty,oneof=GET POST PUT PATCH HEAD DELETE"`
	// Timeout bounds a single attempt. Zero means the client default.
	Timeout time.Duration `validate:"gte=0"`
	// RetryCount is the number of additional attempts after a failed one.
	RetryCount int `validate:"gte=0"`
	// Headers are merged over the default Accept and Content-Type headers.
	Headers map[string]string
}

// Request is a validated action, parameter payload and call options triple.
// Build it with [NewRequest]; a zero Request is rejected by [Client.Dispatch].
type Request struct {
	path    string
	params  any
	opts    CallOptions
	headers map[string]string
}

// NewRequest validates its arguments and builds a [Request].
//
// The action is used directly as the path below the versioned endpoint, a
// leading slash is added when missing. Params must be a map keyed by strings
// or a struct (or pointer to one); pre-serialized JSON strings are rejected.
func NewRequest(action string, params any, opts CallOptions) (*Request, error) {
	path, err := resolvePath(action)
	if err != nil {
		return nil, err
	}

	params, err = checkParams(params)
	if err != nil {
		return nil, err
	}

	opts.Method = strings.ToUpper(strings.TrimSpace(opts.Method))
	if err := checkCallOptions(opts); err != nil {
		return nil, err
	}

	if opts.Method == "" {
		opts.Method = http.MethodPost
	}

	headers := map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}
	for k, v := range opts.Headers {
		headers[http.CanonicalHeaderKey(k)] = v
	}

	return &Request{
		path:    path,
		params:  params,
		opts:    opts,
		headers: headers,
	}, nil
}

func resolvePath(action string) (string, error) {
	action = strings.TrimSpace(action)

	if action == "" {
		return "", newError(CodeInvalidAction, "action must not be empty")
	}

	if strings.Contains(action, "://") || strings.ContainsAny(action, " \t\r\n?#") {
		return "", newError(CodeInvalidAction, fmt.Sprintf("action %q is not a valid path", action))
	}

	if !strings.HasPrefix(action, "/") {
		action = "/" + action
	}

	return action, nil
}

func checkParams(params any) (any, error) {
	if params == nil {
		return map[string]any{}, nil
	}

	v := reflect.ValueOf(params)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, newError(CodeInvalidParams, "params must not be a nil pointer")
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, newError(CodeInvalidParams, fmt.Sprintf("params map must be keyed by strings, got %s", v.Type()))
		}
		if v.IsNil() {
			return map[string]any{}, nil
		}
	case reflect.Struct:
	default:
		return nil, newError(CodeInvalidParams, fmt.Sprintf("params must be a map or struct, got %T", params))
	}

	return params, nil
}

func checkCallOptions(opts CallOptions) error {
	err := validate.Struct(opts)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return wrapError(CodeInvalidParams, err, "invalid call options")
	}

	for _, fe := range verrs {
		if fe.Field() == "Method" {
			return newError(CodeMethodNotAllowed, fmt.Sprintf("method %q is not supported", opts.Method))
		}
	}

	fe := verrs[0]
	return newError(CodeInvalidParams, fmt.Sprintf("call option %s failed %q validation", fe.Field(), fe.Tag()))
}

// Path returns the resolved path below the versioned endpoint.
func (r *Request) Path() string {
	return r.path
}

// Method returns the HTTP method of the request.
func (r *Request) Method() string {
	return r.opts.Method
}

// Params returns the parameter payload.
func (r *Request) Params() any {
	return r.params
}

// Options returns the call options.
func (r *Request) Options() CallOptions {
	return r.opts
}

// Headers returns a copy of the request headers, without authentication.
func (r *Request) Headers() map[string]string {
	h := make(map[string]string, len(r.headers))
	for k, v := range r.headers {
		h[k] = v
	}

	return h
}
