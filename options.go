package wulai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultEndpoint   = "https://openapi.wul.ai"
	DefaultAPIVersion = "v2"
)

var supportedAPIVersions = []string{"v1", "v2"}

type Option func(*Options)

type Options struct {
	endpoint            string
	apiVersion          string
	timeout             time.Duration
	retryCount          int
	retryWaitTime       time.Duration
	retryMaxWaitTime    time.Duration
	requestLogger       RequestLogger
	debug               bool
	retryPolicy         RetryPolicy
	requestHeaders      map[string]string
	maxIdleConns        int
	maxIdleConnsPerHost int
	httpClient          *http.Client
	transport           Transport
	allowedMethods      map[string]struct{}
}

func newClientOptions() *Options {
	return &Options{
		endpoint:            DefaultEndpoint,
		apiVersion:          DefaultAPIVersion,
		timeout:             3 * time.Second,
		retryCount:          0,
		retryWaitTime:       100 * time.Millisecond,
		retryMaxWaitTime:    1 * time.Second,
		requestLogger:       &NoopLogger{},
		retryPolicy:         DefaultRetryPolicy,
		requestHeaders:      map[string]string{},
		maxIdleConns:        10,
		maxIdleConnsPerHost: 10,
		allowedMethods: map[string]struct{}{
			http.MethodGet:  {},
			http.MethodPost: {},
		},
	}
}

// WithEndpoint sets the platform base URL, without the API version.
func WithEndpoint(endpoint string) Option {
	return func(o *Options) {
		endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
		if endpoint != "" {
			o.endpoint = endpoint
		}
	}
}

// WithAPIVersion sets the API version path segment. Unsupported versions
// are reported by [New].
func WithAPIVersion(version string) Option {
	return func(o *Options) {
		o.apiVersion = strings.TrimSpace(version)
	}
}

// WithTimeout sets the default per-attempt timeout used by the typed
// endpoint methods and by requests without their own timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetryCount sets the retry budget of the typed endpoint methods.
func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= 100*time.Millisecond {
			o.retryWaitTime = waitTime
		}
	}
}

func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(o *Options) {
		if maxWaitTime >= 100*time.Millisecond {
			o.retryMaxWaitTime = maxWaitTime
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithDebug enables debug level output for this client only.
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.debug = debug
	}
}

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

// WithRequestHeader adds a header to every request. Content-Type, Accept
// and the Api-Auth headers cannot be changed this way.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") ||
			strings.HasPrefix(strings.ToLower(header), strings.ToLower(authHeaderPrefix)) {
			return
		}

		o.requestHeaders[http.CanonicalHeaderKey(header)] = value
	}
}

// WithPoolSize sizes the private connection pool. It has no effect when
// [WithHTTPClient] is used.
func WithPoolSize(maxIdleConns, maxIdleConnsPerHost int) Option {
	return func(o *Options) {
		if maxIdleConns > 0 {
			o.maxIdleConns = maxIdleConns
		}
		if maxIdleConnsPerHost > 0 {
			o.maxIdleConnsPerHost = maxIdleConnsPerHost
		}
	}
}

// WithHTTPClient makes the client send through httpClient, sharing its
// connection pool with anyone else using it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

// WithTransport replaces the HTTP transport altogether.
func WithTransport(transport Transport) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

// WithAllowedMethods restricts the HTTP methods the client will send.
// Requests using any other method fail with [CodeMethodNotAllowed] before
// reaching the network. The default is GET and POST.
func WithAllowedMethods(methods ...string) Option {
	return func(o *Options) {
		allowed := make(map[string]struct{}, len(methods))
		for _, m := range methods {
			m = strings.ToUpper(strings.TrimSpace(m))
			if m != "" {
				allowed[m] = struct{}{}
			}
		}

		if len(allowed) > 0 {
			o.allowedMethods = allowed
		}
	}
}

func (o *Options) Validate() error {
	if o.endpoint == "" {
		return errors.New("endpoint must be set")
	}

	if !isSupportedAPIVersion(o.apiVersion) {
		return newError(CodeInvalidAPIVersion, fmt.Sprintf("api version %q is not one of %s", o.apiVersion, strings.Join(supportedAPIVersions, ", ")))
	}

	if o.timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	if o.retryCount < 0 {
		return errors.New("retryCount must be non-negative")
	}

	if o.retryCount > 100 {
		return errors.New("retryCount must not exceed 100")
	}

	if o.retryWaitTime < 100*time.Millisecond {
		return errors.New("retryWaitTime must be at least 100ms")
	}

	if o.retryWaitTime > time.Minute {
		return fmt.Errorf("retryWaitTime must not exceed %v", time.Minute)
	}

	if o.retryMaxWaitTime < 100*time.Millisecond {
		return errors.New("retryMaxWaitTime must be at least 100ms")
	}

	if o.retryMaxWaitTime > 5*time.Minute {
		return fmt.Errorf("retryMaxWaitTime must not exceed %v", 5*time.Minute)
	}

	if o.retryMaxWaitTime < o.retryWaitTime {
		return fmt.Errorf("retryMaxWaitTime (%v) must be greater than or equal to retryWaitTime (%v)", o.retryMaxWaitTime, o.retryWaitTime)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}

	if o.maxIdleConns <= 0 || o.maxIdleConnsPerHost <= 0 {
		return errors.New("pool sizes must be positive")
	}

	if len(o.allowedMethods) == 0 {
		return errors.New("at least one HTTP method must be allowed")
	}

	return nil
}

func isSupportedAPIVersion(version string) bool {
	for _, v := range supportedAPIVersions {
		if v == version {
			return true
		}
	}

	return false
}
