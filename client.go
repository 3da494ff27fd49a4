package wulai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Client sends signed requests to the platform. It is safe for concurrent
// use; each call runs its attempts sequentially on the calling goroutine.
type Client struct {
	pubkey    string
	secret    string
	baseURL   string
	transport Transport
	logger    *clientLogger
	options   *Options
}

// New validates the options and builds a client for the given credentials.
// An unsupported API version fails with [CodeInvalidAPIVersion].
func New(pubkey, secret string, opts ...Option) (*Client, error) {
	options := newClientOptions()
	for _, o := range opts {
		o(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	logger := newClientLogger(options.requestLogger, options.debug)

	transport := options.transport
	if transport == nil {
		transport = newRestyTransport(options.httpClient, logger, options.maxIdleConns, options.maxIdleConnsPerHost)
	}

	return &Client{
		pubkey:    pubkey,
		secret:    secret,
		baseURL:   options.endpoint + "/" + options.apiVersion,
		transport: transport,
		logger:    logger,
		options:   options,
	}, nil
}

// BaseURL returns the versioned endpoint requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Dispatch signs and sends req, retrying failed attempts while the request's
// retry budget lasts and the retry policy agrees. It returns the decoded
// payload of the first successful attempt, or the error of the last one.
// Every error returned is an [*Error].
func (c *Client) Dispatch(ctx context.Context, req *Request) (Payload, error) {
	if c == nil {
		return nil, newError(CodeInvalidRequest, "wulai client is nil")
	}

	if req == nil || req.path == "" {
		return nil, newError(CodeInvalidRequest, "")
	}

	method := req.Method()
	if _, ok := c.options.allowedMethods[method]; !ok {
		return nil, newError(CodeMethodNotAllowed, fmt.Sprintf("method %s is not allowed", method))
	}

	timeout := req.opts.Timeout
	if timeout == 0 {
		timeout = c.options.timeout
	}

	url := c.baseURL + req.path
	retries := req.opts.RetryCount
	wait := c.options.retryWaitTime

	var lastErr *Error

	for attempt := 1; ; attempt++ {
		treq := &TransportRequest{
			Method:  method,
			URL:     url,
			Params:  req.params,
			Headers: c.headers(req),
			Timeout: timeout,
		}

		c.logger.Debugf("wulai: %s attempt %d", treq, attempt)

		payload, err := c.attempt(ctx, treq)
		if err == nil {
			return payload, nil
		}

		lastErr = err
		retries--

		if retries < 0 || ctx.Err() != nil || !c.options.retryPolicy(err) {
			break
		}

		c.logger.Warnf("wulai: %s attempt %d failed, %d retries left: %v", treq, attempt, retries, err)

		if !sleepContext(ctx, wait) {
			break
		}

		wait = min(wait*2, c.options.retryMaxWaitTime)
	}

	c.logger.Errorf("wulai: %s %s failed: %v", method, url, lastErr)

	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, treq *TransportRequest) (Payload, *Error) {
	raw, err := c.transport.Send(ctx, treq)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, e
		}

		return nil, transportError(treq, err)
	}

	if raw == nil {
		return nil, wrapError(CodeHTTPError, nil, "%s returned no response", treq)
	}

	c.logger.Debugf("wulai: %s returned %d", treq, raw.StatusCode)

	return classifyResponse(raw)
}

// headers merges the client headers, the request headers and a fresh
// signature, in increasing order of precedence. Keys are canonicalized so
// that a later source always replaces an earlier one.
func (c *Client) headers(req *Request) map[string]string {
	headers := make(map[string]string, len(c.options.requestHeaders)+len(req.headers)+4)
	for _, src := range []map[string]string{c.options.requestHeaders, req.headers, Sign(c.pubkey, c.secret).Headers()} {
		for k, v := range src {
			headers[http.CanonicalHeaderKey(k)] = v
		}
	}

	return headers
}

// call validates params, dispatches them to path with the client defaults
// and decodes the payload into out when out is not nil.
func (c *Client) call(ctx context.Context, path string, params any, out any) (Payload, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(CodeInvalidParams, err, "invalid params for %s", path)
	}

	req, err := NewRequest(path, params, CallOptions{
		Method:     http.MethodPost,
		Timeout:    c.options.timeout,
		RetryCount: c.options.retryCount,
	})
	if err != nil {
		return nil, err
	}

	payload, err := c.Dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	if out != nil {
		if err := DecodeInto(payload, out); err != nil {
			return nil, err
		}
	}

	return payload, nil
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
