package wulai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-resty/resty/v2"
)

// TransportRequest is a single HTTP call as handed to a [Transport].
type TransportRequest struct {
	Method  string
	URL     string
	Params  any
	Headers map[string]string
	Timeout time.Duration
}

// RawResponse is the unclassified result of a [Transport] call.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

//go:generate mockgen -source=transport.go -destination=mock_transport_test.go -package=wulai

// Transport executes one HTTP call. Implementations must return an [*Error]
// with code [CodeServerUnreachable] for timeouts and connection failures and
// [CodeHTTPError] for any other I/O failure. Any status code is a successful
// call at this layer.
type Transport interface {
	Send(ctx context.Context, req *TransportRequest) (*RawResponse, error)
}

type restyTransport struct {
	client *resty.Client
}

var _ Transport = (*restyTransport)(nil)

// newRestyTransport builds the default transport. A nil httpClient gets a
// private connection pool of the given size; a non-nil one is used as is so
// that callers can share a pool between clients.
func newRestyTransport(httpClient *http.Client, logger RequestLogger, maxIdleConns, maxIdleConnsPerHost int) *restyTransport {
	var client *resty.Client
	if httpClient != nil {
		client = resty.NewWithClient(httpClient)
	} else {
		client = resty.New().SetTransport(&http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          maxIdleConns,
			MaxIdleConnsPerHost:   maxIdleConnsPerHost,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		})
	}

	// Retries are owned by the dispatcher.
	client.SetRetryCount(0).
		SetLogger(logger).
		SetJSONMarshaler(func(v any) ([]byte, error) { return json.Marshal(v) }).
		SetJSONUnmarshaler(func(data []byte, v any) error { return json.Unmarshal(data, v) })

	return &restyTransport{client: client}
}

func (t *restyTransport) Send(ctx context.Context, req *TransportRequest) (*RawResponse, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	r := t.client.R().
		SetContext(ctx).
		SetHeaders(req.Headers)

	switch req.Method {
	case http.MethodGet:
		query, err := queryParams(req.Params)
		if err != nil {
			return nil, err
		}
		r.SetQueryParams(query)
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		r.SetBody(req.Params)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, transportError(req, err)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}

// queryParams flattens params into query values. Strings are sent verbatim,
// everything else as its JSON encoding.
func queryParams(params any) (map[string]string, error) {
	m, err := Export(params)
	if err != nil {
		return nil, wrapError(CodeInvalidParams, err, "failed to encode query params")
	}

	query := make(map[string]string, len(m))
	for k, v := range m {
		switch x := v.(type) {
		case nil:
		case string:
			query[k] = x
		default:
			b, err := json.Marshal(x)
			if err != nil {
				return nil, wrapError(CodeInvalidParams, err, "failed to encode query param %q", k)
			}
			query[k] = string(b)
		}
	}

	return query, nil
}

func transportError(req *TransportRequest, err error) *Error {
	if isUnreachable(err) {
		return wrapError(CodeServerUnreachable, err, "%s %s failed", req.Method, req.URL)
	}

	return wrapError(CodeHTTPError, err, "%s %s failed", req.Method, req.URL)
}

// isUnreachable reports whether err means the server could not be reached in
// time: deadlines, dial and DNS failures, refused or reset connections.
func isUnreachable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET)
}

func (r *TransportRequest) String() string {
	return fmt.Sprintf("%s %s", r.Method, r.URL)
}
