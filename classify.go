package wulai

import (
	"bytes"
	"net/http"

	"github.com/go-json-experiment/json"
)

// classifyResponse maps a raw response to either a payload or an error,
// never both. The status table is part of the platform contract:
//
//	200-299  payload (body decoded as a JSON object)
//	400      invalid params, server message if present
//	401      invalid credential
//	405      method not allowed
//	other    unknown server error carrying the status code, including
//	         redirects the transport did not follow
func classifyResponse(resp *RawResponse) (Payload, *Error) {
	status := resp.StatusCode

	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return decodePayload(resp)
	case status == http.StatusBadRequest:
		e := newError(CodeInvalidParams, serverMessage(resp.Body))
		e.StatusCode = status
		return nil, e
	case status == http.StatusUnauthorized:
		e := newError(CodeInvalidCredential, "")
		e.StatusCode = status
		return nil, e
	case status == http.StatusMethodNotAllowed:
		e := newError(CodeMethodNotAllowed, "")
		e.StatusCode = status
		return nil, e
	default:
		msg := serverMessage(resp.Body)
		if msg == "" {
			msg = string(bytes.TrimSpace(resp.Body))
		}
		if msg == "" {
			msg = "(empty error body)"
		}
		e := newError(CodeUnknownServerError, msg)
		e.StatusCode = status
		return nil, e
	}
}

func decodePayload(resp *RawResponse) (Payload, *Error) {
	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return Payload{}, nil
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload, decodeOptions); err != nil {
		e := wrapError(CodeResponseDecode, err, "response body is not a JSON object")
		e.StatusCode = resp.StatusCode
		return nil, e
	}

	return payload, nil
}

// serverMessage extracts the "message" field of a JSON error body.
func serverMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &parsed, decodeOptions); err != nil {
		return ""
	}

	return parsed.Message
}
