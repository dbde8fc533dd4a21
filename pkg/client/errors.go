package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed request.
type ErrorKind string

const (
	// KindBadRequest is an unacceptable request, often an invalid query.
	// Unknown API codes fall back to this kind.
	KindBadRequest ErrorKind = "bad_request"

	// KindRequestFailed means the parameters were valid but the request failed (402).
	KindRequestFailed ErrorKind = "request_failed"

	// KindForbidden means the caller may not perform the request (403).
	KindForbidden ErrorKind = "forbidden"

	// KindNotFound means the resource does not exist (404).
	KindNotFound ErrorKind = "not_found"

	// KindTooManyRequests means the rate limit was exceeded (429).
	KindTooManyRequests ErrorKind = "too_many_requests"

	// KindServerError covers API codes 500 through 504.
	KindServerError ErrorKind = "server_error"

	// KindDecodeFailed means the body could not be parsed as an envelope.
	KindDecodeFailed ErrorKind = "decode_failed"

	// KindRequestError is a transport failure before any body was available.
	KindRequestError ErrorKind = "request_error"
)

// Sentinels matched by errors.Is against an *APIError of the same kind.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrRequestFailed   = errors.New("request failed")
	ErrForbidden       = errors.New("request forbidden")
	ErrNotFound        = errors.New("not found")
	ErrTooManyRequests = errors.New("too many requests")
	ErrServerError     = errors.New("server error")
	ErrDecodeFailed    = errors.New("failed to decode the response body")
	ErrRequestError    = errors.New("an error occurred while attempting to make a request")
)

var kindSentinels = map[ErrorKind]error{
	KindBadRequest:      ErrBadRequest,
	KindRequestFailed:   ErrRequestFailed,
	KindForbidden:       ErrForbidden,
	KindNotFound:        ErrNotFound,
	KindTooManyRequests: ErrTooManyRequests,
	KindServerError:     ErrServerError,
	KindDecodeFailed:    ErrDecodeFailed,
	KindRequestError:    ErrRequestError,
}

// APIError is returned for every failed request.
//
// Code and Message are the values reported by the API. They are empty for
// KindDecodeFailed and KindRequestError, where Err holds the cause instead.
type APIError struct {
	Kind    ErrorKind
	Code    int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code == 0 {
		if e.Err != nil {
			return fmt.Sprintf("pokemontcg %s: %s: %v", e.Kind, e.Message, e.Err)
		}
		return fmt.Sprintf("pokemontcg %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("pokemontcg %s (code %d): %s", e.Kind, e.Code, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *APIError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// ClassifyCode maps an API error code to its kind.
func ClassifyCode(code int) ErrorKind {
	switch {
	case code == 400:
		return KindBadRequest
	case code == 402:
		return KindRequestFailed
	case code == 403:
		return KindForbidden
	case code == 404:
		return KindNotFound
	case code == 429:
		return KindTooManyRequests
	case code >= 500 && code <= 504:
		return KindServerError
	default:
		return KindBadRequest
	}
}

// KindOf returns the kind of err, or "" when err carries no *APIError.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}
