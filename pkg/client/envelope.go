package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedEnvelope is returned when a body is neither a data nor an error envelope.
var ErrMalformedEnvelope = errors.New("response is neither a data nor an error envelope")

// Envelope is one decoded API response. Exactly one of Success and Failure
// is set after a successful UnmarshalJSON.
type Envelope[T any] struct {
	Success *Success[T]
	Failure *Failure
}

// Success is the {"data": ..., "totalCount": n} shape.
type Success[T any] struct {
	Data T `json:"data"`

	// TotalCount is only sent by collection endpoints, and not always.
	TotalCount *int `json:"totalCount,omitempty"`
}

// Failure is the {"error": {...}} shape.
type Failure struct {
	Error *FailureDetail `json:"error"`
}

// FailureDetail carries the API's own code and message.
type FailureDetail struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// UnmarshalJSON decodes the success shape when a non-null "data" member is
// present and the failure shape when a non-null "error" member is. Member
// names match exactly.
func (e *Envelope[T]) UnmarshalJSON(b []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(b, &members); err != nil {
		return err
	}

	if raw, ok := members["data"]; ok {
		if isNull(raw) {
			return fmt.Errorf("%w: data is null", ErrMalformedEnvelope)
		}
		var data T
		if err := json.Unmarshal(raw, &data); err != nil {
			return err
		}
		success := &Success[T]{Data: data}
		if raw, ok := members["totalCount"]; ok && !isNull(raw) {
			var total int
			if err := json.Unmarshal(raw, &total); err != nil {
				return fmt.Errorf("totalCount: %w", err)
			}
			success.TotalCount = &total
		}
		*e = Envelope[T]{Success: success}
		return nil
	}

	raw, ok := members["error"]
	if !ok || isNull(raw) {
		return ErrMalformedEnvelope
	}
	var detail FailureDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return err
	}
	*e = Envelope[T]{Failure: &Failure{Error: &detail}}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// MarshalJSON encodes whichever variant is set.
func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	switch {
	case e.Success != nil:
		return json.Marshal(e.Success)
	case e.Failure != nil:
		return json.Marshal(e.Failure)
	default:
		return nil, ErrMalformedEnvelope
	}
}

// TotalCount returns the reported total count, if the server sent one.
func (e *Envelope[T]) TotalCount() (int, bool) {
	if e.Success == nil || e.Success.TotalCount == nil {
		return 0, false
	}
	return *e.Success.TotalCount, true
}

// Resolve returns the payload of a success envelope, or the classified
// *APIError of a failure envelope.
func (e *Envelope[T]) Resolve() (T, error) {
	var zero T
	switch {
	case e.Success != nil:
		return e.Success.Data, nil
	case e.Failure != nil && e.Failure.Error != nil:
		detail := e.Failure.Error
		return zero, &APIError{
			Kind:    ClassifyCode(detail.Code),
			Code:    detail.Code,
			Message: detail.Message,
		}
	default:
		return zero, &APIError{Kind: KindDecodeFailed, Message: "empty envelope", Err: ErrMalformedEnvelope}
	}
}

// NewSuccess builds a success envelope; mostly useful in tests and mocks.
func NewSuccess[T any](data T, totalCount *int) Envelope[T] {
	return Envelope[T]{Success: &Success[T]{Data: data, TotalCount: totalCount}}
}

// NewFailure builds a failure envelope.
func NewFailure[T any](code int, message string) Envelope[T] {
	return Envelope[T]{Failure: &Failure{Error: &FailureDetail{Message: message, Code: code}}}
}
