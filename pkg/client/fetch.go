package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/Sternrassler/ptcg-client/pkg/pagination"
)

// fetchEnvelope issues exactly one GET and decodes the body as an Envelope.
// Transport and decode failures come back as *APIError; API-reported
// failures are left in the envelope for the caller to resolve.
func fetchEnvelope[T any](ctx context.Context, c *Client, path string, params url.Values) (*Envelope[T], error) {
	resp, err := c.Get(ctx, path, params)
	if err != nil {
		return nil, c.record(path, &APIError{
			Kind:    KindRequestError,
			Message: "GET " + path,
			Err:     err,
		})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.record(path, &APIError{
			Kind:    KindRequestError,
			Message: "read response body",
			Err:     err,
		})
	}

	var env Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, c.record(path, &APIError{
			Kind:    KindDecodeFailed,
			Message: fmt.Sprintf("decode %s (status %d)", path, resp.StatusCode),
			Err:     err,
		})
	}

	return &env, nil
}

// fetchOne fetches path and resolves the envelope into its payload.
func fetchOne[T any](ctx context.Context, c *Client, path string, params url.Values) (T, error) {
	env, err := fetchEnvelope[T](ctx, c, path, params)
	if err != nil {
		var zero T
		return zero, err
	}

	data, err := env.Resolve()
	if err != nil {
		return data, c.record(path, err)
	}
	return data, nil
}

// fetchPage fetches one page of a collection, keeping the total count.
func fetchPage[T any](ctx context.Context, c *Client, path string, params url.Values) (pagination.Page[T], error) {
	env, err := fetchEnvelope[[]T](ctx, c, path, params)
	if err != nil {
		return pagination.Page[T]{}, err
	}

	items, err := env.Resolve()
	if err != nil {
		return pagination.Page[T]{}, c.record(path, err)
	}

	page := pagination.Page[T]{Items: items}
	if total, ok := env.TotalCount(); ok {
		page.TotalCount = &total
	}
	return page, nil
}

// fetchAll drives the paginator over path, sending only the page number.
func fetchAll[T any](ctx context.Context, c *Client, path string, policy pagination.Policy) ([]T, error) {
	fetcher := pagination.PageFetcherFunc[T](func(ctx context.Context, page int) (pagination.Page[T], error) {
		return fetchPage[T](ctx, c, path, SearchParams{Page: page}.Values())
	})

	return pagination.New[T](fetcher, policy, pagination.Config{
		Resource: path,
		Logger:   &c.logger,
	}).FetchAll(ctx)
}

// record logs and counts a failed call, returning err unchanged.
func (c *Client) record(path string, err error) error {
	kind := KindOf(err)
	errorsTotal.WithLabelValues(string(kind)).Inc()

	event := c.logger.Warn()
	if kind == KindRequestError || kind == KindDecodeFailed {
		event = c.logger.Error()
	}
	event.Err(err).
		Str("endpoint", endpointLabel(path)).
		Str("error_kind", string(kind)).
		Msg("API call failed")

	return err
}
