// Package testutil provides testing utilities for the Pokémon TCG client.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// RecordedRequest is what the mock saw for one request.
type RecordedRequest struct {
	Path   string
	Query  url.Values
	Header http.Header
}

// MockAPI is a configurable mock of the catalog API for testing.
// Handlers are keyed by URL path, e.g. "/cards" or "/cards/base1-4".
type MockAPI struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc
	requests []RecordedRequest
}

// NewMockAPI starts a new mock server.
func NewMockAPI() *MockAPI {
	mock := &MockAPI{
		handlers: make(map[string]http.HandlerFunc),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requests = append(mock.requests, RecordedRequest{
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
		})
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.Unlock()

		if exists {
			handler(w, r)
			return
		}

		WriteJSON(w, http.StatusNotFound, ErrorBody(404, "Not Found"))
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockAPI) URL() string {
	return m.server.URL
}

// Client returns an HTTP client wired to the mock server.
func (m *MockAPI) Client() *http.Client {
	return m.server.Client()
}

// Close shuts down the mock server.
func (m *MockAPI) Close() {
	m.server.Close()
}

// Reset clears the recorded requests.
func (m *MockAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
}

// SetHandler sets a custom handler for a specific path.
func (m *MockAPI) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a fixed response for a path.
func (m *MockAPI) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}

		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetJSON configures path to answer with status and v encoded as JSON.
func (m *MockAPI) SetJSON(path string, status int, v any) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, v)
	})
}

// SetError configures path to answer with an error envelope.
func (m *MockAPI) SetError(path string, code int, message string) {
	m.SetJSON(path, code, ErrorBody(code, message))
}

// Requests returns a copy of the recorded requests.
func (m *MockAPI) Requests() []RecordedRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// GetRequestCount returns the number of requests made to path.
func (m *MockAPI) GetRequestCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, r := range m.requests {
		if r.Path == path {
			n++
		}
	}
	return n
}

// LastRequest returns the most recent request, or false if none was made.
func (m *MockAPI) LastRequest() (RecordedRequest, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.requests) == 0 {
		return RecordedRequest{}, false
	}
	return m.requests[len(m.requests)-1], true
}

// WriteJSON writes v as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// DataBody builds a success envelope. totalCount < 0 omits the count.
func DataBody(data any, totalCount int) map[string]any {
	body := map[string]any{"data": data}
	if totalCount >= 0 {
		body["totalCount"] = totalCount
	}
	return body
}

// ErrorBody builds an error envelope.
func ErrorBody(code int, message string) map[string]any {
	return map[string]any{
		"error": map[string]any{
			"message": message,
			"code":    code,
		},
	}
}

// PagedHandler serves pages[i] for ?page=i+1 and an empty page past the end.
// totalCount < 0 omits the count. Pages listed in failOn answer with the
// given error envelope instead.
func PagedHandler[T any](pages [][]T, totalCount int, failOn map[int]int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if raw := r.URL.Query().Get("page"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				page = n
			}
		}

		if code, ok := failOn[page]; ok {
			WriteJSON(w, code, ErrorBody(code, "page "+strconv.Itoa(page)+" failed"))
			return
		}

		items := []T{}
		if page >= 1 && page <= len(pages) {
			items = pages[page-1]
		}
		WriteJSON(w, http.StatusOK, DataBody(items, totalCount))
	}
}

// Repeat returns n copies of v.
func Repeat[T any](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}
