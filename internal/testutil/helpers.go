package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// HTTPRequest is a helper for making test HTTP requests.
type HTTPRequest struct {
	Method  string
	Path    string
	Body    string
	Headers map[string]string
}

// Do executes the HTTP request and returns the response recorder.
func (r *HTTPRequest) Do(t *testing.T, handler http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if r.Body != "" {
		body = bytes.NewBufferString(r.Body)
	}
	req := httptest.NewRequest(r.Method, r.Path, body)
	if r.Body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
