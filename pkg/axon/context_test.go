package axon

import (
	"context"
	"net/http"
)

// mockRequestContext is an in-memory RequestContext for unit tests
type mockRequestContext struct {
	params  map[string]string
	headers map[string]string
	values  map[string]any
	resp    *mockResponse
}

func newMockContext(params map[string]string) *mockRequestContext {
	return &mockRequestContext{
		params:  params,
		headers: map[string]string{},
		values:  map[string]any{},
		resp:    &mockResponse{headers: map[string]string{}, status: http.StatusOK},
	}
}

func (m *mockRequestContext) Method() string               { return http.MethodGet }
func (m *mockRequestContext) Path() string                 { return "/" }
func (m *mockRequestContext) RealIP() string               { return "127.0.0.1" }
func (m *mockRequestContext) Context() context.Context     { return context.Background() }
func (m *mockRequestContext) Param(key string) string      { return m.params[key] }
func (m *mockRequestContext) QueryParam(key string) string { return "" }
func (m *mockRequestContext) FormValue(name string) string { return "" }
func (m *mockRequestContext) Request() RequestInterface    { return m }
func (m *mockRequestContext) Response() ResponseInterface  { return m.resp }
func (m *mockRequestContext) Bind(i any) error             { return nil }
func (m *mockRequestContext) Get(key string) any           { return m.values[key] }
func (m *mockRequestContext) Set(key string, val any)      { m.values[key] = val }
func (m *mockRequestContext) Header(key string) string     { return m.headers[key] }
func (m *mockRequestContext) ContentType() string          { return m.headers["Content-Type"] }

// mockResponse records what a result wrote
type mockResponse struct {
	headers  map[string]string
	status   int
	body     any
	location string
	written  bool
}

func (r *mockResponse) Status() int                 { return r.status }
func (r *mockResponse) Header(key string) string    { return r.headers[key] }
func (r *mockResponse) SetHeader(key, value string) { r.headers[key] = value }

func (r *mockResponse) JSON(code int, i any) error {
	r.status, r.body, r.written = code, i, true
	r.headers["Content-Type"] = "application/json"
	return nil
}

func (r *mockResponse) String(code int, s string) error {
	r.status, r.body, r.written = code, s, true
	return nil
}

func (r *mockResponse) HTML(code int, html string) error {
	r.status, r.body, r.written = code, html, true
	r.headers["Content-Type"] = "text/html; charset=utf-8"
	return nil
}

func (r *mockResponse) Redirect(code int, url string) error {
	r.status, r.location, r.written = code, url, true
	return nil
}

func (r *mockResponse) NoContent(code int) error {
	r.status, r.written = code, true
	return nil
}

func (r *mockResponse) Written() bool { return r.written }
