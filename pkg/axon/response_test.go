package axon

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	err error
}

func (r stubRenderer) Render(name string, model any) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return "<p>" + name + "</p>", nil
}

func testRoutes() *InMemoryRouteRegistry {
	routes := NewInMemoryRouteRegistry()
	routes.RegisterRoute(RouteInfo{Method: "GET", Path: "/users", Name: "Index"})
	return routes
}

func TestWriteResult_View(t *testing.T) {
	c := newMockContext(nil)

	require.NoError(t, WriteResult(c, View("users/index", nil), stubRenderer{}, testRoutes()))
	assert.Equal(t, http.StatusOK, c.resp.status)
	assert.Equal(t, "<p>users/index</p>", c.resp.body)
}

func TestWriteResult_ViewWithStatus(t *testing.T) {
	c := newMockContext(nil)

	result := ViewWithStatus(http.StatusUnprocessableEntity, "users/create", nil)
	require.NoError(t, WriteResult(c, result, stubRenderer{}, testRoutes()))
	assert.Equal(t, http.StatusUnprocessableEntity, c.resp.status)
}

func TestWriteResult_ViewAsJSON(t *testing.T) {
	model := map[string]string{"name": "John"}

	t.Run("accept header", func(t *testing.T) {
		c := newMockContext(nil)
		c.headers["Accept"] = "application/json"

		require.NoError(t, WriteResult(c, View("users/details", model), stubRenderer{}, testRoutes()))
		assert.Equal(t, "application/json", c.resp.headers["Content-Type"])
		assert.Equal(t, model, c.resp.body)
	})

	t.Run("no renderer", func(t *testing.T) {
		c := newMockContext(nil)

		require.NoError(t, WriteResult(c, View("users/details", model), nil, testRoutes()))
		assert.Equal(t, model, c.resp.body)
	})
}

func TestWriteResult_RenderError(t *testing.T) {
	c := newMockContext(nil)

	err := WriteResult(c, View("users/index", nil), stubRenderer{err: errors.New("boom")}, testRoutes())
	assert.ErrorContains(t, err, "boom")
	assert.False(t, c.resp.Written())
}

func TestWriteResult_Redirect(t *testing.T) {
	c := newMockContext(nil)

	require.NoError(t, WriteResult(c, RedirectToAction("Index"), stubRenderer{}, testRoutes()))
	assert.Equal(t, http.StatusSeeOther, c.resp.status)
	assert.Equal(t, "/users", c.resp.location)

	err := WriteResult(newMockContext(nil), RedirectToAction("Missing"), stubRenderer{}, testRoutes())
	assert.Error(t, err)
}

func TestWriteResult_NotFound(t *testing.T) {
	c := newMockContext(nil)

	err := WriteResult(c, NotFound(), stubRenderer{}, testRoutes())
	code, _ := ErrorStatus(err)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, c.resp.Written())
}

func TestWriteResult_JSON(t *testing.T) {
	c := newMockContext(nil)

	require.NoError(t, WriteResult(c, JSON(http.StatusAccepted, map[string]int{"n": 1}), nil, testRoutes()))
	assert.Equal(t, http.StatusAccepted, c.resp.status)
	assert.Equal(t, map[string]int{"n": 1}, c.resp.body)
}

func TestWriteResult_NilResult(t *testing.T) {
	err := WriteResult(newMockContext(nil), nil, nil, testRoutes())
	code, _ := ErrorStatus(err)
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestWantsJSON(t *testing.T) {
	cases := map[string]bool{
		"":                                  false,
		"application/json":                  true,
		"application/json, text/plain":      true,
		"text/html,application/xhtml+xml":   false,
		"text/html, application/json;q=0.9": false,
	}
	for accept, want := range cases {
		c := newMockContext(nil)
		c.headers["Accept"] = accept
		assert.Equal(t, want, WantsJSON(c), accept)
	}
}

func TestErrorBody(t *testing.T) {
	code, body := ErrorBody(ErrNotFound("user not found"))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, map[string]any{"error": "user not found"}, body)

	code, body = ErrorBody(NewHttpErrorWithDetails(http.StatusUnprocessableEntity, "invalid", []string{"name"}))
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, []string{"name"}, body["details"])

	code, body = ErrorBody(errors.New("kaput"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "kaput", body["error"])
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) MiddlewareFunc {
		return func(next HandlerFunc) HandlerFunc {
			return func(c RequestContext) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	h := Chain(func(RequestContext) error {
		order = append(order, "handler")
		return nil
	}, mw("outer"), mw("inner"))

	require.NoError(t, h(newMockContext(nil)))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
