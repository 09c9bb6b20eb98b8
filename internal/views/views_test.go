package views

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/usermvc/internal/models"
	"github.com/toyz/usermvc/pkg/axon"
)

func testRoutes() *axon.InMemoryRouteRegistry {
	routes := axon.NewInMemoryRouteRegistry()
	for _, route := range []axon.RouteInfo{
		{Method: "GET", Path: "/users", Name: "Index"},
		{Method: "GET", Path: "/users/create", Name: "Create"},
		{Method: "POST", Path: "/users/create", Name: "CreatePost"},
		{Method: "GET", Path: "/users/{id:int}", Name: "Details"},
		{Method: "GET", Path: "/users/{id:int}/edit", Name: "Edit"},
		{Method: "POST", Path: "/users/{id:int}/edit", Name: "EditPost"},
		{Method: "GET", Path: "/users/{id:int}/delete", Name: "Delete"},
		{Method: "POST", Path: "/users/{id:int}/delete", Name: "DeletePost"},
	} {
		routes.RegisterRoute(route)
	}
	return routes
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	r.UseRoutes(testRoutes())
	return r
}

func TestRenderer_Views(t *testing.T) {
	r := newTestRenderer(t)
	assert.ElementsMatch(t, []string{
		"users/index", "users/details", "users/create", "users/edit", "users/delete",
	}, r.Views())
}

func TestRenderer_Index(t *testing.T) {
	r := newTestRenderer(t)

	html, err := r.Render("users/index", []models.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com"},
		{ID: 2, Name: "<script>", Email: "x@example.com"},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Users - Users</title>")
	assert.Contains(t, html, "John Doe")
	assert.Contains(t, html, `href="/users/1/edit"`)
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
}

func TestRenderer_IndexEmpty(t *testing.T) {
	html, err := newTestRenderer(t).Render("users/index", []models.User{})
	require.NoError(t, err)
	assert.Contains(t, html, "No users.")
}

func TestRenderer_Details(t *testing.T) {
	html, err := newTestRenderer(t).Render("users/details", models.User{ID: 7, Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)
	assert.Contains(t, html, "<dd>7</dd>")
	assert.Contains(t, html, "<dd>jane@example.com</dd>")
}

func TestRenderer_CreateWithErrors(t *testing.T) {
	form := models.NewUserForm(
		models.User{ID: 3, Name: "Bob", Email: "bob"},
		map[string]string{"email": "Must be a valid email address"},
	)

	html, err := newTestRenderer(t).Render("users/create", form)
	require.NoError(t, err)
	assert.Contains(t, html, `name="id" type="number" value="3"`)
	assert.Contains(t, html, `value="Bob"`)
	assert.Contains(t, html, `<span class="field-error">Must be a valid email address</span>`)
	assert.Equal(t, 1, strings.Count(html, "field-error"))
}

func TestRenderer_EditAndDelete(t *testing.T) {
	r := newTestRenderer(t)
	user := models.User{ID: 4, Name: "Eve", Email: "eve@example.com"}

	html, err := r.Render("users/edit", models.NewUserForm(user, nil))
	require.NoError(t, err)
	assert.Contains(t, html, `action="/users/4/edit"`)
	assert.NotContains(t, html, "field-error")

	html, err = r.Render("users/delete", user)
	require.NoError(t, err)
	assert.Contains(t, html, `action="/users/4/delete"`)
	assert.Contains(t, html, "Eve (eve@example.com)")
}

func TestRenderer_LinksFollowRoutes(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	routes := axon.NewInMemoryRouteRegistry()
	routes.RegisterRoute(axon.RouteInfo{Method: "GET", Path: "/people", Name: "Index"})
	routes.RegisterRoute(axon.RouteInfo{Method: "POST", Path: "/people/{id:int}/remove", Name: "DeletePost"})
	r.UseRoutes(routes)

	html, err := r.Render("users/delete", models.User{ID: 5, Name: "Sam", Email: "sam@example.com"})
	require.NoError(t, err)
	assert.Contains(t, html, `action="/people/5/remove"`)
	assert.Contains(t, html, `href="/people"`)
}

func TestRenderer_URLErrors(t *testing.T) {
	user := models.User{ID: 1, Name: "John", Email: "john@example.com"}

	r, err := NewRenderer()
	require.NoError(t, err)
	_, err = r.Render("users/details", user)
	assert.ErrorContains(t, err, "no routes")

	r.UseRoutes(axon.NewInMemoryRouteRegistry())
	_, err = r.Render("users/details", user)
	assert.ErrorContains(t, err, `no route named "Edit"`)

	r = newTestRenderer(t)
	_, err = r.url("Details", "id")
	assert.ErrorContains(t, err, "odd number")
	_, err = r.url("Details", 1, 2)
	assert.ErrorContains(t, err, "not a string")

	link, err := r.url("Details", "id", 9)
	require.NoError(t, err)
	assert.Equal(t, "/users/9", link)
}

func TestRenderer_UnknownView(t *testing.T) {
	_, err := newTestRenderer(t).Render("users/missing", nil)
	assert.ErrorContains(t, err, "unknown view")
}

func TestRenderer_ParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/layout.html":            {Data: []byte(`{{define "layout"}}{{template "content" .}}{{end}}`)},
		"templates/users/form_fields.html": {Data: []byte(`{{define "form_fields"}}{{end}}`)},
		"templates/users/broken.html":      {Data: []byte(`{{define "content"}}{{.Name}{{end}}`)},
	}

	_, err := newRenderer(fsys)
	assert.ErrorContains(t, err, "parse templates/users/broken.html")
}
