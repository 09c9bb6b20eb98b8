// Package views renders the HTML pages of the user resource.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
)

//go:embed templates
var templateFS embed.FS

// shared partials parsed into every page
var partials = []string{"templates/layout.html", "templates/users/form_fields.html"}

// URLBuilder resolves a named route to a path
type URLBuilder interface {
	URL(name string, values map[string]any) (string, error)
}

// Renderer implements axon.Renderer over the embedded templates. Each page is
// parsed together with the layout and partials; the view name is the page path
// without the templates/ prefix and .html suffix, e.g. "users/index".
//
// Pages build links with {{url "Name" "key" value ...}}, resolved through the
// routes set by UseRoutes.
type Renderer struct {
	pages  map[string]*template.Template
	routes URLBuilder
}

// NewRenderer parses every embedded page
func NewRenderer() (*Renderer, error) {
	return newRenderer(templateFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	pages, err := fs.Glob(fsys, "templates/users/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range pages {
		if isPartial(page) {
			continue
		}
		files := append(append([]string{}, partials...), page)
		tmpl, err := template.New(path.Base(page)).Funcs(r.funcs()).ParseFS(fsys, files...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(page, "templates/"), path.Ext(page))
		r.pages[name] = tmpl
	}
	return r, nil
}

func isPartial(page string) bool {
	for _, p := range partials {
		if p == page {
			return true
		}
	}
	return false
}

// UseRoutes sets the routes that the url template func resolves against. It
// must be called before the first Render.
func (r *Renderer) UseRoutes(routes URLBuilder) {
	r.routes = routes
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{"url": r.url}
}

func (r *Renderer) url(name string, pairs ...any) (string, error) {
	if r.routes == nil {
		return "", fmt.Errorf("url %s: no routes", name)
	}
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("url %s: odd number of key/value arguments", name)
	}
	values := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return "", fmt.Errorf("url %s: key %v is not a string", name, pairs[i])
		}
		values[key] = pairs[i+1]
	}
	return r.routes.URL(name, values)
}

// Render executes the named page with model
func (r *Renderer) Render(name string, model any) (string, error) {
	tmpl, ok := r.pages[name]
	if !ok {
		return "", fmt.Errorf("unknown view %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", model); err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}
	return buf.String(), nil
}

// Views returns the names of the parsed pages
func (r *Renderer) Views() []string {
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	return names
}
