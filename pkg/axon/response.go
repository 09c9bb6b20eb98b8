// Package axon provides public APIs for the Axon Framework
package axon

import (
	"fmt"
	"net/http"
	"strings"
)

// Result is the outcome of a controller action. The server executes it against
// the request: rendering a view, redirecting, or answering not found.
//
// Example usage:
//
//	func (c *UserController) Details(id int) axon.Result {
//	    user, ok := c.store.Find(id).Get()
//	    if !ok {
//	        return axon.NotFound()
//	    }
//	    return axon.View("users/details", user)
//	}
type Result interface {
	isResult()
}

// ViewResult asks the renderer to produce ViewName with Model as its view-model
type ViewResult struct {
	ViewName string
	Model    any
	// StatusCode defaults to 200 when zero
	StatusCode int
}

// RedirectToActionResult instructs the client to navigate to the named action's route
type RedirectToActionResult struct {
	ActionName  string
	RouteValues map[string]any
}

// NotFoundResult answers 404
type NotFoundResult struct{}

// JSONResult writes Body as JSON regardless of the request's Accept header
type JSONResult struct {
	StatusCode int
	Body       any
}

func (*ViewResult) isResult()             {}
func (*RedirectToActionResult) isResult() {}
func (*NotFoundResult) isResult()         {}
func (*JSONResult) isResult()             {}

// View creates a 200 ViewResult
func View(name string, model any) *ViewResult {
	return &ViewResult{ViewName: name, Model: model, StatusCode: http.StatusOK}
}

// ViewWithStatus creates a ViewResult with an explicit status code
func ViewWithStatus(code int, name string, model any) *ViewResult {
	return &ViewResult{ViewName: name, Model: model, StatusCode: code}
}

// RedirectToAction creates a redirect signal naming the next action
func RedirectToAction(action string) *RedirectToActionResult {
	return &RedirectToActionResult{ActionName: action}
}

// NotFound creates a NotFoundResult
func NotFound() *NotFoundResult {
	return &NotFoundResult{}
}

// JSON creates a JSONResult
func JSON(code int, body any) *JSONResult {
	return &JSONResult{StatusCode: code, Body: body}
}

// Renderer turns a view name and view-model into HTML
type Renderer interface {
	Render(name string, model any) (string, error)
}

// URLResolver maps an action name to a concrete URL path
type URLResolver interface {
	URL(name string, values map[string]any) (string, error)
}

// WantsJSON reports whether the request prefers a JSON representation
func WantsJSON(c RequestContext) bool {
	accept := c.Request().Header("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// WriteResult executes result against c
func WriteResult(c RequestContext, result Result, renderer Renderer, urls URLResolver) error {
	switch r := result.(type) {
	case *ViewResult:
		code := r.StatusCode
		if code == 0 {
			code = http.StatusOK
		}
		if renderer == nil || WantsJSON(c) {
			return c.Response().JSON(code, r.Model)
		}
		html, err := renderer.Render(r.ViewName, r.Model)
		if err != nil {
			return fmt.Errorf("render %s: %w", r.ViewName, err)
		}
		return c.Response().HTML(code, html)

	case *RedirectToActionResult:
		target, err := urls.URL(r.ActionName, r.RouteValues)
		if err != nil {
			return fmt.Errorf("redirect to %s: %w", r.ActionName, err)
		}
		return c.Response().Redirect(http.StatusSeeOther, target)

	case *NotFoundResult:
		return ErrNotFound(http.StatusText(http.StatusNotFound))

	case *JSONResult:
		return c.Response().JSON(r.StatusCode, r.Body)

	case nil:
		return ErrInternalServerError("action returned no result")

	default:
		return ErrInternalServerError(fmt.Sprintf("unsupported result %T", result))
	}
}
