package adapters

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/toyz/usermvc/pkg/axon"
)

// FiberAdapter wraps a Fiber app to implement axon.WebServerInterface
type FiberAdapter struct {
	app *fiber.App
}

// NewFiberAdapter creates a new Fiber adapter instance
func NewFiberAdapter() *FiberAdapter {
	app := fiber.New(fiber.Config{
		// Bound request values outlive the handler once they reach the store
		Immutable:             true,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
			}
			code, body := axon.ErrorBody(err)
			return c.Status(code).JSON(body)
		},
	})

	return &FiberAdapter{app: app}
}

// NewDefaultFiberAdapter creates a new Fiber adapter with panic recovery
func NewDefaultFiberAdapter() *FiberAdapter {
	adapter := NewFiberAdapter()
	adapter.app.Use(recover.New())
	return adapter
}

// convertAxonPathToFiber converts AxonPath to Fiber path format
func convertAxonPathToFiber(path axon.AxonPath) string {
	fiberPath := ""
	for _, part := range path.Parts() {
		switch part.Type {
		case axon.ParameterPart:
			fiberPath += ":" + part.Value
		case axon.WildcardPart:
			fiberPath += "*"
		default:
			fiberPath += part.Value
		}
	}
	return fiberPath
}

// RegisterRoute registers a route with the Fiber app. Fiber matches routes in
// registration order, so static paths must be registered before parameterised ones.
func (fa *FiberAdapter) RegisterRoute(method string, path axon.AxonPath, handler axon.HandlerFunc, middlewares ...axon.MiddlewareFunc) {
	fa.app.Add(strings.ToUpper(method), convertAxonPathToFiber(path), fiberHandlers(handler, middlewares)...)
}

// RegisterGroup creates a new route group with the given prefix
func (fa *FiberAdapter) RegisterGroup(prefix string) axon.RouteGroup {
	return &FiberRouteGroup{group: fa.app.Group(prefix)}
}

// Use adds middleware to the Fiber app. Like routes, it only applies to routes
// registered after it.
func (fa *FiberAdapter) Use(middleware axon.MiddlewareFunc) {
	fa.app.Use(convertFiberMiddleware(middleware))
}

// Start starts the Fiber server
func (fa *FiberAdapter) Start(addr string) error {
	return fa.app.Listen(addr)
}

// Stop stops the Fiber server
func (fa *FiberAdapter) Stop(ctx context.Context) error {
	return fa.app.ShutdownWithContext(ctx)
}

// Name returns the adapter name
func (fa *FiberAdapter) Name() string {
	return "Fiber"
}

// GetApp returns the underlying Fiber app
func (fa *FiberAdapter) GetApp() *fiber.App {
	return fa.app
}

// FiberRouteGroup wraps a Fiber route group to implement axon.RouteGroup
type FiberRouteGroup struct {
	group fiber.Router
}

// RegisterRoute registers a route with this group
func (frg *FiberRouteGroup) RegisterRoute(method string, path axon.AxonPath, handler axon.HandlerFunc, middlewares ...axon.MiddlewareFunc) {
	frg.group.Add(strings.ToUpper(method), convertAxonPathToFiber(path), fiberHandlers(handler, middlewares)...)
}

// Use adds middleware to this route group
func (frg *FiberRouteGroup) Use(middleware axon.MiddlewareFunc) {
	frg.group.Use(convertFiberMiddleware(middleware))
}

// Group creates a sub-group with the given prefix
func (frg *FiberRouteGroup) Group(prefix string) axon.RouteGroup {
	return &FiberRouteGroup{group: frg.group.Group(prefix)}
}

func fiberHandlers(handler axon.HandlerFunc, middlewares []axon.MiddlewareFunc) []fiber.Handler {
	handlers := make([]fiber.Handler, 0, len(middlewares)+1)
	for _, mw := range middlewares {
		handlers = append(handlers, convertFiberMiddleware(mw))
	}
	return append(handlers, convertFiberHandler(handler))
}

// convertFiberHandler converts an Axon handler to a Fiber handler. Errors are
// written here rather than in the app ErrorHandler so that wrapping middleware
// observes the final status.
func convertFiberHandler(handler axon.HandlerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := handler(&FiberRequestContext{ctx: c}); err != nil {
			code, body := axon.ErrorBody(err)
			return c.Status(code).JSON(body)
		}
		return nil
	}
}

// convertFiberMiddleware converts an Axon middleware to a Fiber middleware
func convertFiberMiddleware(middleware axon.MiddlewareFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return middleware(func(ctx axon.RequestContext) error {
			return c.Next()
		})(&FiberRequestContext{ctx: c})
	}
}

// FiberRequestContext wraps fiber.Ctx to implement axon.RequestContext
type FiberRequestContext struct {
	ctx *fiber.Ctx
}

func (frc *FiberRequestContext) Method() string {
	return frc.ctx.Method()
}

func (frc *FiberRequestContext) Path() string {
	return frc.ctx.Path()
}

func (frc *FiberRequestContext) RealIP() string {
	return frc.ctx.IP()
}

func (frc *FiberRequestContext) Context() context.Context {
	return frc.ctx.UserContext()
}

func (frc *FiberRequestContext) Param(name string) string {
	return frc.ctx.Params(name)
}

func (frc *FiberRequestContext) QueryParam(key string) string {
	return frc.ctx.Query(key)
}

func (frc *FiberRequestContext) FormValue(name string) string {
	return frc.ctx.FormValue(name)
}

func (frc *FiberRequestContext) Request() axon.RequestInterface {
	return &FiberRequest{ctx: frc.ctx}
}

func (frc *FiberRequestContext) Response() axon.ResponseInterface {
	return &FiberResponse{ctx: frc.ctx}
}

func (frc *FiberRequestContext) Bind(obj any) error {
	return frc.ctx.BodyParser(obj)
}

func (frc *FiberRequestContext) Get(key string) any {
	return frc.ctx.Locals(key)
}

func (frc *FiberRequestContext) Set(key string, val any) {
	frc.ctx.Locals(key, val)
}

// FiberRequest wraps fiber request functionality
type FiberRequest struct {
	ctx *fiber.Ctx
}

func (fr *FiberRequest) Header(key string) string {
	return fr.ctx.Get(key)
}

func (fr *FiberRequest) ContentType() string {
	return fr.ctx.Get(fiber.HeaderContentType)
}

// FiberResponse wraps fiber response functionality
type FiberResponse struct {
	ctx *fiber.Ctx
}

func (fr *FiberResponse) Status() int {
	return fr.ctx.Response().StatusCode()
}

func (fr *FiberResponse) Header(key string) string {
	return string(fr.ctx.Response().Header.Peek(key))
}

func (fr *FiberResponse) SetHeader(key, value string) {
	fr.ctx.Set(key, value)
}

func (fr *FiberResponse) JSON(code int, i any) error {
	return fr.ctx.Status(code).JSON(i)
}

func (fr *FiberResponse) String(code int, s string) error {
	return fr.ctx.Status(code).SendString(s)
}

func (fr *FiberResponse) HTML(code int, html string) error {
	fr.ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return fr.ctx.Status(code).SendString(html)
}

func (fr *FiberResponse) Redirect(code int, url string) error {
	return fr.ctx.Redirect(url, code)
}

func (fr *FiberResponse) NoContent(code int) error {
	return fr.ctx.SendStatus(code)
}

// Written reports whether a body or a redirect has been produced
func (fr *FiberResponse) Written() bool {
	resp := fr.ctx.Response()
	return len(resp.Body()) > 0 || resp.StatusCode() != http.StatusOK
}
