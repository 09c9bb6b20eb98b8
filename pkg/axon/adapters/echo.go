package adapters

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/toyz/usermvc/pkg/axon"
)

// EchoAdapter implements axon.WebServerInterface for Echo v4
type EchoAdapter struct {
	engine *echo.Echo
}

// NewEchoAdapter creates a new Echo adapter
func NewEchoAdapter(e *echo.Echo) *EchoAdapter {
	return &EchoAdapter{engine: e}
}

// NewDefaultEchoAdapter creates a new Echo adapter with panic recovery and no banner
func NewDefaultEchoAdapter() *EchoAdapter {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	return &EchoAdapter{engine: e}
}

// convertAxonPathToEcho converts AxonPath to Echo path format
func convertAxonPathToEcho(path axon.AxonPath) string {
	echoPath := ""
	for _, part := range path.Parts() {
		switch part.Type {
		case axon.ParameterPart:
			echoPath += ":" + part.Value
		case axon.WildcardPart:
			echoPath += "*"
		default:
			echoPath += part.Value
		}
	}
	return echoPath
}

// RegisterRoute registers a route with the Echo server
func (ea *EchoAdapter) RegisterRoute(method string, path axon.AxonPath, handler axon.HandlerFunc, middlewares ...axon.MiddlewareFunc) {
	echoMiddlewares := make([]echo.MiddlewareFunc, len(middlewares))
	for i, mw := range middlewares {
		echoMiddlewares[i] = convertEchoMiddleware(mw)
	}
	ea.engine.Add(method, convertAxonPathToEcho(path), convertEchoHandler(handler), echoMiddlewares...)
}

// RegisterGroup creates a new route group
func (ea *EchoAdapter) RegisterGroup(prefix string) axon.RouteGroup {
	return &EchoGroupAdapter{group: ea.engine.Group(prefix)}
}

// Use adds global middleware
func (ea *EchoAdapter) Use(middleware axon.MiddlewareFunc) {
	ea.engine.Use(convertEchoMiddleware(middleware))
}

// Start starts the server
func (ea *EchoAdapter) Start(addr string) error {
	return ea.engine.Start(addr)
}

// Stop stops the server
func (ea *EchoAdapter) Stop(ctx context.Context) error {
	return ea.engine.Shutdown(ctx)
}

// Name returns the adapter name
func (ea *EchoAdapter) Name() string {
	return "Echo"
}

// GetEngine returns the underlying Echo instance
func (ea *EchoAdapter) GetEngine() *echo.Echo {
	return ea.engine
}

// ServeHTTP lets the adapter be exercised with httptest
func (ea *EchoAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ea.engine.ServeHTTP(w, r)
}

// EchoGroupAdapter implements axon.RouteGroup for Echo groups
type EchoGroupAdapter struct {
	group *echo.Group
}

// RegisterRoute registers a route with the group
func (ega *EchoGroupAdapter) RegisterRoute(method string, path axon.AxonPath, handler axon.HandlerFunc, middlewares ...axon.MiddlewareFunc) {
	echoMiddlewares := make([]echo.MiddlewareFunc, len(middlewares))
	for i, mw := range middlewares {
		echoMiddlewares[i] = convertEchoMiddleware(mw)
	}
	ega.group.Add(method, convertAxonPathToEcho(path), convertEchoHandler(handler), echoMiddlewares...)
}

// Use adds middleware to the group
func (ega *EchoGroupAdapter) Use(middleware axon.MiddlewareFunc) {
	ega.group.Use(convertEchoMiddleware(middleware))
}

// Group creates a sub-group
func (ega *EchoGroupAdapter) Group(prefix string) axon.RouteGroup {
	return &EchoGroupAdapter{group: ega.group.Group(prefix)}
}

// convertEchoHandler converts axon.HandlerFunc to echo.HandlerFunc. Handler errors
// are written as JSON error documents unless the response is already committed.
func convertEchoHandler(handler axon.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return writeEchoError(c, handler(&EchoRequestContext{context: c}))
	}
}

// convertEchoMiddleware converts axon.MiddlewareFunc to echo.MiddlewareFunc
func convertEchoMiddleware(middleware axon.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			axonNext := func(ctx axon.RequestContext) error {
				return next(c)
			}
			return writeEchoError(c, middleware(axonNext)(&EchoRequestContext{context: c}))
		}
	}
}

// writeEchoError writes axon errors as JSON error documents. Echo's own errors,
// such as an unmatched route, are left to its HTTPErrorHandler.
func writeEchoError(c echo.Context, err error) error {
	if err == nil || c.Response().Committed {
		return err
	}
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return err
	}
	code, body := axon.ErrorBody(err)
	return c.JSON(code, body)
}

// EchoRequestContext implements axon.RequestContext for Echo
type EchoRequestContext struct {
	context echo.Context
}

func (erc *EchoRequestContext) Method() string {
	return erc.context.Request().Method
}

func (erc *EchoRequestContext) Path() string {
	return erc.context.Request().URL.Path
}

func (erc *EchoRequestContext) RealIP() string {
	return erc.context.RealIP()
}

func (erc *EchoRequestContext) Context() context.Context {
	return erc.context.Request().Context()
}

func (erc *EchoRequestContext) Param(key string) string {
	return erc.context.Param(key)
}

func (erc *EchoRequestContext) QueryParam(key string) string {
	return erc.context.QueryParam(key)
}

func (erc *EchoRequestContext) FormValue(name string) string {
	return erc.context.FormValue(name)
}

func (erc *EchoRequestContext) Request() axon.RequestInterface {
	return &EchoRequestInterface{request: erc.context.Request()}
}

func (erc *EchoRequestContext) Response() axon.ResponseInterface {
	return &EchoResponseInterface{context: erc.context}
}

func (erc *EchoRequestContext) Bind(i any) error {
	return erc.context.Bind(i)
}

func (erc *EchoRequestContext) Get(key string) any {
	return erc.context.Get(key)
}

func (erc *EchoRequestContext) Set(key string, val any) {
	erc.context.Set(key, val)
}

// EchoRequestInterface implements axon.RequestInterface for Echo requests
type EchoRequestInterface struct {
	request *http.Request
}

func (eri *EchoRequestInterface) Header(key string) string {
	return eri.request.Header.Get(key)
}

func (eri *EchoRequestInterface) ContentType() string {
	return eri.request.Header.Get(echo.HeaderContentType)
}

// EchoResponseInterface implements axon.ResponseInterface for Echo responses
type EchoResponseInterface struct {
	context echo.Context
}

func (eri *EchoResponseInterface) Status() int {
	return eri.context.Response().Status
}

func (eri *EchoResponseInterface) Header(key string) string {
	return eri.context.Response().Header().Get(key)
}

func (eri *EchoResponseInterface) SetHeader(key, value string) {
	eri.context.Response().Header().Set(key, value)
}

func (eri *EchoResponseInterface) JSON(code int, i any) error {
	return eri.context.JSON(code, i)
}

func (eri *EchoResponseInterface) String(code int, s string) error {
	return eri.context.String(code, s)
}

func (eri *EchoResponseInterface) HTML(code int, html string) error {
	return eri.context.HTML(code, html)
}

func (eri *EchoResponseInterface) Redirect(code int, url string) error {
	return eri.context.Redirect(code, url)
}

func (eri *EchoResponseInterface) NoContent(code int) error {
	return eri.context.NoContent(code)
}

func (eri *EchoResponseInterface) Written() bool {
	return eri.context.Response().Committed
}
