package adapters

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/toyz/usermvc/pkg/axon"
)

// GinAdapter implements axon.WebServerInterface for Gin framework
type GinAdapter struct {
	engine *gin.Engine

	mu     sync.Mutex
	server *http.Server
}

// NewGinAdapter creates a new Gin adapter
func NewGinAdapter(g *gin.Engine) *GinAdapter {
	return &GinAdapter{engine: g}
}

// NewDefaultGinAdapter creates a new Gin adapter with panic recovery.
// Request logging is left to axon middleware.
func NewDefaultGinAdapter() *GinAdapter {
	engine := gin.New()
	engine.Use(gin.Recovery())
	return &GinAdapter{engine: engine}
}

// convertAxonPathToGin converts AxonPath to Gin path format
func convertAxonPathToGin(path axon.AxonPath) string {
	ginPath := ""
	for _, part := range path.Parts() {
		switch part.Type {
		case axon.ParameterPart:
			ginPath += ":" + part.Value
		case axon.WildcardPart:
			ginPath += "*path"
		default:
			ginPath += part.Value
		}
	}
	if ginPath == "" {
		ginPath = "/"
	}
	return ginPath
}

// RegisterRoute registers a route with the Gin server
func (ga *GinAdapter) RegisterRoute(method string, path axon.AxonPath, handler axon.HandlerFunc, middlewares ...axon.MiddlewareFunc) {
	ga.engine.Handle(method, convertAxonPathToGin(path), ginHandlers(handler, middlewares)...)
}

// RegisterGroup registers a route group with the Gin server
func (ga *GinAdapter) RegisterGroup(prefix string) axon.RouteGroup {
	return &GinRouteGroup{group: ga.engine.Group(prefix)}
}

// Use registers a global middleware. Gin snapshots middleware per route, so this
// must be called before routes are registered.
func (ga *GinAdapter) Use(middleware axon.MiddlewareFunc) {
	ga.engine.Use(convertGinMiddleware(middleware))
}

// Start serves the engine through an owned http.Server so Stop can shut it down
func (ga *GinAdapter) Start(addr string) error {
	ga.mu.Lock()
	ga.server = &http.Server{Addr: addr, Handler: ga.engine}
	srv := ga.server
	ga.mu.Unlock()

	return srv.ListenAndServe()
}

// Stop gracefully shuts down a started server
func (ga *GinAdapter) Stop(ctx context.Context) error {
	ga.mu.Lock()
	srv := ga.server
	ga.mu.Unlock()

	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Name returns the adapter name
func (ga *GinAdapter) Name() string {
	return "Gin"
}

// GetEngine returns the underlying Gin engine
func (ga *GinAdapter) GetEngine() *gin.Engine {
	return ga.engine
}

// ServeHTTP lets the adapter be exercised with httptest
func (ga *GinAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ga.engine.ServeHTTP(w, r)
}

// GinRouteGroup implements axon.RouteGroup for Gin
type GinRouteGroup struct {
	group *gin.RouterGroup
}

// RegisterRoute registers a route within the group
func (grg *GinRouteGroup) RegisterRoute(method string, path axon.AxonPath, handler axon.HandlerFunc, middlewares ...axon.MiddlewareFunc) {
	grg.group.Handle(method, convertAxonPathToGin(path), ginHandlers(handler, middlewares)...)
}

// Use registers middleware with the group
func (grg *GinRouteGroup) Use(middleware axon.MiddlewareFunc) {
	grg.group.Use(convertGinMiddleware(middleware))
}

// Group creates a sub-group
func (grg *GinRouteGroup) Group(prefix string) axon.RouteGroup {
	return &GinRouteGroup{group: grg.group.Group(prefix)}
}

func ginHandlers(handler axon.HandlerFunc, middlewares []axon.MiddlewareFunc) []gin.HandlerFunc {
	handlers := make([]gin.HandlerFunc, 0, len(middlewares)+1)
	for _, mw := range middlewares {
		handlers = append(handlers, convertGinMiddleware(mw))
	}
	return append(handlers, convertGinHandler(handler))
}

// convertGinHandler converts axon.HandlerFunc to gin.HandlerFunc
func convertGinHandler(handler axon.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler(&GinRequestContext{ctx: c}); err != nil {
			writeGinError(c, err)
		}
	}
}

// convertGinMiddleware converts axon.MiddlewareFunc to gin.HandlerFunc. Gin runs
// the remaining handlers unless aborted, so a middleware that never calls next
// aborts the chain.
func convertGinMiddleware(middleware axon.MiddlewareFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		called := false
		next := func(rc axon.RequestContext) error {
			called = true
			c.Next()
			return nil
		}
		if err := middleware(next)(&GinRequestContext{ctx: c}); err != nil {
			writeGinError(c, err)
			return
		}
		if !called {
			c.Abort()
		}
	}
}

func writeGinError(c *gin.Context, err error) {
	if c.Writer.Written() {
		c.Abort()
		return
	}
	code, body := axon.ErrorBody(err)
	c.AbortWithStatusJSON(code, body)
}

// GinRequestContext implements axon.RequestContext for Gin
type GinRequestContext struct {
	ctx *gin.Context
}

func (grc *GinRequestContext) Method() string {
	return grc.ctx.Request.Method
}

func (grc *GinRequestContext) Path() string {
	return grc.ctx.Request.URL.Path
}

func (grc *GinRequestContext) RealIP() string {
	return grc.ctx.ClientIP()
}

func (grc *GinRequestContext) Context() context.Context {
	return grc.ctx.Request.Context()
}

func (grc *GinRequestContext) Param(name string) string {
	if name == "*" {
		// Gin names the catch-all segment *path and keeps its leading slash
		return strings.TrimPrefix(grc.ctx.Param("path"), "/")
	}
	return grc.ctx.Param(name)
}

func (grc *GinRequestContext) QueryParam(name string) string {
	return grc.ctx.Query(name)
}

func (grc *GinRequestContext) FormValue(name string) string {
	return grc.ctx.PostForm(name)
}

func (grc *GinRequestContext) Request() axon.RequestInterface {
	return &GinRequestInterface{request: grc.ctx.Request}
}

func (grc *GinRequestContext) Response() axon.ResponseInterface {
	return &GinResponseInterface{ctx: grc.ctx}
}

// Bind picks the binder from the Content-Type header
func (grc *GinRequestContext) Bind(i any) error {
	return grc.ctx.ShouldBind(i)
}

func (grc *GinRequestContext) Get(key string) any {
	value, _ := grc.ctx.Get(key)
	return value
}

func (grc *GinRequestContext) Set(key string, val any) {
	grc.ctx.Set(key, val)
}

// GinRequestInterface implements axon.RequestInterface for Gin
type GinRequestInterface struct {
	request *http.Request
}

func (gri *GinRequestInterface) Header(key string) string {
	return gri.request.Header.Get(key)
}

func (gri *GinRequestInterface) ContentType() string {
	return gri.request.Header.Get("Content-Type")
}

// GinResponseInterface implements axon.ResponseInterface for Gin
type GinResponseInterface struct {
	ctx *gin.Context
}

func (gri *GinResponseInterface) Status() int {
	return gri.ctx.Writer.Status()
}

func (gri *GinResponseInterface) Header(key string) string {
	return gri.ctx.Writer.Header().Get(key)
}

func (gri *GinResponseInterface) SetHeader(key, value string) {
	gri.ctx.Header(key, value)
}

func (gri *GinResponseInterface) JSON(code int, i any) error {
	gri.ctx.JSON(code, i)
	return nil
}

func (gri *GinResponseInterface) String(code int, s string) error {
	gri.ctx.String(code, "%s", s)
	return nil
}

func (gri *GinResponseInterface) HTML(code int, html string) error {
	gri.ctx.Data(code, "text/html; charset=UTF-8", []byte(html))
	return nil
}

func (gri *GinResponseInterface) Redirect(code int, url string) error {
	gri.ctx.Redirect(code, url)
	return nil
}

func (gri *GinResponseInterface) NoContent(code int) error {
	gri.ctx.Status(code)
	gri.ctx.Writer.WriteHeaderNow()
	return nil
}

func (gri *GinResponseInterface) Written() bool {
	return gri.ctx.Writer.Written()
}
