package axon

import (
	"context"
	"fmt"
	"strings"
)

// Action is a controller entry point bound to one route
type Action func(RequestContext) (Result, error)

// Route binds an Action to a method and path
type Route struct {
	Method      string
	Path        AxonPath
	Name        string
	Middlewares []string
	Action      Action
}

// Controller exposes a set of routes to the server
type Controller interface {
	ControllerName() string
	Routes() []Route
}

// Server wires controllers onto a WebServerInterface and executes their results
type Server struct {
	web         WebServerInterface
	routes      RouteRegistry
	middlewares MiddlewareRegistry
	renderer    Renderer
}

// NewServer creates a server on top of web. renderer may be nil, in which case
// views are written as JSON.
func NewServer(web WebServerInterface, renderer Renderer) *Server {
	return &Server{
		web:         web,
		routes:      NewInMemoryRouteRegistry(),
		middlewares: NewInMemoryMiddlewareRegistry(),
		renderer:    renderer,
	}
}

// Routes returns the registry of mounted routes
func (s *Server) Routes() RouteRegistry {
	return s.routes
}

// Middlewares returns the registry of named middlewares
func (s *Server) Middlewares() MiddlewareRegistry {
	return s.middlewares
}

// Web returns the underlying web server adapter
func (s *Server) Web() WebServerInterface {
	return s.web
}

// Use installs registered middlewares globally, in the given order
func (s *Server) Use(names ...string) error {
	mws, err := s.resolve(names)
	if err != nil {
		return err
	}
	for _, mw := range mws {
		s.web.Use(mw)
	}
	return nil
}

// Mount registers every route of ctrl
func (s *Server) Mount(ctrl Controller) error {
	for _, route := range ctrl.Routes() {
		if err := s.mountRoute(ctrl.ControllerName(), route); err != nil {
			return fmt.Errorf("mount %s %s %s: %w", ctrl.ControllerName(), route.Method, route.Path, err)
		}
	}
	return nil
}

func (s *Server) mountRoute(controller string, route Route) error {
	if err := route.Path.Validate(); err != nil {
		return err
	}
	if route.Action == nil {
		return fmt.Errorf("route has no action")
	}
	mws, err := s.resolve(route.Middlewares)
	if err != nil {
		return err
	}

	action := route.Action
	handler := func(c RequestContext) error {
		result, err := action(c)
		if err != nil {
			return err
		}
		return WriteResult(c, result, s.renderer, s.routes)
	}
	mws = append(mws, TypedParams(route.Path))

	method := strings.ToUpper(route.Method)
	s.web.RegisterRoute(method, route.Path, Chain(handler, mws...))
	s.routes.RegisterRoute(RouteInfo{
		Method:         method,
		Path:           route.Path,
		Name:           route.Name,
		ControllerName: controller,
		Middlewares:    route.Middlewares,
	})
	return nil
}

func (s *Server) resolve(names []string) ([]MiddlewareFunc, error) {
	mws := make([]MiddlewareFunc, 0, len(names))
	for _, name := range names {
		mw, ok := s.middlewares.GetMiddleware(name)
		if !ok {
			return nil, fmt.Errorf("unknown middleware %q", name)
		}
		mws = append(mws, mw.Handler)
	}
	return mws, nil
}

// Start starts the underlying web server and blocks until it stops
func (s *Server) Start(addr string) error {
	return s.web.Start(addr)
}

// Stop shuts the underlying web server down
func (s *Server) Stop(ctx context.Context) error {
	return s.web.Stop(ctx)
}

// Name returns the adapter name
func (s *Server) Name() string {
	return s.web.Name()
}
