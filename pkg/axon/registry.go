package axon

import (
	"fmt"
	"sort"
	"sync"
)

// MiddlewareInstance represents a middleware with its name and handler
type MiddlewareInstance struct {
	// Name is the middleware name referenced by route annotations
	Name string

	// Handler is the middleware function that can be applied to routes
	Handler MiddlewareFunc

	// Instance is the actual middleware struct instance (if available)
	Instance any
}

// MiddlewareRegistry provides access to all registered middlewares
type MiddlewareRegistry interface {
	RegisterMiddleware(name string, handler MiddlewareFunc, instance any)
	GetMiddleware(name string) (MiddlewareInstance, bool)
	GetAllMiddlewares() []MiddlewareInstance
}

type inMemoryMiddlewareRegistry struct {
	mu          sync.RWMutex
	middlewares map[string]MiddlewareInstance
}

// NewInMemoryMiddlewareRegistry creates a new in-memory middleware registry
func NewInMemoryMiddlewareRegistry() MiddlewareRegistry {
	return &inMemoryMiddlewareRegistry{
		middlewares: make(map[string]MiddlewareInstance),
	}
}

func (r *inMemoryMiddlewareRegistry) RegisterMiddleware(name string, handler MiddlewareFunc, instance any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middlewares[name] = MiddlewareInstance{
		Name:     name,
		Handler:  handler,
		Instance: instance,
	}
}

func (r *inMemoryMiddlewareRegistry) GetMiddleware(name string) (MiddlewareInstance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	middleware, exists := r.middlewares[name]
	return middleware, exists
}

// GetAllMiddlewares returns the registered middlewares sorted by name
func (r *inMemoryMiddlewareRegistry) GetAllMiddlewares() []MiddlewareInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]MiddlewareInstance, 0, len(r.middlewares))
	for _, middleware := range r.middlewares {
		result = append(result, middleware)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// RouteInfo contains metadata about a registered route
type RouteInfo struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE, etc.)
	Method string

	// Path is the Axon route path with parameter placeholders (e.g., "/users/{id:int}")
	Path AxonPath

	// Name is the action name used for redirects (e.g., "Index")
	Name string

	// ControllerName is the name of the controller that owns this route
	ControllerName string

	// Middlewares is a list of middleware names applied to this route
	Middlewares []string

	// ParameterTypes maps parameter names to their types (e.g., {"id": "int"})
	ParameterTypes map[string]string
}

// RouteRegistry provides access to all registered routes in the application
type RouteRegistry interface {
	GetAllRoutes() []RouteInfo
	GetRoutesByController(controllerName string) []RouteInfo
	GetRoutesByMethod(method string) []RouteInfo
	GetRouteByName(name string) (RouteInfo, bool)
	RegisterRoute(route RouteInfo)
	URL(name string, values map[string]any) (string, error)
}

// InMemoryRouteRegistry implements RouteRegistry using an in-memory slice
type InMemoryRouteRegistry struct {
	mu     sync.RWMutex
	routes []RouteInfo
}

// NewInMemoryRouteRegistry creates a new in-memory route registry
func NewInMemoryRouteRegistry() *InMemoryRouteRegistry {
	return &InMemoryRouteRegistry{
		routes: make([]RouteInfo, 0),
	}
}

// GetAllRoutes returns all registered routes in registration order
func (r *InMemoryRouteRegistry) GetAllRoutes() []RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]RouteInfo(nil), r.routes...)
}

// GetRoutesByController returns routes filtered by controller name
func (r *InMemoryRouteRegistry) GetRoutesByController(controllerName string) []RouteInfo {
	return r.filter(func(route RouteInfo) bool { return route.ControllerName == controllerName })
}

// GetRoutesByMethod returns routes filtered by HTTP method
func (r *InMemoryRouteRegistry) GetRoutesByMethod(method string) []RouteInfo {
	return r.filter(func(route RouteInfo) bool { return route.Method == method })
}

// GetRouteByName returns the first GET route registered under name, falling back
// to the first route of any method.
func (r *InMemoryRouteRegistry) GetRouteByName(name string) (RouteInfo, bool) {
	matches := r.filter(func(route RouteInfo) bool { return route.Name == name })
	if len(matches) == 0 {
		return RouteInfo{}, false
	}
	for _, route := range matches {
		if route.Method == "GET" {
			return route, true
		}
	}
	return matches[0], true
}

// RegisterRoute adds a route to the registry
func (r *InMemoryRouteRegistry) RegisterRoute(route RouteInfo) {
	if route.ParameterTypes == nil {
		route.ParameterTypes = route.Path.Params()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

// URL builds the path of the route registered under name
func (r *InMemoryRouteRegistry) URL(name string, values map[string]any) (string, error) {
	route, ok := r.GetRouteByName(name)
	if !ok {
		return "", fmt.Errorf("no route named %q", name)
	}
	return route.Path.Build(values)
}

func (r *InMemoryRouteRegistry) filter(keep func(RouteInfo) bool) []RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var filtered []RouteInfo
	for _, route := range r.routes {
		if keep(route) {
			filtered = append(filtered, route)
		}
	}
	return filtered
}
