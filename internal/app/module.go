// Package app assembles the user management server with fx.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/toyz/usermvc/internal/config"
	"github.com/toyz/usermvc/internal/controllers"
	"github.com/toyz/usermvc/internal/logging"
	"github.com/toyz/usermvc/internal/middleware"
	"github.com/toyz/usermvc/internal/store"
	"github.com/toyz/usermvc/internal/validation"
	"github.com/toyz/usermvc/internal/views"
	"github.com/toyz/usermvc/pkg/axon"
	"github.com/toyz/usermvc/pkg/axon/adapters"
	"go.uber.org/fx"
)

// Module provides every component of the server. The caller supplies *config.Config.
var Module = fx.Module("usermvc",
	fx.Provide(
		logging.NewAppLogger,
		NewUserStore,
		validation.New,
		views.NewRenderer,
		NewWebServer,
		controllers.NewUserController,
		NewHealthController,
		NewServer,
	),
	fx.Invoke(RegisterLifecycle),
)

// NewUserStore creates the store, seeded with the demo users when configured
func NewUserStore(cfg *config.Config) *store.UserStore {
	if cfg.SeedDemoUsers {
		return store.NewUserStore(store.DemoUsers()...)
	}
	return store.NewUserStore()
}

// NewWebServer creates the adapter named by cfg.HTTP.Adapter
func NewWebServer(cfg *config.Config) (axon.WebServerInterface, error) {
	switch cfg.HTTP.Adapter {
	case config.AdapterEcho:
		return adapters.NewDefaultEchoAdapter(), nil
	case config.AdapterGin:
		return adapters.NewDefaultGinAdapter(), nil
	case config.AdapterFiber:
		return adapters.NewDefaultFiberAdapter(), nil
	default:
		return nil, fmt.Errorf("unknown adapter %q", cfg.HTTP.Adapter)
	}
}

// NewHealthController reports the adapter in use
func NewHealthController(users *store.UserStore, web axon.WebServerInterface) *controllers.HealthController {
	return controllers.NewHealthController(users, web.Name())
}

// NewServer registers middleware and mounts the controllers. Global middleware
// is installed first because Gin and Fiber bind middleware to routes at
// registration time.
func NewServer(
	web axon.WebServerInterface,
	renderer *views.Renderer,
	logger *logging.AppLogger,
	users *controllers.UserController,
	health *controllers.HealthController,
) (*axon.Server, error) {
	server := axon.NewServer(web, renderer)
	renderer.UseRoutes(server.Routes())
	middleware.Register(server.Middlewares(), logger)
	if err := server.Use(middleware.Global...); err != nil {
		return nil, err
	}

	for _, ctrl := range []axon.Controller{users, health} {
		if err := server.Mount(ctrl); err != nil {
			return nil, err
		}
	}

	for _, route := range server.Routes().GetAllRoutes() {
		logger.Debug("route mounted", "method", route.Method, "path", route.Path.Raw(), "name", route.Name, "controller", route.ControllerName)
	}
	return server, nil
}

// RegisterLifecycle starts and stops the server with the fx application
func RegisterLifecycle(lc fx.Lifecycle, server *axon.Server, cfg *config.Config, logger *logging.AppLogger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := cfg.HTTP.Addr()
			logger.Info("starting server", "adapter", server.Name(), "addr", addr)
			go func() {
				if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped", "adapter", server.Name(), "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server", "adapter", server.Name())
			stopCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
			defer cancel()
			return server.Stop(stopCtx)
		},
	})
}
