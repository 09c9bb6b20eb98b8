package controllers

import (
	"net/http"

	"github.com/toyz/usermvc/internal/annotations"
	"github.com/toyz/usermvc/internal/store"
	"github.com/toyz/usermvc/pkg/axon"
)

// HealthController serves the landing redirect and the health check
type HealthController struct {
	users   *store.UserStore
	adapter string
}

// NewHealthController creates a HealthController reporting adapter as the server name
func NewHealthController(users *store.UserStore, adapter string) *HealthController {
	return &HealthController{users: users, adapter: adapter}
}

func (c *HealthController) ControllerName() string {
	return "HealthController"
}

func (c *HealthController) Routes() []axon.Route {
	return []axon.Route{
		annotations.MustRoute("GET / -Name=Home", func(axon.RequestContext) (axon.Result, error) {
			return axon.RedirectToAction(ActionIndex), nil
		}),
		annotations.MustRoute("GET /healthz -Name=Health", func(axon.RequestContext) (axon.Result, error) {
			return c.Health(), nil
		}),
	}
}

// Health reports liveness with the number of stored users
func (c *HealthController) Health() axon.Result {
	return axon.JSON(http.StatusOK, map[string]any{
		"status": "healthy",
		"server": c.adapter,
		"users":  c.users.Len(),
	})
}
