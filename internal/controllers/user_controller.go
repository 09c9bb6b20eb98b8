package controllers

import (
	"net/http"

	"github.com/toyz/usermvc/internal/logging"
	"github.com/toyz/usermvc/internal/models"
	"github.com/toyz/usermvc/internal/store"
	"github.com/toyz/usermvc/internal/validation"
	"github.com/toyz/usermvc/pkg/axon"
)

// View names rendered by UserController
const (
	ViewIndex   = "users/index"
	ViewDetails = "users/details"
	ViewCreate  = "users/create"
	ViewEdit    = "users/edit"
	ViewDelete  = "users/delete"
)

// ActionIndex is the redirect target after every successful submit
const ActionIndex = "Index"

// UserController implements list, view, create, edit and delete over a UserStore.
// Not found and invalid input are results, never errors.
type UserController struct {
	users     *store.UserStore
	validator *validation.Validator
	logger    *logging.AppLogger
}

// NewUserController creates a controller over users
func NewUserController(users *store.UserStore, validator *validation.Validator, logger *logging.AppLogger) *UserController {
	return &UserController{
		users:     users,
		validator: validator,
		logger:    logger.With("controller", "UserController"),
	}
}

// Index lists every user in insertion order
func (c *UserController) Index() axon.Result {
	return axon.View(ViewIndex, c.users.All())
}

// Details shows the user with id
func (c *UserController) Details(id int) axon.Result {
	return c.viewUser(ViewDetails, id)
}

// Create shows an empty create form
func (c *UserController) Create() axon.Result {
	return axon.View(ViewCreate, models.NewUserForm(models.User{}, nil))
}

// CreatePost appends user when valid, otherwise re-renders the form with the
// submitted data.
func (c *UserController) CreatePost(user models.User, result validation.Result) axon.Result {
	if !result.Valid() {
		return axon.ViewWithStatus(http.StatusUnprocessableEntity, ViewCreate, models.NewUserForm(user, result.Map()))
	}

	c.users.Add(user)
	c.logger.Info("user created", "id", user.ID)
	return axon.RedirectToAction(ActionIndex)
}

// Edit shows the edit form of the user with id
func (c *UserController) Edit(id int) axon.Result {
	user, ok := c.users.Find(id).Get()
	if !ok {
		c.logger.Debug("user not found", "id", id)
		return axon.NotFound()
	}
	return axon.View(ViewEdit, models.NewUserForm(user, nil))
}

// EditPost overwrites name and email of the user with id. The stored id and
// position never change. An unknown id is not found even when the submitted
// data is invalid.
func (c *UserController) EditPost(id int, user models.User, result validation.Result) axon.Result {
	if c.users.Find(id).IsAbsent() {
		c.logger.Debug("user not found", "id", id)
		return axon.NotFound()
	}

	user.ID = id
	if !result.Valid() {
		return axon.ViewWithStatus(http.StatusUnprocessableEntity, ViewEdit, models.NewUserForm(user, result.Map()))
	}

	if !c.users.Update(id, user.Name, user.Email) {
		c.logger.Debug("user not found", "id", id)
		return axon.NotFound()
	}
	c.logger.Info("user updated", "id", id)
	return axon.RedirectToAction(ActionIndex)
}

// Delete shows the delete confirmation of the user with id
func (c *UserController) Delete(id int) axon.Result {
	return c.viewUser(ViewDelete, id)
}

// DeletePost removes the user with id
func (c *UserController) DeletePost(id int) axon.Result {
	if !c.users.Remove(id) {
		c.logger.Debug("user not found", "id", id)
		return axon.NotFound()
	}
	c.logger.Info("user deleted", "id", id)
	return axon.RedirectToAction(ActionIndex)
}

func (c *UserController) viewUser(view string, id int) axon.Result {
	user, ok := c.users.Find(id).Get()
	if !ok {
		c.logger.Debug("user not found", "id", id)
		return axon.NotFound()
	}
	return axon.View(view, user)
}
