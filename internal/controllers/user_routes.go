package controllers

import (
	"github.com/toyz/usermvc/internal/annotations"
	"github.com/toyz/usermvc/internal/models"
	"github.com/toyz/usermvc/pkg/axon"
)

// ControllerName implements axon.Controller
func (c *UserController) ControllerName() string {
	return "UserController"
}

// Routes implements axon.Controller. Static segments come before {id} so that
// routers matching in registration order resolve /users/create first.
func (c *UserController) Routes() []axon.Route {
	return []axon.Route{
		annotations.MustRoute("GET /users -Name=Index", c.handleIndex),
		annotations.MustRoute("GET /users/create -Name=Create", c.handleCreate),
		annotations.MustRoute("POST /users/create -Name=CreatePost", c.handleCreatePost),
		annotations.MustRoute("GET /users/{id:int} -Name=Details", c.handleDetails),
		annotations.MustRoute("GET /users/{id:int}/edit -Name=Edit", c.handleEdit),
		annotations.MustRoute("POST /users/{id:int}/edit -Name=EditPost", c.handleEditPost),
		annotations.MustRoute("GET /users/{id:int}/delete -Name=Delete", c.handleDelete),
		annotations.MustRoute("POST /users/{id:int}/delete -Name=DeletePost", c.handleDeletePost),
	}
}

func (c *UserController) handleIndex(ctx axon.RequestContext) (axon.Result, error) {
	return c.Index(), nil
}

func (c *UserController) handleDetails(ctx axon.RequestContext) (axon.Result, error) {
	id, err := axon.ParamInt(ctx, "id")
	if err != nil {
		return nil, err
	}
	return c.Details(id), nil
}

func (c *UserController) handleCreate(ctx axon.RequestContext) (axon.Result, error) {
	return c.Create(), nil
}

func (c *UserController) handleCreatePost(ctx axon.RequestContext) (axon.Result, error) {
	user, err := bindUser(ctx)
	if err != nil {
		return nil, err
	}
	return c.CreatePost(user, c.validator.Check(user)), nil
}

func (c *UserController) handleEdit(ctx axon.RequestContext) (axon.Result, error) {
	id, err := axon.ParamInt(ctx, "id")
	if err != nil {
		return nil, err
	}
	return c.Edit(id), nil
}

func (c *UserController) handleEditPost(ctx axon.RequestContext) (axon.Result, error) {
	id, err := axon.ParamInt(ctx, "id")
	if err != nil {
		return nil, err
	}
	user, err := bindUser(ctx)
	if err != nil {
		return nil, err
	}
	// the edit form does not post an id; the route's id is authoritative
	user.ID = id
	return c.EditPost(id, user, c.validator.Check(user)), nil
}

func (c *UserController) handleDelete(ctx axon.RequestContext) (axon.Result, error) {
	id, err := axon.ParamInt(ctx, "id")
	if err != nil {
		return nil, err
	}
	return c.Delete(id), nil
}

func (c *UserController) handleDeletePost(ctx axon.RequestContext) (axon.Result, error) {
	id, err := axon.ParamInt(ctx, "id")
	if err != nil {
		return nil, err
	}
	return c.DeletePost(id), nil
}

func bindUser(ctx axon.RequestContext) (models.User, error) {
	var user models.User
	if err := ctx.Bind(&user); err != nil {
		return models.User{}, axon.ErrBadRequest("malformed user: " + err.Error())
	}
	return user, nil
}
