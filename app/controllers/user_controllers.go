package controllers

import (
	"github.com/shashiranjanraj/storerating/app/services"
	"github.com/shashiranjanraj/storerating/pkg/ctx"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

func (u *UserController) Index(c *ctx.Context) {
	s, err := scope(c)
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := u.service.List(c.Context(), s, c.QueryMap())
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(rows)
}

func (u *UserController) Show(c *ctx.Context) {
	s, err := scope(c)
	if err != nil {
		c.Fail(err)
		return
	}
	id, err := c.ParamID("id")
	if err != nil {
		c.Fail(err)
		return
	}
	row, err := u.service.Get(c.Context(), s, id)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(row)
}

func (u *UserController) Store(c *ctx.Context) {
	s, err := scope(c)
	if err != nil {
		c.Fail(err)
		return
	}
	var in services.CreateUserInput
	if !c.BindJSON(&in) {
		return
	}
	user, err := u.service.Create(c.Context(), s, in)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Created(user)
}
