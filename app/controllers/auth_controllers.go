package controllers

import (
	"github.com/shashiranjanraj/storerating/app/services"
	"github.com/shashiranjanraj/storerating/pkg/ctx"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (a *AuthController) Signup(c *ctx.Context) {
	var in services.SignupInput
	if !c.BindJSON(&in) {
		return
	}
	user, err := a.service.Signup(c.Context(), in)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Created(user)
}

func (a *AuthController) Login(c *ctx.Context) {
	var in services.LoginInput
	if !c.BindJSON(&in) {
		return
	}
	res, err := a.service.Login(c.Context(), in)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(res)
}

func (a *AuthController) ChangePassword(c *ctx.Context) {
	s, err := scope(c)
	if err != nil {
		c.Fail(err)
		return
	}
	var in services.ChangePasswordInput
	if !c.BindJSON(&in) {
		return
	}
	if err := a.service.ChangePassword(c.Context(), s.UserID(), in); err != nil {
		c.Fail(err)
		return
	}
	c.Message("Password updated")
}
