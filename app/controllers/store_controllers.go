package controllers

import (
	"github.com/shashiranjanraj/storerating/app/services"
	"github.com/shashiranjanraj/storerating/pkg/ctx"
)

type StoreController struct {
	service *services.StoreService
}

func NewStoreController(service *services.StoreService) *StoreController {
	return &StoreController{service: service}
}

func (sc *StoreController) Index(c *ctx.Context) {
	s, err := scope(c)
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := sc.service.List(c.Context(), s, c.QueryMap())
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(rows)
}

func (sc *StoreController) Show(c *ctx.Context) {
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
	details, err := sc.service.Details(c.Context(), s, id)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(details)
}

func (sc *StoreController) Mine(c *ctx.Context) {
	s, err := scope(c)
	if err != nil {
		c.Fail(err)
		return
	}
	details, err := sc.service.Mine(c.Context(), s)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(details)
}

func (sc *StoreController) Store(c *ctx.Context) {
	s, err := scope(c)
	if err != nil {
		c.Fail(err)
		return
	}
	var in services.CreateStoreInput
	if !c.BindJSON(&in) {
		return
	}
	store, err := sc.service.Create(c.Context(), s, in)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Created(store)
}
