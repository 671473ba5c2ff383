package controllers

import (
	"github.com/shashiranjanraj/storerating/app/services"
	"github.com/shashiranjanraj/storerating/pkg/ctx"
)

type RatingController struct {
	service *services.RatingService
}

func NewRatingController(service *services.RatingService) *RatingController {
	return &RatingController{service: service}
}

func (rc *RatingController) Submit(c *ctx.Context) {
	s, err := scope(c)
	if err != nil {
		c.Fail(err)
		return
	}
	var in services.SubmitRatingInput
	if !c.BindJSON(&in) {
		return
	}
	rating, err := rc.service.Submit(c.Context(), s, in)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(rating)
}

func (rc *RatingController) Index(c *ctx.Context) {
	s, err := scope(c)
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := rc.service.List(c.Context(), s, c.QueryMap())
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(rows)
}

// UserStores lists every store with the caller's own rating.
func (rc *RatingController) UserStores(c *ctx.Context) {
	s, err := scope(c)
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := rc.service.UserStores(c.Context(), s, c.QueryMap())
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(rows)
}
