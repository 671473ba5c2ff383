package controllers

import (
	"github.com/shashiranjanraj/storerating/app/services"
	"github.com/shashiranjanraj/storerating/pkg/ctx"
)

type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

func (d *DashboardController) Show(c *ctx.Context) {
	s, err := scope(c)
	if err != nil {
		c.Fail(err)
		return
	}
	stats, err := d.service.Stats(c.Context(), s)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(stats)
}
