// Package controllers adapts HTTP requests to services.
package controllers

import (
	"time"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/app/query"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
	"github.com/shashiranjanraj/storerating/pkg/ctx"
)

// scope builds the caller's query scope from the authenticated identity.
func scope(c *ctx.Context) (query.Scope, error) {
	id, ok := c.Identity()
	if !ok {
		return query.Scope{}, apperr.Unauthenticated()
	}
	return query.NewScope(query.Identity{UserID: id.UserID, Role: models.Role(id.Role)})
}

// Health reports that the process is serving.
func Health(c *ctx.Context) {
	c.Success(map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
