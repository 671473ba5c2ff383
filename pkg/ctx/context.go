// Package ctx gives handlers a single request context instead of the
// (http.ResponseWriter, *http.Request) pair:
//
//	func (c *StoreController) Show(x *ctx.Context) {
//	    id, ok := x.ParamID("id")
//	    ...
//	    x.Success(store)
//	}
//
//	r.Get("/stores/{id}", "stores.show", ctx.Wrap(c.Show))
package ctx

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/storerating/pkg/apperr"
	"github.com/shashiranjanraj/storerating/pkg/bind"
	"github.com/shashiranjanraj/storerating/pkg/middleware"
	"github.com/shashiranjanraj/storerating/pkg/response"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap adapts a HandlerFunc to http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps one request/response pair.
type Context struct {
	W http.ResponseWriter
	R *http.Request
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// Param returns a URL path parameter.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// ParamID parses a positive integer path parameter.
func (c *Context) ParamID(key string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.Field(key, "must be a positive integer")
	}
	return uint(n), nil
}

// QueryMap returns the first value of every query-string key.
func (c *Context) QueryMap() map[string]string {
	q := c.R.URL.Query()
	out := make(map[string]string, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// Context returns the request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// Identity returns the caller set by middleware.AuthMiddleware.
func (c *Context) Identity() (middleware.Identity, bool) {
	return middleware.IdentityFromCtx(c.R.Context())
}

// BindJSON decodes the body into dest. On failure it writes
// the error response and returns false.
func (c *Context) BindJSON(dest any) bool {
	if err := bind.JSON(c.R, dest); err != nil {
		c.Fail(err)
		return false
	}
	return true
}

// Success sends a 200 JSON envelope.
func (c *Context) Success(data any) { response.Success(c.W, data) }

// Created sends a 201 JSON envelope.
func (c *Context) Created(data any) { response.Created(c.W, data) }

// Message sends a 200 with only a message.
func (c *Context) Message(msg string) { response.Message(c.W, msg) }

// Fail maps err to a status through its apperr kind.
func (c *Context) Fail(err error) { response.Fail(c.W, c.R, err) }
