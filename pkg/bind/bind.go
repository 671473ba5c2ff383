// Package bind decodes an HTTP request body into a struct. Field rules are
// checked by the service that receives the value.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shashiranjanraj/storerating/config"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
)

// JSON decodes r.Body into dest. Malformed, oversized and empty bodies come
// back as apperr validation errors.
func JSON(r *http.Request, dest any) error {
	limit := config.MaxBodyBytes()
	body := http.MaxBytesReader(nil, r.Body, limit)

	if err := json.NewDecoder(body).Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return apperr.Validation(fmt.Sprintf("Request body too large (max %d bytes)", maxErr.Limit), nil)
		case errors.Is(err, io.EOF):
			return apperr.Validation("Request body is empty", nil)
		default:
			return apperr.Validation("Invalid JSON body", nil)
		}
	}
	return nil
}
