// Package services holds the use cases behind the HTTP API and the CLI.
// Every error returned here is an *apperr.Error.
package services

import (
	"errors"

	"github.com/shashiranjanraj/storerating/app/query"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
	"github.com/shashiranjanraj/storerating/pkg/metrics"
	"github.com/shashiranjanraj/storerating/pkg/orm"
	"github.com/shashiranjanraj/storerating/pkg/validate"
)

// Query-string keys that select ordering rather than filtering.
const (
	SortByParam    = "sortBy"
	SortOrderParam = "sortOrder"
)

// plan turns raw request parameters into a scoped plan for entity.
func plan(entity query.Entity, raw map[string]string, scope query.Scope) (query.Plan, error) {
	preds, err := query.BuildFilters(entity, raw)
	if err != nil {
		return query.Plan{}, err
	}
	sort := query.ResolveSort(entity, raw[SortByParam], raw[SortOrderParam])
	p, err := query.Compose(entity, preds, sort, scope)
	if err != nil {
		return query.Plan{}, err
	}
	metrics.ListQueries.WithLabelValues(entity.String(), scope.Role().String()).Inc()
	return p, nil
}

// check runs struct-tag validation on in.
func check(in any) error {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return apperr.Validation("Validation failed", errs)
	}
	return nil
}

// storage classifies a repository error. notFound names the missing entity.
func storage(err error, notFound string) error {
	var ae *apperr.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ae):
		return err
	case errors.Is(err, orm.ErrNotFound), errors.Is(err, orm.ErrForeignKey):
		return apperr.NotFound(notFound)
	case errors.Is(err, orm.ErrDuplicate):
		return apperr.Conflict("Email already registered", err)
	default:
		return apperr.Internal(err)
	}
}
