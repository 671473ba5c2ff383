// Package orm is a thin wrapper over gorm that times every statement and
// translates driver errors into a small set of sentinels.
package orm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shashiranjanraj/storerating/pkg/metrics"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound   = errors.New("orm: record not found")
	ErrDuplicate  = errors.New("orm: duplicate key")
	ErrForeignKey = errors.New("orm: foreign key violation")
)

type Query struct {
	db *gorm.DB
}

// On wraps an explicit connection.
func On(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) WithContext(ctx context.Context) *Query {
	return &Query{db: q.db.WithContext(ctx)}
}

func (q *Query) Model(v any) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...any) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Get(dest any) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return translate(q.db.Find(dest).Error)
}

func (q *Query) First(dest any) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return translate(q.db.First(dest).Error)
}

func (q *Query) Count() (int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var n int64
	err := q.db.Count(&n).Error
	return n, translate(err)
}

func (q *Query) Create(v any) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return translate(q.db.Create(v).Error)
}

// Upsert inserts v or, when a row with the same conflict columns exists,
// overwrites only the update columns, as one statement.
func (q *Query) Upsert(v any, conflict, update []string) error {
	defer metrics.ObserveDBQuery("upsert", time.Now())

	cols := make([]clause.Column, len(conflict))
	for i, c := range conflict {
		cols[i] = clause.Column{Name: c}
	}
	return translate(q.db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   cols,
		DoUpdates: clause.AssignmentColumns(update),
	}).Create(v).Error)
}

// UpdateColumn sets one column on the rows matched so far.
func (q *Query) UpdateColumn(column string, value any) (int64, error) {
	defer metrics.ObserveDBQuery("update", time.Now())
	res := q.db.Update(column, value)
	return res.RowsAffected, translate(res.Error)
}

// Raw scans the rows of a parameterized statement into dest.
// Placeholders are ? and are rebound for the active dialect.
func (q *Query) Raw(dest any, sql string, args ...any) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return translate(q.db.Raw(sql, args...).Scan(dest).Error)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isDuplicateMessage(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), isForeignKeyMessage(err):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	default:
		return err
	}
}

// Dialects without an error translator still report violations in text.
func isDuplicateMessage(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "sqlstate 23505")
}

func isForeignKeyMessage(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "sqlstate 23503")
}
