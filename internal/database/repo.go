package database

import (
	"context"
	"strconv"

	"gorm.io/gorm"
)

// Conditions is a set of column = value filters applied to a query.
type Conditions map[string]any

// Repo is a generic repository over a single table model. It covers the
// operations every model needs so concrete repositories only add
// domain-specific queries.
//
// Not-found lookups return gorm.ErrRecordNotFound; callers translate it at
// the service boundary.
type Repo[T any] struct {
	db *gorm.DB
}

// NewRepo creates a repository for the model type T.
func NewRepo[T any](db *gorm.DB) *Repo[T] {
	return &Repo[T]{db: db}
}

// DB exposes the underlying handle for queries the generic surface does not
// cover.
func (r *Repo[T]) DB() *gorm.DB { return r.db }

// Create inserts v as a new record.
func (r *Repo[T]) Create(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// Save writes all fields of v, inserting when the primary key is zero.
func (r *Repo[T]) Save(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// Update applies a partial update to v: only the given fields change,
// untouched columns keep their values. updated_at is maintained by GORM.
func (r *Repo[T]) Update(ctx context.Context, v *T, fields Conditions) error {
	return r.db.WithContext(ctx).Model(v).Updates(map[string]any(fields)).Error
}

// UpdateByID applies a partial update to the record with the given id.
func (r *Repo[T]) UpdateByID(ctx context.Context, id any, fields Conditions) error {
	v, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return r.Update(ctx, v, fields)
}

// Delete removes v's row.
func (r *Repo[T]) Delete(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Delete(v).Error
}

// DeleteByID removes the record with the given id.
func (r *Repo[T]) DeleteByID(ctx context.Context, id any) error {
	v, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return r.Delete(ctx, v)
}

// GetByID fetches a record by primary key. The id may be an integer or a
// decimal string; anything else resolves to gorm.ErrRecordNotFound rather
// than a driver error.
func (r *Repo[T]) GetByID(ctx context.Context, id any) (*T, error) {
	n, ok := NormalizeID(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	var out T
	if err := r.db.WithContext(ctx).First(&out, n).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByIDs fetches all records whose primary key is in ids.
func (r *Repo[T]) GetByIDs(ctx context.Context, ids []uint) ([]T, error) {
	var out []T
	if err := r.db.WithContext(ctx).Find(&out, ids).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// All returns every row of the table.
func (r *Repo[T]) All(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// First returns the first record matching the conditions.
func (r *Repo[T]) First(ctx context.Context, conds Conditions) (*T, error) {
	var out T
	q := r.db.WithContext(ctx)
	if len(conds) > 0 {
		q = q.Where(map[string]any(conds))
	}
	if err := q.First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// Find returns records matching the conditions, at most limit rows when
// limit is positive.
func (r *Repo[T]) Find(ctx context.Context, conds Conditions, limit int) ([]T, error) {
	var out []T
	q := r.db.WithContext(ctx)
	if len(conds) > 0 {
		q = q.Where(map[string]any(conds))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of rows matching the conditions.
func (r *Repo[T]) Count(ctx context.Context, conds Conditions) (int64, error) {
	var n int64
	var zero T
	q := r.db.WithContext(ctx).Model(&zero)
	if len(conds) > 0 {
		q = q.Where(map[string]any(conds))
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// CreateOrUpdate inserts v. Association models override this behavior via
// UpsertByForeignKeys; for plain table models it is a create.
func (r *Repo[T]) CreateOrUpdate(ctx context.Context, v *T) error {
	return r.Create(ctx, v)
}

// NormalizeID coerces the id forms accepted by GetByID into a primary key
// value. Unparseable ids report ok=false.
func NormalizeID(id any) (uint, bool) {
	switch v := id.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return uint(n), true
	default:
		return 0, false
	}
}
