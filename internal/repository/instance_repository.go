package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InstanceRepository is the shared store for the five instance kinds. The
// row type carries the table binding; the queries only touch the fields
// common to all kinds (owner, pattern linkage, instance date).
type InstanceRepository[T any] struct {
	db *gorm.DB
}

func NewInstanceRepository[T any](db *gorm.DB) *InstanceRepository[T] {
	return &InstanceRepository[T]{db: db}
}

// BatchInsert writes a generation batch in one statement. Conflicts on
// (recurring_pattern_id, instance_date) are dropped rather than failed, so
// a concurrent extension of the same pattern loses the race harmlessly.
// Returns the number of rows actually inserted.
func (r *InstanceRepository[T]) BatchInsert(ctx context.Context, rows []*T) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recurring_pattern_id"}, {Name: "instance_date"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return 0, fmt.Errorf("batch insert instances: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// DatesForPattern returns every instance date of a pattern in ascending
// order; the last element is the generation anchor.
func (r *InstanceRepository[T]) DatesForPattern(ctx context.Context, patternID uint) ([]time.Time, error) {
	var dates []time.Time
	if err := r.db.WithContext(ctx).Model(new(T)).
		Where("recurring_pattern_id = ?", patternID).
		Order("instance_date ASC").
		Pluck("instance_date", &dates).Error; err != nil {
		return nil, fmt.Errorf("list instance dates: %w", err)
	}
	return dates, nil
}

func (r *InstanceRepository[T]) CountForPattern(ctx context.Context, patternID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).
		Where("recurring_pattern_id = ?", patternID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count instances: %w", err)
	}
	return count, nil
}

// DeleteForPattern bulk-removes a pattern's instances; the caller is
// responsible for deactivating the pattern so they do not regenerate.
func (r *InstanceRepository[T]) DeleteForPattern(ctx context.Context, patternID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("recurring_pattern_id = ?", patternID).Delete(new(T))
	if res.Error != nil {
		return 0, fmt.Errorf("delete instances: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// ListByOwner returns all of an owner's rows ordered by instance date with
// standalone items first; read-path collapsing happens in the service.
func (r *InstanceRepository[T]) ListByOwner(ctx context.Context, ownerID uint) ([]*T, error) {
	var rows []*T
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("instance_date ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}
	return rows, nil
}

// ListByPattern returns a pattern's rows ordered by instance date.
func (r *InstanceRepository[T]) ListByPattern(ctx context.Context, patternID uint) ([]*T, error) {
	var rows []*T
	if err := r.db.WithContext(ctx).
		Where("recurring_pattern_id = ?", patternID).
		Order("instance_date ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list pattern instances: %w", err)
	}
	return rows, nil
}
