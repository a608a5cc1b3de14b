package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"study-planner/internal/model"
)

// PatternRepository handles persistence of recurrence patterns. Rules are
// never updated in place; lifecycle changes go through Deactivate.
type PatternRepository struct {
	db *gorm.DB
}

func NewPatternRepository(db *gorm.DB) *PatternRepository {
	return &PatternRepository{db: db}
}

func (r *PatternRepository) Create(ctx context.Context, pattern *model.RecurrencePattern) error {
	if err := r.db.WithContext(ctx).Create(pattern).Error; err != nil {
		return fmt.Errorf("create pattern: %w", err)
	}
	return nil
}

func (r *PatternRepository) FindByID(ctx context.Context, patternID uint) (*model.RecurrencePattern, error) {
	var pattern model.RecurrencePattern
	if err := r.db.WithContext(ctx).First(&pattern, patternID).Error; err != nil {
		return nil, err
	}
	return &pattern, nil
}

// ListActiveByOwner returns every active pattern for one owner.
func (r *PatternRepository) ListActiveByOwner(ctx context.Context, ownerID uint) ([]model.RecurrencePattern, error) {
	var patterns []model.RecurrencePattern
	if err := r.db.WithContext(ctx).Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("id ASC").
		Find(&patterns).Error; err != nil {
		return nil, err
	}
	return patterns, nil
}

// ListActive returns every active pattern across all owners, for the
// maintenance sweep.
func (r *PatternRepository) ListActive(ctx context.Context) ([]model.RecurrencePattern, error) {
	var patterns []model.RecurrencePattern
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).
		Order("owner_id ASC, id ASC").
		Find(&patterns).Error; err != nil {
		return nil, err
	}
	return patterns, nil
}

// RecordGeneration advances the running instance total and stamps the last
// successful pass. Callers invoke it only when a pass actually created
// rows, so exhausted patterns are not rewritten on every read.
func (r *PatternRepository) RecordGeneration(ctx context.Context, pattern *model.RecurrencePattern, created int, at time.Time) error {
	pattern.InstanceCount += created
	pattern.LastGenerated = &at
	if err := r.db.WithContext(ctx).Model(pattern).
		Updates(map[string]interface{}{
			"instance_count": pattern.InstanceCount,
			"last_generated": pattern.LastGenerated,
		}).Error; err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	return nil
}

// Deactivate turns generation off for a pattern; existing instances are
// untouched and the flag is never flipped back.
func (r *PatternRepository) Deactivate(ctx context.Context, patternID uint) error {
	if err := r.db.WithContext(ctx).Model(&model.RecurrencePattern{}).
		Where("id = ?", patternID).
		Update("is_active", false).Error; err != nil {
		return fmt.Errorf("deactivate pattern: %w", err)
	}
	return nil
}

// Delete removes a pattern row. Used only as the compensating action when
// seeding a new pattern fails.
func (r *PatternRepository) Delete(ctx context.Context, patternID uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.RecurrencePattern{}, patternID).Error; err != nil {
		return fmt.Errorf("delete pattern: %w", err)
	}
	return nil
}
