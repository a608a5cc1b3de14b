package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"study-planner/internal/model"
)

// CourseRepository manages the per-owner course catalog referenced by
// pattern templates.
type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) GetOrCreate(ctx context.Context, ownerID uint, name string) (*model.Course, error) {
	if name == "" {
		return nil, nil
	}

	var course model.Course
	db := r.db.WithContext(ctx)
	err := db.Where("owner_id = ? AND name = ?", ownerID, name).First(&course).Error
	switch {
	case err == nil:
		return &course, nil
	case err == gorm.ErrRecordNotFound:
		course = model.Course{OwnerID: ownerID, Name: name}
		if err := db.Create(&course).Error; err != nil {
			return nil, fmt.Errorf("create course: %w", err)
		}
		return &course, nil
	default:
		return nil, fmt.Errorf("find course: %w", err)
	}
}

func (r *CourseRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("name ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
