package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"study-planner/internal/model"
	"study-planner/internal/recurrence"
	"study-planner/internal/repository"
)

// PatternInput carries everything needed to create a recurrence pattern.
type PatternInput struct {
	Kind            model.ItemKind
	RecurrenceType  recurrence.Type
	IntervalDays    int
	DaysOfWeek      []int
	DaysOfMonth     []int
	StartDate       *time.Time
	EndDate         *time.Time
	OccurrenceCount *int
	Template        model.Template
}

// PatternService owns the pattern lifecycle: create-with-seed, deactivate,
// bulk instance deletion. Rules are never edited in place; the surrounding
// application models a rule change as deactivate-old plus create-new.
type PatternService struct {
	patterns       *repository.PatternRepository
	adapters       AdapterRegistry
	generator      *Generator
	log            *zap.Logger
	now            func() time.Time
	seedWindowDays int
}

func NewPatternService(patterns *repository.PatternRepository, adapters AdapterRegistry, generator *Generator, seedWindowDays int, log *zap.Logger) *PatternService {
	return &PatternService{
		patterns:       patterns,
		adapters:       adapters,
		generator:      generator,
		log:            log,
		now:            time.Now,
		seedWindowDays: seedWindowDays,
	}
}

// Create validates the rule and template, persists the pattern and runs the
// seed generation. Seeding failure rolls the whole creation back: a pattern
// with zero instances from a partial failure is indistinguishable from one
// that is fully generated.
func (s *PatternService) Create(ctx context.Context, ownerID uint, input PatternInput) (*model.RecurrencePattern, error) {
	adapter, err := s.adapters.Get(input.Kind)
	if err != nil {
		return nil, err
	}
	if !input.RecurrenceType.Valid() {
		return nil, fmt.Errorf("invalid recurrence type %q", input.RecurrenceType)
	}
	if err := adapter.ValidateTemplate(input.Template); err != nil {
		return nil, err
	}

	pattern := &model.RecurrencePattern{
		OwnerID:         ownerID,
		ItemKind:        input.Kind,
		RecurrenceType:  input.RecurrenceType,
		IntervalDays:    input.IntervalDays,
		DaysOfWeek:      input.DaysOfWeek,
		DaysOfMonth:     input.DaysOfMonth,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		OccurrenceCount: input.OccurrenceCount,
		IsActive:        true,
		Template:        input.Template,
	}

	if err := s.patterns.Create(ctx, pattern); err != nil {
		return nil, err
	}

	windowEnd := recurrence.DateOf(s.now()).AddDate(0, 0, s.seedWindowDays)
	if _, err := s.generator.Extend(ctx, pattern, windowEnd); err != nil {
		s.rollbackCreate(ctx, adapter, pattern.ID)
		return nil, fmt.Errorf("seed pattern: %w", err)
	}

	return pattern, nil
}

// rollbackCreate is the compensating action for a failed seed: drop any
// instances that made it in, then the pattern itself.
func (s *PatternService) rollbackCreate(ctx context.Context, adapter KindAdapter, patternID uint) {
	if _, err := adapter.DeleteForPattern(ctx, patternID); err != nil {
		s.log.Error("rollback: delete seed instances failed",
			zap.Uint("pattern_id", patternID), zap.Error(err))
	}
	if err := s.patterns.Delete(ctx, patternID); err != nil {
		s.log.Error("rollback: delete pattern failed",
			zap.Uint("pattern_id", patternID), zap.Error(err))
	}
}

// Deactivate stops generation for a pattern, leaving instances in place.
func (s *PatternService) Deactivate(ctx context.Context, patternID uint) error {
	return s.patterns.Deactivate(ctx, patternID)
}

// DeleteAllInstances bulk-removes a pattern's instances and deactivates the
// pattern so the next extension cannot resurrect them.
func (s *PatternService) DeleteAllInstances(ctx context.Context, patternID uint) error {
	pattern, err := s.patterns.FindByID(ctx, patternID)
	if err != nil {
		return err
	}
	adapter, err := s.adapters.Get(pattern.ItemKind)
	if err != nil {
		return err
	}
	if err := s.patterns.Deactivate(ctx, patternID); err != nil {
		return err
	}
	deleted, err := adapter.DeleteForPattern(ctx, patternID)
	if err != nil {
		return err
	}
	s.log.Info("pattern instances deleted",
		zap.Uint("pattern_id", patternID), zap.Int64("deleted", deleted))
	return nil
}
