package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"study-planner/internal/model"
	"study-planner/internal/recurrence"
	"study-planner/internal/repository"
)

// Report summarizes one orchestrated generation pass.
type Report struct {
	PatternsProcessed int
	InstancesCreated  int
	Errors            []PatternError
}

// PatternError records a single pattern's failure without failing the pass.
type PatternError struct {
	PatternID uint
	Err       error
}

// Orchestrator fans the generator out across patterns. One pattern's
// failure never blocks the rest: a corrupt rule must not make an owner's
// whole list fail to load.
type Orchestrator struct {
	patterns  *repository.PatternRepository
	generator *Generator
	log       *zap.Logger
	now       func() time.Time
}

func NewOrchestrator(patterns *repository.PatternRepository, generator *Generator, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		patterns:  patterns,
		generator: generator,
		log:       log,
		now:       time.Now,
	}
}

// ExtendAllForOwner extends every active pattern of one owner up to
// now + windowDays. Called before list reads; callers pick the window for
// their view (short for active lists, long for calendar scrolling).
func (o *Orchestrator) ExtendAllForOwner(ctx context.Context, ownerID uint, windowDays int) (Report, error) {
	patterns, err := o.patterns.ListActiveByOwner(ctx, ownerID)
	if err != nil {
		return Report{}, err
	}
	return o.extendAll(ctx, patterns, windowDays), nil
}

// SweepAll extends every active pattern of every owner; the maintenance
// sweep deployment runs this on a schedule.
func (o *Orchestrator) SweepAll(ctx context.Context, windowDays int) (Report, error) {
	patterns, err := o.patterns.ListActive(ctx)
	if err != nil {
		return Report{}, err
	}
	report := o.extendAll(ctx, patterns, windowDays)
	o.log.Info("sweep finished",
		zap.Int("patterns", report.PatternsProcessed),
		zap.Int("created", report.InstancesCreated),
		zap.Int("failed", len(report.Errors)))
	return report, nil
}

func (o *Orchestrator) extendAll(ctx context.Context, patterns []model.RecurrencePattern, windowDays int) Report {
	windowEnd := recurrence.DateOf(o.now()).AddDate(0, 0, windowDays)

	var report Report
	for i := range patterns {
		pattern := &patterns[i]
		report.PatternsProcessed++
		created, err := o.generator.Extend(ctx, pattern, windowEnd)
		report.InstancesCreated += created
		if err != nil {
			report.Errors = append(report.Errors, PatternError{PatternID: pattern.ID, Err: err})
			o.log.Warn("pattern extension failed",
				zap.Uint("pattern_id", pattern.ID),
				zap.Uint("owner_id", pattern.OwnerID),
				zap.Error(err))
		}
	}
	return report
}
