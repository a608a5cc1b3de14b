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

const dateKeyLayout = "2006-01-02"

// Generator extends a single pattern's instances up to a window end. It is
// stateless between calls: the anchor and the duplicate set are re-derived
// from storage every time, since concurrent request handlers share no
// in-process state.
type Generator struct {
	patterns *repository.PatternRepository
	courses  *repository.CourseRepository
	adapters AdapterRegistry
	log      *zap.Logger
	now      func() time.Time
}

func NewGenerator(patterns *repository.PatternRepository, courses *repository.CourseRepository, adapters AdapterRegistry, log *zap.Logger) *Generator {
	return &Generator{
		patterns: patterns,
		courses:  courses,
		adapters: adapters,
		log:      log,
		now:      time.Now,
	}
}

// Extend generates all missing instances of pattern with dates inside
// [anchor, windowEnd], honoring the pattern's end conditions. Returns the
// number of rows actually persisted. Inactive patterns are a no-op, and a
// pass that produces nothing writes nothing.
func (g *Generator) Extend(ctx context.Context, pattern *model.RecurrencePattern, windowEnd time.Time) (int, error) {
	if !pattern.IsActive {
		return 0, nil
	}

	adapter, err := g.adapters.Get(pattern.ItemKind)
	if err != nil {
		return 0, fmt.Errorf("pattern %d: %w", pattern.ID, err)
	}

	dates, err := adapter.Dates(ctx, pattern.ID)
	if err != nil {
		return 0, fmt.Errorf("pattern %d: %w", pattern.ID, err)
	}

	existing := make(map[string]bool, len(dates))
	for _, d := range dates {
		existing[d.Format(dateKeyLayout)] = true
	}

	// Anchor on the most recent instance, else the configured start, else
	// now. Stepped back one day so the very first step may legitimately
	// land on the anchor's own day.
	var anchor time.Time
	switch {
	case len(dates) > 0:
		anchor = dates[len(dates)-1]
	case pattern.StartDate != nil:
		anchor = *pattern.StartDate
	default:
		anchor = g.now()
	}
	anchor = recurrence.DateOf(anchor).AddDate(0, 0, -1)

	windowEnd = recurrence.DateOf(windowEnd)
	rule := pattern.Rule()
	total := pattern.InstanceCount

	courseID, err := g.resolveCourse(ctx, pattern)
	if err != nil {
		return 0, fmt.Errorf("pattern %d: %w", pattern.ID, err)
	}

	batch := adapter.NewBatch()
	for {
		candidate := recurrence.Next(anchor, rule)
		if pattern.EndDate != nil && candidate.After(recurrence.DateOf(*pattern.EndDate)) {
			break
		}
		if pattern.OccurrenceCount != nil && total >= *pattern.OccurrenceCount {
			break
		}
		if candidate.After(windowEnd) {
			break
		}

		key := candidate.Format(dateKeyLayout)
		if existing[key] {
			// Defensive: a correctly anchored run never revisits a date,
			// but a repeated or concurrent invocation can.
			anchor = candidate
			continue
		}

		if err := batch.Add(pattern, candidate, courseID); err != nil {
			return 0, fmt.Errorf("pattern %d: materialize %s: %w", pattern.ID, key, err)
		}
		existing[key] = true
		total++
		anchor = candidate
	}

	if batch.Len() == 0 {
		return 0, nil
	}

	inserted, err := batch.Insert(ctx)
	if err != nil {
		return 0, fmt.Errorf("pattern %d: %w", pattern.ID, err)
	}
	if inserted < int64(batch.Len()) {
		g.log.Warn("instance batch partially deduplicated by storage",
			zap.Uint("pattern_id", pattern.ID),
			zap.Int("batched", batch.Len()),
			zap.Int64("inserted", inserted))
	}
	if inserted > 0 {
		if err := g.patterns.RecordGeneration(ctx, pattern, int(inserted), g.now()); err != nil {
			return int(inserted), err
		}
	}
	return int(inserted), nil
}

// resolveCourse maps the template's course name to a per-owner course row,
// creating it on first use.
func (g *Generator) resolveCourse(ctx context.Context, pattern *model.RecurrencePattern) (*uint, error) {
	if pattern.Template.Course == "" {
		return nil, nil
	}
	course, err := g.courses.GetOrCreate(ctx, pattern.OwnerID, pattern.Template.Course)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}
	return &course.ID, nil
}
