package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"study-planner/internal/model"
	"study-planner/internal/repository"
)

// KindAdapter binds the generic generation loop to one instance kind: how
// its template is validated, how a template merges onto a date, and which
// table the rows land in. One engine, five thin adapters.
type KindAdapter interface {
	Kind() model.ItemKind
	// ValidateTemplate rejects templates that cannot materialize, before
	// a pattern is ever persisted.
	ValidateTemplate(tpl model.Template) error
	// NewBatch starts collecting rows for one generation pass.
	NewBatch() InstanceBatch
	Dates(ctx context.Context, patternID uint) ([]time.Time, error)
	Count(ctx context.Context, patternID uint) (int64, error)
	DeleteForPattern(ctx context.Context, patternID uint) (int64, error)
}

// InstanceBatch buffers materialized rows for a single batch write.
type InstanceBatch interface {
	// Add materializes the pattern's template onto day and buffers the row.
	Add(pattern *model.RecurrencePattern, day time.Time, courseID *uint) error
	Len() int
	// Insert persists the buffered rows, returning rows actually written
	// (conflicts with a concurrently generated duplicate are dropped).
	Insert(ctx context.Context) (int64, error)
}

// kindAdapter is the shared adapter implementation; each kind supplies a
// validate and build function over the generic repository.
type kindAdapter[T any] struct {
	kind     model.ItemKind
	repo     *repository.InstanceRepository[T]
	validate func(tpl model.Template) error
	build    func(pattern *model.RecurrencePattern, day time.Time, courseID *uint) (*T, error)
}

func (a *kindAdapter[T]) Kind() model.ItemKind { return a.kind }

func (a *kindAdapter[T]) ValidateTemplate(tpl model.Template) error {
	return a.validate(tpl)
}

func (a *kindAdapter[T]) NewBatch() InstanceBatch {
	return &instanceBatch[T]{adapter: a}
}

func (a *kindAdapter[T]) Dates(ctx context.Context, patternID uint) ([]time.Time, error) {
	return a.repo.DatesForPattern(ctx, patternID)
}

func (a *kindAdapter[T]) Count(ctx context.Context, patternID uint) (int64, error) {
	return a.repo.CountForPattern(ctx, patternID)
}

func (a *kindAdapter[T]) DeleteForPattern(ctx context.Context, patternID uint) (int64, error) {
	return a.repo.DeleteForPattern(ctx, patternID)
}

type instanceBatch[T any] struct {
	adapter *kindAdapter[T]
	rows    []*T
}

func (b *instanceBatch[T]) Add(pattern *model.RecurrencePattern, day time.Time, courseID *uint) error {
	row, err := b.adapter.build(pattern, day, courseID)
	if err != nil {
		return err
	}
	b.rows = append(b.rows, row)
	return nil
}

func (b *instanceBatch[T]) Len() int { return len(b.rows) }

func (b *instanceBatch[T]) Insert(ctx context.Context) (int64, error) {
	return b.adapter.repo.BatchInsert(ctx, b.rows)
}

// parseTimeOfDay validates an "HH:MM" string and returns its components.
func parseTimeOfDay(timeStr string) (hour, minute int, err error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", timeStr)
	}
	return hour, minute, nil
}

// mergeTime combines a pure date with an "HH:MM" time of day. An empty
// string falls back to def ("23:59" for due-style items: due by end of day).
func mergeTime(day time.Time, timeStr, def string) (time.Time, error) {
	if timeStr == "" {
		timeStr = def
	}
	hour, minute, err := parseTimeOfDay(timeStr)
	if err != nil {
		return time.Time{}, err
	}
	year, month, d := day.Date()
	return time.Date(year, month, d, hour, minute, 0, 0, day.Location()), nil
}
