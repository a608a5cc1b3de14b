package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"study-planner/internal/model"
	"study-planner/internal/recurrence"
)

func newTestOrchestrator(e *testEngine) *Orchestrator {
	o := NewOrchestrator(e.patterns, e.generator, zap.NewNop())
	o.now = func() time.Time { return e.now }
	return o
}

func TestExtendAllForOwnerIsolatesFailures(t *testing.T) {
	e := newTestEngine(t, day(2026, time.January, 1))
	o := newTestOrchestrator(e)
	ctx := context.Background()

	healthy := e.createPattern(t, &model.RecurrencePattern{
		OwnerID:        1,
		ItemKind:       model.KindTask,
		RecurrenceType: recurrence.Daily,
		StartDate:      timeRef(day(2026, time.January, 1)),
		IsActive:       true,
		Template:       model.Template{Title: "Journal"},
	})
	// Corrupt template: an exam with no sitting time cannot materialize.
	broken := e.createPattern(t, &model.RecurrencePattern{
		OwnerID:        1,
		ItemKind:       model.KindExam,
		RecurrenceType: recurrence.Weekly,
		DaysOfWeek:     model.IntSet{5},
		StartDate:      timeRef(day(2026, time.January, 1)),
		IsActive:       true,
		Template:       model.Template{Title: "Midterm"},
	})
	alsoHealthy := e.createPattern(t, &model.RecurrencePattern{
		OwnerID:        1,
		ItemKind:       model.KindTask,
		RecurrenceType: recurrence.Weekly,
		DaysOfWeek:     model.IntSet{1},
		StartDate:      timeRef(day(2026, time.January, 1)),
		IsActive:       true,
		Template:       model.Template{Title: "Weekly review"},
	})

	report, err := o.ExtendAllForOwner(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, report.PatternsProcessed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, broken.ID, report.Errors[0].PatternID)
	assert.ErrorIs(t, report.Errors[0].Err, ErrExamTimeRequired)

	// The broken pattern did not block its neighbors, including the one
	// processed after it.
	taskAdapter, _ := e.adapters.Get(model.KindTask)
	count, err := taskAdapter.Count(ctx, healthy.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 8, count) // Jan 1 through Jan 8 inclusive
	count, err = taskAdapter.Count(ctx, alsoHealthy.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count) // only Jan 5 inside the window
	assert.Equal(t, 9, report.InstancesCreated)
}

func TestExtendAllForOwnerScopesToOwner(t *testing.T) {
	e := newTestEngine(t, day(2026, time.January, 1))
	o := newTestOrchestrator(e)
	ctx := context.Background()

	mine := e.createPattern(t, &model.RecurrencePattern{
		OwnerID:        1,
		ItemKind:       model.KindTask,
		RecurrenceType: recurrence.Daily,
		StartDate:      timeRef(day(2026, time.January, 1)),
		IsActive:       true,
		Template:       model.Template{Title: "Mine"},
	})
	theirs := e.createPattern(t, &model.RecurrencePattern{
		OwnerID:        2,
		ItemKind:       model.KindTask,
		RecurrenceType: recurrence.Daily,
		StartDate:      timeRef(day(2026, time.January, 1)),
		IsActive:       true,
		Template:       model.Template{Title: "Theirs"},
	})

	report, err := o.ExtendAllForOwner(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, report.PatternsProcessed)

	taskAdapter, _ := e.adapters.Get(model.KindTask)
	count, err := taskAdapter.Count(ctx, mine.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count) // Jan 1 through Jan 4 inclusive
	count, err = taskAdapter.Count(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSweepAllCoversEveryOwner(t *testing.T) {
	e := newTestEngine(t, day(2026, time.January, 1))
	o := newTestOrchestrator(e)
	ctx := context.Background()

	for owner := uint(1); owner <= 3; owner++ {
		e.createPattern(t, &model.RecurrencePattern{
			OwnerID:        owner,
			ItemKind:       model.KindTask,
			RecurrenceType: recurrence.Daily,
			StartDate:      timeRef(day(2026, time.January, 1)),
			IsActive:       true,
			Template:       model.Template{Title: "Journal"},
		})
	}

	report, err := o.SweepAll(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, report.PatternsProcessed)
	assert.Equal(t, 9, report.InstancesCreated) // three days each, Jan 1-3
	assert.Empty(t, report.Errors)

	// Sweeping again with the same horizon is idempotent.
	report, err = o.SweepAll(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, report.InstancesCreated)
}
