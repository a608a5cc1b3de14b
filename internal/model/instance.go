package model

import "time"

// Occurrence is the read-side view shared by the five instance kinds:
// enough to collapse recurring rows and to key duplicate checks.
type Occurrence interface {
	PatternRef() *uint
	OccurrenceDate() time.Time
	Terminal() bool
}

// Task is a single to-do item, standalone or generated from a pattern.
type Task struct {
	ID      uint `gorm:"primaryKey"`
	OwnerID uint `gorm:"index"`

	Title         string
	Notes         string
	Tags          StringList `gorm:"type:text"`
	Links         StringList `gorm:"type:text"`
	CourseID      *uint      `gorm:"index"`
	Priority      int
	EffortMinutes int
	Checklist     StringList `gorm:"type:text"`

	DueAt       *time.Time
	IsCompleted bool `gorm:"default:false"`
	CompletedAt *time.Time

	RecurringPatternID *uint      `gorm:"index;uniqueIndex:idx_tasks_pattern_date"`
	InstanceDate       *time.Time `gorm:"uniqueIndex:idx_tasks_pattern_date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Task) PatternRef() *uint { return t.RecurringPatternID }
func (t *Task) OccurrenceDate() time.Time {
	if t.InstanceDate == nil {
		return time.Time{}
	}
	return *t.InstanceDate
}
func (t *Task) Terminal() bool { return t.IsCompleted }

// Deadline is a hard due date (assignment hand-in, registration cutoff).
type Deadline struct {
	ID      uint `gorm:"primaryKey"`
	OwnerID uint `gorm:"index"`

	Title    string
	Notes    string
	Tags     StringList `gorm:"type:text"`
	Links    StringList `gorm:"type:text"`
	CourseID *uint      `gorm:"index"`
	Priority int

	DueAt       *time.Time
	IsCompleted bool `gorm:"default:false"`
	CompletedAt *time.Time

	RecurringPatternID *uint      `gorm:"index;uniqueIndex:idx_deadlines_pattern_date"`
	InstanceDate       *time.Time `gorm:"uniqueIndex:idx_deadlines_pattern_date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d *Deadline) PatternRef() *uint { return d.RecurringPatternID }
func (d *Deadline) OccurrenceDate() time.Time {
	if d.InstanceDate == nil {
		return time.Time{}
	}
	return *d.InstanceDate
}
func (d *Deadline) Terminal() bool { return d.IsCompleted }

// Exam always carries an explicit sitting time; templates without one are
// rejected before a pattern is created.
type Exam struct {
	ID      uint `gorm:"primaryKey"`
	OwnerID uint `gorm:"index"`

	Title    string
	Notes    string
	Tags     StringList `gorm:"type:text"`
	Links    StringList `gorm:"type:text"`
	CourseID *uint      `gorm:"index"`

	ExamAt      *time.Time
	IsCompleted bool `gorm:"default:false"`
	CompletedAt *time.Time

	RecurringPatternID *uint      `gorm:"index;uniqueIndex:idx_exams_pattern_date"`
	InstanceDate       *time.Time `gorm:"uniqueIndex:idx_exams_pattern_date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *Exam) PatternRef() *uint { return e.RecurringPatternID }
func (e *Exam) OccurrenceDate() time.Time {
	if e.InstanceDate == nil {
		return time.Time{}
	}
	return *e.InstanceDate
}
func (e *Exam) Terminal() bool { return e.IsCompleted }

// WorkItem is a generic unit of planned work (study session, chore).
type WorkItem struct {
	ID      uint `gorm:"primaryKey"`
	OwnerID uint `gorm:"index"`

	Title         string
	Notes         string
	Tags          StringList `gorm:"type:text"`
	CourseID      *uint      `gorm:"index"`
	Priority      int
	EffortMinutes int
	Checklist     StringList `gorm:"type:text"`

	DueAt       *time.Time
	IsCompleted bool `gorm:"default:false"`
	CompletedAt *time.Time

	RecurringPatternID *uint      `gorm:"index;uniqueIndex:idx_work_items_pattern_date"`
	InstanceDate       *time.Time `gorm:"uniqueIndex:idx_work_items_pattern_date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *WorkItem) PatternRef() *uint { return w.RecurringPatternID }
func (w *WorkItem) OccurrenceDate() time.Time {
	if w.InstanceDate == nil {
		return time.Time{}
	}
	return *w.InstanceDate
}
func (w *WorkItem) Terminal() bool { return w.IsCompleted }

// CalendarEvent is a timed or all-day block on the calendar. Events have
// no completion lifecycle, so they never collapse as terminal.
type CalendarEvent struct {
	ID      uint `gorm:"primaryKey"`
	OwnerID uint `gorm:"index"`

	Title    string
	Notes    string
	Tags     StringList `gorm:"type:text"`
	Links    StringList `gorm:"type:text"`
	CourseID *uint      `gorm:"index"`

	StartAt *time.Time
	EndAt   *time.Time
	AllDay  bool `gorm:"default:false"`

	RecurringPatternID *uint      `gorm:"index;uniqueIndex:idx_calendar_events_pattern_date"`
	InstanceDate       *time.Time `gorm:"uniqueIndex:idx_calendar_events_pattern_date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *CalendarEvent) PatternRef() *uint { return c.RecurringPatternID }
func (c *CalendarEvent) OccurrenceDate() time.Time {
	if c.InstanceDate == nil {
		return time.Time{}
	}
	return *c.InstanceDate
}
func (c *CalendarEvent) Terminal() bool { return false }
