package model

import (
	"time"

	"study-planner/internal/recurrence"
)

// ItemKind selects which instance table a pattern materializes into.
type ItemKind string

const (
	KindTask          ItemKind = "task"
	KindDeadline      ItemKind = "deadline"
	KindExam          ItemKind = "exam"
	KindWorkItem      ItemKind = "work_item"
	KindCalendarEvent ItemKind = "calendar_event"
)

// RecurrencePattern is a persisted recurrence rule plus the template
// payload stamped onto every generated instance.
type RecurrencePattern struct {
	ID      uint `gorm:"primaryKey"`
	OwnerID uint `gorm:"index"`

	ItemKind       ItemKind        `gorm:"type:varchar(20);index"`
	RecurrenceType recurrence.Type `gorm:"type:varchar(20)"`
	IntervalDays   int             // custom family only
	DaysOfWeek     IntSet          `gorm:"type:text"` // weekly/biweekly; 0=Sunday..6=Saturday
	DaysOfMonth    IntSet          `gorm:"type:text"` // monthly; 1..31

	StartDate *time.Time
	EndDate   *time.Time
	// OccurrenceCount caps instances ever created across all generation
	// calls; InstanceCount is the running total against that cap.
	OccurrenceCount *int
	InstanceCount   int
	LastGenerated   *time.Time

	IsActive bool     `gorm:"default:true"`
	Template Template `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RecurrencePattern) TableName() string { return "recurrence_patterns" }

// Rule extracts the stepping input from the pattern.
func (p *RecurrencePattern) Rule() recurrence.Rule {
	return recurrence.Rule{
		Type:         p.RecurrenceType,
		IntervalDays: p.IntervalDays,
		DaysOfWeek:   p.DaysOfWeek,
		DaysOfMonth:  p.DaysOfMonth,
	}
}
