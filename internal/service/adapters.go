package service

import (
	"time"

	"gorm.io/gorm"

	"study-planner/internal/model"
	"study-planner/internal/repository"
)

// endOfDay is the due time applied when a due-style template names none.
const endOfDay = "23:59"

// AdapterRegistry maps item kinds to their adapters.
type AdapterRegistry map[model.ItemKind]KindAdapter

// NewAdapters wires the five kind adapters over one database handle.
func NewAdapters(db *gorm.DB) AdapterRegistry {
	adapters := []KindAdapter{
		NewTaskAdapter(db),
		NewDeadlineAdapter(db),
		NewExamAdapter(db),
		NewWorkItemAdapter(db),
		NewCalendarEventAdapter(db),
	}
	reg := make(AdapterRegistry, len(adapters))
	for _, a := range adapters {
		reg[a.Kind()] = a
	}
	return reg
}

// Get returns the adapter for kind, or ErrUnknownKind.
func (r AdapterRegistry) Get(kind model.ItemKind) (KindAdapter, error) {
	a, ok := r[kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	return a, nil
}

func validateDueTemplate(tpl model.Template) error {
	if tpl.Title == "" {
		return ErrTitleRequired
	}
	if tpl.TimeOfDay != "" {
		if _, _, err := parseTimeOfDay(tpl.TimeOfDay); err != nil {
			return err
		}
	}
	return nil
}

func NewTaskAdapter(db *gorm.DB) KindAdapter {
	return &kindAdapter[model.Task]{
		kind:     model.KindTask,
		repo:     repository.NewInstanceRepository[model.Task](db),
		validate: validateDueTemplate,
		build: func(p *model.RecurrencePattern, day time.Time, courseID *uint) (*model.Task, error) {
			dueAt, err := mergeTime(day, p.Template.TimeOfDay, endOfDay)
			if err != nil {
				return nil, err
			}
			return &model.Task{
				OwnerID:            p.OwnerID,
				Title:              p.Template.Title,
				Notes:              p.Template.Notes,
				Tags:               p.Template.Tags,
				Links:              p.Template.Links,
				CourseID:           courseID,
				Priority:           p.Template.Priority,
				EffortMinutes:      p.Template.EffortMinutes,
				Checklist:          p.Template.Checklist,
				DueAt:              &dueAt,
				RecurringPatternID: &p.ID,
				InstanceDate:       dateRef(day),
			}, nil
		},
	}
}

func NewDeadlineAdapter(db *gorm.DB) KindAdapter {
	return &kindAdapter[model.Deadline]{
		kind:     model.KindDeadline,
		repo:     repository.NewInstanceRepository[model.Deadline](db),
		validate: validateDueTemplate,
		build: func(p *model.RecurrencePattern, day time.Time, courseID *uint) (*model.Deadline, error) {
			dueAt, err := mergeTime(day, p.Template.TimeOfDay, endOfDay)
			if err != nil {
				return nil, err
			}
			return &model.Deadline{
				OwnerID:            p.OwnerID,
				Title:              p.Template.Title,
				Notes:              p.Template.Notes,
				Tags:               p.Template.Tags,
				Links:              p.Template.Links,
				CourseID:           courseID,
				Priority:           p.Template.Priority,
				DueAt:              &dueAt,
				RecurringPatternID: &p.ID,
				InstanceDate:       dateRef(day),
			}, nil
		},
	}
}

func NewExamAdapter(db *gorm.DB) KindAdapter {
	return &kindAdapter[model.Exam]{
		kind: model.KindExam,
		repo: repository.NewInstanceRepository[model.Exam](db),
		validate: func(tpl model.Template) error {
			if tpl.Title == "" {
				return ErrTitleRequired
			}
			if tpl.TimeOfDay == "" {
				return ErrExamTimeRequired
			}
			_, _, err := parseTimeOfDay(tpl.TimeOfDay)
			return err
		},
		build: func(p *model.RecurrencePattern, day time.Time, courseID *uint) (*model.Exam, error) {
			if p.Template.TimeOfDay == "" {
				return nil, ErrExamTimeRequired
			}
			examAt, err := mergeTime(day, p.Template.TimeOfDay, "")
			if err != nil {
				return nil, err
			}
			return &model.Exam{
				OwnerID:            p.OwnerID,
				Title:              p.Template.Title,
				Notes:              p.Template.Notes,
				Tags:               p.Template.Tags,
				Links:              p.Template.Links,
				CourseID:           courseID,
				ExamAt:             &examAt,
				RecurringPatternID: &p.ID,
				InstanceDate:       dateRef(day),
			}, nil
		},
	}
}

func NewWorkItemAdapter(db *gorm.DB) KindAdapter {
	return &kindAdapter[model.WorkItem]{
		kind:     model.KindWorkItem,
		repo:     repository.NewInstanceRepository[model.WorkItem](db),
		validate: validateDueTemplate,
		build: func(p *model.RecurrencePattern, day time.Time, courseID *uint) (*model.WorkItem, error) {
			dueAt, err := mergeTime(day, p.Template.TimeOfDay, endOfDay)
			if err != nil {
				return nil, err
			}
			return &model.WorkItem{
				OwnerID:            p.OwnerID,
				Title:              p.Template.Title,
				Notes:              p.Template.Notes,
				Tags:               p.Template.Tags,
				CourseID:           courseID,
				Priority:           p.Template.Priority,
				EffortMinutes:      p.Template.EffortMinutes,
				Checklist:          p.Template.Checklist,
				DueAt:              &dueAt,
				RecurringPatternID: &p.ID,
				InstanceDate:       dateRef(day),
			}, nil
		},
	}
}

func NewCalendarEventAdapter(db *gorm.DB) KindAdapter {
	return &kindAdapter[model.CalendarEvent]{
		kind: model.KindCalendarEvent,
		repo: repository.NewInstanceRepository[model.CalendarEvent](db),
		validate: func(tpl model.Template) error {
			if tpl.Title == "" {
				return ErrTitleRequired
			}
			if tpl.AllDay {
				return nil
			}
			if tpl.TimeOfDay != "" {
				if _, _, err := parseTimeOfDay(tpl.TimeOfDay); err != nil {
					return err
				}
			}
			if tpl.EndTimeOfDay != "" {
				if _, _, err := parseTimeOfDay(tpl.EndTimeOfDay); err != nil {
					return err
				}
			}
			return nil
		},
		build: func(p *model.RecurrencePattern, day time.Time, courseID *uint) (*model.CalendarEvent, error) {
			event := &model.CalendarEvent{
				OwnerID:            p.OwnerID,
				Title:              p.Template.Title,
				Notes:              p.Template.Notes,
				Tags:               p.Template.Tags,
				Links:              p.Template.Links,
				CourseID:           courseID,
				RecurringPatternID: &p.ID,
				InstanceDate:       dateRef(day),
			}
			// No time of day means the event spans the whole day.
			if p.Template.AllDay || p.Template.TimeOfDay == "" {
				event.AllDay = true
				start := day
				event.StartAt = &start
				return event, nil
			}
			startAt, err := mergeTime(day, p.Template.TimeOfDay, "")
			if err != nil {
				return nil, err
			}
			event.StartAt = &startAt
			if p.Template.EndTimeOfDay != "" {
				endAt, err := mergeTime(day, p.Template.EndTimeOfDay, "")
				if err != nil {
					return nil, err
				}
				event.EndAt = &endAt
			}
			return event, nil
		},
	}
}

func dateRef(day time.Time) *time.Time {
	d := day
	return &d
}
