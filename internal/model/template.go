package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Template holds the non-date fields copied onto every instance of a
// pattern at creation time. It is stored as a JSON text column and is
// opaque to the generation loop; only the per-kind adapters interpret it.
// Later edits never propagate to already-created instances.
type Template struct {
	Title         string     `json:"title"`
	Notes         string     `json:"notes,omitempty"`
	Tags          StringList `json:"tags,omitempty"`
	Links         StringList `json:"links,omitempty"`
	Course        string     `json:"course,omitempty"`
	Priority      int        `json:"priority,omitempty"`
	EffortMinutes int        `json:"effort_minutes,omitempty"`
	Checklist     StringList `json:"checklist,omitempty"`

	// TimeOfDay is "HH:MM"; empty means the kind-specific default applies.
	TimeOfDay    string `json:"time_of_day,omitempty"`
	EndTimeOfDay string `json:"end_time_of_day,omitempty"`
	AllDay       bool   `json:"all_day,omitempty"`
}

func (t *Template) Scan(src interface{}) error {
	if src == nil {
		*t = Template{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("Template.Scan: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*t = Template{}
		return nil
	}
	return json.Unmarshal(raw, t)
}

func (t Template) Value() (driver.Value, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
