package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// IntSet is a set of small integers (weekday or day-of-month numbers)
// stored as comma-separated text, e.g. "1,3,5".
type IntSet []int

// Scan parses comma-separated text into the set.
func (s *IntSet) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	var raw string
	switch v := src.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("IntSet.Scan: unsupported type %T", src)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*s = IntSet{}
		return nil
	}
	parts := strings.Split(raw, ",")
	set := make(IntSet, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("IntSet.Scan: invalid element %q: %w", p, err)
		}
		set = append(set, n)
	}
	*s = set
	return nil
}

// Value serializes the set as comma-separated text.
func (s IntSet) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ","), nil
}

// StringList is a list of short strings (tags, links, checklist entries)
// stored as a JSON text column.
type StringList []string

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("StringList.Scan: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
