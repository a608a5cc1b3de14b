package service

import "study-planner/internal/model"

// Collapse filters a fetched list for "active list" views: each pattern's
// open instances are reduced to the single earliest one, completed
// instances stay visible, and standalone items pass through untouched.
// Calendar views skip collapsing and render every instance. Input order is
// preserved.
func Collapse[T model.Occurrence](items []T) []T {
	// Earliest open instance per pattern, by index.
	earliest := make(map[uint]int)
	for i, item := range items {
		ref := item.PatternRef()
		if ref == nil || item.Terminal() {
			continue
		}
		prev, ok := earliest[*ref]
		if !ok || item.OccurrenceDate().Before(items[prev].OccurrenceDate()) {
			earliest[*ref] = i
		}
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		ref := item.PatternRef()
		if ref == nil || item.Terminal() || earliest[*ref] == i {
			out = append(out, item)
		}
	}
	return out
}
