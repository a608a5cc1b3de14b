package recurrence

import (
	"sort"
	"time"
)

// Next computes the next occurrence date after anchor for the given rule.
// It is pure and total: a malformed rule degrades to a fixed-interval step
// rather than failing. Only the date part of anchor is significant.
func Next(anchor time.Time, rule Rule) time.Time {
	anchor = dateOf(anchor)

	switch rule.Type {
	case Daily:
		return anchor.AddDate(0, 0, 1)
	case Weekly:
		return nextOnWeekday(anchor, rule.DaysOfWeek, 1, 7)
	case Biweekly:
		return nextOnWeekday(anchor, rule.DaysOfWeek, 14, 14)
	case Monthly:
		return nextOnMonthDay(anchor, rule.DaysOfMonth)
	case Custom:
		interval := rule.IntervalDays
		if interval <= 0 {
			interval = 7
		}
		return anchor.AddDate(0, 0, interval)
	default:
		return anchor.AddDate(0, 0, 7)
	}
}

// nextOnWeekday probes day by day starting at anchor+offset and returns the
// first date whose weekday is in days. With an empty or unmatched set it
// falls back to a fixed step of offset days (7 for weekly, 14 for biweekly);
// the biweekly offset also enforces the genuine two-week cadence.
func nextOnWeekday(anchor time.Time, days []int, offset, probes int) time.Time {
	if len(days) == 0 {
		if offset == 1 {
			offset = 7
		}
		return anchor.AddDate(0, 0, offset)
	}
	for i := 0; i < probes; i++ {
		candidate := anchor.AddDate(0, 0, offset+i)
		if containsInt(days, int(candidate.Weekday())) {
			return candidate
		}
	}
	if offset == 1 {
		offset = 7
	}
	return anchor.AddDate(0, 0, offset)
}

// nextOnMonthDay picks the smallest requested day-of-month strictly after
// the anchor's day within the anchor's month, clamping requested days past
// the month's end to its last day (31 in April lands on the 30th). If no
// day qualifies it rolls into the next month. An empty set falls back to a
// flat 30-day step.
func nextOnMonthDay(anchor time.Time, days []int) time.Time {
	wanted := normalizeMonthDays(days)
	if len(wanted) == 0 {
		return anchor.AddDate(0, 0, 30)
	}

	year, month, day := anchor.Date()
	limit := daysInMonth(month, year)
	for _, d := range wanted {
		clamped := d
		if clamped > limit {
			clamped = limit
		}
		if clamped > day {
			return time.Date(year, month, clamped, 0, 0, 0, 0, anchor.Location())
		}
	}

	next := time.Date(year, month, 1, 0, 0, 0, 0, anchor.Location()).AddDate(0, 1, 0)
	limit = daysInMonth(next.Month(), next.Year())
	clamped := wanted[0]
	if clamped > limit {
		clamped = limit
	}
	return time.Date(next.Year(), next.Month(), clamped, 0, 0, 0, 0, anchor.Location())
}

// normalizeMonthDays sorts the set and drops out-of-range entries.
func normalizeMonthDays(days []int) []int {
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d >= 1 && d <= 31 {
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}

func containsInt(set []int, n int) bool {
	for _, v := range set {
		if v == n {
			return true
		}
	}
	return false
}

// dateOf truncates to midnight, keeping the location.
func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DateOf exposes the midnight truncation used throughout generation so all
// instance dates compare exactly.
func DateOf(t time.Time) time.Time { return dateOf(t) }

// daysInMonth returns the day count of the given month.
func daysInMonth(month time.Month, year int) int {
	// Move to next month, roll back a day.
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := firstOfMonth.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return lastOfMonth.Day()
}
