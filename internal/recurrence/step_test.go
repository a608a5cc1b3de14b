package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNext(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		rule   Rule
		want   time.Time
	}{
		{
			name:   "daily steps one day",
			anchor: d(2026, time.January, 5),
			rule:   Rule{Type: Daily},
			want:   d(2026, time.January, 6),
		},
		{
			name:   "weekly without days falls back to seven",
			anchor: d(2026, time.January, 5),
			rule:   Rule{Type: Weekly},
			want:   d(2026, time.January, 12),
		},
		{
			name:   "weekly picks next matching weekday",
			anchor: d(2026, time.January, 5), // Monday
			rule:   Rule{Type: Weekly, DaysOfWeek: []int{1, 3, 5}},
			want:   d(2026, time.January, 7), // Wednesday
		},
		{
			name:   "weekly wraps over the weekend",
			anchor: d(2026, time.January, 10), // Saturday
			rule:   Rule{Type: Weekly, DaysOfWeek: []int{1}},
			want:   d(2026, time.January, 12), // Monday
		},
		{
			name:   "weekly may land on the very next day",
			anchor: d(2026, time.January, 5), // Monday
			rule:   Rule{Type: Weekly, DaysOfWeek: []int{2}},
			want:   d(2026, time.January, 6), // Tuesday
		},
		{
			name:   "weekly with unmatched days falls back to seven",
			anchor: d(2026, time.January, 5),
			rule:   Rule{Type: Weekly, DaysOfWeek: []int{9}},
			want:   d(2026, time.January, 12),
		},
		{
			name:   "biweekly without days falls back to fourteen",
			anchor: d(2026, time.January, 5),
			rule:   Rule{Type: Biweekly},
			want:   d(2026, time.January, 19),
		},
		{
			name:   "biweekly keeps the two week cadence exactly",
			anchor: d(2026, time.January, 5), // Monday
			rule:   Rule{Type: Biweekly, DaysOfWeek: []int{1}},
			want:   d(2026, time.January, 19), // Monday, +14
		},
		{
			name:   "biweekly probes past fourteen days for the weekday",
			anchor: d(2026, time.January, 6), // Tuesday
			rule:   Rule{Type: Biweekly, DaysOfWeek: []int{1}},
			want:   d(2026, time.January, 26), // first Monday on or after +14
		},
		{
			name:   "monthly without days approximates thirty",
			anchor: d(2026, time.January, 5),
			rule:   Rule{Type: Monthly},
			want:   d(2026, time.February, 4),
		},
		{
			name:   "monthly picks smallest later day in month",
			anchor: d(2026, time.January, 5),
			rule:   Rule{Type: Monthly, DaysOfMonth: []int{10, 20}},
			want:   d(2026, time.January, 10),
		},
		{
			name:   "monthly skips past days to the next in set",
			anchor: d(2026, time.January, 15),
			rule:   Rule{Type: Monthly, DaysOfMonth: []int{10, 20}},
			want:   d(2026, time.January, 20),
		},
		{
			name:   "monthly rolls into the next month",
			anchor: d(2026, time.January, 25),
			rule:   Rule{Type: Monthly, DaysOfMonth: []int{10, 20}},
			want:   d(2026, time.February, 10),
		},
		{
			name:   "monthly clamps day 31 in a 30 day month",
			anchor: d(2026, time.April, 1),
			rule:   Rule{Type: Monthly, DaysOfMonth: []int{31}},
			want:   d(2026, time.April, 30),
		},
		{
			name:   "monthly clamped day already passed rolls over",
			anchor: d(2026, time.April, 30),
			rule:   Rule{Type: Monthly, DaysOfMonth: []int{31}},
			want:   d(2026, time.May, 31),
		},
		{
			name:   "monthly clamps in february",
			anchor: d(2026, time.February, 1),
			rule:   Rule{Type: Monthly, DaysOfMonth: []int{31}},
			want:   d(2026, time.February, 28),
		},
		{
			name:   "monthly ignores out of range entries",
			anchor: d(2026, time.January, 5),
			rule:   Rule{Type: Monthly, DaysOfMonth: []int{0, 42, 15}},
			want:   d(2026, time.January, 15),
		},
		{
			name:   "custom uses the interval",
			anchor: d(2026, time.January, 5),
			rule:   Rule{Type: Custom, IntervalDays: 3},
			want:   d(2026, time.January, 8),
		},
		{
			name:   "custom without interval falls back to seven",
			anchor: d(2026, time.January, 5),
			rule:   Rule{Type: Custom},
			want:   d(2026, time.January, 12),
		},
		{
			name:   "unknown family falls back to seven",
			anchor: d(2026, time.January, 5),
			rule:   Rule{Type: Type("yearly")},
			want:   d(2026, time.January, 12),
		},
		{
			name:   "time of day on the anchor is ignored",
			anchor: time.Date(2026, time.January, 5, 17, 30, 0, 0, time.UTC),
			rule:   Rule{Type: Daily},
			want:   d(2026, time.January, 6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.anchor, tt.rule))
		})
	}
}

func TestNextAlwaysAdvances(t *testing.T) {
	rules := []Rule{
		{Type: Daily},
		{Type: Weekly, DaysOfWeek: []int{0, 1, 2, 3, 4, 5, 6}},
		{Type: Biweekly, DaysOfWeek: []int{3}},
		{Type: Monthly, DaysOfMonth: []int{1, 15, 31}},
		{Type: Custom, IntervalDays: 1},
	}
	for _, rule := range rules {
		anchor := d(2026, time.January, 1)
		for i := 0; i < 200; i++ {
			next := Next(anchor, rule)
			if !next.After(anchor) {
				t.Fatalf("rule %+v: Next(%s) = %s did not advance", rule, anchor, next)
			}
			anchor = next
		}
	}
}
