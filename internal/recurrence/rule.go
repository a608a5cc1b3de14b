package recurrence

// Type names a recurrence family.
type Type string

const (
	Daily    Type = "daily"
	Weekly   Type = "weekly"
	Biweekly Type = "biweekly"
	Monthly  Type = "monthly"
	Custom   Type = "custom"
)

// Valid reports whether t is a known recurrence family.
func (t Type) Valid() bool {
	switch t {
	case Daily, Weekly, Biweekly, Monthly, Custom:
		return true
	}
	return false
}

// Rule is the stepping input: a recurrence family plus its parameters.
// DaysOfWeek uses 0=Sunday..6=Saturday; DaysOfMonth uses 1..31.
type Rule struct {
	Type         Type
	IntervalDays int
	DaysOfWeek   []int
	DaysOfMonth  []int
}
