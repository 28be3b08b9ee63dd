// Package billing computes subscription payment dates from a billing cycle.
//
// Month-based cycles (monthly, quarterly, yearly) keep the day of month when
// the target month has it and clamp to the last day of the target month when
// it does not: Jan 31 + 1 month is Feb 29 in a leap year and Feb 28 otherwise.
// The clamped day is carried forward, so a subscription that rolled from
// Jan 31 to Feb 29 continues on Mar 29.
package billing

import "time"

// Cycle is the recurrence interval of a subscription.
type Cycle string

const (
	Weekly    Cycle = "weekly"
	Monthly   Cycle = "monthly"
	Quarterly Cycle = "quarterly"
	Yearly    Cycle = "yearly"
)

// Cycles lists every supported cycle.
var Cycles = []Cycle{Weekly, Monthly, Quarterly, Yearly}

// Valid reports whether c is a supported cycle.
func (c Cycle) Valid() bool {
	switch c {
	case Weekly, Monthly, Quarterly, Yearly:
		return true
	}
	return false
}

// Display returns the human readable label used in API responses.
func (c Cycle) Display() string {
	switch c {
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	case Quarterly:
		return "Quarterly"
	case Yearly:
		return "Yearly"
	}
	return string(c)
}

// Advance returns the next occurrence after date for the given cycle.
// Unknown cycles advance monthly.
func Advance(date time.Time, cycle Cycle) time.Time {
	switch cycle {
	case Weekly:
		return date.AddDate(0, 0, 7)
	case Quarterly:
		return addMonths(date, 3)
	case Yearly:
		return addMonths(date, 12)
	default:
		return addMonths(date, 1)
	}
}

// Upcoming returns n consecutive payment dates starting at from (inclusive).
func Upcoming(from time.Time, cycle Cycle, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	dates := make([]time.Time, 0, n)
	current := from
	for i := 0; i < n; i++ {
		dates = append(dates, current)
		current = Advance(current, cycle)
	}
	return dates
}

func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	// Normalise via the first of the month so AddDate never overflows.
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
