package nutrition

import "time"

// DateLayout is the civil date format used everywhere a MealLog date or a
// calendar cell key appears. No timezone: a date names a day, not an instant.
const DateLayout = "2006-01-02"

// weekdayNames is indexed by time.Weekday (Sunday == 0). Indexing the array
// keeps the mapping exhaustive by construction; there is no default branch
// to fall through to.
var weekdayNames = [7]string{
	time.Sunday:    "Sunday",
	time.Monday:    "Monday",
	time.Tuesday:   "Tuesday",
	time.Wednesday: "Wednesday",
	time.Thursday:  "Thursday",
	time.Friday:    "Friday",
	time.Saturday:  "Saturday",
}

// WeekdayName returns the weekday name ("Monday".."Sunday") for a civil date.
func WeekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

// Weekdays lists the seven names Monday-first, the order goals are seeded
// and edited in.
func Weekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}

// IsWeekday reports whether name is one of the seven weekday names.
func IsWeekday(name string) bool {
	for _, d := range weekdayNames {
		if d == name {
			return true
		}
	}
	return false
}

// ParseDate parses a "YYYY-MM-DD" civil date in UTC so the weekday is the
// same no matter where the process runs.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a time as a civil date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
