package format

import (
	"fmt"
	"time"
)

const (
	dateLayout     = "Jan 02, 2006"
	dateTimeLayout = "Jan 02, 2006 15:04"
	isoDateLayout  = "2006-01-02"
)

// ParseDueDate parses the backend's date-only due date string. An empty
// string yields the zero time and no error.
func ParseDueDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(isoDateLayout, s)
}

// Date renders t as "Jan 02, 2006". Zero times render empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// DateTime renders t as "Jan 02, 2006 15:04". Zero times render empty.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateTimeLayout)
}

// Relative renders the distance between t and now in coarse human units
// with an ago/"in" suffix. Zero times render empty.
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	suffix := "ago"
	if d < 0 {
		d = -d
		suffix = "from now"
	}
	switch {
	case d < time.Minute:
		return "less than a minute " + suffix
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute") + " " + suffix
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour") + " " + suffix
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24), "day") + " " + suffix
	case d < 365*24*time.Hour:
		return plural(int(d.Hours()/(24*30)), "month") + " " + suffix
	default:
		return plural(int(d.Hours()/(24*365)), "year") + " " + suffix
	}
}

func plural(n int, unit string) string {
	if n <= 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// DueSoon reports whether due falls within the next seven days of now.
// Past-due and unset dates are not "soon".
func DueSoon(due, now time.Time) bool {
	if due.IsZero() {
		return false
	}
	diff := due.Sub(now)
	return diff >= 0 && diff <= 7*24*time.Hour
}

// DueToday reports whether due and now fall on the same calendar day.
func DueToday(due, now time.Time) bool {
	if due.IsZero() {
		return false
	}
	return due.Format(isoDateLayout) == now.Format(isoDateLayout)
}
