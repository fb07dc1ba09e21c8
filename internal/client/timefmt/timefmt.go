// Package timefmt renders entry timestamps (nanoseconds since the epoch) as
// absolute and relative labels.
package timefmt

import (
	"fmt"
	"time"
)

const absoluteLayout = "Jan 2, 2006, 03:04 PM"

// Formatter carries the clock and zone used for labels, so tests can pin
// both.
type Formatter struct {
	Now      func() time.Time
	Location *time.Location
}

// New returns a Formatter on the system clock and local zone.
func New() Formatter {
	return Formatter{Now: time.Now, Location: time.Local}
}

func (f Formatter) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

func (f Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// AbsoluteLabel formats ns as e.g. "Mar 5, 2024, 02:07 PM".
func (f Formatter) AbsoluteLabel(ns int64) string {
	return time.Unix(0, ns).In(f.location()).Format(absoluteLayout)
}

// RelativeLabel describes the age of ns. Timestamps in the future count as
// "Just now". Hours and days are floored; a week or more falls back to the
// absolute label.
func (f Formatter) RelativeLabel(ns int64) string {
	age := f.now().Sub(time.Unix(0, ns))

	switch {
	case age < time.Hour:
		return "Just now"
	case age < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int64(age/time.Hour))
	case age < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int64(age/(24*time.Hour)))
	default:
		return f.AbsoluteLabel(ns)
	}
}
