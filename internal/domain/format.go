package domain

import (
	"fmt"
	"math"
	"time"
)

// CampusLocationName returns the display name of a campus; unmapped values give "Unknown".
func CampusLocationName(l CampusLocation) string {
	if n, ok := campusLocationNames[l]; ok {
		return n
	}
	return "Unknown"
}

// FormatRelativeTime humanizes t against the current UTC time.
func FormatRelativeTime(t time.Time) string {
	return RelativeTime(t, time.Now().UTC())
}

// RelativeTime humanizes t as seen from now. All counts truncate toward zero.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	hours := d.Hours()
	days := hours / 24
	switch {
	case hours < 1:
		return "Just now"
	case days < 1:
		return fmt.Sprintf("%d hours ago", int(hours))
	case days < 7:
		return fmt.Sprintf("%d days ago", int(days))
	case days < 30:
		return fmt.Sprintf("%d weeks ago", int(days/7))
	default:
		return fmt.Sprintf("%d months ago", int(days/30))
	}
}

// Percentage returns count/total*100 rounded to one decimal, ties to even, or 0 when total is 0.
func Percentage(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.RoundToEven(float64(count)/float64(total)*1000) / 10
}

// EventStatusAt places now relative to the [start, end] window. Both bounds count as Ongoing.
func EventStatusAt(start, end, now time.Time) EventStatus {
	switch {
	case now.Before(start):
		return EventUpcoming
	case now.After(end):
		return EventEnded
	default:
		return EventOngoing
	}
}
