// internal/app/system/week/week.go

// Package week computes the weekly reporting window. Weeks are anchored
// to Monday: a Sunday belongs to the week of the Monday six days before
// it, not the day after. All math is done in the clock's own location;
// no timezone normalization is performed, which is an accepted
// limitation of the reporting window, not a bug to fix here.
package week

import (
	"time"

	"github.com/izo-kin/gcc-fellowship-backend/internal/domain/models"
)

// MondayOf returns the Monday that starts t's week, truncated to
// midnight in t's location.
func MondayOf(t time.Time) time.Time {
	day := int(t.Weekday()) // Sunday = 0 .. Saturday = 6
	offset := day - 1
	if day == 0 {
		offset = 6
	}
	m := t.AddDate(0, 0, -offset)
	return time.Date(m.Year(), m.Month(), m.Day(), 0, 0, 0, 0, m.Location())
}

// DayString formats t as a calendar-day string (YYYY-MM-DD), the form
// attendance facts are keyed by.
func DayString(t time.Time) string {
	return t.Format(models.DateFormat)
}

// ValidDay reports whether s is a well-formed calendar-day string.
func ValidDay(s string) bool {
	_, err := time.Parse(models.DateFormat, s)
	return err == nil
}
