package entities

import (
	"fmt"
	"time"
)

// DateLabel is the human-readable day label shared by clients, e.g.
// "March 3rd 2024". It is display-only; queries bucket by DayRange.
type DateLabel string

// nolint: gochecknoglobals
var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatDateLabel renders a calendar date as a DateLabel.
func FormatDateLabel(year, month, day int) DateLabel {
	return DateLabel(fmt.Sprintf("%s %d%s %d", monthNames[month-1], day, ordinalSuffix(day), year))
}

// ordinalSuffix returns the English ordinal suffix for a day of month.
// 11, 12 and 13 take "th" despite their last digit.
func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}

	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// ValidDate reports whether year, month and day form a real calendar date.
func ValidDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// DayRange is a half-open UTC interval [From, To) covering one calendar day.
type DayRange struct {
	From time.Time
	To   time.Time
}

// NewDayRange returns the UTC day interval for a calendar date.
func NewDayRange(year, month, day int) DayRange {
	from := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	return DayRange{
		From: from,
		To:   from.Add(24 * time.Hour),
	}
}
