// Package period resolves statistics periods into concrete date windows.
package period

import (
	"time"

	apperrors "gagyebu/internal/errors"
)

// Kind is the statistics period granularity.
type Kind string

const (
	Monthly Kind = "monthly"
	Yearly  Kind = "yearly"
)

// ParseKind converts a query-string value into a Kind.
func ParseKind(v string) (Kind, error) {
	switch Kind(v) {
	case Monthly, Yearly:
		return Kind(v), nil
	default:
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be 'monthly' or 'yearly'")
	}
}

// Window holds the inclusive date range for a period and for the
// immediately preceding comparison period. All comparisons against a
// window use closed-interval semantics on both ends.
type Window struct {
	CurrentStart  time.Time
	CurrentEnd    time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
}

// Resolve computes the window for the given period. Monthly periods require
// a month value (1-12) and fail with INVALID_PERIOD before any data access.
func Resolve(kind Kind, year int, month *int) (Window, error) {
	if kind == Monthly {
		if month == nil {
			return Window{}, apperrors.ErrInvalidPeriod
		}
		if *month < 1 || *month > 12 {
			return Window{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "month must be between 1 and 12")
		}
		return monthWindow(year, *month), nil
	}
	return yearWindow(year), nil
}

func monthWindow(year, month int) Window {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := endOfMonth(start)

	prevStart := start.AddDate(0, -1, 0) // day 1, so no clamping concerns
	prevEnd := endOfMonth(prevStart)

	return Window{
		CurrentStart:  start,
		CurrentEnd:    end,
		PreviousStart: prevStart,
		PreviousEnd:   prevEnd,
	}
}

func yearWindow(year int) Window {
	return Window{
		CurrentStart:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		CurrentEnd:    time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
		PreviousStart: time.Date(year-1, time.January, 1, 0, 0, 0, 0, time.UTC),
		PreviousEnd:   time.Date(year-1, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
}

// endOfMonth returns the last second of the month containing start.
func endOfMonth(start time.Time) time.Time {
	firstOfNext := start.AddDate(0, 1, 0)
	lastDay := firstOfNext.AddDate(0, 0, -1)
	return time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(), 23, 59, 59, 0, lastDay.Location())
}
