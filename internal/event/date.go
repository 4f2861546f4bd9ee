package event

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the strict day-month-year layout used by the events and
// announcements tables, e.g. "25-Oct-2026" or "5-oct-2026".
const DateLayout = "2-Jan-2006"

// looseLayouts are tried in order by ParseLooseDate.
var looseLayouts = []string{
	DateLayout,
	"2006-01-02",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ErrEmptyDate is returned for blank date cells.
var ErrEmptyDate = errors.New("empty date")

// DateError reports a date cell that could not be parsed.
type DateError struct {
	// Row is the 1-based data row number.
	Row   int
	Value string
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("row %d: invalid date %q: %v", e.Row, e.Value, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}

// ParseDate parses a DateLayout date. The month abbreviation is case-insensitive.
func ParseDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, ErrEmptyDate
	}
	return time.Parse(DateLayout, text)
}

// ParseLooseDate parses the first matching layout of looseLayouts.
func ParseLooseDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, ErrEmptyDate
	}

	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date layout")
}

// Today returns the calendar date of now at midnight UTC, comparable with
// parsed row dates.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// IsUpcoming reports whether the event is strictly after today.
func (e Event) IsUpcoming(today time.Time) bool {
	return e.Date.After(today)
}

// IsPublished reports whether the announcement is dated on or before today.
func (a Announcement) IsPublished(today time.Time) bool {
	return !a.Date.After(today)
}
