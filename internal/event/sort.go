package event

import (
	"sort"
	"time"
)

// Upcoming returns the events strictly after today, soonest first. Rows on
// the same date keep their file order.
func Upcoming(events []Event, today time.Time) []Event {
	kept := make([]Event, 0, len(events))
	for _, evt := range events {
		if evt.IsUpcoming(today) {
			kept = append(kept, evt)
		}
	}
	sortByDate(kept, func(e Event) time.Time { return e.Date }, false)
	return kept
}

// Recent returns at most limit announcements dated on or before today,
// newest first.
func Recent(anns []Announcement, today time.Time, limit int) []Announcement {
	kept := make([]Announcement, 0, len(anns))
	for _, ann := range anns {
		if ann.IsPublished(today) {
			kept = append(kept, ann)
		}
	}
	sortByDate(kept, func(a Announcement) time.Time { return a.Date }, true)
	if limit >= 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

// sortByDate orders items by date, keeping the relative order of equal dates.
func sortByDate[T any](items []T, date func(T) time.Time, descending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if descending {
			return date(items[i]).After(date(items[j]))
		}
		return date(items[i]).Before(date(items[j]))
	})
}
