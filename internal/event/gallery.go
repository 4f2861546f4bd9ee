package event

import (
	"time"
)

// Semester is a fixed month window used to group gallery events.
type Semester int

const (
	// Autumn covers August through December.
	Autumn Semester = iota
	// Spring covers January through May.
	Spring
)

func (s Semester) String() string {
	switch s {
	case Autumn:
		return "Autumn"
	case Spring:
		return "Spring"
	default:
		return "Unknown"
	}
}

// Contains reports whether month falls in the semester window.
func (s Semester) Contains(month time.Month) bool {
	switch s {
	case Autumn:
		return month >= time.August && month <= time.December
	case Spring:
		return month >= time.January && month <= time.May
	default:
		return false
	}
}

// GalleryGroup is the events of one semester of one year, newest first.
type GalleryGroup struct {
	Year     int
	Semester Semester
	Events   []GalleryEvent
}

// GroupGallery sorts events newest first and groups them by year and semester.
// Years appear in the order they are first encountered after sorting; within
// a year Autumn comes before Spring. Empty groups are omitted, and June and
// July events belong to no semester and are dropped.
func GroupGallery(events []GalleryEvent) []GalleryGroup {
	sorted := make([]GalleryEvent, len(events))
	copy(sorted, events)
	sortByDate(sorted, func(e GalleryEvent) time.Time { return e.Date }, true)

	var years []int
	seen := make(map[int]bool)
	for _, evt := range sorted {
		if y := evt.Date.Year(); !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}

	var groups []GalleryGroup
	for _, year := range years {
		for _, sem := range []Semester{Autumn, Spring} {
			var members []GalleryEvent
			for _, evt := range sorted {
				if evt.Date.Year() == year && sem.Contains(evt.Date.Month()) {
					members = append(members, evt)
				}
			}
			if len(members) > 0 {
				groups = append(groups, GalleryGroup{Year: year, Semester: sem, Events: members})
			}
		}
	}
	return groups
}
