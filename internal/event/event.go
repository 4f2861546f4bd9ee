package event

import (
	"strings"
	"time"

	"github.com/sase-site/sitegen/internal/logger"
	"github.com/sase-site/sitegen/internal/sheet"
)

// Column names used by the CSV sources.
const (
	ColName        = "Name"
	ColDate        = "Date"
	ColKind        = "Kind"
	ColTime        = "Time"
	ColLocation    = "Location"
	ColDescription = "Description"
	ColImage       = "Image"
	ColLinkButton  = "Link Button"
	ColLink        = "Link"
)

var (
	// EventColumns are required for calendar rendering.
	EventColumns = []string{ColName, ColDate, ColKind, ColTime, ColLocation, ColDescription}
	// PreviewColumns are required for the landing page previews.
	PreviewColumns = []string{ColName, ColDate, ColDescription}
	// AnnouncementColumns are required for the landing page announcements.
	AnnouncementColumns = []string{ColName, ColDate, ColDescription, ColImage, ColLinkButton, ColLink}
	// GalleryColumns are required for the gallery.
	GalleryColumns = []string{ColName, ColDate, ColDescription}
)

// Event is a row of the upcoming events table.
type Event struct {
	// Seq is the 1-based row number in the source file. It stays attached
	// to the row through filtering and sorting and ties a card to its modal.
	Seq         int
	Name        string
	Date        time.Time
	Kind        string
	Time        string
	Location    string
	Description string
}

// Announcement is a row of the announcements table.
type Announcement struct {
	Name        string
	Date        time.Time
	Description string
	Image       string
	LinkLabel   string
	Link        string
}

// GalleryEvent is a row of the gallery events table.
type GalleryEvent struct {
	Name        string
	Date        time.Time
	Description string
}

// EventsFromTable builds events, checking that the given columns exist.
// Columns that are not required read as empty strings. Rows with a blank date
// are dropped; Seq still counts them so it matches the row's file position.
func EventsFromTable(t *sheet.Table, required []string) ([]Event, error) {
	if err := t.Require(required...); err != nil {
		return nil, err
	}

	events := make([]Event, 0, t.Len())
	for _, row := range t.Rows() {
		date, ok, err := parseCell(row, ParseDate)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		events = append(events, Event{
			Seq:         row.Index + 1,
			Name:        row.Get(ColName),
			Date:        date,
			Kind:        row.Get(ColKind),
			Time:        row.Get(ColTime),
			Location:    row.Get(ColLocation),
			Description: row.Get(ColDescription),
		})
	}
	return events, nil
}

// AnnouncementsFromTable builds announcements, dropping rows with a blank date.
func AnnouncementsFromTable(t *sheet.Table) ([]Announcement, error) {
	if err := t.Require(AnnouncementColumns...); err != nil {
		return nil, err
	}

	anns := make([]Announcement, 0, t.Len())
	for _, row := range t.Rows() {
		date, ok, err := parseCell(row, ParseDate)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		anns = append(anns, Announcement{
			Name:        row.Get(ColName),
			Date:        date,
			Description: row.Get(ColDescription),
			Image:       row.Get(ColImage),
			LinkLabel:   row.Get(ColLinkButton),
			Link:        row.Get(ColLink),
		})
	}
	return anns, nil
}

// GalleryFromTable builds gallery events. Gallery dates accept any layout
// known to ParseLooseDate; rows with a blank date are dropped.
func GalleryFromTable(t *sheet.Table) ([]GalleryEvent, error) {
	if err := t.Require(GalleryColumns...); err != nil {
		return nil, err
	}

	events := make([]GalleryEvent, 0, t.Len())
	for _, row := range t.Rows() {
		date, ok, err := parseCell(row, ParseLooseDate)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		events = append(events, GalleryEvent{
			Name:        row.Get(ColName),
			Date:        date,
			Description: row.Get(ColDescription),
		})
	}
	return events, nil
}

// parseCell parses the Date cell of row. A blank cell reports ok=false and the
// row is dropped; any other unparseable text is a DateError.
func parseCell(row sheet.Row, parse func(string) (time.Time, error)) (time.Time, bool, error) {
	value := row.Get(ColDate)
	if strings.TrimSpace(value) == "" {
		logger.Debug("Skipping row without a date", logger.Fields{"row": row.Index + 1})
		return time.Time{}, false, nil
	}

	date, err := parse(value)
	if err != nil {
		return time.Time{}, false, &DateError{Row: row.Index + 1, Value: value, Err: err}
	}
	return date, true, nil
}
