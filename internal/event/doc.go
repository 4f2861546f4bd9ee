// Package event provides the dated rows behind the calendar, landing page and
// gallery: upcoming events, announcements and past gallery events.
//
// Rows are built from CSV tables, carry parsed dates, and are filtered and
// ordered relative to "today" (the current date at midnight). A row with a blank
// date is dropped; any other date that does not parse aborts the load with a
// DateError.
package event
