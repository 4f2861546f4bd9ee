// Package calendar builds the "add to calendar" links shown in event details.
//
// Event times come from the Time column as free text in the fixed shape
// "HH:MM AM - HH:MM PM". Start and end components are taken at fixed character
// offsets rather than parsed:
//
//	start hour   = [0:2]          end hour   = [len-8:len-6]
//	start minute = [3:5]          end minute = [len-5:len-3]
//	Outlook start = [0:5]         Outlook end = [len-8:]
//
// Offsets outside the string clamp to its bounds, so a malformed time yields
// a malformed link instead of a failure.
package calendar

import (
	"fmt"
	"strings"

	"github.com/sase-site/sitegen/internal/event"
)

const (
	googleURL  = "https://calendar.google.com/calendar/render"
	outlookURL = "https://outlook.office.com/calendar/0/deeplink/compose"
)

// Times holds the components cut out of a time range string.
type Times struct {
	StartHour    string
	StartMinute  string
	EndHour      string
	EndMinute    string
	OutlookStart string
	OutlookEnd   string
}

// Links are the three calendar targets for one event.
type Links struct {
	Google  string
	Apple   string
	Outlook string
}

// SliceTimes cuts a time range string at the fixed offsets.
func SliceTimes(s string) Times {
	n := len(s)
	return Times{
		StartHour:    clip(s, 0, 2),
		StartMinute:  clip(s, 3, 5),
		EndHour:      clip(s, n-8, n-6),
		EndMinute:    clip(s, n-5, n-3),
		OutlookStart: clip(s, 0, 5),
		OutlookEnd:   clip(s, n-8, n),
	}
}

// Start is the compact start time, e.g. "1000" followed by "00" seconds.
func (t Times) Start() string {
	return t.StartHour + t.StartMinute + "00"
}

// End is the compact end time.
func (t Times) End() string {
	return t.EndHour + t.EndMinute + "00"
}

// EventLinks builds the Google, Apple and Outlook links for evt.
func EventLinks(evt event.Event) Links {
	times := SliceTimes(evt.Time)
	compact := evt.Date.Format("20060102")
	iso := evt.Date.Format("2006-01-02")

	google := fmt.Sprintf("%s?action=TEMPLATE&text=%s&details=%s&dates=%sT%s/%sT%s&location=%s",
		googleURL, plus(evt.Name), plus(evt.Description),
		compact, times.Start(), compact, times.End(), plus(evt.Location))

	var apple strings.Builder
	apple.WriteString("data:text/calendar;charset=utf8,BEGIN:VCALENDAR%0AVERSION:2.0%0ABEGIN:VEVENT")
	fmt.Fprintf(&apple, "%%0ADTSTART:%sT%s", compact, times.Start())
	fmt.Fprintf(&apple, "%%0ADTEND:%sT%s", compact, times.End())
	fmt.Fprintf(&apple, "%%0ASUMMARY:%s", evt.Name)
	fmt.Fprintf(&apple, "%%0ADESCRIPTION:%s", evt.Description)
	fmt.Fprintf(&apple, "%%0ALOCATION:%s", evt.Location)
	apple.WriteString("%0AEND:VEVENT%0AEND:VCALENDAR")

	outlook := fmt.Sprintf("%s?subject=%s&body=%s&startdt=%sT%s:00+00:00&enddt=%sT%s+00:00&location=%s&path=%%2Fcalendar%%2Faction%%2Fcompose&rru=addevent",
		outlookURL, plus(evt.Name), plus(evt.Description),
		iso, times.OutlookStart, iso, times.OutlookEnd, plus(evt.Location))

	return Links{Google: google, Apple: apple.String(), Outlook: outlook}
}

// plus replaces spaces with '+'. No other escaping is applied.
func plus(s string) string {
	return strings.ReplaceAll(s, " ", "+")
}

// clip returns s[start:end] with both offsets clamped to [0, len(s)].
// Negative offsets are clamped, not counted from the end; callers pass
// len-relative offsets explicitly.
func clip(s string, start, end int) string {
	n := len(s)
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	if start >= end {
		return ""
	}
	return s[start:end]
}
