package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/sase-site/sitegen/internal/event"
)

func TestSliceTimes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Times
	}{
		{
			name: "twelve hour range",
			in:   "10:00 AM - 12:30 PM",
			want: Times{
				StartHour: "10", StartMinute: "00",
				EndHour: "12", EndMinute: "30",
				OutlookStart: "10:00", OutlookEnd: "12:30 PM",
			},
		},
		{
			name: "evening range",
			in:   "06:15 PM - 08:45 PM",
			want: Times{
				StartHour: "06", StartMinute: "15",
				EndHour: "08", EndMinute: "45",
				OutlookStart: "06:15", OutlookEnd: "08:45 PM",
			},
		},
		{
			// The offsets assume the AM/PM suffix; a bare 24h range is cut
			// at the same positions and produces skewed end components.
			name: "bare range keeps fixed offsets",
			in:   "18:00 - 20:00",
			want: Times{
				StartHour: "18", StartMinute: "00",
				EndHour: " -", EndMinute: "20",
				OutlookStart: "18:00", OutlookEnd: " - 20:00",
			},
		},
		{
			name: "too short clamps",
			in:   "TBD",
			want: Times{
				StartHour: "TB", StartMinute: "",
				EndHour: "", EndMinute: "",
				OutlookStart: "TBD", OutlookEnd: "TBD",
			},
		},
		{
			name: "empty",
			in:   "",
			want: Times{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SliceTimes(tt.in); got != tt.want {
				t.Errorf("SliceTimes(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEventLinks(t *testing.T) {
	evt := event.Event{
		Name:        "General Body Meeting",
		Date:        time.Date(2026, time.October, 25, 0, 0, 0, 0, time.UTC),
		Time:        "06:00 PM - 07:30 PM",
		Location:    "Room 101",
		Description: "Free food",
	}

	links := EventLinks(evt)

	wantGoogle := "https://calendar.google.com/calendar/render?action=TEMPLATE" +
		"&text=General+Body+Meeting&details=Free+food" +
		"&dates=20261025T060000/20261025T073000&location=Room+101"
	if links.Google != wantGoogle {
		t.Errorf("Google =\n%s\nwant\n%s", links.Google, wantGoogle)
	}

	wantApple := "data:text/calendar;charset=utf8,BEGIN:VCALENDAR%0AVERSION:2.0%0ABEGIN:VEVENT" +
		"%0ADTSTART:20261025T060000%0ADTEND:20261025T073000" +
		"%0ASUMMARY:General Body Meeting%0ADESCRIPTION:Free food%0ALOCATION:Room 101" +
		"%0AEND:VEVENT%0AEND:VCALENDAR"
	if links.Apple != wantApple {
		t.Errorf("Apple =\n%s\nwant\n%s", links.Apple, wantApple)
	}

	wantOutlook := "https://outlook.office.com/calendar/0/deeplink/compose" +
		"?subject=General+Body+Meeting&body=Free+food" +
		"&startdt=2026-10-25T06:00:00+00:00&enddt=2026-10-25T07:30 PM+00:00" +
		"&location=Room+101&path=%2Fcalendar%2Faction%2Fcompose&rru=addevent"
	if links.Outlook != wantOutlook {
		t.Errorf("Outlook =\n%s\nwant\n%s", links.Outlook, wantOutlook)
	}
}

func TestEventLinks_NoSpacesInGoogleOrOutlook(t *testing.T) {
	links := EventLinks(event.Event{
		Name:        "a b c",
		Description: "d e",
		Location:    "f g",
		Time:        "10:00 AM - 11:00 AM",
	})

	for _, part := range []string{"text=a+b+c", "details=d+e", "location=f+g"} {
		if !strings.Contains(links.Google, part) {
			t.Errorf("Google link missing %q", part)
		}
	}
	if !strings.Contains(links.Outlook, "subject=a+b+c") {
		t.Error("Outlook subject should use + for spaces")
	}
}
