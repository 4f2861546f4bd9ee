package event

import (
	"testing"
	"time"
)

func TestSemesterContains(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		autumn := m >= time.August
		spring := m <= time.May
		if Autumn.Contains(m) != autumn {
			t.Errorf("Autumn.Contains(%v) = %v", m, !autumn)
		}
		if Spring.Contains(m) != spring {
			t.Errorf("Spring.Contains(%v) = %v", m, !spring)
		}
	}
}

func TestGroupGallery(t *testing.T) {
	events := []GalleryEvent{
		{Name: "Feb 2025", Date: day(2025, time.February, 10)},
		{Name: "Summer", Date: day(2025, time.June, 30)},
		{Name: "Aug 2025", Date: day(2025, time.August, 29)},
		{Name: "Oct 2024", Date: day(2024, time.October, 4)},
		{Name: "Nov 2025", Date: day(2025, time.November, 14)},
		{Name: "Mar 2024", Date: day(2024, time.March, 1)},
	}

	groups := GroupGallery(events)

	type key struct {
		year int
		sem  Semester
	}
	wantKeys := []key{{2025, Autumn}, {2025, Spring}, {2024, Autumn}, {2024, Spring}}
	if len(groups) != len(wantKeys) {
		t.Fatalf("got %d groups, want %d: %+v", len(groups), len(wantKeys), groups)
	}
	for i, k := range wantKeys {
		if groups[i].Year != k.year || groups[i].Semester != k.sem {
			t.Errorf("group %d = %d %v, want %d %v", i, groups[i].Year, groups[i].Semester, k.year, k.sem)
		}
	}

	autumn := groups[0].Events
	if len(autumn) != 2 || autumn[0].Name != "Nov 2025" || autumn[1].Name != "Aug 2025" {
		t.Errorf("Autumn 2025 = %+v, want newest first", autumn)
	}

	for _, g := range groups {
		for _, e := range g.Events {
			if e.Name == "Summer" {
				t.Error("June events belong to no semester")
			}
		}
	}

	// Input is not reordered
	if events[0].Name != "Feb 2025" {
		t.Error("GroupGallery mutated its input")
	}
}

func TestGroupGallery_Empty(t *testing.T) {
	if groups := GroupGallery(nil); len(groups) != 0 {
		t.Errorf("GroupGallery(nil) = %+v", groups)
	}
}

func TestSemesterString(t *testing.T) {
	if Autumn.String() != "Autumn" || Spring.String() != "Spring" {
		t.Error("unexpected semester names")
	}
}
