package site

import (
	"fmt"

	"github.com/sase-site/sitegen/internal/config"
	"github.com/sase-site/sitegen/internal/page"
	"github.com/sase-site/sitegen/internal/sheet"
	"github.com/sase-site/sitegen/internal/storage"
)

// Region names.
const (
	RegionCards         = "cards"
	RegionModals        = "modals"
	RegionBoard         = "board"
	RegionGallery       = "events"
	RegionCarousel      = "carousel"
	RegionAnnouncements = "announcements"
	RegionPreviews      = "previews"
)

// pageSpec ties a page to its location, marker layout and the selectors
// that identify one generated item per region.
type pageSpec struct {
	name      string
	path      func(*config.Config) string
	layout    []page.Region
	selectors map[string]string
}

var (
	calendarSpec = pageSpec{
		name: PageCalendar,
		path: func(c *config.Config) string { return c.Pages.Calendar },
		layout: []page.Region{
			{Name: RegionCards, Start: "<!--Events-->", End: "<!--End of Events-->"},
			{Name: RegionModals, Start: "<!--Event Modals-->", End: "<!--Footer-->"},
		},
		selectors: map[string]string{
			RegionCards:  "div.row.rounded-3",
			RegionModals: "div.modal",
		},
	}

	rosterSpec = pageSpec{
		name: PageRoster,
		path: func(c *config.Config) string { return c.Pages.Roster },
		layout: []page.Region{
			{Name: RegionBoard, Start: "<!--EBoard-->", End: "<!--End of EBoard-->"},
		},
		selectors: map[string]string{
			RegionBoard: "div.col-md-4.col-lg-3",
		},
	}

	gallerySpec = pageSpec{
		name: PageGallery,
		path: func(c *config.Config) string { return c.Pages.Gallery },
		layout: []page.Region{
			{Name: RegionGallery, Start: "<!--Events-->", End: "<!--End of Events-->"},
		},
		selectors: map[string]string{
			RegionGallery: "div.themed-grid-col",
		},
	}

	landingSpec = pageSpec{
		name: PageLanding,
		path: func(c *config.Config) string { return c.Pages.Landing },
		layout: []page.Region{
			{Name: RegionCarousel, Start: "<!--Carousel -->", End: "<!--Navigation Bar-->"},
			{Name: RegionAnnouncements, Start: "<!-- Announcements-->", End: "<!-- End of Announcements-->"},
			{Name: RegionPreviews, Start: "<!-- Sneek Peak at Events -->", End: "<!-- End of Sneek Peak at Events -->"},
		},
		selectors: map[string]string{
			RegionCarousel:      "div.carousel-item",
			RegionAnnouncements: "div.col-md-6",
			RegionPreviews:      "div.col-md-4",
		},
	}
)

func specFor(name string) (pageSpec, error) {
	switch name {
	case PageCalendar:
		return calendarSpec, nil
	case PageRoster:
		return rosterSpec, nil
	case PageGallery:
		return gallerySpec, nil
	case PageLanding:
		return landingSpec, nil
	default:
		return pageSpec{}, fmt.Errorf("unknown page %q", name)
	}
}

// loadTable reads a CSV source relative to the site root.
func (g *Generator) loadTable(rel string) (*sheet.Table, error) {
	rc, err := storage.OpenData(g.cfg.Path(rel))
	if err != nil {
		return nil, err
	}
	defer rc.Close() // nolint:errcheck

	table, err := sheet.Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rel, err)
	}
	return table, nil
}
