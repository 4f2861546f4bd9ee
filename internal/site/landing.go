package site

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/sase-site/sitegen/internal/event"
	"github.com/sase-site/sitegen/internal/logger"
	"github.com/sase-site/sitegen/internal/page"
	"github.com/sase-site/sitegen/internal/render"
	"github.com/sase-site/sitegen/internal/storage"
)

// UpdateLanding renders the landing page slideshow, the most recent
// announcements and a preview of the next upcoming events.
func (g *Generator) UpdateLanding() (Result, error) {
	return g.update(landingSpec, func(doc *page.Document) (int, error) {
		today := g.today()

		slides := g.carouselImages()

		annTable, err := g.loadTable(g.cfg.Data.Announcements)
		if err != nil {
			return 0, err
		}
		anns, err := event.AnnouncementsFromTable(annTable)
		if err != nil {
			return 0, err
		}
		recent := event.Recent(anns, today, render.AnnouncementLimit)

		events, err := g.previewEvents()
		if err != nil {
			return 0, err
		}
		upcoming := event.Upcoming(events, today)

		bodies := []struct {
			region string
			body   string
		}{
			{RegionCarousel, "\n" + render.Carousel(g.cfg.Images.CarouselURL, slides) + "\n\n\t\t"},
			{RegionAnnouncements, "\n" + render.Announcements(g.cfg.Images.AnnouncementURL, recent) + "\n\n\t\t"},
			{RegionPreviews, "\n" + render.Previews(upcoming, g.calendarHref()) + "\n\t\t\t"},
		}
		for _, b := range bodies {
			if err := doc.SetBody(b.region, b.body); err != nil {
				return 0, err
			}
		}

		return len(slides) + len(recent) + min(len(upcoming), render.PreviewCount), nil
	})
}

// carouselImages lists the slideshow pictures. A missing folder is logged and
// yields an empty slideshow.
func (g *Generator) carouselImages() []string {
	dir := g.cfg.Images.CarouselDir
	images, err := storage.ListImages(g.cfg.Path(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			g.log.Warn("Carousel directory not found", logger.Fields{"path": dir})
		} else {
			g.log.Warn("Could not list carousel pictures", logger.Fields{"path": dir, "error": err.Error()})
		}
		return nil
	}
	return images
}

// calendarHref is the calendar page as linked from the landing page.
func (g *Generator) calendarHref() string {
	rel, err := filepath.Rel(filepath.Dir(g.cfg.Pages.Landing), g.cfg.Pages.Calendar)
	if err != nil {
		return filepath.ToSlash(g.cfg.Pages.Calendar)
	}
	return filepath.ToSlash(rel)
}

// previewEvents loads the events source for the previews. A missing file is
// logged and treated as having no events.
func (g *Generator) previewEvents() ([]event.Event, error) {
	table, err := g.loadTable(g.cfg.Data.Events)
	if errors.Is(err, fs.ErrNotExist) {
		g.log.Warn("Events file not found, previewing placeholders", logger.Fields{"path": g.cfg.Data.Events})
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return event.EventsFromTable(table, event.PreviewColumns)
}
