package site

import (
	"github.com/sase-site/sitegen/internal/event"
	"github.com/sase-site/sitegen/internal/page"
	"github.com/sase-site/sitegen/internal/render"
)

// UpdateCalendar renders every upcoming event as a card and a detail modal,
// soonest first, grouped under month headings.
func (g *Generator) UpdateCalendar() (Result, error) {
	return g.update(calendarSpec, func(doc *page.Document) (int, error) {
		table, err := g.loadTable(g.cfg.Data.Events)
		if err != nil {
			return 0, err
		}

		events, err := event.EventsFromTable(table, event.EventColumns)
		if err != nil {
			return 0, err
		}

		upcoming := event.Upcoming(events, g.today())
		frags := render.Calendar(upcoming)

		if err := doc.SetBody(RegionCards, "\n"+frags.Cards+"\n"); err != nil {
			return 0, err
		}
		if err := doc.SetBody(RegionModals, "\n"+frags.Modals); err != nil {
			return 0, err
		}
		return len(upcoming), nil
	})
}
