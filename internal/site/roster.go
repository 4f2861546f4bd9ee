package site

import (
	"github.com/sase-site/sitegen/internal/board"
	"github.com/sase-site/sitegen/internal/page"
	"github.com/sase-site/sitegen/internal/render"
)

// UpdateRoster renders one card per board member in file order. Headshots are
// taken from the folder of the board term starting this year.
func (g *Generator) UpdateRoster() (Result, error) {
	return g.update(rosterSpec, func(doc *page.Document) (int, error) {
		table, err := g.loadTable(g.cfg.Data.Board)
		if err != nil {
			return 0, err
		}

		members, err := board.MembersFromTable(table)
		if err != nil {
			return 0, err
		}

		cards, err := render.Roster(members, g.cfg.Images.BoardURL, g.Now().Year())
		if err != nil {
			return 0, err
		}

		if err := doc.SetBody(RegionBoard, cards); err != nil {
			return 0, err
		}
		return len(members), nil
	})
}
