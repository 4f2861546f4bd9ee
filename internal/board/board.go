// Package board holds the executive board roster rows.
package board

import (
	"fmt"
	"strings"

	"github.com/sase-site/sitegen/internal/sheet"
)

// CoPrefix marks a position shared by several officers, e.g. "Co-Chair".
const CoPrefix = "Co-"

// Columns are required in the board table.
var Columns = []string{"Position", "Name", "Major", "Email", "Year", "LinkedIn"}

// Member is one officer.
type Member struct {
	Position string
	Name     string
	Major    string
	Email    string
	Year     string
	LinkedIn string
}

// BasePosition is the position with every co-officer prefix removed.
func (m Member) BasePosition() string {
	return strings.ReplaceAll(m.Position, CoPrefix, "")
}

// IsCoOfficer reports whether the position is shared.
func (m Member) IsCoOfficer() bool {
	return strings.HasPrefix(m.Position, CoPrefix)
}

// FirstLast returns the first two words of the name, which key the headshot file.
func (m Member) FirstLast() (string, string, error) {
	parts := strings.Fields(m.Name)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("board member %q: name needs a first and last word", m.Name)
	}
	return parts[0], parts[1], nil
}

// MembersFromTable builds members in file order.
func MembersFromTable(t *sheet.Table) ([]Member, error) {
	if err := t.Require(Columns...); err != nil {
		return nil, err
	}

	members := make([]Member, 0, t.Len())
	for _, row := range t.Rows() {
		members = append(members, Member{
			Position: row.Get("Position"),
			Name:     row.Get("Name"),
			Major:    row.Get("Major"),
			Email:    row.Get("Email"),
			Year:     row.Get("Year"),
			LinkedIn: row.Get("LinkedIn"),
		})
	}
	return members, nil
}
