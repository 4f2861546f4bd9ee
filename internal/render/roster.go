package render

import (
	"fmt"
	"strings"

	"github.com/sase-site/sitegen/internal/board"
)

const boardCardTemplate = `          <div class="col-md-4 col-lg-3">
            <div class="card">
              <img src="{{image}}" class="card-img-top" alt="...">
              <div class="card-body">
                <h2 class="card-title text-center fw-bold">{{position}}</h2>
                <h5 class="card-title text-center">{{name}}</h5>
                <div class="text-center">
                  <button class="btn sase-blue text-white my-2" type="button" data-bs-toggle="collapse" data-bs-target="#{{id}}-info" aria-expanded="false" aria-controls="{{id}}-info">
                    About
                  </button>
                </div>
                <div class="collapse" id="{{id}}-info">
                  <div class="card card-body">
                    <p class="text-start my-auto">
                      Year: {{year}}<br>
                      Major: {{major}}<br>
                      Email: <a href="mailto:{{email}}">{{email}}</a><br>
                      Linkedin: <a href="{{linkedin}}" target="_blank">Connect</a></p>
                  </div>
                </div>
              </div>
            </div>
          </div>

`

// coIDPrefixLen is how much of the normalized position a co-officer id keeps.
const coIDPrefixLen = 4

// HeadshotPath is where a member's picture lives for the board term starting in year,
// e.g. <root>/EBoard26-27/Ada_Lovelace.png.
func HeadshotPath(root string, year int, m board.Member) (string, error) {
	first, last, err := m.FirstLast()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/EBoard%02d-%02d/%s_%s.png", root, year%100, (year+1)%100, first, last), nil
}

// PositionHeader is the comment opening each group of cards for one position.
func PositionHeader(basePosition string) string {
	return fmt.Sprintf("\n          <!-- %s(s) -->\n", basePosition)
}

// CardID derives the collapse id of a member's card. A single officer uses the
// lowercased position without spaces. Co-officers use the first four runes of
// that and a counter: the number of times that prefix already occurs in the
// output rendered so far, plus two.
func CardID(m board.Member, renderedSoFar string) string {
	normalized := strings.ReplaceAll(strings.ToLower(m.BasePosition()), " ", "")
	if !m.IsCoOfficer() {
		return normalized
	}

	prefix := normalized
	if runes := []rune(normalized); len(runes) > coIDPrefixLen {
		prefix = string(runes[:coIDPrefixLen])
	}
	return fmt.Sprintf("%s%d", prefix, strings.Count(renderedSoFar, prefix)+2)
}

// BoardCard renders one member card.
func BoardCard(m board.Member, id, image string) string {
	return strings.NewReplacer(
		"{{image}}", image,
		"{{position}}", m.Position,
		"{{name}}", m.Name,
		"{{id}}", id,
		"{{year}}", m.Year,
		"{{major}}", m.Major,
		"{{email}}", m.Email,
		"{{linkedin}}", m.LinkedIn,
	).Replace(boardCardTemplate)
}

// Roster renders every member in file order, opening a position group comment
// whenever the base position changes. termYear selects the headshot folder.
func Roster(members []board.Member, imageRoot string, termYear int) (string, error) {
	var out strings.Builder
	currentPosition := ""

	for _, m := range members {
		base := m.BasePosition()
		if base != currentPosition {
			out.WriteString(PositionHeader(base))
			currentPosition = base
		}

		image, err := HeadshotPath(imageRoot, termYear, m)
		if err != nil {
			return "", err
		}

		id := CardID(m, out.String())
		out.WriteString(BoardCard(m, id, image))
	}

	return out.String(), nil
}
