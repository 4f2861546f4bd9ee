package render

import (
	"fmt"
	"strings"

	"github.com/sase-site/sitegen/internal/event"
)

// GalleryRowSize is the number of cards per gallery row.
const GalleryRowSize = 3

// GalleryDateLayout is how a gallery card shows its date.
const GalleryDateLayout = "January 02, 2006"

const semesterHeaderTemplate = `    <div class="container"></div>
      <div class="break"></div>
      <h1 class="fw-bold text-center sase-blue-text">%s %d</h1>
      <div class="break"></div>
    </div>
`

const galleryCardOpen = `      <div class="col-sm-4 themed-grid-col">
        <div class="card">
          <div id="event{{num}}Carousel" class="carousel slide" data-bs-ride="carousel" data-bs-interval="5000">
            <div class="carousel-inner">`

const galleryImageTemplate = `
              <div class="carousel-item{{active}}">
                <img class="d-block w-100 carousel-image" src="{{src}}" alt="">
              </div>`

const galleryCardClose = `
            </div>
            <button class="carousel-control-prev" type="button" data-bs-target="#event{{num}}Carousel" data-bs-slide="prev">
              <span class="carousel-control-prev-icon" aria-hidden="true"></span>
              <span class="visually-hidden">Previous</span>
            </button>
            <button class="carousel-control-next" type="button" data-bs-target="#event{{num}}Carousel" data-bs-slide="next">
              <span class="carousel-control-next-icon" aria-hidden="true"></span>
              <span class="visually-hidden">Next</span>
            </button>
          </div>
          <div class="card-body">
            <h5 class="card-title">{{name}}</h5>
            <p class="text-secondary mb-2">{{date}}</p>
            <p class="card-text">{{description}}</p>
          </div>
        </div>
      </div>`

// Album is the folder and file names shown in one gallery card's carousel.
type Album struct {
	Folder string
	Files  []string
}

// AlbumFunc finds the pictures of a gallery event by name.
type AlbumFunc func(eventName string) Album

// SemesterHeader renders the heading of one semester block.
func SemesterHeader(sem event.Semester, year int) string {
	return fmt.Sprintf(semesterHeaderTemplate, sem, year)
}

// GalleryCard renders one event card with an image carousel. num keeps the
// carousel id unique on the page.
func GalleryCard(num int, evt event.GalleryEvent, album Album) string {
	id := fmt.Sprint(num)

	var b strings.Builder
	b.WriteString(strings.ReplaceAll(galleryCardOpen, "{{num}}", id))
	for i, file := range album.Files {
		active := ""
		if i == 0 {
			active = " active"
		}
		b.WriteString(strings.NewReplacer(
			"{{active}}", active,
			"{{src}}", album.Folder+"/"+file,
		).Replace(galleryImageTemplate))
	}
	b.WriteString(strings.NewReplacer(
		"{{num}}", id,
		"{{name}}", evt.Name,
		"{{date}}", evt.Date.Format(GalleryDateLayout),
		"{{description}}", evt.Description,
	).Replace(galleryCardClose))
	return b.String()
}

// Gallery renders every group as a semester header followed by rows of up to
// GalleryRowSize cards. Card numbers run across the whole page.
func Gallery(groups []event.GalleryGroup, albums AlbumFunc) string {
	var b strings.Builder
	num := 0

	for _, group := range groups {
		b.WriteString(SemesterHeader(group.Semester, group.Year))

		for start := 0; start < len(group.Events); start += GalleryRowSize {
			end := min(start+GalleryRowSize, len(group.Events))

			b.WriteString("    <div class=\"row mb-3 mx-3\">\n")
			for _, evt := range group.Events[start:end] {
				num++
				b.WriteString(GalleryCard(num, evt, albums(evt.Name)))
			}
			b.WriteString("    </div>\n")
		}
	}

	return b.String()
}
