package render

import (
	"strings"

	"github.com/sase-site/sitegen/internal/event"
)

const (
	// AnnouncementLimit caps the announcements shown on the landing page.
	AnnouncementLimit = 2
	// PreviewCount is the exact number of event previews on the landing page.
	PreviewCount = 3

	AnnouncementDateLayout = "January 02, 2006"
	PreviewDateLayout      = "January 02"

	DefaultLinkLabel = "Learn More"
	DefaultLink      = "#"
)

// Placeholder preview text used when too few events are upcoming.
const (
	PlaceholderName        = "TBD"
	PlaceholderDate        = "X XX, XXXX"
	PlaceholderDescription = "Check back in for more information on upcoming events"
)

const carouselOpen = `    <div id="myCarousel" class="carousel slide mb-6" data-bs-ride="carousel">  
      <div class="carousel-inner">
`

const carouselItemTemplate = `        <div class="carousel-item{{active}}">
            <img src="{{src}}" class="d-block w-100" alt="{{caption}}">
            <div class="carousel-caption d-none d-md-block">
              <div class="container-fluid bg-custom">
                <h5>{{caption}}</h5>
              </div>
            </div>
        </div>`

const carouselClose = `      </div>
      <button class="carousel-control-prev" type="button" data-bs-target="#myCarousel" data-bs-slide="prev">
        <span class="carousel-control-prev-icon" aria-hidden="true"></span>
        <span class="visually-hidden">Previous</span>
      </button>
      <button class="carousel-control-next" type="button" data-bs-target="#myCarousel" data-bs-slide="next">
        <span class="carousel-control-next-icon" aria-hidden="true"></span>
        <span class="visually-hidden">Next</span>
      </button>
    </div>`

const announcementTemplate = `
        <div class="col-md-6">
          <div class="row g-0 border rounded overflow-hidden flex-md-row mb-2 shadow-sm h-md-250 position-relative sase-green">
            <div class="col p-4 d-flex flex-column position-static">
              <h3 class="mb-0">{{name}}</h3>
              <div class="mb-1 text-body-secondary">{{date}}</div>
              <p class="card-text mb-auto">{{description}}</p>
              <a href="{{link}}" target="_blank" class="btn btn-outline-light btn-lg my-2 rounded-0">{{label}}</a>
            </div>
            <div class="col-auto d-none d-lg-block">
              <img class="announcement-pic" src="{{image}}" alt="Announcement Image" class="w-100">
            </div>
          </div>
        </div>
`

const previewTemplate = `            <div class="col-md-4 px-4">
              <h2 class="text-center mt-3">{{name}}</h2>
              <p class="text-center fs-5">{{date}}</p>
              <p class="py-3">{{description}}</p>
              <a href="{{href}}" class="btn sase-blue text-white" tabindex="-1" role="button" aria-disabled="false">Learn more</a>
            </div>`

// Caption is the image file name without its last extension.
func Caption(imageName string) string {
	if i := strings.LastIndex(imageName, "."); i >= 0 {
		return imageName[:i]
	}
	return imageName
}

// CarouselItem renders one slide; the first slide of a carousel is active.
func CarouselItem(urlPrefix, imageName string, active bool) string {
	activeClass := ""
	if active {
		activeClass = " active"
	}
	return strings.NewReplacer(
		"{{active}}", activeClass,
		"{{src}}", urlPrefix+"/"+imageName,
		"{{caption}}", Caption(imageName),
	).Replace(carouselItemTemplate)
}

// Carousel renders the landing page slideshow.
func Carousel(urlPrefix string, images []string) string {
	var b strings.Builder
	b.WriteString(carouselOpen)
	for i, img := range images {
		b.WriteString(CarouselItem(urlPrefix, img, i == 0))
	}
	b.WriteString(carouselClose)
	return b.String()
}

// AnnouncementCard renders one announcement. An empty link label or URL falls
// back to DefaultLinkLabel or DefaultLink.
func AnnouncementCard(imageURL string, a event.Announcement) string {
	label := a.LinkLabel
	if label == "" {
		label = DefaultLinkLabel
	}
	link := a.Link
	if link == "" {
		link = DefaultLink
	}

	return strings.NewReplacer(
		"{{name}}", a.Name,
		"{{date}}", a.Date.Format(AnnouncementDateLayout),
		"{{description}}", a.Description,
		"{{link}}", link,
		"{{label}}", label,
		"{{image}}", imageURL+"/"+a.Image,
	).Replace(announcementTemplate)
}

// Announcements renders the given announcements in order.
func Announcements(imageURL string, anns []event.Announcement) string {
	var b strings.Builder
	for _, a := range anns {
		b.WriteString(AnnouncementCard(imageURL, a))
	}
	return b.String()
}

// EventPreview renders one preview column.
func EventPreview(name, date, description, calendarHref string) string {
	return strings.NewReplacer(
		"{{name}}", name,
		"{{date}}", date,
		"{{description}}", description,
		"{{href}}", calendarHref,
	).Replace(previewTemplate)
}

// Previews renders exactly PreviewCount previews: the first upcoming events,
// then placeholders for any shortfall.
func Previews(upcoming []event.Event, calendarHref string) string {
	if len(upcoming) > PreviewCount {
		upcoming = upcoming[:PreviewCount]
	}

	var b strings.Builder
	for _, evt := range upcoming {
		b.WriteString(EventPreview(evt.Name, evt.Date.Format(PreviewDateLayout), evt.Description, calendarHref))
	}
	for i := len(upcoming); i < PreviewCount; i++ {
		b.WriteString(EventPreview(PlaceholderName, PlaceholderDate, PlaceholderDescription, calendarHref))
	}
	return b.String()
}
