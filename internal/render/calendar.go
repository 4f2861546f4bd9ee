package render

import (
	"fmt"
	"strings"

	"github.com/sase-site/sitegen/internal/calendar"
	"github.com/sase-site/sitegen/internal/event"
)

// Display layouts for calendar dates.
const (
	MonthHeaderLayout = "January 2006"
	CardDateLayout    = "January 02"
)

const eventCardTemplate = `
        <div class="row rounded-3 bg-white my-4 py-3 px-2 align-middle">
            <div class="col-sm-8 rounded-3 align-middle">
              <p class="text-uppercase sase-blue-text">{{kind}}</p>
              <h5 style="font-weight: bold; margin-top: -13px;">{{name}}</h5>
              <button type="button" class="btn bg-body-tertiary rounded-pill" data-bs-toggle="modal" data-bs-target="#event{{num}}Modal" style="font-size: small;">
                <svg xmlns="http://www.w3.org/2000/svg" x="0px" y="0px" width="15" height="15" viewBox="0,15,256,256">
                  <g fill="#000000" fill-rule="nonzero" stroke="none" stroke-width="1" stroke-linecap="butt" stroke-linejoin="miter" stroke-miterlimit="10" stroke-dasharray="" stroke-dashoffset="0" font-family="none" font-weight="none" font-size="none" text-anchor="none" style="mix-blend-mode: normal"><g transform="scale(8.53333,8.53333)"><path d="M15,3c-6.627,0 -12,5.373 -12,12c0,6.627 5.373,12 12,12c6.627,0 12,-5.373 12,-12c0,-6.627 -5.373,-12 -12,-12zM16,16h-8.005c-0.55,0 -0.995,-0.445 -0.995,-0.995v-0.011c0,-0.549 0.445,-0.994 0.995,-0.994h6.005v-8.005c0,-0.55 0.445,-0.995 0.995,-0.995h0.011c0.549,0 0.994,0.445 0.994,0.995z"></path></g></g>
                </svg>   {{date}}
              </button>
            </div>
            <div class="col-sm-4 rounded-3 d-flex align-items-center justify-content-end">
              <button type="button" class="btn btn-primary text-uppercase" data-bs-toggle="modal" data-bs-target="#event{{num}}Modal">
                Get Details
              </button>
            </div>
        </div>`

const eventModalTemplate = `
    <div class="modal fade" id="event{{num}}Modal" tabindex="-1" aria-labelledby="event{{num}}ModalLabel" aria-hidden="true">
      <div class="modal-dialog">
        <div class="modal-content">
          <div class="modal-header">
            <div class="text-center w-100">
              <p class="text-uppercase sase-blue-text">{{kind}}</p>
              <h1 class="modal-title fs-4" id="event{{num}}ModalLabel" style="font-weight: bold; margin-top: -13px;">{{name}}</h1>
            </div>
            <button type="button" class="btn-close" data-bs-dismiss="modal" aria-label="Close"></button>
          </div>
          <div class="modal-body">
            <p>{{description}}</p>
            <p class="text-uppercase"><svg xmlns="http://www.w3.org/2000/svg" viewBox="0 30 512 512" class="small-icon"><path d="M256 0a256 256 0 1 1 0 512A256 256 0 1 1 256 0zM232 120V256c0 8 4 15.5 10.7 20l96 64c11 7.4 25.9 4.4 33.3-6.7s4.4-25.9-6.7-33.3L280 243.2V120c0-13.3-10.7-24-24-24s-24 10.7-24 24z"/></svg>   When</p>
            <p class="event-descript">{{date}} @ {{time}}</p>
            <p class="text-uppercase"><svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 384 512" class="small-icon"><path d="M215.7 499.2C267 435 384 279.4 384 192C384 86 298 0 192 0S0 86 0 192c0 87.4 117 243 168.3 307.2c12.3 15.3 35.1 15.3 47.4 0zM192 128a64 64 0 1 1 0 128 64 64 0 1 1 0-128z"/></svg>  Where</p>
            <p class="event-descript">{{location}}</p>
            <p class="sase-blue-text"><a href="{{google}}">Add to Google Calendar</a></p>
            <p><a href="{{apple}}">Add to Apple Calendar</a></p>
            <p><a href="{{outlook}}">Add to Outlook Calender</a></p>
          </div>
          <div class="modal-footer">
            <button type="button" class="btn btn-secondary" data-bs-dismiss="modal">Close</button>
          </div>
        </div>
      </div>
    </div>`

// CalendarFragments are the two generated bodies of the calendar page.
type CalendarFragments struct {
	Cards  string
	Modals string
}

// MonthHeader renders the heading placed before the first event of a month.
func MonthHeader(monthYear string) string {
	return fmt.Sprintf(`<h4 id="today" class="text-white mx-2" style="font-weight: bold;">%s</h4>`, monthYear) + "\n\n"
}

// EventCard renders the visible card of an event.
func EventCard(evt event.Event) string {
	return strings.NewReplacer(
		"{{num}}", fmt.Sprint(evt.Seq),
		"{{kind}}", evt.Kind,
		"{{name}}", evt.Name,
		"{{date}}", evt.Date.Format(CardDateLayout),
	).Replace(eventCardTemplate)
}

// EventModal renders the detail panel opened from an event card.
func EventModal(evt event.Event) string {
	links := calendar.EventLinks(evt)
	return strings.NewReplacer(
		"{{num}}", fmt.Sprint(evt.Seq),
		"{{kind}}", evt.Kind,
		"{{name}}", evt.Name,
		"{{description}}", evt.Description,
		"{{date}}", evt.Date.Format(CardDateLayout),
		"{{time}}", evt.Time,
		"{{location}}", evt.Location,
		"{{google}}", links.Google,
		"{{apple}}", links.Apple,
		"{{outlook}}", links.Outlook,
	).Replace(eventModalTemplate)
}

// Calendar renders cards and modals for events in the given order, inserting a
// month header whenever the month changes from the previous event.
func Calendar(events []event.Event) CalendarFragments {
	var cards, modals strings.Builder
	currentMonth := ""

	for _, evt := range events {
		monthYear := evt.Date.Format(MonthHeaderLayout)
		if monthYear != currentMonth {
			currentMonth = monthYear
			cards.WriteString(MonthHeader(monthYear))
		}

		cards.WriteString(EventCard(evt))
		cards.WriteString("\n\n")
		modals.WriteString(EventModal(evt))
		modals.WriteString("\n\n")
	}

	return CalendarFragments{Cards: cards.String(), Modals: modals.String()}
}
