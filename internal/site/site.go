// Package site regenerates the calendar, roster, gallery and landing pages.
//
// Each page is updated by its own procedure: read the page, locate its marker
// regions, load and filter the CSV rows, render fragments and atomically write
// the reassembled page. A page whose markers are missing is skipped and left
// untouched. Any other failure is fatal and stops Run; pages already rewritten
// keep their new content.
package site

import (
	"errors"
	"fmt"
	"time"

	"github.com/sase-site/sitegen/internal/config"
	"github.com/sase-site/sitegen/internal/event"
	"github.com/sase-site/sitegen/internal/logger"
	"github.com/sase-site/sitegen/internal/page"
	"github.com/sase-site/sitegen/internal/storage"
)

// Page names, in the order Run processes them.
const (
	PageCalendar = "calendar"
	PageRoster   = "roster"
	PageGallery  = "gallery"
	PageLanding  = "landing"
)

// Pages lists every page in run order.
var Pages = []string{PageCalendar, PageRoster, PageGallery, PageLanding}

// Status is the outcome of one page update.
type Status string

const (
	StatusUpdated Status = "updated"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Result describes what happened to one page. Items counts rendered rows:
// events, members, gallery cards, or slides plus announcements plus previews.
type Result struct {
	Page   string `json:"page"`
	Path   string `json:"path"`
	Status Status `json:"status"`
	Items  int    `json:"items"`
	Reason string `json:"reason,omitempty"`
	Err    error  `json:"-"`
}

// Generator runs page updates against one site checkout.
type Generator struct {
	cfg *config.Config
	log *logger.Logger
	// Now supplies the current time; "today" is derived from it.
	Now func() time.Time
}

// New creates a generator. A nil log uses the package default logger.
func New(cfg *config.Config, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Default()
	}
	return &Generator{
		cfg: cfg,
		log: log,
		Now: time.Now,
	}
}

// Update runs the named page procedure.
func (g *Generator) Update(name string) (Result, error) {
	switch name {
	case PageCalendar:
		return g.UpdateCalendar()
	case PageRoster:
		return g.UpdateRoster()
	case PageGallery:
		return g.UpdateGallery()
	case PageLanding:
		return g.UpdateLanding()
	default:
		return Result{Page: name, Status: StatusFailed}, fmt.Errorf("unknown page %q", name)
	}
}

// Run updates the named pages, or every page when none are named, in order.
// It stops at the first fatal error and returns the results gathered so far,
// including the failed one.
func (g *Generator) Run(names ...string) ([]Result, error) {
	if len(names) == 0 {
		names = Pages
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		res, err := g.Update(name)
		results = append(results, res)
		if err != nil {
			g.log.Error("Generation stopped", logger.Fields{"page": name}, err)
			return results, err
		}
	}
	return results, nil
}

// fillFunc renders the regions of a split page and reports how many rows it used.
type fillFunc func(doc *page.Document) (int, error)

// update is the shared read/split/fill/write sequence behind every page.
func (g *Generator) update(spec pageSpec, fill fillFunc) (Result, error) {
	start := time.Now()
	path := g.cfg.Path(spec.path(g.cfg))
	res := Result{Page: spec.name, Path: path}

	fail := func(err error) (Result, error) {
		res.Status = StatusFailed
		res.Err = err
		res.Reason = err.Error()
		return res, fmt.Errorf("updating %s page: %w", spec.name, err)
	}

	content, err := storage.ReadPage(path)
	if err != nil {
		return fail(err)
	}

	doc, err := page.Split(content, spec.layout)
	if err != nil {
		var markerErr *page.MarkerError
		if errors.As(err, &markerErr) {
			g.log.Warn("Marker not found, page left unchanged", logger.Fields{
				"page":   spec.name,
				"path":   path,
				"marker": markerErr.Marker,
			})
			logger.IncrCounter("pages.skipped")
			res.Status = StatusSkipped
			res.Reason = err.Error()
			return res, nil
		}
		return fail(err)
	}

	items, err := fill(doc)
	if err != nil {
		return fail(err)
	}

	if err := storage.WritePage(path, doc.String()); err != nil {
		return fail(err)
	}

	res.Status = StatusUpdated
	res.Items = items

	logger.IncrCounter("pages.updated")
	logger.AddCounter("rows.rendered", int64(items))
	logger.RecordTiming("page."+spec.name, time.Since(start))
	g.log.Info("Page updated", logger.Fields{
		"page":  spec.name,
		"path":  path,
		"items": items,
	})

	return res, nil
}

// today is the current date at midnight.
func (g *Generator) today() time.Time {
	return event.Today(g.Now())
}
