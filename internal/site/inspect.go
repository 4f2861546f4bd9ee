package site

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sase-site/sitegen/internal/page"
	"github.com/sase-site/sitegen/internal/storage"
)

// RegionReport describes the current content of one generated region.
type RegionReport struct {
	Region string `json:"region"`
	Items  int    `json:"items"`
	Bytes  int    `json:"bytes"`
}

// Report describes the generated regions of one page as they are on disk.
type Report struct {
	Page    string         `json:"page"`
	Path    string         `json:"path"`
	Regions []RegionReport `json:"regions,omitempty"`
	// Problem is set when the page's markers cannot be located.
	Problem string `json:"problem,omitempty"`
}

// Inspect reads a page without modifying it and counts the generated items
// in each of its regions.
func (g *Generator) Inspect(name string) (Report, error) {
	spec, err := specFor(name)
	if err != nil {
		return Report{Page: name}, err
	}

	path := g.cfg.Path(spec.path(g.cfg))
	report := Report{Page: name, Path: path}

	content, err := storage.ReadPage(path)
	if err != nil {
		return report, err
	}

	doc, err := page.Split(content, spec.layout)
	if err != nil {
		var markerErr *page.MarkerError
		if errors.As(err, &markerErr) {
			report.Problem = err.Error()
			return report, nil
		}
		return report, err
	}

	for _, region := range spec.layout {
		body, _ := doc.Body(region.Name)
		items, err := countItems(body, spec.selectors[region.Name])
		if err != nil {
			return report, fmt.Errorf("inspecting %s region %s: %w", name, region.Name, err)
		}
		report.Regions = append(report.Regions, RegionReport{
			Region: region.Name,
			Items:  items,
			Bytes:  len(body),
		})
	}

	return report, nil
}

// InspectAll inspects every page in run order.
func (g *Generator) InspectAll() ([]Report, error) {
	reports := make([]Report, 0, len(Pages))
	for _, name := range Pages {
		report, err := g.Inspect(name)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func countItems(body, selector string) (int, error) {
	if selector == "" || strings.TrimSpace(body) == "" {
		return 0, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return 0, err
	}
	return doc.Find(selector).Length(), nil
}
