// Package page splits HTML documents at marker comments and reassembles them.
//
// A page declares one or more regions, each bounded by a start marker and an
// end marker. Only the text strictly between the end of a start marker and the
// beginning of its end marker is generated; everything else, markers included,
// is static and is written back byte for byte.
package page

import (
	"fmt"
	"strings"
)

// Region is a generated span bounded by two marker comments.
type Region struct {
	Name  string
	Start string
	End   string
}

// MarkerError reports a marker that is missing or out of order.
type MarkerError struct {
	Region string
	Marker string
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("could not find %s comment marker for region %q", e.Marker, e.Region)
}

// Document is a page split into static spans and generated bodies.
// For n regions there are n+1 static spans: the header, the text between
// consecutive regions, and the footer.
type Document struct {
	regions []Region
	static  []string
	bodies  []string
}

// Split locates every region of layout in content, in order. Each start marker
// is searched after the previous region's end marker and each end marker after
// its start marker, so markers must appear in pairs and in layout order.
func Split(content string, layout []Region) (*Document, error) {
	doc := &Document{
		regions: layout,
		static:  make([]string, 0, len(layout)+1),
		bodies:  make([]string, 0, len(layout)),
	}

	staticFrom := 0
	for _, region := range layout {
		start := strings.Index(content[staticFrom:], region.Start)
		if start == -1 {
			return nil, &MarkerError{Region: region.Name, Marker: region.Start}
		}
		bodyFrom := staticFrom + start + len(region.Start)

		end := strings.Index(content[bodyFrom:], region.End)
		if end == -1 {
			return nil, &MarkerError{Region: region.Name, Marker: region.End}
		}
		bodyTo := bodyFrom + end

		doc.static = append(doc.static, content[staticFrom:bodyFrom])
		doc.bodies = append(doc.bodies, content[bodyFrom:bodyTo])
		staticFrom = bodyTo
	}
	doc.static = append(doc.static, content[staticFrom:])

	return doc, nil
}

// Header is everything up to and including the first start marker.
func (d *Document) Header() string {
	return d.static[0]
}

// Footer is everything from the last end marker onward.
func (d *Document) Footer() string {
	return d.static[len(d.static)-1]
}

// Body returns the current text of the named region.
func (d *Document) Body(name string) (string, bool) {
	for i, r := range d.regions {
		if r.Name == name {
			return d.bodies[i], true
		}
	}
	return "", false
}

// SetBody replaces the text of the named region.
func (d *Document) SetBody(name, body string) error {
	for i, r := range d.regions {
		if r.Name == name {
			d.bodies[i] = body
			return nil
		}
	}
	return fmt.Errorf("unknown region %q", name)
}

// String concatenates the static spans and bodies back into a page.
func (d *Document) String() string {
	var b strings.Builder
	for i, body := range d.bodies {
		b.WriteString(d.static[i])
		b.WriteString(body)
	}
	b.WriteString(d.static[len(d.static)-1])
	return b.String()
}
