package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sase-site/sitegen/internal/logger"
	"github.com/sase-site/sitegen/internal/site"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// RunOutput summarizes one generation run
type RunOutput struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Root        string           `json:"root"`
	Results     []site.Result    `json:"results"`
	Updated     int              `json:"updated"`
	Skipped     int              `json:"skipped"`
	Failed      int              `json:"failed"`
	Metrics     *logger.Snapshot `json:"metrics,omitempty"`
}

// NewRunOutput tallies results by status
func NewRunOutput(root string, results []site.Result) *RunOutput {
	out := &RunOutput{
		GeneratedAt: time.Now().UTC(),
		Root:        root,
		Results:     results,
	}
	for _, res := range results {
		switch res.Status {
		case site.StatusUpdated:
			out.Updated++
		case site.StatusSkipped:
			out.Skipped++
		case site.StatusFailed:
			out.Failed++
		}
	}
	return out
}

// InspectOutput lists the region reports of the inspected pages
type InspectOutput struct {
	InspectedAt time.Time     `json:"inspected_at"`
	Root        string        `json:"root"`
	Reports     []site.Report `json:"reports"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *RunOutput, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteInspect writes inspection reports in the specified format
func WriteInspect(w io.Writer, result *InspectOutput, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeInspectText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *RunOutput, verbose bool) error {
	if len(result.Results) == 0 {
		fmt.Fprintln(w, "No pages processed.")
		return nil
	}

	for _, res := range result.Results {
		switch res.Status {
		case site.StatusUpdated:
			fmt.Fprintf(w, "%-8s %-9s %s (%d items)\n", res.Status, res.Page, res.Path, res.Items)
		default:
			fmt.Fprintf(w, "%-8s %-9s %s\n", res.Status, res.Page, res.Path)
			if res.Reason != "" {
				fmt.Fprintf(w, "         reason: %s\n", res.Reason)
			}
		}
	}

	fmt.Fprintf(w, "\nTotal: %d updated, %d skipped, %d failed\n", result.Updated, result.Skipped, result.Failed)

	if verbose && result.Metrics != nil {
		fmt.Fprintln(w, "\nMetrics:")
		for _, name := range result.Metrics.Names() {
			fmt.Fprintf(w, "  %s: %d\n", name, result.Metrics.Counters[name])
		}
		for _, page := range site.Pages {
			if stats, ok := result.Metrics.Timings["page."+page]; ok {
				fmt.Fprintf(w, "  page.%s: %s (%d runs)\n", page, stats.Total, stats.Count)
			}
		}
	}

	return nil
}

// writeInspectText outputs one line per region, grouped by page
func writeInspectText(w io.Writer, result *InspectOutput) error {
	for _, report := range result.Reports {
		fmt.Fprintf(w, "%s (%s):\n", report.Page, report.Path)
		if report.Problem != "" {
			fmt.Fprintf(w, "  PROBLEM: %s\n", report.Problem)
			continue
		}
		for _, region := range report.Regions {
			fmt.Fprintf(w, "  %-14s %3d items  %6d bytes\n", region.Region, region.Items, region.Bytes)
		}
	}
	return nil
}
