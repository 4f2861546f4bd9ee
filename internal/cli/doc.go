// Package cli implements the command-line interface for sitegen.
//
// The cli package provides the Cobra-based CLI that regenerates the calendar,
// roster, gallery and landing pages of the site checkout, inspects what the
// generated regions currently hold, and reports the outcome as text or JSON.
// It wires configuration, logging and the site generator together.
package cli
