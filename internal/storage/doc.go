// Package storage reads and replaces the site's files.
//
// Pages are read whole into memory and replaced whole. Replacement goes through
// a temporary file in the same directory that is renamed over the original, so a
// crash mid-write leaves either the old page or the new one, never a truncated
// file. Nothing is ever created from scratch: writing requires an existing page.
package storage
