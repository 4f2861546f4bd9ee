// Package render turns rows into the HTML fragments spliced into the site's pages.
//
// Renderers are pure: they take rows (and, for the gallery, an image lookup) and
// return text. Markup is emitted verbatim, matching the hand-written pages
// around it; cell values are inserted without escaping.
package render
