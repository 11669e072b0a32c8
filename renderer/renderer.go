// Package renderer turns converter data structures into markdown reports,
// ready to be rendered on a terminal.
package renderer
