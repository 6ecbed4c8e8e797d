// Package render assembles the per-cycle output in one of four formats:
// a Discord message body, plain text, Markdown, or a standalone HTML
// document. Rendering is pure string assembly with the same field order
// in every format; only the link treatment differs.
package render
