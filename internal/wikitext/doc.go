// Package wikitext normalizes wiki table cell markup into either plain
// text or a portable [text](url) link form that survives intermediate
// processing until final rendering.
package wikitext
