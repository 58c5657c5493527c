// Package picker flattens store rows into single-line records for the fuzzy
// finder and maps a selected line back to a concrete character.
//
// The contract between Flatten and Resolve is positional: the primary token
// (emoji glyph or hexadecimal code point) is always the first
// whitespace-delimited token of a display line.
package picker
