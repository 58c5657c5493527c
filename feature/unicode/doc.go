// Package unicode ingests the UnicodeData.txt character registry.
//
// The registry is semicolon-delimited with 15 positional fields per line.
// Every field is kept as a verbatim string; short lines are dropped with a
// diagnostic and duplicate code points resolve last-write-wins, matching the
// upsert semantics of the unicode_data table.
package unicode
