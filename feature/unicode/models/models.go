package models

import "time"

// Character is one record from the UnicodeData registry.
//
// All attributes are verbatim strings from the source fields: numeric-looking
// fields stay text so empty values survive untouched.
type Character struct {
	CodePoint               string `json:"code_point"`
	Name                    string `json:"name"`
	GeneralCategory         string `json:"general_category"`
	CanonicalCombiningClass string `json:"canonical_combining_class"`
	BidirectionalCategory   string `json:"bidirectional_category"`
	Decomposition           string `json:"decomposition"`
	DecimalDigitValue       string `json:"decimal_digit_value"`
	DigitValue              string `json:"digit_value"`
	NumericValue            string `json:"numeric_value"`
	Mirrored                string `json:"mirrored"`
	Unicode1Name            string `json:"unicode_1_name"`
	ISO10646Comment         string `json:"iso_10646_comment"`
	UppercaseMapping        string `json:"uppercase_mapping"`
	LowercaseMapping        string `json:"lowercase_mapping"`
	TitlecaseMapping        string `json:"titlecase_mapping"`
}

// Registry is the flat in-memory collection of characters keyed by code
// point. A later record for the same code point replaces the earlier one.
type Registry map[string]Character

// Diagnostic records a skipped registry line.
type Diagnostic struct {
	// Line is the 1-based line number in the input.
	Line int `json:"line"`
	// Text is the raw line as read.
	Text string `json:"text"`
	// Reason explains why the line produced no record.
	Reason string `json:"reason"`
}

// Report summarizes one ingest of the UnicodeData registry.
type Report struct {
	TotalCharacters int    `json:"total_characters"`
	SkippedLines    int    `json:"skipped_lines"`
	GeneratedAt     string `json:"generated_at"`
	ExecutionTime   string `json:"execution_time"`
}

// NewReport builds an ingest report from a parsed registry.
func NewReport(reg Registry, diagnostics []Diagnostic, start time.Time) Report {
	return Report{
		TotalCharacters: len(reg),
		SkippedLines:    len(diagnostics),
		GeneratedAt:     time.Now().Format(time.RFC3339),
		ExecutionTime:   time.Since(start).String(),
	}
}

// Listing is the browse shape returned by store queries.
type Listing struct {
	CodePoint string `json:"code_point"`
	Name      string `json:"name"`
}
