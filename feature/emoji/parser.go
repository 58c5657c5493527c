package emoji

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"unipick/feature/emoji/models"
)

// Parse reads the emoji-test format into a catalog.
//
// The pass is strictly line-oriented with two pieces of mutable section state:
// the current group and the current subgroup. Data lines seen before both
// headers are dropped, never stored with empty sections. A malformed line is
// recorded as a diagnostic and skipped; it never aborts the pass. The only
// error returned is an I/O failure from the reader.
func Parse(r io.Reader) (*models.Catalog, []models.Diagnostic, error) {
	catalog := &models.Catalog{}
	var diagnostics []models.Diagnostic

	var currGroup, currSubgroup string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			switch {
			case strings.HasPrefix(line, "# group"):
				if _, name, ok := strings.Cut(line, ":"); ok {
					currGroup = strings.TrimSpace(name)
					catalog.EnsureGroup(currGroup)
				}
			case strings.HasPrefix(line, "# subgroup"):
				if _, name, ok := strings.Cut(line, ":"); ok && currGroup != "" {
					currSubgroup = strings.TrimSpace(name)
					catalog.ResetSubgroup(currGroup, currSubgroup)
				}
			}
			// Any other comment line carries no data.
			continue
		}

		entry, reason := parseDataLine(line)
		if reason != "" {
			diagnostics = append(diagnostics, models.Diagnostic{Line: lineNo, Text: line, Reason: reason})
			continue
		}

		if currGroup == "" || currSubgroup == "" {
			diagnostics = append(diagnostics, models.Diagnostic{Line: lineNo, Text: line, Reason: "entry before group/subgroup header"})
			continue
		}
		// The subgroup tracker survives a group header, so a stale subgroup
		// name may not exist under the current group yet.
		if !catalog.Append(currGroup, currSubgroup, entry) {
			diagnostics = append(diagnostics, models.Diagnostic{Line: lineNo, Text: line, Reason: "entry outside a declared subgroup"})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read emoji test data: %w", err)
	}

	return catalog, diagnostics, nil
}

// parseDataLine splits a data line of the shape
//
//	1F600 ; fully-qualified # 😀 grinning face
//
// into an entry. A non-empty reason marks the line as malformed.
func parseDataLine(line string) (models.Entry, string) {
	left, right, ok := strings.Cut(line, "#")
	if !ok {
		return models.Entry{}, "missing comment marker"
	}
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)

	// Left part: code points and status, semicolon-delimited.
	parts := strings.Split(left, ";")
	if len(parts) < 2 {
		return models.Entry{}, "too few semicolon fields"
	}
	codepoints := strings.Fields(parts[0])
	status := strings.TrimSpace(parts[1])

	// Right part: glyph first, the rest is the display name.
	glyph, name, _ := strings.Cut(right, " ")

	return models.Entry{
		Codepoints: codepoints,
		Status:     status,
		Emoji:      glyph,
		Name:       strings.TrimSpace(name),
	}, ""
}

// ParseFile parses the emoji test file at path.
func ParseFile(path string) (*models.Catalog, []models.Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open emoji test file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
