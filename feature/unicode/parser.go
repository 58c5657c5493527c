package unicode

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"unipick/feature/unicode/models"
)

// fieldCount is the number of semicolon-delimited fields in a registry line.
const fieldCount = 15

// Parse reads the UnicodeData registry format.
//
// Each line splits on semicolons into exactly 15 positional fields; the first
// is the code point key, the rest map verbatim onto the Character attributes.
// Lines with fewer fields are dropped with a diagnostic. There is no comment
// syntax in this format. A later line with a duplicate code point overwrites
// the earlier record.
func Parse(r io.Reader) (models.Registry, []models.Diagnostic, error) {
	registry := models.Registry{}
	var diagnostics []models.Diagnostic

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		fields := strings.Split(line, ";")
		if len(fields) < fieldCount {
			diagnostics = append(diagnostics, models.Diagnostic{Line: lineNo, Text: line, Reason: "too few semicolon fields"})
			continue
		}

		cp := fields[0]
		registry[cp] = models.Character{
			CodePoint:               cp,
			Name:                    fields[1],
			GeneralCategory:         fields[2],
			CanonicalCombiningClass: fields[3],
			BidirectionalCategory:   fields[4],
			Decomposition:           fields[5],
			DecimalDigitValue:       fields[6],
			DigitValue:              fields[7],
			NumericValue:            fields[8],
			Mirrored:                fields[9],
			Unicode1Name:            fields[10],
			ISO10646Comment:         fields[11],
			UppercaseMapping:        fields[12],
			LowercaseMapping:        fields[13],
			TitlecaseMapping:        fields[14],
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read unicode data: %w", err)
	}

	return registry, diagnostics, nil
}

// ParseFile parses the UnicodeData registry file at path.
func ParseFile(path string) (models.Registry, []models.Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open unicode data file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
