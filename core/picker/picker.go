package picker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"unipick/core/finder"
	emojimodels "unipick/feature/emoji/models"
	unicodemodels "unipick/feature/unicode/models"
)

// ErrNoSelection is returned when the operator made no choice.
var ErrNoSelection = errors.New("no selection")

// FormatError reports a selected token that does not denote a valid Unicode
// scalar value.
type FormatError struct {
	Token string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid code point %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("invalid code point %q", e.Token)
}

func (e *FormatError) Unwrap() error { return e.Err }

// FlattenEmojis converts emoji listings into display lines for the fuzzy
// finder. The glyph is the first whitespace-delimited token of each line, so
// Resolve can recover it positionally.
func FlattenEmojis(rows []emojimodels.Listing) []string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s %s [%s/%s]", r.Emoji, r.Name, r.GroupName, r.SubgroupName))
	}
	return lines
}

// FlattenCharacters converts registry listings into display lines. The code
// point is the first whitespace-delimited token.
func FlattenCharacters(rows []unicodemodels.Listing) []string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s %s", r.CodePoint, r.Name))
	}
	return lines
}

// Resolve recovers the primary token (glyph or code point) from a selected
// display line. An empty selection yields ErrNoSelection.
func Resolve(selected string) (string, error) {
	fields := strings.Fields(selected)
	if len(fields) == 0 {
		return "", ErrNoSelection
	}
	return fields[0], nil
}

// Render interprets token as a hexadecimal code point and returns the textual
// form of the corresponding Unicode scalar value.
func Render(token string) (string, error) {
	v, err := strconv.ParseUint(token, 16, 32)
	if err != nil {
		return "", &FormatError{Token: token, Err: err}
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		// Surrogates and values beyond U+10FFFF are not scalar values.
		return "", &FormatError{Token: token}
	}
	return string(r), nil
}

// PickEmoji runs the full emoji selection flow: flatten, present, resolve.
// The result is the chosen glyph.
func PickEmoji(ctx context.Context, f finder.Finder, rows []emojimodels.Listing) (string, error) {
	selected, err := f.Pick(ctx, FlattenEmojis(rows))
	if err != nil {
		return "", err
	}
	return Resolve(selected)
}

// PickCharacter runs the character selection flow; the resolved code point is
// rendered to its glyph.
func PickCharacter(ctx context.Context, f finder.Finder, rows []unicodemodels.Listing) (string, error) {
	selected, err := f.Pick(ctx, FlattenCharacters(rows))
	if err != nil {
		return "", err
	}
	token, err := Resolve(selected)
	if err != nil {
		return "", err
	}
	return Render(token)
}
