package unicode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const grinningFaceLine = "1F600;GRINNING FACE;So;0;ON;;;;;N;;;;;"

func TestParse_SingleLine(t *testing.T) {
	registry, diags, err := Parse(strings.NewReader(grinningFaceLine))
	require.NoError(t, err)
	assert.Empty(t, diags)

	require.Len(t, registry, 1)
	c, ok := registry["1F600"]
	require.True(t, ok)
	assert.Equal(t, "1F600", c.CodePoint)
	assert.Equal(t, "GRINNING FACE", c.Name)
	assert.Equal(t, "So", c.GeneralCategory)
	assert.Equal(t, "0", c.CanonicalCombiningClass)
	assert.Equal(t, "ON", c.BidirectionalCategory)
	assert.Equal(t, "N", c.Mirrored)
}

func TestParse_AllFieldsPositional(t *testing.T) {
	line := "0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;"

	registry, _, err := Parse(strings.NewReader(line))
	require.NoError(t, err)

	c := registry["0041"]
	assert.Equal(t, "LATIN CAPITAL LETTER A", c.Name)
	assert.Equal(t, "Lu", c.GeneralCategory)
	assert.Equal(t, "0061", c.LowercaseMapping)
	assert.Equal(t, "", c.UppercaseMapping)
	assert.Equal(t, "", c.TitlecaseMapping)
}

func TestParse_EmptyNumericFieldsStayText(t *testing.T) {
	line := "0031;DIGIT ONE;Nd;0;EN;;1;1;1;N;;;;;"

	registry, _, err := Parse(strings.NewReader(line))
	require.NoError(t, err)

	c := registry["0031"]
	assert.Equal(t, "1", c.DecimalDigitValue)
	assert.Equal(t, "1", c.DigitValue)
	assert.Equal(t, "1", c.NumericValue)
}

func TestParse_ShortLineIsDroppedNotFatal(t *testing.T) {
	input := strings.Join([]string{
		"0041;LATIN CAPITAL LETTER A",
		grinningFaceLine,
	}, "\n")

	registry, diags, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, "too few semicolon fields", diags[0].Reason)

	// The rest of the file still parses.
	require.Len(t, registry, 1)
	assert.Contains(t, registry, "1F600")
}

func TestParse_DuplicateCodePointLastWriteWins(t *testing.T) {
	input := strings.Join([]string{
		"1F600;GRINNING FACE;So;0;ON;;;;;N;;;;;",
		"1F600;GRINNING FACE REVISED;Sk;0;ON;;;;;N;;;;;",
	}, "\n")

	registry, diags, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, diags)

	require.Len(t, registry, 1)
	c := registry["1F600"]
	assert.Equal(t, "GRINNING FACE REVISED", c.Name)
	assert.Equal(t, "Sk", c.GeneralCategory)
}

func TestParse_BlankLinesSkipped(t *testing.T) {
	input := "\n" + grinningFaceLine + "\n\n"

	registry, diags, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Len(t, registry, 1)
}
