package fracture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var propAlignmentInput = joinLines(
	"{",
	"    \"num\": 14,",
	"    \"string\": \"testing property alignment\",",
	"    \"arrayWithLongName\": [null, null, null]",
	"}",
)

func TestPropValuesAligned(t *testing.T) {
	f := NewFormatter()
	f.Options.MaxPropNamePadding = 15
	f.Options.ColonBeforePropNamePadding = false
	f.Options.MaxInlineComplexity = -1
	f.Options.MaxCompactArrayComplexity = -1

	output, err := f.Reformat(propAlignmentInput, 0)
	require.NoError(t, err)
	outputLines := splitTrimmedLines(output, "\n")

	require.Len(t, outputLines, 9)
	require.True(t, doInstancesLineUp(outputLines, ":"))
}

func TestPropValuesAlignedButNotColons(t *testing.T) {
	f := NewFormatter()
	f.Options.MaxPropNamePadding = 15
	f.Options.ColonBeforePropNamePadding = true
	f.Options.MaxInlineComplexity = -1
	f.Options.MaxCompactArrayComplexity = -1

	output, err := f.Reformat(propAlignmentInput, 0)
	require.NoError(t, err)
	outputLines := splitTrimmedLines(output, "\n")

	require.Len(t, outputLines, 9)
	require.Contains(t, outputLines[1], "\"num\":")
	require.Contains(t, outputLines[2], "\"string\":")
	require.Contains(t, outputLines[3], "\"arrayWithLongName\":")
	require.Equal(t, findCharIndex(outputLines[1], "14"), findCharIndex(outputLines[2], "\"testing"))
	require.Equal(t, findCharIndex(outputLines[1], "14"), findCharIndex(outputLines[3], "["))
}

func TestDontAlignPropValsWhenTooMuchPaddingRequired(t *testing.T) {
	f := NewFormatter()
	f.Options.MaxPropNamePadding = 12
	f.Options.ColonBeforePropNamePadding = false
	f.Options.MaxInlineComplexity = -1
	f.Options.MaxCompactArrayComplexity = -1

	output, err := f.Reformat(propAlignmentInput, 0)
	require.NoError(t, err)
	outputLines := splitTrimmedLines(output, "\n")

	require.Len(t, outputLines, 9)
	require.Contains(t, outputLines[1], "\"num\": 14")
	require.Contains(t, outputLines[2], "\"string\": \"testing")
	require.Contains(t, outputLines[3], "\"arrayWithLongName\": [")
}

var commentedPropInputLine = joinLines(
	"{",
	"    \"foo\": // this is foo",
	"        [1, 2, 4],",
	"    \"bar\": null,",
	"    \"bazzzz\": /* this is baz */ [0]",
	"}",
)

var commentedPropInputBlock = joinLines(
	"{",
	"    \"foo\": /* this is foo */",
	"        [1, 2, 4],",
	"    \"bar\": null,",
	"    \"bazzzz\": /* this is baz */ [0]",
	"}",
)

func TestDontAlignPropValsWhenMultilineComment(t *testing.T) {
	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve
	f.Options.ColonBeforePropNamePadding = false

	output, err := f.Reformat(commentedPropInputLine, 0)
	require.NoError(t, err)
	outputLines := splitTrimmedLines(output, "\n")

	require.Len(t, outputLines, 11)
	require.NotEqual(t, findCharIndex(outputLines[9], ":"), findCharIndex(outputLines[8], ":"))
}

func TestAlignPropValsWhenSimpleComment(t *testing.T) {
	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve
	f.Options.ColonBeforePropNamePadding = false
	f.Options.MaxTotalLineLength = 80

	output, err := f.Reformat(commentedPropInputBlock, 0)
	require.NoError(t, err)
	outputLines := splitTrimmedLines(output, "\n")

	require.Len(t, outputLines, 5)
	require.True(t, doInstancesLineUp(outputLines, "["))
}

func TestAlignPropValsWhenArrayWraps(t *testing.T) {
	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve
	f.Options.ColonBeforePropNamePadding = false
	f.Options.MaxTotalLineLength = 38

	output, err := f.Reformat(commentedPropInputBlock, 0)
	require.NoError(t, err)
	outputLines := splitTrimmedLines(output, "\n")

	require.Len(t, outputLines, 7)
	require.True(t, doInstancesLineUp(outputLines, "["))
	require.True(t, doInstancesLineUp(outputLines, ":"))
}

func TestDontAlignWhenSimpleValueTooLong(t *testing.T) {
	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve
	f.Options.ColonBeforePropNamePadding = false
	f.Options.MaxTotalLineLength = 36

	output, err := f.Reformat(commentedPropInputBlock, 0)
	require.NoError(t, err)
	outputLines := splitTrimmedLines(output, "\n")

	require.Len(t, outputLines, 7)
	require.Contains(t, output, "\"bar\":")
	require.NotEqual(t, findCharIndex(outputLines[1], ":"), findCharIndex(outputLines[5], ":"))
}
