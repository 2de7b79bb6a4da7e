package fracture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreAndPostCommentsStayWithElems(t *testing.T) {
	input := normalizeQuotes(joinLines(
		"{",
		"    /*1*/ 'a': [true, true], /*2*/",
		"    'b': [false, false], ",
		"    /*3*/ 'c': [false, true] /*4*/",
		"}",
	))

	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve
	f.Options.MaxInlineComplexity = 2

	output, err := f.Reformat(input, 0)
	require.NoError(t, err)
	require.Len(t, splitTrimmedLines(output, "\n"), 1)

	f.Options.MaxInlineComplexity = 1
	output, err = f.Reformat(input, 0)
	require.NoError(t, err)
	outputLines := splitTrimmedLines(output, "\n")
	require.Len(t, outputLines, 5)
	require.Contains(t, outputLines[1], "\"a\"")
	require.Contains(t, outputLines[1], "/*2*/")
	require.Contains(t, outputLines[3], "\"c\"")
	require.Contains(t, outputLines[3], "/*3*/")

	f.Options.MaxInlineComplexity = 0
	f.Options.MaxCompactArrayComplexity = 0
	f.Options.MaxTableRowComplexity = 0

	output, err = f.Reformat(input, 0)
	require.NoError(t, err)
	outputLines = splitTrimmedLines(output, "\n")
	require.Len(t, outputLines, 14)
	require.Contains(t, outputLines[1], "/*1*/ \"a\"")
	require.Contains(t, outputLines[4], "] /*2*/,")
	require.Contains(t, outputLines[9], "/*3*/ \"c\"")
	require.Contains(t, outputLines[12], "] /*4*/")
}

func TestBlankLinesForceExpanded(t *testing.T) {
	input := joinLines("    [ 1,", "    ", "    2 ]")

	f := NewFormatter()
	output, err := f.Reformat(input, 0)
	require.NoError(t, err)
	require.Len(t, splitTrimmedLines(output, "\n"), 1)

	f.Options.PreserveBlankLines = true
	output, err = f.Reformat(input, 0)
	require.NoError(t, err)
	require.Len(t, splitTrimmedLines(output, "\n"), 5)
}

func TestCanInlineMiddleCommentsIfNoLineBreak(t *testing.T) {
	input := normalizeQuotes(joinLines("{'a': /*1*/", "[true,true]}"))

	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve

	output, err := f.Reformat(input, 0)
	require.NoError(t, err)
	outputLines := splitTrimmedLines(output, "\n")
	require.Len(t, outputLines, 1)
	require.Contains(t, outputLines[0], "/*1*/")

	f.Options.MaxInlineComplexity = 0
	output, err = f.Reformat(input, 0)
	require.NoError(t, err)
	outputLines = splitTrimmedLines(output, "\n")
	require.Contains(t, outputLines[1], "\"a\": /*1*/ [")
}

func TestSplitWhenMiddleCommentRequiresBreak1(t *testing.T) {
	input := normalizeQuotes(joinLines("{'a': //1", "[true,true]}"))

	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve

	output, err := f.Reformat(input, 0)
	require.NoError(t, err)
	outputLines := splitTrimmedLines(output, "\n")

	require.Len(t, outputLines, 8)
	require.Equal(t, 4, findCharIndex(outputLines[1], "\"a\""))
	require.Equal(t, 8, findCharIndex(outputLines[2], "//1"))
	require.Equal(t, 8, findCharIndex(outputLines[3], "["))
}

func TestSplitWhenMiddleCommentRequiresBreak2(t *testing.T) {
	input := normalizeQuotes(joinLines("{'a': /*1", "2*/ [true,true]}"))

	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve

	output, err := f.Reformat(input, 0)
	require.NoError(t, err)
	outputLines := splitTrimmedLines(output, "\n")

	require.Len(t, outputLines, 9)
	require.Equal(t, 4, findCharIndex(outputLines[1], "\"a\""))
	require.Equal(t, 8, findCharIndex(outputLines[2], "/*1"))
	require.Equal(t, 8, findCharIndex(outputLines[4], "["))
}

func TestMultilineCommentsPreserveRelativeSpacing(t *testing.T) {
	input := joinLines(
		"[ 1,",
		"  /* +",
		"     +",
		"     + */",
		"  2]",
	)

	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve

	output, err := f.Reformat(input, 0)
	require.NoError(t, err)
	outputLines := splitTrimmedLines(output, "\n")

	require.Len(t, outputLines, 7)
	require.True(t, doInstancesLineUp(outputLines, "+"))
}

func TestAmbiguousCommentsInArraysRespectCommas(t *testing.T) {
	input := normalizeQuotes(joinLines(
		"[ [ 'a' /*1*/, 'b' ],",
		"  [ 'c', /*2*/ 'd' ] ]",
	))

	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve
	f.Options.AlwaysExpandDepth = 99

	output, err := f.Reformat(input, 0)
	require.NoError(t, err)

	require.Len(t, splitTrimmedLines(output, "\n"), 10)
	require.Contains(t, output, "\"a\" /*1*/,")
	require.Contains(t, output, "/*2*/ \"d\"")
}

func TestAmbiguousCommentsInObjectsRespectCommas(t *testing.T) {
	input := normalizeQuotes(joinLines(
		"[ { 'a':'a' /*1*/, 'b':'b' },",
		"  { 'c':'c', /*2*/ 'd':'d'} ]",
	))

	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve
	f.Options.AlwaysExpandDepth = 99

	output, err := f.Reformat(input, 0)
	require.NoError(t, err)

	require.Len(t, splitTrimmedLines(output, "\n"), 10)
	require.Contains(t, output, "\"a\" /*1*/,")
	require.Contains(t, output, "/*2*/ \"d\"")
}

func TestTopLevelCommentsIgnoredIfSet(t *testing.T) {
	input := joinLines("//a", "[1,2, //b", "3]", "//c")

	f := NewFormatter()
	f.Options.CommentPolicy = CommentsRemove
	f.Options.AlwaysExpandDepth = 99

	output, err := f.Reformat(input, 0)
	require.NoError(t, err)
	require.NotContains(t, output, "//")
}

func TestNoCommasForCommentsExpanded(t *testing.T) {
	input := joinLines("[", "/*a*/", "1, false", "/*b*/", "]")

	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve

	output, err := f.Reformat(input, 0)
	require.NoError(t, err)

	require.Len(t, splitTrimmedLines(output, "\n"), 6)
	require.Equal(t, 1, strings.Count(output, ","))
}

func TestNoCommasForCommentsTable(t *testing.T) {
	input := joinLines("[", "/*a*/", "[1], [false]", "/*b*/", "]")

	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve

	output, err := f.Reformat(input, 0)
	require.NoError(t, err)

	require.Len(t, splitTrimmedLines(output, "\n"), 6)
	require.Contains(t, output, "[1    ]")
	require.Equal(t, 1, strings.Count(output, ","))
}

func TestErrorIfMultipleTopLevelElements(t *testing.T) {
	f := NewFormatter()
	_, err := f.Reformat("[1,2] [3,4]", 0)
	require.Error(t, err)
	_, err = f.Minify("[1,2] [3,4]")
	require.Error(t, err)
}

func TestErrorIfMultipleTopLevelElementsWithComma(t *testing.T) {
	f := NewFormatter()
	_, err := f.Reformat("[1,2], [3,4]", 0)
	require.Error(t, err)
	_, err = f.Minify("[1,2], [3,4]")
	require.Error(t, err)
}

func TestCommentsAfterTopLevelElementArePreserved(t *testing.T) {
	input := "/*a*/ [1,2] /*b*/ //c"

	f := NewFormatter()
	f.Options.CommentPolicy = CommentsPreserve

	output, err := f.Reformat(input, 0)
	require.NoError(t, err)
	require.Contains(t, output, "/*a*/")
	require.Contains(t, output, "/*b*/")
	require.Contains(t, output, "//c")

	minified, err := f.Minify(input)
	require.NoError(t, err)
	require.Contains(t, minified, "/*a*/")
	require.Contains(t, minified, "/*b*/")
	require.Contains(t, minified, "//c")
}
