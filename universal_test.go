package fracture

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Samples without comments, exercised against every generated option set.
// String literals deliberately avoid escaped quotes so the scan in
// TestUniversalAllStringsExist can pair quote characters naively.
var standardSamples = []string{
	normalizeQuotes(joinLines(
		"{",
		"    'SimpleItem': 77,",
		"    'ComplexObject': {",
		"        'Subthing1': { 'X': 55, 'Y': 19, 'Z': -4 },",
		"        'Subthing2': { 'Q': null, 'W': [-2, -1, 0, 1] },",
		"        'Distraction': [[], null, null]",
		"    },",
		"    'ShortArray': ['blue', 'blue', 'orange', 'gray'],",
		"    'LongArray': [2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71],",
		"    'LongArray2': [",
		"        [19, 2],",
		"        [3, 8],",
		"        [14, 0],",
		"        [9, 9],",
		"        [9, 9],",
		"        [0, 3],",
		"        [10, 1],",
		"        [9, 9],",
		"        [9, 9]",
		"    ]",
		"}",
	)),
	normalizeQuotes(joinLines(
		"[",
		"    { 'name': 'apple', 'count': 14, 'price': 0.5, 'organic': true },",
		"    { 'name': 'banana', 'count': 1, 'price': 0.25, 'organic': false },",
		"    { 'name': 'cherry', 'count': 722, 'price': 0.01, 'organic': null }",
		"]",
	)),
	normalizeQuotes(joinLines(
		"{",
		"    'matrix': [[1.1, 2.22, 3], [44, 5.5, 6], [7, 8, 99.999]],",
		"    'meta': { 'rows': 3, 'cols': 3, 'label': 'mostly-numeric' },",
		"    'empty': {},",
		"    'nothing': [],",
		"    'words': ['alpha', 'beta', 'gamma', 'delta', 'epsilon', 'zeta']",
		"}",
	)),
	normalizeQuotes("[[1, 2], [3, 4], 'five', 6, null, true, { 'x': 0 }]"),
	"3.14",
}

// Samples with comments and blank lines, run with preservation turned on.
var commentSamples = []string{
	normalizeQuotes(joinLines(
		"{",
		"    // Leading comment about the first property",
		"    'alpha': [1, 2, 3],",
		"",
		"    'beta': { 'x': 5, 'y': 6 }, // trailing remark",
		"    /* block */ 'gamma': null,",
		"    'delta': 'done'",
		"}",
	)),
	normalizeQuotes(joinLines(
		"[",
		"    // first",
		"    [1, 2],",
		"    [3, 4], // second",
		"",
		"    /* standalone */",
		"    [5, 6]",
		"]",
	)),
}

type universalParams struct {
	text string
	opts Options
}

func universalOptionsList() []Options {
	var optsList []Options

	for inline := -1; inline <= 3; inline++ {
		for array := -1; array <= 3; array++ {
			for table := -1; table <= 3; table++ {
				opts := DefaultOptions()
				opts.MaxInlineComplexity = inline
				opts.MaxCompactArrayComplexity = array
				opts.MaxTableRowComplexity = table
				optsList = append(optsList, opts)
			}
		}
	}

	for length := 12; length <= 55; length++ {
		opts := DefaultOptions()
		opts.MaxTotalLineLength = length
		optsList = append(optsList, opts)
	}

	optsList = append(optsList, DefaultOptions())

	opts := DefaultOptions()
	opts.MaxInlineComplexity = 10000
	optsList = append(optsList, opts)

	opts = DefaultOptions()
	opts.JsonEolStyle = EolCrlf
	optsList = append(optsList, opts)

	opts = DefaultOptions()
	opts.JsonEolStyle = EolLf
	optsList = append(optsList, opts)

	opts = DefaultOptions()
	opts.MaxInlineComplexity = 10
	opts.MaxCompactArrayComplexity = 10
	opts.MaxTableRowComplexity = 10
	opts.MaxTotalLineLength = 1000
	optsList = append(optsList, opts)

	opts = DefaultOptions()
	opts.NestedBracketPadding = false
	opts.SimpleBracketPadding = true
	opts.ColonPadding = false
	opts.CommentPadding = false
	opts.IndentSpaces = 3
	opts.PrefixString = "\t\t"
	optsList = append(optsList, opts)

	opts = DefaultOptions()
	opts.TableCommaPlacement = CommasBeforePadding
	opts.NumberListAlignment = NumbersLeft
	optsList = append(optsList, opts)

	opts = DefaultOptions()
	opts.TableCommaPlacement = CommasBeforePaddingExceptNumbers
	opts.NumberListAlignment = NumbersDecimal
	optsList = append(optsList, opts)

	opts = DefaultOptions()
	opts.TableCommaPlacement = CommasBeforePaddingExceptNumbers
	opts.NumberListAlignment = NumbersNormalize
	optsList = append(optsList, opts)

	return optsList
}

func generateUniversalParams() []universalParams {
	var params []universalParams
	for _, text := range standardSamples {
		for _, opts := range universalOptionsList() {
			params = append(params, universalParams{text: text, opts: opts})
		}
	}
	for _, text := range commentSamples {
		for _, opts := range universalOptionsList() {
			opts.CommentPolicy = CommentsPreserve
			opts.PreserveBlankLines = true
			params = append(params, universalParams{text: text, opts: opts})
		}
	}
	return params
}

func TestUniversalIsWellFormed(t *testing.T) {
	for _, params := range generateUniversalParams() {
		f := NewFormatter()
		f.Options = params.opts
		if f.Options.CommentPolicy == CommentsPreserve {
			f.Options.CommentPolicy = CommentsRemove
		}

		output, err := f.Reformat(params.text, 0)
		require.NoError(t, err)
		require.True(t, json.Valid([]byte(output)), "output:\n%s", output)
	}
}

func TestUniversalAllStringsExist(t *testing.T) {
	for _, params := range generateUniversalParams() {
		f := NewFormatter()
		f.Options = params.opts
		output, err := f.Reformat(params.text, 0)
		require.NoError(t, err)

		chars := []rune(params.text)
		startPos := 0
		for startPos < len(chars) {
			for startPos < len(chars) && chars[startPos] != '"' {
				startPos++
			}
			endPos := startPos + 1
			for endPos < len(chars) && chars[endPos] != '"' {
				endPos++
			}
			if endPos >= len(chars) {
				break
			}
			stringFromSource := string(chars[startPos+1 : endPos])
			require.Contains(t, output, stringFromSource)
			startPos = endPos + 1
		}
	}
}

// Lines longer than the budget are only allowed when a single element
// doesn't fit; those carry at most a trailing comma.
func TestUniversalMaxLengthRespected(t *testing.T) {
	for _, params := range generateUniversalParams() {
		f := NewFormatter()
		f.Options = params.opts
		output, err := f.Reformat(params.text, 0)
		require.NoError(t, err)

		for _, line := range splitTrimmedLines(output, params.opts.JsonEolStyle.String()) {
			if len([]rune(line)) <= params.opts.MaxTotalLineLength {
				continue
			}
			require.LessOrEqual(t, strings.Count(line, ","), 1, "line: %s", line)
		}
	}
}

func TestUniversalMaxInlineComplexityRespected(t *testing.T) {
	for _, params := range generateUniversalParams() {
		f := NewFormatter()
		f.Options = params.opts
		output, err := f.Reformat(params.text, 0)
		require.NoError(t, err)

		biggestComplexity := max(0, params.opts.MaxInlineComplexity,
			params.opts.MaxCompactArrayComplexity, params.opts.MaxTableRowComplexity)

		for _, line := range splitTrimmedLines(output, params.opts.JsonEolStyle.String()) {
			openCount := 0
			nestLevel := 0
			topLevelCommaSeen := false
			multipleTopLevelItems := false
			for _, ch := range line {
				switch ch {
				case ' ', '\t':
				case '[', '{':
					if topLevelCommaSeen && openCount == 0 {
						multipleTopLevelItems = true
					}
					openCount++
				case ']', '}':
					openCount--
					nestLevel = max(nestLevel, openCount)
				default:
					if topLevelCommaSeen && openCount == 0 {
						multipleTopLevelItems = true
					}
					if ch == ',' && openCount == 0 {
						topLevelCommaSeen = true
					}
					nestLevel = max(nestLevel, openCount)
				}
			}

			if multipleTopLevelItems && params.opts.CommentPolicy != CommentsPreserve {
				require.LessOrEqual(t, nestLevel, params.opts.MaxCompactArrayComplexity, "line: %s", line)
				continue
			}
			require.LessOrEqual(t, nestLevel, biggestComplexity, "line: %s", line)
		}
	}
}

func TestUniversalRepeatedFormattingIsStable(t *testing.T) {
	for _, params := range generateUniversalParams() {
		mainFormatter := NewFormatter()
		mainFormatter.Options = params.opts
		initialOutput, err := mainFormatter.Reformat(params.text, 0)
		require.NoError(t, err)

		crunchOutput, err := mainFormatter.Minify(initialOutput)
		require.NoError(t, err)
		backToStart1, err := mainFormatter.Reformat(crunchOutput, 0)
		require.NoError(t, err)
		require.Equal(t, initialOutput, backToStart1)

		expandFormatter := NewFormatter()
		expandFormatter.Options = DefaultOptions()
		expandFormatter.Options.AlwaysExpandDepth = math.MaxInt
		expandFormatter.Options.CommentPolicy = CommentsPreserve
		expandFormatter.Options.PreserveBlankLines = true
		expandFormatter.Options.NumberListAlignment = NumbersDecimal

		expandOutput, err := expandFormatter.Reformat(crunchOutput, 0)
		require.NoError(t, err)
		backToStart2, err := mainFormatter.Reformat(expandOutput, 0)
		require.NoError(t, err)
		require.Equal(t, initialOutput, backToStart2)
	}
}

func TestUniversalNoTrailingWhitespace(t *testing.T) {
	for _, params := range generateUniversalParams() {
		f := NewFormatter()
		f.Options = params.opts
		output, err := f.Reformat(params.text, 0)
		require.NoError(t, err)

		for _, line := range strings.Split(strings.TrimRight(output, "\r\n"), params.opts.JsonEolStyle.String()) {
			require.Equal(t, strings.TrimRight(line, " \t"), line)
		}
	}
}
