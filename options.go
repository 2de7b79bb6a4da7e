package fracture

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// EolStyle selects the line terminator for formatted output.
type EolStyle int

const (
	EolLf EolStyle = iota
	EolCrlf
)

// CommentPolicy decides what happens when the input contains comments.
type CommentPolicy int

const (
	// CommentsError rejects any input containing comments. This is the
	// default, matching strict JSON.
	CommentsError CommentPolicy = iota
	// CommentsRemove parses comments but drops them from the output.
	CommentsRemove
	// CommentsPreserve keeps comments attached to nearby elements.
	CommentsPreserve
)

// NumberListAlignment controls how number columns are lined up in tables.
type NumberListAlignment int

const (
	// NumbersLeft pads number literals on the right, leaving them as written.
	NumbersLeft NumberListAlignment = iota
	// NumbersRight pads number literals on the left, leaving them as written.
	NumbersRight
	// NumbersDecimal lines up the decimal points and exponents without
	// rewriting the literals.
	NumbersDecimal
	// NumbersNormalize rewrites the column in plain fixed notation with a
	// shared number of fractional digits. Falls back to NumbersLeft when a
	// value can't be represented faithfully.
	NumbersNormalize
)

// TableCommaPlacement controls where row commas go relative to column padding.
type TableCommaPlacement int

const (
	// CommasBeforePadding puts the comma right after the value, before the
	// padding that fills out the column.
	CommasBeforePadding TableCommaPlacement = iota
	// CommasAfterPadding puts the comma after the padding, so all commas in
	// a column line up.
	CommasAfterPadding
	// CommasBeforePaddingExceptNumbers behaves like CommasBeforePadding for
	// most columns but keeps aligned commas for number columns, where the
	// padding is part of the alignment.
	CommasBeforePaddingExceptNumbers
)

// Options holds every knob the formatter understands. The zero value is not
// useful; start from DefaultOptions and adjust.
type Options struct {
	// JsonEolStyle selects LF or CRLF line endings.
	JsonEolStyle EolStyle

	// MaxTotalLineLength is the budget for a complete output line, including
	// prefix and indentation.
	MaxTotalLineLength int

	// MaxInlineComplexity is the deepest nesting a container may have and
	// still be written on a single line. Negative disables inlining.
	MaxInlineComplexity int

	// MaxCompactArrayComplexity limits which arrays may be packed several
	// elements per line.
	MaxCompactArrayComplexity int

	// MaxTableRowComplexity limits which containers may be formatted as
	// table rows with aligned columns.
	MaxTableRowComplexity int

	// MaxPropNamePadding caps how many spaces may be spent lining up
	// property values in an expanded object. Zero disables the alignment
	// whenever names differ in length.
	MaxPropNamePadding int

	// ColonBeforePropNamePadding puts the colon right after the property
	// name instead of after the padding.
	ColonBeforePropNamePadding bool

	TableCommaPlacement TableCommaPlacement

	// MinCompactArrayRowItems is the fewest items that must fit on a line
	// for the compact multi-line array layout to be worthwhile.
	MinCompactArrayRowItems int

	// AlwaysExpandDepth forces expanded formatting for containers at or
	// above this depth. -1 (the default) never forces expansion.
	AlwaysExpandDepth int

	// NestedBracketPadding pads brackets of containers that hold other
	// containers, as in "[ [1, 2], [3] ]".
	NestedBracketPadding bool

	// SimpleBracketPadding pads brackets of containers that hold only
	// simple values.
	SimpleBracketPadding bool

	ColonPadding   bool
	CommaPadding   bool
	CommentPadding bool

	NumberListAlignment NumberListAlignment

	// IndentSpaces is the indentation width per depth. It is also used for
	// line budget math when UseTabToIndent is set.
	IndentSpaces   int
	UseTabToIndent bool

	// PrefixString is written at the start of every output line, useful for
	// embedding formatted JSON inside other text.
	PrefixString string

	CommentPolicy       CommentPolicy
	PreserveBlankLines  bool
	AllowTrailingCommas bool
}

// DefaultOptions returns the recommended settings: 120 column budget, four
// space indents, moderate inlining and table complexity, strict JSON input.
func DefaultOptions() Options {
	return Options{
		JsonEolStyle:               EolLf,
		MaxTotalLineLength:         120,
		MaxInlineComplexity:        2,
		MaxCompactArrayComplexity:  2,
		MaxTableRowComplexity:      2,
		MaxPropNamePadding:         16,
		ColonBeforePropNamePadding: false,
		TableCommaPlacement:        CommasBeforePaddingExceptNumbers,
		MinCompactArrayRowItems:    3,
		AlwaysExpandDepth:          -1,
		NestedBracketPadding:       true,
		SimpleBracketPadding:       false,
		ColonPadding:               true,
		CommaPadding:               true,
		CommentPadding:             true,
		NumberListAlignment:        NumbersDecimal,
		IndentSpaces:               4,
		UseTabToIndent:             false,
		PrefixString:               "",
		CommentPolicy:              CommentsError,
		PreserveBlankLines:         false,
		AllowTrailingCommas:        false,
	}
}

func (s EolStyle) String() string {
	if s == EolCrlf {
		return "\r\n"
	}
	return "\n"
}

// StringWidthByRuneCount is the default width function: one cell per Unicode
// scalar. Good enough for most Western text.
func StringWidthByRuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// StringWidthEastAsian measures display cells, counting East Asian wide
// characters as two. Use it when column alignment must hold up in terminals
// showing CJK text.
func StringWidthEastAsian(s string) int {
	return runewidth.StringWidth(s)
}
