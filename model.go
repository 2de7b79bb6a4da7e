package fracture

// itemType identifies what a document node represents. Comments and blank
// lines are first-class nodes so they can survive reformatting.
type itemType int

const (
	itemNull itemType = iota
	itemFalse
	itemTrue
	itemString
	itemNumber
	itemObject
	itemArray
	itemBlankLine
	itemLineComment
	itemBlockComment
)

func isCommentOrBlank(t itemType) bool {
	return t == itemBlankLine || t == itemLineComment || t == itemBlockComment
}

func isContainer(t itemType) bool {
	return t == itemArray || t == itemObject
}

type tokenType int

const (
	tokenInvalid tokenType = iota
	tokenBeginArray
	tokenEndArray
	tokenBeginObject
	tokenEndObject
	tokenString
	tokenNumber
	tokenNull
	tokenTrue
	tokenFalse
	tokenBlockComment
	tokenLineComment
	tokenBlankLine
	tokenComma
	tokenColon
)

// InputPosition locates a token in the input. Index and Column count Unicode
// scalars, not bytes, so the numbers match what an editor shows.
type InputPosition struct {
	Index  int
	Row    int
	Column int
}

type token struct {
	typ  tokenType
	text string
	pos  InputPosition
}

// bracketPadding selects which bracket spacing rule applies to a container.
type bracketPadding int

const (
	paddingEmpty bracketPadding = iota
	paddingSimple
	paddingComplex
)

// item is one node of the annotated document tree produced by the parser.
// The length and complexity fields are filled in by the formatter before
// layout decisions are made.
type item struct {
	typ        itemType
	pos        InputPosition
	complexity int

	name  string
	value string

	prefixComment           string
	middleComment           string
	middleCommentHasNewline bool
	postfixComment          string
	postCommentLineStyle    bool

	nameLength           int
	valueLength          int
	prefixCommentLength  int
	middleCommentLength  int
	postfixCommentLength int
	minimumTotalLength   int

	requiresMultipleLines bool

	children []*item
}
