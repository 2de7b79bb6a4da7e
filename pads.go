package fracture

import "strings"

// paddedTokens precomputes every separator and bracket string the formatter
// writes, along with their display widths, so the layout math and the output
// always agree.
type paddedTokens struct {
	comma      string
	colon      string
	comment    string
	eolStr     string
	dummyComma string

	arrStart [3]string
	arrEnd   [3]string
	objStart [3]string
	objEnd   [3]string

	commaWidth   int
	colonWidth   int
	commentWidth int

	arrStartWidth [3]int
	arrEndWidth   [3]int
	objStartWidth [3]int
	objEndWidth   [3]int

	nullWidth  int
	trueWidth  int
	falseWidth int

	prefixWidth int

	indentUnit  string
	indentCache []string
}

func newPaddedTokens(opts Options, width func(string) int) *paddedTokens {
	p := &paddedTokens{}

	p.comma = ","
	if opts.CommaPadding {
		p.comma = ", "
	}
	p.colon = ":"
	if opts.ColonPadding {
		p.colon = ": "
	}
	p.comment = ""
	if opts.CommentPadding {
		p.comment = " "
	}
	p.eolStr = opts.JsonEolStyle.String()

	simpleArr := [2]string{"[", "]"}
	simpleObj := [2]string{"{", "}"}
	if opts.SimpleBracketPadding {
		simpleArr = [2]string{"[ ", " ]"}
		simpleObj = [2]string{"{ ", " }"}
	}
	complexArr := [2]string{"[", "]"}
	complexObj := [2]string{"{", "}"}
	if opts.NestedBracketPadding {
		complexArr = [2]string{"[ ", " ]"}
		complexObj = [2]string{"{ ", " }"}
	}

	p.arrStart = [3]string{"[", simpleArr[0], complexArr[0]}
	p.arrEnd = [3]string{"]", simpleArr[1], complexArr[1]}
	p.objStart = [3]string{"{", simpleObj[0], complexObj[0]}
	p.objEnd = [3]string{"}", simpleObj[1], complexObj[1]}

	p.commaWidth = width(p.comma)
	p.colonWidth = width(p.colon)
	p.commentWidth = width(p.comment)
	for i := 0; i < 3; i++ {
		p.arrStartWidth[i] = width(p.arrStart[i])
		p.arrEndWidth[i] = width(p.arrEnd[i])
		p.objStartWidth[i] = width(p.objStart[i])
		p.objEndWidth[i] = width(p.objEnd[i])
	}

	p.dummyComma = strings.Repeat(" ", p.commaWidth)

	p.nullWidth = width("null")
	p.trueWidth = width("true")
	p.falseWidth = width("false")
	p.prefixWidth = width(opts.PrefixString)

	if opts.UseTabToIndent {
		p.indentUnit = "\t"
	} else {
		p.indentUnit = strings.Repeat(" ", opts.IndentSpaces)
	}
	p.indentCache = []string{""}
	return p
}

func (p *paddedTokens) commaLen() int   { return p.commaWidth }
func (p *paddedTokens) colonLen() int   { return p.colonWidth }
func (p *paddedTokens) commentLen() int { return p.commentWidth }
func (p *paddedTokens) eol() string     { return p.eolStr }

func (p *paddedTokens) literalNullLen() int  { return p.nullWidth }
func (p *paddedTokens) literalTrueLen() int  { return p.trueWidth }
func (p *paddedTokens) literalFalseLen() int { return p.falseWidth }

func (p *paddedTokens) prefixStringLen() int { return p.prefixWidth }

func (p *paddedTokens) start(typ itemType, pad bracketPadding) string {
	if typ == itemArray {
		return p.arrStart[pad]
	}
	return p.objStart[pad]
}

func (p *paddedTokens) end(typ itemType, pad bracketPadding) string {
	if typ == itemArray {
		return p.arrEnd[pad]
	}
	return p.objEnd[pad]
}

func (p *paddedTokens) startLen(typ itemType, pad bracketPadding) int {
	if typ == itemArray {
		return p.arrStartWidth[pad]
	}
	return p.objStartWidth[pad]
}

func (p *paddedTokens) endLen(typ itemType, pad bracketPadding) int {
	if typ == itemArray {
		return p.arrEndWidth[pad]
	}
	return p.objEndWidth[pad]
}

func (p *paddedTokens) indent(depth int) string {
	for len(p.indentCache) <= depth {
		p.indentCache = append(p.indentCache, p.indentCache[len(p.indentCache)-1]+p.indentUnit)
	}
	return p.indentCache[depth]
}
