package fracture

import (
	"math"
	"strconv"
	"strings"
)

type tableColumnType int

const (
	columnUnknown tableColumnType = iota
	columnSimple
	columnNumber
	columnArray
	columnObject
	columnMixed
)

// tableTemplate measures a column of sibling values so they can be written
// with aligned fields. For container values it recurses, building a
// sub-template per position (arrays) or per property name (objects).
type tableTemplate struct {
	pads      *paddedTokens
	alignment NumberListAlignment

	// locationInParent is the property name this column holds, when the
	// parent column is an object.
	locationInParent string

	columnType tableColumnType
	rowCount   int
	padType    bracketPadding

	nameLength  int
	nameMinimum int

	prefixCommentLength  int
	middleCommentLength  int
	postfixCommentLength int

	isAnyPostCommentLineStyle  bool
	anyMiddleCommentHasNewline bool
	requiresMultipleLines      bool

	// simpleValueLength is the widest scalar in the column; rowValueLength
	// is the widest value of any kind.
	simpleValueLength int
	rowValueLength    int

	compositeValueLength int
	totalLength          int

	// Container columns narrower than "null" get padded out so a null row
	// still fits.
	shorterThanNullAdjustment int
	containsNull              bool

	children []*tableTemplate

	// Number column statistics.
	maxLiteralWidth int
	maxIntWidth     int
	maxFracWidth    int
	maxExpWidth     int
	anyFrac         bool
	anyExp          bool
	parseFailed     bool
	tooPrecise      bool
	vals            []float64
	normDigits      int

	// Derived when stats are computed.
	numIntField int
	// useLiteralAlignment means the configured number alignment can't be
	// applied faithfully, so the column falls back to left-aligned
	// literals.
	useLiteralAlignment bool
	// demoted records that tryToFit gave up on fancy number alignment to
	// save space.
	demoted bool
}

func newTableTemplate(pads *paddedTokens, alignment NumberListAlignment) *tableTemplate {
	return &tableTemplate{pads: pads, alignment: alignment, nameMinimum: -1}
}

func (t *tableTemplate) clone() *tableTemplate {
	dup := *t
	dup.children = make([]*tableTemplate, len(t.children))
	for i, c := range t.children {
		dup.children[i] = c.clone()
	}
	return &dup
}

// measureTableRoot sizes the template from a container's children, treating
// each non-comment child as one row. With recursive set, container rows get
// per-column sub-templates too.
func (t *tableTemplate) measureTableRoot(container *item, recursive bool) {
	for _, row := range container.children {
		if isCommentOrBlank(row.typ) {
			continue
		}
		t.measureRowSegment(row, recursive)
	}
	t.computeStats()
}

func (t *tableTemplate) measureRowSegment(row *item, recursive bool) {
	t.rowCount++

	if row.nameLength > t.nameLength {
		t.nameLength = row.nameLength
	}
	if t.nameMinimum < 0 || row.nameLength < t.nameMinimum {
		t.nameMinimum = row.nameLength
	}
	if row.prefixCommentLength > t.prefixCommentLength {
		t.prefixCommentLength = row.prefixCommentLength
	}
	if row.middleCommentLength > t.middleCommentLength {
		t.middleCommentLength = row.middleCommentLength
	}
	if row.postfixCommentLength > t.postfixCommentLength {
		t.postfixCommentLength = row.postfixCommentLength
	}
	t.isAnyPostCommentLineStyle = t.isAnyPostCommentLineStyle || row.postCommentLineStyle
	t.anyMiddleCommentHasNewline = t.anyMiddleCommentHasNewline || row.middleCommentHasNewline
	t.requiresMultipleLines = t.requiresMultipleLines || row.requiresMultipleLines

	if row.valueLength > t.rowValueLength {
		t.rowValueLength = row.valueLength
	}

	switch row.typ {
	case itemNull:
		t.containsNull = true
		if row.valueLength > t.simpleValueLength {
			t.simpleValueLength = row.valueLength
		}
	case itemTrue, itemFalse, itemString:
		t.mergeType(columnSimple)
		if row.valueLength > t.simpleValueLength {
			t.simpleValueLength = row.valueLength
		}
	case itemNumber:
		t.mergeType(columnNumber)
		if row.valueLength > t.simpleValueLength {
			t.simpleValueLength = row.valueLength
		}
		t.addNumberStats(row)
	case itemArray:
		t.mergeType(columnArray)
		if recursive && t.columnType == columnArray {
			if pt := getPaddingType(row); pt > t.padType {
				t.padType = pt
			}
			idx := 0
			for _, child := range row.children {
				if isCommentOrBlank(child.typ) {
					continue
				}
				if idx >= len(t.children) {
					t.children = append(t.children, newTableTemplate(t.pads, t.alignment))
				}
				t.children[idx].measureRowSegment(child, recursive)
				idx++
			}
		}
	case itemObject:
		t.mergeType(columnObject)
		if recursive && t.columnType == columnObject {
			if pt := getPaddingType(row); pt > t.padType {
				t.padType = pt
			}
			seen := make(map[string]bool, len(row.children))
			for _, child := range row.children {
				if isCommentOrBlank(child.typ) {
					continue
				}
				if seen[child.name] {
					t.columnType = columnMixed
					t.children = nil
					return
				}
				seen[child.name] = true
				sub := t.childForName(child.name)
				sub.measureRowSegment(child, recursive)
			}
		}
	}
}

func (t *tableTemplate) mergeType(kind tableColumnType) {
	if t.columnType == columnUnknown {
		t.columnType = kind
		return
	}
	if t.columnType != kind {
		t.columnType = columnMixed
		t.children = nil
	}
}

func (t *tableTemplate) childForName(name string) *tableTemplate {
	for _, sub := range t.children {
		if sub.locationInParent == name {
			return sub
		}
	}
	sub := newTableTemplate(t.pads, t.alignment)
	sub.locationInParent = name
	t.children = append(t.children, sub)
	return sub
}

func (t *tableTemplate) addNumberStats(row *item) {
	literal := row.value
	if row.valueLength > t.maxLiteralWidth {
		t.maxLiteralWidth = row.valueLength
	}

	intPart, fracPart, expPart := splitNumber(literal)
	if len(intPart) > t.maxIntWidth {
		t.maxIntWidth = len(intPart)
	}
	if len(fracPart) > t.maxFracWidth {
		t.maxFracWidth = len(fracPart)
	}
	if len(expPart) > t.maxExpWidth {
		t.maxExpWidth = len(expPart)
	}
	t.anyFrac = t.anyFrac || len(fracPart) > 0
	t.anyExp = t.anyExp || len(expPart) > 0

	val, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		t.parseFailed = true
		return
	}
	t.vals = append(t.vals, val)

	// A float64 round-trips at most 17 significant digits, and whole
	// numbers past 2^53 already lose precision, so normalizing such
	// columns would corrupt them.
	if significantDigits(literal) > 15 || math.Abs(val) >= 1e16 {
		t.tooPrecise = true
	}

	plain := strconv.FormatFloat(val, 'f', -1, 64)
	if dot := strings.IndexByte(plain, '.'); dot >= 0 {
		if d := len(plain) - dot - 1; d > t.normDigits {
			t.normDigits = d
		}
	}
}

// splitNumber breaks a JSON number literal into its integer part (with
// sign), fractional part (with the dot) and exponent part (with the e).
func splitNumber(literal string) (intPart, fracPart, expPart string) {
	expIdx := strings.IndexAny(literal, "eE")
	mantissa := literal
	if expIdx >= 0 {
		mantissa = literal[:expIdx]
		expPart = literal[expIdx:]
	}
	if dot := strings.IndexByte(mantissa, '.'); dot >= 0 {
		intPart = mantissa[:dot]
		fracPart = mantissa[dot:]
	} else {
		intPart = mantissa
	}
	return intPart, fracPart, expPart
}

func significantDigits(literal string) int {
	count := 0
	seenNonZero := false
	for _, c := range literal {
		if c == 'e' || c == 'E' {
			break
		}
		if c < '0' || c > '9' {
			continue
		}
		if c != '0' {
			seenNonZero = true
		}
		if seenNonZero {
			count++
		}
	}
	return count
}

// computeStats settles the column widths bottom-up. It runs again after each
// compression step, since collapsing children changes the composite size.
func (t *tableTemplate) computeStats() {
	for _, sub := range t.children {
		sub.computeStats()
	}

	switch {
	case len(t.children) > 0:
		containerType := itemObject
		if t.columnType == columnArray {
			containerType = itemArray
		}
		composite := t.pads.startLen(containerType, t.padType) + t.pads.endLen(containerType, t.padType)
		for _, sub := range t.children {
			composite += sub.totalLength
		}
		if len(t.children) > 1 {
			composite += t.pads.commaLen() * (len(t.children) - 1)
		}
		t.shorterThanNullAdjustment = 0
		if t.containsNull && composite < t.pads.literalNullLen() {
			t.shorterThanNullAdjustment = t.pads.literalNullLen() - composite
			composite = t.pads.literalNullLen()
		}
		t.compositeValueLength = composite
	case t.columnType == columnNumber:
		t.compositeValueLength = t.numberFieldWidth()
	default:
		t.compositeValueLength = t.rowValueLength
	}

	total := t.compositeValueLength
	if t.prefixCommentLength > 0 {
		total += t.prefixCommentLength + t.pads.commentLen()
	}
	if t.nameLength > 0 {
		total += t.nameLength + t.pads.colonLen()
	}
	if t.middleCommentLength > 0 {
		total += t.middleCommentLength + t.pads.commentLen()
	}
	if t.postfixCommentLength > 0 {
		total += t.postfixCommentLength + t.pads.commentLen()
	}
	t.totalLength = total
}

func (t *tableTemplate) literalFieldWidth() int {
	width := t.maxLiteralWidth
	if t.containsNull && width < t.pads.literalNullLen() {
		width = t.pads.literalNullLen()
	}
	return width
}

func (t *tableTemplate) numberFieldWidth() int {
	effective := t.alignment
	if t.demoted {
		effective = NumbersLeft
	}

	switch effective {
	case NumbersDecimal:
		// Literals with both a fraction and an exponent can't share a
		// column with plain decimals, so keep everything as written.
		if t.parseFailed || (t.anyFrac && t.anyExp) {
			t.useLiteralAlignment = true
			return t.literalFieldWidth()
		}
		t.useLiteralAlignment = false
		t.numIntField = t.maxIntWidth
		if t.containsNull && t.numIntField < t.pads.literalNullLen() {
			t.numIntField = t.pads.literalNullLen()
		}
		return t.numIntField + t.maxFracWidth + t.maxExpWidth
	case NumbersNormalize:
		if t.parseFailed || t.tooPrecise {
			t.useLiteralAlignment = true
			return t.literalFieldWidth()
		}
		t.useLiteralAlignment = false
		maxRenderedInt := 0
		for _, v := range t.vals {
			rendered := strconv.FormatFloat(v, 'f', t.normDigits, 64)
			intLen := len(rendered)
			if dot := strings.IndexByte(rendered, '.'); dot >= 0 {
				intLen = dot
			}
			if intLen > maxRenderedInt {
				maxRenderedInt = intLen
			}
		}
		t.numIntField = maxRenderedInt
		if t.containsNull && t.numIntField < t.pads.literalNullLen() {
			t.numIntField = t.pads.literalNullLen()
		}
		width := t.numIntField
		if t.normDigits > 0 {
			width += 1 + t.normDigits
		}
		return width
	default:
		t.useLiteralAlignment = true
		return t.literalFieldWidth()
	}
}

// tryToFit shrinks the template until it fits in availableSpace, giving up
// the most expensive alignment features first. Returns false if even the
// fully collapsed template is too wide.
func (t *tableTemplate) tryToFit(availableSpace int) bool {
	for {
		t.computeStats()
		if t.totalLength <= availableSpace {
			return true
		}
		if !t.compress() {
			return false
		}
	}
}

func (t *tableTemplate) compress() bool {
	if len(t.children) > 0 {
		anyChanged := false
		for _, sub := range t.children {
			if sub.compress() {
				anyChanged = true
			}
		}
		if !anyChanged {
			t.children = nil
			t.shorterThanNullAdjustment = 0
		}
		return true
	}

	if t.columnType == columnNumber && !t.demoted {
		if t.compositeValueLength > t.literalFieldWidth() {
			t.demoted = true
			return true
		}
	}
	return false
}

// atomicItemSize is the field width a single scalar row would need,
// including its trailing comma. Expanded objects only align property names
// when this still fits the line.
func (t *tableTemplate) atomicItemSize() int {
	size := t.simpleValueLength + t.pads.commaLen()
	if t.prefixCommentLength > 0 {
		size += t.prefixCommentLength + t.pads.commentLen()
	}
	if t.nameLength > 0 {
		size += t.nameLength + t.pads.colonLen()
	}
	if t.middleCommentLength > 0 {
		size += t.middleCommentLength + t.pads.commentLen()
	}
	if t.postfixCommentLength > 0 {
		size += t.postfixCommentLength + t.pads.commentLen()
	}
	return size
}

// formatNumber writes one number (or null) aligned to this column. The
// comma is included here only when it belongs right after the value,
// before any alignment padding.
func (t *tableTemplate) formatNumber(buf *lineBuffer, it *item, comma string) {
	width := t.compositeValueLength
	effective := t.alignment
	if t.demoted || t.useLiteralAlignment {
		effective = NumbersLeft
	}

	switch effective {
	case NumbersRight:
		buf.spaces(width - it.valueLength).add(it.value).add(comma)
	case NumbersDecimal:
		if it.typ == itemNull {
			buf.spaces(t.numIntField - it.valueLength).add(it.value).add(comma)
			buf.spaces(t.maxFracWidth + t.maxExpWidth)
			return
		}
		intPart, fracPart, expPart := splitNumber(it.value)
		buf.spaces(t.numIntField - len(intPart))
		buf.add(intPart).add(fracPart).add(expPart).add(comma)
		buf.spaces(t.maxFracWidth - len(fracPart) + t.maxExpWidth - len(expPart))
	case NumbersNormalize:
		if it.typ == itemNull {
			buf.spaces(t.numIntField - it.valueLength).add(it.value).add(comma)
			if t.normDigits > 0 {
				buf.spaces(1 + t.normDigits)
			}
			return
		}
		val, _ := strconv.ParseFloat(it.value, 64)
		rendered := strconv.FormatFloat(val, 'f', t.normDigits, 64)
		intLen := len(rendered)
		if dot := strings.IndexByte(rendered, '.'); dot >= 0 {
			intLen = dot
		}
		buf.spaces(t.numIntField - intLen).add(rendered).add(comma)
	default:
		buf.add(it.value).add(comma).spaces(width - it.valueLength)
	}
}
