package fracture

import (
	"math"
	"strings"
)

// Formatter reformats, minifies, or serializes JSON according to Options.
// The zero value is not usable; call NewFormatter. A Formatter may be reused
// across calls but is not safe for concurrent use.
type Formatter struct {
	Options Options

	// StringWidth measures display width for alignment. Defaults to
	// StringWidthByRuneCount; swap in StringWidthEastAsian for terminals
	// showing CJK text.
	StringWidth func(string) int

	buffer lineBuffer
	pads   *paddedTokens
}

func NewFormatter() *Formatter {
	return &Formatter{
		Options:     DefaultOptions(),
		StringWidth: StringWidthByRuneCount,
	}
}

// Reformat parses jsonText and writes it back out according to the options.
// startingDepth sets the initial indentation, useful when the output is
// spliced into an already-indented document.
func (f *Formatter) Reformat(jsonText string, startingDepth int) (string, error) {
	p := &parser{options: f.Options}
	docModel, err := p.parseTopLevel(jsonText, true)
	if err != nil {
		return "", err
	}
	f.formatTopLevel(docModel, startingDepth)
	f.buffer.flush()
	return f.buffer.String(), nil
}

// Minify writes the most compact representation of jsonText. Comments and
// blank lines survive on their own lines when the options preserve them.
func (f *Formatter) Minify(jsonText string) (string, error) {
	p := &parser{options: f.Options}
	docModel, err := p.parseTopLevel(jsonText, true)
	if err != nil {
		return "", err
	}
	f.minifyTopLevel(docModel)
	f.buffer.flush()
	return f.buffer.String(), nil
}

// Serialize formats a Go value as JSON directly, without a text parsing
// pass. Maps are written with sorted keys. recursionLimit bounds nesting.
func (f *Formatter) Serialize(value any, startingDepth int, recursionLimit int) (string, error) {
	root, err := itemFromValue(value, recursionLimit)
	if err != nil {
		return "", err
	}
	var docModel []*item
	if root != nil {
		docModel = append(docModel, root)
	}
	f.formatTopLevel(docModel, startingDepth)
	f.buffer.flush()
	return f.buffer.String(), nil
}

func (f *Formatter) formatTopLevel(docModel []*item, startingDepth int) {
	f.buffer.reset()
	f.pads = newPaddedTokens(f.Options, f.StringWidth)

	for _, it := range docModel {
		f.computeItemLengths(it)
		f.formatItem(it, startingDepth, false, nil)
	}
}

func (f *Formatter) minifyTopLevel(docModel []*item) {
	f.buffer.reset()
	f.pads = newPaddedTokens(f.Options, f.StringWidth)

	atStartOfNewLine := true
	for _, it := range docModel {
		atStartOfNewLine = f.minifyItem(it, atStartOfNewLine)
	}
}

// computeItemLengths fills in the measurement fields bottom-up. Everything
// the layout heuristics look at is settled here, before any output.
func (f *Formatter) computeItemLengths(it *item) {
	for _, child := range it.children {
		f.computeItemLengths(child)
	}

	switch it.typ {
	case itemNull:
		it.valueLength = f.pads.literalNullLen()
	case itemTrue:
		it.valueLength = f.pads.literalTrueLen()
	case itemFalse:
		it.valueLength = f.pads.literalFalseLen()
	default:
		it.valueLength = f.StringWidth(it.value)
	}

	it.nameLength = f.StringWidth(it.name)
	it.prefixCommentLength = f.StringWidth(it.prefixComment)
	it.middleCommentLength = f.StringWidth(it.middleComment)
	it.postfixCommentLength = f.StringWidth(it.postfixComment)

	it.requiresMultipleLines = isCommentOrBlank(it.typ) ||
		strings.Contains(it.prefixComment, "\n") ||
		strings.Contains(it.middleComment, "\n") ||
		strings.Contains(it.postfixComment, "\n") ||
		strings.Contains(it.value, "\n")
	for _, child := range it.children {
		if child.requiresMultipleLines || child.postCommentLineStyle {
			it.requiresMultipleLines = true
			break
		}
	}

	if isContainer(it.typ) {
		padType := getPaddingType(it)
		childrenLen := 0
		for _, child := range it.children {
			childrenLen += child.minimumTotalLength
		}
		commas := 0
		if len(it.children) > 1 {
			commas = f.pads.commaLen() * (len(it.children) - 1)
		}
		it.valueLength = f.pads.startLen(it.typ, padType) +
			f.pads.endLen(it.typ, padType) + childrenLen + commas
	}

	total := it.valueLength
	if it.prefixCommentLength > 0 {
		total += it.prefixCommentLength + f.pads.commentLen()
	}
	if it.nameLength > 0 {
		total += it.nameLength + f.pads.colonLen()
	}
	if it.middleCommentLength > 0 {
		total += it.middleCommentLength + f.pads.commentLen()
	}
	if it.postfixCommentLength > 0 {
		total += it.postfixCommentLength + f.pads.commentLen()
	}
	it.minimumTotalLength = total
}

func (f *Formatter) formatItem(it *item, depth int, includeTrailingComma bool, parentTemplate *tableTemplate) {
	switch {
	case isContainer(it.typ):
		f.formatContainer(it, depth, includeTrailingComma, parentTemplate)
	case it.typ == itemBlankLine:
		f.formatBlankLine()
	case it.typ == itemBlockComment || it.typ == itemLineComment:
		f.formatStandaloneComment(it, depth)
	case it.requiresMultipleLines:
		f.formatSplitKeyValue(it, depth, includeTrailingComma, parentTemplate)
	default:
		f.formatInlineElement(it, depth, includeTrailingComma, parentTemplate)
	}
}

// formatContainer tries layouts from most to least compact: everything on
// one line, several items per line, a table with aligned columns, and
// finally one child per line.
func (f *Formatter) formatContainer(it *item, depth int, includeTrailingComma bool, parentTemplate *tableTemplate) {
	if depth > f.Options.AlwaysExpandDepth &&
		f.formatContainerInline(it, depth, includeTrailingComma, parentTemplate) {
		return
	}

	recursiveTemplate := it.complexity <= f.Options.MaxCompactArrayComplexity ||
		it.complexity <= f.Options.MaxTableRowComplexity+1
	template := newTableTemplate(f.pads, f.Options.NumberListAlignment)
	template.measureTableRoot(it, recursiveTemplate)

	if depth > f.Options.AlwaysExpandDepth &&
		f.formatContainerCompactMultiline(it, depth, includeTrailingComma, template, parentTemplate) {
		return
	}

	if depth >= f.Options.AlwaysExpandDepth {
		tableTmpl := template.clone()
		if f.formatContainerTable(it, depth, includeTrailingComma, tableTmpl, parentTemplate) {
			return
		}
	}

	f.formatContainerExpanded(it, depth, includeTrailingComma, template, parentTemplate)
}

func (f *Formatter) formatContainerInline(it *item, depth int, includeTrailingComma bool, parentTemplate *tableTemplate) bool {
	if it.requiresMultipleLines {
		return false
	}

	// When a parent template exists, the prefix and name fields take the
	// parent's widths so sibling values stay aligned.
	var prefixLength, nameLength int
	if parentTemplate != nil {
		if parentTemplate.prefixCommentLength > 0 {
			prefixLength = parentTemplate.prefixCommentLength + f.pads.commentLen()
		}
		if parentTemplate.nameLength > 0 {
			nameLength = parentTemplate.nameLength + f.pads.colonLen()
		}
	} else {
		if it.prefixCommentLength > 0 {
			prefixLength = it.prefixCommentLength + f.pads.commentLen()
		}
		if it.nameLength > 0 {
			nameLength = it.nameLength + f.pads.colonLen()
		}
	}

	lengthToConsider := prefixLength + nameLength + it.valueLength
	if it.middleCommentLength > 0 {
		lengthToConsider += it.middleCommentLength + f.pads.commentLen()
	}
	if it.postfixCommentLength > 0 {
		lengthToConsider += it.postfixCommentLength + f.pads.commentLen()
	}
	if includeTrailingComma {
		lengthToConsider += f.pads.commaLen()
	}

	if it.complexity > f.Options.MaxInlineComplexity ||
		lengthToConsider > f.availableLineSpace(depth) {
		return false
	}

	f.buffer.add(f.Options.PrefixString).add(f.pads.indent(depth))
	f.inlineElement(it, includeTrailingComma, parentTemplate)
	f.buffer.endLine(f.pads.eol())
	return true
}

func (f *Formatter) formatContainerCompactMultiline(it *item, depth int, includeTrailingComma bool, template *tableTemplate, parentTemplate *tableTemplate) bool {
	if it.typ != itemArray {
		return false
	}
	if len(it.children) == 0 || len(it.children) < f.Options.MinCompactArrayRowItems {
		return false
	}
	if it.complexity > f.Options.MaxCompactArrayComplexity {
		return false
	}
	if it.requiresMultipleLines {
		return false
	}

	useTableFormatting := template.columnType != columnUnknown && template.columnType != columnMixed
	likelyAvailableLineSpace := f.availableLineSpace(depth + 1)

	avgItemWidth := f.pads.commaLen()
	if useTableFormatting {
		avgItemWidth += template.totalLength
	} else {
		sum := 0
		for _, child := range it.children {
			sum += child.minimumTotalLength
		}
		avgItemWidth += sum / max(len(it.children), 1)
	}
	if avgItemWidth*f.Options.MinCompactArrayRowItems > likelyAvailableLineSpace {
		return false
	}

	depthAfterColon := f.standardFormatStart(it, depth, parentTemplate)
	f.buffer.add(f.pads.start(it.typ, paddingEmpty))

	availableLineSpace := f.availableLineSpace(depthAfterColon + 1)
	remainingLineSpace := -1
	for i, child := range it.children {
		needsComma := i < len(it.children)-1
		spaceNeeded := 0
		if needsComma {
			spaceNeeded = f.pads.commaLen()
		}
		if useTableFormatting {
			spaceNeeded += template.totalLength
		} else {
			spaceNeeded += child.minimumTotalLength
		}

		if remainingLineSpace < spaceNeeded {
			f.buffer.endLine(f.pads.eol()).
				add(f.Options.PrefixString).
				add(f.pads.indent(depthAfterColon + 1))
			remainingLineSpace = availableLineSpace
		}

		if useTableFormatting {
			f.inlineTableRowSegment(template, child, needsComma, false)
		} else {
			f.inlineElement(child, needsComma, nil)
		}
		remainingLineSpace -= spaceNeeded
	}

	f.buffer.endLine(f.pads.eol()).
		add(f.Options.PrefixString).
		add(f.pads.indent(depthAfterColon)).
		add(f.pads.end(it.typ, paddingEmpty))
	f.standardFormatEnd(it, includeTrailingComma)
	return true
}

func (f *Formatter) formatContainerTable(it *item, depth int, includeTrailingComma bool, template *tableTemplate, parentTemplate *tableTemplate) bool {
	if it.complexity > f.Options.MaxTableRowComplexity+1 {
		return false
	}
	if template.requiresMultipleLines {
		return false
	}

	availableSpaceDepth := depth + 1
	if it.middleCommentHasNewline {
		availableSpaceDepth = depth + 2
	}
	availableSpace := f.availableLineSpace(availableSpaceDepth) - f.pads.commaLen()
	if availableSpace < 0 {
		availableSpace = 0
	}

	for _, child := range it.children {
		if isCommentOrBlank(child.typ) {
			continue
		}
		if child.minimumTotalLength > availableSpace {
			return false
		}
	}

	if template.columnType == columnMixed || !template.tryToFit(availableSpace) {
		return false
	}

	depthAfterColon := f.standardFormatStart(it, depth, parentTemplate)
	f.buffer.add(f.pads.start(it.typ, paddingEmpty)).endLine(f.pads.eol())

	lastElementIndex := indexOfLastElement(it.children)
	for i, rowItem := range it.children {
		switch rowItem.typ {
		case itemBlankLine:
			f.formatBlankLine()
			continue
		case itemLineComment, itemBlockComment:
			f.formatStandaloneComment(rowItem, depthAfterColon+1)
			continue
		}

		f.buffer.add(f.Options.PrefixString).add(f.pads.indent(depthAfterColon + 1))
		f.inlineTableRowSegment(template, rowItem, i < lastElementIndex, true)
		f.buffer.endLine(f.pads.eol())
	}

	f.buffer.add(f.Options.PrefixString).
		add(f.pads.indent(depthAfterColon)).
		add(f.pads.end(it.typ, paddingEmpty))
	f.standardFormatEnd(it, includeTrailingComma)
	return true
}

func (f *Formatter) formatContainerExpanded(it *item, depth int, includeTrailingComma bool, template *tableTemplate, parentTemplate *tableTemplate) {
	depthAfterColon := f.standardFormatStart(it, depth, parentTemplate)
	f.buffer.add(f.pads.start(it.typ, paddingEmpty)).endLine(f.pads.eol())

	alignProps := it.typ == itemObject &&
		template.nameLength-max(template.nameMinimum, 0) <= f.Options.MaxPropNamePadding &&
		!template.anyMiddleCommentHasNewline &&
		f.availableLineSpace(depth+1) >= template.atomicItemSize()
	var templateToPass *tableTemplate
	if alignProps {
		templateToPass = template
	}

	lastElementIndex := indexOfLastElement(it.children)
	for i, child := range it.children {
		f.formatItem(child, depthAfterColon+1, i < lastElementIndex, templateToPass)
	}

	f.buffer.add(f.Options.PrefixString).
		add(f.pads.indent(depthAfterColon)).
		add(f.pads.end(it.typ, paddingEmpty))
	f.standardFormatEnd(it, includeTrailingComma)
}

func (f *Formatter) formatStandaloneComment(it *item, depth int) {
	commentRows := normalizeMultilineComment(it.value, it.pos.Column)
	indent := f.pads.indent(depth)
	for _, line := range commentRows {
		f.buffer.add(f.Options.PrefixString).add(indent).add(line).endLine(f.pads.eol())
	}
}

func (f *Formatter) formatBlankLine() {
	f.buffer.add(f.Options.PrefixString).endLine(f.pads.eol())
}

func (f *Formatter) formatInlineElement(it *item, depth int, includeTrailingComma bool, parentTemplate *tableTemplate) {
	f.buffer.add(f.Options.PrefixString).add(f.pads.indent(depth))
	f.inlineElement(it, includeTrailingComma, parentTemplate)
	f.buffer.endLine(f.pads.eol())
}

// formatSplitKeyValue handles a scalar whose attached comments force it onto
// several lines.
func (f *Formatter) formatSplitKeyValue(it *item, depth int, includeTrailingComma bool, parentTemplate *tableTemplate) {
	f.standardFormatStart(it, depth, parentTemplate)
	f.buffer.add(it.value)
	f.standardFormatEnd(it, includeTrailingComma)
}

// standardFormatStart writes the indent, prefix comment, property name, and
// middle comment. A multiline middle comment gets re-indented on its own
// lines, in which case the returned depth is one deeper than given.
func (f *Formatter) standardFormatStart(it *item, depth int, parentTemplate *tableTemplate) int {
	f.buffer.add(f.Options.PrefixString).add(f.pads.indent(depth))

	if parentTemplate != nil {
		f.addToBufferFixed(it.prefixComment, it.prefixCommentLength,
			parentTemplate.prefixCommentLength, f.pads.comment, false)
		f.addToBufferFixed(it.name, it.nameLength, parentTemplate.nameLength,
			f.pads.colon, f.Options.ColonBeforePropNamePadding)
	} else {
		f.addToBuffer(it.prefixComment, it.prefixCommentLength, f.pads.comment)
		f.addToBuffer(it.name, it.nameLength, f.pads.colon)
	}

	if it.middleCommentLength == 0 {
		return depth
	}

	if !it.middleCommentHasNewline {
		middlePad := 0
		if parentTemplate != nil && parentTemplate.middleCommentLength > it.middleCommentLength {
			middlePad = parentTemplate.middleCommentLength - it.middleCommentLength
		}
		f.buffer.add(it.middleComment).spaces(middlePad).add(f.pads.comment)
		return depth
	}

	commentRows := normalizeMultilineComment(it.middleComment, math.MaxInt)
	f.buffer.endLine(f.pads.eol())
	indent := f.pads.indent(depth + 1)
	for _, row := range commentRows {
		f.buffer.add(f.Options.PrefixString).add(indent).add(row).endLine(f.pads.eol())
	}
	f.buffer.add(f.Options.PrefixString).add(indent)
	return depth + 1
}

func (f *Formatter) standardFormatEnd(it *item, includeTrailingComma bool) {
	if includeTrailingComma && it.postCommentLineStyle {
		f.buffer.add(f.pads.comma)
	}
	if it.postfixCommentLength > 0 {
		f.buffer.add(f.pads.comment).add(it.postfixComment)
	}
	if includeTrailingComma && !it.postCommentLineStyle {
		f.buffer.add(f.pads.comma)
	}
	f.buffer.endLine(f.pads.eol())
}

func (f *Formatter) inlineElement(it *item, includeTrailingComma bool, parentTemplate *tableTemplate) {
	if it.requiresMultipleLines {
		return
	}

	if parentTemplate != nil {
		f.addToBufferFixed(it.prefixComment, it.prefixCommentLength,
			parentTemplate.prefixCommentLength, f.pads.comment, false)
		f.addToBufferFixed(it.name, it.nameLength, parentTemplate.nameLength,
			f.pads.colon, f.Options.ColonBeforePropNamePadding)
		f.addToBufferFixed(it.middleComment, it.middleCommentLength,
			parentTemplate.middleCommentLength, f.pads.comment, false)
	} else {
		f.addToBuffer(it.prefixComment, it.prefixCommentLength, f.pads.comment)
		f.addToBuffer(it.name, it.nameLength, f.pads.colon)
		f.addToBuffer(it.middleComment, it.middleCommentLength, f.pads.comment)
	}

	f.inlineElementRaw(it)

	if includeTrailingComma && it.postCommentLineStyle {
		f.buffer.add(f.pads.comma)
	}
	if it.postfixCommentLength > 0 {
		f.buffer.add(f.pads.comment).add(it.postfixComment)
	}
	if includeTrailingComma && !it.postCommentLineStyle {
		f.buffer.add(f.pads.comma)
	}
}

func (f *Formatter) inlineElementRaw(it *item) {
	if !isContainer(it.typ) {
		f.buffer.add(it.value)
		return
	}
	padType := getPaddingType(it)
	f.buffer.add(f.pads.start(it.typ, padType))
	for i, child := range it.children {
		f.inlineElement(child, i < len(it.children)-1, nil)
	}
	f.buffer.add(f.pads.end(it.typ, padType))
}

type commaPosition int

const (
	beforeValuePadding commaPosition = iota
	afterValuePadding
	beforeCommentPadding
	afterCommentPadding
)

// inlineTableRowSegment writes one value aligned to a column template.
// isWholeRow means this segment is a full line of the table, so a trailing
// dummy comma keeps any postfix comments aligned on the last row.
func (f *Formatter) inlineTableRowSegment(template *tableTemplate, it *item, includeTrailingComma bool, isWholeRow bool) {
	f.addToBufferFixed(it.prefixComment, it.prefixCommentLength,
		template.prefixCommentLength, f.pads.comment, false)
	f.addToBufferFixed(it.name, it.nameLength, template.nameLength,
		f.pads.colon, f.Options.ColonBeforePropNamePadding)
	f.addToBufferFixed(it.middleComment, it.middleCommentLength,
		template.middleCommentLength, f.pads.comment, false)

	commaBeforePad := f.Options.TableCommaPlacement == CommasBeforePadding ||
		(f.Options.TableCommaPlacement == CommasBeforePaddingExceptNumbers &&
			template.columnType != columnNumber)

	var commaPos commaPosition
	switch {
	case template.postfixCommentLength > 0 && !template.isAnyPostCommentLineStyle:
		switch {
		case it.postfixCommentLength > 0 && commaBeforePad:
			commaPos = beforeCommentPadding
		case it.postfixCommentLength > 0:
			commaPos = afterCommentPadding
		case commaBeforePad:
			commaPos = beforeValuePadding
		default:
			commaPos = afterCommentPadding
		}
	case commaBeforePad:
		commaPos = beforeValuePadding
	default:
		commaPos = afterValuePadding
	}

	commaType := ""
	if includeTrailingComma {
		commaType = f.pads.comma
	} else if isWholeRow {
		commaType = f.pads.dummyComma
	}

	switch {
	case len(template.children) > 0 && it.typ != itemNull:
		if template.columnType == columnArray {
			f.inlineTableRawArray(template, it)
		} else {
			f.inlineTableRawObject(template, it)
		}
		if commaPos == beforeValuePadding {
			f.buffer.add(commaType)
		}
		if template.shorterThanNullAdjustment > 0 {
			f.buffer.spaces(template.shorterThanNullAdjustment)
		}
	case template.columnType == columnNumber:
		numberComma := ""
		if commaPos == beforeValuePadding {
			numberComma = commaType
		}
		template.formatNumber(&f.buffer, it, numberComma)
	default:
		f.inlineElementRaw(it)
		if commaPos == beforeValuePadding {
			f.buffer.add(commaType)
		}
		f.buffer.spaces(template.compositeValueLength - it.valueLength)
	}

	if commaPos == afterValuePadding {
		f.buffer.add(commaType)
	}

	if template.postfixCommentLength > 0 {
		f.buffer.add(f.pads.comment).add(it.postfixComment)
	}

	if commaPos == beforeCommentPadding {
		f.buffer.add(commaType)
	}

	f.buffer.spaces(template.postfixCommentLength - it.postfixCommentLength)

	if commaPos == afterCommentPadding {
		f.buffer.add(commaType)
	}
}

func (f *Formatter) inlineTableRawArray(template *tableTemplate, it *item) {
	f.buffer.add(f.pads.start(itemArray, template.padType))
	for i, subTemplate := range template.children {
		isLastInTemplate := i == len(template.children)-1
		isLastInArray := i == len(it.children)-1
		isPastEnd := i >= len(it.children)

		if isPastEnd {
			f.buffer.spaces(subTemplate.totalLength)
			if !isLastInTemplate {
				f.buffer.add(f.pads.dummyComma)
			}
		} else {
			f.inlineTableRowSegment(subTemplate, it.children[i], !isLastInArray, false)
			if isLastInArray && !isLastInTemplate {
				f.buffer.add(f.pads.dummyComma)
			}
		}
	}
	f.buffer.add(f.pads.end(itemArray, template.padType))
}

func (f *Formatter) inlineTableRawObject(template *tableTemplate, it *item) {
	matched := make([]*item, len(template.children))
	for i, sub := range template.children {
		for _, child := range it.children {
			if child.name == sub.locationInParent {
				matched[i] = child
				break
			}
		}
	}

	lastNonNilIdx := len(matched) - 1
	for lastNonNilIdx >= 0 && matched[lastNonNilIdx] == nil {
		lastNonNilIdx--
	}

	f.buffer.add(f.pads.start(itemObject, template.padType))
	for i, subTemplate := range template.children {
		isLastInObject := i == lastNonNilIdx
		isLastInTemplate := i == len(template.children)-1

		if matched[i] != nil {
			f.inlineTableRowSegment(subTemplate, matched[i], !isLastInObject, false)
			if isLastInObject && !isLastInTemplate {
				f.buffer.add(f.pads.dummyComma)
			}
		} else {
			f.buffer.spaces(subTemplate.totalLength)
			if !isLastInTemplate {
				f.buffer.add(f.pads.dummyComma)
			}
		}
	}
	f.buffer.add(f.pads.end(itemObject, template.padType))
}

func (f *Formatter) availableLineSpace(depth int) int {
	space := f.Options.MaxTotalLineLength - f.pads.prefixStringLen() -
		f.Options.IndentSpaces*depth
	if space < 0 {
		return 0
	}
	return space
}

// minifyItem writes an item with no whitespace at all, except that comments
// and blank lines force line breaks so a later parse still sees them the
// same way. Returns whether the output is sitting at the start of a line.
func (f *Formatter) minifyItem(it *item, atStartOfNewLine bool) bool {
	f.buffer.add(it.prefixComment)
	if it.name != "" {
		f.buffer.add(it.name).add(":")
	}

	if strings.Contains(it.middleComment, "\n") {
		for _, line := range normalizeMultilineComment(it.middleComment, math.MaxInt) {
			f.buffer.add(line).add("\n")
		}
	} else {
		f.buffer.add(it.middleComment)
	}

	switch it.typ {
	case itemArray, itemObject:
		closeBracket := "}"
		if it.typ == itemArray {
			f.buffer.add("[")
			closeBracket = "]"
		} else {
			f.buffer.add("{")
		}

		needsComma := false
		atStart := false
		for _, child := range it.children {
			if !isCommentOrBlank(child.typ) {
				if needsComma {
					f.buffer.add(",")
				}
				needsComma = true
			}
			atStart = f.minifyItem(child, atStart)
		}
		f.buffer.add(closeBracket)

	case itemBlankLine:
		if !atStartOfNewLine {
			f.buffer.add("\n")
		}
		f.buffer.add("\n")
		return true

	case itemLineComment:
		if !atStartOfNewLine {
			f.buffer.add("\n")
		}
		f.buffer.add(it.value).add("\n")
		return true

	case itemBlockComment:
		if !atStartOfNewLine {
			f.buffer.add("\n")
		}
		if strings.Contains(it.value, "\n") {
			for _, line := range normalizeMultilineComment(it.value, it.pos.Column) {
				f.buffer.add(line).add("\n")
			}
			return true
		}
		f.buffer.add(it.value).add("\n")
		return true

	default:
		f.buffer.add(it.value)
	}

	f.buffer.add(it.postfixComment)
	if it.postfixComment != "" && it.postCommentLineStyle {
		f.buffer.add("\n")
		return true
	}
	return false
}

func (f *Formatter) addToBuffer(value string, valueWidth int, separator string) {
	if valueWidth == 0 {
		return
	}
	f.buffer.add(value).add(separator)
}

func (f *Formatter) addToBufferFixed(value string, valueWidth, fieldWidth int, separator string, separatorBeforePadding bool) {
	if fieldWidth == 0 {
		return
	}
	padWidth := fieldWidth - valueWidth
	if padWidth < 0 {
		padWidth = 0
	}
	if separatorBeforePadding {
		f.buffer.add(value).add(separator).spaces(padWidth)
	} else {
		f.buffer.add(value).spaces(padWidth).add(separator)
	}
}

func getPaddingType(arrOrObj *item) bracketPadding {
	if len(arrOrObj.children) == 0 {
		return paddingEmpty
	}
	if arrOrObj.complexity >= 2 {
		return paddingComplex
	}
	return paddingSimple
}

// normalizeMultilineComment splits a block comment into lines, stripping up
// to firstLineColumn of leading whitespace from continuation lines so the
// comment can be re-indented to wherever it ends up.
func normalizeMultilineComment(comment string, firstLineColumn int) []string {
	normalized := strings.ReplaceAll(comment, "\r", "")
	var commentRows []string
	for _, line := range strings.Split(normalized, "\n") {
		if line != "" {
			commentRows = append(commentRows, line)
		}
	}

	for i := 1; i < len(commentRows); i++ {
		line := commentRows[i]
		cut := 0
		seen := 0
		for idx, ch := range line {
			if seen >= firstLineColumn {
				break
			}
			if ch != ' ' && ch != '\t' {
				break
			}
			cut = idx + 1
			seen++
		}
		commentRows[i] = line[cut:]
	}
	return commentRows
}

func indexOfLastElement(itemList []*item) int {
	for i := len(itemList) - 1; i >= 0; i-- {
		if !isCommentOrBlank(itemList[i].typ) {
			return i
		}
	}
	return -1
}
