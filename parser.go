package fracture

import "strings"

// tokenEnumerator keeps one token of lookbehind over the generator so the
// parser can ask where the element it just finished ended.
type tokenEnumerator struct {
	gen     *tokenGenerator
	current *token
}

func (e *tokenEnumerator) moveNext() (bool, error) {
	tok, err := e.gen.next()
	if err != nil {
		return false, err
	}
	e.current = tok
	return tok != nil, nil
}

type parser struct {
	options Options
}

// parseTopLevel parses the whole input into a list of items. Ordinarily the
// list is one element plus any surrounding comments and blank lines;
// stopAfterFirstElem rejects a second data element, which Reformat and
// Minify insist on.
func (p *parser) parseTopLevel(inputText string, stopAfterFirstElem bool) ([]*item, error) {
	gen, err := newTokenGenerator(inputText)
	if err != nil {
		return nil, err
	}
	enum := &tokenEnumerator{gen: gen}

	var topLevelItems []*item
	topLevelElemSeen := false
	for {
		ok, err := enum.moveNext()
		if err != nil {
			return nil, err
		}
		if !ok {
			return topLevelItems, nil
		}

		it, err := p.parseItem(enum)
		if err != nil {
			return nil, err
		}
		switch {
		case it.typ == itemBlankLine:
			if p.options.PreserveBlankLines {
				topLevelItems = append(topLevelItems, it)
			}
		case it.typ == itemLineComment || it.typ == itemBlockComment:
			switch p.options.CommentPolicy {
			case CommentsError:
				return nil, newSyntaxError("Comments not allowed with current options", it.pos)
			case CommentsPreserve:
				topLevelItems = append(topLevelItems, it)
			case CommentsRemove:
			}
		default:
			if stopAfterFirstElem && topLevelElemSeen {
				return nil, newSyntaxError("Unexpected start of second top level element", it.pos)
			}
			topLevelItems = append(topLevelItems, it)
			topLevelElemSeen = true
		}
	}
}

func (p *parser) parseItem(enum *tokenEnumerator) (*item, error) {
	switch enum.current.typ {
	case tokenBeginArray:
		return p.parseArray(enum)
	case tokenBeginObject:
		return p.parseObject(enum)
	default:
		return p.parseSimple(enum.current)
	}
}

func (p *parser) parseSimple(tok *token) (*item, error) {
	typ, err := itemTypeFromToken(tok)
	if err != nil {
		return nil, err
	}
	return &item{typ: typ, value: tok.text, pos: tok.pos}, nil
}

type commaStatus int

const (
	emptyCollection commaStatus = iota
	elementSeen
	commaSeen
)

func (p *parser) parseArray(enum *tokenEnumerator) (*item, error) {
	if enum.current.typ != tokenBeginArray {
		return nil, newSyntaxError("Parser logic error", enum.current.pos)
	}
	startingPos := enum.current.pos

	// A comment that trails an element on the same line might belong to
	// that element, or to whatever comes next. It stays unplaced until a
	// row change or the closing bracket decides.
	elemNeedingPostCommentIdx := -1
	elemNeedingPostEndRow := -1
	var unplacedComment *item

	var childList []*item
	status := emptyCollection
	complexity := 0

	for {
		tok, err := nextTokenOrThrow(enum, startingPos)
		if err != nil {
			return nil, err
		}

		unplacedNeedsHome := unplacedComment != nil &&
			(unplacedComment.pos.Row != tok.pos.Row || tok.typ == tokenEndArray)
		if unplacedNeedsHome {
			if elemNeedingPostCommentIdx >= 0 {
				elem := childList[elemNeedingPostCommentIdx]
				elem.postfixComment = unplacedComment.value
				elem.postCommentLineStyle = unplacedComment.typ == itemLineComment
			} else {
				childList = append(childList, unplacedComment)
			}
			unplacedComment = nil
		}

		if elemNeedingPostCommentIdx >= 0 && elemNeedingPostEndRow != tok.pos.Row {
			elemNeedingPostCommentIdx = -1
		}

		switch tok.typ {
		case tokenEndArray:
			if status == commaSeen && !p.options.AllowTrailingCommas {
				return nil, newSyntaxError("Array may not end with a comma with current options", tok.pos)
			}
			arr := &item{typ: itemArray, pos: startingPos, complexity: complexity, children: childList}
			return arr, nil

		case tokenComma:
			if status != elementSeen {
				return nil, newSyntaxError("Unexpected comma in array", tok.pos)
			}
			status = commaSeen

		case tokenBlankLine:
			if p.options.PreserveBlankLines {
				blank, err := p.parseSimple(&tok)
				if err != nil {
					return nil, err
				}
				childList = append(childList, blank)
			}

		case tokenBlockComment:
			if p.options.CommentPolicy == CommentsRemove {
				continue
			}
			if p.options.CommentPolicy == CommentsError {
				return nil, newSyntaxError("Comments not allowed with current options", tok.pos)
			}
			if unplacedComment != nil {
				childList = append(childList, unplacedComment)
				unplacedComment = nil
			}
			comment, err := p.parseSimple(&tok)
			if err != nil {
				return nil, err
			}
			if isMultilineComment(comment) {
				childList = append(childList, comment)
				continue
			}
			if elemNeedingPostCommentIdx >= 0 && status == elementSeen {
				elem := childList[elemNeedingPostCommentIdx]
				elem.postfixComment = comment.value
				elem.postCommentLineStyle = false
				elemNeedingPostCommentIdx = -1
				continue
			}
			unplacedComment = comment

		case tokenLineComment:
			if p.options.CommentPolicy == CommentsRemove {
				continue
			}
			if p.options.CommentPolicy == CommentsError {
				return nil, newSyntaxError("Comments not allowed with current options", tok.pos)
			}
			comment, err := p.parseSimple(&tok)
			if err != nil {
				return nil, err
			}
			if unplacedComment != nil {
				childList = append(childList, unplacedComment, comment)
				unplacedComment = nil
				continue
			}
			if elemNeedingPostCommentIdx >= 0 {
				elem := childList[elemNeedingPostCommentIdx]
				elem.postfixComment = tok.text
				elem.postCommentLineStyle = true
				elemNeedingPostCommentIdx = -1
				continue
			}
			childList = append(childList, comment)

		case tokenFalse, tokenTrue, tokenNull, tokenString, tokenNumber,
			tokenBeginArray, tokenBeginObject:
			if status == elementSeen {
				return nil, newSyntaxError("Comma missing while processing array", tok.pos)
			}
			element, err := p.parseItem(enum)
			if err != nil {
				return nil, err
			}
			status = elementSeen
			if element.complexity+1 > complexity {
				complexity = element.complexity + 1
			}
			if unplacedComment != nil {
				element.prefixComment = unplacedComment.value
				unplacedComment = nil
			}
			childList = append(childList, element)
			elemNeedingPostCommentIdx = len(childList) - 1
			elemNeedingPostEndRow = enum.current.pos.Row

		default:
			return nil, newSyntaxError("Unexpected token in array", tok.pos)
		}
	}
}

type objectPhase int

const (
	beforePropName objectPhase = iota
	afterPropName
	afterColon
	afterPropValue
	afterComma
)

func (p *parser) parseObject(enum *tokenEnumerator) (*item, error) {
	if enum.current.typ != tokenBeginObject {
		return nil, newSyntaxError("Parser logic error", enum.current.pos)
	}
	startingPos := enum.current.pos

	var childList []*item

	// Pieces of the property being assembled. Comments can appear before
	// the name, between name and value, and after the value; they're held
	// here until the property is flushed.
	var propertyName *token
	var propertyValue *item
	linePropValueEnds := -1
	var beforePropComments []*item
	var midPropComments []*token
	var afterPropComment *item
	afterPropCommentWasAfterComma := false

	phase := beforePropName
	complexity := 0

	for {
		tok, err := nextTokenOrThrow(enum, startingPos)
		if err != nil {
			return nil, err
		}

		isNewLine := linePropValueEnds != tok.pos.Row
		isEndOfObject := tok.typ == tokenEndObject
		startingNextPropName := tok.typ == tokenString && phase == afterComma
		isExcessPostComment := afterPropComment != nil &&
			(tok.typ == tokenBlockComment || tok.typ == tokenLineComment)

		needToFlush := propertyName != nil && propertyValue != nil &&
			(isNewLine || isEndOfObject || startingNextPropName || isExcessPostComment)

		if needToFlush {
			var commentToHoldForNextElem *item
			if startingNextPropName && afterPropCommentWasAfterComma && !isNewLine {
				commentToHoldForNextElem = afterPropComment
				afterPropComment = nil
			}

			childList = attachObjectValuePieces(childList, propertyName, propertyValue,
				linePropValueEnds, beforePropComments, midPropComments, afterPropComment)
			if propertyValue.complexity+1 > complexity {
				complexity = propertyValue.complexity + 1
			}
			propertyName = nil
			propertyValue = nil
			beforePropComments = nil
			midPropComments = nil
			afterPropComment = nil

			if commentToHoldForNextElem != nil {
				beforePropComments = append(beforePropComments, commentToHoldForNextElem)
			}
		}

		switch tok.typ {
		case tokenBlankLine:
			if !p.options.PreserveBlankLines {
				continue
			}
			if phase == afterPropName || phase == afterColon {
				continue
			}
			childList = append(childList, beforePropComments...)
			beforePropComments = nil
			blank, err := p.parseSimple(&tok)
			if err != nil {
				return nil, err
			}
			childList = append(childList, blank)

		case tokenBlockComment, tokenLineComment:
			if p.options.CommentPolicy == CommentsRemove {
				continue
			}
			if p.options.CommentPolicy == CommentsError {
				return nil, newSyntaxError("Comments not allowed with current options", tok.pos)
			}
			if phase == beforePropName || propertyName == nil {
				comment, err := p.parseSimple(&tok)
				if err != nil {
					return nil, err
				}
				beforePropComments = append(beforePropComments, comment)
			} else if phase == afterPropName || phase == afterColon {
				held := tok
				midPropComments = append(midPropComments, &held)
			} else {
				comment, err := p.parseSimple(&tok)
				if err != nil {
					return nil, err
				}
				afterPropComment = comment
				afterPropCommentWasAfterComma = phase == afterComma
			}

		case tokenEndObject:
			if phase == afterPropName || phase == afterColon {
				return nil, newSyntaxError("Unexpected end of object", tok.pos)
			}
			if phase == afterComma && !p.options.AllowTrailingCommas {
				return nil, newSyntaxError("Object may not end with comma with current options", tok.pos)
			}
			obj := &item{typ: itemObject, pos: startingPos, complexity: complexity, children: childList}
			return obj, nil

		case tokenString:
			switch phase {
			case beforePropName, afterComma:
				held := tok
				propertyName = &held
				phase = afterPropName
			case afterColon:
				propertyValue, err = p.parseItem(enum)
				if err != nil {
					return nil, err
				}
				linePropValueEnds = enum.current.pos.Row
				phase = afterPropValue
			default:
				return nil, newSyntaxError("Unexpected string found while processing object", tok.pos)
			}

		case tokenFalse, tokenTrue, tokenNull, tokenNumber, tokenBeginArray, tokenBeginObject:
			if phase != afterColon {
				return nil, newSyntaxError("Unexpected element while processing object", tok.pos)
			}
			propertyValue, err = p.parseItem(enum)
			if err != nil {
				return nil, err
			}
			linePropValueEnds = enum.current.pos.Row
			phase = afterPropValue

		case tokenColon:
			if phase != afterPropName {
				return nil, newSyntaxError("Unexpected colon while processing object", tok.pos)
			}
			phase = afterColon

		case tokenComma:
			if phase != afterPropValue {
				return nil, newSyntaxError("Unexpected comma while processing object", tok.pos)
			}
			phase = afterComma

		default:
			return nil, newSyntaxError("Unexpected token while processing object", tok.pos)
		}
	}
}

func itemTypeFromToken(tok *token) (itemType, error) {
	switch tok.typ {
	case tokenFalse:
		return itemFalse, nil
	case tokenTrue:
		return itemTrue, nil
	case tokenNull:
		return itemNull, nil
	case tokenNumber:
		return itemNumber, nil
	case tokenString:
		return itemString, nil
	case tokenBlankLine:
		return itemBlankLine, nil
	case tokenBlockComment:
		return itemBlockComment, nil
	case tokenLineComment:
		return itemLineComment, nil
	default:
		return itemNull, newSyntaxError("Unexpected Token", tok.pos)
	}
}

func nextTokenOrThrow(enum *tokenEnumerator, startPos InputPosition) (token, error) {
	ok, err := enum.moveNext()
	if err != nil {
		return token{}, err
	}
	if !ok {
		return token{}, newSyntaxError("Unexpected end of input while processing array or object starting", startPos)
	}
	return *enum.current, nil
}

func isMultilineComment(it *item) bool {
	return it.typ == itemBlockComment && strings.Contains(it.value, "\n")
}

// attachObjectValuePieces turns the accumulated property pieces into a
// finished child: mid comments join into the middle comment, the last
// before-comment becomes a prefix when it shares the element's line, and an
// after-comment becomes a postfix when it sits on the value's last line.
func attachObjectValuePieces(objItemList []*item, name *token, element *item,
	valueEndingLine int, beforeComments []*item, midComments []*token,
	afterComment *item) []*item {

	element.name = name.text

	if len(midComments) > 0 {
		var combined strings.Builder
		for i, comment := range midComments {
			combined.WriteString(comment.text)
			if i < len(midComments)-1 || comment.typ == tokenLineComment {
				combined.WriteByte('\n')
			}
		}
		element.middleComment = combined.String()
		element.middleCommentHasNewline = strings.Contains(element.middleComment, "\n")
	}

	if len(beforeComments) > 0 {
		last := beforeComments[len(beforeComments)-1]
		rest := beforeComments[:len(beforeComments)-1]
		if last.typ == itemBlockComment && last.pos.Row == element.pos.Row {
			element.prefixComment = last.value
			objItemList = append(objItemList, rest...)
		} else {
			objItemList = append(objItemList, rest...)
			objItemList = append(objItemList, last)
		}
	}

	objItemList = append(objItemList, element)

	if afterComment != nil {
		if !isMultilineComment(afterComment) && afterComment.pos.Row == valueEndingLine {
			element.postfixComment = afterComment.value
			element.postCommentLineStyle = afterComment.typ == itemLineComment
		} else {
			objItemList = append(objItemList, afterComment)
		}
	}
	return objItemList
}
