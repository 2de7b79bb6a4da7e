package fracture

import "strings"

// maxDocSize caps input size so positions fit comfortably in int arithmetic
// on every platform.
const maxDocSize = 2_000_000_000

// scanner walks the input rune by rune, tracking row/column so every token
// and error carries an exact location.
type scanner struct {
	chars   []rune
	current InputPosition
	// tokenStart is the position of the first character of the token being
	// assembled.
	tokenStart InputPosition
	// nonWhitespaceSinceLastNewline distinguishes blank lines (worth a
	// token of their own) from ordinary line breaks.
	nonWhitespaceSinceLastNewline bool
}

func newScanner(text string) (*scanner, error) {
	if len(text) > maxDocSize {
		return nil, wrapError(ErrLexical, "document too large: %d bytes", len(text))
	}
	return &scanner{chars: []rune(text)}, nil
}

func (s *scanner) atEnd() bool {
	return s.current.Index >= len(s.chars)
}

func (s *scanner) peek() rune {
	return s.chars[s.current.Index]
}

func (s *scanner) advance() {
	s.current.Index++
	s.current.Column++
	s.nonWhitespaceSinceLastNewline = true
}

// advanceWhitespace moves past a space, tab, or CR without disturbing blank
// line detection.
func (s *scanner) advanceWhitespace() {
	s.current.Index++
	s.current.Column++
}

func (s *scanner) newLine() {
	s.current.Index++
	s.current.Row++
	s.current.Column = 0
	s.nonWhitespaceSinceLastNewline = false
}

func (s *scanner) setTokenStart() {
	s.tokenStart = s.current
}

// tokenText returns the input text from the token start to the current
// position.
func (s *scanner) tokenText() string {
	return string(s.chars[s.tokenStart.Index:s.current.Index])
}

func (s *scanner) makeToken(typ tokenType) token {
	return token{typ: typ, text: s.tokenText(), pos: s.tokenStart}
}

// tokenGenerator produces tokens one at a time. next returns nil, nil at the
// end of the input.
type tokenGenerator struct {
	s *scanner
}

func newTokenGenerator(text string) (*tokenGenerator, error) {
	s, err := newScanner(text)
	if err != nil {
		return nil, err
	}
	return &tokenGenerator{s: s}, nil
}

func (g *tokenGenerator) next() (*token, error) {
	s := g.s
	for !s.atEnd() {
		c := s.peek()
		switch c {
		case ' ', '\t', '\r':
			s.advanceWhitespace()
		case '\n':
			// A blank line's token position is the start of the line, where
			// tokenStart has been parked since the previous newline.
			if !s.nonWhitespaceSinceLastNewline {
				tok := token{typ: tokenBlankLine, text: "\n", pos: s.tokenStart}
				s.newLine()
				s.setTokenStart()
				return &tok, nil
			}
			s.newLine()
			s.setTokenStart()
		case '{':
			tok := s.singleChar(tokenBeginObject)
			return &tok, nil
		case '}':
			tok := s.singleChar(tokenEndObject)
			return &tok, nil
		case '[':
			tok := s.singleChar(tokenBeginArray)
			return &tok, nil
		case ']':
			tok := s.singleChar(tokenEndArray)
			return &tok, nil
		case ':':
			tok := s.singleChar(tokenColon)
			return &tok, nil
		case ',':
			tok := s.singleChar(tokenComma)
			return &tok, nil
		case 't':
			return s.keyword("true", tokenTrue)
		case 'f':
			return s.keyword("false", tokenFalse)
		case 'n':
			return s.keyword("null", tokenNull)
		case '/':
			return s.comment()
		case '"':
			return s.string()
		default:
			return s.number()
		}
	}
	return nil, nil
}

func (s *scanner) singleChar(typ tokenType) token {
	s.setTokenStart()
	s.advance()
	return s.makeToken(typ)
}

func (s *scanner) keyword(word string, typ tokenType) (*token, error) {
	s.setTokenStart()
	for _, expected := range word {
		if s.atEnd() {
			return nil, newLexicalError("Unexpected end of input while processing keyword", s.current)
		}
		if s.peek() != expected {
			return nil, newLexicalError("Unexpected keyword", s.tokenStart)
		}
		s.advance()
	}
	tok := s.makeToken(typ)
	return &tok, nil
}

func (s *scanner) comment() (*token, error) {
	s.setTokenStart()
	s.advance()
	if s.atEnd() {
		return nil, newLexicalError("Unexpected end of input while processing comment", s.current)
	}
	switch s.peek() {
	case '*':
		s.advance()
		lastCharWasAsterisk := false
		for !s.atEnd() {
			c := s.peek()
			if c == '/' && lastCharWasAsterisk {
				s.advance()
				tok := s.makeToken(tokenBlockComment)
				return &tok, nil
			}
			lastCharWasAsterisk = c == '*'
			if c == '\n' {
				s.newLine()
			} else {
				s.advance()
			}
		}
		return nil, newLexicalError("Unexpected end of input while processing comment", s.current)
	case '/':
		s.advance()
		for !s.atEnd() && s.peek() != '\n' {
			s.advance()
		}
		tok := token{
			typ:  tokenLineComment,
			text: strings.TrimRight(s.tokenText(), " \t\r"),
			pos:  s.tokenStart,
		}
		return &tok, nil
	default:
		return nil, newLexicalError("Unexpected character in comment", s.current)
	}
}

func (s *scanner) string() (*token, error) {
	s.setTokenStart()
	s.advance()
	for !s.atEnd() {
		c := s.peek()
		switch {
		case c == '"':
			s.advance()
			tok := s.makeToken(tokenString)
			return &tok, nil
		case c == '\\':
			s.advance()
			if s.atEnd() {
				return nil, newLexicalError("Unexpected end of input while processing string", s.current)
			}
			esc := s.peek()
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.advance()
			case 'u':
				s.advance()
				for i := 0; i < 4; i++ {
					if s.atEnd() {
						return nil, newLexicalError("Unexpected end of input while processing string", s.current)
					}
					if !isHexDigit(s.peek()) {
						return nil, newLexicalError("Bad unicode escape in string", s.current)
					}
					s.advance()
				}
			default:
				return nil, newLexicalError("Bad escaped character in string", s.current)
			}
		case isControl(c):
			return nil, newLexicalError("Control characters are not allowed in strings", s.current)
		default:
			s.advance()
		}
	}
	return nil, newLexicalError("Unexpected end of input while processing string", s.current)
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isControl(c rune) bool {
	return c <= 0x1F || c == 0x7F || (c >= 0x80 && c <= 0x9F)
}

// Number scanning runs a small state machine so that malformed literals like
// "1.2.3" or "-e5" are rejected at the exact offending character.
type numberPhase int

const (
	numBeginning numberPhase = iota
	numPastLeadingSign
	numPastFirstDigitOfWhole
	numPastWhole
	numPastDecimalPoint
	numPastFirstDigitOfFractional
	numPastE
	numPastExpSign
	numPastFirstDigitOfExponent
)

type charHandling int

const (
	charInvalidatesToken charHandling = iota
	charValidAndConsumed
	charStartOfNewToken
)

func (s *scanner) number() (*token, error) {
	s.setTokenStart()
	phase := numBeginning
	for !s.atEnd() {
		c := s.peek()
		handling := charInvalidatesToken
		switch phase {
		case numBeginning:
			switch {
			case c == '-':
				phase = numPastLeadingSign
				handling = charValidAndConsumed
			case c == '0':
				phase = numPastWhole
				handling = charValidAndConsumed
			case c >= '1' && c <= '9':
				phase = numPastFirstDigitOfWhole
				handling = charValidAndConsumed
			}
		case numPastLeadingSign:
			switch {
			case c == '0':
				phase = numPastWhole
				handling = charValidAndConsumed
			case c >= '1' && c <= '9':
				phase = numPastFirstDigitOfWhole
				handling = charValidAndConsumed
			}
		case numPastFirstDigitOfWhole:
			switch {
			case c >= '0' && c <= '9':
				handling = charValidAndConsumed
			case c == '.':
				phase = numPastDecimalPoint
				handling = charValidAndConsumed
			case c == 'e' || c == 'E':
				phase = numPastE
				handling = charValidAndConsumed
			default:
				handling = charStartOfNewToken
			}
		case numPastWhole:
			switch {
			case c == '.':
				phase = numPastDecimalPoint
				handling = charValidAndConsumed
			case c == 'e' || c == 'E':
				phase = numPastE
				handling = charValidAndConsumed
			default:
				handling = charStartOfNewToken
			}
		case numPastDecimalPoint:
			if c >= '0' && c <= '9' {
				phase = numPastFirstDigitOfFractional
				handling = charValidAndConsumed
			}
		case numPastFirstDigitOfFractional:
			switch {
			case c >= '0' && c <= '9':
				handling = charValidAndConsumed
			case c == 'e' || c == 'E':
				phase = numPastE
				handling = charValidAndConsumed
			default:
				handling = charStartOfNewToken
			}
		case numPastE:
			switch {
			case c == '+' || c == '-':
				phase = numPastExpSign
				handling = charValidAndConsumed
			case c >= '0' && c <= '9':
				phase = numPastFirstDigitOfExponent
				handling = charValidAndConsumed
			}
		case numPastExpSign:
			if c >= '0' && c <= '9' {
				phase = numPastFirstDigitOfExponent
				handling = charValidAndConsumed
			}
		case numPastFirstDigitOfExponent:
			if c >= '0' && c <= '9' {
				handling = charValidAndConsumed
			} else {
				handling = charStartOfNewToken
			}
		}

		switch handling {
		case charInvalidatesToken:
			return nil, newLexicalError("Unexpected character", s.current)
		case charValidAndConsumed:
			s.advance()
		case charStartOfNewToken:
			tok := s.makeToken(tokenNumber)
			return &tok, nil
		}
	}

	switch phase {
	case numPastFirstDigitOfWhole, numPastWhole, numPastFirstDigitOfFractional,
		numPastFirstDigitOfExponent:
		tok := s.makeToken(tokenNumber)
		return &tok, nil
	default:
		return nil, newLexicalError("Unexpected end of input while processing number", s.current)
	}
}

// tokenize is a convenience for tests: the full token stream as a slice.
func tokenize(text string) ([]token, error) {
	gen, err := newTokenGenerator(text)
	if err != nil {
		return nil, err
	}
	var toks []token
	for {
		tok, err := gen.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return toks, nil
		}
		toks = append(toks, *tok)
	}
}
