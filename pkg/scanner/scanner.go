package scanner

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"glox/pkg/token"
)

// Error is a lexical error. Scanning continues after one is recorded.
type Error struct {
	Line    int
	Where   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf(
		"[line %d] Error%s: %s",
		e.Line, e.Where, e.Message,
	)
}

type Scanner struct {
	source string
	tokens []token.Token

	start   int
	current int
	line    int
}

func New(source string) *Scanner {
	s := new(Scanner)
	s.Init(source)

	return s
}

func (s *Scanner) Init(source string) {
	s.source = source
	s.tokens = make([]token.Token, 0)

	s.start = 0
	s.current = 0
	s.line = 1
}

// Scan tokenizes the whole source. The returned tokens always end with EOF,
// even when errors were found.
func (s *Scanner) Scan() ([]token.Token, []error) {
	errs := make([]error, 0)
	for s.current < len(s.source) {
		s.start = s.current
		if err := s.scanToken(); err != nil {
			errs = append(errs, err)
		}
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", nil, s.line))

	return s.tokens, errs
}

func (s *Scanner) scanToken() error {
	c := s.source[s.current]
	s.current++
	switch c {
	case ' ', '\r', '\t':
		// pass
	case '\n':
		s.line++
	case '(':
		s.addToken(token.LEFT_PAREN, nil)
	case ')':
		s.addToken(token.RIGHT_PAREN, nil)
	case '{':
		s.addToken(token.LEFT_BRACE, nil)
	case '}':
		s.addToken(token.RIGHT_BRACE, nil)
	case ',':
		s.addToken(token.COMMA, nil)
	case '.':
		s.addToken(token.DOT, nil)
	case '-':
		s.addToken(token.MINUS, nil)
	case '+':
		s.addToken(token.PLUS, nil)
	case ';':
		s.addToken(token.SEMICOLON, nil)
	case '*':
		s.addToken(token.STAR, nil)
	case '?':
		s.addToken(token.QUESTION_MARK, nil)
	case ':':
		s.addToken(token.COLON, nil)
	case '/':
		switch {
		case s.match('/'):
			s.skipLineComment()
		case s.match('*'):
			return s.skipBlockComment()
		default:
			s.addToken(token.SLASH, nil)
		}
	case '!':
		if s.match('=') {
			s.addToken(token.BANG_EQUAL, nil)
		} else {
			s.addToken(token.BANG, nil)
		}
	case '=':
		if s.match('=') {
			s.addToken(token.EQUAL_EQUAL, nil)
		} else {
			s.addToken(token.EQUAL, nil)
		}
	case '<':
		if s.match('=') {
			s.addToken(token.LESS_EQUAL, nil)
		} else {
			s.addToken(token.LESS, nil)
		}
	case '>':
		if s.match('=') {
			s.addToken(token.GREATER_EQUAL, nil)
		} else {
			s.addToken(token.GREATER, nil)
		}
	case '"':
		return s.scanString()
	default:
		switch {
		case isDigit(c):
			return s.scanNumber()
		case isAlpha(c):
			s.scanIdentifierOrKeyword()
		default:
			// Report a multi-byte character once, as a whole.
			r, size := utf8.DecodeRuneInString(s.source[s.start:])
			s.current = s.start + size

			return &Error{
				Line:    s.line,
				Message: fmt.Sprintf("Unexpected character '%c'.", r),
			}
		}
	}

	return nil
}

func (s *Scanner) addToken(typ token.TokenType, literal any) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, token.New(typ, text, literal, s.line))
}

func (s *Scanner) match(expected byte) bool {
	if s.current >= len(s.source) || s.source[s.current] != expected {
		return false
	}
	s.current++

	return true
}

func (s *Scanner) peekAndConsume(expected string) bool {
	end := s.current + len(expected)
	if end > len(s.source) || s.source[s.current:end] != expected {
		return false
	}
	s.current = end

	return true
}

func (s *Scanner) peekChar() byte {
	if s.current >= len(s.source) {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNextChar() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) scanString() error {
	for s.current < len(s.source) && s.peekChar() != '"' {
		if s.peekChar() == '\n' {
			s.line++
		}
		s.current++
	}

	if s.current >= len(s.source) {
		return &Error{Line: s.line, Message: "Unterminated string."}
	}

	// closing quote
	s.current++

	str := s.source[s.start+1 : s.current-1]
	s.addToken(token.STRING, str)

	return nil
}

func (s *Scanner) scanNumber() error {
	for isDigit(s.peekChar()) {
		s.current++
	}
	if s.peekChar() == '.' && isDigit(s.peekNextChar()) {
		s.current++ // consume the .
		for isDigit(s.peekChar()) {
			s.current++
		}
	}

	number, err := strconv.ParseFloat(s.source[s.start:s.current], 64)
	if err != nil {
		return &Error{Line: s.line, Message: "Invalid number."}
	}
	s.addToken(token.NUMBER, number)

	return nil
}

func (s *Scanner) scanIdentifierOrKeyword() {
	for isAlphaNumeric(s.peekChar()) {
		s.current++
	}

	typ, ok := token.Keywords[s.source[s.start:s.current]]
	if !ok {
		typ = token.IDENTIFIER
	}
	s.addToken(typ, nil)
}

func (s *Scanner) skipLineComment() {
	for s.current < len(s.source) && s.peekChar() != '\n' {
		s.current++
	}
}

// Block comments do not nest.
func (s *Scanner) skipBlockComment() error {
	for s.current < len(s.source) {
		if s.peekAndConsume("*/") {
			return nil
		}
		if s.source[s.current] == '\n' {
			s.line++
		}
		s.current++
	}

	return &Error{Line: s.line, Message: "Unterminated block comment."}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
