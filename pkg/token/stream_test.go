package token

import "testing"

func TestStreamCursor(t *testing.T) {
	s := NewStream([]Token{
		New(IDENTIFIER, "a", nil, 1),
		New(SEMICOLON, ";", nil, 1),
		New(EOF, "", nil, 2),
	})

	if got := s.Peek().Lexeme; got != "a" {
		t.Fatalf("Peek = %q, want a", got)
	}
	if got := s.Advance().Lexeme; got != "a" {
		t.Fatalf("Advance = %q, want a", got)
	}
	if got := s.Previous().Lexeme; got != "a" {
		t.Fatalf("Previous = %q, want a", got)
	}
	s.Advance()
	if !s.IsAtEnd() {
		t.Fatalf("expected cursor at EOF, peek is %v", s.Peek())
	}

	// Advancing at EOF stays put.
	s.Advance()
	s.Advance()
	if s.Peek().Type != EOF {
		t.Fatalf("cursor moved past EOF: %v", s.Peek())
	}
}

func TestNewStreamAppendsEOF(t *testing.T) {
	toks := []Token{New(NUMBER, "1", 1.0, 3)}
	s := NewStream(toks)

	s.Advance()
	if got := s.Peek(); got.Type != EOF || got.Line != 3 {
		t.Fatalf("Peek = %v (line %d), want EOF on line 3", got, got.Line)
	}
	if len(toks) != 1 {
		t.Fatalf("caller slice was modified: %v", toks)
	}

	empty := NewStream(nil)
	if !empty.IsAtEnd() {
		t.Fatalf("empty stream should be at EOF")
	}
}

func TestTokenTypeString(t *testing.T) {
	tests := map[TokenType]string{
		LEFT_PAREN:    "LEFT_PAREN",
		QUESTION_MARK: "QUESTION_MARK",
		BREAK:         "BREAK",
		EOF:           "EOF",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}
