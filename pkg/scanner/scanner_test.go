package scanner

import (
	"strings"
	"testing"

	"glox/pkg/token"
)

func types(toks []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.TokenType
	}{
		{"punctuation", "(){},.;?:", []token.TokenType{
			token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
			token.COMMA, token.DOT, token.SEMICOLON, token.QUESTION_MARK, token.COLON, token.EOF,
		}},
		{"operators", "- + * / ! != = == < <= > >=", []token.TokenType{
			token.MINUS, token.PLUS, token.STAR, token.SLASH,
			token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
			token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL, token.EOF,
		}},
		{"keywords", "var fun break while for if else return print and or nil true false", []token.TokenType{
			token.VAR, token.FUN, token.BREAK, token.WHILE, token.FOR, token.IF, token.ELSE,
			token.RETURN, token.PRINT, token.AND, token.OR, token.NIL, token.TRUE, token.FALSE, token.EOF,
		}},
		{"identifiers", "foo _bar baz9 classy", []token.TokenType{
			token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER, token.EOF,
		}},
		{"comments", "1 // one\n/* two\n three */ 3", []token.TokenType{
			token.NUMBER, token.NUMBER, token.EOF,
		}},
		{"empty", "", []token.TokenType{token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, errs := New(tt.src).Scan()
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			got := types(toks)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("token %d: got %v, want %v (all: %v)", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}

func TestScanLiterals(t *testing.T) {
	toks, errs := New(`12 3.5 "hi there" 7.`).Scan()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if got := toks[0].Literal; got != 12.0 {
		t.Errorf("literal 0 = %v, want 12", got)
	}
	if got := toks[1].Literal; got != 3.5 {
		t.Errorf("literal 1 = %v, want 3.5", got)
	}
	if got := toks[2].Literal; got != "hi there" {
		t.Errorf("literal 2 = %v, want %q", got, "hi there")
	}
	if toks[2].Lexeme != `"hi there"` {
		t.Errorf("string lexeme = %s", toks[2].Lexeme)
	}
	// A trailing dot is not part of the number.
	if toks[3].Literal != 7.0 || toks[4].Type != token.DOT {
		t.Errorf("got %v %v, want NUMBER 7 then DOT", toks[3], toks[4])
	}
}

func TestScanLines(t *testing.T) {
	toks, _ := New("a\n\"multi\nline\"\nb").Scan()
	wantLines := []int{1, 3, 4, 4}
	for i, want := range wantLines {
		if toks[i].Line != want {
			t.Errorf("token %d (%v) on line %d, want %d", i, toks[i], toks[i].Line, want)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unexpected", "var x = 1 @ 2;", "Unexpected character '@'."},
		{"unterminated string", `print "oops;`, "Unterminated string."},
		{"unterminated comment", "1 /* no end", "Unterminated block comment."},
		{"multi-byte character", "var café = 1;", "Unexpected character 'é'."},
		{"invalid utf-8", "1 \xff 2", "Unexpected character '\uFFFD'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, errs := New(tt.src).Scan()
			if len(errs) != 1 {
				t.Fatalf("got %d errors (%v), want 1", len(errs), errs)
			}
			if !strings.Contains(errs[0].Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", errs[0], tt.want)
			}
			if toks[len(toks)-1].Type != token.EOF {
				t.Fatalf("token stream does not end with EOF: %v", toks)
			}
		})
	}
}

func TestScanNonASCII(t *testing.T) {
	toks, errs := New(`print "héllo"; λ;`).Scan()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if got, want := errs[0].Error(), "[line 1] Error: Unexpected character 'λ'."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if toks[1].Literal != "héllo" {
		t.Fatalf("string literal = %v, want héllo", toks[1].Literal)
	}
	// print, string, ';', ';', EOF
	if len(toks) != 5 {
		t.Fatalf("got %d tokens: %v", len(toks), toks)
	}
}

func TestScanContinuesAfterError(t *testing.T) {
	toks, errs := New("1 @ 2 # 3").Scan()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if got := len(toks); got != 4 {
		t.Fatalf("got %d tokens, want 4 (three numbers and EOF): %v", got, toks)
	}
}
