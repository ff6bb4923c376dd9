package token

import (
	"fmt"
)

type TokenType byte

const (
	// Single character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	SEMICOLON
	COMMA
	DOT
	QUESTION_MARK
	COLON

	// Math operators
	MINUS
	PLUS
	SLASH
	STAR

	// Assignment
	EQUAL

	// Comparison operators
	EQUAL_EQUAL
	BANG_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL

	// Boolean operators
	BANG
	AND
	OR
	// NIL keyword
	NIL
	// Boolean keywords
	TRUE
	FALSE
	// Control Flow keywords
	IF
	ELSE
	WHILE
	FOR
	BREAK
	FUN
	RETURN
	// OOP Keywords (reserved, never parsed)
	SUPER
	THIS
	CLASS
	// Variable declaration keyword
	VAR
	// Misc. keyword(s)
	PRINT

	// Literals
	IDENTIFIER
	NUMBER
	STRING

	EOF
)

var typeNames = [...]string{
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	SEMICOLON:     "SEMICOLON",
	COMMA:         "COMMA",
	DOT:           "DOT",
	QUESTION_MARK: "QUESTION_MARK",
	COLON:         "COLON",
	MINUS:         "MINUS",
	PLUS:          "PLUS",
	SLASH:         "SLASH",
	STAR:          "STAR",
	EQUAL:         "EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	BANG_EQUAL:    "BANG_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	BANG:          "BANG",
	AND:           "AND",
	OR:            "OR",
	NIL:           "NIL",
	TRUE:          "TRUE",
	FALSE:         "FALSE",
	IF:            "IF",
	ELSE:          "ELSE",
	WHILE:         "WHILE",
	FOR:           "FOR",
	BREAK:         "BREAK",
	FUN:           "FUN",
	RETURN:        "RETURN",
	SUPER:         "SUPER",
	THIS:          "THIS",
	CLASS:         "CLASS",
	VAR:           "VAR",
	PRINT:         "PRINT",
	IDENTIFIER:    "IDENTIFIER",
	NUMBER:        "NUMBER",
	STRING:        "STRING",
	EOF:           "EOF",
}

func (t TokenType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}

	panic(fmt.Sprintf("Invalid TokenType: %d", t))
}

// Keywords maps reserved words to their token types.
var Keywords = map[string]TokenType{
	"and":    AND,
	"break":  BREAK,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Token is a single lexeme produced by the scanner. Literal holds the
// parsed float64 or string for NUMBER and STRING tokens and is nil otherwise.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
}

func New(typ TokenType, lexeme string, literal any, line int) Token {
	return Token{Type: typ, Lexeme: lexeme, Literal: literal, Line: line}
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}
