package parser

import (
	"fmt"
	"slices"

	"glox/pkg/ast"
	"glox/pkg/report"
	"glox/pkg/token"
)

// maxArgs caps both call arguments and function parameters.
const maxArgs = 8

// maxNesting caps nested groupings, unary operators, calls, conditionals,
// assignments and statements, so that neither the parser nor the evaluator
// can recurse deep enough to exhaust the Go stack.
const maxNesting = 512

type ParseError struct {
	Token   token.Token
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s",
		e.Token.Line, report.Where(e.Token), e.Message)
}

// Cursor is the parser's only view of the token sequence.
type Cursor interface {
	Peek() token.Token
	Advance() token.Token
	Previous() token.Token
}

type Parser struct {
	tokens   Cursor
	reporter report.Reporter
	HadError bool

	depth int
}

func New(tokens Cursor, reporter report.Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse is a shorthand for parsing a scanned token slice.
func Parse(tokens []token.Token, reporter report.Reporter) ([]ast.Stmt, bool) {
	p := New(token.NewStream(tokens), reporter)
	stmts := p.Parse()

	return stmts, !p.HadError
}

// program ::= declaration* EOF
//
// Declarations that fail to parse are reported and left out of the result.
func (p *Parser) Parse() []ast.Stmt {
	stmts := []ast.Stmt{}
	for !p.isAtEnd() {
		if stmt := p.parseDeclaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	return stmts
}

func (p *Parser) report(err ParseError) {
	p.HadError = true
	if p.reporter != nil {
		p.reporter.ParseError(err.Token, err.Message)
	}
}

// enter must be paired with a deferred leave.
func (p *Parser) enter() {
	if p.depth >= maxNesting {
		panic(ParseError{p.tokens.Peek(), "Too much nesting."})
	}
	p.depth++
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) isAtEnd() bool {
	return p.tokens.Peek().Type == token.EOF
}

func (p *Parser) peekIsOneOf(types ...token.TokenType) bool {
	return slices.Contains(types, p.tokens.Peek().Type)
}

func (p *Parser) consumeToken(typ token.TokenType, message string) token.Token {
	if tok := p.tokens.Peek(); tok.Type == typ {
		return p.tokens.Advance()
	} else {
		panic(ParseError{tok, message})
	}
}

func (p *Parser) consumeOneOf(types ...token.TokenType) (token.Token, bool) {
	if p.peekIsOneOf(types...) && !p.isAtEnd() {
		return p.tokens.Advance(), true
	}

	return p.tokens.Peek(), false
}

func (p *Parser) tryConsume(typ token.TokenType) bool {
	_, ok := p.consumeOneOf(typ)
	return ok
}

func (p *Parser) synchronize() {
	p.tokens.Advance()

	for !p.isAtEnd() {
		if p.tokens.Previous().Type == token.SEMICOLON {
			return
		}

		if p.peekIsOneOf(
			token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN,
		) {
			return
		}

		p.tokens.Advance()
	}
}

// declaration ::= funDecl | varDecl | statement
func (p *Parser) parseDeclaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(ParseError); ok {
				p.report(err)
				p.synchronize()
				stmt = nil
			} else {
				panic(r) // real panic, let it crash
			}
		}
	}()

	switch {
	case p.tryConsume(token.FUN):
		stmt = p.parseFunDecl("function")
	case p.tryConsume(token.VAR):
		stmt = p.parseVarDecl()
	default:
		stmt = p.parseStatement()
	}

	return
}

// varDecl ::= "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) parseVarDecl() ast.Stmt {
	name := p.consumeToken(token.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.tryConsume(token.EQUAL) {
		initializer = p.parseExpression()
	}

	p.consumeToken(token.SEMICOLON, "Expect ';' after variable declaration.")

	return &ast.VarDecl{Name: name, Initializer: initializer}
}

// funDecl ::= "fun" IDENTIFIER "(" parameters? ")" block
func (p *Parser) parseFunDecl(kind string) ast.Stmt {
	name := p.consumeToken(token.IDENTIFIER, "Expect "+kind+" name.")

	p.consumeToken(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")
	params := p.parseParameters()
	p.consumeToken(token.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consumeToken(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.parseBlockBody()

	return &ast.FunDecl{Name: name, Params: params, Body: body}
}

// parameters ::= IDENTIFIER ( "," IDENTIFIER )*
func (p *Parser) parseParameters() []token.Token {
	params := []token.Token{}
	if p.peekIsOneOf(token.RIGHT_PAREN) {
		return params
	}

	for {
		if len(params) >= maxArgs {
			p.report(ParseError{p.tokens.Peek(),
				fmt.Sprintf("Can't have more than %d parameters.", maxArgs),
			})
		}

		params = append(params,
			p.consumeToken(token.IDENTIFIER, "Expect parameter name."))

		if !p.tryConsume(token.COMMA) {
			return params
		}
	}
}

// statement ::= exprStmt | forStmt | ifStmt | printStmt | returnStmt
//
//	| whileStmt | breakStmt | block
func (p *Parser) parseStatement() ast.Stmt {
	p.enter()
	defer p.leave()

	switch {
	case p.tryConsume(token.PRINT):
		return p.parsePrintStmt()
	case p.tryConsume(token.IF):
		return p.parseIfStmt()
	case p.tryConsume(token.WHILE):
		return p.parseWhileStmt()
	case p.tryConsume(token.FOR):
		return p.parseForStmt()
	case p.tryConsume(token.BREAK):
		return p.parseBreakStmt()
	case p.tryConsume(token.RETURN):
		return p.parseReturnStmt()
	case p.tryConsume(token.LEFT_BRACE):
		return &ast.Block{Stmts: p.parseBlockBody()}
	default:
		return p.parseExprStmt()
	}
}

// exprStmt ::= expression ";"
func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpression()
	p.consumeToken(token.SEMICOLON, "Expect ';' after expression.")

	return &ast.ExprStmt{Expression: expr}
}

// block ::= "{" declaration* "}"
//
// The opening brace has already been consumed.
func (p *Parser) parseBlockBody() []ast.Stmt {
	stmts := []ast.Stmt{}
	for !p.peekIsOneOf(token.RIGHT_BRACE, token.EOF) {
		if stmt := p.parseDeclaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	p.consumeToken(token.RIGHT_BRACE, "Expect '}' after block.")

	return stmts
}

// printStmt ::= "print" expression ";"
func (p *Parser) parsePrintStmt() ast.Stmt {
	keyword := p.tokens.Previous()
	value := p.parseExpression()
	p.consumeToken(token.SEMICOLON, "Expect ';' after value.")

	return &ast.PrintStmt{Keyword: keyword, Expression: value}
}

// ifStmt ::= "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) parseIfStmt() ast.Stmt {
	p.consumeToken(token.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.parseExpression()
	p.consumeToken(token.RIGHT_PAREN, "Expect ')' after if condition.")

	thenStmt := p.parseStatement()

	var elseStmt ast.Stmt
	if p.tryConsume(token.ELSE) {
		elseStmt = p.parseStatement()
	}

	return &ast.IfStmt{Condition: cond, ThenBranch: thenStmt, ElseBranch: elseStmt}
}

// whileStmt ::= "while" "(" expression ")" statement
func (p *Parser) parseWhileStmt() ast.Stmt {
	p.consumeToken(token.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.parseExpression()
	p.consumeToken(token.RIGHT_PAREN, "Expect ')' after while condition.")

	body := p.parseStatement()

	return &ast.WhileStmt{Condition: cond, Body: body}
}

// forStmt ::= "for" "(" ( varDecl | exprStmt | ";" ) expression? ";"
//
//	expression? ")" statement
//
// The loop is desugared into
//
//	{ initializer; while (condition) { body; increment; } }
func (p *Parser) parseForStmt() ast.Stmt {
	p.consumeToken(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.tryConsume(token.SEMICOLON):
		initializer = nil
	case p.tryConsume(token.VAR):
		initializer = p.parseVarDecl()
	default:
		initializer = p.parseExprStmt()
	}

	var condition ast.Expr
	if !p.peekIsOneOf(token.SEMICOLON) {
		condition = p.parseExpression()
	}
	p.consumeToken(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.peekIsOneOf(token.RIGHT_PAREN) {
		increment = p.parseExpression()
	}
	p.consumeToken(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.parseStatement()

	if increment != nil {
		body = &ast.Block{Stmts: []ast.Stmt{
			body,
			&ast.ExprStmt{Expression: increment},
		}}
	}

	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Stmts: []ast.Stmt{initializer, body}}
	}

	return body
}

// breakStmt ::= "break" ";"
func (p *Parser) parseBreakStmt() ast.Stmt {
	keyword := p.tokens.Previous()
	p.consumeToken(token.SEMICOLON, "Expect ';' after 'break'.")

	return &ast.BreakStmt{Keyword: keyword}
}

// returnStmt ::= "return" expression? ";"
func (p *Parser) parseReturnStmt() ast.Stmt {
	keyword := p.tokens.Previous()

	var value ast.Expr
	if !p.peekIsOneOf(token.SEMICOLON) {
		value = p.parseExpression()
	}
	p.consumeToken(token.SEMICOLON, "Expect ';' after return value.")

	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}
