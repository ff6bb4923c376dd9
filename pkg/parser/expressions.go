package parser

import (
	"fmt"

	"glox/pkg/ast"
	"glox/pkg/token"
)

// expression ::= assignment
func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// assignment ::= IDENTIFIER "=" assignment | separator
//
// An invalid target is reported but does not abort the statement.
func (p *Parser) parseAssignment() ast.Expr {
	expr := p.parseSeparator()

	if equals, ok := p.consumeOneOf(token.EQUAL); ok {
		p.enter()
		defer p.leave()

		value := p.parseAssignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}

		p.report(ParseError{equals, "Invalid assignment target."})
	}

	return expr
}

// separator ::= ternary ( "," ternary )*
func (p *Parser) parseSeparator() ast.Expr {
	expr := p.parseTernary()

	for {
		op, ok := p.consumeOneOf(token.COMMA)
		if !ok {
			return expr
		}
		rhs := p.parseTernary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: rhs}
	}
}

// ternary ::= logicOr ( "?" ternary ":" ternary )?
func (p *Parser) parseTernary() ast.Expr {
	expr := p.parseLogicalOr()

	if op, ok := p.consumeOneOf(token.QUESTION_MARK); ok {
		p.enter()
		defer p.leave()

		truthy := p.parseTernary()
		p.consumeToken(token.COLON, "Expect ':' after then branch of conditional expression.")
		falsy := p.parseTernary()

		return &ast.Ternary{
			Token:     op,
			Condition: expr,
			Truthy:    truthy,
			Falsy:     falsy,
		}
	}

	return expr
}

// logicOr ::= logicAnd ( "or" logicAnd )*
func (p *Parser) parseLogicalOr() ast.Expr {
	expr := p.parseLogicalAnd()

	for p.peekIsOneOf(token.OR) {
		op := p.tokens.Advance()
		rhs := p.parseLogicalAnd()
		expr = &ast.Logical{Left: expr, Operator: op, Right: rhs}
	}

	return expr
}

// logicAnd ::= equality ( "and" equality )*
func (p *Parser) parseLogicalAnd() ast.Expr {
	expr := p.parseEquality()

	for p.peekIsOneOf(token.AND) {
		op := p.tokens.Advance()
		rhs := p.parseEquality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: rhs}
	}

	return expr
}

// equality ::= comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) parseEquality() ast.Expr {
	expr := p.parseComparison()

	for p.peekIsOneOf(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.tokens.Advance()
		rhs := p.parseComparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: rhs}
	}

	return expr
}

// comparison ::= addition ( ( ">" | ">=" | "<" | "<=" ) addition )*
func (p *Parser) parseComparison() ast.Expr {
	expr := p.parseAddition()

	for p.peekIsOneOf(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.tokens.Advance()
		rhs := p.parseAddition()
		expr = &ast.Binary{Left: expr, Operator: op, Right: rhs}
	}

	return expr
}

// addition ::= multiplication ( ( "-" | "+" ) multiplication )*
func (p *Parser) parseAddition() ast.Expr {
	expr := p.parseMultiplication()

	for p.peekIsOneOf(token.MINUS, token.PLUS) {
		op := p.tokens.Advance()
		rhs := p.parseMultiplication()
		expr = &ast.Binary{Left: expr, Operator: op, Right: rhs}
	}

	return expr
}

// multiplication ::= unary ( ( "/" | "*" ) unary )*
func (p *Parser) parseMultiplication() ast.Expr {
	expr := p.parseUnary()

	for p.peekIsOneOf(token.SLASH, token.STAR) {
		op := p.tokens.Advance()
		rhs := p.parseUnary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: rhs}
	}

	return expr
}

// unary ::= ( "!" | "-" ) unary | call
func (p *Parser) parseUnary() ast.Expr {
	if op, ok := p.consumeOneOf(token.BANG, token.MINUS); ok {
		p.enter()
		defer p.leave()

		rhs := p.parseUnary()
		return &ast.Unary{Operator: op, Right: rhs}
	}

	return p.parseCall()
}

// call ::= primary ( "(" arguments? ")" )*
func (p *Parser) parseCall() ast.Expr {
	expr := p.parsePrimary()

	for p.tryConsume(token.LEFT_PAREN) {
		expr = p.finishCall(expr)
	}

	return expr
}

// arguments ::= ternary ( "," ternary )*
//
// Arguments sit at ternary precedence so that the comma separates
// arguments instead of forming a sequence expression.
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	p.enter()
	defer p.leave()

	args := []ast.Expr{}

	if !p.peekIsOneOf(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.report(ParseError{p.tokens.Peek(),
					fmt.Sprintf("Can't have more than %d arguments.", maxArgs),
				})
			}

			args = append(args, p.parseTernary())

			if !p.tryConsume(token.COMMA) {
				break
			}
		}
	}

	paren := p.consumeToken(token.RIGHT_PAREN, "Expect ')' after arguments.")

	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

// primary ::= "true" | "false" | "nil" | NUMBER | STRING | IDENTIFIER
//
//	| "(" expression ")"
func (p *Parser) parsePrimary() ast.Expr {
	switch tok := p.tokens.Peek(); tok.Type {
	case token.TRUE:
		p.tokens.Advance()
		return &ast.Literal{Value: true}
	case token.FALSE:
		p.tokens.Advance()
		return &ast.Literal{Value: false}
	case token.NIL:
		p.tokens.Advance()
		return &ast.Literal{Value: nil}
	case token.NUMBER, token.STRING:
		p.tokens.Advance()
		return &ast.Literal{Value: tok.Literal}
	case token.IDENTIFIER:
		p.tokens.Advance()
		return &ast.Variable{Name: tok}
	case token.LEFT_PAREN:
		p.enter()
		defer p.leave()

		p.tokens.Advance()
		expr := p.parseExpression()
		p.consumeToken(token.RIGHT_PAREN, "Expect ')' after expression.")

		return &ast.Grouping{Expression: expr}
	case token.STAR, token.SLASH, token.PLUS,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL,
		token.BANG_EQUAL, token.EQUAL_EQUAL:
		// Binary operator with no left operand: swallow the right operand
		// so the error is reported once, at the operator.
		p.tokens.Advance()
		_ = p.parseTernary()
		panic(ParseError{tok,
			"Missing left-hand operand for '" + tok.Lexeme + "'."})
	default:
		panic(ParseError{tok, "Expect expression."})
	}
}
