// Package ast holds the expression and statement nodes produced by the
// parser. Nodes are never modified after parsing, so a tree can be evaluated
// any number of times.
package ast

import (
	"fmt"
	"strings"

	"glox/pkg/token"
)

type Expr interface {
	isExpr()
	fmt.Stringer
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(expr.String())
	}
	sb.WriteByte(')')

	return sb.String()
}

type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Assign) isExpr() {}
func (a *Assign) String() string {
	return parenthesize("assign "+a.Name.Lexeme, a.Value)
}

// Binary covers arithmetic, comparison, equality and the comma operator.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*Binary) isExpr() {}
func (b *Binary) String() string {
	return parenthesize(b.Operator.Lexeme, b.Left, b.Right)
}

type Call struct {
	Callee Expr
	Paren  token.Token // closing paren, for error lines
	Args   []Expr
}

func (*Call) isExpr() {}
func (c *Call) String() string {
	return parenthesize("call", append([]Expr{c.Callee}, c.Args...)...)
}

type Grouping struct {
	Expression Expr
}

func (*Grouping) isExpr() {}
func (g *Grouping) String() string {
	return parenthesize("group", g.Expression)
}

type Literal struct {
	Value any // float64, string, bool, or nil
}

func (*Literal) isExpr() {}
func (l *Literal) String() string {
	switch v := l.Value.(type) {
	case string:
		return v
	case float64:
		return FormatNumber(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return "nil"
	default:
		panic(fmt.Sprintf("Incompatible literal type: %T", v))
	}
}

// Logical is a short-circuiting "and" / "or".
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*Logical) isExpr() {}
func (l *Logical) String() string {
	return parenthesize(l.Operator.Lexeme, l.Left, l.Right)
}

type Ternary struct {
	Token     token.Token // '?'
	Condition Expr
	Truthy    Expr
	Falsy     Expr
}

func (*Ternary) isExpr() {}
func (t *Ternary) String() string {
	return parenthesize("?:", t.Condition, t.Truthy, t.Falsy)
}

type Unary struct {
	Operator token.Token
	Right    Expr
}

func (*Unary) isExpr() {}
func (u *Unary) String() string {
	return parenthesize(u.Operator.Lexeme, u.Right)
}

type Variable struct {
	Name token.Token
}

func (*Variable) isExpr() {}
func (v *Variable) String() string {
	return v.Name.Lexeme
}
