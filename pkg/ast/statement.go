package ast

import (
	"strings"

	"glox/pkg/token"
)

type Stmt interface {
	isStmt()
	String() string
}

type VarDecl struct {
	Name        token.Token
	Initializer Expr // nil when omitted
}

func (*VarDecl) isStmt() {}
func (d *VarDecl) String() string {
	if d.Initializer == nil {
		return "var " + d.Name.Lexeme + ";"
	}
	return "var " + d.Name.Lexeme + " = " + d.Initializer.String() + ";"
}

type FunDecl struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*FunDecl) isStmt() {}
func (f *FunDecl) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Lexeme
	}

	return "fun " + f.Name.Lexeme + "(" + strings.Join(params, ", ") + ") " +
		blockString(f.Body)
}

type ExprStmt struct {
	Expression Expr
}

func (*ExprStmt) isStmt() {}
func (e *ExprStmt) String() string {
	return e.Expression.String() + ";"
}

type PrintStmt struct {
	Keyword    token.Token
	Expression Expr
}

func (*PrintStmt) isStmt() {}
func (p *PrintStmt) String() string {
	return "print " + p.Expression.String() + ";"
}

type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil when there is no else
}

func (*IfStmt) isStmt() {}
func (i *IfStmt) String() string {
	var sb strings.Builder

	sb.WriteString("if ")
	sb.WriteString(i.Condition.String())
	sb.WriteByte(' ')
	sb.WriteString(i.ThenBranch.String())

	if i.ElseBranch != nil {
		sb.WriteString(" else ")
		sb.WriteString(i.ElseBranch.String())
	}

	return sb.String()
}

// WhileStmt is also what every for loop desugars to.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) isStmt() {}
func (w *WhileStmt) String() string {
	return "while " + w.Condition.String() + " " + w.Body.String()
}

type BreakStmt struct {
	Keyword token.Token
}

func (*BreakStmt) isStmt() {}
func (*BreakStmt) String() string {
	return "break;"
}

type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil for a bare return
}

func (*ReturnStmt) isStmt() {}
func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

type Block struct {
	Stmts []Stmt
}

func (*Block) isStmt() {}
func (b *Block) String() string {
	return blockString(b.Stmts)
}

func blockString(stmts []Stmt) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for _, stmt := range stmts {
		sb.WriteByte(' ')
		sb.WriteString(stmt.String())
	}
	sb.WriteString(" }")

	return sb.String()
}
