package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders expr as Lox source with every compound subexpression
// wrapped in parentheses. Scanning and parsing the result yields a tree that
// evaluates to the same value as expr.
func Format(expr Expr) string {
	var sb strings.Builder
	format(&sb, expr)

	return sb.String()
}

func format(sb *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *Literal:
		switch v := e.Value.(type) {
		case string:
			sb.WriteByte('"')
			sb.WriteString(v)
			sb.WriteByte('"')
		case float64:
			formatNumberSource(sb, v)
		default:
			sb.WriteString(e.String())
		}
	case *Variable:
		sb.WriteString(e.Name.Lexeme)
	case *Grouping:
		// Compound expressions carry their own parentheses.
		format(sb, e.Expression)
	case *Unary:
		sb.WriteByte('(')
		sb.WriteString(e.Operator.Lexeme)
		format(sb, e.Right)
		sb.WriteByte(')')
	case *Binary:
		formatInfix(sb, e.Left, e.Operator.Lexeme, e.Right)
	case *Logical:
		formatInfix(sb, e.Left, e.Operator.Lexeme, e.Right)
	case *Ternary:
		sb.WriteByte('(')
		format(sb, e.Condition)
		sb.WriteString(" ? ")
		format(sb, e.Truthy)
		sb.WriteString(" : ")
		format(sb, e.Falsy)
		sb.WriteByte(')')
	case *Assign:
		sb.WriteByte('(')
		sb.WriteString(e.Name.Lexeme)
		sb.WriteString(" = ")
		format(sb, e.Value)
		sb.WriteByte(')')
	case *Call:
		format(sb, e.Callee)
		sb.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, arg)
		}
		sb.WriteByte(')')
	default:
		panic(fmt.Sprintf("Unimplemented Expression type: %T", e))
	}
}

func formatInfix(sb *strings.Builder, left Expr, op string, right Expr) {
	sb.WriteByte('(')
	format(sb, left)
	if op != "," {
		sb.WriteByte(' ')
	}
	sb.WriteString(op)
	sb.WriteByte(' ')
	format(sb, right)
	sb.WriteByte(')')
}

// Lox has no literal for infinities or NaN, and negative literals do not
// exist either: they are spelled as expressions.
func formatNumberSource(sb *strings.Builder, v float64) {
	switch {
	case math.IsNaN(v):
		sb.WriteString("(0 / 0)")
	case math.IsInf(v, 1):
		sb.WriteString("(1 / 0)")
	case math.IsInf(v, -1):
		sb.WriteString("(-1 / 0)")
	case v < 0 || (v == 0 && math.Signbit(v)):
		sb.WriteString("(-")
		sb.WriteString(strconv.FormatFloat(-v, 'f', -1, 64))
		sb.WriteByte(')')
	default:
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
}

// FormatNumber renders a number the way print shows it: integral values
// have no fractional part.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
