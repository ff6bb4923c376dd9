// Package driver wires the scanner, parser and interpreter together for the
// command line tool and for embedding hosts.
package driver

import (
	"errors"
	"fmt"
	"io"

	"glox/pkg/ast"
	"glox/pkg/interpreter"
	"glox/pkg/parser"
	"glox/pkg/report"
	"glox/pkg/scanner"
)

var (
	ErrStatic  = errors.New("static error")
	ErrRuntime = errors.New("runtime error")
)

// Run scans, parses and executes source. Nothing is executed when scanning
// or parsing reported an error.
func Run(source string, interp *interpreter.Interpreter, reporter *report.Console) error {
	stmts, err := Parse(source, reporter)
	if err != nil {
		return err
	}

	if err := interp.Interpret(stmts...); err != nil {
		return fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return nil
}

// Parse scans and parses source, reporting every error to reporter.
func Parse(source string, reporter *report.Console) ([]ast.Stmt, error) {
	toks, scanErrs := scanner.New(source).Scan()
	reporter.Errors(scanErrs)

	stmts, ok := parser.Parse(toks, reporter)
	if !ok || len(scanErrs) > 0 {
		return nil, ErrStatic
	}

	return stmts, nil
}

// RunLine executes one REPL line. When echo is set and the line is a single
// expression statement, its value is written to out.
func RunLine(line string, interp *interpreter.Interpreter, reporter *report.Console, out io.Writer, echo bool) error {
	defer reporter.Reset()

	stmts, err := Parse(line, reporter)
	if err != nil {
		return err
	}

	if exprStmt, ok := singleExpression(stmts); ok && echo {
		val, err := interp.Evaluate(exprStmt.Expression)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRuntime, err)
		}
		_, err = fmt.Fprintln(out, interpreter.Stringify(val))
		return err
	}

	if err := interp.Interpret(stmts...); err != nil {
		return fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return nil
}

func singleExpression(stmts []ast.Stmt) (*ast.ExprStmt, bool) {
	if len(stmts) != 1 {
		return nil, false
	}
	s, ok := stmts[0].(*ast.ExprStmt)
	return s, ok
}
