package interpreter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"glox/pkg/ast"
	"glox/pkg/report"
)

const (
	DefaultMaxCallDepth = 1024

	// MaxCallDepthLimit keeps nested calls well inside the Go stack, so
	// running out of frames is reported as "Stack overflow." instead of
	// killing the process.
	MaxCallDepthLimit = 100_000
)

type Options struct {
	// Out receives print output. Defaults to os.Stdout.
	Out io.Writer
	// Reporter receives runtime errors. May be nil.
	Reporter report.Reporter
	// MaxCallDepth bounds nested calls. Defaults to DefaultMaxCallDepth and
	// is clamped to MaxCallDepthLimit.
	MaxCallDepth int
	// Globals are defined in the global scope before anything runs. Values
	// must be nil, bool, float64, string or a Callable. A Callable whose
	// dynamic type is not comparable never equals anything, itself included.
	Globals map[string]any
}

type Interpreter struct {
	globals *Environment
	env     *Environment

	out      io.Writer
	reporter report.Reporter

	frames   Stack[Callable]
	maxDepth int
}

func New(opts Options) *Interpreter {
	globals := NewEnvironment(nil)
	for name, value := range opts.Globals {
		globals.Define(name, value)
	}

	i := &Interpreter{
		globals:  globals,
		env:      globals,
		out:      opts.Out,
		reporter: opts.Reporter,
		maxDepth: opts.MaxCallDepth,
	}
	if i.out == nil {
		i.out = os.Stdout
	}
	if i.maxDepth <= 0 {
		i.maxDepth = DefaultMaxCallDepth
	}
	i.maxDepth = min(i.maxDepth, MaxCallDepthLimit)

	return i
}

func (i *Interpreter) Globals() *Environment {
	return i.globals
}

// Interpret executes top-level statements in order. A runtime error is
// reported and abandons only the statement that raised it; effects of
// earlier statements stay. The returned error joins every failure.
func (i *Interpreter) Interpret(stmts ...ast.Stmt) error {
	var errs []error
	for _, stmt := range stmts {
		if err := i.executeTopLevel(stmt); err != nil {
			i.report(err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Evaluate evaluates a single expression in the global scope, reporting
// any runtime error.
func (i *Interpreter) Evaluate(expr ast.Expr) (any, error) {
	val, err := i.evaluate(expr)
	if err != nil {
		i.report(err)
		return nil, err
	}

	return val, nil
}

func (i *Interpreter) executeTopLevel(stmt ast.Stmt) error {
	result, err := i.execute(stmt)
	if err != nil {
		return err
	}

	return result.escaped()
}

func (i *Interpreter) report(err error) {
	if i.reporter == nil {
		return
	}

	var rerr *RuntimeError
	if errors.As(err, &rerr) {
		i.reporter.RuntimeError(rerr.Token, rerr.Message)
	}
}

func (i *Interpreter) execute(stmt ast.Stmt) (flow, error) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		var val any
		if s.Initializer != nil {
			var err error
			if val, err = i.evaluate(s.Initializer); err != nil {
				return normal, err
			}
		}

		// The initializer has already run, so it saw any outer binding
		// of the same name.
		i.env.Define(s.Name.Lexeme, val)

		return normal, nil
	case *ast.FunDecl:
		i.env.Define(s.Name.Lexeme, &Function{decl: s, closure: i.env})
		return normal, nil
	case *ast.ExprStmt:
		_, err := i.evaluate(s.Expression)
		return normal, err
	case *ast.PrintStmt:
		value, err := i.evaluate(s.Expression)
		if err != nil {
			return normal, err
		}

		if _, err := fmt.Fprintln(i.out, Stringify(value)); err != nil {
			return normal, &RuntimeError{s.Keyword, "Can't write output: " + err.Error(), err}
		}

		return normal, nil
	case *ast.IfStmt:
		return i.execIfStmt(s)
	case *ast.WhileStmt:
		return i.execWhileStmt(s)
	case *ast.BreakStmt:
		return flow{kind: flowBreak, keyword: s.Keyword}, nil
	case *ast.ReturnStmt:
		var value any
		if s.Value != nil {
			var err error
			if value, err = i.evaluate(s.Value); err != nil {
				return normal, err
			}
		}

		return flow{kind: flowReturn, keyword: s.Keyword, value: value}, nil
	case *ast.Block:
		return i.execBlock(s.Stmts, NewEnvironment(i.env))
	default:
		panic(fmt.Sprintf(
			"Unimplemented Statement type: %T", s))
	}
}

// execBlock runs stmts in env and restores the previous scope afterwards,
// also when a statement fails.
func (i *Interpreter) execBlock(stmts []ast.Stmt, env *Environment) (flow, error) {
	prevEnv := i.env

	i.env = env
	defer func() { i.env = prevEnv }()

	for _, stmt := range stmts {
		result, err := i.execute(stmt)
		if err != nil || result.kind != flowNormal {
			return result, err
		}
	}

	return normal, nil
}

func (i *Interpreter) execIfStmt(stmt *ast.IfStmt) (flow, error) {
	cond, err := i.evaluate(stmt.Condition)
	if err != nil {
		return normal, err
	}

	if isTruthy(cond) {
		return i.execute(stmt.ThenBranch)
	}

	if stmt.ElseBranch != nil {
		return i.execute(stmt.ElseBranch)
	}

	return normal, nil
}

func (i *Interpreter) execWhileStmt(stmt *ast.WhileStmt) (flow, error) {
	for {
		cond, err := i.evaluate(stmt.Condition)
		if err != nil {
			return normal, err
		}

		if !isTruthy(cond) {
			return normal, nil
		}

		result, err := i.execute(stmt.Body)
		if err != nil {
			return normal, err
		}

		switch result.kind {
		case flowBreak:
			return normal, nil
		case flowReturn:
			return result, nil
		}
	}
}
