package interpreter

import (
	"errors"
	"fmt"

	"glox/pkg/ast"
	"glox/pkg/token"
)

func (i *Interpreter) evaluate(expr ast.Expr) (any, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return i.evaluate(e.Expression)
	case *ast.Variable:
		return i.env.Get(e.Name)
	case *ast.Assign:
		val, err := i.evaluate(e.Value)
		if err != nil {
			return nil, err
		}

		if err := i.env.Assign(e.Name, val); err != nil {
			return nil, err
		}

		return val, nil
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Ternary:
		cond, err := i.evaluate(e.Condition)
		if err != nil {
			return nil, err
		}

		// The branch not taken is never evaluated.
		if isTruthy(cond) {
			return i.evaluate(e.Truthy)
		}
		return i.evaluate(e.Falsy)
	case *ast.Call:
		return i.evalCall(e)
	default:
		panic(fmt.Sprintf(
			"Unimplemented Expression type: %T", e))
	}
}

func (i *Interpreter) evalUnary(expr *ast.Unary) (any, error) {
	rhs, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.BANG:
		return !isTruthy(rhs), nil
	case token.MINUS:
		n, ok := rhs.(float64)
		if !ok {
			return nil, operandError(expr.Operator,
				"Operand of '-' must be a number, got "+typeName(rhs)+".")
		}

		return -n, nil
	default:
		panic(fmt.Sprintf(
			"Unreachable: unexpected unary operator: %v", expr.Operator))
	}
}

func (i *Interpreter) evalBinary(expr *ast.Binary) (any, error) {
	lhs, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	rhs, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.COMMA:
		// the left value is discarded
		return rhs, nil
	case token.EQUAL_EQUAL:
		return isEqual(lhs, rhs), nil
	case token.BANG_EQUAL:
		return !isEqual(lhs, rhs), nil
	case token.PLUS:
		return add(expr.Operator, lhs, rhs)
	case token.MINUS, token.STAR, token.SLASH,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		return arithmetic(expr.Operator, lhs, rhs)
	}

	panic(fmt.Sprintf("Unreachable: unexpected binary operator: %v", expr.Operator))
}

// Only '+' is overloaded: numbers add, strings concatenate.
func add(op token.Token, lhs, rhs any) (any, error) {
	switch l := lhs.(type) {
	case float64:
		if r, ok := rhs.(float64); ok {
			return l + r, nil
		}
	case string:
		if r, ok := rhs.(string); ok {
			return l + r, nil
		}
	}

	return nil, operandError(op, fmt.Sprintf(
		"Operands of '+' must be two numbers or two strings, got %s and %s.",
		typeName(lhs), typeName(rhs)))
}

func arithmetic(op token.Token, lhs, rhs any) (any, error) {
	l, lok := lhs.(float64)
	r, rok := rhs.(float64)
	if !lok || !rok {
		return nil, operandError(op, fmt.Sprintf(
			"Operands of '%s' must be numbers, got %s and %s.",
			op.Lexeme, typeName(lhs), typeName(rhs)))
	}

	switch op.Type {
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		// IEEE semantics: x/0 is ±Inf and 0/0 is NaN.
		return l / r, nil
	case token.LESS:
		return l < r, nil
	case token.LESS_EQUAL:
		return l <= r, nil
	case token.GREATER:
		return l > r, nil
	case token.GREATER_EQUAL:
		return l >= r, nil
	}

	panic("Unreachable.")
}

// and/or yield one of their operands, not a coerced boolean.
func (i *Interpreter) evalLogical(expr *ast.Logical) (any, error) {
	lhs, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.OR:
		if isTruthy(lhs) {
			return lhs, nil
		}
	case token.AND:
		if !isTruthy(lhs) {
			return lhs, nil
		}
	default:
		panic(fmt.Sprintf("Unreachable: unexpected logical operator: %v", expr.Operator))
	}

	return i.evaluate(expr.Right)
}

func (i *Interpreter) evalCall(expr *ast.Call) (any, error) {
	callee, err := i.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{expr.Paren,
			"Can only call functions, got " + typeName(callee) + ".", ErrNotCallable}
	}

	args := make([]any, 0, len(expr.Args))
	for _, arg := range expr.Args {
		val, err := i.evaluate(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}

	if len(args) != fn.Arity() {
		return nil, &RuntimeError{expr.Paren,
			fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
			ErrArity}
	}

	if len(i.frames) >= i.maxDepth {
		return nil, &RuntimeError{expr.Paren, "Stack overflow.", ErrStackOverflow}
	}

	i.frames.Push(fn)
	defer i.frames.Pop()

	result, err := fn.Call(i, args)
	if err != nil {
		var rerr *RuntimeError
		if !errors.As(err, &rerr) {
			err = &RuntimeError{expr.Paren, fmt.Sprintf("%s: %v", fn, err), err}
		}
		return nil, err
	}

	return result, nil
}

func operandError(op token.Token, msg string) error {
	return &RuntimeError{op, msg, ErrOperandType}
}
