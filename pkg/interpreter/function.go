package interpreter

import (
	"glox/pkg/ast"
)

// Function is a user-defined function bundled with the scope it was
// declared in.
type Function struct {
	decl    *ast.FunDecl
	closure *Environment
}

// Calls run in a fresh scope whose parent is the closure, never the
// caller's scope. The body shares that scope with the parameters.
func (f *Function) Call(interpreter *Interpreter, arguments []any) (any, error) {
	localEnv := NewEnvironment(f.closure)

	for i, param := range f.decl.Params {
		localEnv.Define(param.Lexeme, arguments[i])
	}

	result, err := interpreter.execBlock(f.decl.Body, localEnv)
	if err != nil {
		return nil, err
	}

	switch result.kind {
	case flowReturn:
		return result.value, nil
	case flowBreak:
		return nil, result.escaped()
	}

	return nil, nil
}

func (f *Function) Arity() int {
	return len(f.decl.Params)
}

func (f *Function) String() string {
	return "<fn " + f.decl.Name.Lexeme + ">"
}
