package interpreter

import (
	"errors"
	"fmt"

	"glox/pkg/token"
)

var (
	ErrUndefined       = errors.New("undefined variable")
	ErrOperandType     = errors.New("invalid operand type")
	ErrNotCallable     = errors.New("value is not callable")
	ErrArity           = errors.New("wrong number of arguments")
	ErrMisplacedSignal = errors.New("break or return outside its boundary")
	ErrStackOverflow   = errors.New("stack overflow")
)

// RuntimeError aborts the top-level statement being executed. Err, when
// set, is one of the sentinel errors above and can be tested with errors.Is.
type RuntimeError struct {
	Token   token.Token
	Message string
	Err     error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] RuntimeError at '%s': %s",
		e.Token.Line, e.Token.Lexeme, e.Message)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
