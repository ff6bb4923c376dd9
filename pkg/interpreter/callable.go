package interpreter

import (
	"fmt"
	"time"
)

type Callable interface {
	Call(interpreter *Interpreter, arguments []any) (any, error)
	Arity() int
	fmt.Stringer
}

// Natives are the built-in functions a host can install as globals.
var Natives = map[string]Callable{
	"clock": Clock{},
}

// Clock returns the wall clock time in seconds.
type Clock struct{}

func (Clock) Call(_ *Interpreter, _ []any) (any, error) {
	return float64(time.Now().UnixNano()) / 1e9, nil
}

func (Clock) Arity() int {
	return 0
}

func (Clock) String() string {
	return "<native fn>"
}
