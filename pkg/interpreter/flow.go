package interpreter

import "glox/pkg/token"

type flowKind byte

const (
	flowNormal flowKind = iota
	flowBreak
	flowReturn
)

// flow is what a statement hands back to the statement sequence that ran
// it. break and return are not errors: a sequence stops at the first
// non-normal flow and passes it up until a loop (break) or a call
// (return) consumes it.
type flow struct {
	kind    flowKind
	keyword token.Token
	value   any
}

var normal = flow{}

func (f flow) escaped() error {
	switch f.kind {
	case flowBreak:
		return &RuntimeError{f.keyword, "Can't use 'break' outside of a loop.", ErrMisplacedSignal}
	case flowReturn:
		return &RuntimeError{f.keyword, "Can't return from top-level code.", ErrMisplacedSignal}
	}

	return nil
}
