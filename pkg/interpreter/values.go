package interpreter

import (
	"fmt"
	"reflect"

	"glox/pkg/ast"
)

// Stringify renders a value the way print shows it.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return ast.FormatNumber(v)
	case bool, string:
		return fmt.Sprintf("%v", v)
	case fmt.Stringer:
		return v.String()
	default:
		panic(fmt.Sprintf("Unreachable: unexpected value type %T", v))
	}
}

// nil and false are falsey, everything else is truthy.
func isTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// Values of different types are never equal. Callables compare by identity.
func isEqual(lhs, rhs any) bool {
	if !sameType(lhs, rhs) {
		return false
	}

	// A host callable may hold slices or maps; == on it would panic.
	if _, ok := lhs.(Callable); ok && !(isComparable(lhs) && isComparable(rhs)) {
		return false
	}

	return lhs == rhs
}

func isComparable(value any) bool {
	return reflect.ValueOf(value).Comparable()
}

func sameType(lhs, rhs any) bool {
	switch lhs.(type) {
	case string:
		_, ok := rhs.(string)
		return ok
	case float64:
		_, ok := rhs.(float64)
		return ok
	case bool:
		_, ok := rhs.(bool)
		return ok
	case nil:
		return rhs == nil
	case Callable:
		_, ok := rhs.(Callable)
		return ok
	default:
		return false
	}
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "nil"
	case float64:
		return "number"
	case string:
		return "string"
	case bool:
		return "boolean"
	case Callable:
		return "function"
	default:
		return fmt.Sprintf("%T", value)
	}
}
