package interpreter

import (
	"errors"
	"testing"

	"glox/pkg/token"
)

func ident(name string) token.Token {
	return token.New(token.IDENTIFIER, name, nil, 1)
}

func TestEnvironmentLookupWalksOutward(t *testing.T) {
	globals := NewEnvironment(nil)
	globals.Define("a", 1.0)
	globals.Define("b", "outer")

	inner := NewEnvironment(globals)
	inner.Define("b", "inner")

	if v, err := inner.Get(ident("a")); err != nil || v != 1.0 {
		t.Fatalf("Get(a) = %v, %v", v, err)
	}
	if v, _ := inner.Get(ident("b")); v != "inner" {
		t.Fatalf("inner b = %v, want inner", v)
	}
	if v, _ := globals.Get(ident("b")); v != "outer" {
		t.Fatalf("outer b = %v, want outer", v)
	}
	if inner.Enclosing() != globals {
		t.Fatalf("Enclosing should return the parent scope")
	}
}

func TestEnvironmentAssign(t *testing.T) {
	globals := NewEnvironment(nil)
	globals.Define("a", 1.0)
	inner := NewEnvironment(globals)

	if err := inner.Assign(ident("a"), 2.0); err != nil {
		t.Fatal(err)
	}
	if v, _ := globals.Get(ident("a")); v != 2.0 {
		t.Fatalf("a = %v, want 2", v)
	}

	err := inner.Assign(ident("missing"), 1.0)
	if !errors.Is(err, ErrUndefined) {
		t.Fatalf("got %v, want ErrUndefined", err)
	}
	if _, err := inner.Get(ident("missing")); err == nil {
		t.Fatalf("Assign must not create a binding")
	}
}

func TestEnvironmentRedefine(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", 1.0)
	env.Define("a", nil)

	v, err := env.Get(ident("a"))
	if err != nil || v != nil {
		t.Fatalf("Get(a) = %v, %v; want nil, nil", v, err)
	}
}

func TestUndefinedMessage(t *testing.T) {
	_, err := NewEnvironment(nil).Get(token.New(token.IDENTIFIER, "x", nil, 4))

	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		t.Fatalf("got %T, want *RuntimeError", err)
	}
	if got, want := rerr.Error(), "[line 4] RuntimeError at 'x': Undefined variable 'x'."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
