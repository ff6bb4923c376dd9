package parser

import (
	"strings"
	"testing"

	"glox/pkg/ast"
	"glox/pkg/scanner"
	"glox/pkg/token"
)

// ----------------------------------------------------------------------------
// Test helpers

type recorder struct {
	errs []string
}

func (r *recorder) ParseError(tok token.Token, msg string) {
	r.errs = append(r.errs, ParseError{tok, msg}.Error())
}

func (r *recorder) RuntimeError(tok token.Token, msg string) {
	r.errs = append(r.errs, "runtime: "+msg)
}

func parseWithErrors(t *testing.T, src string) ([]ast.Stmt, []string) {
	t.Helper()
	toks, scanErrs := scanner.New(src).Scan()
	if len(scanErrs) != 0 {
		t.Fatalf("scan errors: %v", scanErrs)
	}
	rec := &recorder{}
	stmts, ok := Parse(toks, rec)
	if ok != (len(rec.errs) == 0) {
		t.Fatalf("Parse ok = %v but recorded %v", ok, rec.errs)
	}
	return stmts, rec.errs
}

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, errs := parseWithErrors(t, src)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	return stmts
}

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	stmts := parse(t, src+";")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	stmt, ok := stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ExprStmt", stmts[0])
	}
	return stmt.Expression
}

// ----------------------------------------------------------------------------
// Expressions

func TestParseExpressionPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"-!x", "(- (! x))"},
		{"1 < 2 == true", "(== (< 1 2) true)"},
		{"a or b and c", "(or a (and b c))"},
		{"a ? b : c ? d : e", "(?: a b (?: c d e))"},
		{"a ? b ? c : d : e", "(?: a (?: b c d) e)"},
		{"a, b, c", "(, (, a b) c)"},
		{"x ? 1 : 2, 3", "(, (?: x 1 2) 3)"},
		{"a = b = 1", "(assign a (assign b 1))"},
		{"a = 1, 2", "(assign a (, 1 2))"},
		{"f(1, 2)(3)", "(call (call f 1 2) 3)"},
		{"f(a, b ? c : d)", "(call f a (?: b c d))"},
		{"f((a, b))", "(call f (group (, a b)))"},
		{"f()", "(call f)"},
		{`"s" + 1.5`, "(+ s 1.5)"},
		{"nil == false", "(== nil false)"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := parseExpr(t, tt.src).String(); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseNodeTypes(t *testing.T) {
	if _, ok := parseExpr(t, "a and b").(*ast.Logical); !ok {
		t.Errorf("and should parse as *ast.Logical")
	}
	if _, ok := parseExpr(t, "a, b").(*ast.Binary); !ok {
		t.Errorf("comma should parse as *ast.Binary")
	}

	call, ok := parseExpr(t, "f(\n1\n)").(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call")
	}
	if call.Paren.Type != token.RIGHT_PAREN || call.Paren.Line != 3 {
		t.Errorf("call paren = %v on line %d, want ')' on line 3", call.Paren, call.Paren.Line)
	}
}

// ----------------------------------------------------------------------------
// Statements

func TestParseStatements(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"var a;", "var a;"},
		{"var a = 1;", "var a = 1;"},
		{"print a;", "print a;"},
		{"print (a);", "print (group a);"},
		{"{ var a = 1; print a; }", "{ var a = 1; print a; }"},
		{"if (a) print 1; else print 2;", "if a print 1; else print 2;"},
		{"while (a) break;", "while a break;"},
		{"fun f(a, b) { return a + b; }", "fun f(a, b) { return (+ a b); }"},
		{"fun f() { return; }", "fun f() { return; }"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			stmts := parse(t, tt.src)
			if len(stmts) != 1 {
				t.Fatalf("got %d statements, want 1", len(stmts))
			}
			if got := stmts[0].String(); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseForDesugaring(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{
			"for (var i = 0; i < 3; i = i + 1) print i;",
			"{ var i = 0; while (< i 3) { print i; (assign i (+ i 1)); } }",
		},
		{"for (;;) break;", "while true break;"},
		{"for (; x;) print 1;", "while x print 1;"},
		{"for (i = 0; ; ) print i;", "{ (assign i 0); while true print i; }"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			stmts := parse(t, tt.src)
			if len(stmts) != 1 {
				t.Fatalf("got %d statements, want 1", len(stmts))
			}
			if got := stmts[0].String(); got != tt.want {
				t.Fatalf("got  %s\nwant %s", got, tt.want)
			}
		})
	}

	// The desugared loop is a plain while: no for node survives parsing.
	block := parse(t, "for (var i = 0; i < 1; i = i + 1) {}")[0].(*ast.Block)
	if _, ok := block.Stmts[1].(*ast.WhileStmt); !ok {
		t.Fatalf("got %T, want *ast.WhileStmt", block.Stmts[1])
	}
}

// ----------------------------------------------------------------------------
// Errors

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantErr   string
		wantStmts []string
	}{
		{
			name:      "invalid assignment target keeps statement",
			src:       "1 = 2; print 3;",
			wantErr:   "[line 1] Error at '=': Invalid assignment target.",
			wantStmts: []string{"1;", "print 3;"},
		},
		{
			name:      "grouped target",
			src:       "(a) = 2;",
			wantErr:   "[line 1] Error at '=': Invalid assignment target.",
			wantStmts: []string{"(group a);"},
		},
		{
			name:      "synchronize after semicolon",
			src:       "var = 1; print 2;",
			wantErr:   "[line 1] Error at '=': Expect variable name.",
			wantStmts: []string{"print 2;"},
		},
		{
			name:      "synchronize at keyword",
			src:       "print 1 2 var a = 2;",
			wantErr:   "[line 1] Error at '2': Expect ';' after value.",
			wantStmts: []string{"var a = 2;"},
		},
		{
			name:      "missing left operand",
			src:       "* 3; print 1;",
			wantErr:   "[line 1] Error at '*': Missing left-hand operand for '*'.",
			wantStmts: []string{"print 1;"},
		},
		{
			name:      "missing ternary colon",
			src:       "a ? b;",
			wantErr:   "[line 1] Error at ';': Expect ':' after then branch of conditional expression.",
			wantStmts: nil,
		},
		{
			name:      "unclosed block",
			src:       "{ print 1;",
			wantErr:   "[line 1] Error at end: Expect '}' after block.",
			wantStmts: nil,
		},
		{
			name:      "error inside block keeps the rest of the block",
			src:       "{ print ; print 1; }",
			wantErr:   "[line 1] Error at ';': Expect expression.",
			wantStmts: []string{"{ print 1; }"},
		},
		{
			name:      "too many arguments is not fatal",
			src:       "f(1, 2, 3, 4, 5, 6, 7, 8, 9);",
			wantErr:   "[line 1] Error at '9': Can't have more than 8 arguments.",
			wantStmts: []string{"(call f 1 2 3 4 5 6 7 8 9);"},
		},
		{
			name:      "too many parameters is not fatal",
			src:       "fun f(a, b, c, d, e, f, g, h, i) {}",
			wantErr:   "[line 1] Error at 'i': Can't have more than 8 parameters.",
			wantStmts: []string{"fun f(a, b, c, d, e, f, g, h, i) { }"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, errs := parseWithErrors(t, tt.src)
			if len(errs) != 1 {
				t.Fatalf("got %d errors %v, want 1", len(errs), errs)
			}
			if errs[0] != tt.wantErr {
				t.Fatalf("error = %q, want %q", errs[0], tt.wantErr)
			}

			var got []string
			for _, s := range stmts {
				got = append(got, s.String())
			}
			if strings.Join(got, "|") != strings.Join(tt.wantStmts, "|") {
				t.Fatalf("statements = %q, want %q", got, tt.wantStmts)
			}
		})
	}
}

func TestParseReportsOneErrorPerStatement(t *testing.T) {
	_, errs := parseWithErrors(t, "var 1 2 3;\nprint );\nprint 1;")
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if !strings.HasPrefix(errs[1], "[line 2]") {
		t.Fatalf("second error should be on line 2: %q", errs[1])
	}
}

func TestParseNestingLimit(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"groupings", strings.Repeat("(", 600) + "1" + strings.Repeat(")", 600) + ";"},
		{"unary operators", strings.Repeat("!", 600) + "true;"},
		{"negations", strings.Repeat("-", 600) + "1;"},
		{"conditionals", strings.Repeat("a ? b : ", 600) + "c;"},
		{"assignments", strings.Repeat("a = ", 600) + "1;"},
		{"call arguments", strings.Repeat("f(", 600) + strings.Repeat(")", 600) + ";"},
		{"blocks", strings.Repeat("{", 600) + "print 1;" + strings.Repeat("}", 600)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := parseWithErrors(t, tt.src+"\nprint 2;")
			if len(errs) == 0 {
				t.Fatalf("expected a nesting error")
			}
			if !strings.HasSuffix(errs[0], "Too much nesting.") {
				t.Fatalf("first error = %q", errs[0])
			}
		})
	}
}

func TestParseModerateNesting(t *testing.T) {
	src := strings.Repeat("(", 100) + strings.Repeat("-", 100) + "1" + strings.Repeat(")", 100) + ";"
	if got := parse(t, src); len(got) != 1 {
		t.Fatalf("got %d statements, want 1", len(got))
	}

	// Sibling expressions do not add up.
	stmts := parse(t, strings.Repeat("print (1);", 1000))
	if len(stmts) != 1000 {
		t.Fatalf("got %d statements, want 1000", len(stmts))
	}
}

func TestParseWithoutReporter(t *testing.T) {
	toks, _ := scanner.New("var ;").Scan()
	p := New(token.NewStream(toks), nil)
	if stmts := p.Parse(); len(stmts) != 0 {
		t.Fatalf("got %v, want no statements", stmts)
	}
	if !p.HadError {
		t.Fatalf("HadError should be set")
	}
}
