// Package report is the diagnostic sink shared by the parser, the
// interpreter and the driver.
package report

import (
	"fmt"
	"io"
	"log"

	"glox/pkg/token"
)

type Reporter interface {
	ParseError(tok token.Token, message string)
	RuntimeError(tok token.Token, message string)
}

// Console writes diagnostics to a log.Logger and remembers whether any
// static or runtime error was seen.
type Console struct {
	logger *log.Logger

	HadError        bool
	HadRuntimeError bool
}

func NewConsole(w io.Writer) *Console {
	return &Console{logger: log.New(w, "", 0)}
}

// Error reports a static error that has no token, such as a scanner error.
func (c *Console) Error(line int, where, message string) {
	c.HadError = true
	c.logger.Printf("[line %d] Error%s: %s", line, where, message)
}

// Errors reports errors that already carry their own formatting.
func (c *Console) Errors(errs []error) {
	for _, err := range errs {
		c.HadError = true
		c.logger.Print(err)
	}
}

func (c *Console) ParseError(tok token.Token, message string) {
	c.Error(tok.Line, Where(tok), message)
}

func (c *Console) RuntimeError(tok token.Token, message string) {
	c.HadRuntimeError = true
	c.logger.Printf("%s\n[line %d]", message, tok.Line)
}

// Reset clears the static error flag so a REPL can continue after a bad line.
func (c *Console) Reset() {
	c.HadError = false
}

// Where describes the location of tok for an error message.
func Where(tok token.Token) string {
	if tok.Type == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}
