package parser

import (
	"fmt"

	"github.com/sillylang/silly/internal/compiler/token"
)

// SyntaxError is the single error kind the parser produces: a required
// token or structure was absent at the reported position. Every SyntaxError
// is recoverable at the top level by skipping one token and retrying.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: Syntax Error: %s", e.Line, e.Column, e.Msg)
}

func (p *Parser) syntaxError(tok token.Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Msg:    fmt.Sprintf(format, args...),
		Line:   tok.Line,
		Column: tok.Column,
	}
}
