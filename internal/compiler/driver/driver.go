// Package driver runs the top-level parse loop: it dispatches on the
// pending token to parse a definition, an extern declaration, or a bare
// expression, and reports the outcome of each attempt. On failure it skips
// exactly one token before the next attempt, so malformed input always makes
// forward progress toward end-of-stream.
package driver

import (
	"github.com/sillylang/silly/internal/compiler/ast"
	"github.com/sillylang/silly/internal/compiler/lexer"
	"github.com/sillylang/silly/internal/compiler/parser"
	"github.com/sillylang/silly/internal/compiler/token"
)

type ResultKind int

const (
	KindDefinition ResultKind = iota
	KindExtern
	KindExpression
)

// Message is the confirmation line for a successfully parsed construct of
// this kind.
func (k ResultKind) Message() string {
	switch k {
	case KindDefinition:
		return "Parsed a function definition."
	case KindExtern:
		return "Parsed an extern"
	default:
		return "Parsed a top-level expr"
	}
}

// Result is the outcome of one top-level parse attempt. Exactly one of
// Node/Err is set.
type Result struct {
	Kind ResultKind
	Node ast.Node
	Err  error
}

// Session drives one parser over one source buffer.
type Session struct {
	p *parser.Parser
}

func NewSession(src string) *Session {
	return &Session{p: parser.NewParser(lexer.NewLexer(src))}
}

// Next parses the next top-level construct. It returns false once the
// stream is exhausted; top-level semicolons are consumed silently.
func (s *Session) Next() (Result, bool) {
	for {
		switch s.p.CurToken().Type {
		case token.TokenEOF:
			return Result{}, false
		case token.TokenSemicolon:
			s.p.Advance() // ignore top-level semicolons
		case token.TokenDef:
			fn, err := s.p.ParseDefinition()
			return s.finish(KindDefinition, fn, err), true
		case token.TokenExtern:
			proto, err := s.p.ParseExtern()
			return s.finish(KindExtern, proto, err), true
		default:
			fn, err := s.p.ParseTopLevelExpr()
			return s.finish(KindExpression, fn, err), true
		}
	}
}

// finish packages a parse outcome, applying the error recovery rule: skip
// one token so the next attempt starts past the offending position. Partial
// nodes built by the failed attempt are unreachable once the error returns,
// so nothing needs explicit teardown.
func (s *Session) finish(kind ResultKind, node ast.Node, err error) Result {
	if err != nil {
		s.p.Advance() // skip token for error recovery
		return Result{Kind: kind, Err: err}
	}
	return Result{Kind: kind, Node: node}
}

// Run drains the session, invoking report for every top-level construct.
func (s *Session) Run(report func(Result)) {
	for {
		res, ok := s.Next()
		if !ok {
			return
		}
		report(res)
	}
}

// Parse runs a whole source buffer and collects the per-construct results.
func Parse(src string) []Result {
	var results []Result
	NewSession(src).Run(func(r Result) {
		results = append(results, r)
	})
	return results
}
