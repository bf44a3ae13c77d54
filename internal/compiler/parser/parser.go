package parser

import (
	"strconv"

	"github.com/sillylang/silly/internal/compiler/ast"
	"github.com/sillylang/silly/internal/compiler/lexer"
	"github.com/sillylang/silly/internal/compiler/token"
)

// Capacity limits carried over from the language definition. Exceeding one
// is a normal syntax error, never a truncation.
const (
	MaxNameLen     = 63 // identifier bytes
	MaxCallArgs    = 64 // arguments in a call expression
	MaxProtoParams = 64 // parameters in a prototype
)

// precedences maps binary operator tokens to their binding strength.
// Higher binds tighter. 1 is the lowest valid precedence.
var precedences = map[token.TokenType]int{
	token.TokenLess:     10,
	token.TokenPlus:     20,
	token.TokenMinus:    30,
	token.TokenAsterisk: 40,
}

// tokenPrecedence returns the precedence of a pending binary operator token,
// or -1 if the token is not a registered binary operator. -1 is below every
// caller minimum, so non-operators naturally terminate the climbing loop.
func tokenPrecedence(tok token.Token) int {
	if p, ok := precedences[tok.Type]; ok {
		return p
	}
	return -1
}

// Parser holds the token cursor over one lexer stream. curTok is the token
// every parse function examines; peekTok is the fixed one-token lookahead.
// There is no backtracking beyond this window.
type Parser struct {
	l       *lexer.Lexer
	curTok  token.Token
	peekTok token.Token
}

func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// Read two tokens, so curTok and peekTok are both set
	p.nextToken()
	p.nextToken()
	return p
}

// --- Token Handling ---

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

// CurToken exposes the cursor so a driver can dispatch on the pending
// top-level construct.
func (p *Parser) CurToken() token.Token { return p.curTok }

// Advance consumes exactly one token. The top-level driver calls this after
// a failed parse to guarantee forward progress before retrying.
func (p *Parser) Advance() { p.nextToken() }

// --- Expression Parsing ---

// ParseExpression parses: primary binoprhs.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(0, lhs)
}

// parsePrimary dispatches on the current token:
//
//	primary ::= identifierexpr | numberexpr | parenexpr
func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.curTok.Type {
	case token.TokenIdent:
		return p.parseIdentifierExpr()
	case token.TokenNumber:
		return p.parseNumberExpr()
	case token.TokenLParen:
		return p.parseParenExpr()
	default:
		return nil, p.syntaxError(p.curTok, "unknown token when expecting an expression")
	}
}

// parseNumberExpr builds a NumberLiteral from the current NUMBER token. The
// lexer scans digits and dots greedily without validating shape, so the
// conversion here is where malformed literals like "1.2.3" are rejected.
func (p *Parser) parseNumberExpr() (ast.Expr, error) {
	tok := p.curTok
	val, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, p.syntaxError(tok, "invalid number literal %q", tok.Literal)
	}
	p.nextToken() // consume the number
	return &ast.NumberLiteral{Token: tok, Value: val}, nil
}

// parseParenExpr parses '(' expression ')'. Parentheses only group; they
// produce no node of their own.
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	p.nextToken() // eat (
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if p.curTok.Type != token.TokenRParen {
		return nil, p.syntaxError(p.curTok, "expected ')'")
	}
	p.nextToken() // eat )
	return expr, nil
}

// parseIdentifierExpr parses either a plain variable reference or, when the
// identifier is immediately followed by '(', a call expression:
//
//	identifierexpr ::= identifier | identifier '(' expression* ')'
func (p *Parser) parseIdentifierExpr() (ast.Expr, error) {
	nameTok := p.curTok
	if err := p.checkNameLen(nameTok); err != nil {
		return nil, err
	}
	p.nextToken() // eat identifier

	if p.curTok.Type != token.TokenLParen {
		// Simple variable ref.
		return &ast.VariableRef{Token: nameTok, Name: nameTok.Literal}, nil
	}

	// Call.
	p.nextToken() // eat (

	var args []ast.Expr
	if p.curTok.Type != token.TokenRParen {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			if len(args) == MaxCallArgs {
				return nil, p.syntaxError(nameTok, "call to '%s' exceeds %d arguments", nameTok.Literal, MaxCallArgs)
			}
			args = append(args, arg)

			if p.curTok.Type == token.TokenRParen {
				break
			}
			if p.curTok.Type != token.TokenComma {
				return nil, p.syntaxError(p.curTok, "Expected ')' or ',' in argument list")
			}
			p.nextToken() // eat ,
		}
	}

	p.nextToken() // eat )
	return &ast.CallExpr{Token: nameTok, Callee: nameTok.Literal, Args: args}, nil
}

// parseBinOpRHS is the precedence-climbing loop:
//
//	binoprhs ::= (op primary)*
//
// It folds operator/primary pairs into lhs for as long as the pending
// operator binds at least as tightly as minPrec. When the operator after the
// freshly parsed rhs binds strictly tighter than the one just consumed, the
// rhs is extended first by a recursive call with a raised minimum, so equal
// precedence associates left and rising precedence binds right.
func (p *Parser) parseBinOpRHS(minPrec int, lhs ast.Expr) (ast.Expr, error) {
	for {
		tokPrec := tokenPrecedence(p.curTok)
		if tokPrec < minPrec {
			return lhs, nil
		}

		opTok := p.curTok
		p.nextToken() // eat the operator

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if tokPrec < tokenPrecedence(p.curTok) {
			rhs, err = p.parseBinOpRHS(tokPrec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &ast.BinaryExpr{Token: opTok, Operator: opTok.Literal, Left: lhs, Right: rhs}
	}
}

// --- Top-Level Constructs ---

// ParsePrototype parses: id '(' id* ')'. Parameter names are bare
// identifiers with no separators.
func (p *Parser) ParsePrototype() (*ast.Prototype, error) {
	if p.curTok.Type != token.TokenIdent {
		return nil, p.syntaxError(p.curTok, "Expected function name in prototype")
	}
	nameTok := p.curTok
	if err := p.checkNameLen(nameTok); err != nil {
		return nil, err
	}
	p.nextToken() // eat name

	if p.curTok.Type != token.TokenLParen {
		return nil, p.syntaxError(p.curTok, "Expected '(' in prototype")
	}
	p.nextToken() // eat (

	var params []string
	for p.curTok.Type == token.TokenIdent {
		if err := p.checkNameLen(p.curTok); err != nil {
			return nil, err
		}
		if len(params) == MaxProtoParams {
			return nil, p.syntaxError(nameTok, "prototype for '%s' exceeds %d parameters", nameTok.Literal, MaxProtoParams)
		}
		params = append(params, p.curTok.Literal)
		p.nextToken()
	}

	if p.curTok.Type != token.TokenRParen {
		return nil, p.syntaxError(p.curTok, "Expected ')' in prototype")
	}
	p.nextToken() // eat )

	return &ast.Prototype{Token: nameTok, Name: nameTok.Literal, Params: params}, nil
}

// ParseDefinition parses: 'def' prototype expression.
func (p *Parser) ParseDefinition() (*ast.Function, error) {
	defTok := p.curTok
	p.nextToken() // eat def

	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}

	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Token: defTok, Proto: proto, Body: body}, nil
}

// ParseExtern parses: 'extern' prototype.
func (p *Parser) ParseExtern() (*ast.Prototype, error) {
	p.nextToken() // eat extern
	return p.ParsePrototype()
}

// AnonFuncName is the prototype name synthesized for a bare top-level
// expression.
const AnonFuncName = "__anon_expr"

// ParseTopLevelExpr parses a bare expression and wraps it in an anonymous
// zero-parameter function, so every top-level construct is uniform for
// downstream consumers.
func (p *Parser) ParseTopLevelExpr() (*ast.Function, error) {
	startTok := p.curTok
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	proto := &ast.Prototype{Token: startTok, Name: AnonFuncName}
	return &ast.Function{Token: startTok, Proto: proto, Body: body}, nil
}

func (p *Parser) checkNameLen(tok token.Token) error {
	if len(tok.Literal) > MaxNameLen {
		return p.syntaxError(tok, "identifier exceeds %d bytes", MaxNameLen)
	}
	return nil
}
