package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/sillylang/silly/internal/compiler/token"
)

// --- Interfaces ---

type Node interface {
	TokenLiteral() string
	String() string
}

// Expr is the closed set of expression nodes. The unexported marker method
// keeps the variant set fixed to this package, so consumers switch over the
// concrete types exhaustively instead of casting through opaque pointers.
type Expr interface {
	Node
	exprNode()
}

// --- Expressions ---

// NumberLiteral -> a numeric constant like 1.5
type NumberLiteral struct {
	Token token.Token // the NUMBER token
	Value float64
}

func (nl *NumberLiteral) exprNode()            {}
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NumberLiteral) String() string {
	return strconv.FormatFloat(nl.Value, 'g', -1, 64)
}

// VariableRef -> a reference to a variable, like a
type VariableRef struct {
	Token token.Token // the IDENT token
	Name  string
}

func (vr *VariableRef) exprNode()            {}
func (vr *VariableRef) TokenLiteral() string { return vr.Token.Literal }
func (vr *VariableRef) String() string       { return vr.Name }

// BinaryExpr -> lhs <op> rhs
type BinaryExpr struct {
	Token    token.Token // the operator token
	Operator string
	Left     Expr
	Right    Expr
}

func (be *BinaryExpr) exprNode()            {}
func (be *BinaryExpr) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}

// CallExpr -> callee(arg, arg, ...)
type CallExpr struct {
	Token  token.Token // the callee IDENT token
	Callee string
	Args   []Expr
}

func (ce *CallExpr) exprNode()            {}
func (ce *CallExpr) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpr) String() string {
	args := make([]string, 0, len(ce.Args))
	for _, a := range ce.Args {
		args = append(args, a.String())
	}
	return ce.Callee + "(" + strings.Join(args, ", ") + ")"
}

// --- Declarations ---

// Prototype captures a function's name and parameter names (and thereby its
// arity). It is not an expression: it appears only inside a Function or as
// the product of parsing an extern.
type Prototype struct {
	Token  token.Token // the function name IDENT token
	Name   string
	Params []string
}

func (p *Prototype) TokenLiteral() string { return p.Token.Literal }
func (p *Prototype) String() string {
	return p.Name + "(" + strings.Join(p.Params, " ") + ")"
}

// Function is a full definition: a prototype plus a body expression. A bare
// top-level expression is represented as a Function whose prototype is the
// anonymous zero-parameter "__anon_expr".
type Function struct {
	Token token.Token // the 'def' token, or the first body token when synthesized
	Proto *Prototype
	Body  Expr
}

func (f *Function) TokenLiteral() string { return f.Token.Literal }
func (f *Function) String() string {
	var out bytes.Buffer
	out.WriteString("def ")
	out.WriteString(f.Proto.String())
	out.WriteString(" ")
	out.WriteString(f.Body.String())
	return out.String()
}
