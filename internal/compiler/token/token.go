package token

type TokenType string

const (
	// Single character tokens
	TokenLParen    TokenType = "LPAREN"    // (
	TokenRParen    TokenType = "RPAREN"    // )
	TokenComma     TokenType = "COMMA"     // ,
	TokenSemicolon TokenType = "SEMICOLON" // ;
	TokenLess      TokenType = "LESS"      // <
	TokenPlus      TokenType = "PLUS"      // +
	TokenMinus     TokenType = "MINUS"     // -
	TokenAsterisk  TokenType = "ASTERISK"  // *

	// Keywords
	TokenDef    TokenType = "DEF"    // def
	TokenExtern TokenType = "EXTERN" // extern

	// Literals & Identifiers
	TokenNumber TokenType = "NUMBER" // numeric literal, e.g. 1.5
	TokenIdent  TokenType = "IDENT"  // Identifier (e.g. variable or function name)

	// Special
	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL"
)

// Token carries its own payload: identifier text and the raw digits of a
// number literal both live in Literal, so nothing is read back from the
// lexer after NextToken returns.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}
