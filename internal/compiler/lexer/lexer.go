package lexer

import "github.com/sillylang/silly/internal/compiler/token"

type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) ResetPosition() {
	l.position = 0
	l.readPosition = 0
	l.line = 1
	l.column = 0 // readChar increments this to 1, so start at 0
	l.ch = 0
	l.readChar() // Read the first character
}

// readChar advances the lexer's position and updates the current character.
// It handles EOF and tracks line/column numbers correctly.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NULL (EOF)
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0 // readChar increments this to 1 on the next char
	} else if l.ch != 0 {
		l.column++
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	startLine := l.line
	startCol := l.column

	var tok token.Token

	switch l.ch {
	case '#':
		// Line comment: consume through end of line, then lex the next
		// real token. A comment never yields a token itself.
		l.readComment()
		return l.NextToken()
	case '(':
		tok = l.newToken(token.TokenLParen, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case ')':
		tok = l.newToken(token.TokenRParen, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case ',':
		tok = l.newToken(token.TokenComma, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case ';':
		tok = l.newToken(token.TokenSemicolon, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '<':
		tok = l.newToken(token.TokenLess, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '+':
		tok = l.newToken(token.TokenPlus, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '-':
		tok = l.newToken(token.TokenMinus, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '*':
		tok = l.newToken(token.TokenAsterisk, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case 0:
		// EOF. Do NOT call l.readChar() here, so EOF repeats forever.
		return l.newToken(token.TokenEOF, "", startLine, startCol)
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return l.newToken(lookupIdent(ident), ident, startLine, startCol)
		} else if isDigit(l.ch) || l.ch == '.' {
			return l.readNumber(startLine, startCol)
		}
		tok = l.newToken(token.TokenIllegal, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	}
}

// newToken is a helper to create a token.Token struct
func (l *Lexer) newToken(tokenType token.TokenType, literal string, line, col int) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\n' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readComment() {
	for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		l.readChar()
	}
}

// readIdentifier scans [a-zA-Z][a-zA-Z0-9]*. The buffer is unbounded; name
// length limits are a grammar concern and live in the parser.
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber scans digits and '.' greedily. It does not validate the shape
// of the literal: "1.2.3" comes back as a single NUMBER token and is
// rejected by the parser when it converts the text to a float.
func (l *Lexer) readNumber(startLine, startCol int) token.Token {
	start := l.position
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	literal := l.input[start:l.position]
	return l.newToken(token.TokenNumber, literal, startLine, startCol)
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// keywords maps identifier strings to their corresponding token types.
var keywords = map[string]token.TokenType{
	"def":    token.TokenDef,
	"extern": token.TokenExtern,
}

// lookupIdent checks if an identifier is a keyword, returning the keyword's
// token type or token.TokenIdent if it's not a keyword.
func lookupIdent(ident string) token.TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return token.TokenIdent
}
