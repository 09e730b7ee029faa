// File: lexer.go
// Title: Console Line Lexer
// Description: Byte oriented lexer producing words, quoted strings and casts
//              with their input offsets.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-19 v0.2.0: Words, quoted strings and cast prefixes only

package parser

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/cmdsys/foundation/core/error"
)

// TokenType represents the type of a lexical token
type TokenType int

// Token types. A word is any run of non-whitespace bytes not starting with
// a quote or an opening parenthesis.
const (
	TokenEOF TokenType = iota
	TokenWord
	TokenString
	TokenCast
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenWord:
		return "WORD"
	case TokenString:
		return "STRING"
	case TokenCast:
		return "CAST"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType
	Value    string // unquoted text, or the type name of a cast
	Position int    // byte offset in the input
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

// SyntaxError reports malformed input
type SyntaxError struct {
	Position int
	Message  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Position, e.Message)
}

// Code returns the foundation error code for syntax errors
func (e *SyntaxError) Code() mdwerror.Code {
	return mdwerror.CodeSyntax
}

// Lexer performs lexical analysis of one console line
type Lexer struct {
	input    string
	position int // current char
	readPos  int // after current char
	ch       byte
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken returns the next token
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()
	pos := l.position
	if l.atEnd() {
		return Token{Type: TokenEOF, Position: len(l.input)}, nil
	}

	switch l.ch {
	case '"', '\'':
		value, err := l.readQuoted(l.ch)
		if err != nil {
			return Token{}, err
		}
		return Token{Type: TokenString, Value: value, Position: pos}, nil
	case '(':
		value, err := l.readCast()
		if err != nil {
			return Token{}, err
		}
		return Token{Type: TokenCast, Value: value, Position: pos}, nil
	default:
		return Token{Type: TokenWord, Value: l.readWord(), Position: pos}, nil
	}
}

// Tokenize returns all tokens up to and including EOF
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) readWord() string {
	start := l.position
	for !l.atEnd() && !isWhitespace(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readQuoted(quote byte) (string, error) {
	start := l.position
	var b strings.Builder

	l.readChar()
	for {
		if l.atEnd() {
			return "", &SyntaxError{Position: start, Message: "unterminated quoted string"}
		}
		switch l.ch {
		case quote:
			l.readChar()
			return b.String(), nil
		case '\\':
			l.readChar()
			if l.atEnd() {
				return "", &SyntaxError{Position: start, Message: "unterminated quoted string"}
			}
			switch l.ch {
			case '"', '\'', '\\':
				b.WriteByte(l.ch)
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte('\\')
				b.WriteByte(l.ch)
			}
		default:
			b.WriteByte(l.ch)
		}
		l.readChar()
	}
}

func (l *Lexer) readCast() (string, error) {
	start := l.position
	end := strings.IndexByte(l.input[start:], ')')
	if end < 0 {
		return "", &SyntaxError{Position: start, Message: "unterminated cast"}
	}

	name := strings.TrimSpace(l.input[start+1 : start+end])
	if name == "" {
		return "", &SyntaxError{Position: start, Message: "empty cast"}
	}

	for l.position <= start+end {
		l.readChar()
	}
	return name, nil
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isWhitespace(l.ch) {
		l.readChar()
	}
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
