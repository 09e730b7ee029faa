// File: parser.go
// Title: Console Line Parser
// Description: Turns the lexer's token stream into a command.ParsedCommand,
//              attaching cast prefixes to the argument that follows them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial recursive descent TCOL parser
// - 2026-10-19 v0.2.0: Alias and argument list parsing

package parser

import (
	"fmt"
	"strings"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
	mdwlog "github.com/msto63/cmdsys/foundation/core/log"
)

// DefaultMaxInputLength bounds the accepted line length in bytes
const DefaultMaxInputLength = 4096

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
}

// Parser converts console lines into parsed commands. It holds no per-line
// state and is safe for concurrent use.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "cmdsys-parser"),
		options: opts,
	}
}

// Parse parses one line with default options
func Parse(line string) (command.ParsedCommand, error) {
	return New(Options{}).Parse(line)
}

// Parse splits line into alias and arguments. Raw is set to the trimmed line.
func (p *Parser) Parse(line string) (command.ParsedCommand, error) {
	if len(line) > p.options.MaxInputLength {
		return command.ParsedCommand{}, &SyntaxError{
			Position: p.options.MaxInputLength,
			Message:  fmt.Sprintf("input exceeds maximum length: %d > %d", len(line), p.options.MaxInputLength),
		}
	}

	tokens, err := NewLexer(line).Tokenize()
	if err != nil {
		return command.ParsedCommand{}, err
	}

	head := tokens[0]
	switch head.Type {
	case TokenEOF:
		return command.ParsedCommand{}, &SyntaxError{Position: 0, Message: "empty input"}
	case TokenCast:
		return command.ParsedCommand{}, &SyntaxError{Position: head.Position, Message: "a command name must precede any cast"}
	}

	parsed := command.ParsedCommand{
		Alias: head.Value,
		Args:  make([]command.Argument, 0, len(tokens)-2),
		Raw:   strings.TrimSpace(line),
	}

	var cast *Token
	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Type {
		case TokenCast:
			if cast != nil {
				return command.ParsedCommand{}, &SyntaxError{Position: tok.Position, Message: "an argument can carry only one cast"}
			}
			cast = &tokens[i]
		case TokenWord, TokenString:
			arg := command.Argument{Value: tok.Value}
			if cast != nil {
				arg.Cast = cast.Value
				cast = nil
			}
			parsed.Args = append(parsed.Args, arg)
		case TokenEOF:
			if cast != nil {
				return command.ParsedCommand{}, &SyntaxError{Position: cast.Position, Message: fmt.Sprintf("cast (%s) is not followed by an argument", cast.Value)}
			}
		}
	}

	p.logger.Trace("line parsed", mdwlog.Fields{
		"alias":    parsed.Alias,
		"argCount": len(parsed.Args),
	})
	return parsed, nil
}
