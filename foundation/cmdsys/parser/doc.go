// Package parser splits a console line into a command alias and its argument
// tokens.
//
// Package: parser
// Title: Console Line Tokenizer
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial TCOL lexer and parser
// - 2026-10-19 v0.2.0: Reduced to alias/argument tokenization with casts
//
// Syntax:
//
//	alias arg arg ...
//
// An argument is a bare word, a "double" or 'single' quoted string, or either
// of those prefixed by an explicit cast:
//
//	add 1 2
//	echo "hello world"
//	echo (int)42
//	greet (*string)null
//
// Inside quotes the escapes \" \' \\ \n and \t are recognized. Words end at
// whitespace only, so quotes and parentheses inside a word are literal.
package parser
