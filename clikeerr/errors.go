/*
File    : C-Like/clikeerr/errors.go
*/

// Package clikeerr implements the CLIKE diagnostic taxonomy: every
// pipeline stage reports failures as a single *Error value carrying a
// Kind, a message, and the source Position of the offending
// construct, shared by the lexer, parser, analyzer, and interpreter.
package clikeerr

import (
	"fmt"

	"github.com/carb0ned0/C-Like/token"
)

// Kind is a taxonomy entry: the closed list of diagnostics below,
// grouped by pipeline stage.
type Kind string

const (
	LexUnexpectedChar     Kind = "LEX_UNEXPECTED_CHAR"
	LexBadChar            Kind = "LEX_BAD_CHAR"
	LexUnterminatedString Kind = "LEX_UNTERMINATED_STRING"

	ParseExpected           Kind = "PARSE_EXPECTED"
	ParseIncludeDepth       Kind = "PARSE_INCLUDE_DEPTH"
	ParseIncludeIO          Kind = "PARSE_INCLUDE_IO"
	ParseBadIncludePosition Kind = "PARSE_BAD_INCLUDE_POSITION"

	SemIDNotFound         Kind = "ID_NOT_FOUND"
	SemDuplicateID        Kind = "DUPLICATE_ID"
	SemArgCountMismatch   Kind = "ARG_COUNT_MISMATCH"
	SemTypeNarrowing      Kind = "TYPE_NARROWING"
	SemNotAnArray         Kind = "NOT_AN_ARRAY"
	SemMissingMain        Kind = "MISSING_MAIN"

	RunIndexOutOfBounds       Kind = "INDEX_OUT_OF_BOUNDS"
	RunDivByZero              Kind = "DIV_BY_ZERO"
	RunTypeError              Kind = "TYPE_ERROR"
	RunUndefinedFunction      Kind = "RUNTIME_UNDEFINED_FUNCTION"
	RunUndefined              Kind = "RUNTIME_UNDEFINED"
	RunStrayReturn            Kind = "RUNTIME_STRAY_RETURN"
)

// Error is the single diagnostic type produced anywhere in the pipeline.
// It satisfies the standard error interface so stage functions can
// return it through an ordinary (T, error) signature.
type Error struct {
	Kind    Kind
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Pos, e.Kind, e.Message)
}

// New builds an Error of the given Kind at pos with a formatted message.
func New(kind Kind, pos token.Position, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}
