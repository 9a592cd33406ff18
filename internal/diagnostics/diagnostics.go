package diagnostics

import (
	"fmt"

	"github.com/slitherlang/slither/internal/token"
)

// Phase represents the processing phase where an error occurred
type Phase string

const (
	PhaseLexer  Phase = "lexer"
	PhaseParser Phase = "parser"
)

type ErrorCode string

const (
	// Lexer Errors
	ErrL001 ErrorCode = "L001" // Invalid character
	ErrL002 ErrorCode = "L002" // Unterminated string
	ErrL003 ErrorCode = "L003" // Inconsistent indentation

	// Parser Errors
	ErrP001 ErrorCode = "P001" // Unexpected token
	ErrP002 ErrorCode = "P002" // Invalid assignment target
	ErrP003 ErrorCode = "P003" // Could not parse number literal
	ErrP004 ErrorCode = "P004" // No prefix parse function found
	ErrP005 ErrorCode = "P005" // Expected token
	ErrP006 ErrorCode = "P006" // Invalid import syntax
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "invalid character: '%s'",
	ErrL002: "unterminated string literal",
	ErrL003: "inconsistent indentation",
	ErrP001: "unexpected token: '%s'",
	ErrP002: "invalid assignment target",
	ErrP003: "could not parse '%s' as a number",
	ErrP004: "cannot parse expression starting with '%s'",
	ErrP005: "expected next token to be '%s', but got '%s' instead",
	ErrP006: "%s",
}

// DiagnosticError is a positioned error produced by the lexer or parser.
type DiagnosticError struct {
	Phase   Phase
	Code    ErrorCode
	Message string
	Line    int
	Column  int
}

func (e *DiagnosticError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s:%s] %d:%d: %s", e.Phase, e.Code, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Phase, e.Code, e.Message)
}

// New creates a diagnostic from a code and its template arguments.
func New(phase Phase, code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	tmpl, ok := errorTemplates[code]
	if !ok {
		tmpl = "unknown error"
	}
	return &DiagnosticError{
		Phase:   phase,
		Code:    code,
		Message: fmt.Sprintf(tmpl, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}
