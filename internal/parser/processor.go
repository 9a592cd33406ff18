package parser

import (
	"github.com/slitherlang/slither/internal/diagnostics"
	"github.com/slitherlang/slither/internal/pipeline"
)

// lexerErrors is implemented by token streams that accumulate diagnostics
// while being drained.
type lexerErrors interface {
	Errors() []*diagnostics.DiagnosticError
}

// ParserProcessor is the pipeline stage that turns the token stream into an
// AST and collects both parser and lexer diagnostics.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		return ctx
	}
	p := New(ctx.TokenStream)
	ctx.AstRoot = p.ParseProgram()
	if le, ok := ctx.TokenStream.(lexerErrors); ok {
		ctx.Errors = append(ctx.Errors, le.Errors()...)
	}
	ctx.Errors = append(ctx.Errors, p.Errors()...)
	return ctx
}
