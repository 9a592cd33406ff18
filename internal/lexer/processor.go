package lexer

import (
	"github.com/slitherlang/slither/internal/diagnostics"
	"github.com/slitherlang/slither/internal/pipeline"
	"github.com/slitherlang/slither/internal/token"
)

const lookaheadBufferSize = 10

type bufferedLexer struct {
	l      *Lexer
	buffer []token.Token
	pos    int
}

func NewTokenStream(l *Lexer) pipeline.TokenStream {
	return &bufferedLexer{l: l}
}

func (bl *bufferedLexer) Next() token.Token {
	if bl.pos < len(bl.buffer) {
		tok := bl.buffer[bl.pos]
		bl.pos++
		return tok
	}
	return bl.l.NextToken()
}

func (bl *bufferedLexer) Peek(n int) []token.Token {
	// Ensure buffer has enough tokens for the requested lookahead
	for len(bl.buffer)-bl.pos < n {
		nextTok := bl.l.NextToken()
		bl.buffer = append(bl.buffer, nextTok)
		if nextTok.Type == token.EOF {
			break
		}
	}

	// Trim buffer if it's too large
	if bl.pos > lookaheadBufferSize {
		bl.buffer = bl.buffer[bl.pos:]
		bl.pos = 0
	}

	end := bl.pos + n
	if end > len(bl.buffer) {
		end = len(bl.buffer)
	}
	return bl.buffer[bl.pos:end]
}

// Errors exposes the underlying lexer's diagnostics once the stream has
// been drained.
func (bl *bufferedLexer) Errors() []*diagnostics.DiagnosticError {
	return bl.l.Errors()
}

var _ pipeline.TokenStream = (*bufferedLexer)(nil)

// LexerProcessor is the pipeline stage that attaches a buffered token stream
// to the context. It records no diagnostics itself; the parser stage
// collects the lexer's diagnostics once parsing has drained the stream.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	ctx.TokenStream = &bufferedLexer{l: l}
	return ctx
}
