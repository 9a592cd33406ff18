package parser

import (
	"github.com/slitherlang/slither/internal/ast"
	"github.com/slitherlang/slither/internal/diagnostics"
	"github.com/slitherlang/slither/internal/pipeline"
	"github.com/slitherlang/slither/internal/token"
)

// Parser holds the state of our parser.
type Parser struct {
	stream    pipeline.TokenStream
	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	errors []*diagnostics.DiagnosticError
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Precedence constants
const (
	LOWEST      = iota
	ASBIND      // expr as name
	TERNARY     // x if cond else y
	LOGIC_OR    // or
	LOGIC_AND   // and
	LOGIC_NOT   // not x
	COMPARISON  // == != < <= > >=
	BITWISE_OR  // |
	BITWISE_XOR // ^
	BITWISE_AND // &
	SHIFT       // << >>
	SUM         // + -
	PRODUCT     // * / // %
	PREFIX      // -x +x ~x
	POWER       // ** (right-associative)
	CALL        // f(x) a.b a[i]
)

var precedences = map[token.TokenType]int{
	token.AS:        ASBIND,
	token.IF:        TERNARY,
	token.OR:        LOGIC_OR,
	token.AND:       LOGIC_AND,
	token.EQ:        COMPARISON,
	token.NOT_EQ:    COMPARISON,
	token.LT:        COMPARISON,
	token.GT:        COMPARISON,
	token.LTE:       COMPARISON,
	token.GTE:       COMPARISON,
	token.PIPE:      BITWISE_OR,
	token.CARET:     BITWISE_XOR,
	token.AMPERSAND: BITWISE_AND,
	token.LSHIFT:    SHIFT,
	token.RSHIFT:    SHIFT,
	token.PLUS:      SUM,
	token.MINUS:     SUM,
	token.ASTERISK:  PRODUCT,
	token.SLASH:     PRODUCT,
	token.FDIV:      PRODUCT,
	token.PERCENT:   PRODUCT,
	token.POWER:     POWER,
	token.LPAREN:    CALL,
	token.DOT:       CALL,
	token.LBRACKET:  CALL,
}

func New(stream pipeline.TokenStream) *Parser {
	p := &Parser{stream: stream}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NONE, p.parseNoneLiteral)
	p.registerPrefix(token.MINUS, p.parseUnaryExpression)
	p.registerPrefix(token.PLUS, p.parseUnaryExpression)
	p.registerPrefix(token.TILDE, p.parseUnaryExpression)
	p.registerPrefix(token.NOT, p.parseNotExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedOrTuple)
	p.registerPrefix(token.LBRACKET, p.parseListLiteral)
	p.registerPrefix(token.LAMBDA, p.parseLambda)
	p.registerPrefix(token.YIELD, p.parseYield)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, tt := range []token.TokenType{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.FDIV,
		token.PERCENT, token.POWER, token.AMPERSAND, token.PIPE, token.CARET,
		token.LSHIFT, token.RSHIFT, token.EQ, token.NOT_EQ, token.LT,
		token.GT, token.LTE, token.GTE, token.AND, token.OR,
	} {
		p.registerInfix(tt, p.parseBinaryExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.DOT, p.parseAttributeExpression)
	p.registerInfix(token.LBRACKET, p.parseSubscriptExpression)
	p.registerInfix(token.IF, p.parseTernaryExpression)
	p.registerInfix(token.AS, p.parseAsExpression)

	// Read two tokens so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// Errors returns the diagnostics recorded while parsing.
func (p *Parser) Errors() []*diagnostics.DiagnosticError {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP005,
		p.peekToken, string(t), string(p.peekToken.Type)))
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP004,
		tok, tok.Lexeme))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// skipToNewline advances to (and past) the next NEWLINE for error recovery.
func (p *Parser) skipToNewline() {
	for !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
	if p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// ParseProgram is the entry point. It consumes the whole token stream.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMI) {
			p.nextToken()
			continue
		}
		// Stray dedents can appear after recovery; skip them.
		if p.curTokenIs(token.INDENT) || p.curTokenIs(token.DEDENT) {
			p.nextToken()
			continue
		}
		program.Statements = append(program.Statements, p.parseStatement()...)
	}
	return program
}
