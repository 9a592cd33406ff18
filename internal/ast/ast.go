package ast

import (
	"github.com/slitherlang/slither/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	out := ""
	for _, s := range p.Statements {
		out += s.String() + "\n"
	}
	return out
}

// Block is a suite of statements sharing one indentation level.
type Block struct {
	Token      token.Token
	Statements []Statement
}

func (b *Block) statementNode()        {}
func (b *Block) TokenLiteral() string  { return b.Token.Lexeme }
func (b *Block) GetToken() token.Token { return b.Token }
func (b *Block) String() string {
	out := ""
	for i, s := range b.Statements {
		if i > 0 {
			out += "; "
		}
		out += s.String()
	}
	return out
}

// Parameter is a positional-only function parameter.
type Parameter struct {
	Token token.Token
	Name  string
}

func (p *Parameter) String() string { return p.Name }
