package ast

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/slitherlang/slither/internal/token"
)

// Identifier is a bare name reference.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) String() string        { return i.Value }

// IntegerLiteral carries an arbitrary-precision integer constant.
type IntegerLiteral struct {
	Token token.Token
	Value *big.Int
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }
func (il *IntegerLiteral) String() string        { return il.Value.String() }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()       {}
func (fl *FloatLiteral) TokenLiteral() string  { return fl.Token.Lexeme }
func (fl *FloatLiteral) GetToken() token.Token { return fl.Token }
func (fl *FloatLiteral) String() string        { return strconv.FormatFloat(fl.Value, 'g', -1, 64) }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }
func (sl *StringLiteral) String() string        { return strconv.Quote(sl.Value) }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()       {}
func (bl *BooleanLiteral) TokenLiteral() string  { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token { return bl.Token }
func (bl *BooleanLiteral) String() string {
	if bl.Value {
		return "True"
	}
	return "False"
}

type NoneLiteral struct {
	Token token.Token
}

func (nl *NoneLiteral) expressionNode()       {}
func (nl *NoneLiteral) TokenLiteral() string  { return nl.Token.Lexeme }
func (nl *NoneLiteral) GetToken() token.Token { return nl.Token }
func (nl *NoneLiteral) String() string        { return "None" }

// As evaluates Value and binds the result to Binding in the current scope.
type As struct {
	Token   token.Token
	Value   Expression
	Binding Expression
}

func (a *As) expressionNode()       {}
func (a *As) TokenLiteral() string  { return a.Token.Lexeme }
func (a *As) GetToken() token.Token { return a.Token }
func (a *As) String() string        { return a.Value.String() + " as " + a.Binding.String() }

// UnaryOp applies a prefix operator: not, -, +, ~.
type UnaryOp struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (u *UnaryOp) expressionNode()       {}
func (u *UnaryOp) TokenLiteral() string  { return u.Token.Lexeme }
func (u *UnaryOp) GetToken() token.Token { return u.Token }
func (u *UnaryOp) String() string {
	if u.Operator == "not" {
		return "(not " + u.Operand.String() + ")"
	}
	return "(" + u.Operator + u.Operand.String() + ")"
}

// BinOp covers arithmetic, bitwise, boolean and comparison operators.
type BinOp struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinOp) expressionNode()       {}
func (b *BinOp) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BinOp) GetToken() token.Token { return b.Token }
func (b *BinOp) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// Call invokes a callee with positional arguments.
type Call struct {
	Token  token.Token
	Callee Expression
	Args   []Expression
}

func (c *Call) expressionNode()       {}
func (c *Call) TokenLiteral() string  { return c.Token.Lexeme }
func (c *Call) GetToken() token.Token { return c.Token }
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// Attribute accesses Target.Name.
type Attribute struct {
	Token  token.Token
	Target Expression
	Name   string
}

func (a *Attribute) expressionNode()       {}
func (a *Attribute) TokenLiteral() string  { return a.Token.Lexeme }
func (a *Attribute) GetToken() token.Token { return a.Token }
func (a *Attribute) String() string        { return a.Target.String() + "." + a.Name }

// Subscript accesses Container[Index].
type Subscript struct {
	Token     token.Token
	Container Expression
	Index     Expression
}

func (s *Subscript) expressionNode()       {}
func (s *Subscript) TokenLiteral() string  { return s.Token.Lexeme }
func (s *Subscript) GetToken() token.Token { return s.Token }
func (s *Subscript) String() string        { return s.Container.String() + "[" + s.Index.String() + "]" }

// SliceDef builds a slice value from start/stop/stride, each optional.
type SliceDef struct {
	Token  token.Token
	Start  Expression // may be nil
	Stop   Expression // may be nil
	Stride Expression // may be nil
}

func (s *SliceDef) expressionNode()       {}
func (s *SliceDef) TokenLiteral() string  { return s.Token.Lexeme }
func (s *SliceDef) GetToken() token.Token { return s.Token }
func (s *SliceDef) String() string {
	part := func(e Expression) string {
		if e == nil {
			return ""
		}
		return e.String()
	}
	return part(s.Start) + ":" + part(s.Stop) + ":" + part(s.Stride)
}

// ListDef is a mutable list display.
type ListDef struct {
	Token    token.Token
	Elements []Expression
}

func (l *ListDef) expressionNode()       {}
func (l *ListDef) TokenLiteral() string  { return l.Token.Lexeme }
func (l *ListDef) GetToken() token.Token { return l.Token }
func (l *ListDef) String() string {
	elems := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// TupleDef is an immutable tuple display.
type TupleDef struct {
	Token    token.Token
	Elements []Expression
}

func (t *TupleDef) expressionNode()       {}
func (t *TupleDef) TokenLiteral() string  { return t.Token.Lexeme }
func (t *TupleDef) GetToken() token.Token { return t.Token }
func (t *TupleDef) String() string {
	elems := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		elems[i] = e.String()
	}
	if len(elems) == 1 {
		return "(" + elems[0] + ",)"
	}
	return "(" + strings.Join(elems, ", ") + ")"
}

// TernOp is the conditional expression `Then if Condition else Else`.
type TernOp struct {
	Token     token.Token
	Condition Expression
	Then      Expression
	Else      Expression
}

func (t *TernOp) expressionNode()       {}
func (t *TernOp) TokenLiteral() string  { return t.Token.Lexeme }
func (t *TernOp) GetToken() token.Token { return t.Token }
func (t *TernOp) String() string {
	return "(" + t.Then.String() + " if " + t.Condition.String() + " else " + t.Else.String() + ")"
}

// Lambda is parsed but not implemented by the evaluator.
type Lambda struct {
	Token  token.Token
	Params []*Parameter
	Body   Expression
}

func (l *Lambda) expressionNode()       {}
func (l *Lambda) TokenLiteral() string  { return l.Token.Lexeme }
func (l *Lambda) GetToken() token.Token { return l.Token }
func (l *Lambda) String() string        { return "lambda: ..." }

// Yield is parsed but not implemented by the evaluator.
type Yield struct {
	Token token.Token
	Value Expression // may be nil
}

func (y *Yield) expressionNode()       {}
func (y *Yield) TokenLiteral() string  { return y.Token.Lexeme }
func (y *Yield) GetToken() token.Token { return y.Token }
func (y *Yield) String() string        { return "yield" }

// Glob is the `*` inside a from-import. Outside an import it is an error.
type Glob struct {
	Token token.Token
}

func (g *Glob) expressionNode()       {}
func (g *Glob) TokenLiteral() string  { return g.Token.Lexeme }
func (g *Glob) GetToken() token.Token { return g.Token }
func (g *Glob) String() string        { return "*" }

// RelativeImport is a module reference with a relative level, e.g. the
// `..mod` in `from ..mod import *`. Level 0 is an absolute reference.
type RelativeImport struct {
	Token token.Token
	Level int
	Path  *Identifier
}

func (r *RelativeImport) expressionNode()       {}
func (r *RelativeImport) TokenLiteral() string  { return r.Token.Lexeme }
func (r *RelativeImport) GetToken() token.Token { return r.Token }
func (r *RelativeImport) String() string {
	return strings.Repeat(".", r.Level) + r.Path.Value
}
