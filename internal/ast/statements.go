package ast

import (
	"strings"

	"github.com/slitherlang/slither/internal/token"
)

// ExpressionStatement wraps an expression evaluated for its side effects.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }
func (es *ExpressionStatement) String() string        { return es.Expression.String() }

// Assign binds the value of an expression to a name or attribute target.
type Assign struct {
	Token  token.Token // the '=' token
	Target Expression
	Value  Expression
}

func (a *Assign) statementNode()        {}
func (a *Assign) TokenLiteral() string  { return a.Token.Lexeme }
func (a *Assign) GetToken() token.Token { return a.Token }
func (a *Assign) String() string        { return a.Target.String() + " = " + a.Value.String() }

// Def declares a function. Parameters are positional only.
type Def struct {
	Token  token.Token // the 'def' token
	Name   string
	Params []*Parameter
	Body   *Block
}

func (d *Def) statementNode()        {}
func (d *Def) TokenLiteral() string  { return d.Token.Lexeme }
func (d *Def) GetToken() token.Token { return d.Token }
func (d *Def) String() string {
	params := make([]string, len(d.Params))
	for i, p := range d.Params {
		params[i] = p.Name
	}
	return "def " + d.Name + "(" + strings.Join(params, ", ") + "): ..."
}

// ClassDef declares a class with zero or more base class expressions.
type ClassDef struct {
	Token token.Token // the 'class' token
	Name  string
	Bases []Expression
	Body  *Block
}

func (c *ClassDef) statementNode()        {}
func (c *ClassDef) TokenLiteral() string  { return c.Token.Lexeme }
func (c *ClassDef) GetToken() token.Token { return c.Token }
func (c *ClassDef) String() string {
	if len(c.Bases) == 0 {
		return "class " + c.Name + ": ..."
	}
	bases := make([]string, len(c.Bases))
	for i, b := range c.Bases {
		bases[i] = b.String()
	}
	return "class " + c.Name + "(" + strings.Join(bases, ", ") + "): ..."
}

// IfClause is one condition/block arm of an If statement.
type IfClause struct {
	Token     token.Token
	Condition Expression
	Body      *Block
}

// If runs the first clause whose condition is truthy, or Else.
type If struct {
	Token   token.Token // the 'if' token
	Clauses []*IfClause
	Else    *Block // may be nil
}

func (i *If) statementNode()        {}
func (i *If) TokenLiteral() string  { return i.Token.Lexeme }
func (i *If) GetToken() token.Token { return i.Token }
func (i *If) String() string        { return "if " + i.Clauses[0].Condition.String() + ": ..." }

// While loops over Body while Condition is truthy; Else runs when the
// condition turns falsy without a break.
type While struct {
	Token     token.Token
	Condition Expression
	Body      *Block
	Else      *Block // may be nil
}

func (w *While) statementNode()        {}
func (w *While) TokenLiteral() string  { return w.Token.Lexeme }
func (w *While) GetToken() token.Token { return w.Token }
func (w *While) String() string        { return "while " + w.Condition.String() + ": ..." }

// For is parsed but not implemented by the evaluator.
type For struct {
	Token    token.Token
	Target   Expression
	Iterable Expression
	Body     *Block
	Else     *Block // may be nil
}

func (f *For) statementNode()        {}
func (f *For) TokenLiteral() string  { return f.Token.Lexeme }
func (f *For) GetToken() token.Token { return f.Token }
func (f *For) String() string {
	return "for " + f.Target.String() + " in " + f.Iterable.String() + ": ..."
}

// With is parsed but not implemented by the evaluator.
type With struct {
	Token token.Token
	Items []Expression
	Body  *Block
}

func (w *With) statementNode()        {}
func (w *With) TokenLiteral() string  { return w.Token.Lexeme }
func (w *With) GetToken() token.Token { return w.Token }
func (w *With) String() string        { return "with ...: ..." }

// Global is parsed but not implemented by the evaluator.
type Global struct {
	Token token.Token
	Names []string
}

func (g *Global) statementNode()        {}
func (g *Global) TokenLiteral() string  { return g.Token.Lexeme }
func (g *Global) GetToken() token.Token { return g.Token }
func (g *Global) String() string        { return "global " + strings.Join(g.Names, ", ") }

// Nonlocal is parsed but not implemented by the evaluator.
type Nonlocal struct {
	Token token.Token
	Names []string
}

func (n *Nonlocal) statementNode()        {}
func (n *Nonlocal) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Nonlocal) GetToken() token.Token { return n.Token }
func (n *Nonlocal) String() string        { return "nonlocal " + strings.Join(n.Names, ", ") }

// ExceptClause is one handler arm of a Try statement. Class is nil for a
// bare `except:`; Name is empty when no `as` binding was given.
type ExceptClause struct {
	Token token.Token
	Class Expression
	Name  string
	Body  *Block
}

// Try is the protected-block construct with handlers, else and finally.
type Try struct {
	Token   token.Token
	Body    *Block
	Excepts []*ExceptClause
	Else    *Block // may be nil
	Finally *Block // may be nil
}

func (t *Try) statementNode()        {}
func (t *Try) TokenLiteral() string  { return t.Token.Lexeme }
func (t *Try) GetToken() token.Token { return t.Token }
func (t *Try) String() string        { return "try: ..." }

// Raise raises an exception value. Both Exc and From are nil for a bare
// `raise` (reraise).
type Raise struct {
	Token token.Token
	Exc   Expression // nil for a bare raise
	From  Expression // optional `raise e from cause`
}

func (r *Raise) statementNode()        {}
func (r *Raise) TokenLiteral() string  { return r.Token.Lexeme }
func (r *Raise) GetToken() token.Token { return r.Token }
func (r *Raise) String() string {
	if r.Exc == nil {
		return "raise"
	}
	out := "raise " + r.Exc.String()
	if r.From != nil {
		out += " from " + r.From.String()
	}
	return out
}

// Return exits the enclosing function with a value (None when omitted).
type Return struct {
	Token token.Token
	Value Expression // nil when omitted
}

func (r *Return) statementNode()        {}
func (r *Return) TokenLiteral() string  { return r.Token.Lexeme }
func (r *Return) GetToken() token.Token { return r.Token }
func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

// Break exits the enclosing loop.
type Break struct {
	Token token.Token
}

func (b *Break) statementNode()        {}
func (b *Break) TokenLiteral() string  { return b.Token.Lexeme }
func (b *Break) GetToken() token.Token { return b.Token }
func (b *Break) String() string        { return "break" }

// Continue jumps to the head of the enclosing loop.
type Continue struct {
	Token token.Token
}

func (c *Continue) statementNode()        {}
func (c *Continue) TokenLiteral() string  { return c.Token.Lexeme }
func (c *Continue) GetToken() token.Token { return c.Token }
func (c *Continue) String() string        { return "continue" }

// Pass does nothing.
type Pass struct {
	Token token.Token
}

func (p *Pass) statementNode()        {}
func (p *Pass) TokenLiteral() string  { return p.Token.Lexeme }
func (p *Pass) GetToken() token.Token { return p.Token }
func (p *Pass) String() string        { return "pass" }

// Assert raises AssertionError when its condition is falsy.
type Assert struct {
	Token     token.Token
	Condition Expression
	Message   Expression // may be nil
}

func (a *Assert) statementNode()        {}
func (a *Assert) TokenLiteral() string  { return a.Token.Lexeme }
func (a *Assert) GetToken() token.Token { return a.Token }
func (a *Assert) String() string {
	out := "assert " + a.Condition.String()
	if a.Message != nil {
		out += ", " + a.Message.String()
	}
	return out
}

// Del unbinds a name from the active scope.
type Del struct {
	Token  token.Token
	Target Expression
}

func (d *Del) statementNode()        {}
func (d *Del) TokenLiteral() string  { return d.Token.Lexeme }
func (d *Del) GetToken() token.Token { return d.Token }
func (d *Del) String() string        { return "del " + d.Target.String() }

// Import loads one or more modules. Each item is a Name or As(Name, Name).
type Import struct {
	Token token.Token
	Items []Expression
}

func (i *Import) statementNode()        {}
func (i *Import) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Import) GetToken() token.Token { return i.Token }
func (i *Import) String() string {
	items := make([]string, len(i.Items))
	for n, it := range i.Items {
		items[n] = it.String()
	}
	return "import " + strings.Join(items, ", ")
}

// ImportFrom is `from <module> import *`. Only the glob form is supported.
type ImportFrom struct {
	Token  token.Token
	Module *RelativeImport
	Items  []Expression // always a single Glob today
}

func (i *ImportFrom) statementNode()        {}
func (i *ImportFrom) TokenLiteral() string  { return i.Token.Lexeme }
func (i *ImportFrom) GetToken() token.Token { return i.Token }
func (i *ImportFrom) String() string        { return "from " + i.Module.String() + " import *" }
