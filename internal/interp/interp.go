package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/slitherlang/slither/internal/ast"
	"github.com/slitherlang/slither/internal/config"
)

// ModuleLoader finds and parses module source on first use. The interpreter
// keeps its own cache of evaluated module values; the loader only caches
// parsed programs.
type ModuleLoader interface {
	// Load resolves name relative to dir (level counts leading dots of a
	// relative import) and returns the parsed module.
	Load(dir, name string, level int) (*LoadedModule, error)
}

// LoadedModule is what a loader hands back: a parsed program plus where it
// came from.
type LoadedModule struct {
	Name    string
	Path    string
	Dir     string
	Program *ast.Program
}

// Interp is the process-wide evaluator state. It is owned by a single
// evaluation driver; nothing here is safe for concurrent use.
type Interp struct {
	Out    io.Writer
	ErrOut io.Writer
	Trace  bool

	Loader ModuleLoader

	// CurrentException is the active exception while an except or finally
	// clause triggered by a raise is running, nil otherwise.
	CurrentException Object

	Frames []*Frame

	// Modules caches evaluated module values: virtual modules by name,
	// disk modules by resolved path. Re-import yields the same value.
	Modules map[string]*Module

	// Dir is the directory imports resolve against; it follows the module
	// currently being evaluated.
	Dir string

	Builtins *AttrDict
}

func New() *Interp {
	in := &Interp{
		Out:     os.Stdout,
		ErrOut:  os.Stderr,
		Modules: make(map[string]*Module),
	}
	in.Builtins = NewBuiltins()
	return in
}

// Interpret evaluates a parsed program as the main module and returns the
// process exit status: non-zero only when the default exception handler
// fired.
func (in *Interp) Interpret(path string, program *ast.Program) int {
	dict := NewAttrDict()
	scope := &Scope{Local: dict, Module: dict, Builtin: in.Builtins, Active: ActiveModule}
	in.Frames = []*Frame{{Name: "<module>", Scope: scope}}

	res := in.evalStatements(program.Statements)
	switch sig := res.(type) {
	case *Raised:
		in.defaultExceptionHandler(sig.Exc)
		return 1
	case *ReturnSignal:
		if r, ok := in.raiseError(config.SyntaxErrorClass, "'return' outside function").(*Raised); ok {
			in.defaultExceptionHandler(r.Exc)
		}
		return 1
	case *BreakSignal:
		if r, ok := in.raiseError(config.SyntaxErrorClass, "'break' outside loop").(*Raised); ok {
			in.defaultExceptionHandler(r.Exc)
		}
		return 1
	case *ContinueSignal:
		if r, ok := in.raiseError(config.SyntaxErrorClass, "'continue' not properly in loop").(*Raised); ok {
			in.defaultExceptionHandler(r.Exc)
		}
		return 1
	}
	return 0
}

// defaultExceptionHandler is the handler of last resort at module scope.
func (in *Interp) defaultExceptionHandler(exc Object) {
	name := typeName(exc)
	if inst, ok := exc.(*Instance); ok {
		name = inst.Class.Name
	}
	msg := ""
	if m, ok := in.getAttr(exc, config.MessageAttrName); ok {
		msg = Str(m)
	}
	if msg != "" {
		fmt.Fprintf(in.ErrOut, "*** Unhandled exception: %s: %s\n", name, msg)
	} else {
		fmt.Fprintf(in.ErrOut, "*** Unhandled exception: %s\n", name)
	}
}

func (in *Interp) currentScope() *Scope {
	return in.Frames[len(in.Frames)-1].Scope
}

func (in *Interp) pushFrame(name string, scope *Scope) {
	in.Frames = append(in.Frames, &Frame{Name: name, Scope: scope})
}

// unwindTo truncates the frame stack to a depth recorded earlier. Every
// exit path out of a call or protected block restores the snapshot, which
// is what keeps the stack consistent across exceptions.
func (in *Interp) unwindTo(depth int) {
	if len(in.Frames) > depth {
		in.Frames = in.Frames[:depth]
	}
}

func (in *Interp) evalStatements(stmts []ast.Statement) Object {
	var result Object = NONE
	for _, stmt := range stmts {
		result = in.evalStatement(stmt)
		if isSignal(result) {
			return result
		}
	}
	return NONE
}

func (in *Interp) evalBlock(block *ast.Block) Object {
	if block == nil {
		return NONE
	}
	return in.evalStatements(block.Statements)
}

// evalStatement executes a single statement, returning NONE or a
// control-flow signal.
func (in *Interp) evalStatement(stmt ast.Statement) Object {
	if in.Trace {
		fmt.Fprintf(in.ErrOut, "*** Evaluating: %s\n", stmt.String())
	}
	switch node := stmt.(type) {
	case *ast.ExpressionStatement:
		v := in.evalExpr(node.Expression)
		if isRaised(v) {
			return v
		}
		return NONE
	case *ast.Assign:
		return in.evalAssign(node)
	case *ast.Def:
		return in.evalDef(node)
	case *ast.ClassDef:
		return in.evalClassDef(node)
	case *ast.If:
		return in.evalIf(node)
	case *ast.While:
		return in.evalWhile(node)
	case *ast.Try:
		return in.evalTry(node)
	case *ast.Raise:
		return in.evalRaise(node)
	case *ast.Return:
		return in.evalReturn(node)
	case *ast.Break:
		return BREAK
	case *ast.Continue:
		return CONT
	case *ast.Pass:
		return NONE
	case *ast.Assert:
		return in.evalAssert(node)
	case *ast.Del:
		return in.evalDel(node)
	case *ast.Import:
		return in.evalImport(node)
	case *ast.ImportFrom:
		return in.evalImportFrom(node)
	case *ast.Block:
		return in.evalBlock(node)
	case *ast.For:
		return in.raiseError(config.NotImplementedErrorClass, "for statements are not implemented")
	case *ast.With:
		return in.raiseError(config.NotImplementedErrorClass, "with statements are not implemented")
	case *ast.Global:
		return in.raiseError(config.NotImplementedErrorClass, "global declarations are not implemented")
	case *ast.Nonlocal:
		return in.raiseError(config.NotImplementedErrorClass, "nonlocal declarations are not implemented")
	}
	return in.raiseError(config.SystemErrorClass, "don't know how to evaluate statement %s", stmt.String())
}
