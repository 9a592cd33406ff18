package interp

import (
	"github.com/slitherlang/slither/internal/ast"
	"github.com/slitherlang/slither/internal/config"
)

func (in *Interp) evalAssign(node *ast.Assign) Object {
	val := in.evalExpr(node.Value)
	if isRaised(val) {
		return val
	}
	switch target := node.Target.(type) {
	case *ast.Identifier:
		in.currentScope().Bind(target.Value, val)
		return NONE
	case *ast.Attribute:
		recv := in.evalExpr(target.Target)
		if isRaised(recv) {
			return recv
		}
		if !in.setAttr(recv, target.Name, val) {
			return in.raiseError(config.AttributeErrorClass,
				"'%s' object has no attribute '%s'", typeName(recv), target.Name)
		}
		return NONE
	}
	return in.raiseError(config.SyntaxErrorClass, "cannot assign to %s", node.Target.String())
}

func (in *Interp) evalDef(node *ast.Def) Object {
	params := make([]string, len(node.Params))
	for i, p := range node.Params {
		params[i] = p.Name
	}
	// No closure environment is captured: the function's free names resolve
	// against whatever scope is active when it is called.
	fn := &Function{Name: node.Name, Params: params, Body: node.Body}
	in.currentScope().Bind(node.Name, fn)
	return NONE
}

func (in *Interp) evalClassDef(node *ast.ClassDef) Object {
	bases := make([]Object, 0, len(node.Bases))
	for _, baseExpr := range node.Bases {
		base := in.evalExpr(baseExpr)
		if isRaised(base) {
			return base
		}
		bases = append(bases, base)
	}

	dict := NewAttrDict()
	frame := in.Frames[len(in.Frames)-1]
	prevScope := frame.Scope
	frame.Scope = &Scope{Local: dict, Module: prevScope.Module, Builtin: prevScope.Builtin, Active: ActiveLocal}
	res := in.evalBlock(node.Body)
	frame.Scope = prevScope

	if isSignal(res) {
		return res
	}
	cls := &Class{Name: node.Name, Bases: bases, Dict: dict}
	in.currentScope().Bind(node.Name, cls)
	return NONE
}

func (in *Interp) evalIf(node *ast.If) Object {
	for _, clause := range node.Clauses {
		cond := in.evalExpr(clause.Condition)
		if isRaised(cond) {
			return cond
		}
		if isTruthy(cond) {
			return in.evalBlock(clause.Body)
		}
	}
	return in.evalBlock(node.Else)
}

// evalWhile runs the loop with a frame-depth snapshot taken on entry. Break
// and continue signals from any depth of the body unwind here; return and
// raise keep propagating. The else block runs when the condition turns
// falsy, still under this loop's break/continue handling.
func (in *Interp) evalWhile(node *ast.While) Object {
	depth := len(in.Frames)
	for {
		cond := in.evalExpr(node.Condition)
		if isRaised(cond) {
			return cond
		}
		if !isTruthy(cond) {
			if node.Else != nil {
				res := in.evalBlock(node.Else)
				switch res.(type) {
				case *BreakSignal:
					in.unwindTo(depth)
					return NONE
				case *ContinueSignal:
					in.unwindTo(depth)
					continue
				}
				if isSignal(res) {
					return res
				}
			}
			return NONE
		}
		res := in.evalBlock(node.Body)
		switch res.(type) {
		case *BreakSignal:
			in.unwindTo(depth)
			return NONE
		case *ContinueSignal:
			in.unwindTo(depth)
			continue
		}
		if isSignal(res) {
			return res
		}
	}
}

func (in *Interp) evalReturn(node *ast.Return) Object {
	var val Object = NONE
	if node.Value != nil {
		val = in.evalExpr(node.Value)
		if isRaised(val) {
			return val
		}
	}
	return &ReturnSignal{Value: val}
}

func (in *Interp) evalAssert(node *ast.Assert) Object {
	cond := in.evalExpr(node.Condition)
	if isRaised(cond) {
		return cond
	}
	if isTruthy(cond) {
		return NONE
	}
	msg := ""
	if node.Message != nil {
		m := in.evalExpr(node.Message)
		if isRaised(m) {
			return m
		}
		msg = Str(m)
	}
	return in.raiseError(config.AssertionErrorClass, "%s", msg)
}

func (in *Interp) evalDel(node *ast.Del) Object {
	name, ok := node.Target.(*ast.Identifier)
	if !ok {
		return in.raiseError(config.SyntaxErrorClass, "cannot delete %s", node.Target.String())
	}
	if !in.currentScope().Unbind(name.Value) {
		return in.raiseError(config.NameErrorClass, "name '%s' is not defined", name.Value)
	}
	return NONE
}

func (in *Interp) evalRaise(node *ast.Raise) Object {
	if node.Exc == nil {
		// Bare raise: rethrow the active exception.
		if in.CurrentException == nil {
			return in.raiseError(config.RuntimeErrorClass, "No active exception to reraise")
		}
		return &Raised{Exc: in.CurrentException}
	}
	exc := in.evalExpr(node.Exc)
	if isRaised(exc) {
		return exc
	}
	baseExc := in.resolveExceptionClass(config.BaseExceptionClass)
	if !IsSubclass(classOf(exc), baseExc) {
		return in.raiseError(config.TypeErrorClass, "exceptions must derive from BaseException")
	}
	if node.From != nil {
		cause := in.evalExpr(node.From)
		if isRaised(cause) {
			return cause
		}
		in.setAttr(exc, "__cause__", cause)
	}
	in.printRaiseMessage(exc)
	in.CurrentException = exc
	return &Raised{Exc: exc}
}

// evalTry is the protected-block construct. The frame depth is snapshotted
// on entry and restored after the protected block unwinds; the previous
// active exception is saved so nesting behaves. The finally block runs
// exactly once on every exit path: normal completion, a handled or
// unhandled exception, and return/break/continue passing through. A signal
// produced by the finally block itself wins over whatever was pending.
func (in *Interp) evalTry(node *ast.Try) Object {
	depth := len(in.Frames)
	prevExc := in.CurrentException

	res := in.evalBlock(node.Body)
	in.unwindTo(depth)

	if raised, ok := res.(*Raised); ok {
		in.CurrentException = raised.Exc
		for _, clause := range node.Excepts {
			matched := clause.Class == nil
			if !matched {
				clsVal := in.evalExpr(clause.Class)
				if isRaised(clsVal) {
					return in.leaveTry(node, clsVal, prevExc)
				}
				cls, isClass := clsVal.(*Class)
				if !isClass {
					sig := in.raiseError(config.TypeErrorClass,
						"catching '%s' that does not inherit from BaseException is not allowed", typeName(clsVal))
					return in.leaveTry(node, sig, prevExc)
				}
				matched = IsSubclass(classOf(raised.Exc), cls)
			}
			if !matched {
				continue
			}
			if clause.Name != "" {
				in.currentScope().Bind(clause.Name, raised.Exc)
			}
			handlerRes := in.evalBlock(clause.Body)
			if !isSignal(handlerRes) {
				handlerRes = NONE
			}
			return in.leaveTry(node, handlerRes, prevExc)
		}
		// No clause matched: finally still runs, then the original
		// exception keeps propagating.
		return in.leaveTry(node, raised, prevExc)
	}

	if isSignal(res) {
		// return/break/continue leaving the protected block run the
		// finally block before delegating outward.
		return in.leaveTry(node, res, prevExc)
	}

	if node.Else != nil {
		elseRes := in.evalBlock(node.Else)
		if isSignal(elseRes) {
			return in.leaveTry(node, elseRes, prevExc)
		}
	}
	return in.leaveTry(node, NONE, prevExc)
}

// leaveTry runs the finally block and restores the previous active
// exception. pending is the signal (or NONE) the try construct would
// otherwise produce; a signal out of finally replaces it.
func (in *Interp) leaveTry(node *ast.Try, pending Object, prevExc Object) Object {
	if node.Finally != nil {
		finRes := in.evalBlock(node.Finally)
		if isSignal(finRes) {
			in.CurrentException = prevExc
			if raised, ok := finRes.(*Raised); ok {
				in.CurrentException = raised.Exc
			}
			return finRes
		}
	}
	if raised, ok := pending.(*Raised); ok {
		// Keep the exception active while it propagates outward.
		in.CurrentException = raised.Exc
		return pending
	}
	in.CurrentException = prevExc
	if isSignal(pending) {
		return pending
	}
	return NONE
}

func (in *Interp) evalImport(node *ast.Import) Object {
	for _, item := range node.Items {
		var path *ast.Identifier
		alias := ""
		switch it := item.(type) {
		case *ast.Identifier:
			path = it
			alias = it.Value
		case *ast.As:
			p, ok := it.Value.(*ast.Identifier)
			if !ok {
				return in.raiseError(config.SystemErrorClass, "invalid import item %s", item.String())
			}
			b, ok := it.Binding.(*ast.Identifier)
			if !ok {
				return in.raiseError(config.SystemErrorClass, "invalid import alias %s", item.String())
			}
			path = p
			alias = b.Value
		default:
			return in.raiseError(config.SystemErrorClass, "invalid import item %s", item.String())
		}
		mod := in.loadModule(path.Value, 0)
		if isRaised(mod) {
			return mod
		}
		in.currentScope().Bind(alias, mod)
	}
	return NONE
}

func (in *Interp) evalImportFrom(node *ast.ImportFrom) Object {
	if node.Module == nil || len(node.Items) == 0 {
		return in.raiseError(config.SystemErrorClass, "malformed from-import")
	}
	if _, ok := node.Items[0].(*ast.Glob); !ok {
		return in.raiseError(config.NotImplementedErrorClass, "only glob imports are implemented")
	}
	mod := in.loadModule(node.Module.Path.Value, node.Module.Level)
	if isRaised(mod) {
		return mod
	}
	in.currentScope().BindAll(mod.(*Module).Dict)
	return NONE
}

// loadModule returns the module value for an import path, evaluating it on
// first load. Virtual builtin modules resolve before the loader is asked.
// Re-import always yields the cached value.
func (in *Interp) loadModule(name string, level int) Object {
	if dict := in.virtualModuleDict(name); dict != nil {
		if mod, ok := in.Modules[name]; ok {
			return mod
		}
		mod := &Module{Name: name, Path: "<builtin>", Dict: dict}
		in.Modules[name] = mod
		return mod
	}

	if in.Loader == nil {
		return in.raiseError(config.SystemErrorClass, "cannot import '%s': no module loader", name)
	}
	lm, err := in.Loader.Load(in.Dir, name, level)
	if err != nil {
		return in.raiseError(config.SystemErrorClass, "cannot import '%s': %s", name, err.Error())
	}
	if mod, ok := in.Modules[lm.Path]; ok {
		return mod
	}

	dict := NewAttrDict()
	mod := &Module{Name: lm.Name, Path: lm.Path, Dict: dict}
	// Cache before evaluation so cyclic imports see the partial module.
	in.Modules[lm.Path] = mod

	scope := &Scope{Local: dict, Module: dict, Builtin: in.Builtins, Active: ActiveModule}
	depth := len(in.Frames)
	prevDir := in.Dir
	in.Dir = lm.Dir
	in.pushFrame("<module "+lm.Name+">", scope)
	res := in.evalStatements(lm.Program.Statements)
	in.unwindTo(depth)
	in.Dir = prevDir

	switch res.(type) {
	case *Raised:
		return res
	case *ReturnSignal:
		return in.raiseError(config.SyntaxErrorClass, "'return' outside function")
	case *BreakSignal:
		return in.raiseError(config.SyntaxErrorClass, "'break' outside loop")
	case *ContinueSignal:
		return in.raiseError(config.SyntaxErrorClass, "'continue' not properly in loop")
	}
	return mod
}
