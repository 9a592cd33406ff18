package interp

import (
	"github.com/slitherlang/slither/internal/ast"
	"github.com/slitherlang/slither/internal/config"
)

// evalCall evaluates a call expression. When the callee is an attribute
// access the receiver is evaluated exactly once; an instance receiver is
// prepended as the first argument (the bound-method convention), while a
// module receiver is not.
func (in *Interp) evalCall(node *ast.Call) Object {
	var callee Object
	var args []Object

	if attr, ok := node.Callee.(*ast.Attribute); ok {
		recv := in.evalExpr(attr.Target)
		if isRaised(recv) {
			return recv
		}
		fn, found := in.getAttr(recv, attr.Name)
		if !found {
			return in.raiseError(config.AttributeErrorClass,
				"'%s' object has no attribute '%s'", typeName(recv), attr.Name)
		}
		callee = fn
		if _, isInstance := recv.(*Instance); isInstance {
			args = append(args, recv)
		}
	} else {
		callee = in.evalExpr(node.Callee)
		if isRaised(callee) {
			return callee
		}
	}

	// Arguments evaluate strictly left to right before the call.
	argVals, sig := in.evalExpressions(node.Args)
	if sig != nil {
		return sig
	}
	args = append(args, argVals...)

	return in.apply(callee, args)
}

// apply is the uniform invocation path for classes, builtins and user
// functions.
func (in *Interp) apply(callee Object, args []Object) Object {
	switch fn := callee.(type) {
	case *Class:
		return in.instantiate(fn, args)
	case *Builtin:
		return fn.Fn(in, args)
	case *Function:
		return in.applyFunction(fn, args)
	}
	return in.raiseError(config.SystemErrorClass, "don't know how to call %s", callee.Inspect())
}

// applyFunction checks arity, binds positional parameters into a fresh
// local dict and runs the body in a new frame. The frame depth snapshot is
// restored on every exit path.
func (in *Interp) applyFunction(fn *Function, args []Object) Object {
	if len(args) != len(fn.Params) {
		return in.raiseError(config.TypeErrorClass,
			"%s() takes exactly %d arguments (%d given)", fn.Name, len(fn.Params), len(args))
	}

	local := NewAttrDict()
	for i, p := range fn.Params {
		local.Set(p, args[i])
	}
	// Free names resolve against the module scope active at call time;
	// there is no captured environment.
	scope := &Scope{
		Local:   local,
		Module:  in.currentScope().Module,
		Builtin: in.Builtins,
		Active:  ActiveLocal,
	}

	depth := len(in.Frames)
	in.pushFrame(fn.Name, scope)
	res := in.evalBlock(fn.Body)
	in.unwindTo(depth)

	switch sig := res.(type) {
	case *ReturnSignal:
		return sig.Value
	case *Raised:
		return sig
	case *BreakSignal:
		return in.raiseError(config.SyntaxErrorClass, "'break' outside loop")
	case *ContinueSignal:
		return in.raiseError(config.SyntaxErrorClass, "'continue' not properly in loop")
	}
	// Falling off the end of the body returns None.
	return NONE
}

// instantiate allocates a fresh instance and runs __init__ from the class
// chain when present. The instance is returned regardless of what __init__
// returns.
func (in *Interp) instantiate(cls *Class, args []Object) Object {
	inst := newObject(cls)
	if init, ok := classLookup(cls, config.InitMethodName); ok {
		res := in.apply(init, append([]Object{inst}, args...))
		if isRaised(res) {
			return res
		}
	}
	return inst
}
