package interp

import (
	"fmt"

	"github.com/slitherlang/slither/internal/config"
)

// NewBuiltins builds the builtin scope dict: the core functions plus the
// exception class hierarchy.
func NewBuiltins() *AttrDict {
	d := NewAttrDict()

	d.Set(config.PrintFuncName, &Builtin{Name: config.PrintFuncName, Fn: builtinPrint})
	d.Set(config.StrFuncName, &Builtin{Name: config.StrFuncName, Fn: builtinStr})
	d.Set(config.ReprFuncName, &Builtin{Name: config.ReprFuncName, Fn: builtinRepr})
	d.Set(config.LenFuncName, &Builtin{Name: config.LenFuncName, Fn: builtinLen})
	d.Set(config.PowFuncName, &Builtin{Name: config.PowFuncName, Fn: builtinPow})
	d.Set(config.TypeFuncName, &Builtin{Name: config.TypeFuncName, Fn: builtinType})

	registerExceptionClasses(d)
	return d
}

// registerExceptionClasses wires the exception hierarchy. Every class
// inherits BaseException's __init__, which stores the optional message on
// the instance.
func registerExceptionClasses(d *AttrDict) {
	base := &Class{Name: config.BaseExceptionClass, Dict: NewAttrDict()}
	base.Dict.Set(config.InitMethodName, &Builtin{
		Name: config.BaseExceptionClass + "." + config.InitMethodName,
		Fn:   builtinExceptionInit,
	})
	d.Set(base.Name, base)

	exception := &Class{Name: config.ExceptionClass, Bases: []Object{base}, Dict: NewAttrDict()}
	d.Set(exception.Name, exception)

	for _, name := range []string{
		config.TypeErrorClass,
		config.NameErrorClass,
		config.AttributeErrorClass,
		config.SyntaxErrorClass,
		config.RuntimeErrorClass,
		config.AssertionErrorClass,
		config.NotImplementedErrorClass,
		config.SystemErrorClass,
		config.IndexErrorClass,
	} {
		d.Set(name, &Class{Name: name, Bases: []Object{exception}, Dict: NewAttrDict()})
	}
}

// builtinExceptionInit is the shared __init__ of the exception hierarchy:
// it stores the first constructor argument as the message.
func builtinExceptionInit(in *Interp, args []Object) Object {
	if len(args) == 0 {
		return in.raiseError(config.SystemErrorClass, "__init__ called without a receiver")
	}
	self := args[0]
	msg := Object(&String{Value: ""})
	if len(args) > 1 {
		msg = args[1]
	}
	if !in.setAttr(self, config.MessageAttrName, msg) {
		return in.raiseError(config.SystemErrorClass, "cannot initialize %s", self.Inspect())
	}
	return NONE
}

func builtinPrint(in *Interp, args []Object) Object {
	for i, arg := range args {
		if i > 0 {
			fmt.Fprint(in.Out, " ")
		}
		fmt.Fprint(in.Out, Str(arg))
	}
	fmt.Fprintln(in.Out)
	return NONE
}

func builtinStr(in *Interp, args []Object) Object {
	if len(args) != 1 {
		return in.raiseError(config.TypeErrorClass, "str() takes exactly 1 arguments (%d given)", len(args))
	}
	return &String{Value: Str(args[0])}
}

func builtinRepr(in *Interp, args []Object) Object {
	if len(args) != 1 {
		return in.raiseError(config.TypeErrorClass, "repr() takes exactly 1 arguments (%d given)", len(args))
	}
	return &String{Value: args[0].Inspect()}
}

func builtinLen(in *Interp, args []Object) Object {
	if len(args) != 1 {
		return in.raiseError(config.TypeErrorClass, "len() takes exactly 1 arguments (%d given)", len(args))
	}
	switch v := args[0].(type) {
	case *String:
		return NewInt(int64(len(v.Value)))
	case *Tuple:
		return NewInt(int64(len(v.Elements)))
	case *List:
		return NewInt(int64(len(v.Elements)))
	}
	return in.raiseError(config.TypeErrorClass, "object of type '%s' has no len()", typeName(args[0]))
}

func builtinPow(in *Interp, args []Object) Object {
	if len(args) != 2 {
		return in.raiseError(config.TypeErrorClass, "pow() takes exactly 2 arguments (%d given)", len(args))
	}
	return in.powObjects(args[0], args[1])
}

func builtinType(in *Interp, args []Object) Object {
	if len(args) != 1 {
		return in.raiseError(config.TypeErrorClass, "type() takes exactly 1 arguments (%d given)", len(args))
	}
	return classOf(args[0])
}

// virtualModuleDict returns the dict backing a builtin module, or nil when
// the name is not a virtual module.
func (in *Interp) virtualModuleDict(name string) *AttrDict {
	switch name {
	case config.UuidModuleName:
		return uuidModuleDict()
	case config.SqliteModuleName:
		return sqliteModuleDict()
	}
	return nil
}
