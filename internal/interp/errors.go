package interp

import (
	"fmt"

	"github.com/slitherlang/slither/internal/config"
)

// raiseError constructs and raises a language-level exception of the named
// kind. The kind is resolved through the current scope chain so user code
// that shadows an exception class sees its own class caught. Like every
// raise, the message is printed to standard output before the exception
// starts propagating; this is observable behavior and tests depend on it.
func (in *Interp) raiseError(kind string, format string, a ...interface{}) Object {
	msg := fmt.Sprintf(format, a...)
	cls := in.resolveExceptionClass(kind)
	exc := newObject(cls)
	exc.Dict.Set(config.MessageAttrName, &String{Value: msg})
	fmt.Fprintln(in.Out, msg)
	in.CurrentException = exc
	return &Raised{Exc: exc}
}

// resolveExceptionClass finds the class value for an error kind, falling
// back to the builtin registry and finally to BaseException so a raise
// never fails to produce an exception.
func (in *Interp) resolveExceptionClass(kind string) *Class {
	if len(in.Frames) > 0 {
		if v, ok := in.currentScope().Lookup(kind); ok {
			if cls, ok := v.(*Class); ok {
				return cls
			}
		}
	}
	if v, ok := in.Builtins.Get(kind); ok {
		if cls, ok := v.(*Class); ok {
			return cls
		}
	}
	if v, ok := in.Builtins.Get(config.BaseExceptionClass); ok {
		if cls, ok := v.(*Class); ok {
			return cls
		}
	}
	// Unreachable with a sane builtin registry.
	return &Class{Name: kind, Dict: NewAttrDict()}
}

// printRaiseMessage emits the raise-time diagnostic for a user-level raise.
func (in *Interp) printRaiseMessage(exc Object) {
	if msg, ok := in.getAttr(exc, config.MessageAttrName); ok {
		fmt.Fprintln(in.Out, Str(msg))
		return
	}
	fmt.Fprintln(in.Out, Str(exc))
}
