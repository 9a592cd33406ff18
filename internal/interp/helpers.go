package interp

// Canonical class tokens for the builtin value kinds. These are what
// class_of and the type builtin hand out for non-instance values.
var (
	classInt      = &Class{Name: "int", Dict: NewAttrDict()}
	classFloat    = &Class{Name: "float", Dict: NewAttrDict()}
	classBool     = &Class{Name: "bool", Dict: NewAttrDict()}
	classStr      = &Class{Name: "str", Dict: NewAttrDict()}
	classNoneType = &Class{Name: "NoneType", Dict: NewAttrDict()}
	classTuple    = &Class{Name: "tuple", Dict: NewAttrDict()}
	classList     = &Class{Name: "list", Dict: NewAttrDict()}
	classSlice    = &Class{Name: "slice", Dict: NewAttrDict()}
	classFunction = &Class{Name: "function", Dict: NewAttrDict()}
	classBuiltin  = &Class{Name: "builtin_function_or_method", Dict: NewAttrDict()}
	classModule   = &Class{Name: "module", Dict: NewAttrDict()}
	classType     = &Class{Name: "type", Dict: NewAttrDict()}
)

// classOf returns the class of a value: the instance's class for instances,
// a canonical builtin class token otherwise.
func classOf(obj Object) *Class {
	switch v := obj.(type) {
	case *Instance:
		return v.Class
	case *Class:
		return classType
	case *Integer:
		return classInt
	case *Float:
		return classFloat
	case *Boolean:
		return classBool
	case *String:
		return classStr
	case *None:
		return classNoneType
	case *Tuple:
		return classTuple
	case *List:
		return classList
	case *Slice:
		return classSlice
	case *Function:
		return classFunction
	case *Builtin:
		return classBuiltin
	case *Module:
		return classModule
	}
	return classType
}

// typeName is the human-readable type name used in error messages.
func typeName(obj Object) string {
	return classOf(obj).Name
}

// isTruthy implements the language's truthiness rules: None, False, zero
// numbers and empty sequences are falsy, everything else is truthy.
func isTruthy(obj Object) bool {
	switch v := obj.(type) {
	case *None:
		return false
	case *Boolean:
		return v.Value
	case *Integer:
		return v.Value.Sign() != 0
	case *Float:
		return v.Value != 0.0
	case *String:
		return len(v.Value) != 0
	case *Tuple:
		return len(v.Elements) != 0
	case *List:
		return len(v.Elements) != 0
	}
	return true
}

// Str is the best-effort textual form used by print, str and error
// messages: strings print unquoted, everything else as its Inspect form.
func Str(obj Object) string {
	if s, ok := obj.(*String); ok {
		return s.Value
	}
	return obj.Inspect()
}

// newObject allocates an instance of a class with a fresh attribute dict.
func newObject(cls *Class) *Instance {
	return &Instance{Class: cls, Dict: NewAttrDict()}
}

// getAttr resolves an attribute: instance dict first, then the class chain;
// class dict then its bases; module dict directly. The bool result is false
// when the attribute is missing or the value kind has no attributes.
func (in *Interp) getAttr(obj Object, name string) (Object, bool) {
	switch v := obj.(type) {
	case *Instance:
		if val, ok := v.Dict.Get(name); ok {
			return val, true
		}
		return classLookup(v.Class, name)
	case *Class:
		return classLookup(v, name)
	case *Module:
		return v.Dict.Get(name)
	}
	return nil, false
}

// setAttr writes into the target's dict. Value kinds without a dict reject
// the write; the caller raises AttributeError.
func (in *Interp) setAttr(obj Object, name string, val Object) bool {
	switch v := obj.(type) {
	case *Instance:
		v.Dict.Set(name, val)
		return true
	case *Class:
		v.Dict.Set(name, val)
		return true
	case *Module:
		v.Dict.Set(name, val)
		return true
	}
	return false
}

// classLookup searches a class and then its bases left-to-right,
// depth-first. First match wins.
func classLookup(cls *Class, name string) (Object, bool) {
	if val, ok := cls.Dict.Get(name); ok {
		return val, true
	}
	for _, base := range cls.Bases {
		if bc, ok := base.(*Class); ok {
			if val, ok := classLookup(bc, name); ok {
				return val, true
			}
		}
	}
	return nil, false
}

// IsSubclass reports whether c is base or derives from it, searching bases
// left-to-right depth-first.
func IsSubclass(c, base *Class) bool {
	if c == base {
		return true
	}
	for _, b := range c.Bases {
		if bc, ok := b.(*Class); ok {
			if IsSubclass(bc, base) {
				return true
			}
		}
	}
	return false
}
