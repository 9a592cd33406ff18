package interp

// ActiveDict selects which dict of a scope receives writes.
type ActiveDict int

const (
	ActiveLocal ActiveDict = iota
	ActiveModule
)

// Scope is the three-tier name resolution context: reads consult Local,
// then Module, then Builtin; writes and deletes go to the active dict.
// At module top level Local and Module alias the same dict.
type Scope struct {
	Local   *AttrDict
	Module  *AttrDict
	Builtin *AttrDict
	Active  ActiveDict
}

func (s *Scope) writable() *AttrDict {
	if s.Active == ActiveLocal {
		return s.Local
	}
	return s.Module
}

// Bind writes a name into the active dict.
func (s *Scope) Bind(name string, val Object) {
	s.writable().Set(name, val)
}

// BindAll copies every pair of src into the active dict, preserving src's
// insertion order. Used by glob imports.
func (s *Scope) BindAll(src *AttrDict) {
	dst := s.writable()
	for _, k := range src.Keys() {
		v, _ := src.Get(k)
		dst.Set(k, v)
	}
}

// Lookup resolves a name through the three tiers.
func (s *Scope) Lookup(name string) (Object, bool) {
	if v, ok := s.Local.Get(name); ok {
		return v, true
	}
	if v, ok := s.Module.Get(name); ok {
		return v, true
	}
	if v, ok := s.Builtin.Get(name); ok {
		return v, true
	}
	return nil, false
}

// Unbind deletes a name from the active dict and reports whether it was
// bound there.
func (s *Scope) Unbind(name string) bool {
	return s.writable().Delete(name)
}

// Frame is one activation record. Frames exist for diagnostics and for the
// depth-snapshot unwinding discipline around calls and protected blocks.
type Frame struct {
	Name  string
	Scope *Scope
}
