package interp

import (
	"github.com/google/uuid"

	"github.com/slitherlang/slither/internal/config"
)

// uuidModuleDict backs the builtin uuid module. Identifiers travel as
// canonical-form strings; nothing here needs a new value kind.
func uuidModuleDict() *AttrDict {
	d := NewAttrDict()
	d.Set("uuid4", &Builtin{Name: "uuid.uuid4", Fn: builtinUuid4})
	d.Set("uuid5", &Builtin{Name: "uuid.uuid5", Fn: builtinUuid5})
	d.Set("parse", &Builtin{Name: "uuid.parse", Fn: builtinUuidParse})
	d.Set("NAMESPACE_DNS", &String{Value: uuid.NameSpaceDNS.String()})
	d.Set("NAMESPACE_URL", &String{Value: uuid.NameSpaceURL.String()})
	d.Set("NAMESPACE_OID", &String{Value: uuid.NameSpaceOID.String()})
	d.Set("NAMESPACE_X500", &String{Value: uuid.NameSpaceX500.String()})
	return d
}

func builtinUuid4(in *Interp, args []Object) Object {
	if len(args) != 0 {
		return in.raiseError(config.TypeErrorClass, "uuid4() takes exactly 0 arguments (%d given)", len(args))
	}
	return &String{Value: uuid.New().String()}
}

func builtinUuid5(in *Interp, args []Object) Object {
	if len(args) != 2 {
		return in.raiseError(config.TypeErrorClass, "uuid5() takes exactly 2 arguments (%d given)", len(args))
	}
	ns, ok := args[0].(*String)
	if !ok {
		return in.raiseError(config.TypeErrorClass, "uuid5() namespace must be a string")
	}
	name, ok := args[1].(*String)
	if !ok {
		return in.raiseError(config.TypeErrorClass, "uuid5() name must be a string")
	}
	nsID, err := uuid.Parse(ns.Value)
	if err != nil {
		return in.raiseError(config.TypeErrorClass, "badly formed hexadecimal UUID string")
	}
	return &String{Value: uuid.NewSHA1(nsID, []byte(name.Value)).String()}
}

func builtinUuidParse(in *Interp, args []Object) Object {
	if len(args) != 1 {
		return in.raiseError(config.TypeErrorClass, "parse() takes exactly 1 arguments (%d given)", len(args))
	}
	s, ok := args[0].(*String)
	if !ok {
		return in.raiseError(config.TypeErrorClass, "parse() argument must be a string")
	}
	id, err := uuid.Parse(s.Value)
	if err != nil {
		return in.raiseError(config.TypeErrorClass, "badly formed hexadecimal UUID string")
	}
	return &String{Value: id.String()}
}
