package interp

import (
	"math"
	"math/big"
	"strings"

	"github.com/slitherlang/slither/internal/ast"
	"github.com/slitherlang/slither/internal/config"
)

// evalExpr reduces an expression to a value. The only signal it can return
// is Raised.
func (in *Interp) evalExpr(node ast.Expression) Object {
	switch node := node.(type) {
	case *ast.Identifier:
		if v, ok := in.currentScope().Lookup(node.Value); ok {
			return v
		}
		return in.raiseError(config.NameErrorClass, "name '%s' is not defined", node.Value)
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.FloatLiteral:
		return &Float{Value: node.Value}
	case *ast.StringLiteral:
		return &String{Value: node.Value}
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)
	case *ast.NoneLiteral:
		return NONE
	case *ast.ListDef:
		elems, sig := in.evalExpressions(node.Elements)
		if sig != nil {
			return sig
		}
		return &List{Elements: elems}
	case *ast.TupleDef:
		elems, sig := in.evalExpressions(node.Elements)
		if sig != nil {
			return sig
		}
		return &Tuple{Elements: elems}
	case *ast.SliceDef:
		return in.evalSliceDef(node)
	case *ast.UnaryOp:
		return in.evalUnaryOp(node)
	case *ast.BinOp:
		return in.evalBinOp(node)
	case *ast.TernOp:
		cond := in.evalExpr(node.Condition)
		if isRaised(cond) {
			return cond
		}
		if isTruthy(cond) {
			return in.evalExpr(node.Then)
		}
		return in.evalExpr(node.Else)
	case *ast.Attribute:
		target := in.evalExpr(node.Target)
		if isRaised(target) {
			return target
		}
		if val, ok := in.getAttr(target, node.Name); ok {
			return val
		}
		return in.raiseError(config.AttributeErrorClass,
			"'%s' object has no attribute '%s'", typeName(target), node.Name)
	case *ast.Subscript:
		return in.evalSubscript(node)
	case *ast.Call:
		return in.evalCall(node)
	case *ast.As:
		return in.evalAs(node)
	case *ast.Lambda:
		return in.raiseError(config.NotImplementedErrorClass, "lambda expressions are not implemented")
	case *ast.Yield:
		return in.raiseError(config.NotImplementedErrorClass, "generators are not implemented")
	case *ast.Glob:
		return in.raiseError(config.NotImplementedErrorClass, "'*' is only valid in a from-import")
	case *ast.RelativeImport:
		return in.raiseError(config.NotImplementedErrorClass, "relative references are only valid in a from-import")
	}
	return in.raiseError(config.SystemErrorClass, "don't know how to evaluate expression %s", node.String())
}

// evalExpressions evaluates a list strictly left to right, stopping at the
// first raise.
func (in *Interp) evalExpressions(exprs []ast.Expression) ([]Object, Object) {
	result := make([]Object, 0, len(exprs))
	for _, e := range exprs {
		v := in.evalExpr(e)
		if isRaised(v) {
			return nil, v
		}
		result = append(result, v)
	}
	return result, nil
}

func (in *Interp) evalSliceDef(node *ast.SliceDef) Object {
	part := func(e ast.Expression) Object {
		if e == nil {
			return NONE
		}
		return in.evalExpr(e)
	}
	start := part(node.Start)
	if isRaised(start) {
		return start
	}
	stop := part(node.Stop)
	if isRaised(stop) {
		return stop
	}
	stride := part(node.Stride)
	if isRaised(stride) {
		return stride
	}
	return &Slice{Start: start, Stop: stop, Stride: stride}
}

func (in *Interp) evalAs(node *ast.As) Object {
	val := in.evalExpr(node.Value)
	if isRaised(val) {
		return val
	}
	name, ok := node.Binding.(*ast.Identifier)
	if !ok {
		return in.raiseError(config.SystemErrorClass, "cannot bind to %s", node.Binding.String())
	}
	in.currentScope().Bind(name.Value, val)
	return val
}

func (in *Interp) evalUnaryOp(node *ast.UnaryOp) Object {
	operand := in.evalExpr(node.Operand)
	if isRaised(operand) {
		return operand
	}
	switch node.Operator {
	case "not":
		if b, ok := operand.(*Boolean); ok {
			return nativeBoolToBooleanObject(!b.Value)
		}
	case "-":
		switch v := operand.(type) {
		case *Integer:
			return &Integer{Value: new(big.Int).Neg(v.Value)}
		case *Float:
			return &Float{Value: -v.Value}
		}
	case "+":
		switch operand.(type) {
		case *Integer, *Float:
			return operand
		}
	case "~":
		if v, ok := operand.(*Integer); ok {
			return &Integer{Value: new(big.Int).Not(v.Value)}
		}
	}
	return in.raiseError(config.SystemErrorClass,
		"unsupported operand type for unary %s: '%s'", node.Operator, typeName(operand))
}

func (in *Interp) evalBinOp(node *ast.BinOp) Object {
	// and/or short-circuit and return the selected operand unchanged.
	switch node.Operator {
	case "and":
		left := in.evalExpr(node.Left)
		if isRaised(left) {
			return left
		}
		if !isTruthy(left) {
			return left
		}
		return in.evalExpr(node.Right)
	case "or":
		left := in.evalExpr(node.Left)
		if isRaised(left) {
			return left
		}
		if isTruthy(left) {
			return left
		}
		return in.evalExpr(node.Right)
	}

	left := in.evalExpr(node.Left)
	if isRaised(left) {
		return left
	}
	right := in.evalExpr(node.Right)
	if isRaised(right) {
		return right
	}
	return in.applyBinOp(node.Operator, left, right)
}

func (in *Interp) applyBinOp(op string, left, right Object) Object {
	// None-aware equality first: None == None, anything else != None.
	if op == "==" || op == "!=" {
		_, ln := left.(*None)
		_, rn := right.(*None)
		if ln || rn {
			eq := ln && rn
			if op == "!=" {
				eq = !eq
			}
			return nativeBoolToBooleanObject(eq)
		}
	}

	switch l := left.(type) {
	case *Integer:
		switch r := right.(type) {
		case *Integer:
			return in.evalIntegerBinOp(op, l, r)
		case *Float:
			lf, _ := new(big.Float).SetInt(l.Value).Float64()
			return in.evalFloatBinOp(op, lf, r.Value)
		case *String:
			if op == "*" {
				return in.repeatString(r.Value, l)
			}
		}
	case *Float:
		switch r := right.(type) {
		case *Float:
			return in.evalFloatBinOp(op, l.Value, r.Value)
		case *Integer:
			rf, _ := new(big.Float).SetInt(r.Value).Float64()
			return in.evalFloatBinOp(op, l.Value, rf)
		}
	case *String:
		switch r := right.(type) {
		case *String:
			return in.evalStringBinOp(op, l, r)
		case *Integer:
			if op == "*" {
				return in.repeatString(l.Value, r)
			}
		}
	case *Boolean:
		if r, ok := right.(*Boolean); ok {
			return in.evalBooleanBinOp(op, l, r)
		}
	}
	return in.raiseError(config.SystemErrorClass,
		"unsupported operand types for %s: '%s' and '%s'", op, typeName(left), typeName(right))
}

func (in *Interp) evalIntegerBinOp(op string, l, r *Integer) Object {
	switch op {
	case "+":
		return &Integer{Value: new(big.Int).Add(l.Value, r.Value)}
	case "-":
		return &Integer{Value: new(big.Int).Sub(l.Value, r.Value)}
	case "*":
		return &Integer{Value: new(big.Int).Mul(l.Value, r.Value)}
	case "/":
		// True division always yields a float.
		lf, _ := new(big.Float).SetInt(l.Value).Float64()
		rf, _ := new(big.Float).SetInt(r.Value).Float64()
		return in.evalFloatBinOp(op, lf, rf)
	case "//":
		if r.Value.Sign() == 0 {
			return in.raiseError(config.SystemErrorClass, "integer division or modulo by zero")
		}
		q, _ := floorDivMod(l.Value, r.Value)
		return &Integer{Value: q}
	case "%":
		if r.Value.Sign() == 0 {
			return in.raiseError(config.SystemErrorClass, "integer division or modulo by zero")
		}
		_, m := floorDivMod(l.Value, r.Value)
		return &Integer{Value: m}
	case "**":
		return in.powObjects(l, r)
	case "&":
		return &Integer{Value: new(big.Int).And(l.Value, r.Value)}
	case "|":
		return &Integer{Value: new(big.Int).Or(l.Value, r.Value)}
	case "^":
		return &Integer{Value: new(big.Int).Xor(l.Value, r.Value)}
	case "<<", ">>":
		if !r.Value.IsInt64() || r.Value.Sign() < 0 {
			return in.raiseError(config.SystemErrorClass, "invalid shift count")
		}
		n := uint(r.Value.Int64())
		if op == "<<" {
			return &Integer{Value: new(big.Int).Lsh(l.Value, n)}
		}
		return &Integer{Value: new(big.Int).Rsh(l.Value, n)}
	case "==":
		return nativeBoolToBooleanObject(l.Value.Cmp(r.Value) == 0)
	case "!=":
		return nativeBoolToBooleanObject(l.Value.Cmp(r.Value) != 0)
	case "<":
		return nativeBoolToBooleanObject(l.Value.Cmp(r.Value) < 0)
	case "<=":
		return nativeBoolToBooleanObject(l.Value.Cmp(r.Value) <= 0)
	case ">":
		return nativeBoolToBooleanObject(l.Value.Cmp(r.Value) > 0)
	case ">=":
		return nativeBoolToBooleanObject(l.Value.Cmp(r.Value) >= 0)
	}
	return in.raiseError(config.SystemErrorClass, "unsupported operand types for %s: 'int' and 'int'", op)
}

// floorDivMod implements floored division: the quotient rounds toward
// negative infinity and the remainder takes the divisor's sign.
func floorDivMod(l, r *big.Int) (*big.Int, *big.Int) {
	q, m := new(big.Int).QuoRem(l, r, new(big.Int))
	if m.Sign() != 0 && (m.Sign() < 0) != (r.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		m.Add(m, r)
	}
	return q, m
}

func (in *Interp) evalFloatBinOp(op string, l, r float64) Object {
	switch op {
	case "+":
		return &Float{Value: l + r}
	case "-":
		return &Float{Value: l - r}
	case "*":
		return &Float{Value: l * r}
	case "/":
		return &Float{Value: l / r}
	case "//":
		return &Float{Value: math.Floor(l / r)}
	case "%":
		// Remainder takes the divisor's sign.
		m := math.Mod(l, r)
		if m != 0 && (m < 0) != (r < 0) {
			m += r
		}
		return &Float{Value: m}
	case "**":
		return &Float{Value: math.Pow(l, r)}
	case "==":
		return nativeBoolToBooleanObject(l == r)
	case "!=":
		return nativeBoolToBooleanObject(l != r)
	case "<":
		return nativeBoolToBooleanObject(l < r)
	case "<=":
		return nativeBoolToBooleanObject(l <= r)
	case ">":
		return nativeBoolToBooleanObject(l > r)
	case ">=":
		return nativeBoolToBooleanObject(l >= r)
	}
	return in.raiseError(config.SystemErrorClass, "unsupported operand types for %s: 'float' and 'float'", op)
}

func (in *Interp) evalStringBinOp(op string, l, r *String) Object {
	switch op {
	case "+":
		return &String{Value: l.Value + r.Value}
	case "==":
		return nativeBoolToBooleanObject(l.Value == r.Value)
	case "!=":
		return nativeBoolToBooleanObject(l.Value != r.Value)
	case "<":
		return nativeBoolToBooleanObject(l.Value < r.Value)
	case "<=":
		return nativeBoolToBooleanObject(l.Value <= r.Value)
	case ">":
		return nativeBoolToBooleanObject(l.Value > r.Value)
	case ">=":
		return nativeBoolToBooleanObject(l.Value >= r.Value)
	}
	return in.raiseError(config.SystemErrorClass, "unsupported operand types for %s: 'str' and 'str'", op)
}

func (in *Interp) evalBooleanBinOp(op string, l, r *Boolean) Object {
	li, ri := 0, 0
	if l.Value {
		li = 1
	}
	if r.Value {
		ri = 1
	}
	switch op {
	case "==":
		return nativeBoolToBooleanObject(li == ri)
	case "!=":
		return nativeBoolToBooleanObject(li != ri)
	case "<":
		return nativeBoolToBooleanObject(li < ri)
	case "<=":
		return nativeBoolToBooleanObject(li <= ri)
	case ">":
		return nativeBoolToBooleanObject(li > ri)
	case ">=":
		return nativeBoolToBooleanObject(li >= ri)
	}
	return in.raiseError(config.SystemErrorClass, "unsupported operand types for %s: 'bool' and 'bool'", op)
}

func (in *Interp) repeatString(s string, count *Integer) Object {
	if count.Value.Sign() <= 0 {
		return &String{Value: ""}
	}
	if !count.Value.IsInt64() {
		return in.raiseError(config.SystemErrorClass, "repeat count too large")
	}
	return &String{Value: strings.Repeat(s, int(count.Value.Int64()))}
}

// powObjects is the shared implementation behind the ** operator and the
// pow builtin. A negative integer exponent falls back to floats.
func (in *Interp) powObjects(base, exp Object) Object {
	lb, lok := base.(*Integer)
	rb, rok := exp.(*Integer)
	if lok && rok {
		if rb.Value.Sign() >= 0 {
			return &Integer{Value: new(big.Int).Exp(lb.Value, rb.Value, nil)}
		}
		lf, _ := new(big.Float).SetInt(lb.Value).Float64()
		rf, _ := new(big.Float).SetInt(rb.Value).Float64()
		return &Float{Value: math.Pow(lf, rf)}
	}
	lf, ok := toFloat(base)
	if !ok {
		return in.raiseError(config.SystemErrorClass,
			"unsupported operand types for **: '%s' and '%s'", typeName(base), typeName(exp))
	}
	rf, ok := toFloat(exp)
	if !ok {
		return in.raiseError(config.SystemErrorClass,
			"unsupported operand types for **: '%s' and '%s'", typeName(base), typeName(exp))
	}
	return &Float{Value: math.Pow(lf, rf)}
}

func toFloat(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case *Integer:
		f, _ := new(big.Float).SetInt(v.Value).Float64()
		return f, true
	case *Float:
		return v.Value, true
	}
	return 0, false
}

func (in *Interp) evalSubscript(node *ast.Subscript) Object {
	container := in.evalExpr(node.Container)
	if isRaised(container) {
		return container
	}
	index := in.evalExpr(node.Index)
	if isRaised(index) {
		return index
	}

	idx, isInt := index.(*Integer)
	switch c := container.(type) {
	case *List:
		if !isInt {
			break
		}
		return in.indexSequence(c.Elements, idx)
	case *Tuple:
		if !isInt {
			break
		}
		return in.indexSequence(c.Elements, idx)
	case *String:
		if !isInt {
			break
		}
		i, ok := sequenceIndex(idx, len(c.Value))
		if !ok {
			return in.raiseError(config.IndexErrorClass, "string index out of range")
		}
		return &String{Value: c.Value[i : i+1]}
	}
	return in.raiseError(config.TypeErrorClass,
		"'%s' object is not subscriptable with '%s'", typeName(container), typeName(index))
}

func (in *Interp) indexSequence(elems []Object, idx *Integer) Object {
	i, ok := sequenceIndex(idx, len(elems))
	if !ok {
		return in.raiseError(config.IndexErrorClass, "index out of range")
	}
	return elems[i]
}

// sequenceIndex validates a subscript. Negative and out-of-range indices
// are rejected.
func sequenceIndex(idx *Integer, length int) (int, bool) {
	if !idx.Value.IsInt64() {
		return 0, false
	}
	i := idx.Value.Int64()
	if i < 0 || i >= int64(length) {
		return 0, false
	}
	return int(i), true
}
