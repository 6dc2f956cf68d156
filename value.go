package steed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xiam/steed/ast"
)

type ValueType uint8

const (
	ValueTypeNil ValueType = iota
	ValueTypeInt
	ValueTypeFloat
	ValueTypeString
	ValueTypeList
	ValueTypeFunction
)

var valueTypes = map[ValueType]string{
	ValueTypeNil:      "nil",
	ValueTypeInt:      "int",
	ValueTypeFloat:    "float",
	ValueTypeString:   "string",
	ValueTypeList:     "list",
	ValueTypeFunction: "function",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is the result of evaluating an expression.
type Value struct {
	v interface{}

	Type ValueType
}

var Nil = &Value{Type: ValueTypeNil}

func NewIntValue(v int64) *Value {
	return &Value{v: v, Type: ValueTypeInt}
}

func NewFloatValue(v float64) *Value {
	return &Value{v: v, Type: ValueTypeFloat}
}

func NewStringValue(v string) *Value {
	return &Value{v: v, Type: ValueTypeString}
}

// NewListValue wraps an unevaluated expression, as returned by quote.
func NewListValue(v *ast.Node) *Value {
	return &Value{v: v, Type: ValueTypeList}
}

func NewFunctionValue(v *Function) *Value {
	return &Value{v: v, Type: ValueTypeFunction}
}

func NewValue(value interface{}) (*Value, error) {
	switch v := value.(type) {
	case nil:
		return Nil, nil
	case int64:
		return NewIntValue(v), nil
	case int:
		return NewIntValue(int64(v)), nil
	case float64:
		return NewFloatValue(v), nil
	case string:
		return NewStringValue(v), nil
	case *ast.Node:
		return NewListValue(v), nil
	case *Function:
		return NewFunctionValue(v), nil
	}
	return Nil, fmt.Errorf("%w: unsupported value %v (%T)", ErrValue, value, value)
}

// raw is like String but doesn't quote strings.
func (v Value) raw() string {
	if v.Type == ValueTypeString {
		return v.v.(string)
	}
	return v.String()
}

func (v Value) String() string {
	switch v.Type {
	case ValueTypeNil:
		return ":nil"
	case ValueTypeInt:
		return strconv.FormatInt(v.v.(int64), 10)
	case ValueTypeFloat:
		return formatFloat(v.v.(float64))
	case ValueTypeString:
		return fmt.Sprintf("%q", v.v.(string))
	case ValueTypeList:
		return string(ast.Encode(v.v.(*ast.Node)))
	case ValueTypeFunction:
		return v.v.(*Function).String()
	}
	return fmt.Sprintf("%v", v.v)
}

// Integral floats keep a trailing ".0" so they can't be told apart from ints.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// Interface returns the underlying Go value: nil, int64, float64, string,
// *ast.Node or *Function.
func (v Value) Interface() interface{} {
	return v.v
}

func (v Value) IsNil() bool {
	return v.Type == ValueTypeNil
}

func (v Value) IsNumeric() bool {
	return v.Type == ValueTypeInt || v.Type == ValueTypeFloat
}

func (v Value) Int() int64 {
	return v.v.(int64)
}

func (v Value) Float64() float64 {
	if v.Type == ValueTypeInt {
		return float64(v.v.(int64))
	}
	return v.v.(float64)
}

func (v Value) Text() string {
	return v.v.(string)
}

func (v Value) List() *ast.Node {
	return v.v.(*ast.Node)
}

func (v Value) Function() *Function {
	return v.v.(*Function)
}
