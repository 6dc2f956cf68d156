package steed

import (
	"fmt"
	"strings"

	"github.com/xiam/steed/ast"
)

const placeholder = "{}"

var defaultBuiltins = map[string]Builtin{
	"format": builtinFormat,
}

// builtinFormat replaces each "{}" in its first argument with the next
// argument. Arguments left over are appended, separated by spaces.
func builtinFormat(ctx *Context, args []*ast.Node) (*Value, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%w: format expects at least 1 argument", ErrArity)
	}

	values := make([]*Value, 0, len(args))
	for i := range args {
		value, err := ctx.Eval(args[i])
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	if values[0].Type != ValueTypeString {
		return nil, fmt.Errorf("%w: format string must be a string, got %v", ErrValue, values[0].Type)
	}

	var buf strings.Builder
	tmpl, rest := values[0].Text(), values[1:]
	for len(rest) > 0 {
		i := strings.Index(tmpl, placeholder)
		if i < 0 {
			break
		}
		buf.WriteString(tmpl[:i])
		buf.WriteString(rest[0].raw())
		tmpl, rest = tmpl[i+len(placeholder):], rest[1:]
	}
	buf.WriteString(tmpl)
	for i := range rest {
		buf.WriteString(" ")
		buf.WriteString(rest[i].raw())
	}

	return NewStringValue(buf.String()), nil
}
