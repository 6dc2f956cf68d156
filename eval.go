package steed

import (
	"fmt"

	"github.com/xiam/steed/ast"
)

const (
	keywordQuote      = "quote"
	keywordQuoteShort = "'"
	keywordDef        = "def"
)

// EvalAll evaluates top-level expressions in order and returns their values.
// It stops at the first error.
func (ctx *Context) EvalAll(nodes []*ast.Node) ([]*Value, error) {
	values := make([]*Value, 0, len(nodes))
	for i := range nodes {
		value, err := ctx.Eval(nodes[i])
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// Eval evaluates a single expression.
func (ctx *Context) Eval(node *ast.Node) (*Value, error) {
	if node.IsValue() {
		return evalAtom(node)
	}

	if err := ctx.enter(); err != nil {
		return nil, err
	}
	defer ctx.leave()

	value, err := ctx.evalExpression(node)
	if err != nil {
		return nil, err
	}

	if err := ctx.trace(node, value); err != nil {
		return nil, err
	}
	return value, nil
}

func evalAtom(node *ast.Node) (*Value, error) {
	literal, err := node.Literal()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValue, err)
	}
	return NewValue(literal)
}

func (ctx *Context) evalExpression(node *ast.Node) (*Value, error) {
	head := node.Head()
	if head == nil {
		return Nil, nil
	}

	if head.IsVector() {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, ast.Encode(head))
	}

	if fn, ok := arithmetic[head.Text()]; ok && head.Type() == ast.NodeTypeOperator {
		return ctx.evalArithmetic(fn, node)
	}

	switch head.Text() {
	case keywordQuote, keywordQuoteShort:
		return NewListValue(node), nil
	case keywordDef:
		return ctx.evalDef(node)
	}

	return ctx.evalCall(node)
}

func (ctx *Context) evalArithmetic(fn arithmeticFunc, node *ast.Node) (*Value, error) {
	args := node.List()[1:]
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: %s expects 2 operands, got %d", ErrArity, node.Head().Text(), len(args))
	}

	a, err := ctx.Eval(args[0])
	if err != nil {
		return nil, err
	}
	b, err := ctx.Eval(args[1])
	if err != nil {
		return nil, err
	}

	return fn(a, b)
}

func (ctx *Context) evalDef(node *ast.Node) (*Value, error) {
	list := node.List()
	if len(list) < 3 {
		return nil, fmt.Errorf("%w: def expects a name and a parameter list", ErrArity)
	}

	name := list[1]
	if !name.IsValue() {
		return nil, fmt.Errorf("%w: function name must be an atom, got %s", ErrValue, ast.Encode(name))
	}

	fn := &Function{
		Name:  name.Text(),
		Param: list[2],
		Body:  list[3:],
	}
	ctx.env.Define(fn)

	ctx.logf("def %v", fn)
	return NewFunctionValue(fn), nil
}

// evalCall resolves the head of the expression as a variable, then as a user
// defined function and finally as a builtin. User defined functions ignore the
// arguments given at the call site.
func (ctx *Context) evalCall(node *ast.Node) (*Value, error) {
	name := node.Head().Text()

	if value, ok := ctx.env.Lookup(name); ok {
		return value, nil
	}

	if fn, ok := ctx.env.Function(name); ok {
		ctx.env.Bind(fn.Param, nil)
		ctx.logf("call %v", fn)

		ret := Nil
		for i := range fn.Body {
			value, err := ctx.Eval(fn.Body[i])
			if err != nil {
				return nil, err
			}
			ret = value
		}
		return ret, nil
	}

	if builtin, ok := ctx.builtins[name]; ok {
		return builtin(ctx, node.List()[1:])
	}

	return nil, fmt.Errorf("%w: %q", ErrUnboundIdentifier, name)
}
