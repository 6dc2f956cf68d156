package steed

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/steed/ast"
	"github.com/xiam/steed/lexer"
	"github.com/xiam/steed/parser"
)

func evalString(t *testing.T, in string, opts ...Option) []*Value {
	values, err := Run([]byte(in), opts...)
	require.NoError(t, err, in)
	return values
}

func TestEvalArithmetic(t *testing.T) {
	testCases := []struct {
		In  string
		Out interface{}
	}{
		{`(+ 1 23)`, int64(24)},
		{`(- (* 2 5) 5)`, int64(5)},
		{`(* 3 -4)`, int64(-12)},
		{`(- 5 -3)`, int64(8)},
		{`(+ 1.5 2)`, 3.5},
		{`(* 2 2.5)`, 5.0},
		{`(/ 7 2)`, 3.5},
		{`(/ 10 5)`, 2.0},
		{`(% 7 2)`, int64(1)},
		{`(% -7 3)`, int64(2)},
		{`(% 7 -3)`, int64(-2)},
		{`(% 7.5 2)`, 1.5},
		{`(% -1.5 1)`, 0.5},
		{`(+ (+ 1 2) (- 10 (* 2 3)))`, int64(7)},
	}

	for i := range testCases {
		values := evalString(t, testCases[i].In)
		require.Len(t, values, 1)
		assert.Equal(t, testCases[i].Out, values[0].Interface(), testCases[i].In)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	testCases := []string{
		`(/ 1 0)`,
		`(% 1 0)`,
		`(/ 1.5 0.0)`,
		`(% 3 (- 2 2))`,
	}

	for i := range testCases {
		values, err := Run([]byte(testCases[i]))
		assert.Nil(t, values)
		assert.True(t, errors.Is(err, ErrDivisionByZero), testCases[i])
	}
}

func TestEvalArithmeticErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`(+ 1)`, ErrArity},
		{`(+ 1 2 3)`, ErrArity},
		{`(-)`, ErrArity},
		{`(+ "a" 1)`, ErrValue},
		{`(* 2 (quote 1 2))`, ErrValue},
		{`(+ 1.2.3 1)`, ErrValue},
		{`(+ x 1)`, ErrValue},
	}

	for i := range testCases {
		_, err := Run([]byte(testCases[i].In))
		assert.True(t, errors.Is(err, testCases[i].Err), "%s: %v", testCases[i].In, err)
	}
}

func TestEvalAtoms(t *testing.T) {
	values := evalString(t, `1 -2 3.25 "hello world"`)
	require.Len(t, values, 4)

	assert.Equal(t, int64(1), values[0].Interface())
	assert.Equal(t, int64(-2), values[1].Interface())
	assert.Equal(t, 3.25, values[2].Interface())
	assert.Equal(t, "hello world", values[3].Interface())
	assert.Equal(t, ValueTypeString, values[3].Type)
}

func TestEvalEmptyList(t *testing.T) {
	values := evalString(t, `()`)
	require.Len(t, values, 1)
	assert.True(t, values[0].IsNil())
}

func TestEvalQuote(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`(quote (1 2 3))`, `(quote (1 2 3))`},
		{`(' (1 2 3))`, `(' (1 2 3))`},
		{`(quote 1 2 3)`, `(quote 1 2 3)`},
		{`(quote (+ 1 (/ 1 0)))`, `(quote (+ 1 (/ 1 0)))`},
	}

	for i := range testCases {
		values := evalString(t, testCases[i].In)
		require.Len(t, values, 1)
		assert.Equal(t, ValueTypeList, values[0].Type)
		assert.Equal(t, testCases[i].Out, values[0].String())
	}

	{
		nodes, err := parser.Parse([]byte(`(quote 1 2 3)`))
		require.NoError(t, err)

		value, err := NewContext().Eval(nodes[0])
		require.NoError(t, err)
		assert.Same(t, nodes[0], value.List())
	}
}

func TestEvalDef(t *testing.T) {
	ctx := NewContext()

	nodes, err := parser.Parse([]byte(`(def hello-world () (- (* 2 5) 5) (+ 3 3))`))
	require.NoError(t, err)

	value, err := ctx.Eval(nodes[0])
	require.NoError(t, err)
	require.Equal(t, ValueTypeFunction, value.Type)

	fn := value.Function()
	assert.Equal(t, "hello-world", fn.Name)
	assert.Equal(t, "()", string(ast.Encode(fn.Param)))
	require.Len(t, fn.Body, 2)
	assert.Equal(t, "(- (* 2 5) 5)", string(ast.Encode(fn.Body[0])))

	assert.Equal(t, []*Function{fn}, ctx.Environment().Functions())
	assert.Equal(t, "<function hello-world ()>", value.String())
}

func TestEvalDefErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`(def)`, ErrArity},
		{`(def f)`, ErrArity},
		{`(def (f) ())`, ErrValue},
	}

	for i := range testCases {
		_, err := Run([]byte(testCases[i].In))
		assert.True(t, errors.Is(err, testCases[i].Err), "%s: %v", testCases[i].In, err)
	}
}

func TestEvalCall(t *testing.T) {
	values := evalString(t, `
(def hello-world ()
 (- (* 2 5) 5)
 (+ 3 3)
)
(+ 1 23)
(hello-world)
`)
	require.Len(t, values, 3)

	assert.Equal(t, ValueTypeFunction, values[0].Type)
	assert.Equal(t, int64(24), values[1].Interface())
	assert.Equal(t, int64(6), values[2].Interface())
}

func TestEvalCallEvaluatesWholeBody(t *testing.T) {
	_, err := Run([]byte(`(def f () (/ 1 0) 5) (f)`))
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestEvalCallEmptyBody(t *testing.T) {
	values := evalString(t, `(def noop ()) (noop)`)
	require.Len(t, values, 2)
	assert.True(t, values[1].IsNil())
}

func TestEvalCallIgnoresArguments(t *testing.T) {
	ctx := NewContext()

	nodes, err := parser.Parse([]byte(`(def f (x) 42) (f (/ 1 0) "ignored")`))
	require.NoError(t, err)

	values, err := ctx.EvalAll(nodes)
	require.NoError(t, err)
	assert.Equal(t, int64(42), values[1].Interface())

	bindings := ctx.Environment().Bindings()
	require.Len(t, bindings, 1)
	assert.Equal(t, "(x)", string(ast.Encode(bindings[0].Param)))
	assert.Nil(t, bindings[0].Value)
}

func TestEvalBareSymbolParameter(t *testing.T) {
	// A function whose parameter is a bare symbol leaves behind a binding that
	// can be referenced by that name, it's never initialized.
	values := evalString(t, `(def f x 1) (f) (x)`)
	require.Len(t, values, 3)
	assert.Equal(t, int64(1), values[1].Interface())
	assert.True(t, values[2].IsNil())
}

func TestEvalFirstDefinitionWins(t *testing.T) {
	values := evalString(t, `(def f () 1) (def f () 2) (f)`)
	require.Len(t, values, 3)
	assert.Equal(t, int64(1), values[2].Interface())
}

func TestEvalFirstBindingWins(t *testing.T) {
	// The binding named f shadows the function f once it exists.
	values := evalString(t, `(def f f 1) (f) (f)`)
	require.Len(t, values, 3)
	assert.Equal(t, int64(1), values[1].Interface())
	assert.True(t, values[2].IsNil())
}

func TestEvalUnboundIdentifier(t *testing.T) {
	testCases := []string{
		`(undefined-fn)`,
		`(1 2 3)`,
		`("f")`,
		`(def f () (g)) (f)`,
	}

	for i := range testCases {
		values, err := Run([]byte(testCases[i]))
		assert.Nil(t, values)
		assert.True(t, errors.Is(err, ErrUnboundIdentifier), "%s: %v", testCases[i], err)
	}

	{
		_, err := Run([]byte(`(undefined-fn)`))
		assert.EqualError(t, err, `unbound identifier: "undefined-fn"`)
	}
}

func TestEvalNotCallable(t *testing.T) {
	_, err := Run([]byte(`((f) 1)`))
	assert.True(t, errors.Is(err, ErrNotCallable))
}

func TestEvalMaxDepth(t *testing.T) {
	{
		_, err := Run([]byte(`(def loop () (loop)) (loop)`))
		assert.True(t, errors.Is(err, ErrMaxDepth))
	}

	{
		_, err := Run([]byte(`(+ 1 (+ 1 (+ 1 1)))`), WithMaxDepth(2))
		assert.True(t, errors.Is(err, ErrMaxDepth))
	}

	{
		values := evalString(t, `(+ 1 (+ 1 (+ 1 1)))`, WithMaxDepth(3))
		assert.Equal(t, int64(4), values[0].Interface())
	}
}

func TestRunSyntaxError(t *testing.T) {
	var buf bytes.Buffer

	values, err := Run([]byte(`(def f () 1) a @ b`), WithTracer(NewTextTracer(&buf)))
	assert.Nil(t, values)
	assert.True(t, errors.Is(err, lexer.ErrSyntax))

	var syntaxErr *lexer.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, []string{"@"}, syntaxErr.Invalid())

	assert.Empty(t, buf.String())
}

func TestRunStopsOnFirstError(t *testing.T) {
	var buf bytes.Buffer

	_, err := Run([]byte(`(+ 1 1) (/ 1 0) (+ 2 2)`), WithTracer(NewTextTracer(&buf)))
	assert.True(t, errors.Is(err, ErrDivisionByZero))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"== Evaluate S-expression (+ 1 1) that produces 2(int)"}, lines)
}

func TestEvalBuiltinFormat(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`(format "hello")`, "hello"},
		{`(format "{} + {} = {}" 1 2 (+ 1 2))`, "1 + 2 = 3"},
		{`(format "{}!" "world")`, "world!"},
		{`(format "{} {}" 1)`, "1 {}"},
		{`(format "x" 1 2.5)`, "x 1 2.5"},
		{`(format "{}" (quote 1 2))`, "(quote 1 2)"},
	}

	for i := range testCases {
		values := evalString(t, testCases[i].In)
		require.Len(t, values, 1)
		assert.Equal(t, testCases[i].Out, values[0].Interface(), testCases[i].In)
	}

	{
		_, err := Run([]byte(`(format)`))
		assert.True(t, errors.Is(err, ErrArity))
	}

	{
		_, err := Run([]byte(`(format 1 2)`))
		assert.True(t, errors.Is(err, ErrValue))
	}
}

func TestEvalUserDefinitionShadowsBuiltin(t *testing.T) {
	values := evalString(t, `(def format () "mine") (format "{}" 1)`)
	assert.Equal(t, "mine", values[1].Interface())
}

func TestWithBuiltin(t *testing.T) {
	answer := func(ctx *Context, args []*ast.Node) (*Value, error) {
		return NewIntValue(int64(len(args))), nil
	}

	values := evalString(t, `(count a b c)`, WithBuiltin("count", answer))
	assert.Equal(t, int64(3), values[0].Interface())
}
