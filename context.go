package steed

import (
	"fmt"
	"log"

	"github.com/xiam/steed/ast"
)

const defaultMaxDepth = 1000

// Builtin is a function implemented in Go. It receives the unevaluated
// arguments of the call and evaluates them as it sees fit.
type Builtin func(ctx *Context, args []*ast.Node) (*Value, error)

// Option configures a Context.
type Option func(*Context)

// WithTracer sets the sink for the trace records emitted after evaluating
// each expression.
func WithTracer(t Tracer) Option {
	return func(ctx *Context) {
		ctx.tracer = t
	}
}

// WithBuiltin registers or replaces a builtin function.
func WithBuiltin(name string, fn Builtin) Option {
	return func(ctx *Context) {
		ctx.builtins[name] = fn
	}
}

// WithMaxDepth limits how deep expressions and function calls may nest.
func WithMaxDepth(depth int) Option {
	return func(ctx *Context) {
		ctx.maxDepth = depth
	}
}

// WithLogger sets a logger for debugging output.
func WithLogger(l *log.Logger) Option {
	return func(ctx *Context) {
		ctx.logger = l
	}
}

// Context evaluates expressions against the Environment of one run.
type Context struct {
	env *Environment

	tracer   Tracer
	builtins map[string]Builtin
	logger   *log.Logger

	depth    int
	maxDepth int
}

func NewContext(opts ...Option) *Context {
	ctx := &Context{
		env:      NewEnvironment(),
		tracer:   discardTracer{},
		builtins: map[string]Builtin{},
		maxDepth: defaultMaxDepth,
	}
	for name, fn := range defaultBuiltins {
		ctx.builtins[name] = fn
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

func (ctx *Context) Environment() *Environment {
	return ctx.env
}

func (ctx *Context) String() string {
	return fmt.Sprintf("[%v]: depth %d (%p)", ctx.env.ID(), ctx.depth, ctx)
}

func (ctx *Context) logf(format string, args ...interface{}) {
	if ctx.logger == nil {
		return
	}
	ctx.logger.Printf("%v: "+format, append([]interface{}{ctx}, args...)...)
}

func (ctx *Context) trace(expr *ast.Node, value *Value) error {
	return ctx.tracer.Trace(ctx.env, expr, value)
}

func (ctx *Context) enter() error {
	if ctx.maxDepth > 0 && ctx.depth >= ctx.maxDepth {
		return fmt.Errorf("%w (%d)", ErrMaxDepth, ctx.maxDepth)
	}
	ctx.depth++
	return nil
}

func (ctx *Context) leave() {
	ctx.depth--
}
