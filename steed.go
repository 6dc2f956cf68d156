package steed

import (
	"github.com/xiam/steed/ast"
	"github.com/xiam/steed/parser"
)

// Parse reads all the top-level expressions within the given source code.
func Parse(in []byte) ([]*ast.Node, error) {
	return parser.Parse(in)
}

// Run parses the source code and evaluates every top-level expression on a
// fresh environment. Nothing is evaluated if the source can't be parsed.
func Run(in []byte, opts ...Option) ([]*Value, error) {
	nodes, err := Parse(in)
	if err != nil {
		return nil, err
	}
	return NewContext(opts...).EvalAll(nodes)
}
