package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/steed/lexer"
)

var errNotAVector = errors.New("nodes of type value can't accept children")

// Node represents leaf of the AST
type Node struct {
	p *Node

	nt  NodeType
	tok *lexer.Token

	text     string
	children []*Node
}

func newNode(nt NodeType, tok *lexer.Token) *Node {
	n := &Node{
		nt:  nt,
		tok: tok,
	}
	if tok != nil {
		n.text = tok.Text()
	}
	return n
}

// NewAtom creates and returns an orphaned node based on the given token. The
// raw text of the token is kept as is, it's only interpreted on evaluation.
func NewAtom(tok *lexer.Token) *Node {
	return newNode(atomType(tok.Type()), tok)
}

// NewExpression creates and returns a node of type "expression"
func NewExpression(tok *lexer.Token) *Node {
	n := newNode(NodeTypeExpression, tok)
	n.text = ""
	n.children = []*Node{}
	return n
}

func atomType(tt lexer.TokenType) NodeType {
	switch {
	case tt == lexer.TokenNumeric:
		return NodeTypeNumeric
	case tt == lexer.TokenString:
		return NodeTypeString
	case tt.IsOperator(), tt == lexer.TokenQuote:
		return NodeTypeOperator
	}
	return NodeTypeSymbol
}

// PushAtom appends a new atom to the node
func (n *Node) PushAtom(tok *lexer.Token) (*Node, error) {
	node := NewAtom(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushExpression appends a new expression to the node
func (n *Node) PushExpression(tok *lexer.Token) (*Node, error) {
	node := NewExpression(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Text returns the raw text of an atom, or an empty string for expressions.
func (n Node) Text() string {
	return n.text
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.children
}

// Len returns the number of children of the node
func (n *Node) Len() int {
	return len(n.children)
}

// Head returns the first child of an expression, or nil if there is none.
func (n *Node) Head() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n Node) String() string {
	if n.IsVector() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.text)
}

// Push appends a child node to a parent node of type "expression".
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.children = append(n.children, node)
		node.p = n
		return nil
	}
	return errNotAVector
}

// IsValue returns true if the node is an atom
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type expression
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// IsSymbol returns true if the node is an atom whose text is the given name.
func (n *Node) IsSymbol(name string) bool {
	return n.IsValue() && n.text == name
}

// Parent returns the expression that contains the node
func (n *Node) Parent() *Node {
	return n.p
}

// Equal reports whether two trees have the same shape and atom text.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsVector() != b.IsVector() {
		return false
	}
	if a.IsValue() {
		return a.text == b.text
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
