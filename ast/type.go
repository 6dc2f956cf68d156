package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeSymbol   = nodeTypeValue | 1
	NodeTypeOperator = nodeTypeValue | 2
	NodeTypeNumeric  = nodeTypeValue | 4
	NodeTypeString   = nodeTypeValue | 8

	NodeTypeExpression = nodeTypeVector | 1
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeSymbol:     "symbol",
	NodeTypeOperator:   "operator",
	NodeTypeNumeric:    "numeric",
	NodeTypeString:     "string",
	NodeTypeExpression: "expression",
}
