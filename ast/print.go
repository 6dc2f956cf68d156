package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())

	if n.IsVector() {
		fmt.Fprintf(w, "(%v)\n", n.Token())
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}
		return
	}

	fmt.Fprintf(w, "%s (%v)\n", n.Text(), n.Token())
}

// Encode transforms a node into its text representation. Reading the encoded
// text back yields an equal tree.
func Encode(n *Node) []byte {
	return []byte(encodeNode(n))
}

// EncodeAll transforms a sequence of sibling nodes into text, separated by
// spaces.
func EncodeAll(nodes []*Node) []byte {
	chunks := make([]string, 0, len(nodes))
	for i := range nodes {
		chunks = append(chunks, encodeNode(nodes[i]))
	}
	return []byte(strings.Join(chunks, " "))
}

func encodeNode(n *Node) string {
	if n == nil {
		return ":nil"
	}
	if n.IsVector() {
		return "(" + string(EncodeAll(n.List())) + ")"
	}
	return n.Text()
}
