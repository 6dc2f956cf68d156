package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/steed/ast"
	"github.com/xiam/steed/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsVector() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		children := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), node.Text(), node.Type())
}

func main() {
	input := `(def hello-world () (- (* 2 5) 5) (+ 3 3)) (' (1 2 "three")) (hello-world)`

	nodes, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for i := range nodes {
		printTree(nodes[i])
	}
}
