package main

import (
	"log"

	"github.com/xiam/steed/ast"
	"github.com/xiam/steed/parser"
)

func main() {
	input := `(def hello-world () (- (* 2 5) 5) (+ 3 3)) (' (1 2 "three")) (hello-world)`

	nodes, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for i := range nodes {
		ast.Print(nodes[i])
	}
}
