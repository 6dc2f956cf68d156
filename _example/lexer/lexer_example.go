package main

import (
	"fmt"
	"log"

	"github.com/xiam/steed/lexer"
)

func main() {
	input := `
		(def greet ()
			(format "{} + {} = {}" 2 -3.5 (+ 2 -3.5))
		)
		(greet)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
