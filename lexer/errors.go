package lexer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSyntax             = errors.New("syntax error")
	ErrUnterminatedString = errors.New("unterminated string")
)

// SyntaxError reports every character that did not match a lexical class.
type SyntaxError struct {
	Tokens []Token
}

// Invalid returns the offending characters in the order they were found.
func (e *SyntaxError) Invalid() []string {
	chars := make([]string, 0, len(e.Tokens))
	for i := range e.Tokens {
		chars = append(chars, e.Tokens[i].Text())
	}
	return chars
}

func (e *SyntaxError) Error() string {
	quoted := make([]string, 0, len(e.Tokens))
	for _, s := range e.Invalid() {
		quoted = append(quoted, fmt.Sprintf("%q", s))
	}
	return fmt.Sprintf("%v: found invalid content [%s]", ErrSyntax, strings.Join(quoted, ", "))
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
