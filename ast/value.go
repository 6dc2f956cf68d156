package ast

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidLiteral is returned when an atom can't be read as a literal value.
var ErrInvalidLiteral = errors.New("invalid literal")

// Literal interprets the raw text of an atom. It tries an integer first, then
// a floating point number and finally a double quoted string, in which case
// the quotes are stripped. The returned value is an int64, a float64 or a
// string.
func (n *Node) Literal() (interface{}, error) {
	if !n.IsValue() {
		return nil, fmt.Errorf("%w: %v is not an atom", ErrInvalidLiteral, n)
	}
	return parseLiteral(n.text)
}

func parseLiteral(text string) (interface{}, error) {
	if looksNumeric(text) {
		return parseNumeric(text)
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidLiteral, text)
}

// ParseFloat alone would also accept words like "inf" or "NaN".
func looksNumeric(text string) bool {
	if text == "" {
		return false
	}
	switch c := text[0]; {
	case c >= '0' && c <= '9', c == '-', c == '.':
		return true
	}
	return false
}

func parseNumeric(text string) (interface{}, error) {
	if i64, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i64, nil
	}
	if f64, err := strconv.ParseFloat(text, 64); err == nil {
		return f64, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidLiteral, text)
}
