package parser

import (
	"errors"
)

var (
	ErrUnmatchedParenthesis       = errors.New("must close with )")
	ErrUnexpectedCloseParenthesis = errors.New("unexpected )")
	ErrUnexpectedToken            = errors.New("unexpected token")
)
