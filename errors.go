package steed

import (
	"errors"
)

var (
	ErrValue             = errors.New("value error")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrUnboundIdentifier = errors.New("unbound identifier")
	ErrArity             = errors.New("wrong number of arguments")
	ErrNotCallable       = errors.New("not callable")
	ErrMaxDepth          = errors.New("maximum recursion depth exceeded")
)
