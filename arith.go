package steed

import (
	"fmt"
	"math"
)

type arithmeticFunc func(a, b *Value) (*Value, error)

var arithmetic = map[string]arithmeticFunc{
	"+": numeric(func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }),
	"-": numeric(func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }),
	"*": numeric(func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }),
	"/": divide,
	"%": modulo,
}

func operands(a, b *Value) error {
	if !a.IsNumeric() {
		return fmt.Errorf("%w: operand %v is not a number", ErrValue, a)
	}
	if !b.IsNumeric() {
		return fmt.Errorf("%w: operand %v is not a number", ErrValue, b)
	}
	return nil
}

func bothInt(a, b *Value) bool {
	return a.Type == ValueTypeInt && b.Type == ValueTypeInt
}

func isZero(v *Value) bool {
	if v.Type == ValueTypeInt {
		return v.Int() == 0
	}
	return v.Float64() == 0
}

func numeric(intOp func(a, b int64) int64, floatOp func(a, b float64) float64) arithmeticFunc {
	return func(a, b *Value) (*Value, error) {
		if err := operands(a, b); err != nil {
			return nil, err
		}
		if bothInt(a, b) {
			return NewIntValue(intOp(a.Int(), b.Int())), nil
		}
		return NewFloatValue(floatOp(a.Float64(), b.Float64())), nil
	}
}

// divide always produces a float, 7 / 2 is 3.5.
func divide(a, b *Value) (*Value, error) {
	if err := operands(a, b); err != nil {
		return nil, err
	}
	if isZero(b) {
		return nil, fmt.Errorf("%w: %v / %v", ErrDivisionByZero, a, b)
	}
	return NewFloatValue(a.Float64() / b.Float64()), nil
}

// modulo takes the sign of the divisor, -7 % 3 is 2.
func modulo(a, b *Value) (*Value, error) {
	if err := operands(a, b); err != nil {
		return nil, err
	}
	if isZero(b) {
		return nil, fmt.Errorf("%w: %v %% %v", ErrDivisionByZero, a, b)
	}
	if bothInt(a, b) {
		x, y := a.Int(), b.Int()
		r := x % y
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		return NewIntValue(r), nil
	}
	x, y := a.Float64(), b.Float64()
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return NewFloatValue(r), nil
}
