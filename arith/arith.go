// Package arith provides the four basic arithmetic operators over
// dynamically typed operands.
//
// Operands may be any Go integer or floating point value. A nil or
// non-numeric operand never fails; it turns the result into NaN, just as NaN
// propagates through float64 arithmetic. The single failure is division by
// a numeric zero, which always returns ErrDivideByZero.
package arith

import (
	"errors"
	"math"

	"github.com/paccolamano/lazykit/utility"
)

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("Cannot divide by zero") //nolint:staticcheck // ST1005: fixed message

// Add returns a + b.
func Add(a, b any) float64 {
	return apply(a, b, func(x, y float64) float64 { return x + y })
}

// Subtract returns a - b.
func Subtract(a, b any) float64 {
	return apply(a, b, func(x, y float64) float64 { return x - y })
}

// Multiply returns a * b.
func Multiply(a, b any) float64 {
	return apply(a, b, func(x, y float64) float64 { return x * y })
}

// Divide returns a / b. A numeric zero divisor, negative zero included,
// yields ErrDivideByZero whatever a is.
func Divide(a, b any) (float64, error) {
	if d, ok := utility.Float64(b); ok && d == 0 {
		return 0, ErrDivideByZero
	}
	return apply(a, b, func(x, y float64) float64 { return x / y }), nil
}

func apply(a, b any, op func(x, y float64) float64) float64 {
	x, ok := utility.Float64(a)
	if !ok {
		return math.NaN()
	}
	y, ok := utility.Float64(b)
	if !ok {
		return math.NaN()
	}
	return op(x, y)
}
