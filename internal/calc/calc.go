package calc

import "errors"

// Operator is one of the four binary operators the calculator supports.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

// ErrDivideByZero is returned by Calculate when the divisor is zero.
var ErrDivideByZero = errors.New("division by zero")

// ParseOperator maps a key such as "*" to its Operator.
func ParseOperator(s string) (Operator, bool) {
	switch op := Operator(s); op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return op, true
	}
	return "", false
}

// Symbol returns the glyph used in operation strings.
func (o Operator) Symbol() string {
	switch o {
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return string(o)
	}
}

// Calculate evaluates a op b with native float64 semantics. Division by zero
// is reported as ErrDivideByZero; an unknown operator yields b.
func Calculate(a, b float64, op Operator) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	}
	return b, nil
}
