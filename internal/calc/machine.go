package calc

import (
	"math"
	"strings"
)

// Calculation is a completed "=" evaluation worth recording.
type Calculation struct {
	Expression string
	Result     string
}

// State is the coarse phase of a Machine.
type State int

const (
	// StateIdle: no operator is waiting for its second operand.
	StateIdle State = iota
	// StatePendingOperator: an operator was chosen and no digit typed since.
	StatePendingOperator
	// StateResult: "=" completed and no operator has been chosen since.
	StateResult
	// StateError: the display shows the error sentinel.
	StateError
)

// Machine is the immediate-execution calculator: two operands and one pending
// operator at a time. The zero value is not ready for use; call NewMachine.
type Machine struct {
	display      string
	firstOperand float64
	hasFirst     bool
	operator     Operator
	waiting      bool
	operation    string
}

// NewMachine returns a machine in the idle state showing "0".
func NewMachine() *Machine {
	m := &Machine{}
	m.Reset()
	return m
}

// Display returns the unformatted display text.
func (m *Machine) Display() string { return m.display }

// OperationString returns the running expression. It ends with "=" once a
// calculation has completed.
func (m *Machine) OperationString() string { return m.operation }

// Completed reports whether the operation string holds a finished calculation.
func (m *Machine) Completed() bool { return strings.HasSuffix(m.operation, "=") }

// Operator returns the pending operator, if any.
func (m *Machine) Operator() (Operator, bool) { return m.operator, m.operator != "" }

// FirstOperand returns the left-hand operand of the pending operation.
func (m *Machine) FirstOperand() (float64, bool) { return m.firstOperand, m.hasFirst }

// WaitingForSecondOperand is true between choosing an operator and typing the
// next digit.
func (m *Machine) WaitingForSecondOperand() bool { return m.waiting }

// State reports the machine's current phase.
func (m *Machine) State() State {
	switch {
	case m.IsError():
		return StateError
	case m.waiting:
		return StatePendingOperator
	case m.operator == "" && m.Completed():
		return StateResult
	}
	return StateIdle
}

// IsError reports whether the display shows the error sentinel.
func (m *Machine) IsError() bool { return m.display == ErrorDisplay }

// Value returns the display parsed as a number (NaN for the error sentinel).
func (m *Machine) Value() float64 { return ParseDisplay(m.display) }

// InputDigit handles a digit or decimal point key. Other input is ignored.
func (m *Machine) InputDigit(d string) {
	if len(d) != 1 || (d != "." && (d[0] < '0' || d[0] > '9')) {
		return
	}

	if m.waiting || !IsEditable(m.display) {
		m.display = startOperand(d)
		m.waiting = false
		return
	}

	if m.display == "0" {
		m.display = startOperand(d)
		return
	}
	if d == "." && strings.Contains(m.display, ".") {
		return
	}
	m.display += d
}

func startOperand(d string) string {
	if d == "." {
		return "0."
	}
	return d
}

// HandleOperator selects the next operator. Pressing an operator while one is
// already pending and no digit has been typed just swaps it. Otherwise a
// pending operation is evaluated first and its result chains on.
func (m *Machine) HandleOperator(op Operator) {
	if _, ok := ParseOperator(string(op)); !ok || m.IsError() {
		return
	}

	if m.operator != "" && m.waiting {
		m.operator = op
		return
	}

	input := m.Value()
	if !m.hasFirst {
		m.firstOperand, m.hasFirst = input, true
	} else if m.operator != "" {
		result, err := Calculate(m.firstOperand, input, m.operator)
		if err != nil {
			m.fail()
			return
		}
		m.display = FormatNumber(result)
		m.firstOperand = result
	}

	if m.operation == "" || m.Completed() {
		m.operation = m.display + " " + op.Symbol()
	} else {
		m.operation = m.operation + " " + m.display + " " + op.Symbol()
	}

	m.waiting = true
	m.operator = op
}

// PerformCalculation evaluates the pending operation against the display.
// The returned Calculation is only meaningful when ok is true; division by
// zero leaves "Error" on the display and reports ok=false.
func (m *Machine) PerformCalculation() (calc Calculation, ok bool) {
	if m.operator == "" || m.waiting {
		return Calculation{}, false
	}

	input := m.Value()
	result, err := Calculate(m.firstOperand, input, m.operator)
	if err != nil {
		m.fail()
		return Calculation{}, false
	}

	m.display = FormatNumber(result)
	m.operation = m.operation + " " + FormatNumber(input) + " ="
	m.clearPending()
	return Calculation{Expression: m.operation, Result: m.display}, true
}

// Backspace removes the last character of the current operand. Displays
// that cannot be edited (Error, Infinity, exponent forms) reset to "0".
func (m *Machine) Backspace() {
	if m.waiting {
		return
	}
	if !IsEditable(m.display) {
		m.display = "0"
		return
	}
	m.display = m.display[:len(m.display)-1]
	if m.display == "" || m.display == "-" {
		m.display = "0"
	}
}

// Percentage divides the display by 100. Pending operator state is untouched.
func (m *Machine) Percentage() {
	if m.display == "0" || m.IsError() {
		return
	}
	m.display = FormatNumber(m.Value() / 100)
}

// Reset returns the machine to its initial idle state.
func (m *Machine) Reset() {
	m.display = "0"
	m.operation = ""
	m.clearPending()
}

// SetDisplay replaces the display with pasted text. Only plain decimal
// literals are accepted; a bare "" or "-" becomes "0".
func (m *Machine) SetDisplay(text string) bool {
	text = strings.TrimSpace(text)
	if !IsEditable(text) {
		return false
	}
	switch text {
	case "", "-":
		text = "0"
	case ".":
		text = "0."
	case "-.":
		text = "-0."
	}
	m.display = text
	m.waiting = false
	return true
}

// SetValue shows v on the display, as memory recall does.
func (m *Machine) SetValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	m.display = FormatNumber(v)
	m.waiting = false
}

// Restore shows a past calculation: its result on the display and its
// expression as the operation string.
func (m *Machine) Restore(expression, result string) {
	if expression == "" || result == "" {
		return
	}
	m.display = result
	m.operation = expression
}

func (m *Machine) fail() {
	m.display = ErrorDisplay
	m.operation = ""
	m.clearPending()
}

func (m *Machine) clearPending() {
	m.firstOperand, m.hasFirst = 0, false
	m.operator = ""
	m.waiting = false
}
