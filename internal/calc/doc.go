// Package calc implements the four-function arithmetic engine, number
// rendering and the calculator state machine.
//
// # State machine
//
// Machine tracks the display text, the first operand, the pending operator
// and whether the next digit starts a new operand. State summarizes these
// as Idle, PendingOperator, Result or Error.
//
// Operators chain: pressing an operator with a pending one evaluates the
// pair first, so "5 + 3 ×" shows 8. Pressing a second operator before any
// digit replaces the first without evaluating.
//
// # Rendering
//
// FormatNumber renders float64 values the way the display shows them:
// shortest round-trip digits, with exponent notation for very large or
// very small magnitudes. Format applies digit grouping to the integer part
// of display text.
package calc
