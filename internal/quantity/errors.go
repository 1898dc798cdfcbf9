package quantity

import "fmt"

// UnitMismatchError is returned when an operation requires commensurate
// dimensions and the two operands do not share one, or when a conversion
// targets an incommensurate unit.
type UnitMismatchError struct {
	Op    string
	Left  string
	Right string
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("unit mismatch: cannot %s %q and %q", e.Op, e.Left, e.Right)
}

// DivisionByZeroError is returned when the divisor's magnitude is zero.
type DivisionByZeroError struct {
	Dividend string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: %s / 0", e.Dividend)
}

// UnknownUnitError is returned by the unit parser for a symbol that is not
// in the built-in unit table, with or without an SI prefix.
type UnknownUnitError struct {
	Symbol string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Symbol)
}
