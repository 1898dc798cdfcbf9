package expr

import "fmt"

// ParseError reports formula text that does not match the grammar.
type ParseError struct {
	Formula string
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d in %q: %s", e.Pos, e.Formula, e.Message)
}

// UndefinedVariableError reports a name that is neither a built-in nor
// present in the evaluation context. Forward references to later ledger
// entries surface as this error.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

// CheckEvaluationError reports a check formula that did not reduce to a
// boolean.
type CheckEvaluationError struct {
	Formula string
}

func (e *CheckEvaluationError) Error() string {
	return fmt.Sprintf("check formula %q does not evaluate to a boolean", e.Formula)
}
