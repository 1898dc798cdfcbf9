package sheet

import "fmt"

// ReservedNameError reports a declaration whose name collides with a
// built-in function or constant of the formula language.
type ReservedNameError struct {
	Name string
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("name %q is reserved by the formula language", e.Name)
}

// DuplicateNameError reports a declaration reusing an already registered
// name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("name %q is already declared", e.Name)
}

// InvalidNameError reports a declaration whose name is not a valid
// identifier.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("name %q is not a valid identifier", e.Name)
}

// NotEvaluatedError reports a report or compile request against a ledger
// whose results have not been populated by Evaluate.
type NotEvaluatedError struct{}

func (e *NotEvaluatedError) Error() string {
	return "ledger has not been evaluated; call Evaluate before Report"
}

// FormatError reports a format spec that is not a valid numeric format
// directive.
type FormatError struct {
	Step string
	Spec string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("step %q: invalid format spec %q", e.Step, e.Spec)
}

func (e *FormatError) Unwrap() error { return e.Err }

// StepError attributes an evaluation failure to the declared step it
// occurred in.
type StepError struct {
	Step    string
	Kind    StepKind
	Formula string
	Err     error
}

func (e *StepError) Error() string {
	if e.Formula == "" {
		return fmt.Sprintf("%s %q: %v", e.Kind, e.Step, e.Err)
	}
	return fmt.Sprintf("%s %q (%s): %v", e.Kind, e.Step, e.Formula, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// RowError attributes a vectorized evaluation failure to a table row.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
