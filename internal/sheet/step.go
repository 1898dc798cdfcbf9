package sheet

import (
	"github.com/vk/calcsheet/internal/expr"
	"github.com/vk/calcsheet/internal/quantity"
)

// StepKind distinguishes the three kinds of ledger entries.
type StepKind int

const (
	// KindParam is a declared constant parameter.
	KindParam StepKind = iota
	// KindEquation is a formula producing a quantity.
	KindEquation
	// KindCheck is a formula producing a pass/fail status.
	KindCheck
)

func (k StepKind) String() string {
	switch k {
	case KindParam:
		return "param"
	case KindEquation:
		return "equation"
	case KindCheck:
		return "check"
	default:
		return "unknown"
	}
}

// SymbolEntry is one row of the symbol registry: how a declared name is
// presented in reports.
type SymbolEntry struct {
	Name   string
	Symbol string
	Desc   string
	Hidden bool
	Format string
}

// Step is one ledger entry. A step is created by a declaration, mutated
// exactly once by Evaluate (result attached), and never removed.
type Step struct {
	Kind    StepKind
	Name    string
	Formula string

	// Value is the declared quantity for a param step.
	Value quantity.Quantity
	// TargetUnit, when set on an equation step, converts the result.
	TargetUnit *quantity.Unit

	// Desc applies to check steps; params and equations carry their
	// description in the symbol registry.
	Desc string

	tree      expr.Node
	result    quantity.Quantity
	passed    bool
	evaluated bool
}

// Result returns the step's computed quantity and whether Evaluate has
// populated it. For check steps the quantity is meaningless; use Passed.
func (s *Step) Result() (quantity.Quantity, bool) {
	return s.result, s.evaluated
}

// Passed reports a check step's status. The second return value is false
// until Evaluate has run.
func (s *Step) Passed() (bool, bool) {
	return s.passed, s.evaluated
}
