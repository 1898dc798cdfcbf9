package sheet

import (
	"context"
	"fmt"

	"github.com/vk/calcsheet/internal/ctxlog"
	"github.com/vk/calcsheet/internal/expr"
)

// Evaluate walks the ledger once in insertion order, attaching a result
// to every step and feeding each result into the context available to
// later steps. A failure aborts at the failing step: earlier results stay
// attached, later steps stay unevaluated. Repeated calls with no
// intervening declarations produce identical results.
func (b *Builder) Evaluate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	// Params are available to every formula regardless of declaration
	// order; equation results only become visible once their step has run.
	evalCtx := make(expr.Context, len(b.values))
	for _, s := range b.steps {
		if s.Kind == KindParam {
			evalCtx[s.Name] = s.Value
		}
	}

	for _, s := range b.steps {
		switch s.Kind {
		case KindParam:
			s.result = s.Value
			s.evaluated = true

		case KindEquation:
			if err := b.evalEquation(s, evalCtx); err != nil {
				logger.Error("Equation evaluation failed.", "step", s.Name, "formula", s.Formula, "error", err)
				return &StepError{Step: s.Name, Kind: s.Kind, Formula: s.Formula, Err: err}
			}
			evalCtx[s.Name] = s.result
			b.values[s.Name] = s.result
			logger.Debug("Equation evaluated.", "step", s.Name, "result", s.result.String())

		case KindCheck:
			if err := b.evalCheck(s, evalCtx); err != nil {
				logger.Error("Check evaluation failed.", "step", s.Name, "formula", s.Formula, "error", err)
				return &StepError{Step: s.Name, Kind: s.Kind, Formula: s.Formula, Err: err}
			}
			logger.Debug("Check evaluated.", "step", s.Name, "passed", s.passed)
		}
	}

	b.evaluated = true
	return nil
}

func (b *Builder) evalEquation(s *Step, evalCtx expr.Context) error {
	tree, err := b.treeFor(s)
	if err != nil {
		return err
	}
	val, err := expr.Evaluate(tree, evalCtx)
	if err != nil {
		return err
	}
	if val.IsBool {
		return fmt.Errorf("equation formula yields a boolean, not a quantity")
	}
	result := val.Quantity
	if s.TargetUnit != nil {
		result, err = result.ConvertTo(*s.TargetUnit)
		if err != nil {
			return err
		}
	}
	s.result = result
	s.evaluated = true
	return nil
}

func (b *Builder) evalCheck(s *Step, evalCtx expr.Context) error {
	tree, err := b.treeFor(s)
	if err != nil {
		return err
	}
	val, err := expr.Evaluate(tree, evalCtx)
	if err != nil {
		return err
	}
	if !val.IsBool {
		return &expr.CheckEvaluationError{Formula: s.Formula}
	}
	s.passed = val.Bool
	s.evaluated = true
	return nil
}

// treeFor parses a step's formula once and caches the tree on the step,
// so the evaluator, the renderer and the compiler all share it.
func (b *Builder) treeFor(s *Step) (expr.Node, error) {
	if s.tree != nil {
		return s.tree, nil
	}
	tree, err := expr.Parse(s.Formula)
	if err != nil {
		return nil, err
	}
	s.tree = tree
	return tree, nil
}
