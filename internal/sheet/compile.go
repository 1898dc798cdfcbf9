package sheet

import (
	"fmt"

	"github.com/vk/calcsheet/internal/expr"
	"github.com/vk/calcsheet/internal/quantity"
	"github.com/vk/calcsheet/internal/table"
)

// VectorFunc applies one compiled equation across a table, returning one
// result per row.
type VectorFunc func(*table.Table) ([]quantity.Quantity, error)

// Compile turns a registered equation into a reusable function over
// columnar input. Each free variable of the formula resolves, per call,
// to a matching table column if one exists, otherwise to the builder's
// value for that name as captured at compile time. The returned function
// holds its own snapshot and stays valid regardless of later builder use.
func (b *Builder) Compile(name string) (VectorFunc, error) {
	var step *Step
	for _, s := range b.steps {
		if s.Kind == KindEquation && s.Name == name {
			step = s
			break
		}
	}
	if step == nil {
		return nil, fmt.Errorf("no equation named %q", name)
	}

	tree, err := b.treeFor(step)
	if err != nil {
		return nil, err
	}
	freeVars := expr.FreeVars(tree)

	snapshot := make(map[string]quantity.Quantity, len(b.values))
	for k, v := range b.values {
		snapshot[k] = v
	}
	target := step.TargetUnit

	return func(t *table.Table) ([]quantity.Quantity, error) {
		rows := t.Rows()
		out := make([]quantity.Quantity, 0, rows)
		for row := 0; row < rows; row++ {
			rowCtx := make(expr.Context, len(freeVars))
			for _, v := range freeVars {
				if q, ok := t.Value(v, row); ok {
					rowCtx[v] = q
					continue
				}
				if q, ok := snapshot[v]; ok {
					rowCtx[v] = q
					continue
				}
				return nil, &expr.UndefinedVariableError{Name: v}
			}
			val, err := expr.Evaluate(tree, rowCtx)
			if err != nil {
				return nil, &RowError{Row: row, Err: err}
			}
			if val.IsBool {
				return nil, &RowError{Row: row, Err: fmt.Errorf("formula yields a boolean, not a quantity")}
			}
			result := val.Quantity
			if target != nil {
				result, err = result.ConvertTo(*target)
				if err != nil {
					return nil, &RowError{Row: row, Err: err}
				}
			}
			out = append(out, result)
		}
		return out, nil
	}, nil
}
