package expr

import (
	"fmt"

	"github.com/vk/calcsheet/internal/quantity"
)

// Context is the name→Quantity binding a formula evaluates against. It is
// built from all earlier ledger results plus registered parameters.
type Context map[string]quantity.Quantity

// Value is the outcome of evaluating a formula: a Quantity for arithmetic
// trees, a boolean for a top-level comparison.
type Value struct {
	Quantity quantity.Quantity
	Bool     bool
	IsBool   bool
}

// Evaluate walks the tree bottom-up against ctx. Arithmetic roots return
// a Quantity value; a Compare root returns a boolean value.
func Evaluate(root Node, ctx Context) (Value, error) {
	if cmp, ok := root.(*Compare); ok {
		l, err := evalQuantity(cmp.L, ctx)
		if err != nil {
			return Value{}, err
		}
		r, err := evalQuantity(cmp.R, ctx)
		if err != nil {
			return Value{}, err
		}
		b, err := l.Compare(cmp.Op, r)
		if err != nil {
			return Value{}, err
		}
		return Value{Bool: b, IsBool: true}, nil
	}
	q, err := evalQuantity(root, ctx)
	if err != nil {
		return Value{}, err
	}
	return Value{Quantity: q}, nil
}

func evalQuantity(n Node, ctx Context) (quantity.Quantity, error) {
	switch e := n.(type) {
	case *NumberLit:
		return quantity.FromFloat(e.Value), nil
	case *Ident:
		if q, ok := ctx[e.Name]; ok {
			return q, nil
		}
		if q, ok := builtinConsts[e.Name]; ok {
			return q, nil
		}
		return quantity.Quantity{}, &UndefinedVariableError{Name: e.Name}
	case *Unary:
		x, err := evalQuantity(e.X, ctx)
		if err != nil {
			return quantity.Quantity{}, err
		}
		return x.Neg(), nil
	case *Binary:
		l, err := evalQuantity(e.L, ctx)
		if err != nil {
			return quantity.Quantity{}, err
		}
		r, err := evalQuantity(e.R, ctx)
		if err != nil {
			return quantity.Quantity{}, err
		}
		switch e.Op {
		case "+":
			return l.Add(r)
		case "-":
			return l.Sub(r)
		case "*":
			return l.Mul(r), nil
		case "/":
			return l.Div(r)
		case "**":
			return l.Pow(r)
		default:
			return quantity.Quantity{}, fmt.Errorf("unsupported operator %q", e.Op)
		}
	case *Call:
		fn, ok := builtinFuncs[e.Func]
		if !ok {
			return quantity.Quantity{}, &UndefinedVariableError{Name: e.Func}
		}
		args := make([]quantity.Quantity, len(e.Args))
		for i, argNode := range e.Args {
			arg, err := evalQuantity(argNode, ctx)
			if err != nil {
				return quantity.Quantity{}, err
			}
			args[i] = arg
		}
		return fn(args)
	case *Compare:
		// The grammar confines comparisons to the formula root.
		return quantity.Quantity{}, fmt.Errorf("comparison not allowed inside an arithmetic expression")
	default:
		return quantity.Quantity{}, fmt.Errorf("unsupported node %T", n)
	}
}
