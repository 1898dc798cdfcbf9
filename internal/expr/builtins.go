package expr

import (
	"fmt"
	"math"

	"github.com/vk/calcsheet/internal/quantity"
)

// builtinFunc evaluates one allow-listed function call.
type builtinFunc func(args []quantity.Quantity) (quantity.Quantity, error)

func dimensionlessFn(name string, fn func(float64) float64) builtinFunc {
	return func(args []quantity.Quantity) (quantity.Quantity, error) {
		if len(args) != 1 {
			return quantity.Quantity{}, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
		}
		if !args[0].IsDimensionless() {
			return quantity.Quantity{}, fmt.Errorf("%s expects a dimensionless argument, got %s", name, args[0])
		}
		return quantity.FromFloat(fn(args[0].SIValue())), nil
	}
}

var builtinFuncs = map[string]builtinFunc{
	"sqrt": func(args []quantity.Quantity) (quantity.Quantity, error) {
		if len(args) != 1 {
			return quantity.Quantity{}, fmt.Errorf("sqrt expects 1 argument, got %d", len(args))
		}
		return args[0].Pow(quantity.FromFloat(0.5))
	},
	"sin": dimensionlessFn("sin", math.Sin),
	"cos": dimensionlessFn("cos", math.Cos),
	"tan": dimensionlessFn("tan", math.Tan),
	"log": dimensionlessFn("log", math.Log),
	"exp": dimensionlessFn("exp", math.Exp),
}

var builtinConsts = map[string]quantity.Quantity{
	"pi": quantity.FromFloat(math.Pi),
}

func isBuiltinFunc(name string) bool {
	_, ok := builtinFuncs[name]
	return ok
}

// BuiltinFuncs lists the callable function names in a stable order.
func BuiltinFuncs() []string {
	return []string{"sqrt", "sin", "cos", "tan", "log", "exp"}
}

// IsReserved reports whether a name collides with a built-in function or
// constant and therefore may not be declared as a variable.
func IsReserved(name string) bool {
	if _, ok := builtinFuncs[name]; ok {
		return true
	}
	_, ok := builtinConsts[name]
	return ok
}
