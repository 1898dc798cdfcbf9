// Package latex renders parsed formula trees to LaTeX. Rendering is a
// pure syntax transform over the same tree the evaluator walks; it never
// computes a value.
package latex

import (
	"fmt"
	"strings"

	"github.com/vk/calcsheet/internal/expr"
)

// SymbolLookup resolves a variable name to its display symbol. The second
// return value is false when the name has no registered symbol, in which
// case the raw name is rendered.
type SymbolLookup func(name string) (string, bool)

// operator precedence levels, used to decide parenthesization.
const (
	precAdd = iota + 1
	precMul
	precUnary
)

// Render pretty-prints a formula tree. Division renders as \frac,
// exponentiation as a superscript, multiplication as \cdot, and built-in
// calls as their typeset commands.
func Render(root expr.Node, symbols SymbolLookup) string {
	return render(root, symbols, precAdd)
}

func render(n expr.Node, symbols SymbolLookup, outer int) string {
	switch e := n.(type) {
	case *expr.NumberLit:
		return e.Text
	case *expr.Ident:
		if e.Name == "pi" {
			return `\pi`
		}
		if sym, ok := symbols(e.Name); ok {
			return sym
		}
		return e.Name
	case *expr.Unary:
		inner := render(e.X, symbols, precUnary)
		return paren("-"+inner, outer > precUnary)
	case *expr.Binary:
		switch e.Op {
		case "/":
			// \frac carries its own grouping; no parens needed at any level.
			return fmt.Sprintf(`\frac{%s}{%s}`, render(e.L, symbols, precAdd), render(e.R, symbols, precAdd))
		case "**":
			base := render(e.L, symbols, precAdd)
			if !isAtom(e.L) {
				base = grouped(base)
			}
			return fmt.Sprintf("%s^{%s}", base, render(e.R, symbols, precAdd))
		case "*":
			s := render(e.L, symbols, precMul) + ` \cdot ` + render(e.R, symbols, precMul)
			return paren(s, outer > precMul)
		case "+", "-":
			s := render(e.L, symbols, precAdd) + " " + e.Op + " " + render(e.R, symbols, precAdd+boolToInt(e.Op == "-"))
			return paren(s, outer > precAdd)
		default:
			return ""
		}
	case *expr.Call:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = render(arg, symbols, precAdd)
		}
		joined := strings.Join(args, ", ")
		if e.Func == "sqrt" {
			return fmt.Sprintf(`\sqrt{%s}`, joined)
		}
		return fmt.Sprintf(`\%s\left(%s\right)`, e.Func, joined)
	case *expr.Compare:
		return render(e.L, symbols, precAdd) + " " + cmpSymbol(e.Op) + " " + render(e.R, symbols, precAdd)
	default:
		return ""
	}
}

func cmpSymbol(op string) string {
	switch op {
	case "<=":
		return `\leq`
	case ">=":
		return `\geq`
	case "==":
		return "="
	case "!=":
		return `\neq`
	default:
		return op
	}
}

func isAtom(n expr.Node) bool {
	switch n.(type) {
	case *expr.NumberLit, *expr.Ident, *expr.Call:
		return true
	}
	return false
}

func paren(s string, need bool) string {
	if need {
		return `\left(` + s + `\right)`
	}
	return s
}

func grouped(s string) string {
	return `\left(` + s + `\right)`
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Unit renders a unit label such as "cm^2", "kN·m" or "m/s^2" in upright
// roman type, the way quantities carry their unit in a typeset equation.
func Unit(label string) string {
	if label == "" {
		return ""
	}
	var b strings.Builder
	sym := strings.Builder{}
	flushSym := func() {
		if sym.Len() > 0 {
			b.WriteString(`\mathrm{` + sym.String() + `}`)
			sym.Reset()
		}
	}
	rest := label
	for len(rest) > 0 {
		switch {
		case rest[0] == '^':
			flushSym()
			end := 1
			for end < len(rest) && (rest[end] >= '0' && rest[end] <= '9' || rest[end] == '.' || rest[end] == '-') {
				end++
			}
			b.WriteString("^{" + rest[1:end] + "}")
			rest = rest[end:]
		case rest[0] == '/':
			flushSym()
			b.WriteString("/")
			rest = rest[1:]
		case strings.HasPrefix(rest, "·") || rest[0] == '*':
			flushSym()
			b.WriteString(` \cdot `)
			if rest[0] == '*' {
				rest = rest[1:]
			} else {
				rest = rest[len("·"):]
			}
		case rest[0] == '(' || rest[0] == ')':
			flushSym()
			b.WriteByte(rest[0])
			rest = rest[1:]
		case strings.HasPrefix(rest, "²"):
			flushSym()
			b.WriteString("^{2}")
			rest = rest[len("²"):]
		case strings.HasPrefix(rest, "³"):
			flushSym()
			b.WriteString("^{3}")
			rest = rest[len("³"):]
		case rest[0] == '%':
			sym.WriteString(`\%`)
			rest = rest[1:]
		default:
			sym.WriteByte(rest[0])
			rest = rest[1:]
		}
	}
	flushSym()
	return b.String()
}
