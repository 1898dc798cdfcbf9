package quantity

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Quantity is an immutable scalar magnitude tagged with a unit. All
// arithmetic returns a fresh Quantity; operands are never modified.
type Quantity struct {
	mag  float64
	unit Unit
}

// New builds a Quantity from a magnitude and a unit.
func New(mag float64, unit Unit) Quantity {
	return Quantity{mag: mag, unit: unit}
}

// FromFloat builds a dimensionless Quantity, the type plain numeric
// literals evaluate to.
func FromFloat(mag float64) Quantity {
	return Quantity{mag: mag, unit: Dimensionless}
}

// Parse reads a quantity literal such as "10 kN", "50 cm^2" or "9.81".
func Parse(literal string) (Quantity, error) {
	s := strings.TrimSpace(literal)
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			end++
			continue
		}
		break
	}
	mag, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity literal %q: %w", literal, err)
	}
	unit, err := ParseUnit(s[end:])
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{mag: mag, unit: unit}, nil
}

// MustParse is Parse for literals known to be valid; it panics on error.
func MustParse(literal string) Quantity {
	q, err := Parse(literal)
	if err != nil {
		panic(err)
	}
	return q
}

// Magnitude returns the magnitude relative to the quantity's own unit.
func (q Quantity) Magnitude() float64 { return q.mag }

// Unit returns the quantity's unit.
func (q Quantity) Unit() Unit { return q.unit }

// SIValue returns the magnitude expressed in SI base units.
func (q Quantity) SIValue() float64 { return q.mag * q.unit.Scale }

// IsDimensionless reports whether the quantity carries no dimension.
func (q Quantity) IsDimensionless() bool { return q.unit.Dims.IsZero() }

// displayUnit is the label shown after the magnitude: the declared label
// if one survives, otherwise the canonical base-dimension form.
func (q Quantity) displayUnit() string {
	if q.unit.Label != "" {
		return q.unit.Label
	}
	return dimsLabel(q.unit.Dims)
}

func (q Quantity) mismatch(op string, o Quantity) *UnitMismatchError {
	left, right := q.displayUnit(), o.displayUnit()
	if left == "" {
		left = "dimensionless"
	}
	if right == "" {
		right = "dimensionless"
	}
	return &UnitMismatchError{Op: op, Left: left, Right: right}
}

// inUnitOf converts o's magnitude into q's unit. Commensurability must
// already have been checked.
func (q Quantity) inUnitOf(o Quantity) float64 {
	return o.mag * o.unit.Scale / q.unit.Scale
}

// Add returns q + o. The operands must be commensurate; the result keeps
// q's unit.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if q.unit.Dims != o.unit.Dims {
		return Quantity{}, q.mismatch("add", o)
	}
	return Quantity{mag: q.mag + q.inUnitOf(o), unit: q.unit}, nil
}

// Sub returns q - o under the same rules as Add.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if q.unit.Dims != o.unit.Dims {
		return Quantity{}, q.mismatch("subtract", o)
	}
	return Quantity{mag: q.mag - q.inUnitOf(o), unit: q.unit}, nil
}

// Mul returns q * o, combining units algebraically.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{
		mag: q.mag * o.mag,
		unit: Unit{
			Scale: q.unit.Scale * o.unit.Scale,
			Dims:  q.unit.Dims.add(o.unit.Dims),
			Label: composeLabel(q.unit.Label, o.unit.Label, "·"),
		},
	}
}

// Div returns q / o, combining units algebraically. A zero divisor
// magnitude fails with DivisionByZeroError.
func (q Quantity) Div(o Quantity) (Quantity, error) {
	if o.mag == 0 {
		return Quantity{}, &DivisionByZeroError{Dividend: q.String()}
	}
	return Quantity{
		mag: q.mag / o.mag,
		unit: Unit{
			Scale: q.unit.Scale / o.unit.Scale,
			Dims:  q.unit.Dims.sub(o.unit.Dims),
			Label: composeLabel(q.unit.Label, o.unit.Label, "/"),
		},
	}, nil
}

// Pow returns q ** exp. The exponent must be dimensionless.
func (q Quantity) Pow(exp Quantity) (Quantity, error) {
	if !exp.IsDimensionless() {
		return Quantity{}, q.mismatch("raise to power with unit", exp)
	}
	n := exp.SIValue()
	label := ""
	if q.unit.Label != "" && isAtomLabel(q.unit.Label) {
		label = q.unit.Label + "^" + expString(n)
	}
	return Quantity{
		mag: math.Pow(q.mag, n),
		unit: Unit{
			Scale: math.Pow(q.unit.Scale, n),
			Dims:  q.unit.Dims.scale(n),
			Label: label,
		},
	}, nil
}

// Neg returns -q.
func (q Quantity) Neg() Quantity {
	return Quantity{mag: -q.mag, unit: q.unit}
}

// ConvertTo re-expresses q in the target unit. The units must be
// commensurate.
func (q Quantity) ConvertTo(target Unit) (Quantity, error) {
	if q.unit.Dims != target.Dims {
		return Quantity{}, q.mismatch("convert", Quantity{unit: target})
	}
	return Quantity{mag: q.mag * q.unit.Scale / target.Scale, unit: target}, nil
}

// Compare evaluates a comparison operator between two commensurate
// quantities.
func (q Quantity) Compare(op string, o Quantity) (bool, error) {
	if q.unit.Dims != o.unit.Dims {
		return false, q.mismatch("compare", o)
	}
	l, r := q.mag, q.inUnitOf(o)
	switch op {
	case "<":
		return l < r, nil
	case "<=":
		return l <= r, nil
	case ">":
		return l > r, nil
	case ">=":
		return l >= r, nil
	case "==":
		return l == r, nil
	case "!=":
		return l != r, nil
	default:
		return false, fmt.Errorf("unsupported comparison operator %q", op)
	}
}

// formatSpecRe accepts Python-style numeric format specs like ".2f",
// "8.3e" or ".4g".
var formatSpecRe = regexp.MustCompile(`^\d*(\.\d+)?[defgEG]$`)

// FormatMagnitude renders only the magnitude with the given format spec,
// falling back to fixed-point with defaultPrecision digits when spec is
// empty.
func (q Quantity) FormatMagnitude(spec string, defaultPrecision int) (string, error) {
	verb := "%." + strconv.Itoa(defaultPrecision) + "f"
	if spec != "" {
		if !formatSpecRe.MatchString(spec) {
			return "", fmt.Errorf("invalid format spec %q", spec)
		}
		if strings.HasSuffix(spec, "d") {
			verb = "%" + strings.TrimSuffix(spec, "d") + ".0f"
		} else {
			verb = "%" + spec
		}
	}
	return fmt.Sprintf(verb, q.mag), nil
}

// Format renders the magnitude per FormatMagnitude with the unit label,
// if any, following the number.
func (q Quantity) Format(spec string, defaultPrecision int) (string, error) {
	text, err := q.FormatMagnitude(spec, defaultPrecision)
	if err != nil {
		return "", err
	}
	if u := q.displayUnit(); u != "" {
		text += " " + u
	}
	return text, nil
}

// DisplayUnit returns the label shown after the magnitude: the declared
// label if one survives composition, otherwise the canonical
// base-dimension form.
func (q Quantity) DisplayUnit() string { return q.displayUnit() }

// String renders the quantity with full float precision, for logs and
// error messages.
func (q Quantity) String() string {
	text := strconv.FormatFloat(q.mag, 'g', -1, 64)
	if u := q.displayUnit(); u != "" {
		text += " " + u
	}
	return text
}

// composeLabel joins two unit labels with an operator, dropping empty
// sides and parenthesizing a compound divisor.
func composeLabel(a, b, op string) string {
	switch {
	case a == "" && b == "":
		return ""
	case b == "":
		return a
	case a == "" && op == "·":
		return b
	case a == "":
		// 1/x keeps the division visible.
		a = "1"
	}
	if op == "/" && !isAtomLabel(b) {
		b = "(" + b + ")"
	}
	return a + op + b
}

// isAtomLabel reports whether a label is a single unit symbol (no
// operators), so that exponent and divisor composition stays unambiguous.
func isAtomLabel(label string) bool {
	return !strings.ContainsAny(label, "·*/^ ")
}
