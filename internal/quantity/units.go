package quantity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit describes a unit of measure: a multiplicative factor to SI base
// units, the base-dimension exponents, and the display label the unit was
// declared with.
type Unit struct {
	Scale float64
	Dims  Dims
	Label string
}

// Dimensionless is the empty unit. Plain numeric literals carry it.
var Dimensionless = Unit{Scale: 1}

func baseDims(idx int) Dims {
	var d Dims
	d[idx] = 1
	return d
}

// namedUnit is one row of the built-in unit table.
type namedUnit struct {
	scale      float64
	dims       Dims
	prefixable bool
}

var unitTable = map[string]namedUnit{
	// SI base units.
	"m":   {1, baseDims(dimLength), true},
	"g":   {1e-3, baseDims(dimMass), true},
	"s":   {1, baseDims(dimTime), true},
	"A":   {1, baseDims(dimCurrent), true},
	"K":   {1, baseDims(dimTemperature), true},
	"mol": {1, baseDims(dimAmount), true},
	"cd":  {1, baseDims(dimLuminosity), true},

	// Derived units.
	"N":   {1, Dims{1, 1, -2}, true},
	"Pa":  {1, Dims{-1, 1, -2}, true},
	"bar": {1e5, Dims{-1, 1, -2}, true},
	"J":   {1, Dims{2, 1, -2}, true},
	"W":   {1, Dims{2, 1, -3}, true},
	"Hz":  {1, Dims{0, 0, -1}, true},
	"V":   {1, Dims{2, 1, -3, -1}, true},
	"C":   {1, Dims{0, 0, 1, 1}, true},
	"L":   {1e-3, Dims{3}, true},

	// Engineering extras. Not prefixable: "kt" or "mh" read poorly and the
	// original unit registry rejects them too.
	"t":   {1e3, baseDims(dimMass), false},
	"min": {60, baseDims(dimTime), false},
	"h":   {3600, baseDims(dimTime), false},
	"rad": {1, Dims{}, false},
	"deg": {math.Pi / 180, Dims{}, false},
	"%":   {0.01, Dims{}, false},
}

var siPrefixes = map[string]float64{
	"n": 1e-9,
	"u": 1e-6,
	"µ": 1e-6,
	"m": 1e-3,
	"c": 1e-2,
	"d": 1e-1,
	"k": 1e3,
	"M": 1e6,
	"G": 1e9,
}

// lookupSymbol resolves a single unit symbol, trying an exact table match
// before attempting to split off an SI prefix.
func lookupSymbol(sym string) (float64, Dims, error) {
	if u, ok := unitTable[sym]; ok {
		return u.scale, u.dims, nil
	}
	for plen := 1; plen <= 2 && plen < len(sym); plen++ {
		factor, ok := siPrefixes[sym[:plen]]
		if !ok {
			continue
		}
		if u, ok := unitTable[sym[plen:]]; ok && u.prefixable {
			return factor * u.scale, u.dims, nil
		}
	}
	return 0, Dims{}, &UnknownUnitError{Symbol: sym}
}

var superscripts = strings.NewReplacer("²", "^2", "³", "^3", "⁴", "^4", "·", "*")

// ParseUnit parses a unit expression such as "kN", "cm^2", "m/s^2" or
// "kN*m" into a Unit. The empty string yields the dimensionless unit.
func ParseUnit(expr string) (Unit, error) {
	label := strings.TrimSpace(expr)
	if label == "" || label == "-" {
		return Dimensionless, nil
	}

	normalized := superscripts.Replace(label)
	scale := 1.0
	var dims Dims

	// Split into factors on * and /, keeping the operator that precedes
	// each factor.
	factor := strings.Builder{}
	div := false
	apply := func(div bool) error {
		part := strings.TrimSpace(factor.String())
		factor.Reset()
		if part == "" {
			return fmt.Errorf("invalid unit expression %q", expr)
		}
		sym, exp := part, 1.0
		if i := strings.IndexByte(part, '^'); i >= 0 {
			sym = part[:i]
			parsed, err := strconv.ParseFloat(part[i+1:], 64)
			if err != nil {
				return fmt.Errorf("invalid unit exponent in %q", expr)
			}
			exp = parsed
		}
		s, d, err := lookupSymbol(strings.TrimSpace(sym))
		if err != nil {
			return err
		}
		if div {
			exp = -exp
		}
		scale *= math.Pow(s, exp)
		dims = dims.add(d.scale(exp))
		return nil
	}
	for _, r := range normalized {
		switch r {
		case '*', '/':
			if err := apply(div); err != nil {
				return Unit{}, err
			}
			div = r == '/'
		default:
			factor.WriteRune(r)
		}
	}
	if err := apply(div); err != nil {
		return Unit{}, err
	}

	return Unit{Scale: scale, Dims: dims, Label: label}, nil
}

// MustParseUnit is ParseUnit for unit expressions known to be valid.
// It panics on error and is intended for tests and static tables.
func MustParseUnit(expr string) Unit {
	u, err := ParseUnit(expr)
	if err != nil {
		panic(err)
	}
	return u
}

var baseSymbols = [numBaseDims]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// dimsLabel builds a canonical display label from raw base-dimension
// exponents, e.g. "kg·m/s^2". Used when a derived quantity has no
// declared unit label to show.
func dimsLabel(d Dims) string {
	var num, den []string
	for i, e := range d {
		switch {
		case e == 1:
			num = append(num, baseSymbols[i])
		case e > 0:
			num = append(num, fmt.Sprintf("%s^%s", baseSymbols[i], expString(e)))
		case e == -1:
			den = append(den, baseSymbols[i])
		case e < 0:
			den = append(den, fmt.Sprintf("%s^%s", baseSymbols[i], expString(-e)))
		}
	}
	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(den) == 0:
		return strings.Join(num, "·")
	case len(num) == 0:
		return "1/" + strings.Join(den, "·")
	default:
		return strings.Join(num, "·") + "/" + strings.Join(den, "·")
	}
}

func expString(e float64) string {
	return strconv.FormatFloat(e, 'g', -1, 64)
}
