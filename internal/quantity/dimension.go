package quantity

// Indices into the dimension exponent vector, one per SI base dimension.
const (
	dimLength = iota
	dimMass
	dimTime
	dimCurrent
	dimTemperature
	dimAmount
	dimLuminosity
	numBaseDims
)

// Dims is a vector of base-dimension exponents. Exponents are floats so
// that sqrt over a dimensioned value (e.g. sqrt of an area) stays
// representable; the values involved (integers and halves) compare
// exactly under float64 equality.
type Dims [numBaseDims]float64

// IsZero reports whether every exponent is zero, i.e. the value is
// dimensionless.
func (d Dims) IsZero() bool {
	for _, e := range d {
		if e != 0 {
			return false
		}
	}
	return true
}

func (d Dims) add(o Dims) Dims {
	var out Dims
	for i := range d {
		out[i] = d[i] + o[i]
	}
	return out
}

func (d Dims) sub(o Dims) Dims {
	var out Dims
	for i := range d {
		out[i] = d[i] - o[i]
	}
	return out
}

func (d Dims) scale(f float64) Dims {
	var out Dims
	for i := range d {
		out[i] = d[i] * f
	}
	return out
}
