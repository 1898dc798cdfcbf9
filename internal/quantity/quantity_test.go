package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("quantity with unit", func(t *testing.T) {
		q, err := Parse("10 kN")
		require.NoError(t, err)
		assert.Equal(t, 10.0, q.Magnitude())
		assert.Equal(t, "kN", q.Unit().Label)
		assert.Equal(t, 1e4, q.SIValue())
	})

	t.Run("bare number is dimensionless", func(t *testing.T) {
		q, err := Parse("9.81")
		require.NoError(t, err)
		assert.True(t, q.IsDimensionless())
		assert.Equal(t, 9.81, q.Magnitude())
	})

	t.Run("unicode superscript", func(t *testing.T) {
		q, err := Parse("50 cm²")
		require.NoError(t, err)
		assert.InDelta(t, 50e-4, q.SIValue(), 1e-12)
	})

	t.Run("compound unit", func(t *testing.T) {
		q, err := Parse("9.81 m/s^2")
		require.NoError(t, err)
		assert.Equal(t, MustParseUnit("m/s^2").Dims, q.Unit().Dims)
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := Parse("3 florp")
		var unknownErr *UnknownUnitError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "florp", unknownErr.Symbol)
	})

	t.Run("invalid number", func(t *testing.T) {
		_, err := Parse("abc")
		assert.Error(t, err)
	})
}

func TestAdd(t *testing.T) {
	t.Run("converts to the left operand's unit", func(t *testing.T) {
		sum, err := MustParse("10 m").Add(MustParse("50 cm"))
		require.NoError(t, err)
		assert.Equal(t, 10.5, sum.Magnitude())
		assert.Equal(t, "m", sum.Unit().Label)
	})

	t.Run("incommensurate units fail", func(t *testing.T) {
		_, err := MustParse("10 m").Add(MustParse("2 s"))
		var mismatch *UnitMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "m", mismatch.Left)
		assert.Equal(t, "s", mismatch.Right)
	})

	t.Run("conversion is consistent either way", func(t *testing.T) {
		p1, p2 := MustParse("10 m"), MustParse("50 cm")
		direct, err := p1.Add(p2)
		require.NoError(t, err)

		converted, err := p2.ConvertTo(p1.Unit())
		require.NoError(t, err)
		viaConvert, err := p1.Add(converted)
		require.NoError(t, err)

		assert.Equal(t, direct.Magnitude(), viaConvert.Magnitude())
		assert.Equal(t, direct.Unit().Label, viaConvert.Unit().Label)
	})
}

func TestMulDiv(t *testing.T) {
	t.Run("division combines dimensions", func(t *testing.T) {
		stress, err := MustParse("10 kN").Div(MustParse("50 cm^2"))
		require.NoError(t, err)

		mpa, err := stress.ConvertTo(MustParseUnit("MPa"))
		require.NoError(t, err)
		assert.InDelta(t, 2.0, mpa.Magnitude(), 1e-12)
		assert.Equal(t, "MPa", mpa.Unit().Label)
	})

	t.Run("division by zero magnitude", func(t *testing.T) {
		_, err := MustParse("1 m").Div(FromFloat(0))
		var divErr *DivisionByZeroError
		require.ErrorAs(t, err, &divErr)
	})

	t.Run("multiplication composes labels", func(t *testing.T) {
		torque := MustParse("2 kN").Mul(MustParse("3 m"))
		assert.Equal(t, 6.0, torque.Magnitude())
		assert.Equal(t, "kN·m", torque.Unit().Label)
	})

	t.Run("dimensionless combines freely", func(t *testing.T) {
		doubled := MustParse("5 kN").Mul(FromFloat(2))
		assert.Equal(t, 10.0, doubled.Magnitude())
		assert.Equal(t, "kN", doubled.Unit().Label)
	})
}

func TestPow(t *testing.T) {
	t.Run("squares the dimension", func(t *testing.T) {
		area, err := MustParse("2 m").Pow(FromFloat(2))
		require.NoError(t, err)
		assert.Equal(t, 4.0, area.Magnitude())
		assert.Equal(t, MustParseUnit("m^2").Dims, area.Unit().Dims)
	})

	t.Run("sqrt via half exponent", func(t *testing.T) {
		side, err := MustParse("16 m^2").Pow(FromFloat(0.5))
		require.NoError(t, err)
		assert.Equal(t, 4.0, side.Magnitude())
		assert.Equal(t, MustParseUnit("m").Dims, side.Unit().Dims)
	})

	t.Run("dimensioned exponent fails", func(t *testing.T) {
		_, err := MustParse("2 m").Pow(MustParse("2 s"))
		var mismatch *UnitMismatchError
		require.ErrorAs(t, err, &mismatch)
	})
}

func TestConvertTo(t *testing.T) {
	t.Run("incommensurate target fails", func(t *testing.T) {
		_, err := MustParse("10 kN").ConvertTo(MustParseUnit("m"))
		var mismatch *UnitMismatchError
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("round trip preserves value", func(t *testing.T) {
		q := MustParse("1500 mm")
		m, err := q.ConvertTo(MustParseUnit("m"))
		require.NoError(t, err)
		assert.InDelta(t, 1.5, m.Magnitude(), 1e-12)

		back, err := m.ConvertTo(MustParseUnit("mm"))
		require.NoError(t, err)
		assert.InDelta(t, 1500, back.Magnitude(), 1e-9)
	})
}

func TestCompare(t *testing.T) {
	small, big := MustParse("1 MPa"), MustParse("2 MPa")

	for _, tc := range []struct {
		op   string
		want bool
	}{
		{"<", true}, {"<=", true}, {">", false}, {">=", false}, {"==", false}, {"!=", true},
	} {
		t.Run(tc.op, func(t *testing.T) {
			got, err := small.Compare(tc.op, big)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("cross-unit comparison converts", func(t *testing.T) {
		got, err := MustParse("1 m").Compare("==", MustParse("100 cm"))
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("incommensurate comparison fails", func(t *testing.T) {
		_, err := MustParse("1 m").Compare("<", MustParse("1 s"))
		var mismatch *UnitMismatchError
		require.ErrorAs(t, err, &mismatch)
	})
}

func TestFormat(t *testing.T) {
	t.Run("default precision", func(t *testing.T) {
		s, err := MustParse("2 MPa").Format("", 2)
		require.NoError(t, err)
		assert.Equal(t, "2.00 MPa", s)
	})

	t.Run("explicit spec overrides precision", func(t *testing.T) {
		s, err := MustParse("2 MPa").Format(".3f", 1)
		require.NoError(t, err)
		assert.Equal(t, "2.000 MPa", s)
	})

	t.Run("scientific spec", func(t *testing.T) {
		s, err := FromFloat(1234.5).Format(".2e", 2)
		require.NoError(t, err)
		assert.Equal(t, "1.23e+03", s)
	})

	t.Run("invalid spec", func(t *testing.T) {
		_, err := FromFloat(1).Format("not-a-spec", 2)
		assert.Error(t, err)
	})
}
