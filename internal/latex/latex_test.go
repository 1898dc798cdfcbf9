package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/calcsheet/internal/expr"
)

var symbols = map[string]string{
	"Fx":        "F_x",
	"A":         "A",
	"sigma":     `\sigma`,
	"sigma_adm": `\sigma_{adm}`,
	"L":         "L",
}

func lookup(name string) (string, bool) {
	s, ok := symbols[name]
	return s, ok
}

func renderSrc(t *testing.T, src string) string {
	t.Helper()
	root, err := expr.Parse(src)
	require.NoError(t, err)
	return Render(root, lookup)
}

func TestRender(t *testing.T) {
	t.Run("division renders as a fraction", func(t *testing.T) {
		assert.Equal(t, `\frac{F_x}{A}`, renderSrc(t, "Fx / A"))
	})

	t.Run("power renders as a superscript", func(t *testing.T) {
		assert.Equal(t, "L^{2}", renderSrc(t, "L ** 2"))
	})

	t.Run("compound power base is grouped", func(t *testing.T) {
		assert.Equal(t, `\left(L + L\right)^{2}`, renderSrc(t, "(L + L) ** 2"))
	})

	t.Run("multiplication uses an explicit product mark", func(t *testing.T) {
		assert.Equal(t, `F_x \cdot L`, renderSrc(t, "Fx * L"))
	})

	t.Run("addition inside multiplication is parenthesized", func(t *testing.T) {
		assert.Equal(t, `\left(F_x + F_x\right) \cdot L`, renderSrc(t, "(Fx + Fx) * L"))
	})

	t.Run("sqrt renders as a radical", func(t *testing.T) {
		assert.Equal(t, `\sqrt{L}`, renderSrc(t, "sqrt(L)"))
	})

	t.Run("trig renders as a named command", func(t *testing.T) {
		assert.Equal(t, `\sin\left(\pi\right)`, renderSrc(t, "sin(pi)"))
	})

	t.Run("comparison operators", func(t *testing.T) {
		assert.Equal(t, `\sigma \leq \sigma_{adm}`, renderSrc(t, "sigma <= sigma_adm"))
		assert.Equal(t, `\sigma \neq \sigma_{adm}`, renderSrc(t, "sigma != sigma_adm"))
		assert.Equal(t, `\sigma = \sigma_{adm}`, renderSrc(t, "sigma == sigma_adm"))
	})

	t.Run("unregistered identifier falls back to its raw name", func(t *testing.T) {
		assert.Equal(t, `\frac{mystery}{A}`, renderSrc(t, "mystery / A"))
	})

	t.Run("number literals keep their written form", func(t *testing.T) {
		assert.Equal(t, `1.50 \cdot L`, renderSrc(t, "1.50 * L"))
	})
}

// Rendering and evaluation share one parse, so the operand sets of the
// two outputs can never diverge. This pins the shared-tree guarantee by
// checking every free variable appears in the rendering.
func TestRenderCoversAllOperands(t *testing.T) {
	src := "sqrt(Fx * L) / (A + A) ** 2"
	root, err := expr.Parse(src)
	require.NoError(t, err)

	rendered := Render(root, lookup)
	for _, name := range expr.FreeVars(root) {
		sym, ok := lookup(name)
		if !ok {
			sym = name
		}
		assert.Contains(t, rendered, sym)
	}
}

func TestUnit(t *testing.T) {
	for _, tc := range []struct {
		label string
		want  string
	}{
		{"", ""},
		{"MPa", `\mathrm{MPa}`},
		{"cm^2", `\mathrm{cm}^{2}`},
		{"cm²", `\mathrm{cm}^{2}`},
		{"m/s^2", `\mathrm{m}/\mathrm{s}^{2}`},
		{"kN·m", `\mathrm{kN} \cdot \mathrm{m}`},
	} {
		assert.Equal(t, tc.want, Unit(tc.label), tc.label)
	}
}
