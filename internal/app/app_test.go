package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/calcsheet/internal/app"
	"github.com/vk/calcsheet/internal/testutil"
)

const stressSheet = `
param "Fx" {
  symbol = "F_x"
  value  = "10 kN"
  desc   = "Axial force"
}

param "A" {
  symbol = "A"
  value  = "50 cm^2"
}

equation "sigma" {
  symbol  = "\\sigma"
  formula = "Fx / A"
  unit    = "MPa"
}

param "sigma_adm" {
  symbol = "\\sigma_{adm}"
  value  = "5 MPa"
}

check "Stress" {
  formula = "sigma <= sigma_adm"
}
`

func TestRun(t *testing.T) {
	t.Run("renders a LaTeX report", func(t *testing.T) {
		result := testutil.RunSheet(t, stressSheet)
		require.NoError(t, result.Err)
		assert.Contains(t, result.Output, `\begin{align*}`)
		assert.Contains(t, result.Output, `\sigma &= \frac{F_x}{A} = 2.00\ \mathrm{MPa}`)
		assert.Contains(t, result.Output, `\textbf{\textcolor{green}{OK}}`)
		assert.Contains(t, result.LogOutput, "Sheet loaded.")
		assert.Contains(t, result.LogOutput, "Sheet evaluated.")
	})

	t.Run("renders a text report", func(t *testing.T) {
		result := testutil.RunSheet(t, stressSheet, func(cfg *app.Config) {
			cfg.Format = "text"
		})
		require.NoError(t, result.Err)
		assert.Contains(t, result.Output, "sigma = Fx / A = 2.00 MPa")
		assert.NotContains(t, result.Output, `\begin`)
	})

	t.Run("honors the report style", func(t *testing.T) {
		result := testutil.RunSheet(t, stressSheet, func(cfg *app.Config) {
			cfg.Style = "compact"
		})
		require.NoError(t, result.Err)
		assert.NotContains(t, result.Output, `\frac`)
	})

	t.Run("loads a sheet directory", func(t *testing.T) {
		result := testutil.RunSheetDir(t, map[string]string{
			"01_inputs.hcl": `
param "a" {
  symbol = "a"
  value  = "2 m"
}
`,
			"02_outputs.hcl": `
equation "area" {
  symbol  = "A"
  formula = "a ** 2"
}
`,
		})
		require.NoError(t, result.Err)
		assert.Contains(t, result.Output, `A &= a^{2} = 4.00\ \mathrm{m}^{2}`)
	})

	t.Run("evaluation failure emits nothing", func(t *testing.T) {
		result := testutil.RunSheet(t, `
equation "broken" {
  symbol  = "b"
  formula = "missing + 1"
}
`)
		require.Error(t, result.Err)
		assert.ErrorContains(t, result.Err, "evaluating sheet")
		assert.Empty(t, result.Output)
	})

	t.Run("load failure names the block", func(t *testing.T) {
		result := testutil.RunSheet(t, `widget "w" {}`)
		require.Error(t, result.Err)
		assert.ErrorContains(t, result.Err, "loading sheet")
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("requires a sheet path", func(t *testing.T) {
		_, err := app.NewConfig(app.Config{Format: "latex"})
		assert.Error(t, err)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		_, err := app.NewConfig(app.Config{SheetPath: "x.hcl", Format: "pdf"})
		assert.Error(t, err)
	})
}
