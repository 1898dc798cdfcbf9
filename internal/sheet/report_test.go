package sheet

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/calcsheet/internal/quantity"
)

func TestReport(t *testing.T) {
	ctx := context.Background()

	t.Run("fails before evaluation", func(t *testing.T) {
		b := buildStressSheet(t)
		_, err := b.Report(ctx)
		var notEval *NotEvaluatedError
		require.ErrorAs(t, err, &notEval)
	})

	t.Run("standard style", func(t *testing.T) {
		b := buildStressSheet(t)
		require.NoError(t, b.Evaluate(ctx))
		report, err := b.Report(ctx)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(report, `\begin{align*}`))
		assert.True(t, strings.HasSuffix(report, `\end{align*}`))

		// Param row: symbol, value with unit, description.
		assert.Contains(t, report, `F_x &= 10.00\ \mathrm{kN} && \text{Axial force} \\`)
		// Equation row: symbol, rendered fraction, converted value.
		assert.Contains(t, report, `\sigma &= \frac{F_x}{A} = 2.00\ \mathrm{MPa} && \text{Normal stress} \\`)
		// Check row: rendered comparison and FAIL status.
		assert.Contains(t, report, `\sigma \leq \sigma_{adm}`)
		assert.Contains(t, report, `\textbf{\textcolor{red}{FAIL}}`)
		assert.NotContains(t, report, `\textcolor{green}`)
	})

	t.Run("passing check renders OK", func(t *testing.T) {
		b := New()
		require.NoError(t, b.AddParam("x", "x", quantity.FromFloat(1)))
		require.NoError(t, b.AddCheck("Bound", "x <= 2"))
		require.NoError(t, b.Evaluate(ctx))
		report, err := b.Report(ctx)
		require.NoError(t, err)
		assert.Contains(t, report, `\textbf{\textcolor{green}{OK}}`)
	})

	t.Run("hidden steps never appear", func(t *testing.T) {
		b := New()
		require.NoError(t, b.AddParam("secret", "s_{ecret}", quantity.FromFloat(42),
			WithDesc("internal coefficient"), Hidden()))
		require.NoError(t, b.AddEquation("shown", "S", "secret * 2"))
		require.NoError(t, b.Evaluate(ctx))
		report, err := b.Report(ctx)
		require.NoError(t, err)
		assert.NotContains(t, report, "s_{ecret}")
		assert.NotContains(t, report, "internal coefficient")
		assert.Contains(t, report, "S &=")
	})

	t.Run("per-step format overrides the default precision", func(t *testing.T) {
		b := New(WithPrecision(4))
		require.NoError(t, b.AddParam("x", "x", quantity.FromFloat(2), WithFormat(".2f")))
		require.NoError(t, b.Evaluate(ctx))
		report, err := b.Report(ctx)
		require.NoError(t, err)
		assert.Contains(t, report, "x &= 2.00")
		assert.NotContains(t, report, "2.0000")
	})

	t.Run("invalid format spec fails with FormatError", func(t *testing.T) {
		b := New()
		require.NoError(t, b.AddParam("x", "x", quantity.FromFloat(2), WithFormat("bogus")))
		require.NoError(t, b.Evaluate(ctx))
		_, err := b.Report(ctx)
		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "x", formatErr.Step)
	})

	t.Run("compact style drops formulas", func(t *testing.T) {
		b := buildStressSheet(t)
		require.NoError(t, b.Evaluate(ctx))
		report, err := b.Report(ctx, WithStyle("compact"))
		require.NoError(t, err)
		assert.NotContains(t, report, `\frac`)
		assert.Contains(t, report, `\sigma &= 2.00`)
	})

	t.Run("detailed style wraps an itemize list", func(t *testing.T) {
		b := buildStressSheet(t)
		require.NoError(t, b.Evaluate(ctx))
		report, err := b.Report(ctx, WithStyle("detailed"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(report, `\begin{itemize}`))
		assert.Contains(t, report, `\item \textbf{Axial force}`)
	})

	t.Run("unknown style is rejected", func(t *testing.T) {
		b := buildStressSheet(t)
		require.NoError(t, b.Evaluate(ctx))
		_, err := b.Report(ctx, WithStyle("fancy"))
		assert.ErrorContains(t, err, "unknown report style")
	})

	t.Run("row template override", func(t *testing.T) {
		b := buildStressSheet(t)
		require.NoError(t, b.Evaluate(ctx))
		report, err := b.Report(ctx, WithRowTemplate(KindParam, `{symbol}: {value} ({desc}) \\`))
		require.NoError(t, err)
		assert.Contains(t, report, `F_x: 10.00\ \mathrm{kN} (Axial force) \\`)
		// Other kinds keep the standard template.
		assert.Contains(t, report, `\sigma &= \frac{F_x}{A}`)
	})
}

func TestText(t *testing.T) {
	ctx := context.Background()

	t.Run("fails before evaluation", func(t *testing.T) {
		b := buildStressSheet(t)
		_, err := b.Text()
		var notEval *NotEvaluatedError
		require.ErrorAs(t, err, &notEval)
	})

	t.Run("renders values and statuses", func(t *testing.T) {
		b := buildStressSheet(t)
		require.NoError(t, b.Evaluate(ctx))
		text, err := b.Text()
		require.NoError(t, err)

		assert.Contains(t, text, "Fx = 10.00 kN")
		assert.Contains(t, text, "sigma = Fx / A = 2.00 MPa")
		assert.Contains(t, text, "FAIL")
		assert.Contains(t, text, "Axial force")
	})

	t.Run("hidden steps are skipped", func(t *testing.T) {
		b := New()
		require.NoError(t, b.AddParam("secret", "s", quantity.FromFloat(1), Hidden()))
		require.NoError(t, b.Evaluate(ctx))
		text, err := b.Text()
		require.NoError(t, err)
		assert.NotContains(t, text, "secret")
	})
}
