package sheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/calcsheet/internal/ctxlog"
	"github.com/vk/calcsheet/internal/latex"
)

const (
	statusOK   = `\textbf{\textcolor{green}{OK}}`
	statusFail = `\textbf{\textcolor{red}{FAIL}}`
)

// ReportOption configures report generation.
type ReportOption func(*reportConfig) error

type reportConfig struct {
	style Style
}

// WithStyle selects one of the predefined report styles by name.
func WithStyle(name string) ReportOption {
	return func(c *reportConfig) error {
		s, ok := styles[name]
		if !ok {
			return fmt.Errorf("unknown report style %q (have %v)", name, StyleNames())
		}
		c.style = s
		return nil
	}
}

// WithRowTemplate overrides the row template for one step kind, keeping
// the selected style's templates for the others.
func WithRowTemplate(kind StepKind, template string) ReportOption {
	return func(c *reportConfig) error {
		rows := make(map[StepKind]string, len(c.style.Rows))
		for k, v := range c.style.Rows {
			rows[k] = v
		}
		rows[kind] = template
		c.style = Style{Environment: c.style.Environment, Rows: rows}
		return nil
	}
}

// Report renders the evaluated ledger as a LaTeX block, one row per
// visible step, in insertion order. It fails with NotEvaluatedError when
// called before Evaluate.
func (b *Builder) Report(ctx context.Context, opts ...ReportOption) (string, error) {
	if !b.evaluated {
		return "", &NotEvaluatedError{}
	}

	cfg := reportConfig{style: styles["standard"]}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return "", err
		}
	}

	lines := []string{`\begin{` + cfg.style.Environment + `}`}
	for _, s := range b.steps {
		entry := b.entryFor(s)
		if entry != nil && entry.Hidden {
			continue
		}
		row, err := b.renderRow(ctx, s, entry, cfg.style)
		if err != nil {
			return "", err
		}
		lines = append(lines, row)
	}
	lines = append(lines, `\end{`+cfg.style.Environment+`}`)
	return strings.Join(lines, "\n"), nil
}

// entryFor resolves a step's registry entry. Check names are display
// labels, not registered variables, so they never resolve.
func (b *Builder) entryFor(s *Step) *SymbolEntry {
	if s.Kind == KindCheck {
		return nil
	}
	return b.registry[s.Name]
}

func (b *Builder) renderRow(ctx context.Context, s *Step, entry *SymbolEntry, style Style) (string, error) {
	var symbol, desc, formatSpec string
	if entry != nil {
		symbol, desc, formatSpec = entry.Symbol, entry.Desc, entry.Format
	} else {
		desc = s.Desc
	}

	var value, formula, status string
	switch s.Kind {
	case KindParam, KindEquation:
		mag, err := s.result.FormatMagnitude(formatSpec, b.precision)
		if err != nil {
			return "", &FormatError{Step: s.Name, Spec: formatSpec, Err: err}
		}
		value = mag
		if u := latex.Unit(s.result.DisplayUnit()); u != "" {
			value += `\ ` + u
		}
		if s.Kind == KindEquation {
			formula = b.renderFormula(ctx, s)
		}
	case KindCheck:
		formula = b.renderFormula(ctx, s)
		if s.passed {
			status = statusOK
		} else {
			status = statusFail
		}
	}

	replacer := strings.NewReplacer(
		"{symbol}", symbol,
		"{expr}", formula,
		"{value}", value,
		"{desc}", desc,
		"{name}", s.Name,
		"{status}", status,
	)
	return replacer.Replace(style.Rows[s.Kind]), nil
}

// renderFormula typesets a step's formula from its cached tree,
// substituting registered display symbols. An unregistered identifier
// renders as its raw name and is logged as a warning, not an error.
func (b *Builder) renderFormula(ctx context.Context, s *Step) string {
	logger := ctxlog.FromContext(ctx)
	return latex.Render(s.tree, func(name string) (string, bool) {
		if entry, ok := b.registry[name]; ok {
			return entry.Symbol, true
		}
		logger.Warn("Formula references an unregistered symbol; rendering the raw name.",
			"step", s.Name, "identifier", name)
		return "", false
	})
}

// formatPlain renders a step result without LaTeX unit markup, for the
// terminal report.
func (b *Builder) formatPlain(s *Step, spec string) (string, error) {
	text, err := s.result.Format(spec, b.precision)
	if err != nil {
		return "", &FormatError{Step: s.Name, Spec: spec, Err: err}
	}
	return text, nil
}
