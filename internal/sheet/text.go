package sheet

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Text renders the evaluated ledger as styled terminal output: one line
// per visible step, with check statuses colored green/red. It fails with
// NotEvaluatedError when called before Evaluate.
func (b *Builder) Text() (string, error) {
	if !b.evaluated {
		return "", &NotEvaluatedError{}
	}

	var lines []string
	for _, s := range b.steps {
		entry := b.entryFor(s)
		if entry != nil && entry.Hidden {
			continue
		}
		var desc, formatSpec string
		if entry != nil {
			desc, formatSpec = entry.Desc, entry.Format
		} else {
			desc = s.Desc
		}

		var line string
		switch s.Kind {
		case KindParam:
			value, err := b.formatPlain(s, formatSpec)
			if err != nil {
				return "", err
			}
			line = fmt.Sprintf("%s = %s", s.Name, value)
		case KindEquation:
			value, err := b.formatPlain(s, formatSpec)
			if err != nil {
				return "", err
			}
			line = fmt.Sprintf("%s = %s = %s", s.Name, s.Formula, value)
		case KindCheck:
			status := okStyle.Render("OK")
			if !s.passed {
				status = failStyle.Render("FAIL")
			}
			line = fmt.Sprintf("%s: %s -> %s", s.Name, s.Formula, status)
		}
		if desc != "" {
			line += "  " + descStyle.Render("# "+desc)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
