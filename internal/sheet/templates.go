package sheet

// Style bundles the wrapping LaTeX environment and the per-kind row
// templates of a report. Row templates substitute the placeholders
// {symbol}, {expr}, {value}, {desc}, {name} and {status}.
type Style struct {
	Environment string
	Rows        map[StepKind]string
}

// Predefined report styles. "standard" is the default align* layout;
// "compact" drops formulas and descriptions; "detailed" renders an
// itemize list with the description leading each entry.
var styles = map[string]Style{
	"standard": {
		Environment: "align*",
		Rows: map[StepKind]string{
			KindParam:    `{symbol} &= {value} && \text{{desc}} \\`,
			KindEquation: `{symbol} &= {expr} = {value} && \text{{desc}} \\`,
			KindCheck:    `\text{{name}} &: {expr} \rightarrow {status} && \text{{desc}} \\`,
		},
	},
	"compact": {
		Environment: "align*",
		Rows: map[StepKind]string{
			KindParam:    `{symbol} &= {value} \\`,
			KindEquation: `{symbol} &= {value} \\`,
			KindCheck:    `\text{{name}} &: {status} \\`,
		},
	},
	"detailed": {
		Environment: "itemize",
		Rows: map[StepKind]string{
			KindParam:    `\item \textbf{{desc}}: ${symbol} = {value}$`,
			KindEquation: `\item \textbf{{desc}}: ${symbol} = {expr} = {value}$`,
			KindCheck:    `\item \textbf{{desc}}: ${expr}$ $\rightarrow$ {status}`,
		},
	},
}

// StyleNames lists the predefined style names.
func StyleNames() []string {
	return []string{"standard", "compact", "detailed"}
}
