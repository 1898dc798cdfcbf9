package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// --- Sheet File Structures ---

// Settings represents the optional `settings` block of a sheet file.
type Settings struct {
	Precision *int `hcl:"precision,optional"`
}

// Param represents a `param` block: a constant declared with its value.
// Value is kept as an expression so the loader can accept both quantity
// literals ("10 kN") and bare numbers.
type Param struct {
	Name   string         `hcl:"name,label"`
	Symbol string         `hcl:"symbol"`
	Value  hcl.Expression `hcl:"value"`
	Desc   string         `hcl:"desc,optional"`
	Hidden bool           `hcl:"hidden,optional"`
	Format string         `hcl:"format,optional"`
}

// Equation represents an `equation` block: a formula over previously
// declared names, optionally converted to a target unit.
type Equation struct {
	Name    string `hcl:"name,label"`
	Symbol  string `hcl:"symbol"`
	Formula string `hcl:"formula"`
	Unit    string `hcl:"unit,optional"`
	Desc    string `hcl:"desc,optional"`
	Hidden  bool   `hcl:"hidden,optional"`
	Format  string `hcl:"format,optional"`
}

// Check represents a `check` block: a pass/fail criterion.
type Check struct {
	Name    string `hcl:"name,label"`
	Formula string `hcl:"formula"`
	Desc    string `hcl:"desc,optional"`
}
