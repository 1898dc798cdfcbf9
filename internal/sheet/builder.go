package sheet

import (
	"regexp"

	"github.com/vk/calcsheet/internal/expr"
	"github.com/vk/calcsheet/internal/quantity"
)

// Builder accumulates declarations into a registry and an append-only
// ledger, evaluates them in insertion order, and renders reports.
type Builder struct {
	precision int
	registry  map[string]*SymbolEntry
	steps     []*Step

	// values mirrors the evaluation context: declared params immediately,
	// equation results once Evaluate has run. Compile snapshots it.
	values    map[string]quantity.Quantity
	evaluated bool
}

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithPrecision sets the default number of fixed-point digits used when a
// step has no format spec of its own. The default is 2.
func WithPrecision(digits int) Option {
	return func(b *Builder) { b.precision = digits }
}

// New returns an empty builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		precision: 2,
		registry:  make(map[string]*SymbolEntry),
		values:    make(map[string]quantity.Quantity),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// StepOption configures a single declaration.
type StepOption func(*stepConfig)

type stepConfig struct {
	desc   string
	hidden bool
	format string
	unit   string
}

// WithDesc attaches a human-readable description shown in the report's
// annotation column.
func WithDesc(desc string) StepOption {
	return func(c *stepConfig) { c.desc = desc }
}

// Hidden excludes the step from report output. It is still evaluated and
// referencable from later formulas.
func Hidden() StepOption {
	return func(c *stepConfig) { c.hidden = true }
}

// WithFormat sets a numeric format spec (e.g. ".2f") for the step's
// rendered value, overriding the builder's default precision.
func WithFormat(spec string) StepOption {
	return func(c *stepConfig) { c.format = spec }
}

// WithUnit sets the unit an equation's result is converted to. Ignored on
// params and checks.
func WithUnit(unitExpr string) StepOption {
	return func(c *stepConfig) { c.unit = unitExpr }
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// checkName validates a declaration name against the registry. A failure
// leaves the builder unmodified.
func (b *Builder) checkName(name string) error {
	if !identRe.MatchString(name) {
		return &InvalidNameError{Name: name}
	}
	if expr.IsReserved(name) {
		return &ReservedNameError{Name: name}
	}
	if _, exists := b.registry[name]; exists {
		return &DuplicateNameError{Name: name}
	}
	return nil
}

// AddParam declares a constant parameter. The value becomes part of the
// evaluation context immediately; its Result is attached by Evaluate.
func (b *Builder) AddParam(name, symbol string, value quantity.Quantity, opts ...StepOption) error {
	if err := b.checkName(name); err != nil {
		return err
	}
	cfg := applyStepOptions(opts)
	b.registry[name] = &SymbolEntry{Name: name, Symbol: symbol, Desc: cfg.desc, Hidden: cfg.hidden, Format: cfg.format}
	b.steps = append(b.steps, &Step{Kind: KindParam, Name: name, Value: value})
	b.values[name] = value
	b.evaluated = false
	return nil
}

// AddEquation declares a derived quantity computed from a formula over
// previously declared names. Nothing is evaluated yet; formula errors
// (including parse errors) surface from Evaluate.
func (b *Builder) AddEquation(name, symbol, formula string, opts ...StepOption) error {
	if err := b.checkName(name); err != nil {
		return err
	}
	cfg := applyStepOptions(opts)
	var target *quantity.Unit
	if cfg.unit != "" {
		u, err := quantity.ParseUnit(cfg.unit)
		if err != nil {
			return err
		}
		target = &u
	}
	b.registry[name] = &SymbolEntry{Name: name, Symbol: symbol, Desc: cfg.desc, Hidden: cfg.hidden, Format: cfg.format}
	b.steps = append(b.steps, &Step{Kind: KindEquation, Name: name, Formula: formula, TargetUnit: target})
	b.evaluated = false
	return nil
}

// AddCheck declares a pass/fail criterion. The formula must reduce to a
// boolean at evaluation time. The name is a display label only and is not
// registered as a variable.
func (b *Builder) AddCheck(name, formula string, opts ...StepOption) error {
	if name == "" {
		name = "Check"
	}
	cfg := applyStepOptions(opts)
	b.steps = append(b.steps, &Step{Kind: KindCheck, Name: name, Formula: formula, Desc: cfg.desc})
	b.evaluated = false
	return nil
}

func applyStepOptions(opts []StepOption) stepConfig {
	var cfg stepConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Steps exposes the ledger for callers that inspect how far evaluation
// progressed after an error.
func (b *Builder) Steps() []*Step {
	return b.steps
}

// Symbol resolves a registered name to its registry entry.
func (b *Builder) Symbol(name string) (*SymbolEntry, bool) {
	e, ok := b.registry[name]
	return e, ok
}

// Evaluated reports whether every ledger entry carries a result.
func (b *Builder) Evaluated() bool {
	return b.evaluated
}
