package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/calcsheet/internal/ctxlog"
	"github.com/vk/calcsheet/internal/fsutil"
	"github.com/vk/calcsheet/internal/quantity"
	"github.com/vk/calcsheet/internal/schema"
	"github.com/vk/calcsheet/internal/sheet"
)

// Loader parses HCL sheet files.
type Loader struct{}

// NewLoader creates a new sheet loader.
func NewLoader() *Loader {
	return &Loader{}
}

// sheetFile is one parsed source file awaiting application.
type sheetFile struct {
	name string
	body *hclsyntax.Body
}

// Load reads and parses a sheet into a Builder. path may be a single
// file or a directory, in which case every .hcl file beneath it is
// loaded in sorted path order.
func (l *Loader) Load(ctx context.Context, path string) (*sheet.Builder, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading sheet path: %w", err)
	}
	if info.IsDir() {
		return l.LoadDir(ctx, path)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sheet file: %w", err)
	}
	return l.LoadSource(ctx, path, src)
}

// LoadDir loads every sheet file under root into a single Builder.
func (l *Loader) LoadDir(ctx context.Context, root string) (*sheet.Builder, error) {
	paths, err := fsutil.FindSheets(root)
	if err != nil {
		return nil, err
	}

	files := make([]sheetFile, 0, len(paths))
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading sheet file: %w", err)
		}
		body, err := parseSource(path, src)
		if err != nil {
			return nil, err
		}
		files = append(files, sheetFile{name: path, body: body})
	}
	return l.build(ctx, files)
}

// LoadSource parses sheet source held in memory. filename is used for
// diagnostics only.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*sheet.Builder, error) {
	body, err := parseSource(filename, src)
	if err != nil {
		return nil, err
	}
	return l.build(ctx, []sheetFile{{name: filename, body: body}})
}

func parseSource(filename string, src []byte) (*hclsyntax.Body, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected HCL body type %T", file.Body)
	}
	return body, nil
}

// build applies parsed files to a fresh Builder. Settings blocks are
// applied first regardless of position; every other block is applied in
// document order so the ledger mirrors the files.
func (l *Loader) build(ctx context.Context, files []sheetFile) (*sheet.Builder, error) {
	logger := ctxlog.FromContext(ctx)

	var opts []sheet.Option
	for _, f := range files {
		for _, block := range f.body.Blocks {
			if block.Type != "settings" {
				continue
			}
			var settings schema.Settings
			if diags := gohcl.DecodeBody(block.Body, nil, &settings); diags.HasErrors() {
				return nil, diags
			}
			if settings.Precision != nil {
				opts = append(opts, sheet.WithPrecision(*settings.Precision))
			}
		}
	}

	builder := sheet.New(opts...)
	for _, f := range files {
		for _, block := range f.body.Blocks {
			var err error
			switch block.Type {
			case "settings":
				// handled above
			case "param":
				err = l.applyParam(builder, block)
			case "equation":
				err = l.applyEquation(builder, block)
			case "check":
				err = l.applyCheck(builder, block)
			default:
				err = fmt.Errorf("unsupported block type %q", block.Type)
			}
			if err != nil {
				return nil, fmt.Errorf("%s: %w", block.DefRange().String(), err)
			}
		}
		logger.Debug("Sheet file applied.", "file", f.name)
	}

	logger.Debug("Sheet loaded.", "files", len(files), "steps", len(builder.Steps()))
	return builder, nil
}

func (l *Loader) applyParam(builder *sheet.Builder, block *hclsyntax.Block) error {
	var p schema.Param
	if diags := gohcl.DecodeBody(block.Body, nil, &p); diags.HasErrors() {
		return diags
	}
	p.Name = blockLabel(block)
	value, err := decodeQuantity(p.Value)
	if err != nil {
		return err
	}
	return builder.AddParam(p.Name, p.Symbol, value, stepOptions(p.Desc, p.Hidden, p.Format, "")...)
}

func (l *Loader) applyEquation(builder *sheet.Builder, block *hclsyntax.Block) error {
	var e schema.Equation
	if diags := gohcl.DecodeBody(block.Body, nil, &e); diags.HasErrors() {
		return diags
	}
	e.Name = blockLabel(block)
	return builder.AddEquation(e.Name, e.Symbol, e.Formula, stepOptions(e.Desc, e.Hidden, e.Format, e.Unit)...)
}

func (l *Loader) applyCheck(builder *sheet.Builder, block *hclsyntax.Block) error {
	var c schema.Check
	if diags := gohcl.DecodeBody(block.Body, nil, &c); diags.HasErrors() {
		return diags
	}
	c.Name = blockLabel(block)
	return builder.AddCheck(c.Name, c.Formula, stepOptions(c.Desc, false, "", "")...)
}

// blockLabel returns a block's name label. gohcl.DecodeBody only sees
// the block body, so the label-tagged Name fields must be filled from
// the block itself.
func blockLabel(block *hclsyntax.Block) string {
	if len(block.Labels) == 0 {
		return ""
	}
	return block.Labels[0]
}

func stepOptions(desc string, hidden bool, format, unit string) []sheet.StepOption {
	var opts []sheet.StepOption
	if desc != "" {
		opts = append(opts, sheet.WithDesc(desc))
	}
	if hidden {
		opts = append(opts, sheet.Hidden())
	}
	if format != "" {
		opts = append(opts, sheet.WithFormat(format))
	}
	if unit != "" {
		opts = append(opts, sheet.WithUnit(unit))
	}
	return opts
}

// decodeQuantity evaluates a param's value expression. A string is read
// as a quantity literal ("10 kN"); a bare number is dimensionless.
func decodeQuantity(expr hcl.Expression) (quantity.Quantity, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return quantity.Quantity{}, diags
	}
	switch {
	case val.Type() == cty.String:
		return quantity.Parse(val.AsString())
	case val.Type() == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return quantity.FromFloat(f), nil
	default:
		return quantity.Quantity{}, fmt.Errorf("param value must be a string quantity literal or a number, got %s", val.Type().FriendlyName())
	}
}
