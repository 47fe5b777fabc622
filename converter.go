package figura

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jclermont/figura/docx"
	"github.com/jclermont/figura/format"
	"github.com/jclermont/figura/group"
	"github.com/jclermont/figura/model"
	"github.com/jclermont/figura/ncj"
)

// Converter provides a fluent interface for converting DOCX documents
// to NCJ. Each configuration method returns a new Converter instance,
// making it safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source
	filename string

	// Reader
	reader *docx.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:     c.filename,
		reader:       c.reader,
		ownsReader:   c.ownsReader,
		readerOpened: c.readerOpened,
		options:      c.options.clone(),
		err:          c.err,
	}
}

// MaxTitleLen sets the maximum character count for figure titles and
// for intervening text tolerated inside a column group.
func (c *Converter) MaxTitleLen(n int) *Converter {
	newConv := c.clone()
	newConv.options.maxTitleLen = n
	return newConv
}

// MaxGapParas sets the maximum number of blocks allowed between two
// images merged into the same column group.
func (c *Converter) MaxGapParas(n int) *Converter {
	newConv := c.clone()
	newConv.options.maxGapParas = n
	return newConv
}

// PageWidthRatio sets the fraction of the page width that a column
// group's summed image widths must fit within to render as a row.
func (c *Converter) PageWidthRatio(r float64) *Converter {
	newConv := c.clone()
	newConv.options.pageWidthRatio = r
	return newConv
}

// ExtractAssets enables media extraction into dir. Without it, assets
// are still hashed and referenced but no files are written.
func (c *Converter) ExtractAssets(dir string) *Converter {
	newConv := c.clone()
	newConv.options.assetsDir = dir
	newConv.options.extractAssets = true
	return newConv
}

// Debug includes the grouping reasoning log in the output report.
func (c *Converter) Debug() *Converter {
	newConv := c.clone()
	newConv.options.debug = true
	return newConv
}

// ensureReader opens the reader if not already open.
func (c *Converter) ensureReader() error {
	if c.readerOpened {
		return nil
	}
	if c.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	if f := format.Detect(c.filename); f != format.DOCX && f != format.Unknown {
		return fmt.Errorf("unsupported file format: %s", f)
	}

	r, err := docx.Open(c.filename)
	if err != nil {
		return fmt.Errorf("failed to open DOCX: %w", err)
	}
	c.reader = r
	c.ownsReader = true
	c.readerOpened = true
	return nil
}

// Close releases resources associated with the Converter.
// It is safe to call Close multiple times.
func (c *Converter) Close() error {
	if c.ownsReader && c.reader != nil {
		err := c.reader.Close()
		c.reader = nil
		c.ownsReader = false
		return err
	}
	return nil
}

// groupConfig builds the grouping configuration from the options.
func (c *Converter) groupConfig() group.Config {
	return group.Config{
		MaxTitleLen:    c.options.maxTitleLen,
		MaxGapParas:    c.options.maxGapParas,
		PageWidthRatio: c.options.pageWidthRatio,
	}
}

// Document runs the full conversion and returns the NCJ document, any
// warnings, and an error if conversion failed. Warnings indicate
// non-fatal issues such as images without a resolvable media part.
func (c *Converter) Document() (*model.ContentDoc, []Warning, error) {
	defer c.Close()
	return c.convert()
}

// Groups runs parsing, grouping, and attribution, and returns just the
// finalized figure groups. Useful for inspecting grouping decisions
// without assembling the full document.
func (c *Converter) Groups() ([]model.FigureGroup, []Warning, error) {
	defer c.Close()

	blocks, res, _, warnings, err := c.analyze()
	if err != nil {
		return nil, warnings, err
	}
	meta := ncj.DetectMeta(blocks)
	group.NewAssignerWithConfig(c.groupConfig()).Assign(res.Groups, blocks, meta.FullTitle)
	return res.Groups, warnings, nil
}

// JSON runs the full conversion and returns the NCJ document as
// indented JSON bytes.
func (c *Converter) JSON() ([]byte, []Warning, error) {
	defer c.Close()

	doc, warnings, err := c.convert()
	if err != nil {
		return nil, warnings, err
	}
	data, err := ncj.Marshal(doc)
	if err != nil {
		return nil, warnings, err
	}
	return data, warnings, nil
}

// WriteFile runs the full conversion and writes the NCJ JSON to path.
func (c *Converter) WriteFile(path string) ([]Warning, error) {
	data, warnings, err := c.JSON()
	if err != nil {
		return warnings, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return warnings, fmt.Errorf("writing output: %w", err)
	}
	return warnings, nil
}

// convert runs the fixed pipeline: parse, resolve assets, group,
// attribute, assemble.
func (c *Converter) convert() (*model.ContentDoc, []Warning, error) {
	blocks, res, assets, warnings, err := c.analyze()
	if err != nil {
		return nil, warnings, err
	}

	meta := ncj.DetectMeta(blocks)
	if meta.Title == "" || meta.Date == "" {
		// Fall back on the package's Dublin Core metadata when the body
		// carries no dated heading.
		coreTitle, coreDate := c.reader.CoreProperties()
		if meta.Title == "" {
			meta.Title = coreTitle
		}
		if meta.Date == "" {
			meta.Date = coreDate
		}
	}
	group.NewAssignerWithConfig(c.groupConfig()).Assign(res.Groups, blocks, meta.FullTitle)

	var reportWarnings []string
	for _, w := range warnings {
		reportWarnings = append(reportWarnings, w.String())
	}

	sourceFile := ""
	if c.filename != "" {
		sourceFile = filepath.Base(c.filename)
	}

	doc := ncj.Assemble(ncj.Input{
		Blocks:     blocks,
		Groups:     res.Groups,
		Reasoning:  res.Reasoning,
		Assets:     assets,
		Warnings:   reportWarnings,
		Meta:       meta,
		SourceFile: sourceFile,
		Debug:      c.options.debug,
	})
	return doc, warnings, nil
}

// analyze parses blocks, resolves assets, and runs the grouping phases.
func (c *Converter) analyze() ([]model.Block, *group.Result, []model.Asset, []Warning, error) {
	if c.err != nil {
		return nil, nil, nil, nil, c.err
	}

	// Configuration errors are fatal before any grouping begins.
	cfg := c.groupConfig()
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, nil, err
	}

	if err := c.ensureReader(); err != nil {
		return nil, nil, nil, nil, err
	}

	blocks, err := c.reader.Blocks()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	pageWidth := c.reader.PageWidthEMU()

	assetsDir := ""
	if c.options.extractAssets {
		assetsDir = c.options.assetsDir
	}
	assets, assetWarnings, err := c.reader.ResolveAssets(blocks, assetsDir)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	var warnings []Warning
	for _, msg := range assetWarnings {
		warnings = append(warnings, Warning{Stage: "assets", Message: msg})
	}

	res, err := group.NewGrouperWithConfig(cfg).Group(blocks, pageWidth)
	if err != nil {
		return nil, nil, nil, warnings, err
	}
	for _, msg := range res.Warnings {
		warnings = append(warnings, Warning{Stage: "group", Message: msg})
	}

	return blocks, res, assets, warnings, nil
}
