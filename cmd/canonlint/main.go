// Command canonlint validates canonical Scripture corpora: it loads an
// edition from a supported format, converts it to the canonical model, and
// audits the result for structural defects.
//
// Exit codes: 0 clean, 1 defects found, 2 input could not be converted.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/canonlint/canonlint/core/audit"
	"github.com/canonlint/canonlint/core/canon"
	"github.com/canonlint/canonlint/core/convert"
	"github.com/canonlint/canonlint/core/ref"
	"github.com/canonlint/canonlint/core/scripture"
	"github.com/canonlint/canonlint/internal/logging"
	"github.com/canonlint/canonlint/internal/source"
	"github.com/canonlint/canonlint/internal/sqlite"
)

const version = "0.2.0"

const (
	exitDefects    = 1
	exitConversion = 2
)

// CLI defines the command-line interface for canonlint.
var CLI struct {
	LogLevel  string `help:"Log level (debug, info, warn, error)" default:"info"`
	LogFormat string `help:"Log format (text, json)" default:"text"`

	Lint        LintCmd        `cmd:"" help:"Validate an edition and report defects"`
	Convert     ConvertCmd     `cmd:"" help:"Convert an edition to canonical JSON"`
	Books       BooksCmd       `cmd:"" help:"Print the canonical book catalog"`
	Fingerprint FingerprintCmd `cmd:"" help:"Print the content fingerprint of an edition"`
	Version     VersionCmd     `cmd:"" help:"Print version information"`
}

// exitError carries a process exit code through kong's Run chain.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// loadTranslation loads and converts an edition, logging the run.
func loadTranslation(ctx context.Context, path, formatFlag string) (*scripture.Translation, error) {
	var (
		legacy convert.Legacy
		meta   scripture.Meta
		err    error
	)
	if formatFlag != "" {
		legacy, meta, err = source.LoadAs(path, source.Format(formatFlag))
	} else {
		legacy, meta, err = source.Load(path)
	}
	if err != nil {
		return nil, err
	}

	t, err := convert.Convert(legacy, meta)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// LintCmd validates an edition and reports defects.
type LintCmd struct {
	Path   string `arg:"" help:"Path to edition file" type:"existingfile"`
	Format string `help:"Input format (legacy-json, zefania, mybible); detected when empty"`
	Focus  string `help:"Restrict the report to a reference scope (e.g. 'Genesis 3')"`
	JSON   bool   `help:"Output the full result as JSON"`
}

func (c *LintCmd) Run() error {
	ctx := logging.WithRunID(context.Background(), uuid.NewString())
	start := time.Now()
	logging.LintRun(ctx, c.Path, c.Format)

	var focus *ref.Ref
	if c.Focus != "" {
		r, err := ref.Parse(c.Focus)
		if err != nil {
			return fmt.Errorf("bad --focus: %w", err)
		}
		focus = r
	}

	t, err := loadTranslation(ctx, c.Path, c.Format)
	if err != nil {
		logging.ConversionError(ctx, c.Path, err)
		return &exitError{code: exitConversion, err: err}
	}

	result, err := audit.Validate(t)
	if err != nil {
		return &exitError{code: exitConversion, err: err}
	}
	if focus != nil {
		result = filterResult(result, focus)
	}

	logging.LintResult(ctx, len(result.Defects), len(result.Warnings), time.Since(start))

	if c.JSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		fmt.Println(result.Summary())
	}

	if len(result.Defects) > 0 {
		return &exitError{
			code: exitDefects,
			err:  fmt.Errorf("%d defect(s) found", len(result.Defects)),
		}
	}
	return nil
}

// filterResult narrows a result to the defects inside the focus scope.
// Statistics still describe the whole corpus.
func filterResult(r *audit.Result, focus *ref.Ref) *audit.Result {
	out := &audit.Result{Stats: r.Stats}
	for _, d := range r.Defects {
		if d.Book != focus.Book {
			continue
		}
		// Book-level defects pass any scope on the book; chapter-level
		// ones must hit the focused chapter.
		if d.Chapter != 0 && !focus.ContainsChapter(d.Book, d.Chapter) {
			continue
		}
		out.Defects = append(out.Defects, d)
	}
	out.Warnings = r.Warnings
	return out
}

// ConvertCmd converts an edition to canonical JSON.
type ConvertCmd struct {
	Path string   `arg:"" help:"Path to edition file" type:"existingfile"`
	Out  string   `required:"" help:"Output path for canonical JSON" type:"path"`
	Name string   `help:"Override edition name"`
	Code string   `help:"Override edition code"`
	Year int      `help:"Override publication year"`
	Lang []string `help:"Override language list"`

	Format string `help:"Input format (legacy-json, zefania, mybible); detected when empty"`
}

func (c *ConvertCmd) Run() error {
	ctx := logging.WithRunID(context.Background(), uuid.NewString())

	t, err := loadTranslation(ctx, c.Path, c.Format)
	if err != nil {
		logging.ConversionError(ctx, c.Path, err)
		return &exitError{code: exitConversion, err: err}
	}

	if c.Name != "" {
		t.Meta.Name = c.Name
	}
	if c.Code != "" {
		t.Meta.Code = c.Code
	}
	if c.Year != 0 {
		t.Meta.Year = c.Year
	}
	if len(c.Lang) > 0 {
		t.Meta.Languages = c.Lang
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}

	books, _ := t.Local()
	fmt.Printf("Converted: %s\n", c.Path)
	fmt.Printf("  Edition: %s (%s)\n", t.Meta.Name, t.Meta.Code)
	fmt.Printf("  Books: %d\n", books.Len())
	fmt.Printf("  Output: %s\n", c.Out)
	return nil
}

// BooksCmd prints the canonical book catalog.
type BooksCmd struct {
	Aliases bool `help:"Also list accepted alternate spellings"`
}

func (c *BooksCmd) Run() error {
	fmt.Printf("%-4s %-8s %s\n", "#", "ID", "NAME")
	for i, id := range canon.Order() {
		fmt.Printf("%-4d %-8s %s\n", i+1, id, id.Name())
		if c.Aliases {
			for _, a := range id.Aliases() {
				fmt.Printf("     %-8s %s\n", "", a)
			}
		}
	}
	fmt.Printf("\nTotal: %d books\n", canon.Count)
	return nil
}

// FingerprintCmd prints the content fingerprint of an edition.
type FingerprintCmd struct {
	Path   string `arg:"" help:"Path to edition file" type:"existingfile"`
	Format string `help:"Input format (legacy-json, zefania, mybible); detected when empty"`
}

func (c *FingerprintCmd) Run() error {
	ctx := logging.WithRunID(context.Background(), uuid.NewString())

	t, err := loadTranslation(ctx, c.Path, c.Format)
	if err != nil {
		logging.ConversionError(ctx, c.Path, err)
		return &exitError{code: exitConversion, err: err}
	}

	fp, err := scripture.Fingerprint(t)
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s\n", fp, c.Path)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("canonlint %s\n", version)
	info := sqlite.GetInfo()
	fmt.Printf("  sqlite driver: %s (%s)\n", info.Package, info.DriverType)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("canonlint"),
		kong.Description("Canonical Scripture corpus linter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))

	err := ctx.Run()
	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprintf(os.Stderr, "canonlint: %v\n", ee.err)
		os.Exit(ee.code)
	}
	ctx.FatalIfErrorf(err)
}
