package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	creole "github.com/alnah/go-creole"
	"github.com/alnah/go-creole/internal/fileutil"
	"github.com/alnah/go-creole/internal/pipeline"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for conversion operations.
var (
	ErrReadMarkup         = errors.New("failed to read markup file")
	ErrReadCSS            = errors.New("failed to read CSS file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrInvalidExtension   = errors.New("file must have a .creole, .wiki, or .txt extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// markupExtensions lists the file extensions treated as wiki markup.
var markupExtensions = map[string]bool{
	".creole": true,
	".wiki":   true,
	".txt":    true,
}

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// renderParams bundles everything a worker needs to turn markup into the
// final HTML text.
type renderParams struct {
	parser    *creole.Parser
	fullPage  bool
	title     string // raw, overrides the first heading when non-empty
	css       string
	highlight string
}

// newParams builds the shared render parameters from the merged config.
// CSS is read once here rather than per file.
func newParams(cfg *Config) (*renderParams, error) {
	var opts []creole.Option
	if cfg.Render.XHTML {
		opts = append(opts, creole.WithXHTML())
	}
	if cfg.Links.BaseURL != "" {
		opts = append(opts, creole.WithResolver(newBaseResolver(cfg.Links.BaseURL)))
	}

	params := &renderParams{
		parser:    creole.New(opts...),
		fullPage:  cfg.Render.FullPage,
		title:     cfg.Render.Title,
		highlight: cfg.Render.Highlight,
	}

	if cfg.Render.CSSPath != "" {
		data, err := os.ReadFile(cfg.Render.CSSPath) // #nosec G304 -- CSS path is user-provided
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		params.css = string(data)
	}

	if cfg.Render.Highlight != "" && cfg.Render.FullPage {
		highlightCSS, err := pipeline.HighlightCSS()
		if err != nil {
			return nil, err
		}
		params.css = highlightCSS + params.css
	}

	return params, nil
}

// newBaseResolver prefixes non-absolute link targets with a base URL.
func newBaseResolver(base string) creole.Resolver {
	base = strings.TrimRight(base, "/")
	return creole.ResolverFunc(func(uri string) string {
		return base + "/" + strings.TrimLeft(uri, "/")
	})
}

// render converts one document's markup to its final HTML text. The second
// return value is the document's first heading (escaped, "" if none).
func render(markup string, params *renderParams) (string, string, error) {
	result := params.parser.ParseString(markup)
	html := result.HTML

	if params.highlight != "" {
		highlighted, err := pipeline.HighlightPre(html, params.highlight)
		if err != nil {
			return "", "", err
		}
		html = highlighted
	}

	if params.fullPage {
		title := result.Heading // already escaped
		if params.title != "" {
			title = pipeline.EscapeTitle(params.title)
		}
		if title == "" {
			title = "Document"
		}
		html = pipeline.Document(html, title, params.css)
	}

	return html, result.Heading, nil
}

// discoverFiles finds all markup files to convert from the positional args.
func discoverFiles(inputs []string, outputDir string) ([]FileToConvert, error) {
	var files []FileToConvert
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !markupExtensions[filepath.Ext(input)] {
				return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(input))
			}
			files = append(files, FileToConvert{
				InputPath:  input,
				OutputPath: resolveOutputPath(input, outputDir, ""),
			})
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !markupExtensions[filepath.Ext(path)] {
				return nil
			}
			files = append(files, FileToConvert{
				InputPath:  path,
				OutputPath: resolveOutputPath(path, outputDir, input),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// resolveOutputPath determines the HTML output path for a markup file.
// An outputDir ending in .html names the output file directly; otherwise
// the input's directory structure is mirrored under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := filepath.Base(fileutil.ReplaceExt(inputPath, ".html"))

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if strings.HasSuffix(outputDir, ".html") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	return nil
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Heading    string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently. The parser inside params is
// safe for concurrent use, so workers share it.
func convertBatch(files []FileToConvert, params *renderParams, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = convertFile(files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(f FileToConvert, params *renderParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkup, err)
		result.Duration = time.Since(start)
		return result
	}

	html, heading, err := render(string(content), params)
	result.Heading = heading
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(f.OutputPath, []byte(html), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	result.Duration = time.Since(start)
	return result
}

// convertStdin reads markup from stdin and writes HTML to stdout, or to the
// output path when one was given.
func convertStdin(env *Environment, params *renderParams, outputPath string) error {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkup, err)
	}

	html, _, err := render(string(content), params)
	if err != nil {
		return err
	}

	if outputPath == "" || !strings.HasSuffix(outputPath, ".html") {
		_, err = io.WriteString(env.Stdout, html)
		return err
	}

	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(outputPath, []byte(html), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults reports conversion outcomes and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			heading := r.Heading
			if heading == "" {
				heading = "(no heading)"
			}
			fmt.Fprintf(env.Stdout, "%s -> %s (%v) %s\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond), heading)
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// run executes a conversion for the parsed flags and positional args.
func run(flags *convertFlags, inputs []string, workers int, env *Environment) error {
	cfg := DefaultConfig()
	if flags.common.config != "" {
		loaded, err := LoadConfig(flags.common.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.applyFlags(flags)

	params, err := newParams(cfg)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		return convertStdin(env, params, flags.output)
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputs, outputDir)
	if err != nil {
		return err
	}

	results := convertBatch(files, params, workers)
	if failed := printResults(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(results))
	}
	return nil
}
