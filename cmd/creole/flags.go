package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags every invocation understands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds flags controlling the HTML output.
type renderFlags struct {
	xhtml     bool
	fullPage  bool
	title     string
	cssPath   string
	highlight string
}

// convertFlags holds all flags for a conversion run.
type convertFlags struct {
	common      commonFlags
	render      renderFlags
	output      string
	baseURL     string
	workers     int
	showVersion bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing")
}

// addRenderFlags adds output rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.BoolVar(&f.xhtml, "xhtml", false, "render void tags self-closing (<br/>)")
	fs.BoolVar(&f.fullPage, "full-page", false, "wrap the fragment in a complete HTML5 document")
	fs.StringVar(&f.title, "title", "", "document title for --full-page (\"\" = first heading)")
	fs.StringVar(&f.cssPath, "css", "", "stylesheet file to inject with --full-page")
	fs.StringVar(&f.highlight, "highlight", "", "chroma language for preformatted blocks")
}

// parseFlags parses command-line flags and returns the positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("creole", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVar(&f.baseURL, "base-url", "", "prefix for non-absolute link and image targets")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.showVersion, "version", false, "show version and exit")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
