package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: creole [flags] [path...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Creole wiki markup to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  path    Markup file or directory (.creole, .wiki, .txt).")
	fmt.Fprintln(w, "          With no paths, reads stdin and writes stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>       Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --xhtml             Self-closing void tags (<br/>, <img/>, <hr/>)")
	fmt.Fprintln(w, "      --full-page         Wrap output in a complete HTML5 document")
	fmt.Fprintln(w, "      --title <s>         Document title (\"\" = first heading)")
	fmt.Fprintln(w, "      --css <path>        Stylesheet to inject with --full-page")
	fmt.Fprintln(w, "      --highlight <lang>  Syntax-highlight preformatted blocks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Links:")
	fmt.Fprintln(w, "      --base-url <url>    Prefix for non-absolute link targets")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show per-file timing and headings")
	fmt.Fprintln(w, "      --version           Show version and exit")
}
