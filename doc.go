// Package creole converts Creole 1.0 wiki markup to HTML fragment text.
//
// # Quick Start
//
// Create a parser and feed it markup:
//
//	p := creole.New()
//	result := p.ParseString("== Title ==\n\nHello **world**.")
//	fmt.Println(result.HTML)    // the HTML fragment
//	fmt.Println(result.Heading) // "Title" (first heading, escaped)
//
// For one-off conversions the package-level Convert function does the same
// without keeping a parser around:
//
//	result := creole.Convert("//hello//")
//
// The output is HTML fragment text only, intended for inclusion inside the
// <body> or a <div> of a page. No document wrapper is produced; see the
// creole CLI for the full-document mode.
//
// # Dialect
//
// The parser implements Creole 1.0 (http://www.wikicreole.org/wiki/Creole1.0)
// plus a few common extensions:
//
//   - ^^superscript^^, ,,subscript,, and __underline__ inline markup
//   - ; term and : description definition lists
//   - consecutive table cell markers merged into one cell with a colspan
//     attribute, the last marker deciding between <th> and <td>
//   - an optional fragment id after a heading's closing equal signs, emitted
//     as the heading's id attribute: "== Title == overview" gives
//     <h2 id="overview">Title</h2>
//
// # Error Philosophy
//
// Parsing never fails. Malformed markup (an unclosed [[link, an unclosed
// {{image, an illegal list-nesting jump) degrades to literal text so the
// author can see what was not recognized. The only error the package returns
// comes from a failing io.Reader passed to Parse.
//
// # Link Resolution
//
// Bracketed link and image targets that are not absolute URIs are passed to
// an optional caller-supplied Resolver:
//
//	p := creole.New(creole.WithResolverFunc(func(uri string) string {
//	    return "/wiki/" + uri
//	}))
//
// A target counts as absolute when it starts with an RFC 3986 scheme followed
// by "://". The slashes are required so that interwiki targets such as
// "WikiPedia:Creole" still reach the resolver.
//
// # Output Dialect
//
// By default void elements render as HTML5 start tags (<br>, <img>, <hr>).
// Use WithXHTML for self-closing forms (<br/>, <img/>, <hr/>).
//
// # Concurrency
//
// A Parser holds only immutable configuration. One instance may be shared by
// any number of goroutines calling Parse or ParseString concurrently.
package creole
