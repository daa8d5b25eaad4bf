package creole

// Result is the outcome of one parse. Immutable once returned.
type Result struct {
	// HTML is the fragment markup, without any <html> or <body> wrapper.
	HTML string

	// Heading is the HTML-escaped text of the first heading encountered,
	// or "" if the input had no headings. Useful for page titles and
	// tables of contents.
	Heading string
}

// Resolver rewrites non-absolute link and image targets.
//
// It is invoked with any target that does not begin with an RFC 3986 scheme
// followed by "://", and must return the string to use as the final href or
// src. Implementations must not fail: whatever they return is emitted as-is.
type Resolver interface {
	Resolve(uri string) string
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(uri string) string

// Resolve calls f(uri).
func (f ResolverFunc) Resolve(uri string) string { return f(uri) }

// Option configures a Parser.
type Option func(*Parser)

// WithResolver sets the link resolver. A nil resolver leaves all
// non-absolute targets unchanged.
func WithResolver(r Resolver) Option {
	return func(p *Parser) {
		p.resolver = r
	}
}

// WithResolverFunc sets the link resolver from a plain function.
func WithResolverFunc(f func(uri string) string) Option {
	return func(p *Parser) {
		p.resolver = ResolverFunc(f)
	}
}

// WithXHTML renders void elements with a self-closing suffix (<br/>, <img/>,
// <hr/>) for XHTML-conformant output. The default is HTML5 start tags.
func WithXHTML() Option {
	return func(p *Parser) {
		p.xhtml = true
	}
}
