// Package pipeline holds the post-parse HTML stages used by the creole CLI:
// wrapping a fragment in a complete HTML5 document with optional CSS, and
// optional syntax highlighting of preformatted blocks.
//
// The stages operate on the parser's fragment output as text. They are kept
// out of the core library on purpose: the parser's contract is fragment
// markup, and everything here is presentation layered on top.
package pipeline
