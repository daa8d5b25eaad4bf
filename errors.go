package creole

import "errors"

// Sentinel errors for library operations.
//
// The parsing engine itself never fails: malformed markup always degrades to
// literal text. Errors can only originate from the source reader.
var (
	ErrReadSource = errors.New("reading markup source failed")
)
