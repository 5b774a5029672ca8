//go:build !stdlib_regexp

package internal

import "github.com/wasilibs/go-re2"

// CompileRegexp builds a Matcher on the RE2 engine. The wasm-backed
// engine needs no cgo and behaves the same on every platform; build with
// the stdlib_regexp tag to use the standard library engine instead.
func CompileRegexp(expr string, opts CompileOptions) (Matcher, error) {
	if opts.CaseInsensitive {
		expr = "(?i)" + expr
	}
	return re2.Compile(expr)
}
