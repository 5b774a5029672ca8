//go:build stdlib_regexp

package internal

import "regexp"

// CompileRegexp builds a Matcher on the standard library engine.
func CompileRegexp(expr string, opts CompileOptions) (Matcher, error) {
	if opts.CaseInsensitive {
		expr = "(?i)" + expr
	}
	return regexp.Compile(expr)
}
