package internal

import "strings"

// metachars marks a needle as probably being a regular expression.
const metachars = `$^.*+?[](){}|\`

// LooksLikeRegex reports whether needle contains regex syntax. The check
// is deliberately shallow: it probes for metacharacters without parsing,
// so a hit only means the needle should go to the regex engine, not that
// it will compile.
func LooksLikeRegex(needle string) bool {
	return strings.ContainsAny(needle, metachars)
}
