// Package mayberegex decides whether a search term should be treated as
// a regular expression or as a plain substring, and exposes one matching
// API over both.
//
// A needle containing regex metacharacters is handed to the regex
// engine; anything else is matched by case-insensitive substring search.
// A needle starting or ending with '-' is negative: Matches reports the
// inverted containment result.
//
//	m := mayberegex.MustNew("e$")
//	m.Matches("one") // true
//
// Matching is case-insensitive by default; AsCaseSensitive returns a
// configuration that compares exactly. Instances are safe for concurrent
// queries once configuration is done.
package mayberegex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/loremdipso/maybe-regex/internal"
)

// Mode tags how a needle will be matched.
type Mode int

const (
	// ModeLiteral matches the needle by substring search.
	ModeLiteral Mode = iota
	// ModeRegex hands the needle to the regex engine.
	ModeRegex
)

func (m Mode) String() string {
	switch m {
	case ModeRegex:
		return "regex"
	default:
		return "literal"
	}
}

// ErrInvalidPattern reports a needle that looked like a regex but did
// not compile. Needles classified as regex are never downgraded to
// literal matching; callers relying on regex semantics get an error
// instead of a silently different match.
var ErrInvalidPattern = errors.New("invalid pattern")

// MaybeRegex is a needle with a detected matching mode. The zero value
// is not usable; construct with New or MustNew.
type MaybeRegex struct {
	needle        string
	mode          Mode
	negative      bool
	caseSensitive bool
	matcher       internal.Matcher
}

// New builds a MaybeRegex from a needle.
//
// A single leading '-' marks the needle negative and is stripped; when
// there is no leading '-', a single trailing '-' does the same. The
// remaining needle is classified by a metacharacter probe and compiled
// eagerly, so a regex-looking needle that the engine rejects fails here
// with an error wrapping ErrInvalidPattern. Any needle without
// metacharacters, including the empty string, always succeeds.
func New(needle string) (*MaybeRegex, error) {
	stripped, negative := stripNegation(needle)

	mode := ModeLiteral
	if internal.LooksLikeRegex(stripped) {
		mode = ModeRegex
	}

	matcher, err := compileMatcher(stripped, mode, false)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, stripped, err)
	}

	return &MaybeRegex{
		needle:   stripped,
		mode:     mode,
		negative: negative,
		matcher:  matcher,
	}, nil
}

// MustNew is like New but panics if the needle does not compile. It
// simplifies initialization of variables holding known-good needles.
func MustNew(needle string) *MaybeRegex {
	m, err := New(needle)
	if err != nil {
		panic(`mayberegex: New(` + strconv.Quote(needle) + `): ` + err.Error())
	}
	return m
}

// stripNegation removes at most one negation marker. Leading wins, so
// "-e-" yields the needle "e-".
func stripNegation(needle string) (string, bool) {
	if strings.HasPrefix(needle, "-") {
		return needle[1:], true
	}
	if strings.HasSuffix(needle, "-") {
		return needle[:len(needle)-1], true
	}
	return needle, false
}

func compileMatcher(needle string, mode Mode, caseSensitive bool) (internal.Matcher, error) {
	opts := internal.CompileOptions{CaseInsensitive: !caseSensitive}
	if mode == ModeRegex {
		return internal.CompileRegexp(needle, opts)
	}
	return internal.NewLiteral(needle, opts), nil
}

// AsCaseSensitive returns a copy of m that matches exactly instead of
// folding case. The receiver is left unchanged, so a configured
// instance can keep being shared. Idempotent.
func (m *MaybeRegex) AsCaseSensitive() *MaybeRegex {
	if m.caseSensitive {
		return m
	}
	out := *m
	out.caseSensitive = true
	// A needle that compiled with the fold flag compiles without it.
	if matcher, err := compileMatcher(out.needle, out.mode, true); err == nil {
		out.matcher = matcher
	}
	return &out
}

// Mode returns the detected matching mode.
func (m *MaybeRegex) Mode() Mode {
	return m.mode
}

// IsRegex reports whether the needle was classified as a regex.
func (m *MaybeRegex) IsRegex() bool {
	return m.mode == ModeRegex
}

// IsNegative reports whether the needle carried a negation marker.
func (m *MaybeRegex) IsNegative() bool {
	return m.negative
}

// String returns the needle with any negation marker stripped.
func (m *MaybeRegex) String() string {
	return m.needle
}

// Matches reports whether haystack matches, honoring negation: a
// negative needle matches exactly when the haystack does NOT contain it.
func (m *MaybeRegex) Matches(haystack string) bool {
	contained := m.IsContainedWithin(haystack)
	if m.negative {
		return !contained
	}
	return contained
}

// IsContainedWithin reports whether the needle is found in haystack,
// ignoring negation. Most callers want Matches.
func (m *MaybeRegex) IsContainedWithin(haystack string) bool {
	return m.matcher.MatchString(haystack)
}

// MatchIndices returns the [start, end) byte offsets of every
// non-overlapping match in haystack, in order. Negation is ignored.
func (m *MaybeRegex) MatchIndices(haystack string) [][]int {
	return m.matcher.FindAllStringIndex(haystack, -1)
}

// MatchesExactly reports whether the needle matches the whole haystack:
// string equality for literals, a first match spanning the entire input
// for regexes. Negation is ignored.
func (m *MaybeRegex) MatchesExactly(haystack string) bool {
	loc := m.matcher.FindStringIndex(haystack)
	return len(loc) == 2 && loc[0] == 0 && loc[1] == len(haystack)
}

// StartsWith reports whether a match begins at the start of haystack.
// Negation is ignored.
func (m *MaybeRegex) StartsWith(haystack string) bool {
	loc := m.matcher.FindStringIndex(haystack)
	return len(loc) == 2 && loc[0] == 0
}

// Replace returns s with every match replaced by the result of repl,
// which receives the matched text as it appears in s. Multi-line inputs
// are handled like any other; negation is ignored.
func (m *MaybeRegex) Replace(s string, repl func(match string) string) string {
	locs := m.MatchIndices(s)
	if len(locs) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range locs {
		b.WriteString(s[last:loc[0]])
		b.WriteString(repl(s[loc[0]:loc[1]]))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// Equal reports whether both needles have the same stripped text and
// negation. Case sensitivity and mode are not part of identity.
func (m *MaybeRegex) Equal(other *MaybeRegex) bool {
	return m.needle == other.needle && m.negative == other.negative
}

// Compare orders needles by stripped text, then negation (non-negative
// first). It returns -1, 0 or 1, suitable for slices.SortFunc.
func (m *MaybeRegex) Compare(other *MaybeRegex) int {
	if c := strings.Compare(m.needle, other.needle); c != 0 {
		return c
	}
	switch {
	case m.negative == other.negative:
		return 0
	case other.negative:
		return -1
	default:
		return 1
	}
}
