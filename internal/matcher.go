package internal

import "strings"

// Matcher is the matching surface the wrapper needs from a compiled
// needle, whether the needle ended up in the regex engine or in plain
// substring search.
type Matcher interface {
	// MatchString reports whether s contains at least one match.
	MatchString(s string) bool
	// FindStringIndex returns the location of the first match in s as a
	// [start, end) byte-offset pair, or nil if there is no match.
	FindStringIndex(s string) []int
	// FindAllStringIndex returns the locations of all successive
	// non-overlapping matches, at most n of them when n >= 0.
	FindAllStringIndex(s string, n int) [][]int
}

// CompileOptions configures matcher construction.
type CompileOptions struct {
	// CaseInsensitive folds case: lowercased comparison for literal
	// needles, the engine's own fold flag for regexes.
	CaseInsensitive bool
}

// literalMatcher finds a needle by substring search, mirroring the
// regexp index conventions so the caller has a single code path.
type literalMatcher struct {
	needle string
	fold   bool
}

// NewLiteral returns a Matcher backed by substring search. Construction
// cannot fail; any string, including the empty string, is a valid
// literal needle.
func NewLiteral(needle string, opts CompileOptions) Matcher {
	if opts.CaseInsensitive {
		needle = strings.ToLower(needle)
	}
	return &literalMatcher{needle: needle, fold: opts.CaseInsensitive}
}

func (m *literalMatcher) haystack(s string) string {
	if m.fold {
		return strings.ToLower(s)
	}
	return s
}

func (m *literalMatcher) MatchString(s string) bool {
	return strings.Contains(m.haystack(s), m.needle)
}

func (m *literalMatcher) FindStringIndex(s string) []int {
	i := strings.Index(m.haystack(s), m.needle)
	if i < 0 {
		return nil
	}
	return []int{i, i + len(m.needle)}
}

func (m *literalMatcher) FindAllStringIndex(s string, n int) [][]int {
	s = m.haystack(s)
	var locs [][]int
	for from := 0; n < 0 || len(locs) < n; {
		i := strings.Index(s[from:], m.needle)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(m.needle)
		locs = append(locs, []int{start, end})
		if end == start {
			// Empty needle: advance a byte so each position matches once.
			end++
		}
		from = end
		if from > len(s) {
			break
		}
	}
	return locs
}
