package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLooksLikeRegex(t *testing.T) {
	for _, needle := range []string{
		"e$", "^e", "a.c", "ab*", "ab+", "ab?", "[abc]", "a]b",
		"(a)", "a)b", "a{2}", "}b", "a|b", `\d`,
	} {
		require.True(t, LooksLikeRegex(needle), "needle %q", needle)
	}

	for _, needle := range []string{
		"", "hello", "hello world", "a-b", "under_score", "100%", "a/b", "münze",
	} {
		require.False(t, LooksLikeRegex(needle), "needle %q", needle)
	}
}
