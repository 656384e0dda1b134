package naming

import "regexp"

// CleanupAttempt is a single rewrite applied to an on-disk name while
// searching for a matching catalog title.
type CleanupAttempt struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// CleanupAttempts is the fixed priority order of rewrites applied to a
// filename between catalog searches. Each step is applied once and the
// search retried, until a result set comes back or the list is exhausted.
//
// The SxxExx strip appears twice: the first deletion can reveal another
// occurrence further along the name. Kept deliberately.
var CleanupAttempts = []CleanupAttempt{
	// Trailing resolution or season markers and everything after
	{regexp.MustCompile(`(\.|\s)([sS]\d{2,}|(720|1080|2160)p)(\.|\s).*`), ""},
	// Dot separated words to space separated
	{regexp.MustCompile(`\.`), " "},
	// Trailing season/episode markers and everything after
	{regexp.MustCompile(`(\.|\s)[sS]\d{2,}[eE]\d{2,}.*`), ""},
	// Trailing 4-digit year tokens and everything after
	{regexp.MustCompile(`(\.|\s)\d{4}.*`), ""},
	// Season/episode markers again
	{regexp.MustCompile(`(\.|\s)[sS]\d{2,}[eE]\d{2,}.*`), ""},
	// Parenthesized 4-digit years and everything after
	{regexp.MustCompile(`(\.|\s)\(\d{4}\).*`), ""},
	// Season range tokens like S01-S03
	{regexp.MustCompile(`(s|S)\d{2,}(-|_)(s|S)\d{2,}`), ""},
	// Season+episode tokens with trailing content
	{regexp.MustCompile(`(s|S)\d{2,}(e|E)\d{2,}.*`), ""},
	// A lone season token
	{regexp.MustCompile(`(s|S)\d{2,}`), ""},
}

// Apply runs the rewrite against name.
func (a CleanupAttempt) Apply(name string) string {
	return a.Pattern.ReplaceAllString(name, a.Replacement)
}
