// Package goglob matches strings against glob patterns. It is designed for
// performance-critical filtering of ASCII or byte-oriented strings: simple
// patterns are rewritten into direct string comparisons by a one-pass
// analyzer, and only genuinely complex patterns reach the backtracking
// engine.
//
// # Supported syntax:
//
//   - `*`: matches any run of characters (including zero characters).
//   - `**`: matches any run of characters; a separator directly after it
//     may collapse with it, so `a/**/z` accepts `a/z`.
//   - `?`: matches exactly one character.
//   - `[a-z]`: matches one character from a literal or range set.
//   - `{cat,dog}`: matches exactly one of the listed literal alternatives.
//
// Matching never fails: malformed bracket or brace syntax degrades to a
// literal interpretation of the opening character. Negated character
// classes are not supported.
package goglob

import (
	"github.com/twinfer/goglob/internal/glob"
)

// Match returns true if the pattern matches the string s, comparing
// literals case-sensitively. It operates on bytes and does not fold
// multi-byte Unicode characters.
func Match(pattern, s string) bool {
	return glob.Match(pattern, s, true)
}

// MatchFold returns true if the pattern matches the string s in a
// case-insensitive manner. It uses ASCII case-folding: the pattern is
// upper-cased once and each candidate byte is folded at comparison time.
func MatchFold(pattern, s string) bool {
	return glob.Match(pattern, s, false)
}

// Matches reports whether pattern matches s under the given case mode. It
// is the flag-parameterized form of Match and MatchFold for callers that
// carry case-sensitivity as data.
func Matches(pattern, s string, caseSensitive bool) bool {
	return glob.Match(pattern, s, caseSensitive)
}
