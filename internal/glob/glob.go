// Package glob contains the core implementation of the glob matching engine.
// It is intended for internal use by the parent goglob package.
//
// The engine is byte oriented and tuned for ASCII input: case-insensitive
// matching folds ASCII letters only. Patterns support `*`, `**`, `?`,
// character classes (`[a-z]`) and brace alternation (`{a,b,c}`).
package glob

import "strings"

const (
	wildcardStar     = '*'
	wildcardQuestion = '?'
	wildcardBracket  = '['
	wildcardBrace    = '{'
)

// Lookup table for fast wildcard detection - initialized at compile time
var isWildcardTable = [256]bool{
	'*': true,
	'?': true,
	'[': true,
	'{': true,
}

// IsWildcardByte checks if a byte starts a wildcard token.
func IsWildcardByte(b byte) bool {
	return isWildcardTable[b]
}

// Match reports whether pattern matches s. It analyzes the pattern, runs the
// direct comparison for simple patterns and falls back to the backtracking
// matcher for everything else. It never fails: malformed patterns degrade to
// literal interpretation of the offending byte.
func Match(pattern, s string, caseSensitive bool) bool {
	d := Analyze(pattern)
	if d.Mode != ModeComplex {
		return MatchSimple(d, s, caseSensitive)
	}
	return NewMatcher(pattern, d, caseSensitive).Match(s)
}

func upperByte(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lowerByte(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

func upperBytes(s string) []byte {
	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		buf[i] = upperByte(s[i])
	}
	return buf
}

// indexByteFold returns the first position in s holding either case form of
// the already upper-cased byte b, or -1.
func indexByteFold(s string, b byte) int {
	i := strings.IndexByte(s, b)
	if lo := lowerByte(b); lo != b {
		if j := strings.IndexByte(s, lo); j >= 0 && (i < 0 || j < i) {
			i = j
		}
	}
	return i
}
