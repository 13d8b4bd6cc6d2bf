package glob

import "strings"

// MatchSimple executes one of the four non-backtracking match modes against
// s. The descriptor must not be ModeComplex. All four comparisons are pure,
// allocation free, and pick their ordinal or ordinal-ignore-case variant
// from the caseSensitive flag.
func MatchSimple(d Descriptor, s string, caseSensitive bool) bool {
	switch d.Mode {
	case ModeExact:
		return matchExact(s, d.Literal, caseSensitive)
	case ModeStartsWith:
		return matchStartsWith(s, d.Literal, caseSensitive)
	case ModeEndsWith:
		return matchEndsWith(s, d.Literal, caseSensitive)
	case ModeContains:
		return matchContains(s, d.Literal, caseSensitive)
	}
	return false
}

func matchExact(s, literal string, caseSensitive bool) bool {
	if caseSensitive {
		return s == literal
	}
	return strings.EqualFold(s, literal)
}

func matchStartsWith(s, literal string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.HasPrefix(s, literal)
	}
	return len(s) >= len(literal) && strings.EqualFold(s[:len(literal)], literal)
}

func matchEndsWith(s, literal string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.HasSuffix(s, literal)
	}
	return len(s) >= len(literal) && strings.EqualFold(s[len(s)-len(literal):], literal)
}

func matchContains(s, literal string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(s, literal)
	}
	if len(literal) == 0 {
		return true
	}
	for i := 0; i+len(literal) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(literal)], literal) {
			return true
		}
	}
	return false
}
