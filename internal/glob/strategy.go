package glob

import "strings"

// strategy bundles the comparison primitives that differ between case
// modes, so the matcher loop itself stays case agnostic. A strategy is
// built fresh per match call and must never mix primitives from the two
// families.
//
// In the case-insensitive family the pattern side is always a byte from the
// matcher's pre-upper-cased pattern buffer; only the candidate byte is
// folded at comparison time.
type strategy struct {
	eq          func(p, c byte) bool
	classMatch  func(body []byte, c byte) bool
	anchorIndex func(s string, b byte) int
	doubleStar  func(rem []byte, cand string) bool
	brace       func(body, rem []byte, cand string) bool
}

func eqByte(p, c byte) bool { return p == c }

func eqByteFold(p, c byte) bool { return p == upperByte(c) }

// newStrategy binds the primitives of one case family plus the matcher's
// recursive double-star and brace resolvers, which need the strategy back
// so nested matches keep the same case handling.
func (m *Matcher) newStrategy() *strategy {
	s := &strategy{}
	if m.caseSensitive {
		s.eq = eqByte
		s.classMatch = matchClass
		s.anchorIndex = strings.IndexByte
	} else {
		s.eq = eqByteFold
		s.classMatch = matchClassFold
		s.anchorIndex = indexByteFold
	}
	s.doubleStar = func(rem []byte, cand string) bool {
		return m.resolveDoubleStar(rem, cand, s)
	}
	s.brace = func(body, rem []byte, cand string) bool {
		return m.resolveBrace(body, rem, cand, s)
	}
	return s
}
