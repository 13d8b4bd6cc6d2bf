/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package glob

import (
	"bytes"
	"strings"
)

// braceScratchSize bounds the stack buffer used to synthesize brace
// alternative patterns. Longer synthesized patterns fall back to the heap.
const braceScratchSize = 512

// Matcher is the backtracking engine for ModeComplex patterns. It holds the
// pattern bytes, a pre-upper-cased copy for case-insensitive runs, and the
// first-literal anchor from analysis. A Matcher is immutable after
// construction and safe for concurrent use: Match mutates only locals.
type Matcher struct {
	pat           []byte
	upper         []byte
	caseSensitive bool

	anchor      byte
	anchorUpper byte
	hasAnchor   bool
}

// NewMatcher builds a Matcher for pattern from its descriptor. The
// upper-cased pattern copy is only materialized for case-insensitive
// matchers.
func NewMatcher(pattern string, d Descriptor, caseSensitive bool) *Matcher {
	m := &Matcher{
		pat:           []byte(pattern),
		caseSensitive: caseSensitive,
		anchor:        d.FirstLiteral,
		anchorUpper:   d.FirstLiteralUpper,
		hasAnchor:     d.HasFirstLiteral,
	}
	if !caseSensitive {
		m.upper = upperBytes(pattern)
	}
	return m
}

// Match reports whether s matches the pattern. The first-literal anchor
// gives a cheap rejection before the backtracking loop runs: any literal
// byte outside a class or brace body must occur somewhere in the candidate.
func (m *Matcher) Match(s string) bool {
	if m.hasAnchor {
		if m.caseSensitive {
			if strings.IndexByte(s, m.anchor) < 0 {
				return false
			}
		} else if indexByteFold(s, m.anchorUpper) < 0 {
			return false
		}
	}
	strat := m.newStrategy()
	if m.caseSensitive {
		return m.run(m.pat, s, strat)
	}
	return m.run(m.upper, s, strat)
}

// run is the core loop: explicit cursors with greedy single-star
// backtracking, probing the wildcard handlers in fixed order. Double-star
// must be probed before single star so `**` is not read as two independent
// stars. Double-star and a successful brace group resolve the remaining
// match in full and return immediately; every other mismatch resumes at
// the last unresolved star or fails.
func (m *Matcher) run(pat []byte, cand string, strat *strategy) bool {
	pIdx, cIdx := 0, 0
	starIdx, matchIdx := -1, 0

	for cIdx < len(cand) {
		if pIdx < len(pat) {
			switch pc := pat[pIdx]; {
			case pc == wildcardStar && pIdx+1 < len(pat) && pat[pIdx+1] == wildcardStar:
				return strat.doubleStar(pat[pIdx+2:], cand[cIdx:])

			case pc == wildcardStar:
				// Tentatively match zero bytes and record the backtrack
				// point. Each later failure re-runs from here with the
				// star consuming one more byte.
				starIdx, matchIdx = pIdx, cIdx
				pIdx++
				continue

			case pc == wildcardQuestion:
				pIdx++
				cIdx++
				continue

			case pc == wildcardBracket:
				if end := closingIndex(pat, pIdx+1, ']'); end >= 0 {
					if strat.classMatch(pat[pIdx+1:end], cand[cIdx]) {
						pIdx = end + 1
						cIdx++
						continue
					}
					break // class mismatch, backtrack
				}
				// Unterminated class degrades to a literal '['.
				if strat.eq(pc, cand[cIdx]) {
					pIdx++
					cIdx++
					continue
				}

			case pc == wildcardBrace:
				if end := closingIndex(pat, pIdx+1, '}'); end >= 0 {
					if strat.brace(pat[pIdx+1:end], pat[end+1:], cand[cIdx:]) {
						return true
					}
					break // no alternative matched here, backtrack
				}
				// Unterminated brace degrades to a literal '{'.
				if strat.eq(pc, cand[cIdx]) {
					pIdx++
					cIdx++
					continue
				}

			default:
				if strat.eq(pc, cand[cIdx]) {
					pIdx++
					cIdx++
					continue
				}
			}
		}

		// Mismatch or exhausted pattern: resume at the last star with one
		// more byte claimed, or fail.
		if starIdx < 0 {
			return false
		}
		matchIdx++
		pIdx, cIdx = starIdx+1, matchIdx
	}

	// Trailing stars (including `**`) match the empty remainder.
	for pIdx < len(pat) && pat[pIdx] == wildcardStar {
		pIdx++
	}
	return pIdx == len(pat)
}

// resolveDoubleStar matches `**`: zero or more bytes with no separator
// exclusion. It re-invokes the full matcher on the pattern remainder
// against candidate suffixes. When the remainder starts with a literal,
// the search jumps between occurrences of that byte instead of probing
// every offset.
func (m *Matcher) resolveDoubleStar(rem []byte, cand string, strat *strategy) bool {
	// Fold any stars that directly follow into this one.
	for len(rem) > 0 && rem[0] == wildcardStar {
		rem = rem[1:]
	}
	if len(rem) == 0 {
		return true
	}

	// A separator directly after `**` may collapse with it, so that
	// `a/**/z` accepts `a/z` and `src/**/*.cs` accepts `src/Foo.cs`.
	if rem[0] == '/' && m.run(rem[1:], cand, strat) {
		return true
	}

	if IsWildcardByte(rem[0]) {
		for i := 0; i <= len(cand); i++ {
			if m.run(rem, cand[i:], strat) {
				return true
			}
		}
		return false
	}

	for base := 0; base <= len(cand); {
		j := strat.anchorIndex(cand[base:], rem[0])
		if j < 0 {
			return false
		}
		base += j
		if m.run(rem, cand[base:], strat) {
			return true
		}
		base++
	}
	return false
}

// resolveBrace matches a brace group against the candidate remainder. For
// each comma-separated alternative it synthesizes alternative+remainder
// and re-invokes the full matcher, succeeding on the first alternative
// that matches. The synthesized pattern lives in a stack buffer up to
// braceScratchSize bytes.
func (m *Matcher) resolveBrace(body, rem []byte, cand string, strat *strategy) bool {
	var scratch [braceScratchSize]byte
	start := 0
	for i := 0; i <= len(body); i++ {
		if i < len(body) && body[i] != ',' {
			continue
		}
		alt := body[start:i]
		start = i + 1

		var synth []byte
		if n := len(alt) + len(rem); n <= braceScratchSize {
			synth = scratch[:0]
		} else {
			synth = make([]byte, 0, n)
		}
		synth = append(synth, alt...)
		synth = append(synth, rem...)

		if m.run(synth, cand, strat) {
			return true
		}
	}
	return false
}

// closingIndex returns the index of the first ch at or after from, or -1.
func closingIndex(pat []byte, from int, ch byte) int {
	if from >= len(pat) {
		return -1
	}
	i := bytes.IndexByte(pat[from:], ch)
	if i < 0 {
		return -1
	}
	return from + i
}
