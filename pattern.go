package goglob

import (
	"github.com/twinfer/goglob/internal/glob"
)

// Pattern is a compiled glob pattern. Compiling runs the analyzer once and,
// for complex patterns, builds the backtracking matcher up front, so the
// per-match cost of repeated use is just the comparison itself.
//
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	source        string
	caseSensitive bool
	desc          glob.Descriptor
	matcher       *glob.Matcher // nil unless the pattern is complex
}

// Compile analyzes pattern for reuse. It cannot fail: malformed syntax
// degrades the same way the one-shot functions do.
func Compile(pattern string, caseSensitive bool) *Pattern {
	p := &Pattern{
		source:        pattern,
		caseSensitive: caseSensitive,
		desc:          glob.Analyze(pattern),
	}
	if p.desc.Mode == glob.ModeComplex {
		p.matcher = glob.NewMatcher(pattern, p.desc, caseSensitive)
	}
	return p
}

// Match reports whether s matches the compiled pattern.
func (p *Pattern) Match(s string) bool {
	if p.matcher != nil {
		return p.matcher.Match(s)
	}
	return glob.MatchSimple(p.desc, s, p.caseSensitive)
}

// String returns the pattern source text.
func (p *Pattern) String() string {
	return p.source
}

// CaseSensitive reports the case mode the pattern was compiled with.
func (p *Pattern) CaseSensitive() bool {
	return p.caseSensitive
}
