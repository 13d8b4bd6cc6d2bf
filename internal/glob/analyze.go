package glob

// MatchMode classifies how a pattern can be executed. Simple modes reduce to
// a single string comparison; ModeComplex requires the backtracking matcher.
type MatchMode int

const (
	ModeComplex MatchMode = iota
	ModeExact
	ModeStartsWith
	ModeEndsWith
	ModeContains
)

func (m MatchMode) String() string {
	switch m {
	case ModeComplex:
		return "complex"
	case ModeExact:
		return "exact"
	case ModeStartsWith:
		return "starts-with"
	case ModeEndsWith:
		return "ends-with"
	case ModeContains:
		return "contains"
	default:
		return "unknown"
	}
}

// Descriptor is the result of analyzing a pattern. It is immutable once
// built, so a Descriptor for a given pattern may be cached and shared
// across goroutines.
//
// Literal is set if and only if Mode is not ModeComplex. The feature flags
// are only meaningful for ModeComplex patterns.
type Descriptor struct {
	Mode    MatchMode
	Literal string

	HasDoubleStar bool
	HasCharClass  bool
	HasBrace      bool

	// FirstLiteral is the first pattern byte that is not a wildcard and not
	// preceded by a character class or brace group. It anchors skip-ahead
	// searches in the complex matcher. HasFirstLiteral reports whether one
	// was found.
	FirstLiteral      byte
	FirstLiteralUpper byte
	HasFirstLiteral   bool
}

// Analyze scans pattern once, left to right, and classifies it into a
// Descriptor. It never rejects a pattern: malformed bracket or brace syntax
// is left for the complex matcher, which degrades the opening character to
// a literal.
//
// Simple patterns (no `**`, `?`, `[`, `{`) are classified by star count:
//
//	zero stars            -> ModeExact
//	one star, leading     -> ModeEndsWith
//	one star, trailing    -> ModeStartsWith
//	stars at both ends    -> ModeContains
//
// A single star in the middle of a pattern (`a*b`) is not given a fast
// path and falls through to ModeComplex.
func Analyze(pattern string) Descriptor {
	var d Descriptor
	if len(pattern) == 0 {
		d.Mode = ModeExact
		return d
	}

	var (
		starCount          int
		firstStar, endStar = -1, -1
		hasQuestion        bool
	)
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				d.HasDoubleStar = true
				i++
				continue
			}
			starCount++
			if firstStar < 0 {
				firstStar = i
			}
			endStar = i
		case '?':
			hasQuestion = true
		case '[':
			d.HasCharClass = true
		case '{':
			d.HasBrace = true
		default:
			// Bytes inside a class or brace body are alternatives, not
			// required literals, so they cannot anchor a search.
			if !d.HasFirstLiteral && !d.HasCharClass && !d.HasBrace {
				d.FirstLiteral = c
				d.FirstLiteralUpper = upperByte(c)
				d.HasFirstLiteral = true
			}
		}
	}

	if !d.HasDoubleStar && !hasQuestion && !d.HasCharClass && !d.HasBrace {
		last := len(pattern) - 1
		switch {
		case starCount == 0:
			d.Mode = ModeExact
			d.Literal = pattern
			return d
		case starCount == 1 && firstStar == 0:
			d.Mode = ModeEndsWith
			d.Literal = pattern[1:]
			return d
		case starCount == 1 && firstStar == last:
			d.Mode = ModeStartsWith
			d.Literal = pattern[:last]
			return d
		case starCount == 2 && firstStar == 0 && endStar == last:
			d.Mode = ModeContains
			d.Literal = pattern[1:last]
			return d
		}
	}

	d.Mode = ModeComplex
	return d
}
