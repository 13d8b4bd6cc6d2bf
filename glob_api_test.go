package goglob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name          string
		pattern       string
		s             string
		caseSensitive bool
		want          bool
	}{
		{"exact", "notes.txt", "notes.txt", true, true},
		{"exact case differs", "ABC", "abc", true, false},
		{"exact fold", "ABC", "abc", false, true},
		{"suffix", "*.txt", "notes.txt", true, true},
		{"suffix miss", "*.txt", "notes.doc", true, false},
		{"question", "report-20??.csv", "report-2023.csv", true, true},
		{"question short", "report-20??.csv", "report-202.csv", true, false},
		{"brace", "{alpha,beta}-*.log", "beta-001.log", true, true},
		{"brace miss", "{alpha,beta}-*.log", "gamma-001.log", true, false},
		{"double star deep", "src/**/*.cs", "src/a/b/Foo.cs", true, true},
		{"double star flat", "src/**/*.cs", "src/Foo.cs", true, true},
		{"class upper", "[A-Z]*", "Apple", true, true},
		{"class lower rejected", "[A-Z]*", "apple", true, false},
		{"class fold", "[A-Z]*", "apple", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.pattern, tt.s, tt.caseSensitive),
				"Matches(%q, %q, %v)", tt.pattern, tt.s, tt.caseSensitive)
		})
	}
}

func TestMatchAndMatchFold(t *testing.T) {
	assert.True(t, Match("*.log", "app.log"))
	assert.False(t, Match("*.LOG", "app.log"))
	assert.True(t, MatchFold("*.LOG", "app.log"))
	assert.True(t, MatchFold("{CAT,DOG}", "dog"))
}

func TestCompile(t *testing.T) {
	p := Compile("{alpha,beta}-*.log", true)
	require.NotNil(t, p)
	assert.Equal(t, "{alpha,beta}-*.log", p.String())
	assert.True(t, p.CaseSensitive())

	assert.True(t, p.Match("alpha-1.log"))
	assert.True(t, p.Match("beta-001.log"))
	assert.False(t, p.Match("gamma-001.log"))

	// Simple patterns compile without a backtracking matcher but behave
	// the same through the Pattern surface.
	s := Compile("*.txt", false)
	assert.True(t, s.Match("NOTES.TXT"))
	assert.False(t, s.Match("notes.doc"))
}

func TestCompileConcurrent(t *testing.T) {
	p := Compile("src/**/*.go", true)
	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			done <- p.Match("src/internal/glob/complex.go")
		}()
	}
	for i := 0; i < 8; i++ {
		assert.True(t, <-done)
	}
}

func TestMalformedPatternsDegrade(t *testing.T) {
	// Unterminated brackets and braces are interpreted literally rather
	// than rejected; Matches never panics and never errors.
	assert.True(t, Matches("[abc", "[abc", true))
	assert.False(t, Matches("[abc", "abc", true))
	assert.True(t, Matches("{a,b", "{a,b", true))
	assert.True(t, Matches("*[", "deeply nested [", true))
}
