package glob

import (
	"testing"
)

func TestMatchSimple(t *testing.T) {
	tests := []struct {
		pattern       string
		s             string
		caseSensitive bool
		result        bool
	}{
		// Exact
		{"notes.txt", "notes.txt", true, true},
		{"notes.txt", "notes.doc", true, false},
		{"", "", true, true},
		{"", "a", true, false},
		{"ABC", "abc", true, false},
		{"ABC", "abc", false, true},

		// StartsWith
		{"prefix*", "prefix-and-more", true, true},
		{"prefix*", "prefix", true, true},
		{"prefix*", "pre", true, false},
		{"prefix*", "other", true, false},
		{"PREFIX*", "prefix-and-more", false, true},
		{"PREFIX*", "prefix-and-more", true, false},

		// EndsWith
		{"*suffix", "ends-with-suffix", true, true},
		{"*suffix", "suffix", true, true},
		{"*suffix", "suffit", true, false},
		{"*SUFFIX", "ends-with-suffix", false, true},
		{"*", "anything at all", true, true},
		{"*", "", true, true},

		// Contains
		{"*substr*", "a substr inside", true, true},
		{"*substr*", "no such thing", true, false},
		{"*substr*", "substr", true, true},
		{"*SUBSTR*", "a substr inside", false, true},
		{"*SUBSTR*", "a substr inside", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.s, func(t *testing.T) {
			d := Analyze(tt.pattern)
			if d.Mode == ModeComplex {
				t.Fatalf("Analyze(%q) unexpectedly complex", tt.pattern)
			}
			if got := MatchSimple(d, tt.s, tt.caseSensitive); got != tt.result {
				t.Errorf("MatchSimple(%q, %q, case=%v) = %v, want %v",
					tt.pattern, tt.s, tt.caseSensitive, got, tt.result)
			}
		})
	}
}

func TestMatchContainsFoldScan(t *testing.T) {
	// The fold variant of contains scans without allocating; make sure the
	// window arithmetic holds at the string edges.
	tests := []struct {
		s       string
		literal string
		result  bool
	}{
		{"abc", "", true},
		{"", "", true},
		{"", "x", false},
		{"abc", "ABC", true},
		{"xabc", "ABC", true},
		{"abcx", "ABC", true},
		{"ab", "abc", false},
	}

	for _, tt := range tests {
		if got := matchContains(tt.s, tt.literal, false); got != tt.result {
			t.Errorf("matchContains(%q, %q, fold) = %v, want %v", tt.s, tt.literal, got, tt.result)
		}
	}
}
