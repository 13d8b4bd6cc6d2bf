// Package ruleset loads named groups of glob patterns from a TOML file.
//
// A ruleset file looks like:
//
//	[groups.logs]
//	patterns = ["*.log", "*.log.[0-9]"]
//	case_sensitive = true
//
//	[groups.sources]
//	patterns = ["src/**/*.{go,rs}"]
package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/twinfer/goglob"
	"github.com/twinfer/goglob/internal/logging"
)

var log = logging.GetLogger("ruleset")

// Group is one named set of patterns sharing a case mode.
type Group struct {
	Patterns      []string `toml:"patterns"`
	CaseSensitive bool     `toml:"case_sensitive"`
}

// Ruleset is the parsed form of a rules file.
type Ruleset struct {
	Groups map[string]Group `toml:"groups"`
}

// DefaultPath returns the conventional ruleset location under the user's
// XDG config directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "globgrep", "rules.toml")
}

// Load reads and parses a ruleset file.
func Load(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ruleset: %w", err)
	}

	var rs Ruleset
	if err := toml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	log.Debug().Str("path", path).Int("groups", len(rs.Groups)).Msg("Loaded ruleset")
	return &rs, nil
}

// Group looks up a named group.
func (rs *Ruleset) Group(name string) (Group, error) {
	g, ok := rs.Groups[name]
	if !ok {
		return Group{}, fmt.Errorf("unknown pattern group %q (have: %v)", name, rs.GroupNames())
	}
	return g, nil
}

// GroupNames returns the defined group names, sorted.
func (rs *Ruleset) GroupNames() []string {
	names := make([]string, 0, len(rs.Groups))
	for name := range rs.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GroupMatcher matches a line against every pattern of a group.
type GroupMatcher struct {
	patterns []*goglob.Pattern
}

// Compile resolves the group's patterns through cache, so groups sharing
// patterns compile each one once.
func (g Group) Compile(cache *goglob.Cache) *GroupMatcher {
	patterns := make([]*goglob.Pattern, 0, len(g.Patterns))
	for _, p := range g.Patterns {
		patterns = append(patterns, cache.Get(p, g.CaseSensitive))
	}
	return &GroupMatcher{patterns: patterns}
}

// Match reports whether any pattern of the group matches s.
func (gm *GroupMatcher) Match(s string) bool {
	for _, p := range gm.patterns {
		if p.Match(s) {
			return true
		}
	}
	return false
}
