package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/twinfer/goglob"
	"github.com/twinfer/goglob/internal/logging"
	"github.com/twinfer/goglob/internal/ruleset"
)

var (
	version = "dev"

	verbosity     int
	caseSensitive bool
	invert        bool
	countOnly     bool
	rulesFile     string
	groupName     string

	rootCmd = &cobra.Command{
		Use:   "globgrep [PATTERN] [FILE...]",
		Short: "Filter lines with glob patterns",
		Long: `globgrep prints the input lines that match a glob pattern, the way grep
does with regexes. Patterns support *, **, ?, character classes ([a-z]) and
brace alternation ({a,b,c}). Matching is case-insensitive unless --case is
given.

Instead of a single pattern, --group selects a named pattern group from a
TOML ruleset (see --rules).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE:          runGrep,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.Flags().BoolVar(&caseSensitive, "case", false, "Match case-sensitively")
	rootCmd.Flags().BoolVar(&invert, "invert", false, "Print lines that do not match")
	rootCmd.Flags().BoolVar(&countOnly, "count", false, "Print only the number of matching lines")
	rootCmd.Flags().StringVar(&rulesFile, "rules", "", "Ruleset file (default "+ruleset.DefaultPath()+")")
	rootCmd.Flags().StringVar(&groupName, "group", "", "Match against a named pattern group from the ruleset")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("globgrep version %s\n", version)
	},
}

func runGrep(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("globgrep")

	match, files, err := buildMatcher(args)
	if err != nil {
		return err
	}

	total := 0
	if len(files) == 0 {
		n, err := filterLines(os.Stdin, cmd.OutOrStdout(), match, invert, countOnly)
		if err != nil {
			return err
		}
		total = n
	} else {
		for _, name := range files {
			f, err := os.Open(name)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", name, err)
			}
			n, err := filterLines(f, cmd.OutOrStdout(), match, invert, countOnly)
			f.Close()
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", name, err)
			}
			logger.Debug().Str("file", name).Int("matches", n).Msg("Scanned file")
			total += n
		}
	}

	if countOnly {
		fmt.Fprintln(cmd.OutOrStdout(), total)
	}
	logger.Info().Int("matches", total).Msg("Done")
	return nil
}

// buildMatcher resolves the positional arguments and flags into a line
// predicate and the list of input files. With --group the pattern argument
// is omitted and all positionals are files.
func buildMatcher(args []string) (func(string) bool, []string, error) {
	if groupName != "" {
		path := rulesFile
		if path == "" {
			path = ruleset.DefaultPath()
		}
		rs, err := ruleset.Load(path)
		if err != nil {
			return nil, nil, err
		}
		group, err := rs.Group(groupName)
		if err != nil {
			return nil, nil, err
		}
		cache, err := goglob.NewCache(len(group.Patterns) + 1)
		if err != nil {
			return nil, nil, err
		}
		return group.Compile(cache).Match, args, nil
	}

	if len(args) == 0 {
		return nil, nil, fmt.Errorf("a pattern argument or --group is required")
	}
	p := goglob.Compile(args[0], caseSensitive)
	return p.Match, args[1:], nil
}

// filterLines copies the lines of r that satisfy match (or fail it, with
// invert) to w and returns how many matched. With countOnly the lines are
// counted but not written.
func filterLines(r io.Reader, w io.Writer, match func(string) bool, invert, countOnly bool) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	matched := 0
	for scanner.Scan() {
		line := scanner.Text()
		if match(line) == invert {
			continue
		}
		matched++
		if countOnly {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return matched, err
		}
	}
	return matched, scanner.Err()
}
