package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/toolbox/internal/app"
	"github.com/atomicstack/toolbox/internal/catalog"
	"github.com/atomicstack/toolbox/internal/runner"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
)

const maxSuggestions = 3

func newCheckCommand(cfg app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check NAME",
		Short: "Run the launch checks for every program called NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd, cfg.CatalogPath)
			if err != nil {
				return err
			}
			matches, err := lookup(cat, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, m := range matches {
				if err := runner.Check(m.Script); err != nil {
					failed++
					fmt.Fprintf(out, "%s %s/%s: %v\n", errorColor.Sprint("FAIL"), m.Category, m.Program, err)
					continue
				}
				fmt.Fprintf(out, "%s %s/%s: %s\n", okColor.Sprint("ok"), m.Category, m.Program, m.Script)
			}
			if failed > 0 {
				return &ExitError{Code: 1, Err: fmt.Errorf("%d of %d checks failed", failed, len(matches))}
			}
			return nil
		},
	}
}

// lookup resolves name to its catalog entries, suggesting close names when
// nothing matches exactly.
func lookup(cat *catalog.Catalog, name string) ([]catalog.Match, error) {
	matches := cat.Lookup(name)
	if len(matches) > 0 {
		return matches, nil
	}
	if hints := suggest(name, cat.Names()); len(hints) > 0 {
		return nil, fmt.Errorf("no program named %q (did you mean %s?)", name, strings.Join(hints, ", "))
	}
	return nil, fmt.Errorf("no program named %q", name)
}

func suggest(name string, names []string) []string {
	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) == 0 {
		// fall back to names containing the query's first letters
		for _, n := range names {
			if len(name) >= 2 && strings.Contains(strings.ToLower(n), strings.ToLower(name[:2])) {
				ranks = append(ranks, fuzzy.Rank{Target: n, Distance: len(n)})
			}
		}
	}
	sort.Sort(ranks)
	seen := make(map[string]bool)
	var out []string
	for _, r := range ranks {
		if seen[r.Target] {
			continue
		}
		seen[r.Target] = true
		out = append(out, r.Target)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
