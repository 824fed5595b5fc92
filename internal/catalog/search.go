package catalog

import "strings"

// Match is one search hit resolved to its category and script.
type Match struct {
	CategoryIndex int
	ProgramIndex  int
	Category      string
	Program       string
	Script        string
	Favorite      bool
}

func newMatch(ci, pi int, cat Category, p Program) Match {
	return Match{
		CategoryIndex: ci,
		ProgramIndex:  pi,
		Category:      cat.Name,
		Program:       p.Name,
		Script:        p.Script,
		Favorite:      p.Favorite,
	}
}

// Search returns every program whose name contains query, ignoring case,
// in catalog order. An empty query matches everything.
func (c *Catalog) Search(query string) []Match {
	if c == nil {
		return nil
	}
	needle := strings.ToLower(query)
	out := make([]Match, 0)
	for ci, cat := range c.Categories {
		for pi, p := range cat.Programs {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				out = append(out, newMatch(ci, pi, cat, p))
			}
		}
	}
	return out
}
