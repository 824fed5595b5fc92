package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrEmpty is returned when a catalog defines no categories.
var ErrEmpty = errors.New("catalog defines no categories")

// Program is a named script reference inside a category.
type Program struct {
	Name     string
	Script   string
	Favorite bool
}

// Category groups programs in the order they appear in the catalog file.
type Category struct {
	Name     string
	Programs []Program
}

// Catalog is the ordered set of categories loaded at startup.
type Catalog struct {
	Path       string
	Dir        string
	Categories []Category
	warnings   []string
}

// ParseError reports a structural problem at a specific key.
type ParseError struct {
	Key    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog: %s: %s", e.Key, e.Reason)
}

// Load reads and parses the catalog at path. Script paths are resolved
// relative to the directory containing the file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	dir := filepath.Dir(path)
	c, err := Parse(data, dir)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// Parse decodes catalog TOML, preserving document order for categories and
// programs.
func Parse(data []byte, dir string) (*Catalog, error) {
	var raw map[string]interface{}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	c := &Catalog{Dir: dir}
	index := make(map[string]int)
	for _, key := range md.Keys() {
		switch len(key) {
		case 1:
			name := key[0]
			if _, ok := raw[name].(map[string]interface{}); !ok {
				return nil, &ParseError{Key: name, Reason: "category must be a table of program = \"script\" entries"}
			}
			if _, seen := index[name]; seen {
				continue
			}
			index[name] = len(c.Categories)
			c.Categories = append(c.Categories, Category{Name: name})
		case 2:
			if err := c.addProgram(raw, index, key[0], key[1]); err != nil {
				return nil, err
			}
		}
	}

	// Keys missing from the metadata are appended in name order.
	leftovers := make([]string, 0)
	for name := range raw {
		if _, ok := index[name]; !ok {
			leftovers = append(leftovers, name)
		}
	}
	sort.Strings(leftovers)
	for _, name := range leftovers {
		if _, ok := raw[name].(map[string]interface{}); !ok {
			return nil, &ParseError{Key: name, Reason: "category must be a table of program = \"script\" entries"}
		}
		index[name] = len(c.Categories)
		c.Categories = append(c.Categories, Category{Name: name})
	}
	for ci := range c.Categories {
		cat := &c.Categories[ci]
		table := raw[cat.Name].(map[string]interface{})
		if len(cat.Programs) == len(table) {
			continue
		}
		names := make([]string, 0, len(table))
		for name := range table {
			if cat.indexOf(name) < 0 {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		for _, name := range names {
			if err := c.addProgram(raw, index, cat.Name, name); err != nil {
				return nil, err
			}
		}
	}

	if len(c.Categories) == 0 {
		return nil, ErrEmpty
	}
	for _, cat := range c.Categories {
		if len(cat.Programs) == 0 {
			c.warnings = append(c.warnings, fmt.Sprintf("category %q has no programs", cat.Name))
		}
	}
	return c, nil
}

func (c *Catalog) addProgram(raw map[string]interface{}, index map[string]int, category, name string) error {
	table, ok := raw[category].(map[string]interface{})
	if !ok {
		return &ParseError{Key: category, Reason: "category must be a table of program = \"script\" entries"}
	}
	ci, ok := index[category]
	if !ok {
		ci = len(c.Categories)
		index[category] = ci
		c.Categories = append(c.Categories, Category{Name: category})
	}
	value, ok := table[name].(string)
	if !ok {
		return &ParseError{Key: category + "." + name, Reason: "script path must be a string"}
	}
	cat := &c.Categories[ci]
	if cat.indexOf(name) >= 0 {
		return nil
	}
	cat.Programs = append(cat.Programs, Program{Name: name, Script: c.resolve(value)})
	return nil
}

func (c *Catalog) resolve(script string) string {
	if filepath.IsAbs(script) || c.Dir == "" {
		return script
	}
	return filepath.Join(c.Dir, script)
}

func (cat *Category) indexOf(name string) int {
	for i, p := range cat.Programs {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Warnings lists non-fatal problems found while parsing.
func (c *Catalog) Warnings() []string {
	return append([]string(nil), c.warnings...)
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Categories)
}

// Category returns the category at index i.
func (c *Catalog) Category(i int) (*Category, bool) {
	if c == nil || i < 0 || i >= len(c.Categories) {
		return nil, false
	}
	return &c.Categories[i], true
}

// Program returns the program at the given category and program indices.
func (c *Catalog) Program(ci, pi int) (*Program, bool) {
	cat, ok := c.Category(ci)
	if !ok || pi < 0 || pi >= len(cat.Programs) {
		return nil, false
	}
	return &cat.Programs[pi], true
}

// ToggleFavorite flips the favorite flag of one program and returns the new
// value.
func (c *Catalog) ToggleFavorite(ci, pi int) (bool, error) {
	p, ok := c.Program(ci, pi)
	if !ok {
		return false, fmt.Errorf("no program at %d/%d", ci, pi)
	}
	p.Favorite = !p.Favorite
	return p.Favorite, nil
}

// Names returns every program name in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0)
	for _, cat := range c.Categories {
		for _, p := range cat.Programs {
			names = append(names, p.Name)
		}
	}
	return names
}

// Lookup returns every program whose name equals name, ignoring case.
func (c *Catalog) Lookup(name string) []Match {
	if c == nil {
		return nil
	}
	var out []Match
	for ci, cat := range c.Categories {
		for pi, p := range cat.Programs {
			if strings.EqualFold(p.Name, name) {
				out = append(out, newMatch(ci, pi, cat, p))
			}
		}
	}
	return out
}
