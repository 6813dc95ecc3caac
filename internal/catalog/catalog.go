package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed active.*.toml
var localeFS embed.FS

// Catalog maps locales to their resource trees. Built once at startup from
// static data and read-only afterwards; new strings ship with a redeploy.
type Catalog struct {
	trees   map[string]*Tree
	locales []string
}

// Load reads every active.<locale>.toml file in fsys and parses it into the
// resource tree for that locale.
func Load(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("catalog: glob: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("catalog: no active.*.toml files found")
	}

	trees := make(map[string]*Tree, len(names))
	for _, name := range names {
		locale := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".toml")
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", name, err)
		}
		tree, err := ParseTOML(data)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", name, err)
		}
		trees[locale] = tree
	}
	return New(trees), nil
}

// Embedded loads the catalog compiled into the binary.
func Embedded() (*Catalog, error) {
	return Load(localeFS)
}

// New builds a catalog from already-parsed trees.
func New(trees map[string]*Tree) *Catalog {
	locales := make([]string, 0, len(trees))
	for locale := range trees {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return &Catalog{trees: trees, locales: locales}
}

// Tree returns the resource tree for locale.
func (c *Catalog) Tree(locale string) (*Tree, bool) {
	t, ok := c.trees[locale]
	return t, ok
}

// Has reports whether locale is in the supported set.
func (c *Catalog) Has(locale string) bool {
	_, ok := c.trees[locale]
	return ok
}

// Locales returns the supported locales, sorted.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.locales))
	copy(out, c.locales)
	return out
}
