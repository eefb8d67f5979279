package osrs

import (
	"slices"
	"sort"
	"strings"

	"github.com/KirkDiggler/osrs-random/internal/errors"
)

// Catalog is an immutable, name-ordered set of boss categories.
// Display indices (1-based) follow the name order and are stable across runs.
type Catalog struct {
	categories []Category
	byName     map[string]int
}

var defaultCatalog = mustCatalog(bossTable...)

// Categories returns the built-in boss catalog
func Categories() *Catalog {
	return defaultCatalog
}

// Skills returns every skill in a flat list, combat skills first
func Skills() []string {
	return slices.Concat(combatSkills, otherSkills)
}

// SkillGroups returns the combat/other partition of the skill list
func SkillGroups() []SkillGroup {
	return []SkillGroup{
		{Name: SkillGroupCombat, Skills: slices.Clone(combatSkills)},
		{Name: SkillGroupOther, Skills: slices.Clone(otherSkills)},
	}
}

// NewCatalog builds a catalog from the given categories. Names must be
// non-empty and unique (case-insensitively) and every category needs at
// least one boss.
func NewCatalog(categories ...Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, errors.InvalidArgument("catalog needs at least one category")
	}

	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		byName:     make(map[string]int, len(categories)),
	}

	seen := make(map[string]bool, len(categories))
	for _, category := range categories {
		if strings.TrimSpace(category.Name) == "" {
			return nil, errors.InvalidArgument("category name is required")
		}
		key := normalize(category.Name)
		if seen[key] {
			return nil, errors.InvalidArgumentf("duplicate category: %s", category.Name)
		}
		if len(category.Bosses) == 0 {
			return nil, errors.InvalidArgumentf("category %s has no bosses", category.Name)
		}
		seen[key] = true
		c.categories = append(c.categories, category.clone())
	}

	sort.Slice(c.categories, func(i, j int) bool {
		return c.categories[i].Name < c.categories[j].Name
	})
	for i, category := range c.categories {
		c.byName[normalize(category.Name)] = i
	}

	return c, nil
}

func mustCatalog(categories ...Category) *Catalog {
	c, err := NewCatalog(categories...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of categories
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Names returns the category names in display order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.categories))
	for i, category := range c.categories {
		names[i] = category.Name
	}
	return names
}

// List returns a copy of every category in display order
func (c *Catalog) List() []Category {
	out := make([]Category, len(c.categories))
	for i, category := range c.categories {
		out[i] = category.clone()
	}
	return out
}

// At returns the category at the 0-based position
func (c *Catalog) At(i int) (Category, bool) {
	if i < 0 || i >= len(c.categories) {
		return Category{}, false
	}
	return c.categories[i].clone(), true
}

// ByIndex returns the category at the 1-based display index
func (c *Catalog) ByIndex(n int) (Category, bool) {
	return c.At(n - 1)
}

// Get looks up a category by name, ignoring case and surrounding space
func (c *Catalog) Get(name string) (Category, bool) {
	i, ok := c.byName[normalize(name)]
	if !ok {
		return Category{}, false
	}
	return c.categories[i].clone(), true
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
