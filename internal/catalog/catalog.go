package catalog

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Catalog is the fixed category → lesson hierarchy. It is never mutated after
// construction; all accessors return copies.
type Catalog struct {
	version    string
	categories []Category
}

// New builds a catalog from the given categories. The slice is cloned, so
// later changes by the caller do not leak into the catalog.
func New(categories []Category) *Catalog {
	cloned := make([]Category, len(categories))
	for i, c := range categories {
		c.Lessons = slices.Clone(c.Lessons)
		cloned[i] = c
	}
	return &Catalog{categories: cloned}
}

// Version returns the seed version the catalog was loaded from, or "" for
// catalogs built directly with New.
func (c *Catalog) Version() string {
	return c.version
}

// Categories returns all categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		cat.Lessons = slices.Clone(cat.Lessons)
		out[i] = cat
	}
	return out
}

// Category returns the category with the given ID.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			cat.Lessons = slices.Clone(cat.Lessons)
			return cat, true
		}
	}
	return Category{}, false
}

// Lesson looks a lesson up by ID with a linear scan over every category.
// The second return value is false when no lesson matches.
func (c *Catalog) Lesson(id string) (Lesson, bool) {
	for _, cat := range c.categories {
		for _, l := range cat.Lessons {
			if l.ID == id {
				return l, true
			}
		}
	}
	return Lesson{}, false
}

// Lessons returns every lesson flattened in display order.
func (c *Catalog) Lessons() []Lesson {
	return lo.FlatMap(c.categories, func(cat Category, _ int) []Lesson {
		return slices.Clone(cat.Lessons)
	})
}

// Total returns the number of lessons across all categories.
func (c *Catalog) Total() int {
	return lo.SumBy(c.categories, func(cat Category) int {
		return len(cat.Lessons)
	})
}

// ByDifficulty returns all lessons at the given difficulty, in display order.
func (c *Catalog) ByDifficulty(d Difficulty) []Lesson {
	return lo.Filter(c.Lessons(), func(l Lesson, _ int) bool {
		return l.Difficulty == d
	})
}

// Search returns lessons whose title or description contains query,
// ignoring case. An empty query matches everything.
func (c *Catalog) Search(query string) []Lesson {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Lessons()
	}
	return lo.Filter(c.Lessons(), func(l Lesson, _ int) bool {
		return strings.Contains(strings.ToLower(l.Title), q) ||
			strings.Contains(strings.ToLower(l.Description), q)
	})
}

// Validate checks the catalog for structural issues.
func (c *Catalog) Validate() error {
	return validateCategories(c.categories)
}
