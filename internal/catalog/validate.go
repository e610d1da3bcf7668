package catalog

import (
	"fmt"
	"strings"
)

// validateCategories performs all structural checks on the given categories.
// Returns a combined error describing all problems found, or nil if valid.
func validateCategories(categories []Category) error {
	var errs []string

	categoryIDs := make(map[string]bool, len(categories))
	lessonIDs := make(map[string]string)

	for i, cat := range categories {
		if cat.ID == "" {
			errs = append(errs, fmt.Sprintf("category %d has an empty ID", i))
		} else if categoryIDs[cat.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", cat.ID))
		}
		categoryIDs[cat.ID] = true

		for j, l := range cat.Lessons {
			if l.ID == "" {
				errs = append(errs, fmt.Sprintf("category %q lesson %d has an empty ID", cat.ID, j))
				continue
			}
			if owner, ok := lessonIDs[l.ID]; ok {
				errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q (categories %q and %q)", l.ID, owner, cat.ID))
			}
			lessonIDs[l.ID] = cat.ID

			if l.Title == "" {
				errs = append(errs, fmt.Sprintf("lesson %q has an empty title", l.ID))
			}
			if !l.Difficulty.Valid() {
				errs = append(errs, fmt.Sprintf("lesson %q has unknown difficulty %q", l.ID, l.Difficulty))
			}
			if l.Category != cat.ID {
				errs = append(errs, fmt.Sprintf("lesson %q declares category %q but is listed under %q", l.ID, l.Category, cat.ID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
