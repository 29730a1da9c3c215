package catalog

import (
	"fmt"
	"strings"
)

// Validate checks the catalog for:
//   - Duplicate collection slugs
//   - Duplicate template slugs within a collection
//   - Required fields
func Validate(cat *Catalog) error {
	if cat.Version == "" {
		return fmt.Errorf("catalog: version is required")
	}
	slugs := make(map[string]int) // slug → first index
	var errs []string

	for i, col := range cat.Collections {
		if col.Slug == "" {
			errs = append(errs, fmt.Sprintf("collections[%d]: slug is required", i))
			continue
		}
		if prev, ok := slugs[col.Slug]; ok {
			errs = append(errs, fmt.Sprintf("duplicate collection slug %q (first seen at collections[%d], again at collections[%d])", col.Slug, prev, i))
		} else {
			slugs[col.Slug] = i
		}
		if col.Title == "" {
			errs = append(errs, fmt.Sprintf("collection %s: title is required", col.Slug))
		}
		if len(col.Templates) == 0 {
			errs = append(errs, fmt.Sprintf("collection %s: templates must not be empty", col.Slug))
		}
		seen := make(map[string]struct{}, len(col.Templates))
		for _, tpl := range col.Templates {
			if tpl == "" {
				errs = append(errs, fmt.Sprintf("collection %s: empty template slug", col.Slug))
				continue
			}
			if _, ok := seen[tpl]; ok {
				errs = append(errs, fmt.Sprintf("collection %s: duplicate template slug %q", col.Slug, tpl))
			}
			seen[tpl] = struct{}{}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
