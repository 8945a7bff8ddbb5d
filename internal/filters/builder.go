// Package filters turns UI-level filter selections into the query shape the
// company search endpoint expects.
package filters

import (
	"strings"

	"github.com/lsrecruit/sourcer/internal/types"
)

// SizeRange is the inclusive employee-count range selected for a search.
// Defaulting to the directory-wide bounds happens when the range is first
// loaded, not here.
type SizeRange struct {
	From int
	To   int
}

// Build maps the selected category ids to their display names via the
// catalog and assembles the search filters. Unmatched ids are silently
// dropped; an empty selection omits the businessModels field entirely rather
// than sending an empty string. The size bounds are always carried through
// as given.
func Build(selectedCategoryIDs []int, catalog []types.BusinessModel, size SizeRange) types.SearchFilters {
	names := make([]string, 0, len(selectedCategoryIDs))
	for _, id := range selectedCategoryIDs {
		for _, category := range catalog {
			if category.ID == id && category.Name != "" {
				names = append(names, category.Name)
				break
			}
		}
	}

	from, to := size.From, size.To
	return types.SearchFilters{
		BusinessModels: strings.Join(names, ","),
		SizeFrom:       &from,
		SizeTo:         &to,
	}
}

// WithLocations returns a copy of the filters with the given location codes
// attached. An empty set leaves the field absent.
func WithLocations(f types.SearchFilters, codes []string) types.SearchFilters {
	if len(codes) == 0 {
		return f
	}
	f.LocationCodes = append([]string(nil), codes...)
	return f
}
