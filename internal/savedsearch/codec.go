// Package savedsearch converts between the in-memory working list and the
// backend's persisted saved-search shapes.
package savedsearch

import (
	"strconv"
	"strings"

	"github.com/lsrecruit/sourcer/internal/types"
)

// Encode builds the persistable request for the current working list. The
// name is trimmed and must be non-empty, the list must be non-empty, and
// every record id must parse as an integer; any violation is a
// *ValidationError before anything is sent to the backend.
func Encode(working []types.CompanyRecord, name, keywords string) (*types.SavedSearchRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "search_name", Message: "search name must not be empty"}
	}
	if len(working) == 0 {
		return nil, &ValidationError{Field: "company_ids", Message: "no companies to save; run a search first"}
	}

	ids := make([]int, len(working))
	for i, rec := range working {
		id, err := strconv.Atoi(rec.ID)
		if err != nil {
			return nil, &ValidationError{
				Field:   "company_ids",
				Message: "company id " + strconv.Quote(rec.ID) + " is not numeric",
			}
		}
		ids[i] = id
	}

	return &types.SavedSearchRequest{
		SearchName: name,
		Keywords:   keywords,
		CompanyIDs: ids,
	}, nil
}

// Decode converts a loaded saved search back into a working list plus its
// keyword string. Every record comes back flagged as a search result: a
// reloaded list never starts with manual provenance. Absent keywords decode
// to the empty string.
func Decode(detail *types.SavedSearchDetail) ([]types.CompanyRecord, string) {
	if detail == nil {
		return nil, ""
	}

	list := make([]types.CompanyRecord, len(detail.Companies))
	for i, c := range detail.Companies {
		list[i] = types.CompanyRecord{
			ID:            strconv.Itoa(c.CompanyID),
			Name:          c.CompanyName,
			LinkedInID:    c.LinkedInID,
			LinkedInPage:  c.LinkedInPage,
			AddedManually: false,
		}
	}
	return list, detail.Keywords
}
