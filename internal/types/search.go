package types

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SearchFilters is the closed set of filter dimensions accepted by the
// company search endpoint. Unset fields are omitted from the serialized
// query entirely, never sent as empty strings.
type SearchFilters struct {
	BusinessModels string   `json:"business_models,omitempty"`
	SizeFrom       *int     `json:"size_from,omitempty"`
	SizeTo         *int     `json:"size_to,omitempty"`
	LocationCodes  []string `json:"location_codes,omitempty"`
}

// QueryValues serializes the filters into the query-parameter shape the
// search endpoint expects. Absent fields produce no parameter at all.
func (f SearchFilters) QueryValues() url.Values {
	values := url.Values{}
	if f.BusinessModels != "" {
		values.Set("businessModels", f.BusinessModels)
	}
	if f.SizeFrom != nil {
		values.Set("sizeFrom", strconv.Itoa(*f.SizeFrom))
	}
	if f.SizeTo != nil {
		values.Set("sizeTo", strconv.Itoa(*f.SizeTo))
	}
	if len(f.LocationCodes) > 0 {
		values.Set("locationCodes", strings.Join(f.LocationCodes, ","))
	}
	return values
}

// SavedSearchRequest is the persistable form of a working list plus its
// keyword string.
type SavedSearchRequest struct {
	SearchName string `json:"search_name" validate:"required,min=1"`
	Keywords   string `json:"keywords"`
	CompanyIDs []int  `json:"company_ids" validate:"required,min=1"`
}

// Validate validates the SavedSearchRequest using the validator.
func (r *SavedSearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SavedSearchSummary is one entry in the saved-search listing.
type SavedSearchSummary struct {
	ID         int    `json:"id"`
	SearchName string `json:"search_name"`
	CompanyIDs []int  `json:"company_ids"`
	Keywords   string `json:"keywords"`
	CreatedAt  string `json:"created_at"`
}

// SavedSearchCompany is one company entry inside a loaded saved search.
// Names and LinkedIn ids are re-fetched from server data at load time; the
// client only persists integer ids.
type SavedSearchCompany struct {
	CompanyID    int    `json:"company_id"`
	CompanyName  string `json:"company_name"`
	LinkedInID   string `json:"linkedin_id"`
	LinkedInPage string `json:"linkedin_page,omitempty"`
}

// SavedSearchDetail is the response shape for loading one saved search.
type SavedSearchDetail struct {
	Companies []SavedSearchCompany `json:"companies"`
	Keywords  string               `json:"keywords"`
}

// LinkedInSearchRequest holds everything needed to build a people-search
// deep link. It is ephemeral and never persisted.
type LinkedInSearchRequest struct {
	CompanyIdentifiers []string
	Keywords           string
	LocationCodes      []string
}
