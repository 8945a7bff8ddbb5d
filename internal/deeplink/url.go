// Package deeplink builds LinkedIn people-search URLs and manages the single
// browser tab used to display them.
package deeplink

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/lsrecruit/sourcer/internal/types"
)

// BaseURL is the LinkedIn people-search endpoint all deep links target.
const BaseURL = "https://www.linkedin.com/search/results/people/"

// combinedCodeSeparator is the pre-encoded comma some location catalogs use
// to pack several geo codes into one entry.
const combinedCodeSeparator = "%2C"

// BuildPeopleSearchURL constructs the people-search deep link for a set of
// company identifiers, free-text keywords, and optional geo codes.
//
// The parameter order is fixed: currentCompany, keywords, origin, then
// geoUrn when present. LinkedIn itself is order-insensitive, but the fixed
// order is a convention so that produced URLs compare equal byte-for-byte.
func BuildPeopleSearchURL(req types.LinkedInSearchRequest) (string, error) {
	if len(req.CompanyIdentifiers) == 0 {
		return "", &InvalidInputError{Message: "at least one company identifier is required"}
	}

	companyJSON, err := json.Marshal(req.CompanyIdentifiers)
	if err != nil {
		return "", &InvalidInputError{Message: "company identifiers are not encodable", Cause: err}
	}

	var b strings.Builder
	b.WriteString(BaseURL)
	b.WriteString("?currentCompany=")
	b.WriteString(url.QueryEscape(string(companyJSON)))
	b.WriteString("&keywords=")
	b.WriteString(url.QueryEscape(strings.TrimSpace(req.Keywords)))
	b.WriteString("&origin=FACETED_SEARCH")

	if codes := flattenLocationCodes(req.LocationCodes); len(codes) > 0 {
		geoJSON, err := json.Marshal(codes)
		if err != nil {
			return "", &InvalidInputError{Message: "location codes are not encodable", Cause: err}
		}
		b.WriteString("&geoUrn=")
		b.WriteString(url.QueryEscape(string(geoJSON)))
	}

	return b.String(), nil
}

// flattenLocationCodes splits entries that pack multiple codes behind a
// literal "%2C" separator and splices the parts into a flat list.
func flattenLocationCodes(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	flat := make([]string, 0, len(codes))
	for _, code := range codes {
		flat = append(flat, strings.Split(code, combinedCodeSeparator)...)
	}
	return flat
}
