// Package types provides type definitions for structured data used throughout the sourcer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CompanyRecord is the canonical shape for a company entry in the working
// list. IDs are opaque strings on the client side; conversion to the
// backend's integer ids happens once, at the saved-search boundary.
type CompanyRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LinkedInID    string `json:"linkedin_id"`
	LinkedInPage  string `json:"linkedin_page,omitempty"`
	AddedManually bool   `json:"added_manually"`
}

// BusinessModel is a selectable company category. IDs are assigned
// client-side from the position in the catalog response.
type BusinessModel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Location is a selectable geography with the code LinkedIn expects.
// A single LocationCode may carry several codes joined by a literal "%2C".
type Location struct {
	ID           int    `json:"id"`
	LocationName string `json:"location_name"`
	LocationCode string `json:"location_code"`
}

// EmployeeCountRange holds the directory-wide employee count bounds used to
// seed the size filter.
type EmployeeCountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
