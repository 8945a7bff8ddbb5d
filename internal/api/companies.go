package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lsrecruit/sourcer/internal/types"
)

// flexID accepts ids serialized either as JSON strings or numbers; the
// directory and search endpoints are not consistent about this.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("company id is neither string nor number: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

// wireCompany is the company shape shared by the directory and search
// endpoints. Search results may carry the display name under either
// company_name or name.
type wireCompany struct {
	ID           flexID `json:"id"`
	CompanyName  string `json:"company_name"`
	Name         string `json:"name"`
	LinkedInID   string `json:"linkedin_id"`
	LinkedInPage string `json:"linkedin_page"`
}

func (w wireCompany) toRecord() types.CompanyRecord {
	name := w.CompanyName
	if name == "" {
		name = w.Name
	}
	return types.CompanyRecord{
		ID:           string(w.ID),
		Name:         name,
		LinkedInID:   w.LinkedInID,
		LinkedInPage: w.LinkedInPage,
	}
}

// BusinessModels returns the category names available for filtering.
func (c *Client) BusinessModels(ctx context.Context) ([]string, error) {
	var resp struct {
		BusinessModels []string `json:"businessModels"`
		Count          int      `json:"count"`
	}
	if err := c.doJSON(ctx, http.MethodGet, endpointBusinessModels, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.BusinessModels, nil
}

// AllCompanies returns the full company directory used for manual selection.
func (c *Client) AllCompanies(ctx context.Context) ([]types.CompanyRecord, error) {
	var resp struct {
		Companies []wireCompany `json:"companies"`
		Count     int           `json:"count"`
	}
	if err := c.doJSON(ctx, http.MethodGet, endpointAllCompanies, nil, nil, &resp); err != nil {
		return nil, err
	}

	records := make([]types.CompanyRecord, len(resp.Companies))
	for i, company := range resp.Companies {
		records[i] = company.toRecord()
	}
	return records, nil
}

// SearchCompanies runs a filtered company search. Results come back without
// manual provenance; the worklist engine owns that flag.
func (c *Client) SearchCompanies(ctx context.Context, filters types.SearchFilters) ([]types.CompanyRecord, error) {
	var resp []wireCompany
	if err := c.doJSON(ctx, http.MethodGet, endpointSearchLinkedInIDs, filters.QueryValues(), nil, &resp); err != nil {
		return nil, err
	}

	records := make([]types.CompanyRecord, len(resp))
	for i, company := range resp {
		records[i] = company.toRecord()
	}
	return records, nil
}

// EmployeeCountRange returns the directory-wide employee count bounds.
func (c *Client) EmployeeCountRange(ctx context.Context) (types.EmployeeCountRange, error) {
	var resp types.EmployeeCountRange
	if err := c.doJSON(ctx, http.MethodGet, endpointEmployeeCountRange, nil, nil, &resp); err != nil {
		return types.EmployeeCountRange{}, err
	}
	return resp, nil
}

// Locations returns the selectable geographies.
func (c *Client) Locations(ctx context.Context) ([]types.Location, error) {
	var resp []types.Location
	if err := c.doJSON(ctx, http.MethodGet, endpointLocations, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
