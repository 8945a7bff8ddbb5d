package savedsearch

import (
	"errors"
	"testing"

	"github.com/lsrecruit/sourcer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workingList() []types.CompanyRecord {
	return []types.CompanyRecord{
		{ID: "12", Name: "Acme Capital", LinkedInID: "100123", AddedManually: false},
		{ID: "7", Name: "Borealis Bank", LinkedInID: "100456", AddedManually: true},
		{ID: "301", Name: "Cobalt Advisors", LinkedInID: "100789", AddedManually: false},
	}
}

func TestEncode(t *testing.T) {
	req, err := Encode(workingList(), "  UK fintech CFOs ", "cfo fintech")
	require.NoError(t, err)

	assert.Equal(t, "UK fintech CFOs", req.SearchName)
	assert.Equal(t, "cfo fintech", req.Keywords)
	assert.Equal(t, []int{12, 7, 301}, req.CompanyIDs)
	assert.NoError(t, req.Validate())
}

func TestEncodeEmptyName(t *testing.T) {
	_, err := Encode(workingList(), "   ", "")
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "search_name", vErr.Field)
}

func TestEncodeEmptyList(t *testing.T) {
	_, err := Encode(nil, "my search", "")
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "company_ids", vErr.Field)
}

func TestEncodeNonNumericID(t *testing.T) {
	list := []types.CompanyRecord{{ID: "acme", Name: "Acme", LinkedInID: "1"}}

	_, err := Encode(list, "my search", "")
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Message, `"acme"`)
}

func TestDecodeForcesSearchProvenance(t *testing.T) {
	detail := &types.SavedSearchDetail{
		Companies: []types.SavedSearchCompany{
			{CompanyID: 12, CompanyName: "Acme Capital", LinkedInID: "100123"},
			{CompanyID: 7, CompanyName: "Borealis Bank", LinkedInID: "100456", LinkedInPage: "https://linkedin.com/company/borealis"},
		},
		Keywords: "cfo",
	}

	list, keywords := Decode(detail)

	assert.Equal(t, "cfo", keywords)
	require.Len(t, list, 2)
	assert.Equal(t, "12", list[0].ID)
	assert.Equal(t, "7", list[1].ID)
	assert.Equal(t, "https://linkedin.com/company/borealis", list[1].LinkedInPage)
	for _, rec := range list {
		assert.False(t, rec.AddedManually, "reloaded records must not be manual")
	}
}

func TestDecodeMissingKeywords(t *testing.T) {
	list, keywords := Decode(&types.SavedSearchDetail{
		Companies: []types.SavedSearchCompany{{CompanyID: 1, CompanyName: "Acme"}},
	})

	assert.Empty(t, keywords)
	assert.Len(t, list, 1)
}

// Round trip: the ids that go into a save come back in the same order when
// the server echoes them, all flagged as search results.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := workingList()
	req, err := Encode(original, "round trip", "kw")
	require.NoError(t, err)

	// Simulate the server's load response for the saved ids.
	detail := &types.SavedSearchDetail{Keywords: req.Keywords}
	for _, id := range req.CompanyIDs {
		detail.Companies = append(detail.Companies, types.SavedSearchCompany{CompanyID: id})
	}

	list, keywords := Decode(detail)
	assert.Equal(t, "kw", keywords)
	require.Len(t, list, len(original))
	for i, rec := range list {
		assert.Equal(t, original[i].ID, rec.ID)
		assert.False(t, rec.AddedManually)
	}
}
