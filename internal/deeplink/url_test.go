package deeplink

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/lsrecruit/sourcer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeParam extracts a query parameter from the raw URL and unmarshals its
// JSON-array value.
func decodeJSONParam(t *testing.T, rawURL, key string) []string {
	t.Helper()
	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	raw := parsed.Query().Get(key)
	require.NotEmpty(t, raw, "parameter %s missing", key)

	var values []string
	require.NoError(t, json.Unmarshal([]byte(raw), &values))
	return values
}

func TestBuildPeopleSearchURL(t *testing.T) {
	rawURL, err := BuildPeopleSearchURL(types.LinkedInSearchRequest{
		CompanyIdentifiers: []string{"100123", "100456"},
		Keywords:           "cfo",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"https://www.linkedin.com/search/results/people/?currentCompany=%5B%22100123%22%2C%22100456%22%5D&keywords=cfo&origin=FACETED_SEARCH",
		rawURL)
}

func TestBuildPeopleSearchURLDecodesDeterministically(t *testing.T) {
	rawURL, err := BuildPeopleSearchURL(types.LinkedInSearchRequest{
		CompanyIdentifiers: []string{"a", "b"},
		Keywords:           "cfo",
		LocationCodes:      []string{"103%2C104"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, decodeJSONParam(t, rawURL, "currentCompany"))
	assert.Equal(t, []string{"103", "104"}, decodeJSONParam(t, rawURL, "geoUrn"))
}

func TestBuildPeopleSearchURLParameterOrder(t *testing.T) {
	rawURL, err := BuildPeopleSearchURL(types.LinkedInSearchRequest{
		CompanyIdentifiers: []string{"1"},
		Keywords:           "ceo",
		LocationCodes:      []string{"101165590"},
	})
	require.NoError(t, err)

	query := strings.TrimPrefix(rawURL, BaseURL+"?")
	var keys []string
	for _, pair := range strings.Split(query, "&") {
		keys = append(keys, strings.SplitN(pair, "=", 2)[0])
	}
	assert.Equal(t, []string{"currentCompany", "keywords", "origin", "geoUrn"}, keys)
}

func TestBuildPeopleSearchURLEmptyKeywords(t *testing.T) {
	rawURL, err := BuildPeopleSearchURL(types.LinkedInSearchRequest{
		CompanyIdentifiers: []string{"a"},
		Keywords:           "",
	})
	require.NoError(t, err)

	assert.Contains(t, rawURL, "&keywords=&")
	assert.NotContains(t, rawURL, "geoUrn")
}

func TestBuildPeopleSearchURLTrimsKeywords(t *testing.T) {
	rawURL, err := BuildPeopleSearchURL(types.LinkedInSearchRequest{
		CompanyIdentifiers: []string{"a"},
		Keywords:           "  chief of staff  ",
	})
	require.NoError(t, err)

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	assert.Equal(t, "chief of staff", parsed.Query().Get("keywords"))
}

func TestBuildPeopleSearchURLRejectsEmptyCompanies(t *testing.T) {
	_, err := BuildPeopleSearchURL(types.LinkedInSearchRequest{Keywords: "cfo"})

	var invalid *InvalidInputError
	require.True(t, errors.As(err, &invalid))
}

func TestBuildPeopleSearchURLMixedLocationCodes(t *testing.T) {
	rawURL, err := BuildPeopleSearchURL(types.LinkedInSearchRequest{
		CompanyIdentifiers: []string{"1"},
		LocationCodes:      []string{"90009496", "103%2C104%2C105", "101165590"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"90009496", "103", "104", "105", "101165590"},
		decodeJSONParam(t, rawURL, "geoUrn"))
}

func TestBuildPeopleSearchURLOmitsGeoUrnForEmptySlice(t *testing.T) {
	rawURL, err := BuildPeopleSearchURL(types.LinkedInSearchRequest{
		CompanyIdentifiers: []string{"1"},
		LocationCodes:      []string{},
	})
	require.NoError(t, err)
	assert.NotContains(t, rawURL, "geoUrn")
}
