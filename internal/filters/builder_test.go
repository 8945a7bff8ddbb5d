package filters

import (
	"testing"

	"github.com/lsrecruit/sourcer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []types.BusinessModel {
	return []types.BusinessModel{
		{ID: 0, Name: "Bank"},
		{ID: 1, Name: "Asset Manager"},
		{ID: 2, Name: "Wealth Manager"},
	}
}

func TestBuildJoinsCategoryNames(t *testing.T) {
	f := Build([]int{0, 2}, catalog(), SizeRange{From: 10, To: 500})

	assert.Equal(t, "Bank,Wealth Manager", f.BusinessModels)
	require.NotNil(t, f.SizeFrom)
	require.NotNil(t, f.SizeTo)
	assert.Equal(t, 10, *f.SizeFrom)
	assert.Equal(t, 500, *f.SizeTo)
}

func TestBuildDropsUnmatchedIDs(t *testing.T) {
	f := Build([]int{1, 99}, catalog(), SizeRange{From: 1, To: 2})
	assert.Equal(t, "Asset Manager", f.BusinessModels)
}

func TestBuildEmptySelectionOmitsBusinessModels(t *testing.T) {
	f := Build(nil, catalog(), SizeRange{From: 166, To: 228522})

	assert.Empty(t, f.BusinessModels)
	values := f.QueryValues()
	_, present := values["businessModels"]
	assert.False(t, present, "businessModels must be absent, not empty")
	assert.Equal(t, "166", values.Get("sizeFrom"))
	assert.Equal(t, "228522", values.Get("sizeTo"))
}

func TestQueryValuesOmitAbsentFields(t *testing.T) {
	values := types.SearchFilters{}.QueryValues()
	assert.Empty(t, values)
}

func TestWithLocations(t *testing.T) {
	base := Build(nil, catalog(), SizeRange{From: 1, To: 2})

	withCodes := WithLocations(base, []string{"103", "101165590"})
	assert.Equal(t, "103,101165590", withCodes.QueryValues().Get("locationCodes"))

	without := WithLocations(base, nil)
	_, present := without.QueryValues()["locationCodes"]
	assert.False(t, present)
}
