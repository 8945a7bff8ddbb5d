package advert

import (
	"errors"
	"testing"

	"github.com/lsrecruit/sourcer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePayload(t *testing.T) {
	payload := []byte(`{
		"role_title": "Head of Sales",
		"description": "Scale the UK sales team.",
		"requirements": "5+ years in fintech sales",
		"responsibilities": "Own the revenue number",
		"salary": "120k GBP"
	}`)
	assert.NoError(t, ValidatePayload(payload))
}

func TestValidatePayloadMissingRequiredField(t *testing.T) {
	payload := []byte(`{"description": "no title here", "requirements": "", "responsibilities": ""}`)

	err := ValidatePayload(payload)
	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.NotEmpty(t, schemaErr.Problems)
}

func TestValidatePayloadEmptyRoleTitle(t *testing.T) {
	payload := []byte(`{"role_title": "", "description": "d", "requirements": "r", "responsibilities": "r"}`)
	assert.Error(t, ValidatePayload(payload))
}

func TestKeysForEnvironment(t *testing.T) {
	assert.Equal(t, "1004", KeysForEnvironment("production").RoleTitle)
	assert.Equal(t, "1004", KeysForEnvironment("staging").RoleTitle)
	assert.Equal(t, "1001", KeysForEnvironment("development").RoleTitle)
	assert.Equal(t, "1001", KeysForEnvironment("").RoleTitle)
}

func TestBuildBoxRequest(t *testing.T) {
	fields := &types.AdvertFields{
		RoleTitle:        "Head of Sales",
		Description:      "Scale the UK sales team.",
		Requirements:     "5+ years in fintech sales",
		Responsibilities: "Own the revenue number",
		Salary:           "120k GBP",
	}

	req, err := BuildBoxRequest(fields, "5001", "production")
	require.NoError(t, err)

	assert.Equal(t, "Head of Sales", req.Name)
	assert.Equal(t, "5001", req.StageKey)
	assert.Equal(t, "Head of Sales", req.Fields["1004"])
	assert.Equal(t, "120k GBP", req.Fields["1011"])
	_, hasLocation := req.Fields["1012"]
	assert.False(t, hasLocation, "empty optional fields stay out of the map")
}

func TestBuildBoxRequestPreconditions(t *testing.T) {
	fields := &types.AdvertFields{RoleTitle: "Head of Sales"}

	_, err := BuildBoxRequest(nil, "5001", "production")
	assert.Error(t, err)

	_, err = BuildBoxRequest(&types.AdvertFields{}, "5001", "production")
	assert.Error(t, err)

	_, err = BuildBoxRequest(fields, "", "production")
	assert.Error(t, err)
}
