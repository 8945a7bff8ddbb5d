package advert

import (
	"fmt"

	"github.com/lsrecruit/sourcer/internal/types"
)

// FieldKeys maps advert fields to the CRM's numeric field keys. The keys
// differ between the production and development pipelines.
type FieldKeys struct {
	RoleTitle        string
	Description      string
	Requirements     string
	Responsibilities string
	Salary           string
	Location         string
}

var productionKeys = FieldKeys{
	RoleTitle:        "1004",
	Description:      "1005",
	Requirements:     "1006",
	Responsibilities: "1008",
	Salary:           "1011",
	Location:         "1012",
}

var developmentKeys = FieldKeys{
	RoleTitle:        "1001",
	Description:      "1002",
	Requirements:     "1003",
	Responsibilities: "1005",
	Salary:           "1008",
	Location:         "1009",
}

// KeysForEnvironment returns the CRM field keys for the named environment.
// Staging posts into the production pipeline and shares its keys.
func KeysForEnvironment(environment string) FieldKeys {
	switch environment {
	case "production", "staging":
		return productionKeys
	default:
		return developmentKeys
	}
}

// BuildBoxRequest assembles the CRM box-creation request for a validated
// advert. Empty optional fields (salary, location) are left out of the field
// map rather than posted as empty values.
func BuildBoxRequest(fields *types.AdvertFields, stageKey, environment string) (*types.CreateBoxRequest, error) {
	if fields == nil || fields.RoleTitle == "" {
		return nil, fmt.Errorf("advert has no role title; process an advert first")
	}
	if stageKey == "" {
		return nil, fmt.Errorf("a stage key is required to create a box")
	}

	keys := KeysForEnvironment(environment)
	boxFields := map[string]string{
		keys.RoleTitle:        fields.RoleTitle,
		keys.Description:      fields.Description,
		keys.Requirements:     fields.Requirements,
		keys.Responsibilities: fields.Responsibilities,
	}
	if fields.Salary != "" {
		boxFields[keys.Salary] = fields.Salary
	}
	if fields.Location != "" {
		boxFields[keys.Location] = fields.Location
	}

	return &types.CreateBoxRequest{
		Name:     fields.RoleTitle,
		StageKey: stageKey,
		Fields:   boxFields,
	}, nil
}
