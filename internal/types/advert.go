package types

// AdvertFields holds the structured fields extracted from a job-advert PDF
// by the backend summarization service.
type AdvertFields struct {
	RoleTitle        string `json:"role_title"`
	Description      string `json:"description"`
	Requirements     string `json:"requirements"`
	Responsibilities string `json:"responsibilities"`
	Salary           string `json:"salary,omitempty"`
	Location         string `json:"location,omitempty"`
}

// CreateBoxRequest is the payload for creating a box in the recruitment-CRM
// pipeline from a processed advert. Fields is keyed by the CRM's
// environment-specific field keys.
type CreateBoxRequest struct {
	Name     string            `json:"name"`
	StageKey string            `json:"stageKey" validate:"required"`
	Fields   map[string]string `json:"fields"`
}
