// Package advert turns a summarized job advert into a recruitment-CRM box
// request, validating the summarizer's output on the way in.
package advert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// advertSchema describes the summarizer's response. The summarization
// pipeline lives server-side; the client only refuses payloads that are
// missing the fields a box cannot be built without.
const advertSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["role_title", "description", "requirements", "responsibilities"],
  "properties": {
    "role_title": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "requirements": {"type": "string"},
    "responsibilities": {"type": "string"},
    "salary": {"type": "string"},
    "location": {"type": "string"}
  }
}`

// SchemaError reports a summarizer payload that failed schema validation.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("advert payload failed validation: %s", strings.Join(e.Problems, "; "))
}

// ValidatePayload checks the raw summarizer response against the advert
// schema before its fields are trusted.
func ValidatePayload(raw []byte) error {
	schema := gojsonschema.NewStringLoader(advertSchema)
	document := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return fmt.Errorf("failed to validate advert payload: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	sort.Strings(problems)
	return &SchemaError{Problems: problems}
}
