// Package schemas provides JSON Schema validation for structured model
// output. The field parser refuses to decode a model reply that does not
// match the contract; a mismatch routes the caller to the deterministic
// fallback instead of producing a half-filled result.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ParsedJobSchema is the exact contract the field-parsing prompt instructs
// the model to return.
const ParsedJobSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "isJobPosting":    {"type": "boolean"},
    "jobTitle":        {"type": ["string", "null"]},
    "company":         {"type": ["string", "null"]},
    "location":        {"type": ["string", "null"]},
    "workModel":       {"type": ["string", "null"]},
    "experienceLevel": {"type": ["string", "null"]},
    "minSalary":       {"type": ["string", "null"], "pattern": "^[0-9]*$"},
    "maxSalary":       {"type": ["string", "null"], "pattern": "^[0-9]*$"},
    "skills":          {"type": ["array", "null"], "items": {"type": "string"}},
    "requirements":    {"type": ["array", "null"], "items": {"type": "string"}},
    "timeline":        {"type": ["string", "null"]},
    "department":      {"type": ["string", "null"]},
    "confidence":      {"type": "number", "minimum": 0, "maximum": 1}
  },
  "required": ["isJobPosting", "jobTitle", "confidence"]
}`

// ValidationError reports which fields of a model reply violated the schema.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, msg := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, msg))
	}
	return sb.String()
}

// ValidateParsedJob checks a JSON document against ParsedJobSchema.
func ValidateParsedJob(jsonText string) error {
	return validate(ParsedJobSchema, jsonText)
}

func validate(schema, jsonText string) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	docLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}

	if !result.Valid() {
		ve := &ValidationError{}
		for _, desc := range result.Errors() {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return ve
	}

	return nil
}
