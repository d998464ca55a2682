// Package questionnaire holds the JSON Schema contract for assessment responses.
// The same document is served to the wizard client and enforced on submission.
package questionnaire

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var (
	compiled     *gojsonschema.Schema
	compiledErr  error
	compiledOnce sync.Once
)

// Schema returns the raw JSON Schema document
func Schema() []byte {
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)
	return out
}

func schema() (*gojsonschema.Schema, error) {
	compiledOnce.Do(func() {
		compiled, compiledErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	})
	return compiled, compiledErr
}

// Validate checks the responses against the questionnaire schema.
// It returns a map of JSON field name to message; an empty map means valid.
func Validate(responses *domain.AssessmentResponses) (map[string]string, error) {
	if responses == nil {
		return map[string]string{"responses": "responses is required"}, nil
	}

	s, err := schema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile questionnaire schema: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(responses))
	if err != nil {
		return nil, fmt.Errorf("failed to validate responses: %w", err)
	}

	fieldErrors := make(map[string]string)
	for _, re := range result.Errors() {
		field := fieldName(re)
		if _, seen := fieldErrors[field]; seen {
			continue
		}
		fieldErrors[field] = message(field, re)
	}
	return fieldErrors, nil
}

// fieldName maps a schema error to the top-level response field it concerns.
// Array item errors ("marketingChannels.2") collapse onto the array field.
func fieldName(re gojsonschema.ResultError) string {
	field := re.Field()
	if field == "(root)" || field == "" {
		if prop, ok := re.Details()["property"].(string); ok {
			field = prop
		}
	}
	if idx := strings.Index(field, "."); idx != -1 {
		field = field[:idx]
	}
	return field
}

func message(field string, re gojsonschema.ResultError) string {
	switch re.Type() {
	case "required":
		return field + " is required"
	case "invalid_type":
		// nil slices marshal as null
		if field == "marketingChannels" {
			return domain.GetValidationMessage("array_min_items")
		}
		return domain.GetValidationMessage("invalid_type")
	case "enum":
		if allowed, ok := re.Details()["allowed"].(string); ok && allowed != "" {
			return "Must be one of: " + allowed
		}
		return domain.GetValidationMessage("enum")
	default:
		return domain.GetValidationMessage(re.Type())
	}
}

// Fields returns the sorted field names present in a validation error map
func Fields(fieldErrors map[string]string) []string {
	fields := make([]string, 0, len(fieldErrors))
	for f := range fieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
