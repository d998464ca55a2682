package domain

import "net/http"

// ErrorTypeValidation is the problem type for rejected input
const ErrorTypeValidation = "validation_error"

// APIError is an RFC 7807 style problem body. Errors maps a JSON field path
// such as "responses.monthlyBudget" to a message.
type APIError struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

// NewValidationProblem builds the 400 body for per-field failures
func NewValidationProblem(fields map[string]string) APIError {
	return APIError{
		Type:   ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: fields,
	}
}

// validationMessages covers validator tags and questionnaire schema keywords
var validationMessages = map[string]string{
	"required":        "This field is required",
	"email":           "Must be a valid email address",
	"max":             "Exceeds maximum length",
	"min":             "Below minimum length",
	"gt":              "Must be greater than minimum value",
	"oneof":           "Must be one of the allowed values",
	"enum":            "Must be one of the allowed values",
	"array_min_items": "Select at least one option",
	"unique":          "Options must not repeat",
	"invalid_type":    "Has the wrong type",
}

// GetValidationMessage returns the user-facing message for a tag or keyword
func GetValidationMessage(tag string) string {
	if msg, ok := validationMessages[tag]; ok {
		return msg
	}
	return "Validation failed: " + tag
}
