package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/service"
)

// maxBodyBytes bounds request bodies; the largest payload is a consultation
// with a 2000 character priority note
const maxBodyBytes = 64 << 10

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// decodeBody decodes a size-limited JSON request body into target
func decodeBody(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid request body",
		})
		return false
	}
	return true
}

// parseID reads a positive integer path parameter
func parseID(w http.ResponseWriter, r *http.Request, param, entity string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: fmt.Sprintf("Invalid %s ID format", entity),
		})
		return 0, false
	}
	return id, true
}

// respondValidationError sends a standardized validation error response with specific field messages
func respondValidationError(w http.ResponseWriter, err error) {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fieldPath(fe)] = formatValidationError(fe)
		}
	}
	respondFieldErrors(w, fields)
}

func respondFieldErrors(w http.ResponseWriter, fields map[string]string) {
	respondJSON(w, http.StatusBadRequest, domain.NewValidationProblem(fields))
}

// fieldPath drops the top-level struct name from the validator namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx != -1 {
		return ns[idx+1:]
	}
	return fe.Field()
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// respondServiceError maps service errors onto HTTP responses. Unexpected
// errors become a generic 500; the caller has already logged them.
func respondServiceError(w http.ResponseWriter, err error, internalMessage string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respondFieldErrors(w, verr.Fields)
	case errors.Is(err, service.ErrCompanyNotFound):
		respondNotFound(w, "Company not found")
	case errors.Is(err, service.ErrAssessmentNotFound):
		respondNotFound(w, "Assessment not found")
	case errors.Is(err, service.ErrConsultationNotFound):
		respondNotFound(w, "Consultation not found")
	default:
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: internalMessage,
		})
	}
}

func respondNotFound(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
		Error:   "Not Found",
		Message: message,
	})
}

// isClientError reports whether err maps to a 4xx response
func isClientError(err error) bool {
	var verr *service.ValidationError
	return errors.As(err, &verr) ||
		errors.Is(err, service.ErrCompanyNotFound) ||
		errors.Is(err, service.ErrAssessmentNotFound) ||
		errors.Is(err, service.ErrConsultationNotFound)
}
