package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/http/handler"
	"github.com/silverpath/funnel-api/internal/repository"
	"github.com/silverpath/funnel-api/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testAPI struct {
	router http.Handler
	store  *repository.MemoryStore
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()

	store := repository.NewMemoryStore()
	logger := zap.NewNop()

	companyService := service.NewCompanyService(store, logger)
	assessmentService := service.NewAssessmentService(store, store, nil, logger)
	consultationService := service.NewConsultationService(store, store, store, logger)

	companies := handler.NewCompanyHandler(companyService, assessmentService, logger)
	assessments := handler.NewAssessmentHandler(assessmentService, logger)
	consultations := handler.NewConsultationHandler(consultationService, logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/companies", func(r chi.Router) {
			r.Post("/", companies.Create)
			r.Get("/{id}", companies.GetByID)
			r.Get("/{id}/assessment", companies.GetAssessment)
			r.Get("/{id}/consultations", consultations.ListByCompany)
		})
		r.Route("/assessments", func(r chi.Router) {
			r.Post("/", assessments.Create)
			r.Get("/schema", assessments.Schema)
			r.Get("/{id}", assessments.GetByID)
			r.Get("/{id}/results", assessments.GetResults)
		})
		r.Route("/consultations", func(r chi.Router) {
			r.Post("/", consultations.Create)
			r.Get("/{id}", consultations.GetByID)
		})
	})

	return &testAPI{router: r, store: store}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func companyBody() map[string]interface{} {
	return map[string]interface{}{
		"name":     "Golden Years Dental",
		"industry": "healthcare",
		"size":     "11-50",
		"userName": "Jane Doe",
		"userRole": "Marketing Director",
		"email":    "jane@goldenyears.example",
	}
}

// wizardCompanyBody is what the browser client posts when the optional
// fields are skipped: every key present, blanks as ""
func wizardCompanyBody() map[string]interface{} {
	return map[string]interface{}{
		"name":     "Golden Years Dental",
		"industry": "healthcare",
		"size":     "",
		"revenue":  "",
		"userName": "Jane Doe",
		"userRole": "Marketing Director",
		"email":    "jane@goldenyears.example",
		"phone":    "",
	}
}

func typicalResponses() map[string]interface{} {
	return map[string]interface{}{
		"seniorCustomerPercentage": "26-50",
		"marketingChannels":        []string{"email", "referrals"},
		"biggestChallenge":         "accessibility",
		"primaryGoal":              "increase-revenue",
		"monthlyBudget":            "5k-15k",
	}
}

func (a *testAPI) createCompany(t *testing.T) domain.CompanyDTO {
	t.Helper()
	rr := a.do(t, http.MethodPost, "/api/companies", companyBody())
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[domain.CompanyDTO](t, rr)
}

func (a *testAPI) createAssessment(t *testing.T, companyID int64) domain.AssessmentWithResultsDTO {
	t.Helper()
	rr := a.do(t, http.MethodPost, "/api/assessments", map[string]interface{}{
		"companyId": companyID,
		"responses": typicalResponses(),
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[domain.AssessmentWithResultsDTO](t, rr)
}
