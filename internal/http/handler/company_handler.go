package handler

import (
	"fmt"
	"net/http"

	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/service"
	"go.uber.org/zap"
)

type CompanyHandler struct {
	companyService    *service.CompanyService
	assessmentService *service.AssessmentService
	logger            *zap.Logger
}

func NewCompanyHandler(companyService *service.CompanyService, assessmentService *service.AssessmentService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyService:    companyService,
		assessmentService: assessmentService,
		logger:            logger,
	}
}

// Create godoc
// @Summary Create company
// @Description Register the company taking the assessment (first funnel step)
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body domain.CreateCompanyRequest true "Company data"
// @Success 201 {object} domain.CompanyDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.ErrorResponse
// @Router /companies [post]
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCompanyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	req.Normalize()
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	company, err := h.companyService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create company", zap.Error(err))
		respondServiceError(w, err, "Failed to create company")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/companies/%d", company.ID))
	respondJSON(w, http.StatusCreated, company)
}

// GetByID godoc
// @Summary Get company
// @Tags Companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} domain.CompanyDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "company")
	if !ok {
		return
	}

	company, err := h.companyService.GetByID(r.Context(), id)
	if err != nil {
		if !isClientError(err) {
			h.logger.Error("failed to get company", zap.Error(err), zap.Int64("company_id", id))
		}
		respondServiceError(w, err, "Failed to get company")
		return
	}

	respondJSON(w, http.StatusOK, company)
}

// GetAssessment godoc
// @Summary Get the company's assessment
// @Description Returns the company's first assessment with its recomputed results
// @Tags Companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} domain.AssessmentWithResultsDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /companies/{id}/assessment [get]
func (h *CompanyHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "company")
	if !ok {
		return
	}

	result, err := h.assessmentService.GetByCompanyID(r.Context(), id)
	if err != nil {
		if !isClientError(err) {
			h.logger.Error("failed to get company assessment", zap.Error(err), zap.Int64("company_id", id))
		}
		respondServiceError(w, err, "Failed to get assessment")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
