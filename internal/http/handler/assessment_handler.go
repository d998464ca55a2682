package handler

import (
	"fmt"
	"net/http"

	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/questionnaire"
	"github.com/silverpath/funnel-api/internal/service"
	"go.uber.org/zap"
)

type AssessmentHandler struct {
	assessmentService *service.AssessmentService
	logger            *zap.Logger
}

func NewAssessmentHandler(assessmentService *service.AssessmentService, logger *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
		logger:            logger,
	}
}

// Create godoc
// @Summary Submit assessment
// @Description Scores the questionnaire responses, stores the assessment and returns the results
// @Tags Assessments
// @Accept json
// @Produce json
// @Param request body domain.CreateAssessmentRequest true "Questionnaire responses"
// @Success 201 {object} domain.AssessmentWithResultsDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.ErrorResponse "Company not found"
// @Failure 500 {object} domain.ErrorResponse
// @Router /assessments [post]
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAssessmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.assessmentService.Create(r.Context(), &req)
	if err != nil {
		if !isClientError(err) {
			h.logger.Error("failed to create assessment", zap.Error(err), zap.Int64("company_id", req.CompanyID))
		}
		respondServiceError(w, err, "Failed to create assessment")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/assessments/%d", result.Assessment.ID))
	respondJSON(w, http.StatusCreated, result)
}

// GetByID godoc
// @Summary Get assessment
// @Tags Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} domain.AssessmentDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /assessments/{id} [get]
func (h *AssessmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "assessment")
	if !ok {
		return
	}

	assessment, err := h.assessmentService.GetByID(r.Context(), id)
	if err != nil {
		if !isClientError(err) {
			h.logger.Error("failed to get assessment", zap.Error(err), zap.Int64("assessment_id", id))
		}
		respondServiceError(w, err, "Failed to get assessment")
		return
	}

	respondJSON(w, http.StatusOK, assessment)
}

// GetResults godoc
// @Summary Get assessment results
// @Description Returns the assessment with results recomputed from the stored responses
// @Tags Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} domain.AssessmentWithResultsDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /assessments/{id}/results [get]
func (h *AssessmentHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "assessment")
	if !ok {
		return
	}

	result, err := h.assessmentService.GetResults(r.Context(), id)
	if err != nil {
		if !isClientError(err) {
			h.logger.Error("failed to get assessment results", zap.Error(err), zap.Int64("assessment_id", id))
		}
		respondServiceError(w, err, "Failed to get assessment results")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Schema godoc
// @Summary Questionnaire schema
// @Description JSON Schema describing valid assessment responses
// @Tags Assessments
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /assessments/schema [get]
func (h *AssessmentHandler) Schema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(questionnaire.Schema())
}
