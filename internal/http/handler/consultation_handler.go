package handler

import (
	"fmt"
	"net/http"

	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/service"
	"go.uber.org/zap"
)

type ConsultationHandler struct {
	consultationService *service.ConsultationService
	logger              *zap.Logger
}

func NewConsultationHandler(consultationService *service.ConsultationService, logger *zap.Logger) *ConsultationHandler {
	return &ConsultationHandler{
		consultationService: consultationService,
		logger:              logger,
	}
}

// Create godoc
// @Summary Book consultation
// @Description Books a follow-up consultation for a company's assessment. Status is always pending.
// @Tags Consultations
// @Accept json
// @Produce json
// @Param request body domain.CreateConsultationRequest true "Consultation preferences"
// @Success 201 {object} domain.ConsultationDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.ErrorResponse "Company or assessment not found"
// @Failure 500 {object} domain.ErrorResponse
// @Router /consultations [post]
func (h *ConsultationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateConsultationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	req.Normalize()
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	consultation, err := h.consultationService.Create(r.Context(), &req)
	if err != nil {
		if !isClientError(err) {
			h.logger.Error("failed to create consultation", zap.Error(err), zap.Int64("company_id", req.CompanyID))
		}
		respondServiceError(w, err, "Failed to create consultation")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/consultations/%d", consultation.ID))
	respondJSON(w, http.StatusCreated, consultation)
}

// GetByID godoc
// @Summary Get consultation
// @Tags Consultations
// @Produce json
// @Param id path int true "Consultation ID"
// @Success 200 {object} domain.ConsultationDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /consultations/{id} [get]
func (h *ConsultationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "consultation")
	if !ok {
		return
	}

	consultation, err := h.consultationService.GetByID(r.Context(), id)
	if err != nil {
		if !isClientError(err) {
			h.logger.Error("failed to get consultation", zap.Error(err), zap.Int64("consultation_id", id))
		}
		respondServiceError(w, err, "Failed to get consultation")
		return
	}

	respondJSON(w, http.StatusOK, consultation)
}

// ListByCompany godoc
// @Summary List company consultations
// @Description Consultations booked by a company, oldest first. Unknown companies return an empty list.
// @Tags Consultations
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {array} domain.ConsultationDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /companies/{id}/consultations [get]
func (h *ConsultationHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := parseID(w, r, "id", "company")
	if !ok {
		return
	}

	consultations, err := h.consultationService.ListByCompany(r.Context(), companyID)
	if err != nil {
		h.logger.Error("failed to list consultations", zap.Error(err), zap.Int64("company_id", companyID))
		respondServiceError(w, err, "Failed to list consultations")
		return
	}

	respondJSON(w, http.StatusOK, consultations)
}
