package service

import (
	"context"
	"fmt"

	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/logger"
	"github.com/silverpath/funnel-api/internal/mapper"
	"github.com/silverpath/funnel-api/internal/metrics"
	"github.com/silverpath/funnel-api/internal/repository"
	"go.uber.org/zap"
)

// ConsultationService books follow-up consultations
type ConsultationService struct {
	companies     repository.CompanyStore
	assessments   repository.AssessmentStore
	consultations repository.ConsultationStore
	logger        *zap.Logger
}

func NewConsultationService(
	companies repository.CompanyStore,
	assessments repository.AssessmentStore,
	consultations repository.ConsultationStore,
	logger *zap.Logger,
) *ConsultationService {
	return &ConsultationService{
		companies:     companies,
		assessments:   assessments,
		consultations: consultations,
		logger:        logger,
	}
}

// Create books a consultation for a company's assessment. The consultation is
// always stored as pending.
func (s *ConsultationService) Create(ctx context.Context, req *domain.CreateConsultationRequest) (*domain.ConsultationDTO, error) {
	company, err := s.companies.GetCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	assessment, err := s.assessments.GetAssessment(ctx, req.AssessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	if assessment.CompanyID != company.ID {
		return nil, newValidationError(ErrAssessmentCompanyMismatch, map[string]string{
			"assessmentId": "Assessment was not taken by this company",
		})
	}

	consultation := &domain.Consultation{
		CompanyID:     company.ID,
		AssessmentID:  assessment.ID,
		PreferredTime: req.PreferredTime,
		PreferredDay:  req.PreferredDay,
		Urgency:       req.Urgency,
		Priority:      req.Priority,
		Source:        req.Source,
	}
	if err := s.consultations.CreateConsultation(ctx, consultation); err != nil {
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}
	metrics.ConsultationsBooked.WithLabelValues(string(consultation.Urgency)).Inc()

	logger.WithCompany(s.logger, company.ID).Info("consultation booked",
		zap.Int64("consultation_id", consultation.ID),
		zap.Int64("assessment_id", assessment.ID),
		zap.String("urgency", string(consultation.Urgency)))

	dto := mapper.ToConsultationDTO(consultation)
	return &dto, nil
}

func (s *ConsultationService) GetByID(ctx context.Context, id int64) (*domain.ConsultationDTO, error) {
	consultation, err := s.consultations.GetConsultation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	dto := mapper.ToConsultationDTO(consultation)
	return &dto, nil
}

// ListByCompany returns the company's consultations in booking order. An
// unknown company simply has none.
func (s *ConsultationService) ListByCompany(ctx context.Context, companyID int64) ([]domain.ConsultationDTO, error) {
	consultations, err := s.consultations.GetConsultationsByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	return mapper.ToConsultationDTOs(consultations), nil
}

// CountPending returns how many consultations have not been confirmed or cancelled
func (s *ConsultationService) CountPending(ctx context.Context) (int64, error) {
	count, err := s.consultations.CountConsultationsByStatus(ctx, domain.ConsultationStatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending consultations: %w", err)
	}
	return count, nil
}
