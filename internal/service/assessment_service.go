package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/silverpath/funnel-api/internal/cache"
	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/logger"
	"github.com/silverpath/funnel-api/internal/mapper"
	"github.com/silverpath/funnel-api/internal/metrics"
	"github.com/silverpath/funnel-api/internal/questionnaire"
	"github.com/silverpath/funnel-api/internal/repository"
	"github.com/silverpath/funnel-api/internal/scoring"
	"go.uber.org/zap"
)

// AssessmentService scores questionnaire submissions and serves their results
type AssessmentService struct {
	companies   repository.CompanyStore
	assessments repository.AssessmentStore
	results     cache.ResultsCache
	logger      *zap.Logger
}

// NewAssessmentService creates an AssessmentService. A nil cache disables caching.
func NewAssessmentService(
	companies repository.CompanyStore,
	assessments repository.AssessmentStore,
	results cache.ResultsCache,
	logger *zap.Logger,
) *AssessmentService {
	if results == nil {
		results = cache.NoopResultsCache{}
	}
	return &AssessmentService{
		companies:   companies,
		assessments: assessments,
		results:     results,
		logger:      logger,
	}
}

// Create validates the responses, checks the company, scores and stores the
// assessment. Nothing is stored when any step before persistence fails.
func (s *AssessmentService) Create(ctx context.Context, req *domain.CreateAssessmentRequest) (*domain.AssessmentWithResultsDTO, error) {
	fieldErrors, err := questionnaire.Validate(req.Responses)
	if err != nil {
		return nil, fmt.Errorf("failed to validate responses: %w", err)
	}
	if len(fieldErrors) > 0 {
		s.logger.Debug("assessment responses rejected",
			zap.Int64("company_id", req.CompanyID),
			zap.Strings("fields", questionnaire.Fields(fieldErrors)))
		return nil, newValidationError(nil, prefixFields("responses", fieldErrors))
	}

	company, err := s.companies.GetCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	results, err := scoring.Evaluate(*req.Responses)
	if err != nil {
		return nil, scoringError(err)
	}

	assessment := &domain.Assessment{
		CompanyID: company.ID,
		Responses: *req.Responses,
		Score:     results.Score,
	}
	if err := s.assessments.CreateAssessment(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}

	metrics.AssessmentsScored.WithLabelValues(string(assessment.Responses.MonthlyBudget)).Inc()
	metrics.AssessmentScore.Observe(float64(results.Score))
	s.cacheResults(ctx, assessment.ID, results)

	logger.WithCompany(s.logger, company.ID).Info("assessment scored",
		zap.Int64("assessment_id", assessment.ID),
		zap.Int("score", results.Score))

	dto := mapper.ToAssessmentWithResultsDTO(assessment, results)
	return &dto, nil
}

func (s *AssessmentService) GetByID(ctx context.Context, id int64) (*domain.AssessmentDTO, error) {
	assessment, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToAssessmentDTO(assessment)
	return &dto, nil
}

// GetResults returns the assessment with results recomputed from its stored responses
func (s *AssessmentService) GetResults(ctx context.Context, id int64) (*domain.AssessmentWithResultsDTO, error) {
	assessment, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withResults(ctx, assessment)
}

// GetByCompanyID returns the company's first assessment with its results
func (s *AssessmentService) GetByCompanyID(ctx context.Context, companyID int64) (*domain.AssessmentWithResultsDTO, error) {
	company, err := s.companies.GetCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	assessment, err := s.assessments.GetAssessmentByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment for company: %w", err)
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return s.withResults(ctx, assessment)
}

func (s *AssessmentService) get(ctx context.Context, id int64) (*domain.Assessment, error) {
	assessment, err := s.assessments.GetAssessment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

func (s *AssessmentService) withResults(ctx context.Context, assessment *domain.Assessment) (*domain.AssessmentWithResultsDTO, error) {
	results, found, err := s.results.Get(ctx, assessment.ID)
	switch {
	case err != nil:
		metrics.ResultsCacheLookups.WithLabelValues(metrics.CacheError).Inc()
		s.logger.Warn("results cache read failed",
			zap.Int64("assessment_id", assessment.ID),
			zap.Error(err))
	case found:
		metrics.ResultsCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	default:
		metrics.ResultsCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
	}

	if !found || err != nil {
		results, err = scoring.Evaluate(assessment.Responses)
		if err != nil {
			// stored responses were accepted once, so this is data corruption
			return nil, fmt.Errorf("failed to score stored assessment %d: %w", assessment.ID, err)
		}
		s.cacheResults(ctx, assessment.ID, results)
	}

	dto := mapper.ToAssessmentWithResultsDTO(assessment, results)
	return &dto, nil
}

func (s *AssessmentService) cacheResults(ctx context.Context, assessmentID int64, results *domain.AssessmentResults) {
	if err := s.results.Set(ctx, assessmentID, results); err != nil {
		s.logger.Warn("results cache write failed",
			zap.Int64("assessment_id", assessmentID),
			zap.Error(err))
	}
}

func scoringError(err error) error {
	var invalid *scoring.InvalidResponseError
	if errors.As(err, &invalid) {
		return newValidationError(err, map[string]string{
			"responses." + invalid.Field: domain.GetValidationMessage("enum"),
		})
	}
	return fmt.Errorf("failed to score assessment: %w", err)
}

func prefixFields(prefix string, fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for name, msg := range fields {
		if name == prefix {
			out[name] = msg
			continue
		}
		out[prefix+"."+name] = msg
	}
	return out
}
