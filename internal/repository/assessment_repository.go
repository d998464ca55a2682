package repository

import (
	"context"

	"github.com/silverpath/funnel-api/internal/domain"
	"gorm.io/gorm"
)

// AssessmentRepository handles database operations for assessments
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new AssessmentRepository
func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// CreateAssessment inserts an assessment with its flattened responses
func (r *AssessmentRepository) CreateAssessment(ctx context.Context, assessment *domain.Assessment) error {
	assessment.ID = 0
	return r.db.WithContext(ctx).Create(assessment).Error
}

// GetAssessment retrieves an assessment by its ID
func (r *AssessmentRepository) GetAssessment(ctx context.Context, id int64) (*domain.Assessment, error) {
	var assessment domain.Assessment
	err := r.db.WithContext(ctx).First(&assessment, "id = ?", id).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &assessment, nil
}

// GetAssessmentByCompanyID retrieves the earliest assessment for a company
func (r *AssessmentRepository) GetAssessmentByCompanyID(ctx context.Context, companyID int64) (*domain.Assessment, error) {
	var assessment domain.Assessment
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id ASC").
		First(&assessment).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &assessment, nil
}
