package repository

import (
	"context"

	"github.com/silverpath/funnel-api/internal/domain"
	"gorm.io/gorm"
)

// ConsultationRepository handles database operations for consultations
type ConsultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository creates a new ConsultationRepository
func NewConsultationRepository(db *gorm.DB) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

// CreateConsultation inserts a consultation with pending status
func (r *ConsultationRepository) CreateConsultation(ctx context.Context, consultation *domain.Consultation) error {
	consultation.ID = 0
	consultation.Status = domain.ConsultationStatusPending
	return r.db.WithContext(ctx).Create(consultation).Error
}

// GetConsultation retrieves a consultation by its ID
func (r *ConsultationRepository) GetConsultation(ctx context.Context, id int64) (*domain.Consultation, error) {
	var consultation domain.Consultation
	err := r.db.WithContext(ctx).First(&consultation, "id = ?", id).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &consultation, nil
}

// GetConsultationsByCompanyID lists a company's consultations in insertion order
func (r *ConsultationRepository) GetConsultationsByCompanyID(ctx context.Context, companyID int64) ([]domain.Consultation, error) {
	consultations := []domain.Consultation{}
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

// CountConsultationsByStatus counts consultations in the given status
func (r *ConsultationRepository) CountConsultationsByStatus(ctx context.Context, status domain.ConsultationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Consultation{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
