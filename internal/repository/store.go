package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/silverpath/funnel-api/internal/domain"
	"gorm.io/gorm"
)

// CompanyStore persists companies
type CompanyStore interface {
	// CreateCompany assigns the next id and creation time to company and stores it
	CreateCompany(ctx context.Context, company *domain.Company) error
	// GetCompany returns nil, nil when no company has the id
	GetCompany(ctx context.Context, id int64) (*domain.Company, error)
}

// AssessmentStore persists assessments. It does not check the company reference.
type AssessmentStore interface {
	CreateAssessment(ctx context.Context, assessment *domain.Assessment) error
	GetAssessment(ctx context.Context, id int64) (*domain.Assessment, error)
	// GetAssessmentByCompanyID returns the company's first assessment by insertion order
	GetAssessmentByCompanyID(ctx context.Context, companyID int64) (*domain.Assessment, error)
}

// ConsultationStore persists consultations
type ConsultationStore interface {
	// CreateConsultation always stores the consultation as pending
	CreateConsultation(ctx context.Context, consultation *domain.Consultation) error
	GetConsultation(ctx context.Context, id int64) (*domain.Consultation, error)
	GetConsultationsByCompanyID(ctx context.Context, companyID int64) ([]domain.Consultation, error)
	CountConsultationsByStatus(ctx context.Context, status domain.ConsultationStatus) (int64, error)
}

// Store is the full entity store used by the services
type Store interface {
	CompanyStore
	AssessmentStore
	ConsultationStore
	Ping(ctx context.Context) error
}

// GormStore is the database backed Store
type GormStore struct {
	*CompanyRepository
	*AssessmentRepository
	*ConsultationRepository
	db *gorm.DB
}

// NewGormStore creates a Store over an open gorm connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		CompanyRepository:      NewCompanyRepository(db),
		AssessmentRepository:   NewAssessmentRepository(db),
		ConsultationRepository: NewConsultationRepository(db),
		db:                     db,
	}
}

// Ping checks that the database is reachable
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// notFoundAsNil turns gorm's missing-record error into an empty result
func notFoundAsNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

var _ Store = (*GormStore)(nil)
