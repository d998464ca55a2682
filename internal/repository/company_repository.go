package repository

import (
	"context"

	"github.com/silverpath/funnel-api/internal/domain"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// CreateCompany inserts a company; the database assigns the id
func (r *CompanyRepository) CreateCompany(ctx context.Context, company *domain.Company) error {
	company.ID = 0
	return r.db.WithContext(ctx).Create(company).Error
}

// GetCompany retrieves a company by its ID
func (r *CompanyRepository) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	var company domain.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &company, nil
}
