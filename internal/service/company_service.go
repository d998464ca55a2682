package service

import (
	"context"
	"fmt"

	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/mapper"
	"github.com/silverpath/funnel-api/internal/metrics"
	"github.com/silverpath/funnel-api/internal/repository"
	"go.uber.org/zap"
)

type CompanyService struct {
	companies repository.CompanyStore
	logger    *zap.Logger
}

func NewCompanyService(companies repository.CompanyStore, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companies: companies,
		logger:    logger,
	}
}

func (s *CompanyService) Create(ctx context.Context, req *domain.CreateCompanyRequest) (*domain.CompanyDTO, error) {
	company := &domain.Company{
		Name:     req.Name,
		Industry: req.Industry,
		Size:     req.Size,
		Revenue:  req.Revenue,
		UserName: req.UserName,
		UserRole: req.UserRole,
		Email:    req.Email,
		Phone:    req.Phone,
	}

	if err := s.companies.CreateCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	metrics.CompaniesCreated.Inc()

	s.logger.Info("company created",
		zap.Int64("company_id", company.ID),
		zap.String("industry", company.Industry))

	dto := mapper.ToCompanyDTO(company)
	return &dto, nil
}

func (s *CompanyService) GetByID(ctx context.Context, id int64) (*domain.CompanyDTO, error) {
	company, err := s.companies.GetCompany(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	dto := mapper.ToCompanyDTO(company)
	return &dto, nil
}
