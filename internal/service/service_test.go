package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/repository"
	"github.com/silverpath/funnel-api/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type services struct {
	store         *repository.MemoryStore
	companies     *service.CompanyService
	assessments   *service.AssessmentService
	consultations *service.ConsultationService
}

func newServices(t *testing.T) *services {
	t.Helper()
	store := repository.NewMemoryStore()
	logger := zap.NewNop()
	return &services{
		store:         store,
		companies:     service.NewCompanyService(store, logger),
		assessments:   service.NewAssessmentService(store, store, nil, logger),
		consultations: service.NewConsultationService(store, store, store, logger),
	}
}

func strPtr(s string) *string {
	return &s
}

func companyRequest() *domain.CreateCompanyRequest {
	return &domain.CreateCompanyRequest{
		Name:     "Golden Years Dental",
		Industry: "healthcare",
		Size:     strPtr("11-50"),
		UserName: "Jane Doe",
		UserRole: "Marketing Director",
		Email:    "jane@goldenyears.example",
	}
}

func typicalResponses() *domain.AssessmentResponses {
	return &domain.AssessmentResponses{
		SeniorCustomerPercentage: domain.SeniorPercentage26To50,
		MarketingChannels:        domain.ChannelList{"email", "referrals"},
		BiggestChallenge:         domain.ChallengeAccessibility,
		PrimaryGoal:              domain.GoalIncreaseRevenue,
		MonthlyBudget:            domain.Budget5kTo15k,
	}
}

func (s *services) createCompany(t *testing.T) *domain.CompanyDTO {
	t.Helper()
	company, err := s.companies.Create(context.Background(), companyRequest())
	require.NoError(t, err)
	return company
}

func (s *services) createAssessment(t *testing.T, companyID int64) *domain.AssessmentWithResultsDTO {
	t.Helper()
	result, err := s.assessments.Create(context.Background(), &domain.CreateAssessmentRequest{
		CompanyID: companyID,
		Responses: typicalResponses(),
	})
	require.NoError(t, err)
	return result
}

// failingStore fails every call with errStore
type failingStore struct{}

var errStore = errors.New("connection reset")

func (failingStore) CreateCompany(context.Context, *domain.Company) error { return errStore }
func (failingStore) GetCompany(context.Context, int64) (*domain.Company, error) {
	return nil, errStore
}
func (failingStore) CreateAssessment(context.Context, *domain.Assessment) error { return errStore }
func (failingStore) GetAssessment(context.Context, int64) (*domain.Assessment, error) {
	return nil, errStore
}
func (failingStore) GetAssessmentByCompanyID(context.Context, int64) (*domain.Assessment, error) {
	return nil, errStore
}
func (failingStore) CreateConsultation(context.Context, *domain.Consultation) error { return errStore }
func (failingStore) GetConsultation(context.Context, int64) (*domain.Consultation, error) {
	return nil, errStore
}
func (failingStore) GetConsultationsByCompanyID(context.Context, int64) ([]domain.Consultation, error) {
	return nil, errStore
}
func (failingStore) CountConsultationsByStatus(context.Context, domain.ConsultationStatus) (int64, error) {
	return 0, errStore
}
func (failingStore) Ping(context.Context) error { return errStore }

var _ repository.Store = failingStore{}
