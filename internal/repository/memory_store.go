package repository

import (
	"context"
	"sync"
	"time"

	"github.com/silverpath/funnel-api/internal/domain"
)

// MemoryStore keeps all entities in process memory. It backs the memory
// database driver and the service and handler tests. Ids start at 1 and are
// never reused.
type MemoryStore struct {
	mu            sync.RWMutex
	companies     map[int64]domain.Company
	assessments   map[int64]domain.Assessment
	consultations map[int64]domain.Consultation

	nextCompanyID      int64
	nextAssessmentID   int64
	nextConsultationID int64

	now func() time.Time
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		companies:          make(map[int64]domain.Company),
		assessments:        make(map[int64]domain.Assessment),
		consultations:      make(map[int64]domain.Consultation),
		nextCompanyID:      1,
		nextAssessmentID:   1,
		nextConsultationID: 1,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// CreateCompany stores a copy of company under the next id
func (s *MemoryStore) CreateCompany(ctx context.Context, company *domain.Company) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	company.ID = s.nextCompanyID
	company.CreatedAt = s.now()
	s.nextCompanyID++
	s.companies[company.ID] = *company
	return nil
}

func (s *MemoryStore) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	company, ok := s.companies[id]
	if !ok {
		return nil, nil
	}
	return &company, nil
}

// CreateAssessment stores a copy of assessment under the next id
func (s *MemoryStore) CreateAssessment(ctx context.Context, assessment *domain.Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	assessment.ID = s.nextAssessmentID
	assessment.CreatedAt = s.now()
	s.nextAssessmentID++

	stored := *assessment
	stored.Responses.MarketingChannels = copyChannels(assessment.Responses.MarketingChannels)
	s.assessments[stored.ID] = stored
	return nil
}

func (s *MemoryStore) GetAssessment(ctx context.Context, id int64) (*domain.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	assessment, ok := s.assessments[id]
	if !ok {
		return nil, nil
	}
	assessment.Responses.MarketingChannels = copyChannels(assessment.Responses.MarketingChannels)
	return &assessment, nil
}

// GetAssessmentByCompanyID returns the lowest-id assessment for the company
func (s *MemoryStore) GetAssessmentByCompanyID(ctx context.Context, companyID int64) (*domain.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var first *domain.Assessment
	for id := range s.assessments {
		a := s.assessments[id]
		if a.CompanyID != companyID {
			continue
		}
		if first == nil || a.ID < first.ID {
			first = &a
		}
	}
	if first != nil {
		first.Responses.MarketingChannels = copyChannels(first.Responses.MarketingChannels)
	}
	return first, nil
}

// CreateConsultation stores a copy of consultation as pending under the next id
func (s *MemoryStore) CreateConsultation(ctx context.Context, consultation *domain.Consultation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	consultation.ID = s.nextConsultationID
	consultation.Status = domain.ConsultationStatusPending
	consultation.CreatedAt = s.now()
	s.nextConsultationID++
	s.consultations[consultation.ID] = *consultation
	return nil
}

func (s *MemoryStore) GetConsultation(ctx context.Context, id int64) (*domain.Consultation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	consultation, ok := s.consultations[id]
	if !ok {
		return nil, nil
	}
	return &consultation, nil
}

// GetConsultationsByCompanyID returns the company's consultations ordered by id
func (s *MemoryStore) GetConsultationsByCompanyID(ctx context.Context, companyID int64) ([]domain.Consultation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// ids are dense, so walking them keeps insertion order without a sort
	result := []domain.Consultation{}
	for id := int64(1); id < s.nextConsultationID; id++ {
		c, ok := s.consultations[id]
		if ok && c.CompanyID == companyID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *MemoryStore) CountConsultationsByStatus(ctx context.Context, status domain.ConsultationStatus) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, c := range s.consultations {
		if c.Status == status {
			count++
		}
	}
	return count, nil
}

// Ping always succeeds
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func copyChannels(channels domain.ChannelList) domain.ChannelList {
	if channels == nil {
		return nil
	}
	return append(domain.ChannelList{}, channels...)
}

var _ Store = (*MemoryStore)(nil)
