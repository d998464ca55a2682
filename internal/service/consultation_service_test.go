package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func consultationRequest(companyID, assessmentID int64) *domain.CreateConsultationRequest {
	return &domain.CreateConsultationRequest{
		CompanyID:     companyID,
		AssessmentID:  assessmentID,
		PreferredTime: domain.PreferredTimeAfternoon,
		PreferredDay:  domain.PreferredDayWednesday,
		Urgency:       domain.UrgencyNextWeek,
		Priority:      strPtr("Grow referrals from assisted living partners"),
	}
}

func TestConsultationService_Create(t *testing.T) {
	s := newServices(t)
	company := s.createCompany(t)
	assessment := s.createAssessment(t, company.ID)

	req := consultationRequest(company.ID, assessment.Assessment.ID)
	req.Status = "confirmed"

	consultation, err := s.consultations.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), consultation.ID)
	assert.Equal(t, domain.ConsultationStatusPending, consultation.Status)
	assert.Equal(t, domain.UrgencyNextWeek, consultation.Urgency)
	assert.Nil(t, consultation.Source)
}

func TestConsultationService_ReferentialChecks(t *testing.T) {
	s := newServices(t)
	owner := s.createCompany(t)
	other := s.createCompany(t)
	assessment := s.createAssessment(t, owner.ID)

	_, err := s.consultations.Create(context.Background(), consultationRequest(999, assessment.Assessment.ID))
	assert.ErrorIs(t, err, service.ErrCompanyNotFound)

	_, err = s.consultations.Create(context.Background(), consultationRequest(owner.ID, 999))
	assert.ErrorIs(t, err, service.ErrAssessmentNotFound)

	_, err = s.consultations.Create(context.Background(), consultationRequest(other.ID, assessment.Assessment.ID))
	assert.ErrorIs(t, err, service.ErrAssessmentCompanyMismatch)
	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "assessmentId")

	list, err := s.consultations.ListByCompany(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestConsultationService_GetAndList(t *testing.T) {
	s := newServices(t)
	company := s.createCompany(t)
	assessment := s.createAssessment(t, company.ID)

	first, err := s.consultations.Create(context.Background(), consultationRequest(company.ID, assessment.Assessment.ID))
	require.NoError(t, err)
	second, err := s.consultations.Create(context.Background(), consultationRequest(company.ID, assessment.Assessment.ID))
	require.NoError(t, err)

	got, err := s.consultations.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	_, err = s.consultations.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrConsultationNotFound)

	list, err := s.consultations.ListByCompany(context.Background(), company.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	pending, err := s.consultations.CountPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)
}

func TestConsultationService_StoreErrors(t *testing.T) {
	consultations := service.NewConsultationService(failingStore{}, failingStore{}, failingStore{}, zap.NewNop())

	_, err := consultations.Create(context.Background(), consultationRequest(1, 1))
	assert.ErrorIs(t, err, errStore)

	_, err = consultations.ListByCompany(context.Background(), 1)
	assert.ErrorIs(t, err, errStore)

	_, err = consultations.CountPending(context.Background())
	assert.ErrorIs(t, err, errStore)
}
