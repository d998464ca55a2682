package service_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/silverpath/funnel-api/internal/metrics"
	"github.com/silverpath/funnel-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCompanyService_Create(t *testing.T) {
	s := newServices(t)
	before := testutil.ToFloat64(metrics.CompaniesCreated)

	company, err := s.companies.Create(context.Background(), companyRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), company.ID)
	assert.Equal(t, "Golden Years Dental", company.Name)
	assert.Equal(t, "11-50", *company.Size)
	assert.Nil(t, company.Revenue)
	assert.NotEmpty(t, company.CreatedAt)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CompaniesCreated))
}

func TestCompanyService_IDsIncrease(t *testing.T) {
	s := newServices(t)
	for want := int64(1); want <= 3; want++ {
		assert.Equal(t, want, s.createCompany(t).ID)
	}
}

func TestCompanyService_GetByID(t *testing.T) {
	s := newServices(t)
	created := s.createCompany(t)

	found, err := s.companies.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = s.companies.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, service.ErrCompanyNotFound)
}

func TestCompanyService_StoreErrorsAreWrapped(t *testing.T) {
	companies := service.NewCompanyService(failingStore{}, zap.NewNop())

	_, err := companies.Create(context.Background(), companyRequest())
	assert.ErrorIs(t, err, errStore)

	_, err = companies.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, errStore)
	assert.NotErrorIs(t, err, service.ErrCompanyNotFound)
}
