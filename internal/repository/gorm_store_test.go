package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/silverpath/funnel-api/internal/database"
	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func setupSQLiteStore(t *testing.T) *repository.GormStore {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection would otherwise get its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return repository.NewGormStore(db)
}

func strPtr(s string) *string {
	return &s
}

func newCompany(name string) *domain.Company {
	return &domain.Company{
		Name:     name,
		Industry: "healthcare",
		Size:     strPtr("11-50"),
		UserName: "Jane Doe",
		UserRole: "Marketing Director",
		Email:    "jane@example.com",
	}
}

func newAssessment(companyID int64) *domain.Assessment {
	return &domain.Assessment{
		CompanyID: companyID,
		Responses: domain.AssessmentResponses{
			SeniorCustomerPercentage: domain.SeniorPercentage26To50,
			MarketingChannels:        domain.ChannelList{"email", "referrals"},
			BiggestChallenge:         domain.ChallengeAccessibility,
			PrimaryGoal:              domain.GoalIncreaseRevenue,
			MonthlyBudget:            domain.Budget5kTo15k,
		},
		Score: 107,
	}
}

func newConsultation(companyID, assessmentID int64) *domain.Consultation {
	return &domain.Consultation{
		CompanyID:     companyID,
		AssessmentID:  assessmentID,
		PreferredTime: domain.PreferredTimeMorning,
		PreferredDay:  domain.PreferredDayTuesday,
		Urgency:       domain.UrgencyThisWeek,
	}
}

// runStoreContract exercises behaviour every Store backend must share
func runStoreContract(t *testing.T, newStore func(t *testing.T) repository.Store) {
	ctx := context.Background()

	t.Run("company ids start at one and increase", func(t *testing.T) {
		store := newStore(t)
		for want := int64(1); want <= 3; want++ {
			c := newCompany("Acme")
			require.NoError(t, store.CreateCompany(ctx, c))
			assert.Equal(t, want, c.ID)
			assert.False(t, c.CreatedAt.IsZero())
		}
	})

	t.Run("company round trip", func(t *testing.T) {
		store := newStore(t)
		c := newCompany("Golden Years Dental")
		c.Phone = strPtr("555-0100")
		require.NoError(t, store.CreateCompany(ctx, c))

		found, err := store.GetCompany(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Golden Years Dental", found.Name)
		assert.Equal(t, "11-50", *found.Size)
		assert.Nil(t, found.Revenue)
		assert.Equal(t, "555-0100", *found.Phone)
	})

	t.Run("unknown company is absent not an error", func(t *testing.T) {
		store := newStore(t)
		found, err := store.GetCompany(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("assessment round trip keeps responses", func(t *testing.T) {
		store := newStore(t)
		c := newCompany("Acme")
		require.NoError(t, store.CreateCompany(ctx, c))

		a := newAssessment(c.ID)
		require.NoError(t, store.CreateAssessment(ctx, a))
		assert.Equal(t, int64(1), a.ID)

		found, err := store.GetAssessment(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, a.Responses, found.Responses)
		assert.Equal(t, 107, found.Score)
		assert.Equal(t, c.ID, found.CompanyID)
	})

	t.Run("unknown assessment is absent", func(t *testing.T) {
		store := newStore(t)
		found, err := store.GetAssessment(ctx, 7)
		assert.NoError(t, err)
		assert.Nil(t, found)

		found, err = store.GetAssessmentByCompanyID(ctx, 7)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("assessment by company returns the first", func(t *testing.T) {
		store := newStore(t)
		c := newCompany("Acme")
		require.NoError(t, store.CreateCompany(ctx, c))

		first := newAssessment(c.ID)
		require.NoError(t, store.CreateAssessment(ctx, first))
		second := newAssessment(c.ID)
		second.Score = 50
		require.NoError(t, store.CreateAssessment(ctx, second))

		found, err := store.GetAssessmentByCompanyID(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, first.ID, found.ID)
	})

	t.Run("consultation is always pending", func(t *testing.T) {
		store := newStore(t)
		cons := newConsultation(1, 1)
		cons.Status = domain.ConsultationStatusConfirmed
		cons.Priority = strPtr("Reach adult children of residents")
		source := domain.SourceLinkedIn
		cons.Source = &source

		require.NoError(t, store.CreateConsultation(ctx, cons))
		assert.Equal(t, domain.ConsultationStatusPending, cons.Status)

		found, err := store.GetConsultation(ctx, cons.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, domain.ConsultationStatusPending, found.Status)
		assert.Equal(t, domain.SourceLinkedIn, *found.Source)
		assert.Equal(t, "Reach adult children of residents", *found.Priority)
	})

	t.Run("consultations by company keep insertion order", func(t *testing.T) {
		store := newStore(t)
		a := newConsultation(1, 1)
		b := newConsultation(2, 2)
		c := newConsultation(1, 1)
		for _, cons := range []*domain.Consultation{a, b, c} {
			require.NoError(t, store.CreateConsultation(ctx, cons))
		}

		list, err := store.GetConsultationsByCompanyID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, a.ID, list[0].ID)
		assert.Equal(t, c.ID, list[1].ID)

		empty, err := store.GetConsultationsByCompanyID(ctx, 99)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})

	t.Run("count by status", func(t *testing.T) {
		store := newStore(t)
		for i := 0; i < 3; i++ {
			require.NoError(t, store.CreateConsultation(ctx, newConsultation(1, 1)))
		}

		pending, err := store.CountConsultationsByStatus(ctx, domain.ConsultationStatusPending)
		require.NoError(t, err)
		assert.Equal(t, int64(3), pending)

		confirmed, err := store.CountConsultationsByStatus(ctx, domain.ConsultationStatusConfirmed)
		require.NoError(t, err)
		assert.Zero(t, confirmed)
	})

	t.Run("ping", func(t *testing.T) {
		store := newStore(t)
		assert.NoError(t, store.Ping(ctx))
	})
}

func TestGormStore_SQLite(t *testing.T) {
	runStoreContract(t, func(t *testing.T) repository.Store {
		return setupSQLiteStore(t)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) repository.Store {
		return repository.NewMemoryStore()
	})
}

func TestAssessmentSchema_ParsesChannelList(t *testing.T) {
	parsed, err := schema.Parse(&domain.Assessment{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := parsed.LookUpField("marketing_channels")
	require.NotNil(t, field)
	assert.Equal(t, schema.DataType("text"), field.DataType)
}

// Tables created by the SQL migrations rather than AutoMigrate still round trip
func TestGormStore_AssessmentOnHandMadeTable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec(`CREATE TABLE assessments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		company_id INTEGER NOT NULL,
		senior_customer_percentage TEXT NOT NULL,
		marketing_channels TEXT NOT NULL,
		biggest_challenge TEXT NOT NULL,
		primary_goal TEXT NOT NULL,
		monthly_budget TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`).Error)

	store := repository.NewGormStore(db)
	ctx := context.Background()

	a := newAssessment(7)
	require.NoError(t, store.CreateAssessment(ctx, a))
	assert.Equal(t, int64(1), a.ID)

	got, err := store.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ChannelList{"email", "referrals"}, got.Responses.MarketingChannels)

	byCompany, err := store.GetAssessmentByCompanyID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, byCompany)
	assert.Equal(t, a.ID, byCompany.ID)
}
