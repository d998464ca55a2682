package scoring_test

import (
	"errors"
	"testing"

	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responses(senior domain.SeniorCustomerPercentage, channels []string, challenge domain.BiggestChallenge, goal domain.PrimaryGoal, budget domain.MonthlyBudget) domain.AssessmentResponses {
	return domain.AssessmentResponses{
		SeniorCustomerPercentage: senior,
		MarketingChannels:        domain.ChannelList(channels),
		BiggestChallenge:         challenge,
		PrimaryGoal:              goal,
		MonthlyBudget:            budget,
	}
}

func TestEvaluate_TypicalAnswers(t *testing.T) {
	r := responses(domain.SeniorPercentage26To50, []string{"email", "referrals"},
		domain.ChallengeAccessibility, domain.GoalIncreaseRevenue, domain.Budget5kTo15k)

	results, err := scoring.Evaluate(r)
	require.NoError(t, err)

	assert.Equal(t, 107, results.Score)
	assert.Equal(t, []string{
		"Solid senior customer foundation",
		"Email marketing foundation in place",
		"Referral program established",
		"Clear revenue growth objectives",
		"Adequate marketing budget allocation",
	}, results.Strengths)
	assert.Empty(t, results.Improvements)
	assert.NotNil(t, results.Improvements, "improvements should encode as [] not null")
}

func TestEvaluate_MinimumScore(t *testing.T) {
	r := responses(domain.SeniorPercentage0To10, []string{"social-media"},
		domain.ChallengeUnderstandingPreferences, domain.GoalBrandRecognition, domain.BudgetUnder5k)

	results, err := scoring.Evaluate(r)
	require.NoError(t, err)

	assert.Equal(t, scoring.MinScore, results.Score)
	assert.Equal(t, 28, results.Score)
	assert.Empty(t, results.Strengths)
	assert.Equal(t, []string{
		"Limited senior customer base (under 25%)",
		"Missing key senior-friendly channels",
		"Need better understanding of senior preferences",
	}, results.Improvements)
}

func TestEvaluate_MaximumScore(t *testing.T) {
	r := responses(domain.SeniorPercentage51Plus,
		[]string{"social-media", "email", "print", "tv-radio", "direct-mail", "referrals"},
		domain.ChallengeChannelSelection, domain.GoalIncreaseRevenue, domain.BudgetOver50k)

	results, err := scoring.Evaluate(r)
	require.NoError(t, err)

	assert.Equal(t, scoring.MaxScore, results.Score)
	assert.Equal(t, 150, results.Score)
	assert.Equal(t, []string{
		"Strong senior customer base",
		"Email marketing foundation in place",
		"Direct mail strategy for seniors",
		"Referral program established",
		"Clear revenue growth objectives",
		"Excellent marketing budget for comprehensive strategy",
	}, results.Strengths)
	assert.Empty(t, results.Improvements)
}

func TestEvaluate_RuleContributions(t *testing.T) {
	base := responses(domain.SeniorPercentage0To10, []string{"print"},
		domain.ChallengeUnderstandingPreferences, domain.GoalBrandRecognition, domain.BudgetUnder5k)
	baseScore, err := scoring.Score(base)
	require.NoError(t, err)

	tests := []struct {
		name   string
		modify func(r *domain.AssessmentResponses)
		delta  int
	}{
		{"senior 11-25", func(r *domain.AssessmentResponses) { r.SeniorCustomerPercentage = domain.SeniorPercentage11To25 }, 15},
		{"senior 26-50", func(r *domain.AssessmentResponses) { r.SeniorCustomerPercentage = domain.SeniorPercentage26To50 }, 30},
		{"senior 51+", func(r *domain.AssessmentResponses) { r.SeniorCustomerPercentage = domain.SeniorPercentage51Plus }, 40},
		{"email channel", func(r *domain.AssessmentResponses) { r.MarketingChannels = append(r.MarketingChannels, "email") }, 15},
		{"direct mail channel", func(r *domain.AssessmentResponses) { r.MarketingChannels = append(r.MarketingChannels, "direct-mail") }, 20},
		{"referrals channel", func(r *domain.AssessmentResponses) { r.MarketingChannels = append(r.MarketingChannels, "referrals") }, 15},
		{"tv-radio is neutral", func(r *domain.AssessmentResponses) { r.MarketingChannels = append(r.MarketingChannels, "tv-radio") }, 0},
		{"building trust", func(r *domain.AssessmentResponses) { r.BiggestChallenge = domain.ChallengeBuildingTrust }, 5},
		{"channel selection", func(r *domain.AssessmentResponses) { r.BiggestChallenge = domain.ChallengeChannelSelection }, 10},
		{"messaging", func(r *domain.AssessmentResponses) { r.BiggestChallenge = domain.ChallengeMessaging }, 5},
		{"accessibility", func(r *domain.AssessmentResponses) { r.BiggestChallenge = domain.ChallengeAccessibility }, 7},
		{"increase revenue", func(r *domain.AssessmentResponses) { r.PrimaryGoal = domain.GoalIncreaseRevenue }, 7},
		{"diversify customers", func(r *domain.AssessmentResponses) { r.PrimaryGoal = domain.GoalDiversifyCustomers }, 4},
		{"market expansion", func(r *domain.AssessmentResponses) { r.PrimaryGoal = domain.GoalMarketExpansion }, 2},
		{"budget 5k-15k", func(r *domain.AssessmentResponses) { r.MonthlyBudget = domain.Budget5kTo15k }, 5},
		{"budget 15k-50k", func(r *domain.AssessmentResponses) { r.MonthlyBudget = domain.Budget15kTo50k }, 10},
		{"budget over 50k", func(r *domain.AssessmentResponses) { r.MonthlyBudget = domain.BudgetOver50k }, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			r.MarketingChannels = append(domain.ChannelList{}, base.MarketingChannels...)
			tt.modify(&r)

			score, err := scoring.Score(r)
			require.NoError(t, err)
			assert.Equal(t, baseScore+tt.delta, score)
		})
	}
}

func TestEvaluate_MissingChannelsNote(t *testing.T) {
	t.Run("referrals alone avoids the note", func(t *testing.T) {
		results, err := scoring.Evaluate(responses(domain.SeniorPercentage26To50, []string{"referrals"},
			domain.ChallengeMessaging, domain.GoalMarketExpansion, domain.BudgetUnder5k))
		require.NoError(t, err)
		assert.NotContains(t, results.Improvements, "Missing key senior-friendly channels")
	})

	t.Run("email alone triggers the note", func(t *testing.T) {
		results, err := scoring.Evaluate(responses(domain.SeniorPercentage26To50, []string{"email"},
			domain.ChallengeMessaging, domain.GoalMarketExpansion, domain.BudgetUnder5k))
		require.NoError(t, err)
		assert.Equal(t, []string{"Missing key senior-friendly channels"}, results.Improvements)
	})
}

func TestEvaluate_ChannelOrderDoesNotMatter(t *testing.T) {
	a := responses(domain.SeniorPercentage11To25, []string{"referrals", "direct-mail", "email"},
		domain.ChallengeBuildingTrust, domain.GoalDiversifyCustomers, domain.Budget15kTo50k)
	b := responses(domain.SeniorPercentage11To25, []string{"email", "direct-mail", "referrals"},
		domain.ChallengeBuildingTrust, domain.GoalDiversifyCustomers, domain.Budget15kTo50k)

	ra, err := scoring.Evaluate(a)
	require.NoError(t, err)
	rb, err := scoring.Evaluate(b)
	require.NoError(t, err)

	assert.Equal(t, rb, ra)
	assert.Equal(t, []string{
		"Email marketing foundation in place",
		"Direct mail strategy for seniors",
		"Referral program established",
		"Strong marketing budget for implementation",
	}, ra.Strengths)
	assert.Equal(t, []string{
		"Growing senior customer base but room for expansion",
		"Need trust-building strategies",
	}, ra.Improvements)
}

func TestEvaluate_DuplicateChannelsCountOnce(t *testing.T) {
	r := responses(domain.SeniorPercentage26To50, []string{"email", "email"},
		domain.ChallengeMessaging, domain.GoalMarketExpansion, domain.BudgetUnder5k)

	score, err := scoring.Score(r)
	require.NoError(t, err)
	assert.Equal(t, 40+15+10+10+5, score)
}

func TestEvaluate_Deterministic(t *testing.T) {
	r := responses(domain.SeniorPercentage51Plus, []string{"direct-mail", "print"},
		domain.ChallengeBuildingTrust, domain.GoalIncreaseRevenue, domain.Budget15kTo50k)

	first, err := scoring.Evaluate(r)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := scoring.Evaluate(r)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEvaluate_FixedRecommendations(t *testing.T) {
	low, err := scoring.Evaluate(responses(domain.SeniorPercentage0To10, []string{"print"},
		domain.ChallengeUnderstandingPreferences, domain.GoalBrandRecognition, domain.BudgetUnder5k))
	require.NoError(t, err)
	high, err := scoring.Evaluate(responses(domain.SeniorPercentage51Plus, []string{"direct-mail"},
		domain.ChallengeChannelSelection, domain.GoalIncreaseRevenue, domain.BudgetOver50k))
	require.NoError(t, err)

	assert.Equal(t, low.ActionPlan, high.ActionPlan)
	assert.Equal(t, low.ProjectedImpact, high.ProjectedImpact)
	require.Len(t, low.ActionPlan, 3)
	assert.Equal(t, "Implement Multi-Channel Senior Strategy", low.ActionPlan[0].Title)
	assert.Equal(t, "2.5x", low.ProjectedImpact.CustomerGrowth)
	assert.Equal(t, "$850K", low.ProjectedImpact.AdditionalRevenue)
	assert.Equal(t, "45%", low.ProjectedImpact.CustomerLTV)

	// Callers get their own copy of the plan
	low.ActionPlan[0].Title = "changed"
	assert.Equal(t, "Implement Multi-Channel Senior Strategy", scoring.ActionPlan()[0].Title)
}

func TestEvaluate_RejectsUnknownTokens(t *testing.T) {
	valid := responses(domain.SeniorPercentage26To50, []string{"email"},
		domain.ChallengeMessaging, domain.GoalMarketExpansion, domain.BudgetUnder5k)

	tests := []struct {
		name   string
		modify func(r *domain.AssessmentResponses)
		field  string
		value  string
	}{
		{"senior percentage", func(r *domain.AssessmentResponses) { r.SeniorCustomerPercentage = "90+" }, "seniorCustomerPercentage", "90+"},
		{"empty channels", func(r *domain.AssessmentResponses) { r.MarketingChannels = nil }, "marketingChannels", ""},
		{"unknown channel", func(r *domain.AssessmentResponses) { r.MarketingChannels = domain.ChannelList{"email", "fax"} }, "marketingChannels", "fax"},
		{"challenge", func(r *domain.AssessmentResponses) { r.BiggestChallenge = "pricing" }, "biggestChallenge", "pricing"},
		{"goal", func(r *domain.AssessmentResponses) { r.PrimaryGoal = "" }, "primaryGoal", ""},
		{"budget", func(r *domain.AssessmentResponses) { r.MonthlyBudget = "over-1m" }, "monthlyBudget", "over-1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.modify(&r)

			results, err := scoring.Evaluate(r)
			assert.Nil(t, results)
			require.Error(t, err)
			assert.True(t, errors.Is(err, scoring.ErrInvalidResponse))

			var invalid *scoring.InvalidResponseError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
			assert.Equal(t, tt.value, invalid.Value)
		})
	}
}
