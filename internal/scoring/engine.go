// Package scoring computes the senior marketing maturity score for a completed
// questionnaire. Evaluate is pure: equal responses always yield equal results,
// which lets stored assessments be re-scored on every read.
package scoring

import (
	"errors"
	"fmt"

	"github.com/silverpath/funnel-api/internal/domain"
)

const (
	// MinScore is the lowest attainable score (weakest answer on every question)
	MinScore = 28
	// MaxScore is the highest attainable score. The client shows the score
	// "out of 100"; the raw additive total is kept and never clamped.
	MaxScore = 150
)

// ErrInvalidResponse is returned when a response holds a token outside its enumeration
var ErrInvalidResponse = errors.New("invalid assessment response")

// InvalidResponseError names the field and value that could not be scored
type InvalidResponseError struct {
	Field string
	Value string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("%s: unrecognized value %q", e.Field, e.Value)
}

func (e *InvalidResponseError) Unwrap() error {
	return ErrInvalidResponse
}

// tally accumulates points and feedback while the rules run
type tally struct {
	score        int
	strengths    []string
	improvements []string
}

func (t *tally) strength(points int, note string) {
	t.score += points
	t.strengths = append(t.strengths, note)
}

func (t *tally) improvement(points int, note string) {
	t.score += points
	t.improvements = append(t.improvements, note)
}

// rule scores one question. Rules run in a fixed order so the feedback lists
// come out in display order.
type rule func(r *domain.AssessmentResponses, t *tally) error

var rules = []rule{
	scoreSeniorShare,
	scoreChannels,
	scoreChallenge,
	scoreGoal,
	scoreBudget,
}

// Evaluate scores the responses and builds the results shown to the prospect
func Evaluate(responses domain.AssessmentResponses) (*domain.AssessmentResults, error) {
	t := &tally{
		strengths:    []string{},
		improvements: []string{},
	}

	for _, apply := range rules {
		if err := apply(&responses, t); err != nil {
			return nil, err
		}
	}

	return &domain.AssessmentResults{
		Score:           t.score,
		Strengths:       t.strengths,
		Improvements:    t.improvements,
		ActionPlan:      ActionPlan(),
		ProjectedImpact: ProjectedImpact(),
	}, nil
}

// Score returns only the numeric score for the responses
func Score(responses domain.AssessmentResponses) (int, error) {
	results, err := Evaluate(responses)
	if err != nil {
		return 0, err
	}
	return results.Score, nil
}

func scoreSeniorShare(r *domain.AssessmentResponses, t *tally) error {
	switch r.SeniorCustomerPercentage {
	case domain.SeniorPercentage0To10:
		t.improvement(10, "Limited senior customer base (under 25%)")
	case domain.SeniorPercentage11To25:
		t.improvement(25, "Growing senior customer base but room for expansion")
	case domain.SeniorPercentage26To50:
		t.strength(40, "Solid senior customer foundation")
	case domain.SeniorPercentage51Plus:
		t.strength(50, "Strong senior customer base")
	default:
		return &InvalidResponseError{Field: "seniorCustomerPercentage", Value: string(r.SeniorCustomerPercentage)}
	}
	return nil
}

func scoreChannels(r *domain.AssessmentResponses, t *tally) error {
	if len(r.MarketingChannels) == 0 {
		return &InvalidResponseError{Field: "marketingChannels", Value: ""}
	}
	for _, c := range r.MarketingChannels {
		switch domain.MarketingChannel(c) {
		case domain.ChannelSocialMedia, domain.ChannelEmail, domain.ChannelPrint,
			domain.ChannelTVRadio, domain.ChannelDirectMail, domain.ChannelReferrals:
		default:
			return &InvalidResponseError{Field: "marketingChannels", Value: c}
		}
	}

	if r.HasChannel(domain.ChannelEmail) {
		t.strength(15, "Email marketing foundation in place")
	}
	if r.HasChannel(domain.ChannelDirectMail) {
		t.strength(20, "Direct mail strategy for seniors")
	}
	if r.HasChannel(domain.ChannelReferrals) {
		t.strength(15, "Referral program established")
	}
	if !r.HasChannel(domain.ChannelDirectMail) && !r.HasChannel(domain.ChannelReferrals) {
		t.improvement(0, "Missing key senior-friendly channels")
	}
	return nil
}

func scoreChallenge(r *domain.AssessmentResponses, t *tally) error {
	switch r.BiggestChallenge {
	case domain.ChallengeUnderstandingPreferences:
		t.improvement(5, "Need better understanding of senior preferences")
	case domain.ChallengeBuildingTrust:
		t.improvement(10, "Need trust-building strategies")
	case domain.ChallengeChannelSelection:
		t.score += 15
	case domain.ChallengeMessaging:
		t.score += 10
	case domain.ChallengeAccessibility:
		t.score += 12
	default:
		return &InvalidResponseError{Field: "biggestChallenge", Value: string(r.BiggestChallenge)}
	}
	return nil
}

func scoreGoal(r *domain.AssessmentResponses, t *tally) error {
	switch r.PrimaryGoal {
	case domain.GoalIncreaseRevenue:
		t.strength(15, "Clear revenue growth objectives")
	case domain.GoalDiversifyCustomers:
		t.score += 12
	case domain.GoalMarketExpansion:
		t.score += 10
	case domain.GoalBrandRecognition:
		t.score += 8
	default:
		return &InvalidResponseError{Field: "primaryGoal", Value: string(r.PrimaryGoal)}
	}
	return nil
}

func scoreBudget(r *domain.AssessmentResponses, t *tally) error {
	switch r.MonthlyBudget {
	case domain.BudgetUnder5k:
		t.score += 5
	case domain.Budget5kTo15k:
		t.strength(10, "Adequate marketing budget allocation")
	case domain.Budget15kTo50k:
		t.strength(15, "Strong marketing budget for implementation")
	case domain.BudgetOver50k:
		t.strength(20, "Excellent marketing budget for comprehensive strategy")
	default:
		return &InvalidResponseError{Field: "monthlyBudget", Value: string(r.MonthlyBudget)}
	}
	return nil
}
