package scoring

import "github.com/silverpath/funnel-api/internal/domain"

// The action plan and projected impact are fixed copy. They do not vary with
// the responses or the score.

// ActionPlan returns the three recommended next steps
func ActionPlan() []domain.ActionItem {
	return []domain.ActionItem{
		{
			Title:       "Implement Multi-Channel Senior Strategy",
			Description: "Add direct mail and referral programs to complement your digital efforts",
		},
		{
			Title:       "Develop Trust-Building Content",
			Description: "Create testimonials, case studies, and educational content specifically for seniors",
		},
		{
			Title:       "Optimize Message Accessibility",
			Description: "Improve font sizes, contrast, and simplify complex messaging",
		},
	}
}

// ProjectedImpact returns the illustrative outcome figures
func ProjectedImpact() domain.ProjectedImpact {
	return domain.ProjectedImpact{
		CustomerGrowth:    "2.5x",
		AdditionalRevenue: "$850K",
		CustomerLTV:       "45%",
	}
}
