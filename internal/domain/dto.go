package domain

import "strings"

// DTOs for the funnel API. Field names match the wizard client.

type CompanyDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Industry  string  `json:"industry"`
	Size      *string `json:"size"`
	Revenue   *string `json:"revenue"`
	UserName  string  `json:"userName"`
	UserRole  string  `json:"userRole"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	CreatedAt string  `json:"createdAt"` // ISO 8601
}

type AssessmentDTO struct {
	ID        int64               `json:"id"`
	CompanyID int64               `json:"companyId"`
	Responses AssessmentResponses `json:"responses"`
	Score     int                 `json:"score"`
	CreatedAt string              `json:"createdAt"` // ISO 8601
}

type ConsultationDTO struct {
	ID            int64              `json:"id"`
	CompanyID     int64              `json:"companyId"`
	AssessmentID  int64              `json:"assessmentId"`
	PreferredTime PreferredTime      `json:"preferredTime"`
	PreferredDay  PreferredDay       `json:"preferredDay"`
	Urgency       Urgency            `json:"urgency"`
	Priority      *string            `json:"priority"`
	Source        *ReferralSource    `json:"source"`
	Status        ConsultationStatus `json:"status"`
	CreatedAt     string             `json:"createdAt"` // ISO 8601
}

// ActionItem is one recommended next step shown with the results
type ActionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectedImpact holds the illustrative outcome figures shown with the results
type ProjectedImpact struct {
	CustomerGrowth    string `json:"customerGrowth"`
	AdditionalRevenue string `json:"additionalRevenue"`
	CustomerLTV       string `json:"customerLTV"`
}

// AssessmentResults is the scoring engine output. It is never persisted as an
// entity and can always be recomputed from the stored responses.
type AssessmentResults struct {
	Score           int             `json:"score"`
	Strengths       []string        `json:"strengths"`
	Improvements    []string        `json:"improvements"`
	ActionPlan      []ActionItem    `json:"actionPlan"`
	ProjectedImpact ProjectedImpact `json:"projectedImpact"`
}

// AssessmentWithResultsDTO is returned on assessment creation and results lookup
type AssessmentWithResultsDTO struct {
	Assessment AssessmentDTO     `json:"assessment"`
	Results    AssessmentResults `json:"results"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// CreateCompanyRequest is the company info step of the funnel
type CreateCompanyRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Industry string  `json:"industry" validate:"required,max=100"`
	Size     *string `json:"size,omitempty" validate:"omitempty,max=50"`
	Revenue  *string `json:"revenue,omitempty" validate:"omitempty,max=50"`
	UserName string  `json:"userName" validate:"required,max=200"`
	UserRole string  `json:"userRole" validate:"required,max=200"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=50"`
}

// Normalize drops optional answers the wizard left blank
func (r *CreateCompanyRequest) Normalize() {
	r.Size = blankToNil(r.Size)
	r.Revenue = blankToNil(r.Revenue)
	r.Phone = blankToNil(r.Phone)
}

// CreateAssessmentRequest is the questionnaire step of the funnel.
// Responses are checked against the questionnaire schema, not validator tags.
type CreateAssessmentRequest struct {
	CompanyID int64                `json:"companyId" validate:"required,gt=0"`
	Responses *AssessmentResponses `json:"responses" validate:"required"`
}

// CreateConsultationRequest is the booking step of the funnel
type CreateConsultationRequest struct {
	CompanyID     int64           `json:"companyId" validate:"required,gt=0"`
	AssessmentID  int64           `json:"assessmentId" validate:"required,gt=0"`
	PreferredTime PreferredTime   `json:"preferredTime" validate:"required,oneof=morning afternoon evening"`
	PreferredDay  PreferredDay    `json:"preferredDay" validate:"required,oneof=monday tuesday wednesday thursday friday"`
	Urgency       Urgency         `json:"urgency" validate:"required,oneof=this-week next-week flexible"`
	Priority      *string         `json:"priority,omitempty" validate:"omitempty,max=2000"`
	Source        *ReferralSource `json:"source,omitempty" validate:"omitempty,oneof=google social-media referral linkedin other"`
	// Status is accepted for client compatibility and ignored; new consultations are always pending.
	Status string `json:"status,omitempty" validate:"-"`
}

// Normalize drops optional answers the wizard left blank. The client always
// sends priority and source, as "" when skipped.
func (r *CreateConsultationRequest) Normalize() {
	r.Priority = blankToNil(r.Priority)
	r.Source = blankToNil(r.Source)
}

func blankToNil[T ~string](v *T) *T {
	if v == nil || strings.TrimSpace(string(*v)) == "" {
		return nil
	}
	return v
}
