package domain

import (
	"database/sql/driver"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SeniorCustomerPercentage is the share of a company's customers aged 55+
type SeniorCustomerPercentage string

const (
	SeniorPercentage0To10  SeniorCustomerPercentage = "0-10"
	SeniorPercentage11To25 SeniorCustomerPercentage = "11-25"
	SeniorPercentage26To50 SeniorCustomerPercentage = "26-50"
	SeniorPercentage51Plus SeniorCustomerPercentage = "51+"
)

// MarketingChannel is a channel the company currently markets through
type MarketingChannel string

const (
	ChannelSocialMedia MarketingChannel = "social-media"
	ChannelEmail       MarketingChannel = "email"
	ChannelPrint       MarketingChannel = "print"
	ChannelTVRadio     MarketingChannel = "tv-radio"
	ChannelDirectMail  MarketingChannel = "direct-mail"
	ChannelReferrals   MarketingChannel = "referrals"
)

// BiggestChallenge is the company's self-reported main obstacle with senior customers
type BiggestChallenge string

const (
	ChallengeUnderstandingPreferences BiggestChallenge = "understanding-preferences"
	ChallengeBuildingTrust            BiggestChallenge = "building-trust"
	ChallengeChannelSelection         BiggestChallenge = "channel-selection"
	ChallengeMessaging                BiggestChallenge = "messaging"
	ChallengeAccessibility            BiggestChallenge = "accessibility"
)

// PrimaryGoal is what the company wants from senior marketing
type PrimaryGoal string

const (
	GoalIncreaseRevenue    PrimaryGoal = "increase-revenue"
	GoalDiversifyCustomers PrimaryGoal = "diversify-customers"
	GoalMarketExpansion    PrimaryGoal = "market-expansion"
	GoalBrandRecognition   PrimaryGoal = "brand-recognition"
)

// MonthlyBudget is the monthly marketing spend bracket
type MonthlyBudget string

const (
	BudgetUnder5k  MonthlyBudget = "under-5k"
	Budget5kTo15k  MonthlyBudget = "5k-15k"
	Budget15kTo50k MonthlyBudget = "15k-50k"
	BudgetOver50k  MonthlyBudget = "over-50k"
)

// PreferredTime is the time-of-day bucket for a consultation call
type PreferredTime string

const (
	PreferredTimeMorning   PreferredTime = "morning"
	PreferredTimeAfternoon PreferredTime = "afternoon"
	PreferredTimeEvening   PreferredTime = "evening"
)

// PreferredDay is the weekday for a consultation call
type PreferredDay string

const (
	PreferredDayMonday    PreferredDay = "monday"
	PreferredDayTuesday   PreferredDay = "tuesday"
	PreferredDayWednesday PreferredDay = "wednesday"
	PreferredDayThursday  PreferredDay = "thursday"
	PreferredDayFriday    PreferredDay = "friday"
)

// Urgency describes how soon the company wants the consultation
type Urgency string

const (
	UrgencyThisWeek Urgency = "this-week"
	UrgencyNextWeek Urgency = "next-week"
	UrgencyFlexible Urgency = "flexible"
)

// ReferralSource is how the company heard about the assessment
type ReferralSource string

const (
	SourceGoogle      ReferralSource = "google"
	SourceSocialMedia ReferralSource = "social-media"
	SourceReferral    ReferralSource = "referral"
	SourceLinkedIn    ReferralSource = "linkedin"
	SourceOther       ReferralSource = "other"
)

// ConsultationStatus represents the booking state of a consultation
type ConsultationStatus string

const (
	// ConsultationStatusPending is the only status written on creation
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusConfirmed ConsultationStatus = "confirmed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// Company is the root entity of a funnel run
type Company struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Industry  string    `gorm:"type:varchar(100);not null"`
	Size      *string   `gorm:"type:varchar(50)"`
	Revenue   *string   `gorm:"type:varchar(50)"`
	UserName  string    `gorm:"type:varchar(200);not null;column:user_name"`
	UserRole  string    `gorm:"type:varchar(200);not null;column:user_role"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     *string   `gorm:"type:varchar(50)"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Company) TableName() string {
	return "companies"
}

// ChannelList is the selected marketing channels. It is a text[] column on
// PostgreSQL and the same array literal stored as text elsewhere.
type ChannelList []string

// Value implements driver.Valuer using the PostgreSQL array encoding
func (c ChannelList) Value() (driver.Value, error) {
	return pq.StringArray(c).Value()
}

// Scan implements sql.Scanner
func (c *ChannelList) Scan(src interface{}) error {
	return (*pq.StringArray)(c).Scan(src)
}

// GormDataType gives gorm's schema parser a type for the custom slice
func (ChannelList) GormDataType() string {
	return "text"
}

// GormDBDataType picks the column type per dialect
func (ChannelList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// AssessmentResponses are the answers to the five-question readiness questionnaire.
// Stored flattened on the assessments table.
type AssessmentResponses struct {
	SeniorCustomerPercentage SeniorCustomerPercentage `gorm:"type:varchar(20);not null;column:senior_customer_percentage" json:"seniorCustomerPercentage"`
	MarketingChannels        ChannelList              `gorm:"not null;column:marketing_channels" json:"marketingChannels"`
	BiggestChallenge         BiggestChallenge         `gorm:"type:varchar(50);not null;column:biggest_challenge" json:"biggestChallenge"`
	PrimaryGoal              PrimaryGoal              `gorm:"type:varchar(50);not null;column:primary_goal" json:"primaryGoal"`
	MonthlyBudget            MonthlyBudget            `gorm:"type:varchar(20);not null;column:monthly_budget" json:"monthlyBudget"`
}

// HasChannel reports whether the given channel was selected
func (r *AssessmentResponses) HasChannel(channel MarketingChannel) bool {
	for _, c := range r.MarketingChannels {
		if MarketingChannel(c) == channel {
			return true
		}
	}
	return false
}

// Assessment is a scored questionnaire submission for a company
type Assessment struct {
	ID        int64               `gorm:"primaryKey;autoIncrement"`
	CompanyID int64               `gorm:"not null;index;column:company_id"`
	Responses AssessmentResponses `gorm:"embedded"`
	Score     int                 `gorm:"not null"`
	CreatedAt time.Time           `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// Consultation is a follow-up call request tied to a company and its assessment
type Consultation struct {
	ID            int64              `gorm:"primaryKey;autoIncrement"`
	CompanyID     int64              `gorm:"not null;index;column:company_id"`
	AssessmentID  int64              `gorm:"not null;column:assessment_id"`
	PreferredTime PreferredTime      `gorm:"type:varchar(20);not null;column:preferred_time"`
	PreferredDay  PreferredDay       `gorm:"type:varchar(20);not null;column:preferred_day"`
	Urgency       Urgency            `gorm:"type:varchar(20);not null"`
	Priority      *string            `gorm:"type:text"`
	Source        *ReferralSource    `gorm:"type:varchar(50)"`
	Status        ConsultationStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt     time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Consultation) TableName() string {
	return "consultations"
}
