package mapper

import (
	"time"

	"github.com/silverpath/funnel-api/internal/domain"
)

const timestampLayout = "2006-01-02T15:04:05Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ToCompanyDTO converts Company to CompanyDTO
func ToCompanyDTO(company *domain.Company) domain.CompanyDTO {
	return domain.CompanyDTO{
		ID:        company.ID,
		Name:      company.Name,
		Industry:  company.Industry,
		Size:      company.Size,
		Revenue:   company.Revenue,
		UserName:  company.UserName,
		UserRole:  company.UserRole,
		Email:     company.Email,
		Phone:     company.Phone,
		CreatedAt: formatTimestamp(company.CreatedAt),
	}
}

// ToAssessmentDTO converts Assessment to AssessmentDTO
func ToAssessmentDTO(assessment *domain.Assessment) domain.AssessmentDTO {
	responses := assessment.Responses
	responses.MarketingChannels = append(domain.ChannelList{}, assessment.Responses.MarketingChannels...)

	return domain.AssessmentDTO{
		ID:        assessment.ID,
		CompanyID: assessment.CompanyID,
		Responses: responses,
		Score:     assessment.Score,
		CreatedAt: formatTimestamp(assessment.CreatedAt),
	}
}

// ToAssessmentWithResultsDTO pairs a stored assessment with its computed results
func ToAssessmentWithResultsDTO(assessment *domain.Assessment, results *domain.AssessmentResults) domain.AssessmentWithResultsDTO {
	return domain.AssessmentWithResultsDTO{
		Assessment: ToAssessmentDTO(assessment),
		Results:    *results,
	}
}

// ToConsultationDTO converts Consultation to ConsultationDTO
func ToConsultationDTO(consultation *domain.Consultation) domain.ConsultationDTO {
	return domain.ConsultationDTO{
		ID:            consultation.ID,
		CompanyID:     consultation.CompanyID,
		AssessmentID:  consultation.AssessmentID,
		PreferredTime: consultation.PreferredTime,
		PreferredDay:  consultation.PreferredDay,
		Urgency:       consultation.Urgency,
		Priority:      consultation.Priority,
		Source:        consultation.Source,
		Status:        consultation.Status,
		CreatedAt:     formatTimestamp(consultation.CreatedAt),
	}
}

// ToConsultationDTOs converts a list of consultations, never returning nil
func ToConsultationDTOs(consultations []domain.Consultation) []domain.ConsultationDTO {
	dtos := make([]domain.ConsultationDTO, 0, len(consultations))
	for i := range consultations {
		dtos = append(dtos, ToConsultationDTO(&consultations[i]))
	}
	return dtos
}
