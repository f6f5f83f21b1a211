package create_rule

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/rules/models"
)

// CreateRuleRequest HTTP request model
type CreateRuleRequest struct {
	Weekday        *int    `json:"weekday,omitempty"`
	SpecificDate   *string `json:"specificDate,omitempty"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Classification string  `json:"classification"`
	Note           *string `json:"note,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateRuleRequest) ToServiceRequest(userID, professionalID int64) *models.CreateRuleRequest {
	return &models.CreateRuleRequest{
		UserID:         userID,
		ProfessionalID: professionalID,
		Weekday:        r.Weekday,
		SpecificDate:   r.SpecificDate,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Classification: r.Classification,
		Note:           r.Note,
	}
}
