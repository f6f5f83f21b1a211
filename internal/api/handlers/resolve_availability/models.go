package resolve_availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	resolveAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/resolve_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ProfessionalID int64  `json:"professionalId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Classification string `json:"classification"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		ProfessionalID: resp.ProfessionalID,
		Date:           resp.Date.Format(domain.DateFormat),
		Time:           resp.Time.String(),
		Classification: string(resp.Classification),
	}
}
