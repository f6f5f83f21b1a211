package verify_agenda

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	verifyAgenda "github.com/m04kA/SMC-AvailabilityService/internal/usecase/verify_agenda"
)

// AgendaResponse HTTP response model
type AgendaResponse struct {
	ProfessionalID int64        `json:"professionalId"`
	Date           string       `json:"date"`
	Cells          []AgendaCell `json:"cells"`
}

// AgendaCell ячейка сетки дня
type AgendaCell struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Classification string `json:"classification"`
	BookingID      *int64 `json:"bookingId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *verifyAgenda.Response) *AgendaResponse {
	cells := make([]AgendaCell, len(resp.Cells))
	for i, cell := range resp.Cells {
		cells[i] = AgendaCell{
			StartTime:      cell.StartTime.String(),
			EndTime:        cell.EndTime.String(),
			Classification: string(cell.Classification),
			BookingID:      cell.BookingID,
		}
	}

	return &AgendaResponse{
		ProfessionalID: resp.ProfessionalID,
		Date:           resp.Date.Format(domain.DateFormat),
		Cells:          cells,
	}
}
