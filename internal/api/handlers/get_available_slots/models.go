package get_available_slots

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ServiceID   int64           `json:"serviceId"`
	ServiceName string          `json:"serviceName"`
	Weekday     int             `json:"weekday"`
	Period      string          `json:"period,omitempty"`
	Mode        string          `json:"mode,omitempty"`
	Slots       []AvailableSlot `json:"slots"`
}

// AvailableSlot модель свободного слота
type AvailableSlot struct {
	ProfessionalID   int64     `json:"professionalId"`
	ProfessionalName string    `json:"professionalName"`
	Date             string    `json:"date"`
	StartTime        string    `json:"startTime"`
	EndTime          string    `json:"endTime"`
	DurationMinutes  int       `json:"durationMinutes"`
	Classification   string    `json:"classification"`
	Occupancy        Occupancy `json:"occupancy"`
}

// Occupancy загрузка специалиста
type Occupancy struct {
	Booked            int     `json:"booked"`
	Total             int     `json:"total"`
	Percentage        float64 `json:"percentage"`
	BookingsToday     int     `json:"bookingsToday"`
	BookingsNext7Days int     `json:"bookingsNext7Days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ProfessionalID:   slot.ProfessionalID,
			ProfessionalName: slot.ProfessionalName,
			Date:             slot.Date.Format(domain.DateFormat),
			StartTime:        slot.StartTime.String(),
			EndTime:          slot.EndTime.String(),
			DurationMinutes:  slot.DurationMinutes,
			Classification:   string(slot.Classification),
			Occupancy: Occupancy{
				Booked:            slot.Occupancy.Booked,
				Total:             slot.Occupancy.Total,
				Percentage:        slot.Occupancy.Percentage,
				BookingsToday:     slot.Occupancy.BookingsToday,
				BookingsNext7Days: slot.Occupancy.BookingsNext7Days,
			},
		}
	}

	return &AvailableSlotsResponse{
		ServiceID:   resp.ServiceID,
		ServiceName: resp.ServiceName,
		Weekday:     int(resp.Weekday),
		Period:      string(resp.Period),
		Mode:        string(resp.Mode),
		Slots:       slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(serviceID int64, weekday, period, mode string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Weekday:   weekday,
		Period:    period,
		Mode:      mode,
	}
}
