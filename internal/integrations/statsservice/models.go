package statsservice

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// OccupancyResponse ответ сервиса статистики
type OccupancyResponse struct {
	Professionals []ProfessionalOccupancy `json:"professionals"`
}

// ProfessionalOccupancy загрузка специалиста за скользящее окно
type ProfessionalOccupancy struct {
	ProfessionalID    int64   `json:"professional_id"`
	Booked            int     `json:"booked"`
	Total             int     `json:"total"`
	Percentage        float64 `json:"percentage"`
	BookingsToday     int     `json:"bookings_today"`
	BookingsNext7Days int     `json:"bookings_next_7_days"`
}

// ToDomain преобразует ответ в снимок загрузки по специалистам
func (r *OccupancyResponse) ToDomain() map[int64]domain.Occupancy {
	result := make(map[int64]domain.Occupancy, len(r.Professionals))
	for _, p := range r.Professionals {
		result[p.ProfessionalID] = domain.Occupancy{
			Booked:            p.Booked,
			Total:             p.Total,
			Percentage:        p.Percentage,
			BookingsToday:     p.BookingsToday,
			BookingsNext7Days: p.BookingsNext7Days,
		}
	}
	return result
}
