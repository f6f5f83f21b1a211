package catalogservice

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// ServiceProfessionals ответ каталога: услуга и специалисты, которые ее оказывают
type ServiceProfessionals struct {
	Service       Service        `json:"service"`
	Professionals []Professional `json:"professionals"`
}

// Service модель услуги из каталога
type Service struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Professional специалист, привязанный к услуге
type Professional struct {
	ID              int64  `json:"professional_id"`
	Name            string `json:"name"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"` // переопределение длительности услуги
}

// ToDomain преобразует ответ в доменные модели
// Специалист без собственной длительности получает длительность услуги
func (s *ServiceProfessionals) ToDomain() (domain.Service, []domain.QualifiedProfessional) {
	service := domain.Service{
		ID:              s.Service.ID,
		Name:            s.Service.Name,
		DurationMinutes: s.Service.DurationMinutes,
	}

	professionals := make([]domain.QualifiedProfessional, 0, len(s.Professionals))
	for _, p := range s.Professionals {
		duration := service.DurationMinutes
		if p.DurationMinutes != nil && *p.DurationMinutes > 0 {
			duration = *p.DurationMinutes
		}
		professionals = append(professionals, domain.QualifiedProfessional{
			ProfessionalID:  p.ID,
			Name:            p.Name,
			DurationMinutes: duration,
		})
	}

	return service, professionals
}
