package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Occupancy загрузка специалиста (предрасчитанная внешним сервисом)
type Occupancy struct {
	Booked            int
	Total             int
	Percentage        float64
	BookingsToday     int
	BookingsNext7Days int
}

// ResolvedSlot слот, доступный для записи
type ResolvedSlot struct {
	ProfessionalID  int64
	ServiceID       int64
	Date            time.Time // полночь в опорном часовом поясе
	StartTime       types.TimeString
	DurationMinutes int
	Classification  Classification // классификация правила, породившего слот
	Occupancy       Occupancy
}

// AgendaCell ячейка сетки проверки агенды
type AgendaCell struct {
	StartTime      types.TimeString
	EndTime        types.TimeString
	Classification Classification
	BookingID      *int64 // заполнено для ocupado
}
