package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Config параметры перебора слотов
type Config struct {
	Location    *time.Location // опорный часовой пояс ("сегодня", дни записей)
	HorizonDays int
	Enumerator  availability.Options
}

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64  // ID услуги
	Weekday   string // день недели: 0-6 (0 = воскресенье) или название на английском
	Period    string // morning | afternoon | evening | "" (любой)
	Mode      string // presencial | online | "" (любой)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ServiceID   int64
	ServiceName string
	Weekday     time.Weekday
	Period      domain.PeriodOfDay
	Mode        domain.AttendanceMode
	Slots       []Slot
}

// Slot модель свободного слота
type Slot struct {
	ProfessionalID   int64
	ProfessionalName string
	Date             time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	DurationMinutes  int
	Classification   domain.Classification
	Occupancy        domain.Occupancy
}
