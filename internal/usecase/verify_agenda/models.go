package verify_agenda

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Config параметры сетки агенды
type Config struct {
	Location              *time.Location
	DayStart              types.TimeString
	DayEnd                types.TimeString
	StepMinutes           int
	DefaultBookingMinutes int
}

// Request модель запроса агенды специалиста на день
type Request struct {
	ProfessionalID int64
	Date           string // YYYY-MM-DD
}

// Response модель ответа: сетка дня
type Response struct {
	ProfessionalID int64
	Date           time.Time
	Cells          []domain.AgendaCell
}
