package resolve_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса классификации времени специалиста
type Request struct {
	ProfessionalID int64
	Date           string // YYYY-MM-DD
	Time           string // HH:MM
}

// Response модель ответа
type Response struct {
	ProfessionalID int64
	Date           time.Time
	Time           types.TimeString
	Classification domain.Classification
}
