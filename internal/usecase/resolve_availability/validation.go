package resolve_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (time.Time, types.TimeString, error) {
	if req.ProfessionalID <= 0 {
		return time.Time{}, "", fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: date must be in format YYYY-MM-DD", ErrInvalidInput)
	}

	at, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: time must be in format HH:MM", ErrInvalidInput)
	}
	if at == types.EndOfDay {
		return time.Time{}, "", fmt.Errorf("%w: time must be before 24:00", ErrInvalidInput)
	}

	return date, at, nil
}
