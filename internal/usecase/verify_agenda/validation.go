package verify_agenda

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует запрос и возвращает полночь дня в опорном часовом поясе
func validateRequest(req *Request, loc *time.Location) (time.Time, error) {
	if req.ProfessionalID <= 0 {
		return time.Time{}, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in format YYYY-MM-DD", ErrInvalidInput)
	}

	return date, nil
}
