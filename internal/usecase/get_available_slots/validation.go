package get_available_slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// query разобранный и проверенный запрос
type query struct {
	weekday time.Weekday
	period  domain.PeriodOfDay
	mode    domain.AttendanceMode
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (*query, error) {
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	weekday, err := parseWeekday(req.Weekday)
	if err != nil {
		return nil, err
	}

	period, err := domain.ParsePeriodOfDay(req.Period)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	mode, err := domain.ParseAttendanceMode(req.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &query{weekday: weekday, period: period, mode: mode}, nil
}

// parseWeekday принимает номер дня (0 = воскресенье) или английское название
func parseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("%w: weekday is required", ErrInvalidInput)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("%w: weekday must be in range 0..6", ErrInvalidInput)
		}
		return time.Weekday(n), nil
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == s {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, s)
}
