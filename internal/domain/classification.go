package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownClassification неизвестная классификация
	ErrUnknownClassification = errors.New("domain: unknown classification")

	// ErrUnknownAttendanceMode неизвестный формат приема
	ErrUnknownAttendanceMode = errors.New("domain: unknown attendance mode")

	// ErrUnknownPeriod неизвестный период дня
	ErrUnknownPeriod = errors.New("domain: unknown period of day")
)

// Classification результат разрешения доступности для конкретной минуты
type Classification string

const (
	ClassificationAvailable    Classification = "disponivel"
	ClassificationOff          Classification = "folga"
	ClassificationInPerson     Classification = "presencial"
	ClassificationOnline       Classification = "online"
	ClassificationUnconfigured Classification = "nao_configurado" // только результат
	ClassificationBooked       Classification = "ocupado"         // только результат (агенда)
)

// IsStorable возвращает true для классификаций, которые может нести правило
func (c Classification) IsStorable() bool {
	switch c {
	case ClassificationAvailable, ClassificationOff, ClassificationInPerson, ClassificationOnline:
		return true
	}
	return false
}

// Matches проверяет, подходит ли правило с этой классификацией для формата приема
// disponivel обслуживает любой формат, folga не подходит никогда
func (c Classification) Matches(mode AttendanceMode) bool {
	switch c {
	case ClassificationAvailable:
		return true
	case ClassificationInPerson, ClassificationOnline:
		return mode == AttendanceAny || Classification(mode) == c
	default:
		return false
	}
}

// ParseClassification парсит классификацию правила
func ParseClassification(s string) (Classification, error) {
	c := Classification(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsStorable() {
		return "", fmt.Errorf("%w: %q", ErrUnknownClassification, s)
	}
	return c, nil
}

// AttendanceMode формат приема
type AttendanceMode string

const (
	AttendanceAny      AttendanceMode = ""
	AttendanceInPerson AttendanceMode = "presencial"
	AttendanceOnline   AttendanceMode = "online"
)

// ParseAttendanceMode парсит формат приема, пустая строка означает любой
func ParseAttendanceMode(s string) (AttendanceMode, error) {
	switch m := AttendanceMode(strings.ToLower(strings.TrimSpace(s))); m {
	case AttendanceAny, AttendanceInPerson, AttendanceOnline:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAttendanceMode, s)
}

// PeriodOfDay период дня для фильтрации слотов
type PeriodOfDay string

const (
	PeriodAny       PeriodOfDay = ""
	PeriodMorning   PeriodOfDay = "morning"
	PeriodAfternoon PeriodOfDay = "afternoon"
	PeriodEvening   PeriodOfDay = "evening"
)

// ParsePeriodOfDay парсит период дня, пустая строка означает любой
func ParsePeriodOfDay(s string) (PeriodOfDay, error) {
	switch p := PeriodOfDay(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodAny, PeriodMorning, PeriodAfternoon, PeriodEvening:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// ContainsHour проверяет, попадает ли час в период
// morning [6,12), afternoon [12,17), evening [17,22] (22 включительно)
func (p PeriodOfDay) ContainsHour(hour int) bool {
	switch p {
	case PeriodAny:
		return true
	case PeriodMorning:
		return hour >= 6 && hour < 12
	case PeriodAfternoon:
		return hour >= 12 && hour < 17
	case PeriodEvening:
		return hour >= 17 && hour <= 22
	}
	return false
}
