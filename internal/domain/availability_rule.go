package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// AvailabilityRule правило доступности специалиста
// Повторяется еженедельно (Weekday) либо действует в одну дату (SpecificDate), но не то и другое
type AvailabilityRule struct {
	ID             int64
	ProfessionalID int64
	Weekday        *int       // 0 = воскресенье ... 6 = суббота
	SpecificDate   *time.Time // учитываются только год, месяц и день
	StartTime      types.TimeString
	EndTime        types.TimeString // не включительно, допустимо "24:00"
	Classification Classification
	Note           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWeekly возвращает true для правил, повторяющихся по дню недели
func (r *AvailabilityRule) IsWeekly() bool {
	return r.Weekday != nil && r.SpecificDate == nil
}

// IsSpecific возвращает true для правил на конкретную дату
func (r *AvailabilityRule) IsSpecific() bool {
	return r.SpecificDate != nil && r.Weekday == nil
}

// IsValid проверяет структурную корректность правила
func (r *AvailabilityRule) IsValid() bool {
	if r.IsWeekly() == r.IsSpecific() {
		return false
	}
	if r.Weekday != nil && (*r.Weekday < 0 || *r.Weekday > 6) {
		return false
	}
	if !r.StartTime.IsValid() || !r.EndTime.IsValid() {
		return false
	}
	if !r.StartTime.IsBefore(r.EndTime) {
		return false
	}
	return r.Classification.IsStorable()
}

// SameRecurrence проверяет, что два правила относятся к одному ключу повторения
// (один и тот же день недели или одна и та же календарная дата)
func (r *AvailabilityRule) SameRecurrence(other *AvailabilityRule) bool {
	switch {
	case r.IsWeekly() && other.IsWeekly():
		return *r.Weekday == *other.Weekday
	case r.IsSpecific() && other.IsSpecific():
		return SameDate(*r.SpecificDate, *other.SpecificDate)
	}
	return false
}

// SameDate сравнивает даты по компонентам год/месяц/день, игнорируя время и смещение
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
