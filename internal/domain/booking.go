package domain

import "time"

// BookingStatus статус записи на прием
type BookingStatus string

const (
	StatusScheduled BookingStatus = "scheduled"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking запись пациента к специалисту (только поля, влияющие на доступность)
type Booking struct {
	ID             int64
	ProfessionalID int64
	ServiceID      *int64 // услуга не важна для пересечений: блокирует любая запись
	StartAt        time.Time
	EndAt          *time.Time // NULL = длительность по умолчанию
	Status         BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись занимает время специалиста
// Время освобождает только отмена, неявка (no_show) по-прежнему блокирует
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// End возвращает момент окончания записи
// Если конец не задан (или не позже начала), используется defaultMinutes
func (b *Booking) End(defaultMinutes int) time.Time {
	if b.EndAt != nil && b.EndAt.After(b.StartAt) {
		return *b.EndAt
	}
	return b.StartAt.Add(time.Duration(defaultMinutes) * time.Minute)
}

// BookingsFilter фильтр выборки записей
type BookingsFilter struct {
	ProfessionalID  *int64    // nil - все специалисты
	From            time.Time // начало периода (включительно)
	To              time.Time // конец периода (не включительно)
	IncludeInactive bool      // включать ли отмененные записи
}
