package domain

// Значения по умолчанию для расчета доступности
const (
	DefaultHorizonDays    = 30
	DefaultStepMinutes    = 30
	DefaultBookingMinutes = 60
	DefaultTimezone       = "America/Sao_Paulo"
	DefaultAgendaStart    = "06:00"
	DefaultAgendaEnd      = "22:00"
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, которые не блокируют время специалиста
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
