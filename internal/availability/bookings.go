package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// busyRange занятый интервал специалиста в пределах одного дня
type busyRange struct {
	MinuteRange
	BookingID int64
}

// bookingIndex активные записи по специалисту и календарному дню опорного часового пояса
type bookingIndex map[int64]map[string][]busyRange

// indexBookings раскладывает активные записи по дням
// Запись, переходящая через полночь, делится на части по дням
func indexBookings(bookings []*domain.Booking, loc *time.Location, defaultMinutes int) bookingIndex {
	idx := make(bookingIndex)

	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}

		start := b.StartAt.In(loc)
		end := b.End(defaultMinutes).In(loc)

		for day := startOfDay(start, loc); day.Before(end); day = day.AddDate(0, 0, 1) {
			next := day.AddDate(0, 0, 1)

			segStart := 0
			if start.After(day) {
				segStart = minuteOfDay(start)
			}

			segEnd := 24 * 60
			if end.Before(next) {
				segEnd = minuteOfDay(end)
				if end.Second() > 0 || end.Nanosecond() > 0 {
					segEnd++
				}
			}

			if segEnd <= segStart {
				continue
			}

			perDay, ok := idx[b.ProfessionalID]
			if !ok {
				perDay = make(map[string][]busyRange)
				idx[b.ProfessionalID] = perDay
			}
			key := dayKey(day)
			perDay[key] = append(perDay[key], busyRange{
				MinuteRange: MinuteRange{Start: segStart, End: segEnd},
				BookingID:   b.ID,
			})
		}
	}

	return idx
}

// on занятые интервалы специалиста в день
func (idx bookingIndex) on(professionalID int64, day time.Time) []busyRange {
	return idx[professionalID][dayKey(day)]
}

// firstOverlap возвращает первую запись, пересекающую интервал
func firstOverlap(busy []busyRange, r MinuteRange) (busyRange, bool) {
	for _, b := range busy {
		if b.Overlaps(r) {
			return b, true
		}
	}
	return busyRange{}, false
}
