package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// AgendaOptions параметры сетки агенды
type AgendaOptions struct {
	DayStart              types.TimeString
	DayEnd                types.TimeString
	StepMinutes           int
	DefaultBookingMinutes int
	Location              *time.Location
}

// BuildAgenda строит сетку дня специалиста: ячейка, которую задевает активная запись,
// помечается ocupado, остальные получают классификацию Resolver на начало ячейки
func BuildAgenda(
	resolver *Resolver,
	professionalID int64,
	date time.Time,
	bookings []*domain.Booking,
	opts AgendaOptions,
) ([]domain.AgendaCell, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	step := opts.StepMinutes
	if step <= 0 {
		step = domain.DefaultStepMinutes
	}
	defaultMinutes := opts.DefaultBookingMinutes
	if defaultMinutes <= 0 {
		defaultMinutes = domain.DefaultBookingMinutes
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	busy := indexBookings(bookings, loc, defaultMinutes).on(professionalID, day)
	window := NewMinuteRange(opts.DayStart, opts.DayEnd)

	cells := make([]domain.AgendaCell, 0, window.Length()/step+1)
	for start := window.Start; start < window.End; start += step {
		end := start + step
		if end > window.End {
			end = window.End
		}

		cell := domain.AgendaCell{}
		cell.StartTime, _ = types.NewTimeStringFromMinutes(start)
		cell.EndTime, _ = types.NewTimeStringFromMinutes(end)

		if b, ok := firstOverlap(busy, MinuteRange{Start: start, End: end}); ok {
			id := b.BookingID
			cell.Classification = domain.ClassificationBooked
			cell.BookingID = &id
			cells = append(cells, cell)
			continue
		}

		class, err := resolver.ResolveMinute(professionalID, day, start)
		if err != nil {
			return nil, err
		}
		cell.Classification = class
		cells = append(cells, cell)
	}

	return cells, nil
}
