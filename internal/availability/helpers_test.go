package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func weeklyRule(id, professionalID int64, weekday time.Weekday, start, end string, class domain.Classification) *domain.AvailabilityRule {
	wd := int(weekday)
	return &domain.AvailabilityRule{
		ID:             id,
		ProfessionalID: professionalID,
		Weekday:        &wd,
		StartTime:      types.MustTimeString(start),
		EndTime:        types.MustTimeString(end),
		Classification: class,
	}
}

func specificRule(id, professionalID int64, date time.Time, start, end string, class domain.Classification) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ID:             id,
		ProfessionalID: professionalID,
		SpecificDate:   &date,
		StartTime:      types.MustTimeString(start),
		EndTime:        types.MustTimeString(end),
		Classification: class,
	}
}

func booking(id, professionalID int64, start time.Time, minutes int, status domain.BookingStatus) *domain.Booking {
	b := &domain.Booking{ID: id, ProfessionalID: professionalID, StartAt: start, Status: status}
	if minutes > 0 {
		end := start.Add(time.Duration(minutes) * time.Minute)
		b.EndAt = &end
	}
	return b
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, saoPaulo)
}

func date(year int, month time.Month, day int) time.Time {
	return at(year, month, day, 0, 0)
}

func slotsOn(slots []domain.ResolvedSlot, day time.Time) []domain.ResolvedSlot {
	var result []domain.ResolvedSlot
	for _, s := range slots {
		if domain.SameDate(s.Date, day) {
			result = append(result, s)
		}
	}
	return result
}

func startTimes(slots []domain.ResolvedSlot) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.StartTime.String())
	}
	return result
}
