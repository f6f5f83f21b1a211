package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// MinuteRange полуинтервал [Start, End) в минутах от полуночи
type MinuteRange struct {
	Start int
	End   int
}

// NewMinuteRange строит интервал из времени начала и конца
func NewMinuteRange(start, end types.TimeString) MinuteRange {
	return MinuteRange{Start: start.Minutes(), End: end.Minutes()}
}

// RuleRange интервал действия правила
func RuleRange(rule *domain.AvailabilityRule) MinuteRange {
	return NewMinuteRange(rule.StartTime, rule.EndTime)
}

// Contains проверяет Start <= m < End
func (r MinuteRange) Contains(m int) bool {
	return r.Start <= m && m < r.End
}

// Overlaps проверяет пересечение полуинтервалов
// Интервалы, которые только соприкасаются границами, не пересекаются
func (r MinuteRange) Overlaps(o MinuteRange) bool {
	return r.Start < o.End && o.Start < r.End
}

// Covers проверяет, что o целиком лежит внутри r
func (r MinuteRange) Covers(o MinuteRange) bool {
	return r.Start <= o.Start && o.End <= r.End
}

func (r MinuteRange) Length() int {
	return r.End - r.Start
}

// minuteOfDay минута суток для момента времени (секунды отбрасываются)
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// startOfDay полночь календарного дня t в часовом поясе loc
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// dayKey ключ календарного дня
func dayKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}
