package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// PeriodFilter способ применения фильтра периода дня
type PeriodFilter string

const (
	// PeriodFilterRuleStart фильтрует правило целиком по часу его начала
	PeriodFilterRuleStart PeriodFilter = "rule_start"

	// PeriodFilterSlotStart фильтрует каждый слот по часу его начала
	PeriodFilterSlotStart PeriodFilter = "slot_start"
)

// Options параметры перебора слотов
type Options struct {
	StepMinutes           int
	DefaultBookingMinutes int
	PeriodFilter          PeriodFilter
}

// DefaultOptions параметры по умолчанию: шаг 30 минут, запись без конца длится 60 минут
func DefaultOptions() Options {
	return Options{
		StepMinutes:           domain.DefaultStepMinutes,
		DefaultBookingMinutes: domain.DefaultBookingMinutes,
		PeriodFilter:          PeriodFilterRuleStart,
	}
}

// Query параметры поиска слотов
type Query struct {
	ServiceID   int64
	Weekday     time.Weekday
	Period      domain.PeriodOfDay
	Mode        domain.AttendanceMode
	Now         time.Time // "сегодня" вычисляется в Snapshot.Location
	HorizonDays int
}

// Snapshot данные, на которых выполняется перебор
type Snapshot struct {
	Rules         *RuleSet
	Professionals []domain.QualifiedProfessional
	Bookings      []*domain.Booking
	Occupancy     map[int64]domain.Occupancy
	Location      *time.Location
}

// Enumerator перебирает свободные слоты услуги на горизонте в несколько дней
// Не имеет состояния, результат зависит только от Query и Snapshot
type Enumerator struct {
	opts Options
}

// NewEnumerator создает Enumerator, нулевые параметры заменяются значениями по умолчанию
func NewEnumerator(opts Options) *Enumerator {
	def := DefaultOptions()
	if opts.StepMinutes <= 0 {
		opts.StepMinutes = def.StepMinutes
	}
	if opts.DefaultBookingMinutes <= 0 {
		opts.DefaultBookingMinutes = def.DefaultBookingMinutes
	}
	if opts.PeriodFilter == "" {
		opts.PeriodFilter = def.PeriodFilter
	}
	return &Enumerator{opts: opts}
}

type slotKey struct {
	professionalID int64
	day            string
	start          int
}

// Enumerate возвращает слоты, отсортированные по (дата, время, специалист)
func (e *Enumerator) Enumerate(q Query, s Snapshot) []domain.ResolvedSlot {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	rules := s.Rules
	if rules == nil {
		rules = NewRuleSet(nil)
	}
	horizon := q.HorizonDays
	if horizon <= 0 {
		horizon = domain.DefaultHorizonDays
	}

	now := q.Now.In(loc)
	today := startOfDay(now, loc)
	nowSeconds := now.Hour()*3600 + now.Minute()*60 + now.Second()

	busy := indexBookings(s.Bookings, loc, e.opts.DefaultBookingMinutes)

	seen := make(map[slotKey]struct{})
	result := make([]domain.ResolvedSlot, 0)

	for i := 0; i <= horizon; i++ {
		day := today.AddDate(0, 0, i)
		if day.Weekday() != q.Weekday {
			continue
		}
		isToday := i == 0

		for _, prof := range s.Professionals {
			if prof.DurationMinutes <= 0 {
				continue
			}

			specific := rules.Specific(prof.ProfessionalID, day)
			weekly := rules.Weekly(prof.ProfessionalID, day.Weekday())
			dayBusy := busy.on(prof.ProfessionalID, day)

			// Специфичные правила дня, которые не подходят под формат, вырезают время из еженедельных
			var blocking []MinuteRange
			for _, rule := range specific {
				if !rule.Classification.Matches(q.Mode) {
					blocking = append(blocking, RuleRange(rule))
				}
			}

			candidates := e.candidates(specific, q, prof.DurationMinutes, nil)
			candidates = append(candidates, e.candidates(weekly, q, prof.DurationMinutes, blocking)...)

			for _, c := range candidates {
				if _, overlaps := firstOverlap(dayBusy, c.MinuteRange); overlaps {
					continue
				}
				if isToday && c.Start*60 < nowSeconds {
					continue
				}

				key := slotKey{professionalID: prof.ProfessionalID, day: dayKey(day), start: c.Start}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				start, _ := types.NewTimeStringFromMinutes(c.Start)
				result = append(result, domain.ResolvedSlot{
					ProfessionalID:  prof.ProfessionalID,
					ServiceID:       q.ServiceID,
					Date:            day,
					StartTime:       start,
					DurationMinutes: prof.DurationMinutes,
					Classification:  c.classification,
				})
			}
		}
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.StartTime != b.StartTime {
			return a.StartTime.IsBefore(b.StartTime)
		}
		return a.ProfessionalID < b.ProfessionalID
	})

	return AttachOccupancy(result, s.Occupancy)
}

type candidate struct {
	MinuteRange
	classification domain.Classification
}

// candidates шагает по каждому подходящему правилу и собирает интервалы длиной duration,
// целиком лежащие внутри правила и не задевающие blocking
func (e *Enumerator) candidates(rules []*domain.AvailabilityRule, q Query, duration int, blocking []MinuteRange) []candidate {
	var result []candidate

	for _, rule := range rules {
		if !rule.Classification.Matches(q.Mode) {
			continue
		}
		if e.opts.PeriodFilter == PeriodFilterRuleStart && !q.Period.ContainsHour(rule.StartTime.Hour()) {
			continue
		}

		window := RuleRange(rule)
		for start := window.Start; start+duration <= window.End; start += e.opts.StepMinutes {
			if e.opts.PeriodFilter == PeriodFilterSlotStart && !q.Period.ContainsHour(start/60) {
				continue
			}

			slot := MinuteRange{Start: start, End: start + duration}
			if overlapsAny(blocking, slot) {
				continue
			}
			result = append(result, candidate{MinuteRange: slot, classification: rule.Classification})
		}
	}

	return result
}

func overlapsAny(ranges []MinuteRange, r MinuteRange) bool {
	for _, o := range ranges {
		if o.Overlaps(r) {
			return true
		}
	}
	return false
}
