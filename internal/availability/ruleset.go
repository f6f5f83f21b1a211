package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// RuleSet снимок правил доступности, сгруппированных по специалисту
// Некорректные правила отбрасываются при построении и не участвуют в расчетах
type RuleSet struct {
	byProfessional map[int64][]*domain.AvailabilityRule
	skipped        []*domain.AvailabilityRule
}

// NewRuleSet строит RuleSet, сохраняя исходный порядок правил внутри специалиста
func NewRuleSet(rules []*domain.AvailabilityRule) *RuleSet {
	s := &RuleSet{byProfessional: make(map[int64][]*domain.AvailabilityRule)}

	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if !rule.IsValid() {
			s.skipped = append(s.skipped, rule)
			continue
		}
		s.byProfessional[rule.ProfessionalID] = append(s.byProfessional[rule.ProfessionalID], rule)
	}

	return s
}

// Skipped правила, исключенные как некорректные
func (s *RuleSet) Skipped() []*domain.AvailabilityRule {
	return s.skipped
}

// Specific правила специалиста на конкретную дату (сравнение по году, месяцу и дню)
func (s *RuleSet) Specific(professionalID int64, date time.Time) []*domain.AvailabilityRule {
	var result []*domain.AvailabilityRule
	for _, rule := range s.byProfessional[professionalID] {
		if rule.IsSpecific() && domain.SameDate(*rule.SpecificDate, date) {
			result = append(result, rule)
		}
	}
	return result
}

// Weekly еженедельные правила специалиста на день недели
func (s *RuleSet) Weekly(professionalID int64, weekday time.Weekday) []*domain.AvailabilityRule {
	var result []*domain.AvailabilityRule
	for _, rule := range s.byProfessional[professionalID] {
		if rule.IsWeekly() && *rule.Weekday == int(weekday) {
			result = append(result, rule)
		}
	}
	return result
}

// Overlap пара правил одного ключа повторения с пересекающимися интервалами
type Overlap struct {
	First  *domain.AvailabilityRule
	Second *domain.AvailabilityRule
}

// FindOverlaps находит пересечения правил одного специалиста с одинаковым ключом повторения
func FindOverlaps(rules []*domain.AvailabilityRule) []Overlap {
	var result []Overlap
	for i := 0; i < len(rules); i++ {
		for j := i + 1; j < len(rules); j++ {
			a, b := rules[i], rules[j]
			if a.ProfessionalID != b.ProfessionalID || !a.SameRecurrence(b) {
				continue
			}
			if RuleRange(a).Overlaps(RuleRange(b)) {
				result = append(result, Overlap{First: a, Second: b})
			}
		}
	}
	return result
}
