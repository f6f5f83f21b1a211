package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Resolver определяет классификацию минуты для специалиста и даты
//
// Приоритет поминутный: правило на конкретную дату перекрывает еженедельное
// только в пределах своего интервала, остальное время дня берется из
// еженедельных правил. Если ни одно правило не покрывает минуту, результат nao_configurado.
type Resolver struct {
	rules *RuleSet
}

// NewResolver создает Resolver поверх снимка правил
func NewResolver(rules *RuleSet) *Resolver {
	return &Resolver{rules: rules}
}

// Resolve возвращает классификацию для времени суток at в дату date
func (r *Resolver) Resolve(professionalID int64, date time.Time, at types.TimeString) (domain.Classification, error) {
	return r.ResolveMinute(professionalID, date, at.Minutes())
}

// ResolveMinute то же, что Resolve, для минуты от полуночи
func (r *Resolver) ResolveMinute(professionalID int64, date time.Time, minute int) (domain.Classification, error) {
	// 1. Правила на конкретную дату
	class, found, err := pick(r.rules.Specific(professionalID, date), minute)
	if err != nil || found {
		return class, err
	}

	// 2. Еженедельные правила
	class, found, err = pick(r.rules.Weekly(professionalID, date.Weekday()), minute)
	if err != nil || found {
		return class, err
	}

	// 3. Ничего не настроено
	return domain.ClassificationUnconfigured, nil
}

// pick возвращает классификацию единственного правила, покрывающего минуту
func pick(rules []*domain.AvailabilityRule, minute int) (domain.Classification, bool, error) {
	var match *domain.AvailabilityRule
	for _, rule := range rules {
		if !RuleRange(rule).Contains(minute) {
			continue
		}
		if match != nil {
			return "", false, fmt.Errorf("%w: rules %d and %d cover minute %d", ErrOverlappingRules, match.ID, rule.ID, minute)
		}
		match = rule
	}

	if match == nil {
		return "", false, nil
	}
	return match.Classification, true, nil
}
