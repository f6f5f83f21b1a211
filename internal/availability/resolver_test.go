package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const professional int64 = 7

func TestResolve_WeeklyRuleOnly(t *testing.T) {
	resolver := NewResolver(NewRuleSet([]*domain.AvailabilityRule{
		weeklyRule(1, professional, time.Monday, "08:00", "12:00", domain.ClassificationAvailable),
	}))
	monday := date(2024, time.June, 10)

	got, err := resolver.Resolve(professional, monday, "09:00")
	require.NoError(t, err)
	assert.Equal(t, domain.ClassificationAvailable, got)

	got, err = resolver.Resolve(professional, monday, "13:00")
	require.NoError(t, err)
	assert.Equal(t, domain.ClassificationUnconfigured, got)

	// конец правила не включается
	got, err = resolver.Resolve(professional, monday, "12:00")
	require.NoError(t, err)
	assert.Equal(t, domain.ClassificationUnconfigured, got)
}

func TestResolve_SpecificDateOverridesPerMinute(t *testing.T) {
	monday := date(2024, time.June, 10)
	resolver := NewResolver(NewRuleSet([]*domain.AvailabilityRule{
		weeklyRule(1, professional, time.Monday, "08:00", "17:00", domain.ClassificationAvailable),
		specificRule(2, professional, monday, "12:00", "14:00", domain.ClassificationOff),
	}))

	tests := []struct {
		at   types.TimeString
		want domain.Classification
	}{
		{"11:00", domain.ClassificationAvailable},
		{"13:00", domain.ClassificationOff},
		{"15:00", domain.ClassificationAvailable},
	}

	for _, tt := range tests {
		got, err := resolver.Resolve(professional, monday, tt.at)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "at %s", tt.at)
	}

	// следующий понедельник без исключений
	got, err := resolver.Resolve(professional, monday.AddDate(0, 0, 7), "13:00")
	require.NoError(t, err)
	assert.Equal(t, domain.ClassificationAvailable, got)
}

func TestResolve_Laws(t *testing.T) {
	monday := date(2024, time.June, 10)
	rules := []*domain.AvailabilityRule{
		weeklyRule(1, professional, time.Monday, "06:00", "10:00", domain.ClassificationOff),
		weeklyRule(2, professional, time.Monday, "10:00", "18:00", domain.ClassificationInPerson),
		specificRule(3, professional, monday, "09:00", "11:00", domain.ClassificationOnline),
	}
	set := NewRuleSet(rules)
	resolver := NewResolver(set)

	for minute := 0; minute < types.MinutesPerDay; minute++ {
		got, err := resolver.ResolveMinute(professional, monday, minute)
		require.NoError(t, err)

		var want domain.Classification
		switch {
		case RuleRange(rules[2]).Contains(minute):
			want = rules[2].Classification
		case RuleRange(rules[0]).Contains(minute):
			want = rules[0].Classification
		case RuleRange(rules[1]).Contains(minute):
			want = rules[1].Classification
		default:
			want = domain.ClassificationUnconfigured
		}
		require.Equal(t, want, got, "minute %d", minute)
	}
}

func TestResolve_UnknownProfessional(t *testing.T) {
	resolver := NewResolver(NewRuleSet(nil))

	got, err := resolver.Resolve(404, date(2024, time.June, 10), "10:00")
	require.NoError(t, err)
	assert.Equal(t, domain.ClassificationUnconfigured, got)
}

func TestResolve_OverlappingRulesOfSameTier(t *testing.T) {
	monday := date(2024, time.June, 10)
	resolver := NewResolver(NewRuleSet([]*domain.AvailabilityRule{
		weeklyRule(1, professional, time.Monday, "08:00", "12:00", domain.ClassificationAvailable),
		weeklyRule(2, professional, time.Monday, "11:00", "13:00", domain.ClassificationOff),
		specificRule(3, professional, monday.AddDate(0, 0, 7), "08:00", "10:00", domain.ClassificationOff),
		specificRule(4, professional, monday.AddDate(0, 0, 7), "09:00", "10:00", domain.ClassificationAvailable),
	}))

	_, err := resolver.Resolve(professional, monday, "11:30")
	assert.ErrorIs(t, err, ErrOverlappingRules)

	// вне пересечения ответ однозначен
	got, err := resolver.Resolve(professional, monday, "09:00")
	require.NoError(t, err)
	assert.Equal(t, domain.ClassificationAvailable, got)

	_, err = resolver.Resolve(professional, monday.AddDate(0, 0, 7), "09:15")
	assert.ErrorIs(t, err, ErrOverlappingRules)
}
