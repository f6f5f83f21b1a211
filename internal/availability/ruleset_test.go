package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestNewRuleSet_SkipsInvalidRules(t *testing.T) {
	valid := weeklyRule(1, 10, time.Monday, "08:00", "12:00", domain.ClassificationAvailable)
	inverted := weeklyRule(2, 10, time.Monday, "12:00", "08:00", domain.ClassificationAvailable)
	unknown := weeklyRule(3, 10, time.Monday, "13:00", "14:00", domain.Classification("ferias"))

	set := NewRuleSet([]*domain.AvailabilityRule{valid, inverted, nil, unknown})

	assert.Equal(t, []*domain.AvailabilityRule{valid}, set.Weekly(10, time.Monday))
	assert.Len(t, set.Skipped(), 2)
}

func TestRuleSet_SpecificMatchesCalendarDate(t *testing.T) {
	// дата правила хранится в UTC, запрос приходит в локальном поясе
	stored := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	rule := specificRule(1, 10, stored, "12:00", "14:00", domain.ClassificationOff)
	set := NewRuleSet([]*domain.AvailabilityRule{rule})

	assert.Len(t, set.Specific(10, at(2024, time.June, 10, 23, 0)), 1)
	assert.Empty(t, set.Specific(10, date(2024, time.June, 11)))
	assert.Empty(t, set.Specific(99, date(2024, time.June, 10)))
	assert.Empty(t, set.Weekly(10, time.Monday))
}

func TestFindOverlaps(t *testing.T) {
	day := date(2024, time.June, 10)
	rules := []*domain.AvailabilityRule{
		weeklyRule(1, 10, time.Monday, "08:00", "12:00", domain.ClassificationAvailable),
		weeklyRule(2, 10, time.Monday, "11:00", "13:00", domain.ClassificationOff),
		weeklyRule(3, 10, time.Monday, "12:00", "14:00", domain.ClassificationAvailable),
		weeklyRule(4, 10, time.Tuesday, "08:00", "12:00", domain.ClassificationAvailable),
		weeklyRule(5, 20, time.Monday, "08:00", "12:00", domain.ClassificationAvailable),
		specificRule(6, 10, day, "08:00", "12:00", domain.ClassificationOff),
	}

	overlaps := FindOverlaps(rules)
	require.Len(t, overlaps, 2)
	assert.Equal(t, int64(1), overlaps[0].First.ID)
	assert.Equal(t, int64(2), overlaps[0].Second.ID)
	assert.Equal(t, int64(2), overlaps[1].First.ID)
	assert.Equal(t, int64(3), overlaps[1].Second.ID)
}
