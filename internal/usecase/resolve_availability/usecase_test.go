package resolve_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeRules struct {
	rules []*domain.AvailabilityRule
	err   error
}

func (f *fakeRules) ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.AvailabilityRule, error) {
	return f.rules, f.err
}

func rule(id int64, weekday *int, date *time.Time, start, end string, class domain.Classification) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ID:             id,
		ProfessionalID: 7,
		Weekday:        weekday,
		SpecificDate:   date,
		StartTime:      types.MustTimeString(start),
		EndTime:        types.MustTimeString(end),
		Classification: class,
	}
}

func TestExecute_SpecificDateOverridesWeekly(t *testing.T) {
	monday := 1
	holiday := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRules{rules: []*domain.AvailabilityRule{
		rule(1, &monday, nil, "08:00", "18:00", domain.ClassificationAvailable),
		rule(2, nil, &holiday, "12:00", "14:00", domain.ClassificationOff),
	}}
	uc := NewUseCase(repo, logger.NewNop())

	tests := []struct {
		date string
		time string
		want domain.Classification
	}{
		{"2024-06-10", "13:00", domain.ClassificationOff},
		{"2024-06-10", "09:00", domain.ClassificationAvailable},
		{"2024-06-10", "14:00", domain.ClassificationAvailable},
		{"2024-06-17", "13:00", domain.ClassificationAvailable},
		{"2024-06-10", "19:00", domain.ClassificationUnconfigured},
		{"2024-06-11", "09:00", domain.ClassificationUnconfigured},
	}

	for _, tt := range tests {
		t.Run(tt.date+" "+tt.time, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 7, Date: tt.date, Time: tt.time})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Classification)
			assert.Equal(t, tt.time, resp.Time.String())
		})
	}
}

func TestExecute_OverlappingRulesConflict(t *testing.T) {
	monday := 1
	repo := &fakeRules{rules: []*domain.AvailabilityRule{
		rule(1, &monday, nil, "08:00", "12:00", domain.ClassificationAvailable),
		rule(2, &monday, nil, "11:00", "13:00", domain.ClassificationOnline),
	}}

	_, err := NewUseCase(repo, logger.NewNop()).Execute(context.Background(),
		&Request{ProfessionalID: 7, Date: "2024-06-10", Time: "11:30"})
	assert.ErrorIs(t, err, ErrRuleConflict)
}

func TestExecute_Errors(t *testing.T) {
	uc := NewUseCase(&fakeRules{}, logger.NewNop())

	for _, req := range []*Request{
		{ProfessionalID: 0, Date: "2024-06-10", Time: "09:00"},
		{ProfessionalID: 7, Date: "10/06/2024", Time: "09:00"},
		{ProfessionalID: 7, Date: "2024-06-10", Time: "9h"},
		{ProfessionalID: 7, Date: "2024-06-10", Time: "24:00"},
	} {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	failing := NewUseCase(&fakeRules{err: errors.New("db down")}, logger.NewNop())
	_, err := failing.Execute(context.Background(), &Request{ProfessionalID: 7, Date: "2024-06-10", Time: "09:00"})
	assert.ErrorIs(t, err, ErrInternal)
}
