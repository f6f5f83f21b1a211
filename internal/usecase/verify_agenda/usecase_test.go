package verify_agenda

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

var brt = time.FixedZone("BRT", -3*60*60)

type fakeBookings struct {
	bookings []*domain.Booking
	filter   domain.BookingsFilter
	err      error
}

func (f *fakeBookings) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.bookings, f.err
}

type fakeRules struct {
	rules []*domain.AvailabilityRule
	err   error
}

func (f *fakeRules) ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.AvailabilityRule, error) {
	return f.rules, f.err
}

func mondayRule(id int64, start, end string, class domain.Classification) *domain.AvailabilityRule {
	monday := 1
	return &domain.AvailabilityRule{
		ID:             id,
		ProfessionalID: 7,
		Weekday:        &monday,
		StartTime:      types.MustTimeString(start),
		EndTime:        types.MustTimeString(end),
		Classification: class,
	}
}

func newUseCase(bookings *fakeBookings, rules *fakeRules) *UseCase {
	return NewUseCase(bookings, rules, Config{
		Location:    brt,
		DayStart:    types.MustTimeString("08:00"),
		DayEnd:      types.MustTimeString("11:00"),
		StepMinutes: 60,
	}, logger.NewNop())
}

func TestExecute_BuildsGrid(t *testing.T) {
	end := time.Date(2024, time.June, 10, 9, 30, 0, 0, brt)
	bookings := &fakeBookings{bookings: []*domain.Booking{{
		ID:             100,
		ProfessionalID: 7,
		StartAt:        time.Date(2024, time.June, 10, 9, 0, 0, 0, brt),
		EndAt:          &end,
		Status:         domain.StatusConfirmed,
	}}}
	rules := &fakeRules{rules: []*domain.AvailabilityRule{
		mondayRule(1, "08:00", "10:00", domain.ClassificationAvailable),
	}}

	resp, err := newUseCase(bookings, rules).Execute(context.Background(), &Request{ProfessionalID: 7, Date: "2024-06-10"})
	require.NoError(t, err)

	require.Len(t, resp.Cells, 3)
	assert.Equal(t, domain.ClassificationAvailable, resp.Cells[0].Classification)
	assert.Equal(t, domain.ClassificationBooked, resp.Cells[1].Classification)
	require.NotNil(t, resp.Cells[1].BookingID)
	assert.Equal(t, int64(100), *resp.Cells[1].BookingID)
	assert.Equal(t, domain.ClassificationUnconfigured, resp.Cells[2].Classification)

	require.NotNil(t, bookings.filter.ProfessionalID)
	assert.Equal(t, int64(7), *bookings.filter.ProfessionalID)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, brt), bookings.filter.From)
	assert.Equal(t, time.Date(2024, time.June, 11, 0, 0, 0, 0, brt), bookings.filter.To)
}

func TestExecute_OverlappingRulesConflict(t *testing.T) {
	rules := &fakeRules{rules: []*domain.AvailabilityRule{
		mondayRule(1, "08:00", "10:00", domain.ClassificationAvailable),
		mondayRule(2, "08:00", "09:00", domain.ClassificationOff),
	}}

	_, err := newUseCase(&fakeBookings{}, rules).Execute(context.Background(), &Request{ProfessionalID: 7, Date: "2024-06-10"})
	assert.ErrorIs(t, err, ErrRuleConflict)
}

func TestExecute_Errors(t *testing.T) {
	uc := newUseCase(&fakeBookings{}, &fakeRules{})
	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 7, Date: "2024-13-01"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = uc.Execute(context.Background(), &Request{ProfessionalID: -1, Date: "2024-06-10"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	failing := newUseCase(&fakeBookings{err: errors.New("db down")}, &fakeRules{})
	_, err = failing.Execute(context.Background(), &Request{ProfessionalID: 7, Date: "2024-06-10"})
	assert.ErrorIs(t, err, ErrInternal)
}
