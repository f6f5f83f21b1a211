package rules

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability_rule"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/rules/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

type fakeRepo struct {
	rules       []*domain.AvailabilityRule
	nextID      int64
	listErr     error
	deleteCalls int
}

func (r *fakeRepo) Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	r.nextID++
	rule.ID = r.nextID
	r.rules = append(r.rules, rule)
	return rule, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.AvailabilityRule, error) {
	for _, rule := range r.rules {
		if rule.ID == id {
			return rule, nil
		}
	}
	return nil, ruleRepo.ErrRuleNotFound
}

func (r *fakeRepo) ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.AvailabilityRule, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var result []*domain.AvailabilityRule
	for _, rule := range r.rules {
		if rule.ProfessionalID == professionalID {
			result = append(result, rule)
		}
	}
	return result, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	r.deleteCalls++
	for i, rule := range r.rules {
		if rule.ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return nil
		}
	}
	return ruleRepo.ErrRuleNotFound
}

type fakeTx struct {
	calls int
	err   error
}

func (tx *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	if tx.err != nil {
		return tx.err
	}
	return fn(ctx)
}

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }

func newService() (*Service, *fakeRepo, *fakeTx) {
	repo := &fakeRepo{}
	tx := &fakeTx{}
	return NewService(repo, tx, logger.NewNop()), repo, tx
}

func TestService_Create(t *testing.T) {
	svc, repo, tx := newService()

	resp, err := svc.Create(context.Background(), &models.CreateRuleRequest{
		UserID:         1,
		ProfessionalID: 7,
		Weekday:        intPtr(int(time.Monday)),
		StartTime:      "08:00",
		EndTime:        "12:00:00",
		Classification: "disponivel",
		Note:           strPtr("  manhã  "),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "12:00", resp.EndTime)
	assert.Equal(t, "manhã", *resp.Note)
	assert.Nil(t, resp.SpecificDate)
	assert.Len(t, repo.rules, 1)
	assert.Equal(t, 1, tx.calls)
}

func TestService_Create_RejectsOverlapWithinSameRecurrence(t *testing.T) {
	svc, repo, _ := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateRuleRequest{
		ProfessionalID: 7, SpecificDate: strPtr("2024-06-10"),
		StartTime: "12:00", EndTime: "14:00", Classification: "folga",
	})
	require.NoError(t, err)

	// та же дата, пересечение 13:00-14:00
	_, err = svc.Create(ctx, &models.CreateRuleRequest{
		ProfessionalID: 7, SpecificDate: strPtr("2024-06-10"),
		StartTime: "13:00", EndTime: "15:00", Classification: "disponivel",
	})
	assert.ErrorIs(t, err, ErrRuleOverlap)

	// соприкосновение границами допустимо
	_, err = svc.Create(ctx, &models.CreateRuleRequest{
		ProfessionalID: 7, SpecificDate: strPtr("2024-06-10"),
		StartTime: "14:00", EndTime: "15:00", Classification: "disponivel",
	})
	require.NoError(t, err)

	// еженедельное правило на понедельник не конфликтует с правилом на дату
	_, err = svc.Create(ctx, &models.CreateRuleRequest{
		ProfessionalID: 7, Weekday: intPtr(int(time.Monday)),
		StartTime: "08:00", EndTime: "17:00", Classification: "disponivel",
	})
	require.NoError(t, err)

	// другой специалист
	_, err = svc.Create(ctx, &models.CreateRuleRequest{
		ProfessionalID: 8, SpecificDate: strPtr("2024-06-10"),
		StartTime: "12:00", EndTime: "14:00", Classification: "online",
	})
	require.NoError(t, err)

	assert.Len(t, repo.rules, 4)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateRuleRequest
	}{
		{"no recurrence", models.CreateRuleRequest{ProfessionalID: 7, StartTime: "08:00", EndTime: "09:00", Classification: "disponivel"}},
		{"both recurrences", models.CreateRuleRequest{ProfessionalID: 7, Weekday: intPtr(1), SpecificDate: strPtr("2024-06-10"), StartTime: "08:00", EndTime: "09:00", Classification: "disponivel"}},
		{"weekday out of range", models.CreateRuleRequest{ProfessionalID: 7, Weekday: intPtr(7), StartTime: "08:00", EndTime: "09:00", Classification: "disponivel"}},
		{"bad date", models.CreateRuleRequest{ProfessionalID: 7, SpecificDate: strPtr("10/06/2024"), StartTime: "08:00", EndTime: "09:00", Classification: "disponivel"}},
		{"inverted range", models.CreateRuleRequest{ProfessionalID: 7, Weekday: intPtr(1), StartTime: "09:00", EndTime: "08:00", Classification: "disponivel"}},
		{"bad time", models.CreateRuleRequest{ProfessionalID: 7, Weekday: intPtr(1), StartTime: "8h", EndTime: "09:00", Classification: "disponivel"}},
		{"output-only classification", models.CreateRuleRequest{ProfessionalID: 7, Weekday: intPtr(1), StartTime: "08:00", EndTime: "09:00", Classification: "ocupado"}},
		{"missing professional", models.CreateRuleRequest{Weekday: intPtr(1), StartTime: "08:00", EndTime: "09:00", Classification: "disponivel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, tx := newService()
			req := tt.req
			_, err := svc.Create(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.rules)
			assert.Zero(t, tx.calls)
		})
	}
}

func TestService_Create_RepositoryError(t *testing.T) {
	svc, repo, _ := newService()
	repo.listErr = errors.New("db down")

	_, err := svc.Create(context.Background(), &models.CreateRuleRequest{
		ProfessionalID: 7, Weekday: intPtr(1), StartTime: "08:00", EndTime: "09:00", Classification: "disponivel",
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ListAndDelete(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateRuleRequest{
		ProfessionalID: 7, Weekday: intPtr(1), StartTime: "08:00", EndTime: "09:00", Classification: "presencial",
	})
	require.NoError(t, err)

	list, err := svc.ListByProfessional(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list.Rules, 1)
	assert.Equal(t, "presencial", list.Rules[0].Classification)

	empty, err := svc.ListByProfessional(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, empty.Rules)
	assert.Empty(t, empty.Rules)

	require.NoError(t, svc.Delete(ctx, 1, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, 1, created.ID), ErrRuleNotFound)
}

func TestService_Delete_UnknownRuleSkipsDelete(t *testing.T) {
	svc, repo, tx := newService()

	err := svc.Delete(context.Background(), 1, 42)

	assert.ErrorIs(t, err, ErrRuleNotFound)
	assert.Zero(t, repo.deleteCalls)
	assert.Equal(t, 1, tx.calls)
}

func TestService_SerializationFailureIsConcurrentUpdate(t *testing.T) {
	svc, repo, tx := newService()
	tx.err = fmt.Errorf("%w: 3 attempts: could not serialize access", txmanager.ErrSerializationFailure)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateRuleRequest{
		ProfessionalID: 7, Weekday: intPtr(1), StartTime: "08:00", EndTime: "09:00", Classification: "disponivel",
	})
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Empty(t, repo.rules)

	err = svc.Delete(ctx, 1, 1)
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
}
