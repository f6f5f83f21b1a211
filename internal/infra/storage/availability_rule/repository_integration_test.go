//go:build integration

package availability_rule

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is not set")
	}
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migration, err := os.ReadFile("../../../../migrations/0001_availability.sql")
	require.NoError(t, err)
	_, err = db.Exec(string(migration))
	require.NoError(t, err)
	_, err = db.Exec("TRUNCATE availability_rules RESTART IDENTITY")
	require.NoError(t, err)
	return db
}

func TestRepository_CRUD(t *testing.T) {
	db := openDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	monday := int(time.Monday)
	note := "plantão"
	created, err := repo.Create(ctx, &domain.AvailabilityRule{
		ProfessionalID: 7,
		Weekday:        &monday,
		StartTime:      "20:00",
		EndTime:        types.EndOfDay,
		Classification: domain.ClassificationAvailable,
		Note:           &note,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	_, err = repo.Create(ctx, &domain.AvailabilityRule{
		ProfessionalID: 7,
		SpecificDate:   &date,
		StartTime:      "12:00",
		EndTime:        "14:00",
		Classification: domain.ClassificationOff,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, types.EndOfDay, got.EndTime)
	assert.Equal(t, "plantão", *got.Note)
	assert.True(t, got.IsWeekly())

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[1].IsSpecific())
	assert.True(t, domain.SameDate(*all[1].SpecificDate, date))

	tm := txmanager.NewTransactionManager(dbmetrics.Wrap(db, nil))
	err = tm.DoSerializable(ctx, func(ctx context.Context) error {
		rules, err := NewRepository(dbmetrics.Wrap(db, nil)).ListByProfessional(ctx, 7)
		assert.Len(t, rules, 2)
		return err
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrRuleNotFound)
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}
