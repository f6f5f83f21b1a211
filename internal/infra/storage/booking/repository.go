package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"professional_id",
	"service_id",
	"start_at",
	"end_at",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей на прием (только чтение)
// Таблица appointments принадлежит сервису записи, здесь она нужна для поиска пересечений
type Repository struct {
	db                    DBExecutor
	defaultBookingMinutes int
}

// NewRepository создает новый экземпляр репозитория записей
// defaultBookingMinutes используется для записей без end_at при фильтрации по периоду
func NewRepository(db DBExecutor, defaultBookingMinutes int) *Repository {
	if defaultBookingMinutes <= 0 {
		defaultBookingMinutes = domain.DefaultBookingMinutes
	}
	return &Repository{db: db, defaultBookingMinutes: defaultBookingMinutes}
}

// List возвращает записи, пересекающие период [filter.From, filter.To)
// Отмененные записи исключаются, если не указан IncludeInactive
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if !filter.To.After(filter.From) {
		return nil, fmt.Errorf("%w: List - from=%s to=%s", ErrInvalidPeriod, filter.From, filter.To)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("appointments").
		Where(squirrel.Lt{"start_at": filter.To}).
		Where("COALESCE(end_at, start_at + make_interval(mins => ?)) > ?", r.defaultBookingMinutes, filter.From)

	// Фильтрация по специалисту (если указан)
	if filter.ProfessionalID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": *filter.ProfessionalID})
	}

	if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	query, args, err := selectBuilder.
		OrderBy("start_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return bookings, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		serviceID sql.NullInt64
		endAt     sql.NullTime
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.ProfessionalID,
		&serviceID,
		&booking.StartAt,
		&endAt,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if serviceID.Valid {
		booking.ServiceID = &serviceID.Int64
	}
	if endAt.Valid {
		booking.EndAt = &endAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
