package availability_rule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// TIME читаем текстом: драйвер не умеет отдавать '24:00:00' как time.Time
var columns = []string{
	"id",
	"professional_id",
	"weekday",
	"specific_date",
	"start_time::text",
	"end_time::text",
	"classification",
	"note",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил доступности
// Ошибки драйвера оборачиваются через %w, чтобы txmanager видел SQLSTATE
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет правило
// Проверка пересечений выполняется выше, в сервисе правил, внутри той же транзакции
func (r *Repository) Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var specificDate interface{}
	if rule.SpecificDate != nil {
		specificDate = rule.SpecificDate.Format(domain.DateFormat)
	}

	query, args, err := psqlbuilder.Insert("availability_rules").
		Columns(
			"professional_id",
			"weekday",
			"specific_date",
			"start_time",
			"end_time",
			"classification",
			"note",
		).
		Values(
			rule.ProfessionalID,
			rule.Weekday,
			specificDate,
			rule.StartTime,
			rule.EndTime,
			rule.Classification,
			rule.Note,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetByID получает правило по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("availability_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - %w", ErrScanRow, err)
	}

	return rule, nil
}

// ListAll возвращает снимок всех правил (для перебора слотов по всем специалистам услуги)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.AvailabilityRule, error) {
	return r.list(ctx, "ListAll", nil)
}

// ListByProfessional возвращает правила специалиста
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы проверка пересечений и вставка были атомарны
func (r *Repository) ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.AvailabilityRule, error) {
	return r.list(ctx, "ListByProfessional", squirrel.Eq{"professional_id": professionalID})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From("availability_rules")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}
	selectBuilder = selectBuilder.OrderBy("professional_id ASC", "id ASC")

	if where != nil && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - %w", ErrScanRow, op, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrScanRow, op, err)
	}

	return rules, nil
}

// Delete удаляет правило
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row scanner) (*domain.AvailabilityRule, error) {
	var (
		rule         domain.AvailabilityRule
		weekday      sql.NullInt32
		specificDate sql.NullTime
		note         sql.NullString
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)

	err := row.Scan(
		&rule.ID,
		&rule.ProfessionalID,
		&weekday,
		&specificDate,
		&rule.StartTime,
		&rule.EndTime,
		&rule.Classification,
		&note,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if weekday.Valid {
		wd := int(weekday.Int32)
		rule.Weekday = &wd
	}
	if specificDate.Valid {
		d := specificDate.Time
		rule.SpecificDate = &d
	}
	if note.Valid {
		rule.Note = &note.String
	}
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
