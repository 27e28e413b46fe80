package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

const tableName = "business_hours_settings"

var columns = []string{
	"id",
	"key",
	"open_time",
	"close_time",
	"slot_duration_minutes",
	"working_days",
	"break_start",
	"break_end",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек рабочего времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByKey получает настройки по ключу
func (r *Repository) GetByKey(ctx context.Context, key string) (*domain.BusinessHoursSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	settings, err := scanSettings(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan settings: %v", ErrScanRow, err)
	}

	return settings, nil
}

// CreateIfNotExists создает строку настроек, если строки с таким ключом еще нет
// Конкурентные вызовы создают ровно одну строку (ON CONFLICT DO NOTHING)
// Возвращает true, если строка была создана этим вызовом
func (r *Repository) CreateIfNotExists(ctx context.Context, settings *domain.BusinessHoursSettings) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"key",
			"open_time",
			"close_time",
			"slot_duration_minutes",
			"working_days",
			"break_start",
			"break_end",
		).
		Values(
			settings.Key,
			settings.OpenTime,
			settings.CloseTime,
			settings.SlotDurationMinutes,
			pq.Array(toInt64s(settings.WorkingDays)),
			settings.BreakStart,
			settings.BreakEnd,
		).
		Suffix("ON CONFLICT (key) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfNotExists - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfNotExists - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfNotExists - rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// Update перезаписывает настройки с указанным ключом
func (r *Repository) Update(ctx context.Context, settings *domain.BusinessHoursSettings) (*domain.BusinessHoursSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("open_time", settings.OpenTime).
		Set("close_time", settings.CloseTime).
		Set("slot_duration_minutes", settings.SlotDurationMinutes).
		Set("working_days", pq.Array(toInt64s(settings.WorkingDays))).
		Set("break_start", settings.BreakStart).
		Set("break_end", settings.BreakEnd).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"key": settings.Key}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&settings.ID, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}

func scanSettings(row *sql.Row) (*domain.BusinessHoursSettings, error) {
	var (
		settings             domain.BusinessHoursSettings
		workingDays          []int64
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&settings.ID,
		&settings.Key,
		&settings.OpenTime,
		&settings.CloseTime,
		&settings.SlotDurationMinutes,
		pq.Array(&workingDays),
		&settings.BreakStart,
		&settings.BreakEnd,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	settings.WorkingDays = fromInt64s(workingDays)
	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

func toInt64s(values []int) []int64 {
	result := make([]int64, len(values))
	for i, v := range values {
		result[i] = int64(v)
	}
	return result
}

func fromInt64s(values []int64) []int {
	result := make([]int, len(values))
	for i, v := range values {
		result[i] = int(v)
	}
	return result
}
