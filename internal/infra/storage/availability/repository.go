package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/eh-co/CryoBookingService/internal/domain"
	"github.com/eh-co/CryoBookingService/pkg/dbmetrics"
	"github.com/eh-co/CryoBookingService/pkg/psqlbuilder"
)

const (
	weeklyTable = "weekly_availability"
	globalTable = "availability"
)

// Repository репозиторий для работы с флагами доступности слотов.
// Флаги хранятся в двух таблицах: weekly_availability для понедельных
// переопределений и availability для глобального дефолта.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekFlags возвращает все флаги недели, начинающейся с weekStart (понедельник)
func (r *Repository) GetWeekFlags(ctx context.Context, weekStart time.Time) ([]domain.AvailabilityFlag, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "time_slot", "is_available").
		From(weeklyTable).
		Where(squirrel.Eq{"week_start_date": weekStart.Format(domain.DateFormat)}).
		OrderBy("day_of_week ASC, time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekFlags - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryFlags(ctx, executor, "GetWeekFlags", query, args)
}

// GetGlobalFlags возвращает все флаги глобального дефолта
func (r *Repository) GetGlobalFlags(ctx context.Context) ([]domain.AvailabilityFlag, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "time_slot", "is_available").
		From(globalTable).
		OrderBy("day_of_week ASC, time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetGlobalFlags - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryFlags(ctx, executor, "GetGlobalFlags", query, args)
}

// ReplaceWeekFlags полностью заменяет набор флагов недели:
// сначала удаляет все строки недели, затем вставляет новый набор.
// Вызывается только внутри транзакции, иначе частичный сбой оставит
// неделю наполовину очищенной.
func (r *Repository) ReplaceWeekFlags(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	weekStartStr := weekStart.Format(domain.DateFormat)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(weeklyTable).
		Where(squirrel.Eq{"week_start_date": weekStartStr}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceWeekFlags - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeekFlags - delete week %s: %w", ErrDeleteScope, weekStartStr, err)
	}

	if len(flags) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(weeklyTable).
		Columns("week_start_date", "day_of_week", "time_slot", "is_available")
	for _, f := range flags {
		insertBuilder = insertBuilder.Values(weekStartStr, f.DayOfWeek, f.TimeSlot, f.IsAvailable)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeekFlags - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeekFlags - insert week %s: %w", ErrInsertScope, weekStartStr, err)
	}

	return nil
}

// ReplaceGlobalFlags полностью заменяет набор флагов глобального дефолта
func (r *Repository) ReplaceGlobalFlags(ctx context.Context, flags []domain.AvailabilityFlag) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(globalTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceGlobalFlags - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceGlobalFlags - delete global flags: %w", ErrDeleteScope, err)
	}

	if len(flags) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(globalTable).
		Columns("day_of_week", "time_slot", "is_available")
	for _, f := range flags {
		insertBuilder = insertBuilder.Values(f.DayOfWeek, f.TimeSlot, f.IsAvailable)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceGlobalFlags - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceGlobalFlags - insert global flags: %w", ErrInsertScope, err)
	}

	return nil
}

func (r *Repository) queryFlags(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) ([]domain.AvailabilityFlag, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, method, err)
	}
	defer rows.Close()

	flags := make([]domain.AvailabilityFlag, 0)
	for rows.Next() {
		var f domain.AvailabilityFlag
		if err := rows.Scan(&f.DayOfWeek, &f.TimeSlot, &f.IsAvailable); err != nil {
			return nil, fmt.Errorf("%w: %s - scan flag: %w", ErrScanRow, method, err)
		}
		flags = append(flags, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, method, err)
	}

	return flags, nil
}
