package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/eh-co/CryoBookingService/internal/domain"
	"github.com/eh-co/CryoBookingService/pkg/dbmetrics"
	"github.com/eh-co/CryoBookingService/pkg/psqlbuilder"
	"github.com/eh-co/CryoBookingService/pkg/types"
)

// имя частичного уникального индекса по (date, time_slot) для активных записей
const uniqueActiveSlotIndex = "appointments_active_slot_key"

var appointmentColumns = []string{
	"id",
	"patient_name",
	"patient_email",
	"patient_phone",
	"service_id",
	"service_name",
	"duration_minutes",
	"price",
	"date",
	"time_slot",
	"status",
	"notes",
	"emergency_contact",
	"emergency_phone",
	"insurance_provider",
	"first_visit",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на прием.
// Если в контексте передана активная транзакция, использует её - usecase
// создания записи выполняет проверку занятости слота и вставку в одной
// сериализуемой транзакции.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"patient_name",
			"patient_email",
			"patient_phone",
			"service_id",
			"service_name",
			"duration_minutes",
			"price",
			"date",
			"time_slot",
			"status",
			"notes",
			"emergency_contact",
			"emergency_phone",
			"insurance_provider",
			"first_visit",
		).
		Values(
			appt.ID,
			appt.PatientName,
			appt.PatientEmail,
			appt.PatientPhone,
			appt.ServiceID,
			appt.ServiceName,
			appt.DurationMinutes,
			appt.Price,
			appt.Date,
			appt.TimeSlot,
			appt.Status,
			appt.Notes,
			appt.EmergencyContact,
			appt.EmergencyPhone,
			appt.InsuranceProvider,
			appt.FirstVisit,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if isUniqueSlotViolation(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return appt, nil
}

// List получает записи по предустановленному фильтру админки.
// today передается снаружи, чтобы "сегодня" было тестируемым.
func (r *Repository) List(ctx context.Context, filter domain.AppointmentListFilter, today time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("date ASC, time_slot ASC")

	switch filter {
	case domain.FilterToday:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": today.Format(domain.DateFormat)})
	case domain.FilterUpcoming:
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": today.Format(domain.DateFormat)})
	case domain.FilterPending:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusPending})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetBlockedSlots возвращает слоты, занятые записями в блокирующих
// статусах на дату
func (r *Repository) GetBlockedSlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("time_slot").
		From("appointments").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": domain.BlockingStatuses}).
		OrderBy("time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedSlots - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]types.TimeString, 0)
	for rows.Next() {
		var slot types.TimeString
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: GetBlockedSlots - scan time_slot: %w", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlockedSlots - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}

// ExistsActiveAt проверяет, занят ли слот неотмененной записью.
// Внутри транзакции строка блокируется (FOR UPDATE) до коммита,
// чтобы конкурирующая вставка дождалась результата admission check.
func (r *Repository) ExistsActiveAt(ctx context.Context, date time.Time, slot types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("appointments").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"time_slot": slot}).
		Where(squirrel.Eq{"status": domain.BlockingStatuses}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	var id string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveAt - execute query: %w", ErrExecQuery, err)
	}

	return true, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete удаляет запись физически (жесткое удаление разрешено из любого статуса)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
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
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CountByDate возвращает количество записей на дату (включая отмененные)
func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	return r.count(ctx, "CountByDate", squirrel.Eq{"date": date.Format(domain.DateFormat)})
}

// CountByStatus возвращает количество записей в указанном статусе
func (r *Repository) CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int, error) {
	return r.count(ctx, "CountByStatus", squirrel.Eq{"status": status})
}

// CountAll возвращает общее количество записей
func (r *Repository) CountAll(ctx context.Context) (int, error) {
	return r.count(ctx, "CountAll", nil)
}

// Revenue суммирует цену записей в указанных статусах
func (r *Repository) Revenue(ctx context.Context, statuses []domain.AppointmentStatus) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COALESCE(SUM(price), 0)").
		From("appointments").
		Where(squirrel.Eq{"status": statusStrings}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Revenue - build select query: %v", ErrBuildQuery, err)
	}

	var revenue float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("%w: Revenue - scan sum: %w", ErrScanRow, err)
	}

	return revenue, nil
}

func (r *Repository) count(ctx context.Context, method string, where interface{}) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("appointments")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %w", ErrScanRow, method, err)
	}

	return count, nil
}

// scanAppointment сканирует одну строку результата
func (r *Repository) scanAppointment(row *sql.Row) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.PatientName,
		&appt.PatientEmail,
		&appt.PatientPhone,
		&appt.ServiceID,
		&appt.ServiceName,
		&appt.DurationMinutes,
		&appt.Price,
		&appt.Date,
		&appt.TimeSlot,
		&appt.Status,
		&appt.Notes,
		&appt.EmergencyContact,
		&appt.EmergencyPhone,
		&appt.InsuranceProvider,
		&appt.FirstVisit,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.PatientName,
			&appt.PatientEmail,
			&appt.PatientPhone,
			&appt.ServiceID,
			&appt.ServiceName,
			&appt.DurationMinutes,
			&appt.Price,
			&appt.Date,
			&appt.TimeSlot,
			&appt.Status,
			&appt.Notes,
			&appt.EmergencyContact,
			&appt.EmergencyPhone,
			&appt.InsuranceProvider,
			&appt.FirstVisit,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}

func isUniqueSlotViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == uniqueActiveSlotIndex
}
