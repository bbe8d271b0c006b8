package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Jelenicat/abeauty/internal/domain"
	"github.com/Jelenicat/abeauty/pkg/dbmetrics"
	"github.com/Jelenicat/abeauty/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникальности
const uniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"type",
	"employee_id",
	"employee_name",
	"date_key",
	"start_hhmm",
	"end_hhmm",
	"start_min",
	"end_min",
	"status",
	"service_id",
	"service_name",
	"duration_min",
	"price",
	"client_name",
	"client_phone",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей расписания (бронирования, блокировки,
// перерывы, отпуска - одна таблица, дискриминатор type)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новую запись. ID назначает вызывающий
// (uuid для бронирований/блокировок, детерминированный id для отпусков).
// Если в контексте есть активная транзакция, вставка выполняется в ней -
// это критично для guard-пути создания бронирования.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"type",
			"employee_id",
			"employee_name",
			"date_key",
			"start_hhmm",
			"end_hhmm",
			"start_min",
			"end_min",
			"status",
			"service_id",
			"service_name",
			"duration_min",
			"price",
			"client_name",
			"client_phone",
		).
		Values(
			appt.ID,
			appt.Type,
			appt.EmployeeID,
			appt.EmployeeName,
			appt.DateKey,
			appt.StartHHMM,
			appt.EndHHMM,
			appt.StartMin,
			appt.EndMin,
			appt.Status,
			appt.ServiceID,
			appt.ServiceName,
			appt.DurationMin,
			appt.Price,
			appt.ClientName,
			appt.ClientPhone,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// Upsert вставляет запись или обновляет существующую с тем же id.
// Используется для отпусков с детерминированными id - повторное
// применение диапазона отпуска идемпотентно.
func (r *Repository) Upsert(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"type",
			"employee_id",
			"employee_name",
			"date_key",
			"start_hhmm",
			"end_hhmm",
			"start_min",
			"end_min",
			"status",
			"service_id",
			"service_name",
			"duration_min",
			"price",
			"client_name",
			"client_phone",
		).
		Values(
			appt.ID,
			appt.Type,
			appt.EmployeeID,
			appt.EmployeeName,
			appt.DateKey,
			appt.StartHHMM,
			appt.EndHHMM,
			appt.StartMin,
			appt.EndMin,
			appt.Status,
			appt.ServiceID,
			appt.ServiceName,
			appt.DurationMin,
			appt.Price,
			appt.ClientName,
			appt.ClientPhone,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			start_hhmm = EXCLUDED.start_hhmm,
			end_hhmm = EXCLUDED.end_hhmm,
			start_min = EXCLUDED.start_min,
			end_min = EXCLUDED.end_min,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по id
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
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetBusyIntervals получает все записи сотрудника на день, занимающие время
// (отменённые и no-show исключены), отсортированные по началу.
// excludeID исключает редактируемую запись при переносе (может быть nil).
//
// Внутри транзакции добавляет FOR UPDATE - guard создания бронирования
// блокирует строки дня, чтобы два конкурентных бронирования не прошли
// проверку пересечений одновременно.
func (r *Repository) GetBusyIntervals(ctx context.Context, employeeID, dateKey string, excludeID *string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactive := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactive[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"date_key": dateKey}).
		Where(squirrel.NotEq{"status": inactive}).
		OrderBy("start_min ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusyIntervals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusyIntervals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByFilter получает записи с гибкой фильтрацией
// (день/период, сотрудник, тип, включение неактивных)
func (r *Repository) GetByFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.EmployeeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.DateKey != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date_key": *filter.DateKey})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date_key": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date_key": *filter.EndDate})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	if filter.DateKey != nil {
		selectBuilder = selectBuilder.OrderBy("employee_id ASC, start_min ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date_key ASC, start_min ASC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
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
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// UpdateInterval переносит запись на другой день/время.
// Вызывается только из guard-пути переноса внутри транзакции.
func (r *Repository) UpdateInterval(ctx context.Context, id string, dateKey string, startMin, endMin int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("date_key", dateKey).
		Set("start_min", startMin).
		Set("end_min", endMin).
		Set("start_hhmm", minutesToHHMM(startMin)).
		Set("end_hhmm", minutesToHHMM(endMin)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateInterval - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateInterval - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateInterval - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete физически удаляет запись. Для бронирований предпочтительна отмена
// (статус cancelled) - история и финансовая отчетность сохраняются.
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
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// GetRevenueByDay агрегирует выручку по дням и сотрудникам за период:
// суммируются цены всех бронирований, кроме отменённых. Неявки входят
// в сумму - цена зафиксирована в момент записи
func (r *Repository) GetRevenueByDay(ctx context.Context, startDate, endDate string) ([]*domain.RevenueRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"date_key",
		"employee_id",
		"employee_name",
		"COUNT(*)",
		"COALESCE(SUM(price), 0)",
	).
		From("appointments").
		Where(squirrel.Eq{"type": domain.TypeBooking}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.GtOrEq{"date_key": startDate}).
		Where(squirrel.LtOrEq{"date_key": endDate}).
		GroupBy("date_key", "employee_id", "employee_name").
		OrderBy("date_key ASC, employee_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRevenueByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRevenueByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.RevenueRow, 0)
	for rows.Next() {
		var row domain.RevenueRow
		if err := rows.Scan(&row.DateKey, &row.EmployeeID, &row.EmployeeName, &row.Bookings, &row.Total); err != nil {
			return nil, fmt.Errorf("%w: GetRevenueByDay - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRevenueByDay - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.Type,
		&appt.EmployeeID,
		&appt.EmployeeName,
		&appt.DateKey,
		&appt.StartHHMM,
		&appt.EndHHMM,
		&appt.StartMin,
		&appt.EndMin,
		&appt.Status,
		&appt.ServiceID,
		&appt.ServiceName,
		&appt.DurationMin,
		&appt.Price,
		&appt.ClientName,
		&appt.ClientPhone,
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

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

func minutesToHHMM(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
