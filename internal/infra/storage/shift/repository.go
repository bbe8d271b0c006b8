package shift

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Jelenicat/abeauty/internal/domain"
	"github.com/Jelenicat/abeauty/pkg/dbmetrics"
	"github.com/Jelenicat/abeauty/pkg/psqlbuilder"
	"github.com/Jelenicat/abeauty/pkg/types"
)

// segmentRecord формат хранения сегмента в JSONB колонке
type segmentRecord struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Repository репозиторий смен. Натуральный ключ employee_id + date_key:
// на сотрудника и день существует максимум один документ смены.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или целиком заменяет смену на день.
// Повторное применение того же шаблона дает тот же результат.
func (r *Repository) Upsert(ctx context.Context, shift *domain.Shift) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	segments, err := encodeSegments(shift.Segments)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert("shifts").
		Columns("employee_id", "date_key", "segments").
		Values(shift.EmployeeID, shift.DateKey, segments).
		Suffix(`ON CONFLICT (employee_id, date_key) DO UPDATE SET
			segments = EXCLUDED.segments,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByEmployeeAndDate получает смену сотрудника на день.
// Отсутствие смены - штатная ситуация (ErrShiftNotFound).
//
// Внутри транзакции строка блокируется (FOR UPDATE): guard бронирования
// перечитывает смену перед проверкой вхождения интервала.
func (r *Repository) GetByEmployeeAndDate(ctx context.Context, employeeID, dateKey string) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("employee_id", "date_key", "segments", "created_at", "updated_at").
		From("shifts").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"date_key": dateKey})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeAndDate - build select query: %v", ErrBuildQuery, err)
	}

	shift, err := scanShift(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeAndDate - scan shift: %v", ErrScanRow, err)
	}

	return shift, nil
}

// GetByEmployeeAndRange получает смены сотрудника за период дат (включительно)
func (r *Repository) GetByEmployeeAndRange(ctx context.Context, employeeID, startDate, endDate string) ([]*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("employee_id", "date_key", "segments", "created_at", "updated_at").
		From("shifts").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.GtOrEq{"date_key": startDate}).
		Where(squirrel.LtOrEq{"date_key": endDate}).
		OrderBy("date_key ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeAndRange - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryShifts(ctx, executor, query, args)
}

// GetByDate получает смены всех сотрудников на день (дневной календарь админки)
func (r *Repository) GetByDate(ctx context.Context, dateKey string) ([]*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("employee_id", "date_key", "segments", "created_at", "updated_at").
		From("shifts").
		Where(squirrel.Eq{"date_key": dateKey}).
		OrderBy("employee_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryShifts(ctx, executor, query, args)
}

// Delete удаляет смену на день (ручная правка админа)
func (r *Repository) Delete(ctx context.Context, employeeID, dateKey string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("shifts").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"date_key": dateKey}).
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
		return ErrShiftNotFound
	}

	return nil
}

func (r *Repository) queryShifts(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}) ([]*domain.Shift, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan shift: %v", ErrScanRow, err)
		}
		shifts = append(shifts, shift)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return shifts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShift(row rowScanner) (*domain.Shift, error) {
	var shift domain.Shift
	var rawSegments []byte
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(&shift.EmployeeID, &shift.DateKey, &rawSegments, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var records []segmentRecord
	if err := json.Unmarshal(rawSegments, &records); err != nil {
		return nil, err
	}
	shift.Segments = make([]domain.Segment, len(records))
	for i, rec := range records {
		shift.Segments[i] = domain.Segment{
			Start: types.TimeString(rec.Start),
			End:   types.TimeString(rec.End),
		}
	}

	shift.CreatedAt = createdAt.Time
	shift.UpdatedAt = updatedAt.Time

	return &shift, nil
}

func encodeSegments(segments []domain.Segment) ([]byte, error) {
	records := make([]segmentRecord, len(segments))
	for i, s := range segments {
		records[i] = segmentRecord{Start: s.Start.String(), End: s.End.String()}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeSegments, err)
	}
	return data, nil
}
