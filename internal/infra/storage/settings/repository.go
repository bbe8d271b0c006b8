package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Jelenicat/abeauty/internal/domain"
	"github.com/Jelenicat/abeauty/pkg/dbmetrics"
	"github.com/Jelenicat/abeauty/pkg/psqlbuilder"
	"github.com/Jelenicat/abeauty/pkg/types"
)

// Repository репозиторий настроек салона (часы работы по дням недели).
// При отсутствии строки в БД действует расписание по умолчанию.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetHoursForWeekday получает часы работы салона на день недели.
// Если админ не переопределял часы, возвращается дефолт.
func (r *Repository) GetHoursForWeekday(ctx context.Context, weekday time.Weekday) (domain.DayHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("open_time", "close_time").
		From("salon_hours").
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return domain.DayHours{}, fmt.Errorf("%w: GetHoursForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var open, close types.TimeString
	err = executor.QueryRowContext(ctx, query, args...).Scan(&open, &close)
	if err == sql.ErrNoRows {
		return domain.DefaultSalonHours[weekday], nil
	}
	if err != nil {
		return domain.DayHours{}, fmt.Errorf("%w: GetHoursForWeekday - scan hours: %v", ErrScanRow, err)
	}

	return domain.DayHours{Open: open, Close: close}, nil
}

// UpsertHours переопределяет часы работы салона на день недели
func (r *Repository) UpsertHours(ctx context.Context, weekday time.Weekday, hours domain.DayHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salon_hours").
		Columns("weekday", "open_time", "close_time").
		Values(int(weekday), hours.Open, hours.Close).
		Suffix(`ON CONFLICT (weekday) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertHours - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertHours - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
