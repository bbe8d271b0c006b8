package apply_shift_template

import (
	"context"
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	Upsert(ctx context.Context, shift *domain.Shift) error
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, employeeID string) (*domain.Employee, error)
}

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	GetHoursForWeekday(ctx context.Context, weekday time.Weekday) (domain.DayHours, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
