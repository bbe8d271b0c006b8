package get_available_slots

import (
	"context"
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetBusyIntervals(ctx context.Context, employeeID, dateKey string, excludeID *string) ([]*domain.Appointment, error)
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByEmployeeAndDate(ctx context.Context, employeeID, dateKey string) (*domain.Shift, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEligible(ctx context.Context, categoryID, serviceID string) ([]*domain.Employee, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
}

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	GetHoursForWeekday(ctx context.Context, weekday time.Weekday) (domain.DayHours, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
