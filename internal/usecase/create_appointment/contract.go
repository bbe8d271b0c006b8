package create_appointment

import (
	"context"
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetBusyIntervals(ctx context.Context, employeeID, dateKey string, excludeID *string) ([]*domain.Appointment, error)
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByEmployeeAndDate(ctx context.Context, employeeID, dateKey string) (*domain.Shift, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, employeeID string) (*domain.Employee, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
}

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	GetHoursForWeekday(ctx context.Context, weekday time.Weekday) (domain.DayHours, error)
}

// ClientRepository интерфейс репозитория клиентской картотеки
type ClientRepository interface {
	RecordVisit(ctx context.Context, phone, name string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
